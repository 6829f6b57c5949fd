//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/timburks/texter/commander"
	"github.com/timburks/texter/config"
	"github.com/timburks/texter/editor"
	"github.com/timburks/texter/screen"
)

var (
	debug       = flag.Bool("debug", false, "Show each input event on the message bar.")
	configPath  = flag.String("config", config.Path(), "Read settings from this TOML file.")
	initConfig  = flag.Bool("init-config", false, "Write the default settings to the config file and exit.")
	script      = flag.String("eval", "", "Run a lisp script against the file, save it and exit.")
	showVersion = flag.Bool("version", false, "Show version information and exit.")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("texter %s\n", editor.Version)
		return
	}
	if *initConfig {
		if err := config.Save(config.Default(), *configPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// help is the status shown when the editor starts.
const help = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-E = lisp"

// startLog opens the log file, copies early into it and sends the log there.
func startLog(path string, early []byte) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if _, err := f.Write(early); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

// startupStatus reports config problems, which are otherwise only logged.
func startupStatus(cfgErr error, warned bool, logFile string) string {
	switch {
	case cfgErr != nil:
		return cfgErr.Error()
	case warned:
		return "config warnings written to " + logFile
	default:
		return help
	}
}

func run(args []string) error {
	// Hold log output until the log file named by the config is open.
	var early bytes.Buffer
	log.SetOutput(&early)
	cfg, cfgErr := config.Load(*configPath)
	if cfgErr != nil {
		log.Output(1, cfgErr.Error())
	}
	f, err := startLog(cfg.LogFile, early.Bytes())
	if err != nil {
		log.SetOutput(os.Stderr)
		os.Stderr.Write(early.Bytes())
		return err
	}
	defer f.Close()

	// The editor manages all text manipulation.
	e := editor.NewEditor(cfg)

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)
	c.SetDebug(*debug)

	if len(args) > 1 {
		return errors.New("usage: texter [flags] [file]")
	}
	if len(args) == 1 {
		fileinfo, err := os.Stat(args[0])
		if err == nil && fileinfo.IsDir() {
			return fmt.Errorf("%s is a directory", args[0])
		}
		if err := e.ReadFile(args[0]); err != nil {
			return err
		}
	}

	if *script != "" {
		// Run a script and save the result.
		if err := c.ParseEvalFile(*script); err != nil {
			return err
		}
		if e.FileName() == "" {
			return nil
		}
		return e.WriteFile("")
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("texter needs a terminal, use -eval to run without one")
	}

	// Create a screen to manage display.
	s, err := screen.Open()
	if err != nil {
		return err
	}
	defer s.Close()

	e.SetStatus("%s", startupStatus(cfgErr, early.Len() > 0, cfg.LogFile))

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.NextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
	return nil
}
