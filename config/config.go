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

// Package config loads editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/timburks/texter/gap"
)

// Config holds the editor settings.
type Config struct {
	TabWidth      int      `toml:"tab_width"`
	GapWidth      int      `toml:"gap_width"`
	LogFile       string   `toml:"log_file"`
	StatusTimeout Duration `toml:"status_timeout"`
	Highlight     bool     `toml:"highlight"`
}

// Duration is a time.Duration written as a string such as "5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TabWidth:      4,
		GapWidth:      gap.DefaultGapWidth,
		LogFile:       defaultLogFile(),
		StatusTimeout: Duration{5 * time.Second},
		Highlight:     true,
	}
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".texterlog"
	}
	return filepath.Join(home, ".texterlog")
}

// Path returns the default location of the config file.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".texter.toml"
	}
	return filepath.Join(home, ".texter.toml")
}

// Load reads settings from path on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Printf("ignoring unknown config keys in %s: %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("%+v", err)
		cfg.fillDefaults()
	}
	return cfg, nil
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch {
	case c.TabWidth < 1 || c.TabWidth > 16:
		return fmt.Errorf("tab_width must be between 1 and 16, got %d", c.TabWidth)
	case c.GapWidth < 1:
		return fmt.Errorf("gap_width must be positive, got %d", c.GapWidth)
	case c.StatusTimeout.Duration <= 0:
		return fmt.Errorf("status_timeout must be positive, got %s", c.StatusTimeout.Duration)
	case c.LogFile == "":
		return errors.New("log_file must not be empty")
	}
	return nil
}

// fillDefaults replaces out of range settings with their defaults.
func (c *Config) fillDefaults() {
	d := Default()
	if c.TabWidth < 1 || c.TabWidth > 16 {
		c.TabWidth = d.TabWidth
	}
	if c.GapWidth < 1 {
		c.GapWidth = d.GapWidth
	}
	if c.StatusTimeout.Duration <= 0 {
		c.StatusTimeout = d.StatusTimeout
	}
	if c.LogFile == "" {
		c.LogFile = d.LogFile
	}
}

// Save writes the settings to path.
func Save(c *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
