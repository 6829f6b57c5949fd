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
package commander

import (
	"fmt"

	"github.com/timburks/texter/editor"
	gott "github.com/timburks/texter/types"
)

// Number of extra Ctrl-Q presses needed to quit with unsaved changes.
const quitTimes = 2

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor     *editor.Editor
	mode       int                // editor mode
	debug      bool               // debug mode displays information about events (key codes, etc)
	prompt     string             // label shown before the prompt text
	promptText string             // prompt response as it is being typed
	onPrompt   func(string) error // called with the accepted prompt response
	searchText string             // text for searches as it is being typed
	lispText   string             // lisp command as it is being typed
	quitTimes  int                // remaining Ctrl-Q presses before a dirty quit
}

func NewCommander(e *editor.Editor) *Commander {
	return &Commander{editor: e, mode: gott.ModeEdit, quitTimes: quitTimes}
}

func (c *Commander) GetMode() int {
	return c.mode
}

// SetDebug shows each event on the message bar.
func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

// IsRunning is false once the user has asked to quit.
func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

// GetMessageBarText returns the line shown at the bottom of the screen.
func (c *Commander) GetMessageBarText() string {
	switch c.mode {
	case gott.ModePrompt:
		return c.prompt + c.promptText
	case gott.ModeSearch:
		return "/" + c.searchText
	case gott.ModeLisp:
		return c.lispText
	default:
		return c.editor.GetStatus()
	}
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		c.editor.SetStatus("event=%+v", event)
	}
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	case gott.EventError:
		return event.Err
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	var err error
	switch c.mode {
	case gott.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case gott.ModePrompt:
		err = c.ProcessKeyPromptMode(event)
	case gott.ModeSearch:
		err = c.ProcessKeySearchMode(event)
	case gott.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

func (c *Commander) ProcessKeyEditMode(event *gott.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != gott.KeyCtrlQ {
		c.quitTimes = quitTimes
	}
	switch key {
	case gott.KeyCtrlQ:
		if e.Dirty() && c.quitTimes > 0 {
			e.SetStatus("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", c.quitTimes)
			c.quitTimes--
			return nil
		}
		c.mode = gott.ModeQuit
	case gott.KeyCtrlS:
		return c.Save()
	case gott.KeyCtrlF:
		c.mode = gott.ModeSearch
		c.searchText = ""
	case gott.KeyCtrlE:
		c.mode = gott.ModeLisp
		c.lispText = "("
	case gott.KeyCtrlL, gott.KeyEsc:
		// nothing to do, the screen is redrawn after every event
	case gott.KeyArrowUp:
		e.MoveCursor(gott.MoveUp)
	case gott.KeyArrowDown:
		e.MoveCursor(gott.MoveDown)
	case gott.KeyArrowLeft:
		e.MoveCursor(gott.MoveLeft)
	case gott.KeyArrowRight:
		e.MoveCursor(gott.MoveRight)
	case gott.KeyHome:
		e.MoveCursor(gott.MoveLineStart)
	case gott.KeyEnd:
		e.MoveCursor(gott.MoveLineEnd)
	case gott.KeyPgup:
		e.MoveCursor(gott.MovePageUp)
	case gott.KeyPgdn:
		e.MoveCursor(gott.MovePageDown)
	case gott.KeyCtrlT:
		e.MoveCursor(gott.MoveTop)
	case gott.KeyCtrlB:
		e.MoveCursor(gott.MoveBottom)
	case gott.KeyBackspace:
		e.Backspace()
	case gott.KeyDelete:
		e.DeleteForward()
	case gott.KeyEnter:
		e.InsertChar('\n')
	case gott.KeyTab:
		e.InsertChar('\t')
	case gott.KeySpace:
		e.InsertChar(' ')
	case gott.KeyNone:
		if ch != 0 {
			e.InsertChar(ch)
		}
	}
	return nil
}

// Save writes the document to its file, asking for a name if it has none.
func (c *Commander) Save() error {
	if c.editor.FileName() == "" {
		c.Prompt("Save as: ", func(name string) error {
			if name == "" {
				c.editor.SetStatus("Save aborted")
				return nil
			}
			return c.write(name)
		})
		return nil
	}
	return c.write("")
}

func (c *Commander) write(name string) error {
	if err := c.editor.WriteFile(name); err != nil {
		c.editor.SetStatus("%s", err)
		return err
	}
	return nil
}

// Prompt reads a line on the message bar and passes it to accept.
func (c *Commander) Prompt(prompt string, accept func(string) error) {
	c.mode = gott.ModePrompt
	c.prompt = prompt
	c.promptText = ""
	c.onPrompt = accept
}

// edit applies a line editing key to text and reports whether the line
// was accepted or abandoned.
func edit(text *string, event *gott.Event) (done, accepted bool) {
	switch event.Key {
	case gott.KeyEsc:
		return true, false
	case gott.KeyEnter:
		return true, true
	case gott.KeyBackspace:
		if r := []rune(*text); len(r) > 0 {
			*text = string(r[:len(r)-1])
		}
	case gott.KeySpace:
		*text += " "
	case gott.KeyNone:
		if event.Ch != 0 {
			*text += string(event.Ch)
		}
	}
	return false, false
}

func (c *Commander) ProcessKeyPromptMode(event *gott.Event) error {
	done, accepted := edit(&c.promptText, event)
	if !done {
		return nil
	}
	c.mode = gott.ModeEdit
	accept := c.onPrompt
	c.onPrompt = nil
	if !accepted {
		c.editor.SetStatus("")
		return nil
	}
	if accept == nil {
		return nil
	}
	if err := accept(c.promptText); err != nil {
		return fmt.Errorf("%s%s: %w", c.prompt, c.promptText, err)
	}
	return nil
}

func (c *Commander) ProcessKeySearchMode(event *gott.Event) error {
	done, accepted := edit(&c.searchText, event)
	if done {
		if accepted {
			c.editor.Search(c.searchText)
		}
		c.mode = gott.ModeEdit
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *gott.Event) error {
	done, accepted := edit(&c.lispText, event)
	if done {
		c.mode = gott.ModeEdit
		if accepted {
			c.editor.SetStatus("%s", c.ParseEval(c.lispText))
		}
	}
	return nil
}
