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
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/texter/commander"
	"github.com/timburks/texter/editor"
	gott "github.com/timburks/texter/types"
)

// The Screen draws the state of an Editor on the terminal.
type Screen struct {
	size gott.Size // screen size
}

// Open puts the terminal in raw mode. Close restores it.
func Open() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e *editor.Editor, c *commander.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()

	// the info bar and message bar take the last two rows
	editSize := s.size
	editSize.Rows -= 2
	if editSize.Rows < 0 {
		editSize.Rows = 0
	}
	e.SetSize(editSize)
	e.Scroll()
	e.Render(s)
	s.RenderMessageBar(c)
	termbox.Flush()
}

func (s *Screen) SetCell(col, row int, c rune, color gott.Color) {
	termbox.SetCell(col, row, c, termbox.Attribute(color), termbox.ColorBlack)
}

func (s *Screen) SetCellReversed(col, row int, c rune, color gott.Color) {
	termbox.SetCell(col, row, c, termbox.Attribute(color)|termbox.AttrReverse, termbox.ColorWhite)
}

func (s *Screen) SetCursor(position gott.Point) {
	termbox.SetCursor(position.Col, position.Row)
}

func (s *Screen) RenderMessageBar(c *commander.Commander) {
	line := runewidth.Truncate(c.GetMessageBarText(), s.size.Cols, "")
	x := 0
	for _, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
		x += runewidth.RuneWidth(ch)
	}
}

// NextEvent blocks until the terminal reports an event.
func (s *Screen) NextEvent() *gott.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &gott.Event{Type: gott.EventKey, Key: key(event.Key), Ch: event.Ch}
	case termbox.EventResize:
		termbox.Flush()
		return &gott.Event{Type: gott.EventResize}
	case termbox.EventError:
		return &gott.Event{Type: gott.EventError, Err: event.Err}
	default:
		return &gott.Event{Type: gott.EventNone}
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case 0:
		return gott.KeyNone
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace
	case termbox.KeyDelete:
		return gott.KeyDelete
	case termbox.KeyCtrlB:
		return gott.KeyCtrlB
	case termbox.KeyCtrlE:
		return gott.KeyCtrlE
	case termbox.KeyCtrlF:
		return gott.KeyCtrlF
	case termbox.KeyCtrlL:
		return gott.KeyCtrlL
	case termbox.KeyCtrlQ:
		return gott.KeyCtrlQ
	case termbox.KeyCtrlS:
		return gott.KeyCtrlS
	case termbox.KeyCtrlT:
		return gott.KeyCtrlT
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	default:
		return gott.KeyUnsupported
	}
}
