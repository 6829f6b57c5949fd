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
package types

// Editor modes
const (
	ModeEdit   = 0
	ModePrompt = 1
	ModeSearch = 2
	ModeLisp   = 3
	ModeQuit   = 9999
)

// Move directions
const (
	MoveUp = iota
	MoveDown
	MoveRight
	MoveLeft
	MoveLineStart
	MoveLineEnd
	MovePageUp
	MovePageDown
	MoveTop
	MoveBottom
)

// Event types
const (
	EventKey = iota
	EventResize
	EventError
	EventNone
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Color is a 256-color terminal palette entry.
type Color uint16

const (
	ColorDefault Color = 0x00
	ColorBlack   Color = 0x01
	ColorWhite   Color = 0x08
	ColorPlain   Color = 0xff
)

// An Event is a decoded input event.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Err  error
}

// A Display is a grid of character cells that can be drawn on.
type Display interface {
	SetCell(col, row int, c rune, color Color)
	SetCellReversed(col, row int, c rune, color Color)
	SetCursor(position Point)
}
