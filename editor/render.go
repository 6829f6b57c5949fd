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
package editor

import (
	"fmt"

	gott "github.com/timburks/texter/types"
)

const Version = "0.1.0"

// advance returns the render column following byte c drawn at column rx.
func (e *Editor) advance(rx int, c byte) int {
	if c == '\t' {
		return rx + e.tabWidth - rx%e.tabWidth
	}
	return rx + 1
}

// renderColumn converts a byte column of a row to a screen column.
func (e *Editor) renderColumn(row, col int) int {
	b := e.buffer
	start := b.LineStart(row)
	rx := 0
	for i := start; i < start+col; i++ {
		rx = e.advance(rx, b.ByteAt(i))
	}
	return rx
}

// Scroll recomputes the display offset to keep the cursor onscreen.
func (e *Editor) Scroll() {
	cursor := e.GetCursor()
	e.rx = e.renderColumn(cursor.Row, cursor.Col)
	if cursor.Row < e.offset.Rows {
		// scroll up
		e.offset.Rows = cursor.Row
	}
	if cursor.Row-e.offset.Rows >= e.size.Rows {
		// scroll down
		e.offset.Rows = cursor.Row - e.size.Rows + 1
	}
	if e.rx < e.offset.Cols {
		// scroll left
		e.offset.Cols = e.rx
	}
	if e.rx-e.offset.Cols >= e.size.Cols {
		// scroll right
		e.offset.Cols = e.rx - e.size.Cols + 1
	}
}

// Render draws the visible rows of the document and the info bar below
// them, then places the cursor. Scroll should be called first.
func (e *Editor) Render(display gott.Display) {
	rows := e.LineCount()
	for y := 0; y < e.size.Rows; y++ {
		row := y + e.offset.Rows
		if row < rows {
			e.renderRow(display, y, row)
			continue
		}
		if rows == 0 && y == e.size.Rows/3 {
			e.renderWelcome(display, y)
		} else {
			display.SetCell(0, y, '~', gott.ColorPlain)
		}
	}
	e.renderInfoBar(display, e.size.Rows)
	cursor := e.GetCursor()
	display.SetCursor(gott.Point{
		Row: cursor.Row - e.offset.Rows,
		Col: e.rx - e.offset.Cols,
	})
}

// renderRow draws the part of a row that falls inside the horizontal window.
func (e *Editor) renderRow(display gott.Display, y, row int) {
	b := e.buffer
	start, end := b.LineStart(row), b.LineEnd(row)
	left, right := e.offset.Cols, e.offset.Cols+e.size.Cols

	// skip the bytes that end before the window
	rx, i := 0, start
	for i < end {
		next := e.advance(rx, b.ByteAt(i))
		if next > left {
			break
		}
		rx = next
		i++
	}
	if i >= end {
		return
	}

	var colors []gott.Color
	if e.highlight && e.highlighter != nil {
		colors = e.highlighter.Highlight(b.Line(row))
	}

	// no byte is narrower than a column, so the window holds at most
	// e.size.Cols bytes
	e.scratch = b.AppendSubstring(e.scratch[:0], i, min(i+e.size.Cols, end))
	for k, c := range e.scratch {
		if rx >= right {
			break
		}
		color := gott.ColorPlain
		if colors != nil {
			color = colors[i-start+k]
		}
		next := e.advance(rx, c)
		for x := rx; x < next && x < right; x++ {
			if x < left {
				continue
			}
			ch := rune(c)
			if c == '\t' {
				ch = ' '
			}
			display.SetCell(x-left, y, ch, color)
		}
		rx = next
	}
}

func (e *Editor) renderWelcome(display gott.Display, y int) {
	welcome := "texter editor -- version " + Version
	if len(welcome) > e.size.Cols {
		welcome = welcome[:e.size.Cols]
	}
	padding := (e.size.Cols - len(welcome)) / 2
	x := 0
	if padding > 0 {
		display.SetCell(0, y, '~', gott.ColorPlain)
		x = padding
	}
	for _, ch := range welcome {
		display.SetCell(x, y, ch, gott.ColorPlain)
		x++
	}
}

// computeInfoBarText returns the text of the info bar, padded to length.
func (e *Editor) computeInfoBarText(length int) string {
	name := e.fileName
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	text := fmt.Sprintf("%s - %d lines", name, e.LineCount())
	if e.Dirty() {
		text += " (modified)"
	}
	finalText := fmt.Sprintf("%d/%d", e.GetCursor().Row+1, e.LineCount())
	if len(text) > length {
		return text[:length]
	}
	for len(text) < length-len(finalText) {
		text += " "
	}
	if len(text)+len(finalText) == length {
		text += finalText
	}
	return text
}

func (e *Editor) renderInfoBar(display gott.Display, y int) {
	for x, ch := range e.computeInfoBarText(e.size.Cols) {
		display.SetCellReversed(x, y, ch, gott.ColorBlack)
	}
}
