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

package gap

import (
	"bytes"
	"sort"
)

// Line navigation treats the buffer as a whole document with '\n' separators.
// The column of the cursor is its distance from the start of its line, and
// vertical moves keep that column unless the target line is shorter. No goal
// column is remembered between moves, so passing through an empty line resets
// the column to zero.

// lineStart returns the offset of the start of the line containing offset.
func (b *Buffer) lineStart(offset int) int {
	if offset <= b.curBeg {
		i := bytes.LastIndexByte(b.buf[:offset], '\n')
		return i + 1
	}
	if i := bytes.LastIndexByte(b.buf[b.curEnd:b.curEnd+offset-b.curBeg], '\n'); i >= 0 {
		return b.curBeg + i + 1
	}
	return bytes.LastIndexByte(b.buf[:b.curBeg], '\n') + 1
}

// lineEnd returns the offset of the '\n' ending the line containing offset,
// or the length of the text for the last line.
func (b *Buffer) lineEnd(offset int) int {
	if offset < b.curBeg {
		if i := bytes.IndexByte(b.buf[offset:b.curBeg], '\n'); i >= 0 {
			return offset + i
		}
		offset = b.curBeg
	}
	start := b.curEnd + offset - b.curBeg
	if i := bytes.IndexByte(b.buf[start:b.curEnd+b.suffixLen()], '\n'); i >= 0 {
		return offset + i
	}
	return b.size
}

// Column returns the distance from the start of the cursor's line to the
// cursor.
func (b *Buffer) Column() int {
	return b.curBeg - b.lineStart(b.curBeg)
}

// NextLine moves the cursor to the same column of the next line, or to the
// end of the next line if it is shorter. It does nothing on the last line.
func (b *Buffer) NextLine() {
	col := b.Column()
	endl := b.lineEnd(b.curBeg)
	if endl >= b.size {
		return
	}
	next := endl + 1
	if n := b.lineEnd(next) - next; col > n {
		col = n
	}
	b.Move(next + col - b.curBeg)
}

// PrevLine moves the cursor to the same column of the previous line, or to
// the end of the previous line if it is shorter. It does nothing on the
// first line.
func (b *Buffer) PrevLine() {
	start := b.lineStart(b.curBeg)
	if start == 0 {
		return
	}
	col := b.curBeg - start
	prev := b.lineStart(start - 1)
	if n := start - 1 - prev; col > n {
		col = n
	}
	b.Move(prev + col - b.curBeg)
}

// MoveToLineStart moves the cursor to the start of its line.
func (b *Buffer) MoveToLineStart() {
	b.MoveTo(b.lineStart(b.curBeg))
}

// MoveToLineEnd moves the cursor to the end of its line.
func (b *Buffer) MoveToLineEnd() {
	b.MoveTo(b.lineEnd(b.curBeg))
}

// index returns the line start offsets, rebuilding them if the text has
// changed since the last call.
func (b *Buffer) index() []int {
	if b.lines != nil {
		return b.lines
	}
	lines := []int{0}
	for i, c := range b.buf[:b.curBeg] {
		if c == '\n' {
			lines = append(lines, i+1)
		}
	}
	for i, c := range b.Suffix() {
		if c == '\n' {
			lines = append(lines, b.curBeg+i+1)
		}
	}
	b.lines = lines
	return lines
}

// LineCount returns the number of lines. Empty text has one empty line.
func (b *Buffer) LineCount() int {
	return len(b.index())
}

// LineStart returns the offset of the first byte of line i, clamped to the
// valid lines.
func (b *Buffer) LineStart(i int) int {
	lines := b.index()
	if i < 0 {
		return 0
	}
	if i >= len(lines) {
		return b.size
	}
	return lines[i]
}

// LineEnd returns the offset just past the last byte of line i, excluding
// its '\n'.
func (b *Buffer) LineEnd(i int) int {
	lines := b.index()
	if i < 0 {
		i = 0
	}
	if i+1 < len(lines) {
		return lines[i+1] - 1
	}
	return b.size
}

// LineLen returns the length of line i.
func (b *Buffer) LineLen(i int) int {
	if i < 0 || i >= b.LineCount() {
		return 0
	}
	return b.LineEnd(i) - b.LineStart(i)
}

// Line returns the text of line i without its '\n'.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= b.LineCount() {
		return ""
	}
	return b.Substring(b.LineStart(i), b.LineEnd(i))
}

// LineOf returns the line containing offset.
func (b *Buffer) LineOf(offset int) int {
	lines := b.index()
	return sort.Search(len(lines), func(i int) bool { return lines[i] > offset }) - 1
}

// Position returns the row and column of the cursor.
func (b *Buffer) Position() (row, col int) {
	row = b.LineOf(b.curBeg)
	return row, b.curBeg - b.LineStart(row)
}

// Seek moves the cursor to row and col, clamping both to the text.
func (b *Buffer) Seek(row, col int) {
	if row < 0 {
		row = 0
	}
	if n := b.LineCount(); row >= n {
		row = n - 1
	}
	if col < 0 {
		col = 0
	}
	if n := b.LineLen(row); col > n {
		col = n
	}
	b.MoveTo(b.LineStart(row) + col)
}
