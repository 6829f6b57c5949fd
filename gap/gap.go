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
	"io"
)

// A Buffer holds editable text with a gap at the cursor.
//
// The logical content is buf[0:curBeg] followed by the size-curBeg bytes
// starting at buf[curEnd]. The bytes between curBeg and curEnd are free
// space for insertions. One trailing byte after the suffix is reserved and
// always zero, so len(buf) == size + (curEnd-curBeg) + 1.
type Buffer struct {
	buf     []byte
	size    int
	curBeg  int
	curEnd  int
	gapSize int   // gap opened on each growth
	lines   []int // start offsets of lines, nil when stale
}

// New creates a buffer holding text with the cursor at the start.
func New(text string) *Buffer {
	return NewSize(text, DefaultGapWidth)
}

// NewSize creates a buffer holding text whose gap is width bytes wide
// and grows by width bytes when exhausted.
func NewSize(text string, width int) *Buffer {
	if width < 1 {
		width = DefaultGapWidth
	}
	b := &Buffer{
		buf:     make([]byte, width+len(text)+1),
		size:    len(text),
		curBeg:  0,
		curEnd:  width,
		gapSize: width,
	}
	copy(b.buf[width:], text)
	return b
}

// Len returns the number of bytes of text in the buffer.
func (b *Buffer) Len() int {
	return b.size
}

// Cursor returns the offset of the cursor, which is the start of the gap.
func (b *Buffer) Cursor() int {
	return b.curBeg
}

// GapWidth returns the number of bytes that can be inserted without growing.
func (b *Buffer) GapWidth() int {
	return b.curEnd - b.curBeg
}

// Cap returns the size of the underlying storage.
func (b *Buffer) Cap() int {
	return len(b.buf)
}

func (b *Buffer) suffixLen() int {
	return b.size - b.curBeg
}

// Suffix returns the text after the cursor. The returned slice aliases the
// buffer's storage and is only valid until the next change to the buffer.
func (b *Buffer) Suffix() []byte {
	return b.buf[b.curEnd : b.curEnd+b.suffixLen()]
}

// Prefix returns the text before the cursor, with the same aliasing rules
// as Suffix.
func (b *Buffer) Prefix() []byte {
	return b.buf[:b.curBeg]
}

// ByteAt returns the byte at logical offset i.
func (b *Buffer) ByteAt(i int) byte {
	if i < b.curBeg {
		return b.buf[i]
	}
	return b.buf[b.curEnd+i-b.curBeg]
}

// Bytes returns a copy of the text.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, 0, b.size)
	out = append(out, b.buf[:b.curBeg]...)
	return append(out, b.Suffix()...)
}

func (b *Buffer) String() string {
	return string(b.Bytes())
}

// WriteTo writes the text to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf[:b.curBeg])
	total := int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(b.Suffix())
	total += int64(n)
	return total, err
}

// Substring returns the text in [from, to). An empty or negative range
// yields "", and to is clamped to the end of the text.
func (b *Buffer) Substring(from, to int) string {
	return string(b.AppendSubstring(nil, from, to))
}

// AppendSubstring appends the text in [from, to) to dst and returns the
// extended slice. Nothing is appended for an empty or invalid range.
func (b *Buffer) AppendSubstring(dst []byte, from, to int) []byte {
	if from >= to || from < 0 {
		return dst
	}
	if to > b.size {
		to = b.size
	}
	if from >= to {
		return dst
	}
	switch {
	case to <= b.curBeg:
		return append(dst, b.buf[from:to]...)
	case from < b.curBeg:
		dst = append(dst, b.buf[from:b.curBeg]...)
		return append(dst, b.buf[b.curEnd:b.curEnd+to-b.curBeg]...)
	default:
		start := b.curEnd + from - b.curBeg
		return append(dst, b.buf[start:start+to-from]...)
	}
}

// Insert inserts text at the cursor and leaves the cursor after it.
func (b *Buffer) Insert(text string) {
	n := len(text)
	if n == 0 {
		return
	}
	if n > b.GapWidth() {
		b.grow(n + b.gapSize)
	}
	copy(b.buf[b.curBeg:], text)
	b.curBeg += n
	b.size += n
	b.lines = nil
}

// InsertByte inserts c at the cursor and leaves the cursor after it.
func (b *Buffer) InsertByte(c byte) {
	if b.GapWidth() == 0 {
		b.grow(b.gapSize)
	}
	b.buf[b.curBeg] = c
	b.curBeg++
	b.size++
	b.lines = nil
}

// Move moves the cursor by steps bytes, forward when positive and backward
// when negative. The cursor stops at either end of the text.
func (b *Buffer) Move(steps int) {
	switch {
	case steps > 0:
		if steps > b.suffixLen() {
			steps = b.suffixLen()
		}
		copy(b.buf[b.curBeg:], b.buf[b.curEnd:b.curEnd+steps])
	case steps < 0:
		if -steps > b.curBeg {
			steps = -b.curBeg
		}
		copy(b.buf[b.curEnd+steps:], b.buf[b.curBeg+steps:b.curBeg])
	default:
		return
	}
	b.curBeg += steps
	b.curEnd += steps
}

// MoveTo moves the cursor to offset, clamped to the text.
func (b *Buffer) MoveTo(offset int) {
	b.Move(offset - b.curBeg)
}

// Delete removes up to steps bytes after the cursor.
func (b *Buffer) Delete(steps int) {
	if b.curBeg >= b.size || steps <= 0 {
		return
	}
	if steps > b.suffixLen() {
		steps = b.suffixLen()
	}
	b.size -= steps
	b.curEnd += steps
	b.lines = nil
}

// Backspace removes up to steps bytes before the cursor and returns the
// number removed.
func (b *Buffer) Backspace(steps int) int {
	if steps <= 0 {
		return 0
	}
	if steps > b.curBeg {
		steps = b.curBeg
	}
	b.Move(-steps)
	b.Delete(steps)
	return steps
}
