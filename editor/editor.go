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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/timburks/texter/config"
	"github.com/timburks/texter/gap"
	gott "github.com/timburks/texter/types"
)

// The Editor manages the editing of a document held in a single gap buffer.
// The buffer is the only record of the cursor position and text length.
type Editor struct {
	buffer        *gap.Buffer
	fileName      string
	hasLines      bool          // the document has at least one line, possibly empty
	dirty         int           // number of changes since the last load or save
	offset        gott.Size     // display offset
	size          gott.Size     // size of editing area
	rx            int           // render column of the cursor
	tabWidth      int           // columns per tab stop
	gapWidth      int           // gap width for new buffers
	highlight     bool          // color Go source
	highlighter   *GoHighlighter
	status        string        // status message
	statusTime    time.Time     // when the status message was set
	statusTimeout time.Duration // how long the status message is shown
	scratch       []byte        // reused by Render
	scannerLimit  int           // longest line LoadBytes accepts, 0 for any
	now           func() time.Time
}

func NewEditor(cfg *config.Config) *Editor {
	if cfg == nil {
		cfg = config.Default()
	}
	e := &Editor{
		tabWidth:      cfg.TabWidth,
		gapWidth:      cfg.GapWidth,
		highlight:     cfg.Highlight,
		statusTimeout: cfg.StatusTimeout.Duration,
		now:           time.Now,
	}
	e.buffer = gap.NewSize("", e.gapWidth)
	return e
}

// Buffer returns the gap buffer holding the document.
func (e *Editor) Buffer() *gap.Buffer {
	return e.buffer
}

func (e *Editor) FileName() string {
	return e.fileName
}

func (e *Editor) SetFileName(name string) {
	e.fileName = name
	e.highlighter = nil
	if strings.HasSuffix(name, ".go") {
		e.highlighter = NewGoHighlighter()
	}
}

func (e *Editor) Dirty() bool {
	return e.dirty > 0
}

// LineCount returns the number of lines in the document. A new document
// has no lines until something is loaded or typed.
func (e *Editor) LineCount() int {
	if !e.hasLines {
		return 0
	}
	return e.buffer.LineCount()
}

// LoadBytes replaces the document with the lines in data. Trailing '\r' and
// '\n' are stripped from each line. On error the document is unchanged.
func (e *Editor) LoadBytes(data []byte) error {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	limit := len(data) + 1
	if e.scannerLimit > 0 {
		limit = e.scannerLimit
	}
	scanner.Buffer(make([]byte, 0, min(limit, 64*1024)), limit)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r\n"))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to split lines: %w", err)
	}
	e.buffer = gap.NewSize(strings.Join(lines, "\n"), e.gapWidth)
	e.hasLines = len(lines) > 0
	e.offset = gott.Size{}
	e.dirty = 0
	return nil
}

// ReadFile loads the document from path. A missing file gives an empty
// document that will be saved to path.
func (e *Editor) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := e.LoadBytes(nil); err != nil {
			return err
		}
		e.SetFileName(path)
		e.SetStatus("New file %s", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := e.LoadBytes(data); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	e.SetFileName(path)
	return nil
}

// WriteTo writes each line of the document followed by '\n'.
func (e *Editor) WriteTo(w io.Writer) (int64, error) {
	n, err := e.buffer.WriteTo(w)
	if err != nil || !e.hasLines {
		return n, err
	}
	m, err := w.Write([]byte{'\n'})
	return n + int64(m), err
}

// Bytes returns the document as it would be saved.
func (e *Editor) Bytes() []byte {
	var b bytes.Buffer
	e.WriteTo(&b)
	return b.Bytes()
}

// WriteFile saves the document to path, or to the current file name when
// path is empty.
func (e *Editor) WriteFile(path string) error {
	if path == "" {
		path = e.fileName
	}
	if path == "" {
		return errors.New("no file name")
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		e.SetStatus("Can't save! I/O error: %s", err)
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	n, err := e.WriteTo(w)
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		f.Close()
		e.SetStatus("failed to write some or all of buffer: %s", err)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		e.SetStatus("failed to write some or all of buffer: %s", err)
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if path != e.fileName {
		e.SetFileName(path)
	}
	e.dirty = 0
	e.SetStatus("%d bytes written to disk", n)
	return nil
}

// GetCursor returns the row and column of the cursor.
func (e *Editor) GetCursor() gott.Point {
	row, col := e.buffer.Position()
	return gott.Point{Row: row, Col: col}
}

// SetCursor moves the cursor to a row and column, clamped to the document.
func (e *Editor) SetCursor(p gott.Point) {
	e.buffer.Seek(p.Row, p.Col)
}

func (e *Editor) MoveCursor(direction int) {
	b := e.buffer
	switch direction {
	case gott.MoveLeft:
		b.Move(-1)
	case gott.MoveRight:
		b.Move(1)
	case gott.MoveUp:
		b.PrevLine()
	case gott.MoveDown:
		b.NextLine()
	case gott.MoveLineStart:
		b.MoveToLineStart()
	case gott.MoveLineEnd:
		b.MoveToLineEnd()
	case gott.MovePageUp:
		for i := 0; i < e.size.Rows; i++ {
			b.PrevLine()
		}
	case gott.MovePageDown:
		for i := 0; i < e.size.Rows; i++ {
			b.NextLine()
		}
	case gott.MoveTop:
		b.MoveTo(0)
	case gott.MoveBottom:
		b.MoveTo(b.Len())
	}
}

// InsertChar inserts c at the cursor. A '\n' splits the line.
func (e *Editor) InsertChar(c rune) {
	if c < utf8.RuneSelf {
		e.buffer.InsertByte(byte(c))
	} else {
		e.buffer.Insert(string(c))
	}
	e.hasLines = true
	e.dirty++
}

// InsertText inserts s at the cursor and leaves the cursor after it.
func (e *Editor) InsertText(s string) {
	if s == "" {
		return
	}
	e.buffer.Insert(s)
	e.hasLines = true
	e.dirty++
}

// Backspace deletes the byte before the cursor, joining lines at the start
// of a line.
func (e *Editor) Backspace() {
	if e.buffer.Backspace(1) > 0 {
		e.dirty++
	}
}

// DeleteForward deletes the byte at the cursor.
func (e *Editor) DeleteForward() {
	if e.buffer.Cursor() < e.buffer.Len() {
		e.buffer.Delete(1)
		e.dirty++
	}
}

// Search moves the cursor to the next occurrence of text after the cursor,
// wrapping around at the end of the document.
func (e *Editor) Search(text string) bool {
	if text == "" {
		return false
	}
	doc := e.buffer.Bytes()
	from := e.buffer.Cursor() + 1
	if from > len(doc) {
		from = len(doc)
	}
	if i := bytes.Index(doc[from:], []byte(text)); i >= 0 {
		e.buffer.MoveTo(from + i)
		return true
	}
	if i := bytes.Index(doc, []byte(text)); i >= 0 {
		e.buffer.MoveTo(i)
		e.SetStatus("search wrapped")
		return true
	}
	e.SetStatus("not found: %s", text)
	return false
}

// SetStatus sets the message shown below the info bar.
func (e *Editor) SetStatus(format string, args ...interface{}) {
	e.status = fmt.Sprintf(format, args...)
	e.statusTime = e.now()
}

// GetStatus returns the status message if it has not expired.
func (e *Editor) GetStatus() string {
	if e.status == "" || e.now().Sub(e.statusTime) >= e.statusTimeout {
		return ""
	}
	return e.status
}

func (e *Editor) SetSize(s gott.Size) {
	e.size = s
}

func (e *Editor) GetOffset() gott.Size {
	return e.offset
}
