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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gott "github.com/timburks/texter/types"
)

const source = "testdata/gettysburg-address.txt"

func setup(t *testing.T) *Editor {
	editor := NewEditor(nil)
	err := editor.ReadFile(source)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	return editor
}

// final saves the document and compares it with the source file.
func final(t *testing.T, editor *Editor) {
	out := filepath.Join(t.TempDir(), "test-final.txt")
	if err := editor.WriteFile(out); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	expected, _ := os.ReadFile(source)
	written, _ := os.ReadFile(out)
	if !bytes.Equal(expected, written) {
		t.Errorf("Saved file differs from %s:\n%s", source, written)
	}
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	editor := setup(t)
	if rowCount := editor.LineCount(); rowCount != 26 {
		t.Errorf("Invalid row count: %d", rowCount)
	}
	if editor.Dirty() {
		t.Errorf("Editor is dirty after reading")
	}
	final(t, editor)
}

func TestInsertThenDelete(t *testing.T) {
	editor := setup(t)
	editor.SetCursor(gott.Point{Row: 20, Col: 10})
	editor.InsertText("XYZ")
	expected := "dedicated XYZto the great task remaining before us--that from these"
	if line := editor.Buffer().Line(20); line != expected {
		t.Errorf("Unexpected line after insertion: '%s'", line)
	}
	if cursor := editor.GetCursor(); cursor != (gott.Point{Row: 20, Col: 13}) {
		t.Errorf("Unexpected cursor after insertion: %+v", cursor)
	}
	editor.Backspace()
	editor.Backspace()
	editor.Backspace()
	if !editor.Dirty() {
		t.Errorf("Editor is not dirty after editing")
	}
	final(t, editor)
}

func TestSplitAndJoinLines(t *testing.T) {
	editor := setup(t)
	editor.SetCursor(gott.Point{Row: 0, Col: 4})
	editor.InsertChar('\n')
	if rowCount := editor.LineCount(); rowCount != 27 {
		t.Errorf("Invalid row count after split: %d", rowCount)
	}
	if line := editor.Buffer().Line(1); line != "GETTYSBURG ADDRESS:" {
		t.Errorf("Unexpected line after split: '%s'", line)
	}
	if cursor := editor.GetCursor(); cursor != (gott.Point{Row: 1, Col: 0}) {
		t.Errorf("Unexpected cursor after split: %+v", cursor)
	}
	editor.Backspace()
	if rowCount := editor.LineCount(); rowCount != 26 {
		t.Errorf("Invalid row count after join: %d", rowCount)
	}
	final(t, editor)
}

func TestDeleteForward(t *testing.T) {
	editor := setup(t)
	editor.MoveCursor(gott.MoveDown)
	editor.MoveCursor(gott.MoveLineEnd)
	editor.DeleteForward()
	expected := "Four score and seven years ago our fathers brought forth on this"
	if line := editor.Buffer().Line(1); line != expected {
		t.Errorf("Unexpected line after deleting a newline: '%s'", line)
	}
	editor.InsertChar('\n')
	final(t, editor)
}

func TestMoveCursor(t *testing.T) {
	editor := NewEditor(nil)
	editor.LoadBytes([]byte("longer than\nnext\nline\n"))
	editor.SetSize(gott.Size{Rows: 2, Cols: 80})
	steps := []struct {
		direction int
		expected  gott.Point
	}{
		{gott.MoveRight, gott.Point{Row: 0, Col: 1}},
		{gott.MoveLineEnd, gott.Point{Row: 0, Col: 11}},
		{gott.MoveDown, gott.Point{Row: 1, Col: 4}},
		{gott.MoveRight, gott.Point{Row: 2, Col: 0}},
		{gott.MoveLeft, gott.Point{Row: 1, Col: 4}},
		{gott.MoveUp, gott.Point{Row: 0, Col: 4}},
		{gott.MoveLineStart, gott.Point{Row: 0, Col: 0}},
		{gott.MovePageDown, gott.Point{Row: 2, Col: 0}},
		{gott.MovePageUp, gott.Point{Row: 0, Col: 0}},
		{gott.MoveBottom, gott.Point{Row: 2, Col: 4}},
		{gott.MoveDown, gott.Point{Row: 2, Col: 4}},
		{gott.MoveTop, gott.Point{Row: 0, Col: 0}},
		{gott.MoveLeft, gott.Point{Row: 0, Col: 0}},
	}
	for i, step := range steps {
		editor.MoveCursor(step.direction)
		if cursor := editor.GetCursor(); cursor != step.expected {
			t.Errorf("Step %d: expected cursor %+v, got %+v", i, step.expected, cursor)
		}
	}
}

func TestLoadStripsLineEndings(t *testing.T) {
	editor := NewEditor(nil)
	editor.LoadBytes([]byte("one\r\ntwo\r\n\r\nfour"))
	if text := editor.Buffer().String(); text != "one\ntwo\n\nfour" {
		t.Errorf("Unexpected text: %q", text)
	}
	if out := string(editor.Bytes()); out != "one\ntwo\n\nfour\n" {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestSingleEmptyLineRoundTrip(t *testing.T) {
	inputs := []string{"\n", "\n\n", "a\n", "\r\n"}
	expected := []string{"\n", "\n\n", "a\n", "\n"}
	for i, input := range inputs {
		editor := NewEditor(nil)
		if err := editor.LoadBytes([]byte(input)); err != nil {
			t.Fatalf("Load failed: %+v", err)
		}
		if out := string(editor.Bytes()); out != expected[i] {
			t.Errorf("%q saved as %q, expected %q", input, out, expected[i])
		}
	}

	editor := NewEditor(nil)
	editor.LoadBytes([]byte("\n"))
	if rowCount := editor.LineCount(); rowCount != 1 {
		t.Errorf("Invalid row count for one empty line: %d", rowCount)
	}
	path := filepath.Join(t.TempDir(), "empty-line.txt")
	if err := editor.WriteFile(path); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	if written, _ := os.ReadFile(path); string(written) != "\n" {
		t.Errorf("Unexpected file contents: %q", written)
	}
}

func TestLoadRejectsOverlongLine(t *testing.T) {
	editor := NewEditor(nil)
	editor.LoadBytes([]byte("kept"))
	// a line longer than the scanner limit is reported, not truncated
	long := bytes.Repeat([]byte("x"), 70*1024)
	editor.scannerLimit = 64 * 1024
	if err := editor.LoadBytes(long); err == nil {
		t.Errorf("Expected an error for an overlong line")
	}
	if text := editor.Buffer().String(); text != "kept" {
		t.Errorf("Document changed after a failed load: %q", text)
	}
}

func TestWriteFailureKeepsDirty(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	editor := NewEditor(nil)
	editor.InsertText("data")
	if err := editor.WriteFile("/dev/full"); err == nil {
		t.Fatalf("Expected a write error")
	}
	if !editor.Dirty() {
		t.Errorf("Editor is clean after a failed write")
	}
	if status := editor.GetStatus(); strings.Contains(status, "written to disk") {
		t.Errorf("Unexpected status after a failed write: '%s'", status)
	}
}

func TestEmptyDocument(t *testing.T) {
	editor := NewEditor(nil)
	if editor.LineCount() != 0 {
		t.Errorf("Empty document has %d lines", editor.LineCount())
	}
	if out := editor.Bytes(); len(out) != 0 {
		t.Errorf("Empty document saves as %q", out)
	}
	editor.InsertChar('a')
	if out := string(editor.Bytes()); out != "a\n" {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	editor := NewEditor(nil)
	if err := editor.ReadFile(path); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	editor.InsertText("hello")
	if err := editor.WriteFile(""); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	written, _ := os.ReadFile(path)
	if string(written) != "hello\n" {
		t.Errorf("Unexpected file contents: %q", written)
	}
	if status := editor.GetStatus(); status != "6 bytes written to disk" {
		t.Errorf("Unexpected status: '%s'", status)
	}
}

func TestWriteWithoutName(t *testing.T) {
	editor := NewEditor(nil)
	if err := editor.WriteFile(""); err == nil {
		t.Errorf("Expected an error when saving without a file name")
	}
}

func TestSearch(t *testing.T) {
	editor := setup(t)
	if !editor.Search("nation") {
		t.Fatalf("Search failed")
	}
	if cursor := editor.GetCursor(); cursor != (gott.Point{Row: 3, Col: 16}) {
		t.Errorf("Unexpected cursor after search: %+v", cursor)
	}
	editor.Search("nation")
	if cursor := editor.GetCursor(); cursor != (gott.Point{Row: 6, Col: 62}) {
		t.Errorf("Unexpected cursor after second search: %+v", cursor)
	}
	editor.SetCursor(gott.Point{Row: 25, Col: 0})
	if !editor.Search("THE") {
		t.Fatalf("Search did not wrap")
	}
	if cursor := editor.GetCursor(); cursor != (gott.Point{Row: 0, Col: 0}) {
		t.Errorf("Unexpected cursor after wrapped search: %+v", cursor)
	}
	if editor.Search("no such text") {
		t.Errorf("Search found missing text")
	}
}

func TestStatusExpires(t *testing.T) {
	editor := NewEditor(nil)
	now := time.Now()
	editor.now = func() time.Time { return now }
	editor.SetStatus("saved %d", 3)
	if status := editor.GetStatus(); status != "saved 3" {
		t.Errorf("Unexpected status: '%s'", status)
	}
	now = now.Add(10 * time.Second)
	if status := editor.GetStatus(); status != "" {
		t.Errorf("Status did not expire: '%s'", status)
	}
}
