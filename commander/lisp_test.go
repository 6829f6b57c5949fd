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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gott "github.com/timburks/texter/types"
)

func TestLispEditing(t *testing.T) {
	c := newCommander("abc\nx\nabc")
	c.ParseEval("(move 2)")
	c.ParseEval("(next-line)")
	assert.Equal(t, 5, c.editor.Buffer().Cursor())
	c.ParseEval("(prev-line)")
	assert.Equal(t, 1, c.editor.Buffer().Cursor())

	c.ParseEval("(insert \"ZZ\")")
	assert.Equal(t, "aZZbc\nx\nabc", c.editor.Buffer().String())
	c.ParseEval("(delete 2)")
	assert.Equal(t, "aZZ\nx\nabc", c.editor.Buffer().String())
	assert.True(t, c.editor.Dirty())
}

func TestLispQueries(t *testing.T) {
	c := newCommander("first\nsecond")
	assert.Equal(t, "2", c.ParseEval("(line-count)"))
	assert.Equal(t, "second", c.ParseEval("(line 1)"))
	assert.Equal(t, "", c.ParseEval("(line 7)"))
	assert.Equal(t, "first\nsecond", c.ParseEval("(text)"))
	c.ParseEval("(move 3)")
	assert.Equal(t, "3", c.ParseEval("(cursor)"))
}

func TestLispStatus(t *testing.T) {
	c := newCommander("")
	c.ParseEval("(status \"hello\")")
	assert.Equal(t, "hello", c.editor.GetStatus())
}

func TestLispGofmt(t *testing.T) {
	c := newCommander("package main\nvar x=1")
	c.editor.SetFileName("x.go")
	c.ParseEval("(gofmt)")
	assert.Equal(t, "package main\n\nvar x = 1", c.editor.Buffer().String())
}

func TestLispArgumentErrors(t *testing.T) {
	c := newCommander("abc")
	assert.Contains(t, c.ParseEval("(insert 5)"), "insert requires a string argument")
	assert.Contains(t, c.ParseEval("(move \"x\")"), "move requires an integer argument")
	assert.Equal(t, "abc", c.editor.Buffer().String())
}

func TestLispMode(t *testing.T) {
	c := newCommander("")
	require.NoError(t, c.ProcessEvent(key(gott.KeyCtrlE)))
	assert.Equal(t, gott.ModeLisp, c.GetMode())
	assert.Equal(t, "(", c.GetMessageBarText())
	typeText(t, c, "insert \"hi\")")
	require.NoError(t, c.ProcessEvent(key(gott.KeyEnter)))
	assert.Equal(t, gott.ModeEdit, c.GetMode())
	assert.Equal(t, "hi", c.editor.Buffer().String())
	assert.Equal(t, "2", c.GetMessageBarText())
}

func TestLispSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lisp.txt")
	c := newCommander("saved by lisp")
	assert.Equal(t, path, c.ParseEval("(save \""+path+"\")"))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "saved by lisp\n", string(written))
}

func TestParseEvalFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	script := filepath.Join(dir, "script.lisp")
	require.NoError(t, os.WriteFile(script, []byte("(insert \"one\")\n(insert \"two\")\n(save \""+out+"\")\n"), 0644))

	c := newCommander("")
	require.NoError(t, c.ParseEvalFile(script))
	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "onetwo\n", string(written))
	assert.Equal(t, 6, c.editor.Buffer().Cursor())
}

func TestParseEvalFileMissing(t *testing.T) {
	c := newCommander("")
	assert.Error(t, c.ParseEvalFile(filepath.Join(t.TempDir(), "missing.lisp")))
}
