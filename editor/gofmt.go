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
	"go/format"
	"log"
	"strings"

	gott "github.com/timburks/texter/types"
)

// Gofmt reformats the document if it holds Go source. The cursor keeps
// its row and column. On a syntax error the document is left unchanged.
func (e *Editor) Gofmt() error {
	if !strings.HasSuffix(e.fileName, ".go") {
		return fmt.Errorf("%s is not a Go file", e.fileName)
	}
	input := e.Bytes()
	output, err := format.Source(input)
	if err != nil {
		msg := strings.Replace(err.Error(), "<standard input>", e.fileName, -1)
		log.Printf("Syntax errors in code:\n%s", msg)
		e.SetStatus("%s", msg)
		return fmt.Errorf("failed to format %s: %w", e.fileName, err)
	}
	if string(output) == string(input) {
		return nil
	}
	cursor, offset := e.GetCursor(), e.offset
	if err := e.LoadBytes(output); err != nil {
		return fmt.Errorf("failed to reload %s: %w", e.fileName, err)
	}
	e.SetCursor(gott.Point{Row: cursor.Row, Col: cursor.Col})
	e.offset = offset
	e.dirty++
	return nil
}
