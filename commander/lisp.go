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
	"log"
	"os"

	"github.com/steelseries/golisp"
)

type primitive func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

// bind installs the editor primitives into the global lisp environment.
// golisp keeps one environment per process, so the most recent evaluator
// owns the primitives.
func (c *Commander) bind() {
	e := c.editor
	b := e.Buffer
	cursor := func() *golisp.Data {
		return golisp.IntegerWithValue(int64(b().Cursor()))
	}
	primitives := []struct {
		name     string
		argCount string
		impl     primitive
	}{
		{"insert", "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			s, err := stringArg("insert", golisp.Car(args))
			if err != nil {
				return nil, err
			}
			e.InsertText(s)
			return cursor(), nil
		}},
		{"move", "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			n, err := integerArg("move", golisp.Car(args))
			if err != nil {
				return nil, err
			}
			b().Move(n)
			return cursor(), nil
		}},
		{"delete", "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			n, err := integerArg("delete", golisp.Car(args))
			if err != nil {
				return nil, err
			}
			for i := 0; i < n; i++ {
				e.DeleteForward()
			}
			return cursor(), nil
		}},
		{"next-line", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			b().NextLine()
			return cursor(), nil
		}},
		{"prev-line", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			b().PrevLine()
			return cursor(), nil
		}},
		{"cursor", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			return cursor(), nil
		}},
		{"text", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			return golisp.StringWithValue(b().String()), nil
		}},
		{"line", "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			n, err := integerArg("line", golisp.Car(args))
			if err != nil {
				return nil, err
			}
			return golisp.StringWithValue(b().Line(n)), nil
		}},
		{"line-count", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			return golisp.IntegerWithValue(int64(e.LineCount())), nil
		}},
		{"save", "0|1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			var name string
			if golisp.Length(args) == 1 {
				s, err := stringArg("save", golisp.Car(args))
				if err != nil {
					return nil, err
				}
				name = s
			}
			if err := e.WriteFile(name); err != nil {
				return nil, err
			}
			return golisp.StringWithValue(e.FileName()), nil
		}},
		{"gofmt", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			if err := e.Gofmt(); err != nil {
				return nil, err
			}
			return cursor(), nil
		}},
		{"status", "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			s, err := stringArg("status", golisp.Car(args))
			if err != nil {
				return nil, err
			}
			e.SetStatus("%s", s)
			return golisp.StringWithValue(s), nil
		}},
	}
	for _, p := range primitives {
		golisp.MakePrimitiveFunction(p.name, p.argCount, p.impl)
	}
}

func stringArg(name string, val *golisp.Data) (string, error) {
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

func integerArg(name string, val *golisp.Data) (int, error) {
	if !golisp.IntegerP(val) {
		return 0, fmt.Errorf("%s requires an integer argument", name)
	}
	return int(golisp.IntegerValue(val)), nil
}

// ParseEval evaluates one lisp expression against the editor and returns
// the printed result or the error message.
func (c *Commander) ParseEval(command string) string {
	c.bind()
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	log.Printf("SEXPR %+v", value)
	if golisp.StringP(value) {
		return golisp.StringValue(value)
	}
	return golisp.String(value)
}

// ParseEvalFile evaluates every expression in a lisp script.
func (c *Commander) ParseEvalFile(path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	c.bind()
	if _, err := golisp.ParseAndEval("(begin\n" + string(script) + "\n)"); err != nil {
		return fmt.Errorf("failed to evaluate %s: %w", path, err)
	}
	return nil
}
