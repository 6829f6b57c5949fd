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

// A Key identifies a non-character key. Printable characters arrive in
// Event.Ch with Key set to KeyNone. Ctrl-H arrives as KeyBackspace.
type Key int

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEsc
	KeyTab
	KeySpace
	KeyCtrlB
	KeyCtrlE
	KeyCtrlF
	KeyCtrlL
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlT
	KeyUnsupported
)
