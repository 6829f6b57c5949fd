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

// Package editor implements the document that texter edits.
// The whole document lives in one gap buffer with '\n' between lines;
// rows and columns are derived from the buffer's line index whenever
// they are needed, so there is no second copy of the cursor to keep in
// step. The editor also loads and saves files, keeps the display offset
// for scrolling, and draws the visible rows onto a Display.
package editor
