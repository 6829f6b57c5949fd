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

import "fmt"

// DefaultGapWidth is the gap reserved at creation and added on each growth.
const DefaultGapWidth = 16

// grow replaces the storage so that the gap is exactly width bytes wide.
// The prefix keeps its place and the suffix moves to the end of the new
// storage, ahead of the reserved trailing byte.
func (b *Buffer) grow(width int) {
	if width <= b.GapWidth() {
		return
	}
	suffix := b.suffixLen()
	buf := make([]byte, b.size+width+1)
	copy(buf, b.buf[:b.curBeg])
	copy(buf[b.curBeg+width:], b.buf[b.curEnd:b.curEnd+suffix])
	b.buf = buf
	b.curEnd = b.curBeg + width
	if b.curEnd+suffix+1 != len(b.buf) {
		panic(fmt.Sprintf("gap: inconsistent growth: end=%d suffix=%d cap=%d", b.curEnd, suffix, len(b.buf)))
	}
}
