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

// Package gap implements the gap buffer that holds the text of a document.
// The gap sits at the cursor: inserting fills it, deleting forward widens it,
// and moving the cursor copies bytes across it. Positions are byte offsets.
// Out of range requests are clamped rather than reported as errors.
// A Buffer is not safe for concurrent use.
package gap
