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
	"encoding/hex"
	"regexp"
	"unicode"

	gott "github.com/timburks/texter/types"
)

// Colors used for Go source.
const (
	colorKeyword     gott.Color = 0x70
	colorNumber      gott.Color = 0x83
	colorPunctuation gott.Color = 0x71
	colorString      gott.Color = 0xe0
	colorComment     gott.Color = 0xf8
)

// The GoHighlighter colors one line of Go code at a time.
type GoHighlighter struct {
	hexPattern          *regexp.Regexp
	punctuationPattern  *regexp.Regexp
	commentPattern      *regexp.Regexp
	quotedStringPattern *regexp.Regexp
	keywordPattern      *regexp.Regexp
	numberPattern       *regexp.Regexp
}

func NewGoHighlighter() *GoHighlighter {
	h := &GoHighlighter{}
	h.hexPattern = regexp.MustCompile(`0x[0-9a-f][0-9a-f]`)
	h.punctuationPattern = regexp.MustCompile(`\(|\)|,|:|=|\[|\]|\{|\}|\+|-|\*|<|>|;`)
	h.commentPattern = regexp.MustCompile(`//.*$`)
	h.quotedStringPattern = regexp.MustCompile(`"[^"]*"`)
	h.keywordPattern = regexp.MustCompile(`break|default|func|interface|select|case|defer|go|map|struct|chan|else|goto|package|switch|const|fallthrough|if|range|type|continue|for|import|return|var`)
	h.keywordPattern.Longest()
	h.numberPattern = regexp.MustCompile(`([0-9]+(\.[0-9]*)?)|(([0-9]*\.)?[0-9]+)`)
	return h
}

// Highlight returns one color for each byte of line. Later patterns
// override earlier ones, so comments win over everything.
func (h *GoHighlighter) Highlight(line string) []gott.Color {
	colors := make([]gott.Color, len(line))
	for j := range colors {
		colors[j] = gott.ColorPlain
	}
	paint := func(p *regexp.Regexp, color gott.Color, wholeWord bool) {
		for _, match := range p.FindAllStringIndex(line, -1) {
			// if there's an alphanumeric character on either side, skip this
			if wholeWord && checkalphanum(line, match[0], match[1]) {
				continue
			}
			for k := match[0]; k < match[1]; k++ {
				colors[k] = color
			}
		}
	}
	paint(h.keywordPattern, colorKeyword, true)
	paint(h.numberPattern, colorNumber, true)
	paint(h.punctuationPattern, colorPunctuation, false)

	// hex bytes are shown in the color they name
	for _, match := range h.hexPattern.FindAllStringIndex(line, -1) {
		x, err := hex.DecodeString(line[match[0]+2 : match[1]])
		if err != nil {
			continue
		}
		for k := match[0]; k < match[1]; k++ {
			colors[k] = gott.Color(x[0])
		}
	}

	paint(h.quotedStringPattern, colorString, false)
	paint(h.commentPattern, colorComment, false)
	return colors
}

func checkalphanum(line string, start, end int) bool {
	if start > 0 {
		c := rune(line[start-1])
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return true
		}
	}
	if end < len(line) {
		c := rune(line[end])
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return true
		}
	}
	return false
}
