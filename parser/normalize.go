/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"
	"unicode"
)

// normalize strips comments, trims the line, collapses whitespace outside
// quoted spans, and applies alias substitution. The result may be empty.
//
// A # begins a comment anywhere on the line, even inside a quoted string.
func (p *Parser) normalize(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	line = collapseSpaces(line)
	return p.Aliases.Apply(line)
}

// collapseSpaces folds each run of whitespace outside double quotes into a
// single space. Quote state is tracked by parity: an even count of quote
// characters seen so far means outside.
func collapseSpaces(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	inQuotes := false
	pendingSpace := false
	for _, r := range line {
		if !inQuotes && unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		if r == '"' {
			inQuotes = !inQuotes
		}
		b.WriteRune(r)
	}
	return b.String()
}
