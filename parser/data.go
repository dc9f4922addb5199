/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"
	"unicode"

	"bennypowers.dev/mgclint/script"
)

const (
	hexPadWarning = "Hex data is not byte-aligned; padding to the nearest byte"
	binPadWarning = "Binary data is not byte-aligned; padding to the nearest byte"
)

const hexDigits = "0123456789abcdef"

// formatHex strips whitespace, validates, lowercases, and left-pads data to
// a whole number of bytes. Invalid hex returns an empty string with the
// error in the operations; callers must not emit a primary data operation
// when the returned string is empty.
func formatHex(data string) (string, []script.Operation) {
	data = stripSpace(data)
	if !isHexString(data) {
		return "", []script.Operation{invalidSyntax}
	}
	data = strings.ToLower(data)
	var ops []script.Operation
	if len(data)%2 != 0 {
		ops = append(ops, script.NewWarning(hexPadWarning))
		data = "0" + data
	}
	return data, ops
}

// formatBin strips whitespace, validates, and left-pads data to a whole
// number of 8-bit bytes. The % discriminator must already be removed.
// Invalid input behaves as in formatHex.
func formatBin(data string) (string, []script.Operation) {
	data = stripSpace(data)
	if !isBinString(data) {
		return "", []script.Operation{invalidSyntax}
	}
	var ops []script.Operation
	if rem := len(data) % 8; rem != 0 {
		ops = append(ops, script.NewWarning(binPadWarning))
		data = strings.Repeat("0", 8-rem) + data
	}
	return data, ops
}

// binToHex converts a byte-aligned bit string to hex digits, preserving
// leading zero bytes.
func binToHex(bits string) string {
	var b strings.Builder
	b.Grow(len(bits) / 4)
	for i := 0; i+4 <= len(bits); i += 4 {
		n := 0
		for j := 0; j < 4; j++ {
			n <<= 1
			if bits[i+j] == '1' {
				n |= 1
			}
		}
		b.WriteByte(hexDigits[n])
	}
	return b.String()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isHexString(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isBinString(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}
