/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strconv"
	"strings"

	"bennypowers.dev/mgclint/script"
)

// parseMacro handles a "+name [count]" invocation, the + already stripped.
// A missing count defaults to 1; a count below 1 is an error.
func parseMacro(line string) []script.Operation {
	args := strings.Split(line, " ")
	switch len(args) {
	case 1:
		return []script.Operation{script.NewMacro(script.Macro{Name: line, Count: 1})}
	case 2:
		count, err := parseIntToken(args[1])
		if err != nil {
			return []script.Operation{invalidSyntax}
		}
		if count < 1 {
			return []script.Operation{script.NewError("Macro count must be greater than 0")}
		}
		return []script.Operation{script.NewMacro(script.Macro{Name: args[0], Count: int(count)})}
	default:
		return []script.Operation{invalidSyntax}
	}
}

// parseIntToken accepts a decimal literal or a 0x-prefixed hex literal.
func parseIntToken(tok string) (int64, error) {
	if strings.HasPrefix(tok, "0x") {
		return strconv.ParseInt(tok[2:], 16, 64)
	}
	return strconv.ParseInt(tok, 10, 64)
}
