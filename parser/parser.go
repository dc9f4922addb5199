/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser classifies and validates MGC script lines.
//
// Each call to Parse handles exactly one physical line and returns the
// ordered operations it produced. Malformed user input never fails the
// call: it comes back as error operations in the result.
package parser

import (
	"bennypowers.dev/mgclint/script"
)

// invalidSyntax is the generic diagnostic for a malformed line.
var invalidSyntax = script.NewError("Invalid syntax")

// Parser turns script lines into ordered operation sequences. The alias
// table and command registry are read-only during Parse; callers mutate
// them only between calls.
type Parser struct {
	Aliases  *AliasTable
	Commands *Registry
}

// New returns a Parser with an empty alias table and the default command
// registry.
func New() *Parser {
	return &Parser{
		Aliases:  NewAliasTable(),
		Commands: DefaultRegistry(),
	}
}

// RegisterAlias inserts or overwrites one alias substitution.
func (p *Parser) RegisterAlias(key, value string) {
	p.Aliases.Register(key, value)
}

// Parse classifies one script line and returns the operations it produced.
// A trailing line terminator is tolerated. Empty, whitespace-only and
// comment-only lines yield no operations.
//
// Classification dispatches on the first character of the normalized line:
// a hex digit starts raw hex data, % starts binary data, + a macro
// invocation, and ! a command. Anything else is a syntax error.
func (p *Parser) Parse(line string) []script.Operation {
	line = p.normalize(line)
	if line == "" {
		return nil
	}
	switch {
	case isHexDigit(line[0]):
		data, ops := formatHex(line)
		if data != "" {
			ops = append(ops, script.NewHex(data))
		}
		return ops
	case len(line) == 1:
		// A bare discriminator character (%, +, !) has nothing to
		// dispatch on.
		return []script.Operation{invalidSyntax}
	case line[0] == '%':
		data, ops := formatBin(line[1:])
		if data != "" {
			ops = append(ops, script.NewBin(data))
		}
		return ops
	case line[0] == '+':
		return parseMacro(line[1:])
	case line[0] == '!':
		return p.parseCommand(line[1:])
	default:
		return []script.Operation{invalidSyntax}
	}
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'f' ||
		c >= 'A' && c <= 'F'
}
