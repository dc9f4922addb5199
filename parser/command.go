/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/mgclint/script"
)

// parseCommand handles a "!name args..." line, the ! already stripped.
func (p *Parser) parseCommand(line string) []script.Operation {
	if strings.Count(line, `"`)%2 == 1 {
		return []script.Operation{invalidSyntax}
	}
	tokens := strings.Split(line, " ")
	name := tokens[0]
	args := mergeQuoted(tokens[1:])
	// !define takes free-form replacement text; everything after the alias
	// name folds into one argument so it need not be quoted.
	if name == "define" && len(args) > 2 {
		args = []string{args[0], strings.Join(args[1:], " ")}
	}
	return p.validate(name, args)
}

// mergeQuoted rejoins token runs that a quoted span split apart. A run
// bounded by a pair of quote characters becomes one argument that keeps its
// quote markers; tokens outside quotes stay individually split.
func mergeQuoted(tokens []string) []string {
	var args []string
	var quoted []string
	for _, tok := range tokens {
		if len(quoted) > 0 {
			quoted = append(quoted, tok)
			if strings.HasSuffix(tok, `"`) {
				args = append(args, strings.Join(quoted, " "))
				quoted = nil
			}
			continue
		}
		if strings.HasPrefix(tok, `"`) && (len(tok) == 1 || !strings.HasSuffix(tok, `"`)) {
			quoted = append(quoted, tok)
			continue
		}
		args = append(args, tok)
	}
	// Balanced quotes can still leave a span open when a closing quote sits
	// mid-token; flush rather than drop.
	if len(quoted) > 0 {
		args = append(args, strings.Join(quoted, " "))
	}
	return args
}

// validate checks name against the registry, checks arity, and coerces each
// argument to its declared type. On success the final operation is exactly
// one command, placed after any accumulated warnings.
func (p *Parser) validate(name string, args []string) []script.Operation {
	types, ok := p.Commands.Lookup(name)
	if !ok {
		return []script.Operation{script.NewError("Unknown command")}
	}
	if types == nil {
		// No arity check declared: pass raw tokens through untyped.
		vals := make([]script.Value, len(args))
		for i, arg := range args {
			vals[i] = script.StringOf(arg)
		}
		return []script.Operation{script.NewCommand(script.Command{Name: name, Args: vals})}
	}
	if len(args) != len(types) {
		msg := fmt.Sprintf("Command expected %d arg(s) but received %d", len(types), len(args))
		return []script.Operation{script.NewError(msg)}
	}

	var ops []script.Operation
	vals := make([]script.Value, 0, len(args))
	for i, arg := range args {
		n := i + 1
		switch types[i] {
		case script.ArgStr:
			if len(arg) == 0 || arg[0] != '"' || arg[len(arg)-1] != '"' {
				return append(ops, argError(n, "a string"))
			}
			vals = append(vals, script.StringOf(strings.ReplaceAll(arg, `"`, "")))
		case script.ArgHex:
			v, err := strconv.ParseInt(arg, 16, 64)
			if err != nil {
				return append(ops, argError(n, "a hex value"))
			}
			vals = append(vals, script.IntOf(v))
		case script.ArgVar:
			vals = append(vals, script.StringOf(arg))
		case script.ArgInt:
			v, err := parseIntToken(arg)
			if err != nil {
				return append(ops, argError(n, "an integer"))
			}
			vals = append(vals, script.IntOf(v))
		case script.ArgData:
			data, dataOps := formatData(arg)
			if data == "" {
				return append(ops, argError(n, "hex or binary data"))
			}
			ops = append(ops, dataOps...)
			vals = append(vals, script.DataOf(data))
		}
	}
	return append(ops, script.NewCommand(script.Command{Name: name, Args: vals}))
}

// formatData applies the hex/binary detection used for raw data lines to a
// single command argument. Binary input is converted to hex so every data
// argument is stored uniformly as an even-length hex string.
func formatData(arg string) (string, []script.Operation) {
	switch {
	case arg == "":
		return "", []script.Operation{invalidSyntax}
	case isHexDigit(arg[0]):
		return formatHex(arg)
	case len(arg) == 1:
		return "", []script.Operation{invalidSyntax}
	case arg[0] == '%':
		data, ops := formatBin(arg[1:])
		if data == "" {
			return "", ops
		}
		return binToHex(data), ops
	default:
		return "", []script.Operation{invalidSyntax}
	}
}

func argError(n int, what string) script.Operation {
	return script.NewError(fmt.Sprintf("Command argument %d must be %s", n, what))
}
