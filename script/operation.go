/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package script defines the operations emitted for each parsed MGC script
// line. Operations form a closed set: raw hex or binary data, a validated
// command, a macro invocation, or a warning/error diagnostic.
package script

import (
	"fmt"
	"strconv"
)

// Kind tags an Operation.
type Kind int

const (
	// KindHex is a line of raw hex data, normalized to an even-length
	// lower-case digit string.
	KindHex Kind = iota

	// KindBin is a line of raw binary data, normalized to a whole number
	// of 8-bit bytes.
	KindBin

	// KindCommand is a validated, type-coerced directive invocation.
	KindCommand

	// KindMacro is a macro invocation with a repeat count.
	KindMacro

	// KindWarning is a non-fatal diagnostic; processing continues.
	KindWarning

	// KindError is a fatal diagnostic for the line. A line that produced
	// an error never produces a primary operation after it.
	KindError
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case KindHex:
		return "hex"
	case KindBin:
		return "bin"
	case KindCommand:
		return "command"
	case KindMacro:
		return "macro"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Operation is one classified result unit for a script line. Exactly one
// payload field is meaningful for a given Kind: Data for KindHex, KindBin,
// KindWarning and KindError; Cmd for KindCommand; Mac for KindMacro.
type Operation struct {
	Kind Kind
	Data string
	Cmd  Command
	Mac  Macro
}

// NewHex returns a hex-data operation.
func NewHex(data string) Operation {
	return Operation{Kind: KindHex, Data: data}
}

// NewBin returns a binary-data operation.
func NewBin(data string) Operation {
	return Operation{Kind: KindBin, Data: data}
}

// NewCommand returns a command operation.
func NewCommand(cmd Command) Operation {
	return Operation{Kind: KindCommand, Cmd: cmd}
}

// NewMacro returns a macro-invocation operation.
func NewMacro(mac Macro) Operation {
	return Operation{Kind: KindMacro, Mac: mac}
}

// NewWarning returns a warning diagnostic.
func NewWarning(msg string) Operation {
	return Operation{Kind: KindWarning, Data: msg}
}

// NewError returns an error diagnostic.
func NewError(msg string) Operation {
	return Operation{Kind: KindError, Data: msg}
}

// Command is a validated invocation of a registered directive. It is
// constructed only after arity and per-argument type checks succeed.
type Command struct {
	Name string
	Args []Value
}

// Macro is a named repetition directive. Count is always at least 1.
type Macro struct {
	Name  string
	Count int
}

// ValueKind tags a coerced argument Value.
type ValueKind int

const (
	// StringValue is an unquoted string or an opaque identifier.
	StringValue ValueKind = iota

	// IntValue is an integer parsed from decimal or hex notation.
	IntValue

	// DataValue is a normalized even-length lower-case hex digit string.
	DataValue
)

// Value is one coerced command argument. Str holds the payload for
// StringValue and DataValue; Int holds it for IntValue.
type Value struct {
	Kind ValueKind
	Str  string
	Int  int64
}

// StringOf returns a string-typed argument value.
func StringOf(s string) Value {
	return Value{Kind: StringValue, Str: s}
}

// IntOf returns an integer-typed argument value.
func IntOf(n int64) Value {
	return Value{Kind: IntValue, Int: n}
}

// DataOf returns a data-typed argument value holding normalized hex digits.
func DataOf(hex string) Value {
	return Value{Kind: DataValue, Str: hex}
}

// String returns the value's payload in display form.
func (v Value) String() string {
	if v.Kind == IntValue {
		return strconv.FormatInt(v.Int, 10)
	}
	return v.Str
}

// ArgType declares the expected type of one command argument.
type ArgType int

const (
	// ArgHex is a bare hex number, e.g. 801a4570.
	ArgHex ArgType = iota

	// ArgInt is a decimal number or a 0x-prefixed hex number.
	ArgInt

	// ArgStr is a double-quoted string.
	ArgStr

	// ArgVar is an opaque identifier, passed through unchanged.
	ArgVar

	// ArgData is hex or binary data, stored as even-length hex digits.
	ArgData
)

// String returns the argument type's name as used in configuration.
func (t ArgType) String() string {
	switch t {
	case ArgHex:
		return "hex"
	case ArgInt:
		return "int"
	case ArgStr:
		return "str"
	case ArgVar:
		return "var"
	case ArgData:
		return "data"
	default:
		return "unknown"
	}
}

// ArgTypeFromString returns the argument type named by s.
func ArgTypeFromString(s string) (ArgType, error) {
	switch s {
	case "hex":
		return ArgHex, nil
	case "int":
		return ArgInt, nil
	case "str":
		return ArgStr, nil
	case "var":
		return ArgVar, nil
	case "data":
		return ArgData, nil
	default:
		return 0, fmt.Errorf("unrecognized argument type: %s", s)
	}
}
