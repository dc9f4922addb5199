/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"reflect"
	"testing"

	"bennypowers.dev/mgclint/parser"
	"bennypowers.dev/mgclint/script"
)

func TestParse_EmptyResults(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty line", ""},
		{"whitespace only", "   "},
		{"tab only", "\t"},
		{"comment only", "# comment"},
		{"indented comment", "   # comment"},
		{"bare newline", "\n"},
	}

	p := parser.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ops := p.Parse(tt.input); len(ops) != 0 {
				t.Errorf("Parse(%q) = %v, want no operations", tt.input, ops)
			}
		})
	}
}

func TestParse_HexData(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []script.Operation
	}{
		{
			name:  "aligned hex",
			input: "ff",
			want:  []script.Operation{script.NewHex("ff")},
		},
		{
			name:  "odd length padded",
			input: "1a0",
			want: []script.Operation{
				script.NewWarning("Hex data is not byte-aligned; padding to the nearest byte"),
				script.NewHex("01a0"),
			},
		},
		{
			name:  "uppercase lowered",
			input: "1A0F",
			want:  []script.Operation{script.NewHex("1a0f")},
		},
		{
			name:  "internal spaces stripped",
			input: "de ad be ef",
			want:  []script.Operation{script.NewHex("deadbeef")},
		},
		{
			name:  "trailing newline tolerated",
			input: "ff\n",
			want:  []script.Operation{script.NewHex("ff")},
		},
		{
			name:  "hex-leading garbage",
			input: "fg",
			want:  []script.Operation{script.NewError("Invalid syntax")},
		},
	}

	p := parser.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_BinData(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []script.Operation
	}{
		{
			name:  "short bits padded",
			input: "%101",
			want: []script.Operation{
				script.NewWarning("Binary data is not byte-aligned; padding to the nearest byte"),
				script.NewBin("00000101"),
			},
		},
		{
			name:  "aligned bits",
			input: "%00000101",
			want:  []script.Operation{script.NewBin("00000101")},
		},
		{
			name:  "non-binary digits",
			input: "%12",
			want:  []script.Operation{script.NewError("Invalid syntax")},
		},
		{
			name:  "bare discriminator",
			input: "%",
			want:  []script.Operation{script.NewError("Invalid syntax")},
		},
	}

	p := parser.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Macro(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []script.Operation
	}{
		{
			name:  "default count",
			input: "+macroA",
			want:  []script.Operation{script.NewMacro(script.Macro{Name: "macroA", Count: 1})},
		},
		{
			name:  "decimal count",
			input: "+macroA 3",
			want:  []script.Operation{script.NewMacro(script.Macro{Name: "macroA", Count: 3})},
		},
		{
			name:  "hex count",
			input: "+macroA 0x10",
			want:  []script.Operation{script.NewMacro(script.Macro{Name: "macroA", Count: 16})},
		},
		{
			name:  "zero count",
			input: "+macroA 0",
			want:  []script.Operation{script.NewError("Macro count must be greater than 0")},
		},
		{
			name:  "negative count",
			input: "+macroA -2",
			want:  []script.Operation{script.NewError("Macro count must be greater than 0")},
		},
		{
			name:  "unparsable count",
			input: "+macroA lots",
			want:  []script.Operation{script.NewError("Invalid syntax")},
		},
		{
			name:  "too many tokens",
			input: "+macroA 1 2",
			want:  []script.Operation{script.NewError("Invalid syntax")},
		},
		{
			name:  "bare plus",
			input: "+",
			want:  []script.Operation{script.NewError("Invalid syntax")},
		},
	}

	p := parser.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_UnclassifiableLines(t *testing.T) {
	p := parser.New()
	for _, input := range []string{"@", "!", "zzz", "-1a0", "説明"} {
		t.Run(input, func(t *testing.T) {
			want := []script.Operation{script.NewError("Invalid syntax")}
			if got := p.Parse(input); !reflect.DeepEqual(got, want) {
				t.Errorf("Parse(%q) = %v, want %v", input, got, want)
			}
		})
	}
}

func TestParse_AliasEquivalence(t *testing.T) {
	p := parser.New()
	p.RegisterAlias("FOO", "1a0")

	aliased := p.Parse("FOO")
	direct := p.Parse("1a0")
	if !reflect.DeepEqual(aliased, direct) {
		t.Errorf("Parse(\"FOO\") = %v, want same as Parse(\"1a0\") = %v", aliased, direct)
	}

	fresh := parser.New().Parse("1a0")
	if !reflect.DeepEqual(aliased, fresh) {
		t.Errorf("aliased result %v differs from unaliased parser result %v", aliased, fresh)
	}
}

func TestParse_AliasesApplySequentially(t *testing.T) {
	// Later aliases operate on the output of earlier ones.
	p := parser.New()
	p.RegisterAlias("X", "Y")
	p.RegisterAlias("Y", "ff")

	want := []script.Operation{script.NewHex("ff")}
	if got := p.Parse("X"); !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(\"X\") = %v, want %v", got, want)
	}
}

func TestParse_FormattedDataIsIdempotent(t *testing.T) {
	p := parser.New()
	for _, input := range []string{"1a0", "ff", "deadbeef1", "%101", "%1111000011"} {
		t.Run(input, func(t *testing.T) {
			first := p.Parse(input)
			primary := first[len(first)-1]

			var again []script.Operation
			switch primary.Kind {
			case script.KindHex:
				again = p.Parse(primary.Data)
			case script.KindBin:
				again = p.Parse("%" + primary.Data)
			default:
				t.Fatalf("Parse(%q) produced no primary data operation: %v", input, first)
			}

			want := []script.Operation{primary}
			if !reflect.DeepEqual(again, want) {
				t.Errorf("re-parsing %q = %v, want %v (no warnings)", primary.Data, again, want)
			}
		})
	}
}

func TestParse_QuotedWhitespacePreserved(t *testing.T) {
	p := parser.New()
	want := []script.Operation{script.NewCommand(script.Command{
		Name: "echo",
		Args: []script.Value{script.StringOf("hi   there")},
	})}
	got := p.Parse(`!echo   "hi   there"`)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParse_IndependentParserInstances(t *testing.T) {
	a := parser.New()
	b := parser.New()
	a.RegisterAlias("FOO", "1a0")

	want := []script.Operation{script.NewError("Invalid syntax")}
	if got := b.Parse("FOO"); !reflect.DeepEqual(got, want) {
		t.Errorf("alias leaked across parser instances: Parse(\"FOO\") = %v", got)
	}
}
