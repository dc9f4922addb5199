/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"sort"

	"bennypowers.dev/mgclint/script"
)

// Registry maps command names to their expected argument types. A nil type
// list disables arity and type checking for that command; an empty list
// means zero arguments. Absence of a name means the command is unknown.
type Registry struct {
	specs map[string][]script.ArgType
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string][]script.ArgType)}
}

// Register adds or replaces one command signature.
func (r *Registry) Register(name string, args []script.ArgType) {
	r.specs[name] = args
}

// Lookup returns the argument types declared for name. ok is false for
// unknown commands.
func (r *Registry) Lookup(name string) (args []script.ArgType, ok bool) {
	args, ok = r.specs[name]
	return args, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns the standard MGC command set.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for name, args := range defaultCommands {
		r.Register(name, args)
	}
	return r
}

var defaultCommands = map[string][]script.ArgType{
	"loc":           {script.ArgHex},
	"gci":           {script.ArgHex},
	"patch":         {script.ArgHex},
	"add":           {script.ArgHex},
	"src":           {script.ArgStr},
	"asmsrc":        {script.ArgStr},
	"file":          {script.ArgStr},
	"geckocodelist": {script.ArgStr},
	"string":        {script.ArgStr},
	"fill":          {script.ArgInt, script.ArgData},
	"asm":           {},
	"asmend":        {},
	"c2":            {script.ArgHex},
	"c2end":         {},
	"begin":         {},
	"end":           {},
	"echo":          {script.ArgStr},
	"macro":         {script.ArgVar},
	"macroend":      {},
	"define":        {script.ArgVar, script.ArgVar},
	"blockorder": {
		script.ArgInt, script.ArgInt, script.ArgInt, script.ArgInt, script.ArgInt,
		script.ArgInt, script.ArgInt, script.ArgInt, script.ArgInt, script.ArgInt,
	},
}
