/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for mgclint.
package config

import (
	"fmt"

	"bennypowers.dev/mgclint/parser"
	"bennypowers.dev/mgclint/script"
)

// Config represents the mgclint configuration.
type Config struct {
	// Files specifies script files to check (supports ** globs).
	Files []string `yaml:"files" json:"files"`

	// Strict treats warnings as errors.
	Strict bool `yaml:"strict" json:"strict"`

	// Aliases are substitutions applied to every line before
	// classification. Order matters: later aliases operate on the output
	// of earlier ones.
	Aliases []Alias `yaml:"aliases" json:"aliases"`

	// Commands declares extra command signatures beyond the built-in set.
	Commands []CommandSpec `yaml:"commands" json:"commands"`
}

// Alias is one substring substitution.
type Alias struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// CommandSpec declares one extra command signature. Args holds argument
// type names: hex, int, str, var, or data.
type CommandSpec struct {
	Name string   `yaml:"name" json:"name"`
	Args []string `yaml:"args" json:"args"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// Apply configures a parser from this config: aliases are registered in
// order and extra commands are added to the registry.
func (c *Config) Apply(p *parser.Parser) error {
	for _, a := range c.Aliases {
		p.RegisterAlias(a.Name, a.Value)
	}
	for _, cs := range c.Commands {
		types := make([]script.ArgType, len(cs.Args))
		for i, name := range cs.Args {
			t, err := script.ArgTypeFromString(name)
			if err != nil {
				return fmt.Errorf("command %q: %w", cs.Name, err)
			}
			types[i] = t
		}
		p.Commands.Register(cs.Name, types)
	}
	return nil
}
