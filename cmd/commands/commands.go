/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package commands provides the commands command for mgclint.
package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/mgclint/config"
	mgcfs "bennypowers.dev/mgclint/fs"
	"bennypowers.dev/mgclint/parser"
)

// Cmd is the commands cobra command. It lists every registered script
// command with its argument signature, including config-file additions.
var Cmd = &cobra.Command{
	Use:   "commands",
	Short: "List registered script commands",
	Long:  `List every script command the validator accepts, with its argument signature.`,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}

	p := parser.New()
	cfg := config.LoadOrDefault(mgcfs.NewOSFileSystem(), ".")
	if err := cfg.Apply(p); err != nil {
		return fmt.Errorf("error applying config: %w", err)
	}

	switch format {
	case "json":
		signatures := make(map[string][]string)
		for _, name := range p.Commands.Names() {
			types, _ := p.Commands.Lookup(name)
			sig := make([]string, len(types))
			for i, t := range types {
				sig[i] = t.String()
			}
			signatures[name] = sig
		}
		out, err := json.MarshalIndent(signatures, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling command signatures: %w", err)
		}
		fmt.Println(string(out))
	default:
		for _, name := range p.Commands.Names() {
			types, _ := p.Commands.Lookup(name)
			sig := make([]string, len(types))
			for i, t := range types {
				sig[i] = t.String()
			}
			fmt.Printf("!%s %s\n", name, strings.Join(sig, " "))
		}
	}
	return nil
}
