/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for mgclint.
package check

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/mgclint/config"
	mgcfs "bennypowers.dev/mgclint/fs"
	"bennypowers.dev/mgclint/internal/logger"
	"bennypowers.dev/mgclint/parser"
	"bennypowers.dev/mgclint/script"
)

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check MGC script files",
	Long: `Check MGC script files for syntax errors, unknown commands, argument
type mismatches, and data alignment warnings.

Files default to the config file list (.config/mgclint.yaml) when no
arguments are given.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output diagnostics")
	_ = viper.BindPFlag("strict", Cmd.Flags().Lookup("strict"))
}

// diagnostic is one reported problem with its location.
type diagnostic struct {
	path string
	line int
	op   script.Operation
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := mgcfs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	strict := cfg.Strict || viper.GetBool("strict")

	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	p := parser.New()
	if err := cfg.Apply(p); err != nil {
		return fmt.Errorf("error applying config: %w", err)
	}

	var errCount, warnCount int
	for _, file := range files {
		if !quiet {
			logger.Info("Checking %s...", file)
		}

		diags, err := checkFile(filesystem, p, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			errCount++
			continue
		}

		for _, d := range diags {
			kind := "error"
			if d.op.Kind == script.KindWarning {
				kind = "warning"
				warnCount++
			} else {
				errCount++
			}
			fmt.Fprintf(os.Stderr, "%s:%d: %s: %s\n", d.path, d.line, kind, d.op.Data)
		}
	}

	if !quiet {
		logger.Info("%d error(s), %d warning(s)", errCount, warnCount)
	}
	if errCount > 0 {
		return fmt.Errorf("found %d error(s)", errCount)
	}
	if strict && warnCount > 0 {
		return fmt.Errorf("found %d warning(s) in strict mode", warnCount)
	}
	return nil
}

// checkFile parses every line of one script file and collects its
// diagnostics. Validated define commands feed the parser's alias table so
// later lines see the substitution, mirroring the compiler driver.
func checkFile(filesystem mgcfs.FileSystem, p *parser.Parser, path string) ([]diagnostic, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var diags []diagnostic
	for i, line := range strings.Split(string(data), "\n") {
		for _, op := range p.Parse(line) {
			switch op.Kind {
			case script.KindWarning, script.KindError:
				diags = append(diags, diagnostic{path: path, line: i + 1, op: op})
			case script.KindCommand:
				if op.Cmd.Name == "define" && len(op.Cmd.Args) == 2 {
					registerDefine(p, op.Cmd)
				}
			}
		}
	}
	return diags, nil
}

// registerDefine adds a !define result to the alias table. Keys are wrapped
// in brackets, matching how scripts reference them.
func registerDefine(p *parser.Parser, cmd script.Command) {
	key := "[" + cmd.Args[0].Str + "]"
	if p.Aliases.Has(key) {
		logger.Warn("alias %s already exists and is being overwritten", key)
	}
	p.RegisterAlias(key, cmd.Args[1].Str)
}
