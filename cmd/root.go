/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for mgclint.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/mgclint/cmd/check"
	"bennypowers.dev/mgclint/cmd/commands"
	"bennypowers.dev/mgclint/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "mgclint",
	Short: "Parse and validate MGC patch scripts",
	Long:  `mgclint parses and validates MGC patch-script files, the line-oriented language used to author binary patch and code descriptions.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(commands.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
