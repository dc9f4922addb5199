/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/mgclint/config"
	"bennypowers.dev/mgclint/internal/mapfs"
	"bennypowers.dev/mgclint/parser"
	"bennypowers.dev/mgclint/script"
)

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/mgclint.yaml", `
strict: true
files:
  - scripts/**/*.mgc
aliases:
  - name: "[CSSwap]"
    value: "801a4570"
  - name: "[Padding]"
    value: "00"
commands:
  - name: checksum
    args: [hex, data]
`)

	cfg, err := config.Load(mfs, ".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"scripts/**/*.mgc"}, cfg.Files)
	require.Len(t, cfg.Aliases, 2)
	assert.Equal(t, "[CSSwap]", cfg.Aliases[0].Name)
	assert.Equal(t, "801a4570", cfg.Aliases[0].Value)
	require.Len(t, cfg.Commands, 1)
	assert.Equal(t, []string{"hex", "data"}, cfg.Commands[0].Args)
}

func TestLoad_JSONC(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/mgclint.jsonc", `{
  // warnings are fatal on CI
  "strict": true,
  "aliases": [{"name": "[Addr]", "value": "80001234"}]
}`)

	cfg, err := config.Load(mfs, ".")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.Strict)
	require.Len(t, cfg.Aliases, 1)
	assert.Equal(t, "[Addr]", cfg.Aliases[0].Name)
}

func TestLoad_PrefersYAMLOverJSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/mgclint.yaml", "strict: true\n")
	mfs.AddFile(".config/mgclint.json", `{"strict": false}`)

	cfg, err := config.Load(mfs, ".")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.Strict)
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := config.Load(mapfs.New(), ".")
	require.NoError(t, err)
	assert.Nil(t, cfg)

	assert.NotNil(t, config.LoadOrDefault(mapfs.New(), "."))
}

func TestConfig_Apply(t *testing.T) {
	cfg := &config.Config{
		Aliases: []config.Alias{
			{Name: "[Addr]", Value: "80001234"},
		},
		Commands: []config.CommandSpec{
			{Name: "checksum", Args: []string{"hex", "data"}},
		},
	}

	p := parser.New()
	require.NoError(t, cfg.Apply(p))

	ops := p.Parse("!checksum 1c beef")
	require.Len(t, ops, 1)
	assert.Equal(t, script.KindCommand, ops[0].Kind)
	assert.Equal(t, "checksum", ops[0].Cmd.Name)

	ops = p.Parse("!loc [Addr]")
	require.Len(t, ops, 1)
	assert.Equal(t, script.NewCommand(script.Command{
		Name: "loc",
		Args: []script.Value{script.IntOf(0x80001234)},
	}), ops[0])
}

func TestConfig_ApplyBadArgType(t *testing.T) {
	cfg := &config.Config{
		Commands: []config.CommandSpec{
			{Name: "checksum", Args: []string{"bytes"}},
		},
	}

	err := cfg.Apply(parser.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum")
}

func TestConfig_ExpandFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("scripts/a.mgc", "ff\n")
	mfs.AddFile("scripts/nested/b.mgc", "ff\n")
	mfs.AddFile("scripts/readme.txt", "not a script\n")

	cfg := &config.Config{Files: []string{"scripts/**/*.mgc"}}
	files, err := cfg.ExpandFiles(mfs, ".")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"scripts/a.mgc", "scripts/nested/b.mgc"}, files)

	cfg = &config.Config{Files: []string{"scripts/a.mgc"}}
	files, err = cfg.ExpandFiles(mfs, ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"scripts/a.mgc"}, files)
}
