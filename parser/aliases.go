/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import "strings"

// AliasTable is an ordered set of literal substring substitutions applied
// to every line before classification. Registration order is substitution
// order; later entries operate on the output of earlier ones.
//
// Keys are not word-boundary aware: a key occurring inside unrelated text
// is replaced there too.
type AliasTable struct {
	entries []aliasEntry
}

type aliasEntry struct {
	key   string
	value string
}

// NewAliasTable returns an empty alias table.
func NewAliasTable() *AliasTable {
	return &AliasTable{}
}

// Register inserts or overwrites one alias. Overwriting keeps the entry's
// original position in the substitution order.
func (t *AliasTable) Register(key, value string) {
	for i := range t.entries {
		if t.entries[i].key == key {
			t.entries[i].value = value
			return
		}
	}
	t.entries = append(t.entries, aliasEntry{key: key, value: value})
}

// Has reports whether key is registered.
func (t *AliasTable) Has(key string) bool {
	for i := range t.entries {
		if t.entries[i].key == key {
			return true
		}
	}
	return false
}

// Len reports the number of registered aliases.
func (t *AliasTable) Len() int {
	return len(t.entries)
}

// Apply performs sequential substring replacement of every registered
// alias in line.
func (t *AliasTable) Apply(line string) string {
	for _, e := range t.entries {
		if strings.Contains(line, e.key) {
			line = strings.ReplaceAll(line, e.key, e.value)
		}
	}
	return line
}
