/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem implementation for testing.
package mapfs

import (
	"io/fs"
	"path"
	"strings"
	"testing/fstest"
	"time"
)

// MapFileSystem implements the mgclint FileSystem interface on top of an
// in-memory fstest.MapFS, for tests that should not touch the real
// filesystem.
type MapFileSystem struct {
	mapFS   fstest.MapFS
	modTime time.Time
}

// New creates a new in-memory filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:   make(fstest.MapFS),
		modTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file to the in-memory filesystem, creating parents
// implicitly.
func (m *MapFileSystem) AddFile(p string, content string) {
	m.mapFS[cleanPath(p)] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    0644,
		ModTime: m.modTime,
	}
}

// ReadFile reads the entire contents of a file.
func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	return m.mapFS.ReadFile(cleanPath(name))
}

// ReadDir reads the named directory and returns its entries.
func (m *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return m.mapFS.ReadDir(cleanPath(name))
}

// Stat returns file information for the named file.
func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	return m.mapFS.Stat(cleanPath(name))
}

// Exists returns true if the path exists.
func (m *MapFileSystem) Exists(p string) bool {
	_, err := m.mapFS.Stat(cleanPath(p))
	return err == nil
}

// Open opens the named file for reading.
func (m *MapFileSystem) Open(name string) (fs.File, error) {
	return m.mapFS.Open(cleanPath(name))
}

// cleanPath maps OS-style paths onto the slash-separated, rootless form
// io/fs requires.
func cleanPath(p string) string {
	p = strings.TrimPrefix(p, "/")
	p = path.Clean(p)
	if p == "" {
		return "."
	}
	return p
}
