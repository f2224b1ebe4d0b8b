// Copyright 2020 Fugue, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package source

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/spf13/afero"
)

type directorySource struct {
	fs   afero.Fs
	path string
}

// Directory returns a Container listing the immediate entries of the
// directory at path. Regular files and directories become File and
// Directory children; every other entry becomes an unsupported child.
func Directory(fs afero.Fs, path string) Container {
	return &directorySource{fs: fs, path: path}
}

func (d *directorySource) Name() string { return d.path }

func (d *directorySource) Kind() Kind { return KindDirectory }

func (d *directorySource) List(ctx context.Context, drv Driver) ([]Entry, error) {
	var entries []Entry
	var listErr error
	if err := drv.Do(ctx, func() error {
		entries, listErr = d.list()
		return nil
	}); err != nil {
		return nil, err
	}
	if listErr != nil {
		return nil, classify(d.path, listErr)
	}
	sortEntries(entries)
	return entries, nil
}

func (d *directorySource) list() ([]Entry, error) {
	if _, ok := d.fs.(*afero.OsFs); ok {
		return d.listDirents()
	}
	infos, err := afero.ReadDir(d.fs, d.path)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, d.child(info.Name(), info.Mode()))
	}
	return entries, nil
}

// listDirents reads entry names and types straight from the directory,
// without a stat per entry
func (d *directorySource) listDirents() ([]Entry, error) {
	dirents, err := godirwalk.ReadDirents(d.path, nil)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		entries = append(entries, d.child(de.Name(), de.ModeType()))
	}
	return entries, nil
}

func (d *directorySource) child(name string, mode os.FileMode) Entry {
	childPath := filepath.Join(d.path, name)
	switch {
	case mode.IsDir():
		return Named(name, Directory(d.fs, childPath))
	case mode.IsRegular():
		return Named(name, File(d.fs, childPath))
	default:
		return Named(name, Skip(childPath, describeMode(mode)))
	}
}

type unsupportedSource struct {
	path   string
	reason string
}

// Skip returns a Hashable standing in for an entry that cannot be hashed
func Skip(path, reason string) Hashable {
	return &unsupportedSource{path: path, reason: reason}
}

func (u *unsupportedSource) Name() string { return u.path }

func (u *unsupportedSource) Kind() Kind { return KindUnsupported }

// SkipReason returns the reason attached to an unsupported Hashable
func SkipReason(h Hashable) string {
	if u, ok := h.(*unsupportedSource); ok {
		return u.reason
	}
	return ""
}

type treeSource struct {
	name    string
	entries []Entry
}

// Tree returns an in-memory Container holding the given children
func Tree(name string, entries ...Entry) Container {
	return &treeSource{name: name, entries: entries}
}

func (t *treeSource) Name() string { return t.name }

func (t *treeSource) Kind() Kind { return KindDirectory }

func (t *treeSource) List(ctx context.Context, drv Driver) ([]Entry, error) {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	sortEntries(entries)

	for i, entry := range entries {
		entryPath := t.name + "/" + entry.Name
		switch {
		case entry.Name == "", entry.Name == ".", entry.Name == "..":
			return nil, &InvalidEntry{Path: entryPath, Reason: "invalid name"}
		case strings.ContainsAny(entry.Name, "/\x00"):
			return nil, &InvalidEntry{Path: entryPath, Reason: "name contains a separator"}
		case entry.Source == nil:
			return nil, &InvalidEntry{Path: entryPath, Reason: "no source"}
		case i > 0 && entries[i-1].Name == entry.Name:
			return nil, &InvalidEntry{Path: entryPath, Reason: "duplicate name"}
		}
	}
	return entries, nil
}

// sortEntries orders entries by name, comparing bytes
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
