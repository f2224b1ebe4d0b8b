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
	"fmt"
	"os"
	"path/filepath"
	"sort"

	glob "github.com/bmatcuk/doublestar"
	"github.com/spf13/afero"
)

// Path returns a Directory or File for the entry at path, following
// symbolic links. Any other kind of entry is an Unsupported error.
func Path(fs afero.Fs, path string) (Hashable, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}
	switch mode := info.Mode(); {
	case mode.IsDir():
		return Directory(fs, path), nil
	case mode.IsRegular():
		return File(fs, path), nil
	default:
		return nil, &Unsupported{Path: path, Reason: describeMode(mode)}
	}
}

// MatchFiles returns regular files within the directory that match the
// pattern, sorted by path. Patterns use "/" separators and may contain
// "**" to match across directories.
func MatchFiles(fs afero.Fs, dir, pattern string) ([]string, error) {
	badGlob := fmt.Errorf("invalid source glob %s", pattern)
	results := []string{}
	err := afero.Walk(fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		matched, err := glob.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return badGlob
		}
		if matched {
			results = append(results, p)
		}
		return nil
	})
	if err == badGlob {
		return nil, err
	}
	if err != nil {
		return nil, classify(dir, err)
	}
	sort.Strings(results)
	return results, nil
}
