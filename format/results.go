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
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/fugue/chksum/engine"
	"github.com/go-yaml/yaml"
)

// Row is one digest of one hashed entry, flattened for display
type Row struct {
	Path      string
	Kind      string
	Algorithm string
	Digest    string
	Size      int64
	Skipped   string
}

// Rows flattens results into one row per digest. With tree set, every
// descendant of a directory gets rows too, including skipped entries.
func Rows(results []*engine.Result, tree bool, digestFormat string) ([]Row, error) {
	var rows []Row
	var err error
	for _, result := range results {
		result.Walk(func(r *engine.Result, depth int) bool {
			if err != nil {
				return false
			}
			if !r.Hashed() {
				rows = append(rows, Row{
					Path:    r.Path,
					Kind:    r.Kind.String(),
					Skipped: r.Skipped,
				})
				return false
			}
			for _, sum := range r.Sums {
				var value string
				value, err = sum.Digest.Encode(sum.Algorithm, digestFormat)
				if err != nil {
					return false
				}
				rows = append(rows, Row{
					Path:      r.Path,
					Kind:      r.Kind.String(),
					Algorithm: sum.Algorithm,
					Digest:    value,
					Size:      r.Size,
				})
			}
			return tree
		})
	}
	return rows, err
}

// Lines renders rows the way checksum tools do. A single algorithm gives
// "<digest>  <path>"; several give "<ALGORITHM> (<path>) = <digest>".
func Lines(rows []Row, algorithms int) []string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		switch {
		case row.Skipped != "":
			lines = append(lines, fmt.Sprintf("%s: skipped (%s)", row.Path, row.Skipped))
		case algorithms > 1:
			lines = append(lines, fmt.Sprintf("%s (%s) = %s",
				strings.ToUpper(row.Algorithm), row.Path, row.Digest))
		default:
			lines = append(lines, fmt.Sprintf("%s  %s", row.Digest, row.Path))
		}
	}
	return lines
}

// RowTable renders rows as a table, highlighting skipped entries
func RowTable(rows []Row) ([]string, error) {
	items := make([]interface{}, len(rows))
	colors := make([]*color.Color, len(rows))
	for i, row := range rows {
		items[i] = row
		if row.Skipped != "" {
			colors[i] = color.New(color.FgYellow)
		}
	}
	return Table(TableOpts{
		Rows:       items,
		Colors:     colors,
		Columns:    []string{"Path", "Kind", "Algorithm", "Digest", "Size", "Skipped"},
		ShowHeader: true,
	})
}

// JSON renders results as indented JSON
func JSON(results []*engine.Result) (string, error) {
	js, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(js), nil
}

// YAML renders results as a YAML document
func YAML(results []*engine.Result) (string, error) {
	text, err := yaml.Marshal(results)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
