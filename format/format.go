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
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/fatih/structs"
)

// TableOpts are options used when rendering a table
type TableOpts struct {
	Rows       []interface{}
	Colors     []*color.Color
	Columns    []string
	Separator  string
	ShowHeader bool
}

// Table builds a text table from the given data items and chosen columns.
// It returns a list of rows that can be printed.
func Table(opts TableOpts) ([]string, error) {

	if len(opts.Rows) == 0 {
		return nil, errors.New("No rows to display")
	}
	if len(opts.Columns) == 0 {
		return nil, errors.New("No columns to display")
	}

	separator := opts.Separator
	if separator == "" {
		separator = " | "
	}

	labels := make([]string, len(opts.Columns))
	widths := make([]int, len(opts.Columns))
	for i, column := range opts.Columns {
		labels[i] = strings.ToUpper(toSnakeCase(column))
		if opts.ShowHeader {
			widths[i] = len(labels[i])
		}
	}

	cells := make([][]string, len(opts.Rows))
	for r, row := range opts.Rows {
		values, err := cellValues(structs.Map(row), opts.Columns)
		if err != nil {
			return nil, err
		}
		for i, value := range values {
			if len(value) > widths[i] {
				widths[i] = len(value)
			}
		}
		cells[r] = values
	}

	var lines []string
	if opts.ShowHeader {
		tableWidth := len(separator) * (len(widths) - 1)
		for _, w := range widths {
			tableWidth += w
		}
		rule := strings.Repeat("=", tableWidth)
		lines = append(lines, rule, joinPadded(labels, widths, separator, nil), rule)
	}

	// Colors apply only when there is one per row
	useColors := len(opts.Colors) == len(opts.Rows)
	for r, values := range cells {
		var c *color.Color
		if useColors {
			c = opts.Colors[r]
		}
		lines = append(lines, joinPadded(values, widths, separator, c))
	}
	return lines, nil
}

func cellValues(item map[string]interface{}, columns []string) ([]string, error) {
	values := make([]string, len(columns))
	for i, column := range columns {
		value, ok := item[column]
		if !ok {
			return nil, fmt.Errorf("Item has no attribute: %s", column)
		}
		if s, ok := value.(fmt.Stringer); ok {
			values[i] = s.String()
		} else {
			values[i] = fmt.Sprintf("%v", value)
		}
	}
	return values, nil
}

func joinPadded(values []string, widths []int, separator string, c *color.Color) string {
	padded := make([]string, len(values))
	for i, value := range values {
		format := fmt.Sprintf("%%-%ds", widths[i])
		if c != nil {
			padded[i] = c.Sprintf(format, value)
		} else {
			padded[i] = fmt.Sprintf(format, value)
		}
	}
	return strings.Join(padded, separator)
}

// toSnakeCase converts "FavoriteNumber" to "favorite_number"
func toSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
