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
package cmd

import (
	"fmt"
	"os"

	"github.com/fugue/chksum/format"
	"github.com/fugue/chksum/hash"
	"github.com/spf13/cobra"
)

type algorithmRow struct {
	Name           string
	Size           int
	Implementation string
}

func algorithmRows() []interface{} {
	var rows []interface{}
	for _, name := range hash.Algorithms() {
		row := algorithmRow{Name: name, Size: hash.Must(name).Size()}
		if name == hash.SHA256 {
			row.Implementation = hash.SHA256Implementation
		}
		rows = append(rows, row)
	}
	return rows
}

// NewAlgorithmsCommand returns a command that lists registered algorithms
func NewAlgorithmsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "algorithms",
		Aliases: []string{"algs"},
		Short:   "List supported hash algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			table, err := format.Table(format.TableOpts{
				Rows:       algorithmRows(),
				Columns:    []string{"Name", "Size", "Implementation"},
				ShowHeader: true,
			})
			if err != nil {
				fatal(err)
			}
			for _, line := range table {
				fmt.Fprintln(os.Stdout, line)
			}
		},
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(NewAlgorithmsCommand())
}
