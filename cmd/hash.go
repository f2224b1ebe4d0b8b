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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fugue/chksum/batch"
	"github.com/fugue/chksum/engine"
	"github.com/fugue/chksum/format"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewHashCommand returns a command that prints digests of the given inputs
func NewHashCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hash [paths...]",
		Aliases: []string{"sum"},
		Short:   "Print digests of files, directories or standard input",
		Run: func(cmd *cobra.Command, args []string) {
			opts := getChksumOptions()
			results, err := hashInputs(cmd.Context(), afero.NewOsFs(), opts, args)
			if err != nil {
				fatal(err)
			}
			text, err := render(results, opts)
			if err != nil {
				fatal(err)
			}
			fmt.Fprintln(os.Stdout, text)
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text, table, json, yaml)")
	cmd.Flags().String("format", "hex", "Digest encoding (hex, oci, multihash)")
	cmd.Flags().Bool("tree", false, "Print every entry below hashed directories")
	cmd.Flags().StringSlice("glob", nil, "Hash files matching a glob below the working directory")
	viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("tree", cmd.Flags().Lookup("tree"))
	viper.BindPFlag("glob", cmd.Flags().Lookup("glob"))
	return cmd
}

func hashInputs(ctx context.Context, fs afero.Fs, opts chksumOptions, args []string) ([]*engine.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	inputs, err := getInputs(fs, opts, args)
	if err != nil {
		return nil, err
	}
	return batch.Run(ctx, inputs, batch.Options{
		Engine:     newEngine(opts),
		Algorithms: opts.Algorithms,
		Workers:    opts.Jobs,
		Async:      opts.Async,
	})
}

func render(results []*engine.Result, opts chksumOptions) (string, error) {
	switch opts.Output {
	case "json":
		return format.JSON(results)
	case "yaml":
		return format.YAML(results)
	}
	rows, err := format.Rows(results, opts.Tree, opts.DigestFormat)
	if err != nil {
		return "", err
	}
	switch opts.Output {
	case "", "text":
		return strings.Join(format.Lines(rows, len(opts.Algorithms)), "\n"), nil
	case "table":
		lines, err := format.RowTable(rows)
		if err != nil {
			return "", err
		}
		return strings.Join(lines, "\n"), nil
	}
	return "", fmt.Errorf("unknown output format: %s", opts.Output)
}

func init() {
	rootCmd.AddCommand(NewHashCommand())
}
