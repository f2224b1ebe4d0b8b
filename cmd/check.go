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

	"github.com/fugue/chksum/engine"
	"github.com/fugue/chksum/hash"
	"github.com/fugue/chksum/source"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Mismatch is returned when a computed digest differs from the expected one
type Mismatch struct {
	Path     string
	Expected hash.Digest
	Actual   hash.Digest
}

func (e *Mismatch) Error() string {
	return fmt.Sprintf("checksum mismatch for %s: expected %s, got %s",
		e.Path, e.Expected, e.Actual)
}

// splitExpected accepts "<hex>" or "<algorithm>:<hex>"
func splitExpected(s, fallback string) (string, hash.Digest, error) {
	algorithm := fallback
	if i := strings.LastIndex(s, ":"); i >= 0 {
		algorithm, s = s[:i], s[i+1:]
	}
	digest, err := hash.ParseDigest(s)
	if err != nil {
		return "", nil, fmt.Errorf("invalid digest %q: %s", s, err)
	}
	return algorithm, digest, nil
}

func checkPath(ctx context.Context, fs afero.Fs, opts chksumOptions, expected, path string) error {
	fallback := hash.SHA256
	if len(opts.Algorithms) > 0 {
		fallback = opts.Algorithms[0]
	}
	algorithm, want, err := splitExpected(expected, fallback)
	if err != nil {
		return err
	}
	h, err := hash.New(algorithm)
	if err != nil {
		return err
	}
	input, err := source.Path(fs, resolve(opts.Directory, path))
	if err != nil {
		return err
	}
	e := newEngine(opts)
	var result *engine.Result
	if opts.Async {
		result, err = e.ComputeAsync(ctx, input, h).Wait()
	} else {
		result, err = e.Compute(input, h)
	}
	if err != nil {
		return err
	}
	got, _ := result.Digest(algorithm)
	if !got.Equal(want) {
		return &Mismatch{Path: path, Expected: want, Actual: got}
	}
	return nil
}

// NewCheckCommand returns a command that verifies a digest
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <digest> <path>",
		Short: "Verify that a file or directory has the expected digest",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := checkPath(ctx, afero.NewOsFs(), getChksumOptions(), args[0], args[1]); err != nil {
				fatal(err)
			}
			fmt.Fprintf(os.Stdout, "%s: OK\n", args[1])
		},
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(NewCheckCommand())
}
