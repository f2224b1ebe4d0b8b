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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fugue/chksum/engine"
	"github.com/fugue/chksum/source"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

type chksumOptions struct {
	Directory    string
	Debug        bool
	Algorithms   []string
	Async        bool
	Jobs         int
	BufferSize   int
	Output       string
	DigestFormat string
	Tree         bool
	Globs        []string
}

func getChksumOptions() chksumOptions {
	return chksumOptions{
		Directory:    viper.GetString("dir"),
		Debug:        viper.GetBool("debug"),
		Algorithms:   viper.GetStringSlice("algorithm"),
		Async:        viper.GetBool("async"),
		Jobs:         viper.GetInt("jobs"),
		BufferSize:   viper.GetInt("buffer-size"),
		Output:       viper.GetString("output"),
		DigestFormat: viper.GetString("format"),
		Tree:         viper.GetBool("tree"),
		Globs:        viper.GetStringSlice("glob"),
	}
}

func newEngine(opts chksumOptions) *engine.Engine {
	return engine.New(
		engine.WithBufferSize(opts.BufferSize),
		engine.WithLogger(logrus.StandardLogger()),
	)
}

// resolve makes a relative path relative to the working directory option
func resolve(dir, p string) string {
	if filepath.IsAbs(p) || dir == "" {
		return p
	}
	return filepath.Join(dir, p)
}

var errStdinTwice = errors.New("standard input can only be hashed once")

// getInputs builds the sources named by the arguments and glob patterns.
// With neither, standard input is hashed.
func getInputs(fs afero.Fs, opts chksumOptions, args []string) ([]source.Hashable, error) {
	var inputs []source.Hashable
	stdin := false
	for _, arg := range args {
		if arg == "-" {
			if stdin {
				return nil, errStdinTwice
			}
			stdin = true
			inputs = append(inputs, source.Stdin())
			continue
		}
		input, err := source.Path(fs, resolve(opts.Directory, arg))
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}
	for _, pattern := range opts.Globs {
		matches, err := source.MatchFiles(fs, opts.Directory, pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			inputs = append(inputs, source.File(fs, match))
		}
	}
	if len(args) == 0 && len(opts.Globs) == 0 {
		inputs = append(inputs, source.Stdin())
	}
	return inputs, nil
}
