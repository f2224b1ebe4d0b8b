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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fugue/chksum/hash"
	"github.com/fugue/chksum/source"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	abcSHA256 = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	abcMD5    = "900150983cd24fb0d6963f7d28e17f72"
)

func testFs(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	require.Nil(t, fs.MkdirAll("/work/sub", 0755))
	require.Nil(t, afero.WriteFile(fs, "/work/a.txt", []byte("abc"), 0644))
	require.Nil(t, afero.WriteFile(fs, "/work/sub/b.txt", []byte("b"), 0644))
	require.Nil(t, afero.WriteFile(fs, "/work/c.log", []byte("c"), 0644))
	return fs
}

func testOptions() chksumOptions {
	return chksumOptions{
		Directory:    "/work",
		Algorithms:   []string{hash.SHA256},
		Jobs:         2,
		Output:       "text",
		DigestFormat: "hex",
	}
}

func TestHashInputsText(t *testing.T) {
	fs := testFs(t)
	opts := testOptions()

	results, err := hashInputs(context.Background(), fs, opts, []string{"a.txt"})
	require.Nil(t, err)
	require.Len(t, results, 1)

	text, err := render(results, opts)
	require.Nil(t, err)
	assert.Equal(t, abcSHA256+"  /work/a.txt", text)
}

func TestHashInputsMultipleAlgorithms(t *testing.T) {
	fs := testFs(t)
	opts := testOptions()
	opts.Algorithms = []string{hash.MD5, hash.SHA256}
	opts.Async = true

	results, err := hashInputs(context.Background(), fs, opts, []string{"a.txt"})
	require.Nil(t, err)

	text, err := render(results, opts)
	require.Nil(t, err)
	assert.Equal(t, strings.Join([]string{
		"MD5 (/work/a.txt) = " + abcMD5,
		"SHA256 (/work/a.txt) = " + abcSHA256,
	}, "\n"), text)
}

func TestHashInputsGlob(t *testing.T) {
	fs := testFs(t)
	opts := testOptions()
	opts.Globs = []string{"*.txt"}

	inputs, err := getInputs(fs, opts, nil)
	require.Nil(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "/work/a.txt", inputs[0].Name())
}

func TestGetInputsDefaultsToStdin(t *testing.T) {
	inputs, err := getInputs(afero.NewMemMapFs(), testOptions(), nil)
	require.Nil(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "-", inputs[0].Name())
}

func TestGetInputsStdinOnce(t *testing.T) {
	inputs, err := getInputs(testFs(t), testOptions(), []string{"-", "a.txt"})
	require.Nil(t, err)
	require.Len(t, inputs, 2)

	_, err = getInputs(testFs(t), testOptions(), []string{"-", "a.txt", "-"})
	require.NotNil(t, err)
	assert.Equal(t, "standard input can only be hashed once", err.Error())
}

func TestGetInputsMissing(t *testing.T) {
	_, err := getInputs(testFs(t), testOptions(), []string{"nope.txt"})
	require.NotNil(t, err)
	var notFound *source.NotFound
	assert.True(t, errors.As(err, &notFound))
}

func TestHashInputsDirectoryTree(t *testing.T) {
	fs := testFs(t)
	opts := testOptions()
	opts.Tree = true

	results, err := hashInputs(context.Background(), fs, opts, []string{"."})
	require.Nil(t, err)

	text, err := render(results, opts)
	require.Nil(t, err)
	lines := strings.Split(text, "\n")
	// The directory, its three files and the subdirectory
	require.Len(t, lines, 5)
	assert.True(t, strings.HasSuffix(lines[0], "  /work"))
}

func TestRenderJSON(t *testing.T) {
	fs := testFs(t)
	opts := testOptions()
	opts.Output = "json"

	results, err := hashInputs(context.Background(), fs, opts, []string{"a.txt"})
	require.Nil(t, err)

	text, err := render(results, opts)
	require.Nil(t, err)

	var decoded []map[string]interface{}
	require.Nil(t, json.Unmarshal([]byte(text), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "file", decoded[0]["kind"])
	sums := decoded[0]["sums"].([]interface{})
	assert.Equal(t, abcSHA256, sums[0].(map[string]interface{})["digest"])
}

func TestRenderUnknownOutput(t *testing.T) {
	opts := testOptions()
	opts.Output = "xml"
	_, err := render(nil, opts)
	require.NotNil(t, err)
	assert.Equal(t, "unknown output format: xml", err.Error())
}

func TestSplitExpected(t *testing.T) {
	algorithm, digest, err := splitExpected("md5:"+abcMD5, hash.SHA256)
	require.Nil(t, err)
	assert.Equal(t, hash.MD5, algorithm)
	assert.Equal(t, abcMD5, digest.Hex())

	algorithm, digest, err = splitExpected(strings.ToUpper(abcSHA256), hash.SHA256)
	require.Nil(t, err)
	assert.Equal(t, hash.SHA256, algorithm)
	assert.Equal(t, abcSHA256, digest.Hex())

	_, _, err = splitExpected("zz", hash.SHA256)
	require.NotNil(t, err)
}

func TestCheckPath(t *testing.T) {
	fs := testFs(t)
	opts := testOptions()
	ctx := context.Background()

	require.Nil(t, checkPath(ctx, fs, opts, abcSHA256, "a.txt"))
	require.Nil(t, checkPath(ctx, fs, opts, "md5:"+abcMD5, "a.txt"))

	err := checkPath(ctx, fs, opts, abcMD5, "a.txt")
	require.NotNil(t, err)
	var mismatch *Mismatch
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, abcSHA256, mismatch.Actual.Hex())

	err = checkPath(ctx, fs, opts, "crc9:00", "a.txt")
	require.NotNil(t, err)
	assert.Equal(t, hash.UnknownAlgorithm("crc9"), err)
}

func TestAlgorithmRows(t *testing.T) {
	rows := algorithmRows()
	require.Len(t, rows, len(hash.Algorithms()))
	for _, row := range rows {
		r := row.(algorithmRow)
		if r.Name == hash.SHA256 {
			assert.Equal(t, 32, r.Size)
			assert.Equal(t, hash.SHA256Implementation, r.Implementation)
		}
	}
}

func TestWriteCompletion(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, writeCompletion(rootCmd, "bash", &buf))
	assert.Contains(t, buf.String(), "chksum")

	err := writeCompletion(rootCmd, "tcsh", &buf)
	require.NotNil(t, err)
	assert.Equal(t, "unsupported shell: tcsh", err.Error())
}
