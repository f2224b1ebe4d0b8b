package format

import (
	"encoding/json"
	"testing"

	"github.com/fugue/chksum/engine"
	"github.com/fugue/chksum/hash"
	"github.com/fugue/chksum/source"
	"github.com/go-yaml/yaml"
	"github.com/stretchr/testify/require"
)

func testResults(t *testing.T, algorithms ...string) []*engine.Result {
	tree := source.Tree("root",
		source.Named("a.txt", source.Bytes("root/a.txt", []byte("abc"))),
		source.Named("link", source.Skip("root/link", "symbolic link")),
	)
	result, err := engine.Hash(tree, algorithms...)
	require.Nil(t, err)
	return []*engine.Result{result}
}

func TestRows(t *testing.T) {
	results := testResults(t, hash.SHA256)
	rootDigest := results[0].Sums[0].Digest.Hex()

	rows, err := Rows(results, false, "hex")
	require.Nil(t, err)
	require.Equal(t, []Row{
		{Path: "root", Kind: "directory", Algorithm: "sha256", Digest: rootDigest, Size: 3},
	}, rows)

	rows, err = Rows(results, true, "oci")
	require.Nil(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "sha256:"+rootDigest, rows[0].Digest)
	require.Equal(t, "root/a.txt", rows[1].Path)
	require.Equal(t,
		"sha256:ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		rows[1].Digest)
	require.Equal(t, Row{Path: "root/link", Kind: "unsupported", Skipped: "symbolic link"}, rows[2])

	_, err = Rows(testResults(t, hash.XXH64), false, "oci")
	require.NotNil(t, err)
}

func TestLines(t *testing.T) {
	rows := []Row{
		{Path: "a.txt", Algorithm: "sha1", Digest: "aaaa"},
		{Path: "link", Skipped: "symbolic link"},
	}
	require.Equal(t, []string{
		"aaaa  a.txt",
		"link: skipped (symbolic link)",
	}, Lines(rows, 1))

	require.Equal(t, []string{
		"SHA1 (a.txt) = aaaa",
		"link: skipped (symbolic link)",
	}, Lines(rows, 2))
}

func TestRowTable(t *testing.T) {
	lines, err := RowTable([]Row{
		{Path: "a.txt", Kind: "file", Algorithm: "md5", Digest: "abcd", Size: 3},
	})
	require.Nil(t, err)
	require.Equal(t, []string{
		"==================================================",
		"PATH  | KIND | ALGORITHM | DIGEST | SIZE | SKIPPED",
		"==================================================",
		"a.txt | file | md5       | abcd   | 3    |        ",
	}, lines)
}

func TestJSONAndYAML(t *testing.T) {
	results := testResults(t, hash.SHA1)

	js, err := JSON(results)
	require.Nil(t, err)
	var decoded []*engine.Result
	require.Nil(t, json.Unmarshal([]byte(js), &decoded))
	require.Equal(t, results, decoded)
	require.Contains(t, js, `"kind": "directory"`)
	require.Contains(t, js, `"digest": "a9993e364706816aba3e25717850c26c9cd0d89d"`)

	text, err := YAML(results)
	require.Nil(t, err)
	var generic []map[string]interface{}
	require.Nil(t, yaml.Unmarshal([]byte(text), &generic))
	require.Len(t, generic, 1)
	require.Equal(t, "root", generic[0]["name"])
	require.Equal(t, "directory", generic[0]["kind"])
}
