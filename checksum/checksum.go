// Package checksum offers one-call hashing of strings, objects, readers,
// files and directories, returning hexadecimal digests.
package checksum

import (
	"encoding/json"
	"io"

	"github.com/fugue/chksum/engine"
	"github.com/fugue/chksum/hash"
	"github.com/fugue/chksum/source"
	"github.com/spf13/afero"
)

// Hasher is an interface for hashing objects, files, or strings.
// Different implementations may exist for SHA1, SHA256, etc.
type Hasher interface {

	// Object returns the hash of the JSON encoding of an object
	Object(obj interface{}) (string, error)

	// File returns the hash of a given file on disk
	File(path string) (string, error)

	// Dir returns the aggregate hash of a directory on disk
	Dir(path string) (string, error)

	// Path returns the hash of a file or directory on disk
	Path(path string) (string, error)

	// Reader returns the hash of everything read from r
	Reader(r io.Reader) (string, error)

	// String returns the hash of a given string
	String(s string) (string, error)
}

type hasher struct {
	algorithm string
	fs        afero.Fs
	engine    *engine.Engine
}

// New returns a Hasher for the named algorithm on the OS filesystem
func New(algorithm string) (Hasher, error) {
	return NewWithFs(algorithm, source.OS())
}

// NewWithFs returns a Hasher for the named algorithm on the given filesystem
func NewWithFs(algorithm string, fs afero.Fs) (Hasher, error) {
	if _, err := hash.New(algorithm); err != nil {
		return nil, err
	}
	return &hasher{algorithm: algorithm, fs: fs, engine: engine.New()}, nil
}

// SHA1 returns a SHA1 Hasher
func SHA1() Hasher {
	return mustNew(hash.SHA1)
}

// SHA256 returns a SHA256 Hasher
func SHA256() Hasher {
	return mustNew(hash.SHA256)
}

// BLAKE3 returns a BLAKE3 Hasher
func BLAKE3() Hasher {
	return mustNew(hash.BLAKE3)
}

func mustNew(algorithm string) Hasher {
	h, err := New(algorithm)
	if err != nil {
		panic(err)
	}
	return h
}

func (h *hasher) compute(src source.Hashable) (string, error) {
	result, err := h.engine.Compute(src, hash.Must(h.algorithm))
	if err != nil {
		return "", err
	}
	return result.Sums[0].Digest.Hex(), nil
}

func (h *hasher) Object(obj interface{}) (string, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}
	return h.compute(source.Bytes("object", data))
}

func (h *hasher) File(path string) (string, error) {
	return h.compute(source.File(h.fs, path))
}

func (h *hasher) Dir(path string) (string, error) {
	return h.compute(source.Directory(h.fs, path))
}

func (h *hasher) Path(path string) (string, error) {
	src, err := source.Path(h.fs, path)
	if err != nil {
		return "", err
	}
	return h.compute(src)
}

func (h *hasher) Reader(r io.Reader) (string, error) {
	return h.compute(source.Reader("reader", r))
}

func (h *hasher) String(s string) (string, error) {
	return h.compute(source.Bytes("string", []byte(s)))
}
