package hash

import (
	stdhash "hash"
)

// Factory creates a new standard library style hash
type Factory func() stdhash.Hash

// adapter turns any hash.Hash from the standard library or a third party
// package into a Hash. Sum(nil) on a hash.Hash leaves the state intact,
// which gives Digest its non-destructive behavior.
type adapter struct {
	name    string
	factory Factory
	h       stdhash.Hash
}

// Wrap returns a Hash named name, backed by a new instance from factory
func Wrap(name string, factory Factory) Hash {
	return &adapter{name: name, factory: factory, h: factory()}
}

func (a *adapter) Update(p []byte) {
	if len(p) == 0 {
		return
	}
	// hash.Hash.Write never returns an error
	a.h.Write(p)
}

func (a *adapter) Digest() Digest {
	return Digest(a.h.Sum(nil))
}

func (a *adapter) Reset() {
	a.h.Reset()
}

func (a *adapter) Algorithm() string {
	return a.name
}

func (a *adapter) Size() int {
	return a.h.Size()
}

func (a *adapter) New() Hash {
	return Wrap(a.name, a.factory)
}

// Write lets an adapter be used as an io.Writer, e.g. with io.Copy
func (a *adapter) Write(p []byte) (int, error) {
	a.Update(p)
	return len(p), nil
}
