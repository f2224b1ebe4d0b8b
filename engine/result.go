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
package engine

import (
	"bytes"
	"strconv"

	"github.com/fugue/chksum/hash"
	"github.com/fugue/chksum/source"
)

// Sum is the digest produced by one algorithm
type Sum struct {
	Algorithm string      `json:"algorithm" yaml:"algorithm"`
	Digest    hash.Digest `json:"digest" yaml:"digest"`
}

// Result is the output of hashing one source. For a directory it mirrors
// the input tree: every child holds its own Result and the directory's
// sums are computed over the canonical encoding of its hashed children.
type Result struct {
	Name     string      `json:"name" yaml:"name"`
	Path     string      `json:"path" yaml:"path"`
	Kind     source.Kind `json:"kind" yaml:"kind"`
	Size     int64       `json:"size" yaml:"size"`
	Sums     []Sum       `json:"sums,omitempty" yaml:"sums,omitempty"`
	Skipped  string      `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Children []*Result   `json:"children,omitempty" yaml:"children,omitempty"`
}

// Digest returns the digest for the named algorithm
func (r *Result) Digest(algorithm string) (hash.Digest, bool) {
	for _, sum := range r.Sums {
		if sum.Algorithm == algorithm {
			return sum.Digest, true
		}
	}
	return nil, false
}

// Hashed returns false for unsupported entries that were skipped
func (r *Result) Hashed() bool {
	return r.Kind != source.KindUnsupported
}

// Walk calls fn for this result and every descendant, depth first, in
// name order. Returning false from fn skips the children of that result.
func (r *Result) Walk(fn func(r *Result, depth int) bool) {
	r.walk(fn, 0)
}

func (r *Result) walk(fn func(r *Result, depth int) bool, depth int) {
	if !fn(r, depth) {
		return
	}
	for _, child := range r.Children {
		child.walk(fn, depth+1)
	}
}

// kindCodes are the single byte kind markers of the canonical encoding
var kindCodes = map[source.Kind]string{
	source.KindFile:      "f",
	source.KindDirectory: "d",
}

// CanonicalEntry encodes one directory child as
//
//	<kind> <hex digest> <len(name)>:<name>\n
//
// where kind is "f" or "d" and name is the entry's name within its parent.
// The length prefix keeps names containing spaces or newlines unambiguous.
func CanonicalEntry(kind source.Kind, digest hash.Digest, name string) []byte {
	var b bytes.Buffer
	b.WriteString(kindCodes[kind])
	b.WriteByte(' ')
	b.WriteString(digest.Hex())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(len(name)))
	b.WriteByte(':')
	b.WriteString(name)
	b.WriteByte('\n')
	return b.Bytes()
}

// Canonical returns the encoding of the hashed children for the algorithm
// at index i of their sums. Children must already be sorted by name.
// Skipped children are not part of the encoding.
func Canonical(children []*Result, i int) []byte {
	var b bytes.Buffer
	for _, child := range children {
		if !child.Hashed() {
			continue
		}
		b.Write(CanonicalEntry(child.Kind, child.Sums[i].Digest, child.Name))
	}
	return b.Bytes()
}
