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
	"context"

	"github.com/fugue/chksum/hash"
	"github.com/fugue/chksum/source"
	"github.com/sirupsen/logrus"
)

// run holds the state owned by a single compute call
type run struct {
	drv source.Driver
	buf []byte
	log logrus.FieldLogger
}

// compute hashes h with the given digests. Blocking and non-blocking
// execution differ only in the driver used for I/O.
func (r *run) compute(ctx context.Context, name string, h source.Hashable, digests []hash.Hash) (*Result, error) {
	switch s := h.(type) {
	case source.Leaf:
		return r.leaf(ctx, name, s, digests)
	case source.Container:
		return r.container(ctx, name, s, digests)
	default:
		reason := source.SkipReason(h)
		if reason == "" {
			reason = "not a file or directory"
		}
		return nil, &source.Unsupported{Path: h.Name(), Reason: reason}
	}
}

func (r *run) leaf(ctx context.Context, name string, leaf source.Leaf, digests []hash.Hash) (*Result, error) {
	var size int64
	err := leaf.Deliver(ctx, r.drv, r.buf, func(chunk []byte) {
		// Every digest sees the same chunk boundaries, in caller order
		size += int64(len(chunk))
		for _, d := range digests {
			d.Update(chunk)
		}
	})
	if err != nil {
		return nil, err
	}
	return &Result{
		Name: name,
		Path: leaf.Name(),
		Kind: source.KindFile,
		Size: size,
		Sums: sums(digests),
	}, nil
}

func (r *run) container(ctx context.Context, name string, c source.Container, digests []hash.Hash) (*Result, error) {
	entries, err := c.List(ctx, r.drv)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Name:     name,
		Path:     c.Name(),
		Kind:     source.KindDirectory,
		Children: make([]*Result, 0, len(entries)),
	}

	// Children are hashed one at a time, in name order. Each child's
	// result must be complete before it contributes to this directory.
	for _, entry := range entries {
		if entry.Source.Kind() == source.KindUnsupported {
			reason := source.SkipReason(entry.Source)
			r.log.WithFields(logrus.Fields{
				"path":   entry.Source.Name(),
				"reason": reason,
			}).Debug("Skipping unsupported entry")
			result.Children = append(result.Children, &Result{
				Name:    entry.Name,
				Path:    entry.Source.Name(),
				Kind:    source.KindUnsupported,
				Skipped: reason,
			})
			continue
		}
		child, err := r.compute(ctx, entry.Name, entry.Source, fresh(digests))
		if err != nil {
			return nil, err
		}
		result.Size += child.Size
		result.Children = append(result.Children, child)
	}

	for i, d := range digests {
		d.Update(Canonical(result.Children, i))
	}
	result.Sums = sums(digests)
	return result, nil
}

// fresh returns a new, empty digest of the same algorithm for each digest
func fresh(digests []hash.Hash) []hash.Hash {
	result := make([]hash.Hash, len(digests))
	for i, d := range digests {
		result[i] = d.New()
	}
	return result
}

func sums(digests []hash.Hash) []Sum {
	result := make([]Sum, len(digests))
	for i, d := range digests {
		result[i] = Sum{Algorithm: d.Algorithm(), Digest: d.Digest()}
	}
	return result
}
