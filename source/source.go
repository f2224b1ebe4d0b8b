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

// Package source defines the inputs that can be hashed: byte buffers,
// readers, files and directories. Leaves deliver their bytes in ordered
// chunks; directories list their named children in name order.
package source

import (
	"context"
	"fmt"
)

// Kind classifies a Hashable
type Kind int

const (
	// KindFile is any leaf that delivers bytes
	KindFile Kind = iota + 1

	// KindDirectory is a container of named children
	KindDirectory

	// KindUnsupported is a filesystem entry that cannot be hashed,
	// such as a symbolic link or a device
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *Kind) UnmarshalText(text []byte) error {
	for _, kind := range []Kind{KindFile, KindDirectory, KindUnsupported} {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown kind: %s", text)
}

// Hashable is anything that can be hashed
type Hashable interface {

	// Name identifies the source, typically its path
	Name() string

	// Kind returns the kind of the source
	Kind() Kind
}

// Sink receives chunks of a Leaf's content. The chunk is only valid for
// the duration of the call.
type Sink func(chunk []byte)

// Leaf is a Hashable that delivers bytes
type Leaf interface {
	Hashable

	// Deliver pushes the content to sink in one or more ordered chunks,
	// using buf for reads. It returns once the content is exhausted or on
	// the first error. All blocking I/O goes through drv.
	Deliver(ctx context.Context, drv Driver, buf []byte, sink Sink) error
}

// Container is a Hashable with named children
type Container interface {
	Hashable

	// List returns the children sorted by name
	List(ctx context.Context, drv Driver) ([]Entry, error)
}

// Entry is a named child of a Container
type Entry struct {
	Name   string
	Source Hashable
}

// Named returns an Entry for use with Tree
func Named(name string, h Hashable) Entry {
	return Entry{Name: name, Source: h}
}
