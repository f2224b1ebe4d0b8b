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
package source

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type byteSource struct {
	name      string
	data      []byte
	chunkSize int
}

// Bytes returns a Leaf delivering data as a single chunk
func Bytes(name string, data []byte) Leaf {
	return &byteSource{name: name, data: data}
}

// BytesChunked returns a Leaf delivering data in chunks of chunkSize bytes.
// A chunkSize of zero or less delivers a single chunk.
func BytesChunked(name string, data []byte, chunkSize int) Leaf {
	return &byteSource{name: name, data: data, chunkSize: chunkSize}
}

func (b *byteSource) Name() string { return b.name }

func (b *byteSource) Kind() Kind { return KindFile }

func (b *byteSource) Deliver(ctx context.Context, drv Driver, buf []byte, sink Sink) error {
	if len(b.data) == 0 {
		return nil
	}
	if b.chunkSize <= 0 {
		sink(b.data)
		return nil
	}
	for offset := 0; offset < len(b.data); offset += b.chunkSize {
		end := offset + b.chunkSize
		if end > len(b.data) {
			end = len(b.data)
		}
		sink(b.data[offset:end])
	}
	return nil
}

type readerSource struct {
	name string
	r    io.Reader
}

// Reader returns a Leaf that reads r until EOF. The reader is consumed, so
// the Leaf can be delivered only once.
func Reader(name string, r io.Reader) Leaf {
	return &readerSource{name: name, r: r}
}

// Stdin returns a Leaf reading standard input
func Stdin() Leaf {
	return Reader("-", os.Stdin)
}

func (r *readerSource) Name() string { return r.name }

func (r *readerSource) Kind() Kind { return KindFile }

func (r *readerSource) Deliver(ctx context.Context, drv Driver, buf []byte, sink Sink) error {
	if f, ok := r.r.(*os.File); ok && isTerminal(f) {
		return &IsTerminal{Path: r.name}
	}
	return pump(ctx, drv, r.name, r.r, buf, sink)
}

var isTerminal = func(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// pump reads r into buf until EOF, passing every non-empty read to sink
func pump(ctx context.Context, drv Driver, name string, r io.Reader, buf []byte, sink Sink) error {
	for {
		var n int
		var readErr error
		if err := drv.Do(ctx, func() error {
			n, readErr = r.Read(buf)
			return nil
		}); err != nil {
			return err
		}
		if n > 0 {
			sink(buf[:n])
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return &IoFailure{Path: name, Err: readErr}
		}
	}
}
