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

// Package engine feeds hashable sources through one or more digests.
// Engine.Compute runs to completion on the calling goroutine, while
// Engine.ComputeAsync runs in the background and can be abandoned by
// cancelling its context. Both produce identical results.
package engine

import (
	"context"
	"errors"

	"github.com/fugue/chksum/hash"
	"github.com/fugue/chksum/source"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// DefaultBufferSize is the read buffer size used for readers and files
const DefaultBufferSize = 32 * 1024

var (
	// ErrNoDigests is returned when a compute is requested without digests
	ErrNoDigests = errors.New("no digests requested")

	// ErrNoSource is returned when a compute is requested on a nil source
	ErrNoSource = errors.New("no source to hash")
)

// Option configures an Engine
type Option func(e *Engine)

// WithBufferSize sets the read buffer size. Values of zero or less select
// DefaultBufferSize.
func WithBufferSize(size int) Option {
	return func(e *Engine) {
		if size <= 0 {
			size = DefaultBufferSize
		}
		e.bufferSize = size
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine computes digests of hashable sources. An Engine holds only
// configuration, so one Engine may serve concurrent computes.
type Engine struct {
	bufferSize int
	logger     logrus.FieldLogger
}

// New returns an Engine configured with the given options
func New(opts ...Option) *Engine {
	e := &Engine{
		bufferSize: DefaultBufferSize,
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BufferSize returns the read buffer size
func (e *Engine) BufferSize() int {
	return e.bufferSize
}

// Compute hashes h with every digest, blocking until it is done. The sums
// of the result are in the same order as digests. When h is a directory
// the digests receive the canonical encoding of its children.
func (e *Engine) Compute(h source.Hashable, digests ...hash.Hash) (*Result, error) {
	return e.run(context.Background(), source.Blocking(), h, digests)
}

// ComputeAsync hashes h in the background. I/O waits are abandoned as soon
// as ctx is cancelled, in which case the Future yields ctx.Err() and no
// result.
func (e *Engine) ComputeAsync(ctx context.Context, h source.Hashable, digests ...hash.Hash) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = e.run(ctx, source.Suspending(), h, digests)
	}()
	return f
}

func (e *Engine) run(ctx context.Context, drv source.Driver, h source.Hashable, digests []hash.Hash) (*Result, error) {
	if h == nil {
		return nil, ErrNoSource
	}
	if len(digests) == 0 {
		return nil, ErrNoDigests
	}
	log := e.logger.WithFields(logrus.Fields{
		"compute": uuid.NewV4().String(),
		"source":  h.Name(),
	})
	log.Debug("Compute started")

	r := &run{
		drv: drv,
		buf: make([]byte, e.bufferSize),
		log: log,
	}
	result, err := r.compute(ctx, h.Name(), h, digests)
	if err != nil {
		log.WithError(err).Debug("Compute failed")
		return nil, err
	}
	log.WithField("size", result.Size).Debug("Compute finished")
	return result, nil
}

// Future is the pending outcome of ComputeAsync
type Future struct {
	done   chan struct{}
	result *Result
	err    error
}

// Done is closed once the compute has finished or was abandoned
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the compute finishes and returns its outcome
func (f *Future) Wait() (*Result, error) {
	<-f.done
	return f.result, f.err
}

var defaultEngine = New()

// Compute hashes h using the default engine
func Compute(h source.Hashable, digests ...hash.Hash) (*Result, error) {
	return defaultEngine.Compute(h, digests...)
}

// ComputeAsync hashes h in the background using the default engine
func ComputeAsync(ctx context.Context, h source.Hashable, digests ...hash.Hash) *Future {
	return defaultEngine.ComputeAsync(ctx, h, digests...)
}

// Hash hashes h with new instances of the named algorithms
func Hash(h source.Hashable, algorithms ...string) (*Result, error) {
	digests, err := hash.NewAll(algorithms...)
	if err != nil {
		return nil, err
	}
	return defaultEngine.Compute(h, digests...)
}
