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
)

// Driver performs blocking I/O on behalf of a source. The blocking driver
// runs each call in place. The suspending driver lets the caller abandon a
// call when its context is cancelled.
type Driver interface {
	Do(ctx context.Context, fn func() error) error
}

// Blocking returns a Driver that calls fn directly on the calling goroutine
func Blocking() Driver {
	return blocking{}
}

// Suspending returns a Driver that runs fn on a helper goroutine and waits
// for either its completion or the cancellation of ctx
func Suspending() Driver {
	return suspending{}
}

type blocking struct{}

func (blocking) Do(ctx context.Context, fn func() error) error {
	return fn()
}

type suspending struct{}

func (suspending) Do(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()
	select {
	case err := <-done:
		// A call that completes after cancellation is still abandoned
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
