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
package batch

import (
	"context"

	"github.com/fugue/chksum/engine"
	"github.com/fugue/chksum/hash"
	"github.com/fugue/chksum/source"
	"github.com/hashicorp/go-multierror"
)

// Options configure a batch run
type Options struct {
	// Engine used for every input. Defaults to engine.New().
	Engine *engine.Engine

	// Algorithms applied to every input, in order
	Algorithms []string

	// Workers is the maximum number of inputs hashed at once
	Workers int

	// Async selects the non-blocking execution mode
	Async bool
}

type job struct {
	index int
	input source.Hashable
}

type outcome struct {
	index  int
	result *engine.Result
	err    error
}

func worker(ctx context.Context, opts Options, jobs <-chan job, results chan<- outcome) {

	for j := range jobs {

		if err := ctx.Err(); err != nil {
			results <- outcome{index: j.index, err: err}
			continue
		}

		// Every compute owns its digests
		digests, err := hash.NewAll(opts.Algorithms...)
		if err != nil {
			results <- outcome{index: j.index, err: err}
			continue
		}

		var result *engine.Result
		if opts.Async {
			result, err = opts.Engine.ComputeAsync(ctx, j.input, digests...).Wait()
		} else {
			result, err = opts.Engine.Compute(j.input, digests...)
		}
		results <- outcome{index: j.index, result: result, err: err}
	}
}

// Run hashes every input and waits for all of them to finish. Results are
// returned in input order, with nil entries for inputs that failed. The
// error aggregates the failures of all inputs.
func Run(ctx context.Context, inputs []source.Hashable, opts Options) ([]*engine.Result, error) {

	numInputs := len(inputs)
	if numInputs == 0 {
		return nil, nil
	}
	if opts.Engine == nil {
		opts.Engine = engine.New()
	}
	if len(opts.Algorithms) == 0 {
		return nil, engine.ErrNoDigests
	}

	jobs := make(chan job, numInputs)
	results := make(chan outcome, numInputs)

	numWorkers := opts.Workers
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > numInputs {
		numWorkers = numInputs
	}

	for w := 0; w < numWorkers; w++ {
		go worker(ctx, opts, jobs, results)
	}
	for i, input := range inputs {
		jobs <- job{index: i, input: input}
	}
	close(jobs)

	output := make([]*engine.Result, numInputs)
	errs := make([]error, numInputs)
	for i := 0; i < numInputs; i++ {
		o := <-results
		output[o.index] = o.result
		errs[o.index] = o.err
	}

	// Errors are appended in input order so the message is deterministic
	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return output, result.ErrorOrNil()
}
