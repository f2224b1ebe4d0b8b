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
	"sync"

	"github.com/spf13/afero"
)

var osFs = afero.NewOsFs()

// OS returns the filesystem of the host operating system
func OS() afero.Fs {
	return osFs
}

type fileSource struct {
	fs   afero.Fs
	path string
}

// File returns a Leaf reading the regular file at path
func File(fs afero.Fs, path string) Leaf {
	return &fileSource{fs: fs, path: path}
}

func (f *fileSource) Name() string { return f.path }

func (f *fileSource) Kind() Kind { return KindFile }

func (f *fileSource) Deliver(ctx context.Context, drv Driver, buf []byte, sink Sink) error {
	// Opening a named pipe blocks until a writer appears
	var preErr error
	if err := drv.Do(ctx, func() error {
		info, err := f.fs.Stat(f.path)
		switch {
		case err != nil:
			preErr = classify(f.path, err)
		case !info.Mode().IsRegular():
			preErr = &Unsupported{Path: f.path, Reason: describeMode(info.Mode())}
		}
		return nil
	}); err != nil {
		return err
	}
	if preErr != nil {
		return preErr
	}

	file, err := open(ctx, drv, f.fs, f.path)
	if err != nil {
		return err
	}
	defer file.Close()

	var statErr error
	if err := drv.Do(ctx, func() error {
		info, err := file.Stat()
		switch {
		case err != nil:
			statErr = &IoFailure{Path: f.path, Err: err}
		case !info.Mode().IsRegular():
			statErr = &Unsupported{Path: f.path, Reason: describeMode(info.Mode())}
		}
		return nil
	}); err != nil {
		return err
	}
	if statErr != nil {
		return statErr
	}
	return pump(ctx, drv, f.path, file, buf, sink)
}

// open opens path through drv. If the caller abandons the call, a file
// opened afterwards is closed by the helper instead of leaking.
func open(ctx context.Context, drv Driver, fs afero.Fs, path string) (afero.File, error) {
	var mutex sync.Mutex
	var file afero.File
	var openErr error
	abandoned := false

	err := drv.Do(ctx, func() error {
		f, err := fs.Open(path)
		mutex.Lock()
		defer mutex.Unlock()
		if abandoned {
			if err == nil {
				f.Close()
			}
			return nil
		}
		file, openErr = f, err
		return nil
	})
	if err != nil {
		mutex.Lock()
		abandoned = true
		if file != nil {
			file.Close()
		}
		mutex.Unlock()
		return nil, err
	}
	if openErr != nil {
		return nil, classify(path, openErr)
	}
	return file, nil
}
