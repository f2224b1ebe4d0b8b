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
	"errors"
	"fmt"
	"os"
)

// IoFailure indicates that reading a source failed: a read error, a
// permission denial or a source that vanished mid-read
type IoFailure struct {
	Path string
	Err  error
}

func (e *IoFailure) Error() string {
	return fmt.Sprintf("i/o failure: %s: %s", e.Path, e.Err)
}

func (e *IoFailure) Unwrap() error { return e.Err }

// NotFound indicates that a source does not exist
type NotFound struct {
	Path string
	Err  error
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("not found: %s", e.Path)
}

func (e *NotFound) Unwrap() error { return e.Err }

// Unsupported indicates a filesystem entry that is not a regular file or a
// directory. It is an error only when the entry is requested directly.
type Unsupported struct {
	Path   string
	Reason string
}

func (e *Unsupported) Error() string {
	return fmt.Sprintf("unsupported: %s: %s", e.Path, e.Reason)
}

// IsTerminal indicates a reader attached to an interactive terminal
type IsTerminal struct {
	Path string
}

func (e *IsTerminal) Error() string {
	return fmt.Sprintf("cannot process terminal input: %s", e.Path)
}

// InvalidEntry indicates a malformed child of an in-memory tree
type InvalidEntry struct {
	Path   string
	Reason string
}

func (e *InvalidEntry) Error() string {
	return fmt.Sprintf("invalid entry: %s: %s", e.Path, e.Reason)
}

// classify maps an error from opening or listing path to NotFound or
// IoFailure
func classify(path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return &NotFound{Path: path, Err: err}
	}
	return &IoFailure{Path: path, Err: err}
}

// describeMode explains why a file mode is not hashable
func describeMode(mode os.FileMode) string {
	switch {
	case mode.IsDir():
		return "directory"
	case mode&os.ModeSymlink != 0:
		return "symbolic link"
	case mode&os.ModeDevice != 0, mode&os.ModeCharDevice != 0:
		return "device"
	case mode&os.ModeNamedPipe != 0:
		return "named pipe"
	case mode&os.ModeSocket != 0:
		return "socket"
	default:
		return "irregular file"
	}
}
