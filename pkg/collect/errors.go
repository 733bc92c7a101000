// Copyright 2025 walteh LLC
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

package collect

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrInvalidPattern is returned when a target pattern fails to compile.
	ErrInvalidPattern = errors.Base("invalid target pattern")

	// ErrReadDir marks a directory read that failed and could not be recovered.
	ErrReadDir = errors.Base("reading directory")

	// ErrNonTextPath is returned when a path cannot be matched because it is not valid UTF-8.
	ErrNonTextPath = errors.Base("path is not valid text")

	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = errors.Base("invalid collect config")
)

// 📂 ReadDirError reports a failed directory read.
//
// Err is the filesystem error (usually an *fs.PathError), so callers can
// branch on errors.Is(err, fs.ErrNotExist). Substitute is set when the
// failure happened while reading the directory returned by a Recovery.
type ReadDirError struct {
	Dir        string
	Substitute string
	Err        error
}

func (e *ReadDirError) Error() string {
	if e.Substitute != "" {
		return fmt.Sprintf("reading substitute directory %s for %s: %v", e.Substitute, e.Dir, e.Err)
	}
	return fmt.Sprintf("reading directory %s: %v", e.Dir, e.Err)
}

func (e *ReadDirError) Unwrap() error {
	return e.Err
}

// Is makes every ReadDirError match ErrReadDir.
func (e *ReadDirError) Is(target error) bool {
	return target == ErrReadDir
}
