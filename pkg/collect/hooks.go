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
	"io/fs"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🪝 Hook rewrites a file path that matched the target pattern. It must not have side effects.
// It is never called when no pattern is set. Returning "" drops the path from the result.
type Hook func(path string) string

// 🛟 Recovery maps a failed directory read to a directory to read instead.
// It is called at most once per failed read. Returning an error aborts the traversal.
type Recovery func(err error) (string, error)

// ReplaceExtension returns a Hook that swaps the file extension for ext.
// ext may be given with or without the leading dot; an empty ext strips the extension.
// Dotfiles such as ".bashrc" have no extension and get ext appended.
func ReplaceExtension(ext string) Hook {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return func(path string) string {
		base := filepath.Base(path)
		old := filepath.Ext(base)
		if old == base {
			old = ""
		}
		return strings.TrimSuffix(path, old) + ext
	}
}

// FallbackTo returns a Recovery that reads dir when the failed directory does not exist.
// Any other error is returned unchanged and aborts the traversal.
func FallbackTo(dir string) Recovery {
	return func(err error) (string, error) {
		if errors.Is(err, fs.ErrNotExist) {
			return dir, nil
		}
		return "", err
	}
}
