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
	"os"
)

// 💾 FS is the part of a filesystem the walker reads from.
// Errors should be *fs.PathError values so a Recovery can inspect them.
type FS interface {
	// ReadDir lists the entries of a directory
	ReadDir(name string) ([]fs.DirEntry, error)
	// Stat follows symlinks and describes the named file
	Stat(name string) (fs.FileInfo, error)
}

type osFS struct{}

// OS returns the host filesystem.
func OS() FS {
	return osFS{}
}

func (osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
