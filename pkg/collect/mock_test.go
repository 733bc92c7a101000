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
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 🔧 MockFS is a mock implementation of the FS interface
type MockFS struct {
	mock.Mock
}

func (m *MockFS) ReadDir(name string) ([]fs.DirEntry, error) {
	result := m.Called(name)
	entries, _ := result.Get(0).([]fs.DirEntry)
	return entries, result.Error(1)
}

func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	result := m.Called(name)
	info, _ := result.Get(0).(fs.FileInfo)
	return info, result.Error(1)
}

func TestCollect_MockFS(t *testing.T) {
	t.Run("depth_zero_never_reads_subdirectories", func(t *testing.T) {
		m := &MockFS{}
		m.On("ReadDir", "/root").Return([]fs.DirEntry{
			fakeEntry{name: "sub", dir: true},
			fakeEntry{name: "a.md"},
		}, nil).Once()

		paths, err := New("/root").WithDepth(0).WithFS(m).Collect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"/root/a.md"}, paths)

		m.AssertExpectations(t)
		m.AssertNotCalled(t, "ReadDir", "/root/sub")
	})

	t.Run("recovery_reads_substitute_once", func(t *testing.T) {
		m := &MockFS{}
		notExist := &fs.PathError{Op: "open", Path: "/missing", Err: fs.ErrNotExist}
		m.On("ReadDir", "/missing").Return([]fs.DirEntry(nil), notExist).Once()
		m.On("ReadDir", "/alt").Return([]fs.DirEntry{fakeEntry{name: "a.txt"}}, nil).Once()

		var seen []error
		recovery := func(err error) (string, error) {
			seen = append(seen, err)
			return "/alt", nil
		}

		paths, err := New("/missing").WithErrorRecovery(recovery).WithFS(m).Collect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"/alt/a.txt"}, paths)

		require.Len(t, seen, 1, "recovery should run once")
		assert.ErrorIs(t, seen[0], fs.ErrNotExist)
		m.AssertExpectations(t)
		m.AssertNumberOfCalls(t, "ReadDir", 2)
	})

	t.Run("symlink_to_directory_is_followed", func(t *testing.T) {
		m := &MockFS{}
		m.On("ReadDir", "/root").Return([]fs.DirEntry{
			fakeEntry{name: "docs", link: true},
			fakeEntry{name: "b.txt"},
		}, nil).Once()
		m.On("Stat", "/root/docs").Return(fakeInfo{name: "docs", dir: true}, nil).Once()
		m.On("ReadDir", "/root/docs").Return([]fs.DirEntry{fakeEntry{name: "guide.md"}}, nil).Once()

		paths, err := New("/root").MustWithTargetPattern(`\.md$`).WithFS(m).Collect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"/root/docs/guide.md"}, paths)

		m.AssertExpectations(t)
		m.AssertNotCalled(t, "Stat", "/root/b.txt")
	})
}
