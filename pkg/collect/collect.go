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
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// unbounded is the depth budget of a traversal without a depth limit.
const unbounded = -1

// 🏃 Collect walks the configured root and returns every collected file path.
//
// The order of the result is unspecified. Any error aborts the whole
// traversal and no partial result is returned.
func (c Config) Collect(ctx context.Context) ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("root", c.rootDir).
		Str("target", c.TargetPattern()).
		Int("concurrency", c.Concurrency()).
		Msg("collecting files")

	depth := unbounded
	if c.hasDepth {
		depth = c.depth
	}

	w := &walker{
		fsys:     c.filesystem(),
		hook:     c.hook,
		matcher:  c.matcher,
		recovery: c.recovery,
		sem:      semaphore.NewWeighted(int64(c.Concurrency())),
	}

	paths, err := w.collectFiles(ctx, c.rootDir, depth)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("root", c.rootDir).Int("files", len(paths)).Msg("collected files")
	return paths, nil
}

// walker holds the read-only state shared by every frame of one traversal.
type walker struct {
	fsys     FS
	hook     Hook
	matcher  Matcher
	recovery Recovery
	sem      *semaphore.Weighted
}

// collectFiles reads dir and fans out over its entries, one goroutine per entry.
// Each goroutine writes only its own slot of results.
func (w *walker) collectFiles(ctx context.Context, dir string, depth int) ([]string, error) {
	entries, dir, err := w.readDir(ctx, dir)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("dir", dir).
		Int("depth", depth).
		Int("entries", len(entries)).
		Msg("read directory")

	results := make([][]string, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		g.Go(func() error {
			paths, err := w.collectEntry(gctx, dir, entry, depth)
			if err != nil {
				return err
			}
			results[i] = paths
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	paths := make([]string, 0, total)
	for _, r := range results {
		paths = append(paths, r...)
	}
	return paths, nil
}

// collectEntry returns what a single directory entry contributes.
func (w *walker) collectEntry(ctx context.Context, dir string, entry fs.DirEntry, depth int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, entry.Name())

	if w.isDir(path, entry) {
		switch {
		case depth == 0:
			return nil, nil
		case depth > 0:
			return w.collectFiles(ctx, path, depth-1)
		default:
			return w.collectFiles(ctx, path, unbounded)
		}
	}

	return w.collectFile(path)
}

// collectFile filters and rewrites a single file path.
// Without a matcher the path is emitted unchanged; the hook only sees matching paths.
func (w *walker) collectFile(path string) ([]string, error) {
	if w.matcher == nil {
		return []string{path}, nil
	}

	if !utf8.ValidString(path) {
		return nil, errors.Errorf("%w: %q", ErrNonTextPath, path)
	}
	if !w.matcher.Match(path) {
		return nil, nil
	}

	if w.hook != nil {
		path = w.hook(path)
		if path == "" {
			return nil, nil
		}
	}

	return []string{path}, nil
}

// isDir follows symlinks. An entry whose target cannot be resolved is treated as a file.
func (w *walker) isDir(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := w.fsys.Stat(path)
	return err == nil && info.IsDir()
}

// readDir reads dir, falling back once to the directory chosen by the recovery function.
// It returns the directory the entries were actually read from.
func (w *walker) readDir(ctx context.Context, dir string) ([]fs.DirEntry, string, error) {
	entries, err := w.read(ctx, dir)
	if err == nil {
		return entries, dir, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, dir, ctxErr
	}
	if w.recovery == nil {
		return nil, dir, errors.WithStack(&ReadDirError{Dir: dir, Err: err})
	}

	substitute, rerr := w.recovery(err)
	if rerr != nil {
		return nil, dir, errors.Errorf("recovering from failed read of %s: %w", dir, rerr)
	}

	zerolog.Ctx(ctx).Debug().
		Str("dir", dir).
		Str("substitute", substitute).
		Err(err).
		Msg("recovering from failed directory read")

	entries, err = w.read(ctx, substitute)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, dir, ctxErr
		}
		return nil, dir, errors.WithStack(&ReadDirError{Dir: dir, Substitute: substitute, Err: err})
	}
	return entries, substitute, nil
}

// read holds a semaphore slot only for the duration of the ReadDir call, never across recursion.
func (w *walker) read(ctx context.Context, dir string) ([]fs.DirEntry, error) {
	if err := w.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer w.sem.Release(1)
	return w.fsys.ReadDir(dir)
}
