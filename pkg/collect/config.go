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
	"runtime"

	"gitlab.com/tozd/go/errors"
)

// 🔧 Config describes one traversal.
//
// Config is a value: every With method returns a modified copy and leaves the
// receiver untouched, so a base Config can be shared and specialized freely.
// Options left unset impose no constraint. Setting an option twice keeps the
// last value.
type Config struct {
	rootDir     string
	depth       int
	hasDepth    bool
	hook        Hook
	matcher     Matcher
	recovery    Recovery
	concurrency int
	fsys        FS
}

// 🏭 New starts a Config rooted at rootDir.
func New(rootDir string) Config {
	return Config{rootDir: rootDir}
}

// WithDepth limits how many levels of subdirectories are descended into.
// 0 collects only the files directly inside the root.
func (c Config) WithDepth(level int) Config {
	c.depth = level
	c.hasDepth = true
	return c
}

// WithTargetPattern collects only files whose full path matches the regular expression.
func (c Config) WithTargetPattern(pattern string) (Config, error) {
	m, err := NewRegexMatcher(pattern)
	if err != nil {
		return c, err
	}
	c.matcher = m
	return c, nil
}

// MustWithTargetPattern is like WithTargetPattern but panics if the pattern does not compile.
func (c Config) MustWithTargetPattern(pattern string) Config {
	c, err := c.WithTargetPattern(pattern)
	if err != nil {
		panic(fmt.Sprintf("collect: %v", err))
	}
	return c
}

// WithTargetGlob collects only files whose full path matches the doublestar glob.
func (c Config) WithTargetGlob(pattern string) (Config, error) {
	m, err := NewGlobMatcher(pattern)
	if err != nil {
		return c, err
	}
	c.matcher = m
	return c, nil
}

// WithMatcher installs a caller supplied matcher. A nil matcher clears the filter.
func (c Config) WithMatcher(m Matcher) Config {
	c.matcher = m
	return c
}

// WithHook rewrites every path that matches the target pattern with fn.
// Without a target pattern the hook is not applied.
func (c Config) WithHook(fn Hook) Config {
	c.hook = fn
	return c
}

// WithErrorRecovery installs fn as the single-shot fallback for failed directory reads.
func (c Config) WithErrorRecovery(fn Recovery) Config {
	c.recovery = fn
	return c
}

// WithConcurrency bounds the number of directories read at the same time.
// n <= 0 restores the default.
func (c Config) WithConcurrency(n int) Config {
	c.concurrency = n
	return c
}

// WithFS reads from fsys instead of the host filesystem.
func (c Config) WithFS(fsys FS) Config {
	c.fsys = fsys
	return c
}

func (c Config) RootDir() string {
	return c.rootDir
}

// TargetPattern returns the source of the configured matcher, or "" when every file is collected.
func (c Config) TargetPattern() string {
	if c.matcher == nil {
		return ""
	}
	return c.matcher.String()
}

func (c Config) Matcher() Matcher {
	return c.matcher
}

func (c Config) Hook() Hook {
	return c.hook
}

func (c Config) Recovery() Recovery {
	return c.recovery
}

// Depth returns the depth limit and whether one is set.
func (c Config) Depth() (int, bool) {
	return c.depth, c.hasDepth
}

// Concurrency returns the effective bound on concurrent directory reads.
func (c Config) Concurrency() int {
	if c.concurrency > 0 {
		return c.concurrency
	}
	return runtime.GOMAXPROCS(0) * 4
}

func (c Config) filesystem() FS {
	if c.fsys == nil {
		return OS()
	}
	return c.fsys
}

// 🔍 Validate checks the settings Collect cannot run without.
func (c Config) Validate() error {
	if c.rootDir == "" {
		return errors.Errorf("%w: root directory is required", ErrInvalidConfig)
	}
	if c.hasDepth && c.depth < 0 {
		return errors.Errorf("%w: depth must not be negative, got %d", ErrInvalidConfig, c.depth)
	}
	return nil
}

// 📝 String returns a short description of the traversal.
func (c Config) String() string {
	depth := "unbounded"
	if c.hasDepth {
		depth = fmt.Sprintf("%d", c.depth)
	}
	pattern := c.TargetPattern()
	if pattern == "" {
		pattern = "*"
	}
	return fmt.Sprintf("%s depth=%s target=%s", c.rootDir, depth, pattern)
}
