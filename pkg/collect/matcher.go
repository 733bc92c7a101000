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
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Matcher decides whether a file path is collected.
// Implementations are shared by every goroutine of a traversal and must be safe for concurrent use.
type Matcher interface {
	// Match reports whether the full path matches
	Match(path string) bool
	// String returns the source pattern
	String() string
}

// RegexMatcher matches paths with an RE2 regular expression.
type RegexMatcher struct {
	re *regexp.Regexp
}

// NewRegexMatcher compiles pattern.
func NewRegexMatcher(pattern string) (*RegexMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("%w: %s", ErrInvalidPattern, err.Error())
	}
	return &RegexMatcher{re: re}, nil
}

func (m *RegexMatcher) Match(path string) bool {
	return m.re.MatchString(path)
}

func (m *RegexMatcher) String() string {
	return m.re.String()
}

// GlobMatcher matches paths with a doublestar glob such as "**/*.md".
// The glob uses the host path separator.
type GlobMatcher struct {
	pattern string
}

// NewGlobMatcher validates pattern.
func NewGlobMatcher(pattern string) (*GlobMatcher, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, errors.Errorf("%w: bad glob %q", ErrInvalidPattern, pattern)
	}
	return &GlobMatcher{pattern: pattern}, nil
}

func (m *GlobMatcher) Match(path string) bool {
	matched, err := doublestar.PathMatch(m.pattern, path)
	return err == nil && matched
}

func (m *GlobMatcher) String() string {
	return m.pattern
}
