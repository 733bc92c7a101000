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

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestJSONParsing tests JSON config parsing
func TestJSONParsing(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_minimal_json",
			config: `{
				"root": "/tmp/notes"
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/notes", cfg.Root)
				assert.Nil(t, cfg.Depth)
				assert.Nil(t, cfg.Hook)
			},
		},
		{
			name: "valid_full_json",
			config: `{
				"root": "/tmp/notes",
				"depth": 3,
				"glob": "**/*.md",
				"hook": {"extension": ".bak"},
				"fallback": "/tmp/archive/",
				"concurrency": 2
			}`,
			check: func(t *testing.T, cfg *Config) {
				require.NotNil(t, cfg.Depth)
				assert.Equal(t, 3, *cfg.Depth)
				assert.Equal(t, "**/*.md", cfg.Glob)
				require.NotNil(t, cfg.Hook)
				assert.Equal(t, ".bak", cfg.Hook.Extension)
				assert.Equal(t, "/tmp/archive/", cfg.Fallback, "fallback should be kept as written")
				assert.Equal(t, 2, cfg.Concurrency)
			},
		},
		{
			name:        "missing_root",
			config:      `{"depth": 1}`,
			wantErr:     true,
			errContains: "root is required",
		},
		{
			name:        "unknown_field",
			config:      `{"root": "/tmp/notes", "regex": "md"}`,
			wantErr:     true,
			errContains: "unknown field",
		},
		{
			name:        "negative_concurrency",
			config:      `{"root": "/tmp/notes", "concurrency": -1}`,
			wantErr:     true,
			errContains: "concurrency must not be negative",
		},
		{
			name:        "invalid_json",
			config:      `{"root": `,
			wantErr:     true,
			errContains: "parsing JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &JSONParser{}
			cfg, err := parser.Parse(context.Background(), []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParserSelection(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{filename: "collect.yaml", want: &YAMLParser{}},
		{filename: "collect.yml", want: &YAMLParser{}},
		{filename: "collect.json", want: &JSONParser{}},
		{filename: "COLLECT.JSON", want: &JSONParser{}},
		{filename: "collect.hcl", want: &HCLParser{}},
		{filename: "collect.toml", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestParserParity(t *testing.T) {
	sources := map[string]struct {
		parser Parser
		data   string
	}{
		"yaml": {
			parser: &YAMLParser{},
			data: `
root: ./docs
depth: 1
pattern: '\.md'
hook:
  extension: mutated
fallback: ./archive
concurrency: 4
`,
		},
		"json": {
			parser: &JSONParser{},
			data: `{
				"root": "./docs",
				"depth": 1,
				"pattern": "\\.md",
				"hook": {"extension": "mutated"},
				"fallback": "./archive",
				"concurrency": 4
			}`,
		},
		"hcl": {
			parser: &HCLParser{},
			data: `
root        = "./docs"
depth       = 1
pattern     = "\\.md"
fallback    = "./archive"
concurrency = 4

hook {
  extension = "mutated"
}
`,
		},
	}

	depth := 1
	want := &Config{
		Root:        "./docs",
		Depth:       &depth,
		Pattern:     `\.md`,
		Hook:        &HookArgs{Extension: "mutated"},
		Fallback:    "./archive",
		Concurrency: 4,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			cfg, err := src.parser.Parse(context.Background(), []byte(src.data))
			require.NoError(t, err)
			assert.Equal(t, want, cfg, "every format should decode to the same traversal")
		})
	}
}
