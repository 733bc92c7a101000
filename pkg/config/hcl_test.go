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

func TestHCLParsing(t *testing.T) {
	t.Setenv("COLLECTFILES_TEST_ROOT", "/srv/data")

	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_full_hcl",
			config: `
root        = "/tmp/notes"
depth       = 2
pattern     = "\\.md"
fallback    = "/tmp/archive"
concurrency = 4

hook {
  extension = "mutated"
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/notes", cfg.Root)
				require.NotNil(t, cfg.Depth)
				assert.Equal(t, 2, *cfg.Depth)
				assert.Equal(t, `\.md`, cfg.Pattern)
				assert.Equal(t, "/tmp/archive", cfg.Fallback)
				assert.Equal(t, 4, cfg.Concurrency)
				require.NotNil(t, cfg.Hook)
				assert.Equal(t, "mutated", cfg.Hook.Extension)
			},
		},
		{
			name: "minimal_hcl",
			config: `
root = "/tmp/notes"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/notes", cfg.Root)
				assert.Nil(t, cfg.Depth)
				assert.Nil(t, cfg.Hook)
			},
		},
		{
			name: "environment_interpolation",
			config: `
root = "${env.COLLECTFILES_TEST_ROOT}/notes"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/srv/data/notes", cfg.Root)
			},
		},
		{
			name: "missing_root",
			config: `
depth = 1
`,
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name: "syntax_error",
			config: `
root =
`,
			wantErr:     true,
			errContains: "parsing HCL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &HCLParser{}
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
