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
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/collectfiles/pkg/collect"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🪝 HookArgs selects the path hook applied to collected files
type HookArgs struct {
	Extension string `json:"extension" yaml:"extension" hcl:"extension,optional"` // Replacement extension, "" strips it
}

// 📚 Config is a traversal definition as written in a config file
type Config struct {
	Root        string    `json:"root" yaml:"root" hcl:"root"`
	Depth       *int      `json:"depth,omitempty" yaml:"depth,omitempty" hcl:"depth,optional"`
	Pattern     string    `json:"pattern,omitempty" yaml:"pattern,omitempty" hcl:"pattern,optional"`
	Glob        string    `json:"glob,omitempty" yaml:"glob,omitempty" hcl:"glob,optional"`
	Hook        *HookArgs `json:"hook,omitempty" yaml:"hook,omitempty" hcl:"hook,block"`
	Fallback    string    `json:"fallback,omitempty" yaml:"fallback,omitempty" hcl:"fallback,optional"`
	Concurrency int       `json:"concurrency,omitempty" yaml:"concurrency,omitempty" hcl:"concurrency,optional"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid. It never rewrites fields, so
// paths are handed to collect exactly as written in the file.
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		return errors.Errorf("root is required")
	}
	if cfg.Depth != nil && *cfg.Depth < 0 {
		return errors.Errorf("depth must not be negative, got %d", *cfg.Depth)
	}
	if cfg.Pattern != "" && cfg.Glob != "" {
		return errors.Errorf("pattern and glob are mutually exclusive")
	}
	if cfg.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative, got %d", cfg.Concurrency)
	}

	return nil
}

// 🏗️ Build turns the definition into a collect.Config. Pattern syntax errors surface here.
func (cfg *Config) Build() (collect.Config, error) {
	c := collect.New(cfg.Root)

	if cfg.Depth != nil {
		c = c.WithDepth(*cfg.Depth)
	}

	var err error
	switch {
	case cfg.Pattern != "":
		c, err = c.WithTargetPattern(cfg.Pattern)
	case cfg.Glob != "":
		c, err = c.WithTargetGlob(cfg.Glob)
	}
	if err != nil {
		return collect.Config{}, errors.Errorf("building target matcher: %w", err)
	}

	if cfg.Hook != nil {
		c = c.WithHook(collect.ReplaceExtension(cfg.Hook.Extension))
	}
	if cfg.Fallback != "" {
		c = c.WithErrorRecovery(collect.FallbackTo(cfg.Fallback))
	}
	if cfg.Concurrency > 0 {
		c = c.WithConcurrency(cfg.Concurrency)
	}

	return c, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	depth := "unbounded"
	if cfg.Depth != nil {
		depth = fmt.Sprintf("%d", *cfg.Depth)
	}
	target := "*"
	switch {
	case cfg.Pattern != "":
		target = "/" + cfg.Pattern + "/"
	case cfg.Glob != "":
		target = cfg.Glob
	}
	return fmt.Sprintf("%s (depth %s) %s", cfg.Root, depth, target)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
