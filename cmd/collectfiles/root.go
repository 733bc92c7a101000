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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/collectfiles/pkg/collect"
	"github.com/walteh/collectfiles/pkg/config"
	clog "github.com/walteh/collectfiles/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the raw flag values
type rootOpts struct {
	configFile  string
	depth       int
	pattern     string
	glob        string
	extension   string
	fallback    string
	concurrency int
	debug       bool
	noColor     bool

	// isTerminal decides between the decorated listing and bare paths
	isTerminal func(w io.Writer) bool
}

// newRootCmd creates the collectfiles command writing paths to stdout and diagnostics to stderr
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return newCommand(&rootOpts{isTerminal: isTerminal}, stdout, stderr)
}

func newCommand(o *rootOpts, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collectfiles [root]",
		Short: "Recursively collect file paths under a directory",
		Long: `collectfiles walks a directory tree in parallel and prints every file path
that survives the configured filters.

Options come from flags, a config file (--config, .yaml/.yml/.json/.hcl), or
both. Flags override values from the file.`,
		Example: `  collectfiles ./docs --pattern '\.md$' --depth 1
  collectfiles --glob '**/*.go' --extension bak
  collectfiles -c collect.hcl --debug`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.configFile, "config", "c", "", "config file path (.yaml, .yml, .json or .hcl)")
	flags.IntVarP(&o.depth, "depth", "d", -1, "maximum recursion depth, -1 for unbounded")
	flags.StringVarP(&o.pattern, "pattern", "p", "", "regular expression matched against each file path")
	flags.StringVarP(&o.glob, "glob", "g", "", "doublestar glob matched against each file path")
	flags.StringVarP(&o.extension, "extension", "e", "", "replace the extension of paths matching --pattern or --glob, empty strips it")
	flags.StringVar(&o.fallback, "fallback", "", "directory read instead of any directory that does not exist")
	flags.IntVar(&o.concurrency, "concurrency", 0, "maximum directories read at once, 0 for the default")
	flags.BoolVar(&o.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&o.noColor, "no-color", false, "disable colored output")

	return cmd
}

func (o *rootOpts) run(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	decorated := !o.noColor && o.isTerminal(stdout)
	if !decorated {
		color.NoColor = true
		pterm.DisableStyling()
	}

	ctx := setupLogging(cmd.Context(), stderr, o.debug, !decorated)

	// bare paths own stdout, so console messages move to stderr
	console := stderr
	if decorated {
		console = stdout
	}
	mirror := zerolog.Nop()
	if o.debug {
		mirror = *zerolog.Ctx(ctx)
	}
	logger := clog.New(console, mirror)
	ctx = clog.NewContext(ctx, logger)

	cfg, err := o.resolve(ctx, cmd, args)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Stringer("config", cfg).Msg("resolved configuration")

	c, err := cfg.Build()
	if err != nil {
		return errors.Errorf("building traversal: %w", err)
	}
	if next := c.Recovery(); next != nil {
		c = c.WithErrorRecovery(reportRecovery(ctx, next))
	}

	if decorated {
		startDecorated(ctx, c)
	}

	paths, err := c.Collect(ctx)
	if err != nil {
		return errors.Errorf("collecting files: %w", err)
	}
	sort.Strings(paths)

	count := len(paths)
	if decorated {
		count = finishDecorated(ctx, c, paths)
	} else {
		for _, p := range paths {
			fmt.Fprintln(stdout, p)
		}
	}

	logger.Successf("collected %d paths from %s", count, c.RootDir())
	return nil
}

// resolve merges the config file with the flags that were set explicitly
func (o *rootOpts) resolve(ctx context.Context, cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := &config.Config{}
	if o.configFile != "" {
		loaded, err := config.Load(ctx, o.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
		clog.FromContext(ctx).Infof("loaded %s", o.configFile)
	}

	flags := cmd.Flags()

	if len(args) > 0 {
		cfg.Root = args[0]
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}

	if flags.Changed("depth") {
		if o.depth < 0 {
			cfg.Depth = nil
		} else {
			depth := o.depth
			cfg.Depth = &depth
		}
	}
	if flags.Changed("pattern") || flags.Changed("glob") {
		cfg.Pattern, cfg.Glob = o.pattern, o.glob
	}
	if flags.Changed("extension") {
		cfg.Hook = &config.HookArgs{Extension: o.extension}
	}
	if flags.Changed("fallback") {
		cfg.Fallback = o.fallback
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}

	return cfg, nil
}

// reportRecovery wraps next so every directory substitution is reported on the console
func reportRecovery(ctx context.Context, next collect.Recovery) collect.Recovery {
	logger := clog.FromContext(ctx)
	return func(err error) (string, error) {
		dir, rerr := next(err)
		if rerr == nil {
			logger.Warningf("reading %s instead: %v", dir, err)
		}
		return dir, rerr
	}
}

// startDecorated prints the listing banner
func startDecorated(ctx context.Context, c collect.Config) {
	logger := clog.FromContext(ctx)

	depth := "unbounded"
	if d, ok := c.Depth(); ok {
		depth = strconv.Itoa(d)
	}
	target := c.TargetPattern()
	if target == "" {
		target = "*"
	}

	logger.Header("collecting files")
	logger.StartCollect(ctx, clog.CollectOperation{
		Root:   c.RootDir(),
		Depth:  depth,
		Target: target,
	})
}

// finishDecorated lists the paths and returns the number shown
func finishDecorated(ctx context.Context, c collect.Config, paths []string) int {
	logger := clog.FromContext(ctx)

	// the hook only runs on paths that matched a target
	hooked := c.Hook() != nil && c.Matcher() != nil
	for _, p := range paths {
		logger.LogPath(ctx, clog.PathEntry{Path: p, Hooked: hooked})
	}
	count := logger.EndCollect(ctx)
	logger.LogNewline()
	return count
}

// setupLogging attaches a console zerolog logger to the context
func setupLogging(ctx context.Context, w io.Writer, debug, noColor bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).
		Level(level).
		With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
