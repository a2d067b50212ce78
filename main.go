// Package main provides the gofetch command-line tool, which prints a
// snapshot of host information next to the distro logo and lets native
// plugins add lines of their own.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"gofetch/ascii"
	"gofetch/config"
	"gofetch/fetch"
	"gofetch/logging"
	"gofetch/plugin"
	"gofetch/sysinfo"
)

// Set with -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the collaborators of a run so tests can replace them.
type app struct {
	out        io.Writer
	errOut     io.Writer
	providers  func(sysinfo.Options) map[fetch.FieldKind]fetch.ProviderFunc
	isTerminal func() bool
	flags      runFlags
}

// runFlags holds the command line overrides of the config file.
type runFlags struct {
	configPath string
	pluginsDir string
	gap        int
	workers    int
	color      string
	debug      bool
	noPlugins  bool
	noSave     bool
}

func newApp() *app {
	return &app{
		out:        os.Stdout,
		errOut:     os.Stderr,
		providers:  sysinfo.Builtins,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(newApp()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// newRootCommand builds the command tree. Running the root command without
// a subcommand performs a fetch.
func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "gofetch",
		Short: "Show host information next to the distro logo",
		Long: `gofetch prints the operating system, kernel, uptime and other host facts
beside an ASCII logo of the running distro.

Shared libraries placed in the plugins directory that export
"const char *int_output(void)" contribute one extra line each.`,
		Version:       versionString(),
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFetch(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/gofetch/config.json)")
	pf.StringVar(&a.flags.pluginsDir, "plugins-dir", "", "directory scanned for native plugins")
	pf.BoolVar(&a.flags.debug, "debug", false, "log debug output to stderr")

	f := root.Flags()
	f.IntVar(&a.flags.gap, "gap", 3, "number of spaces between logo and info")
	f.IntVar(&a.flags.workers, "workers", 0, "maximum providers running at once (0 = unbounded)")
	f.StringVar(&a.flags.color, "color", config.ColorAuto, "colorize output: auto, always or never")
	f.BoolVar(&a.flags.noPlugins, "no-plugins", false, "do not load plugins")
	f.BoolVar(&a.flags.noSave, "no-save", false, "do not write the effective config back to disk")

	root.AddCommand(newPluginsCommand(a), newConfigCommand(a), newVersionCommand(a))
	return root
}

// runFetch performs one fetch pass: load config and plugins, collect every
// selected field concurrently, compose and print the lines.
func (a *app) runFetch(cmd *cobra.Command) error {
	cfg, logger, err := a.setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var plugins []*plugin.Plugin
	if !a.flags.noPlugins {
		plugins = a.loadPlugins(cfg.PluginsDir, logger)
		defer func() { _ = plugin.CloseAll(plugins) }()
	}
	sources := make([]fetch.Source, len(plugins))
	for i, p := range plugins {
		sources[i] = p
	}

	agg := fetch.NewAggregator(
		a.providers(sysinfo.Options{Gap: cfg.Gap}),
		fetch.WithLogger(logger),
		fetch.WithWorkers(cfg.Workers),
	)
	rs := agg.Collect(cmd.Context(), cfg.Selection(), sources)
	lines := fetch.Compose(rs)

	strip := cfg.Color == config.ColorNever || (cfg.Color == config.ColorAuto && !a.isTerminal())
	for _, line := range lines {
		if strip {
			line = ascii.StripANSI(line)
		}
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	logger.Info("fetch finished",
		zap.Int("fields", len(rs.Fields)),
		zap.Int("plugins", len(rs.Plugins)),
		zap.Int("lines", len(lines)))
	return nil
}

// setup loads the configuration, applies command line overrides and builds
// the logger. A broken config file is reported and replaced by defaults.
func (a *app) setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	path, err := a.configPath()
	if err != nil {
		return nil, nil, err
	}

	cfg, v, loadErr := config.Load(path)
	flags := cmd.Flags()
	if flags.Changed("plugins-dir") {
		cfg.PluginsDir = a.flags.pluginsDir
	}
	if flags.Changed("gap") {
		cfg.Gap = a.flags.gap
	}
	if flags.Changed("workers") {
		cfg.Workers = a.flags.workers
	}
	if flags.Changed("color") {
		cfg.Color = a.flags.color
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := logging.New(logging.Options{
		Debug:   a.flags.debug,
		File:    cfg.LogFile,
		Console: a.errOut,
	})

	switch {
	case loadErr != nil:
		logger.Warn("config file ignored", zap.String("path", path), zap.Error(loadErr))
	case !a.flags.noSave:
		// Persist the effective config so a first run leaves a template behind.
		if err := config.Save(v, path); err != nil {
			logger.Debug("config not saved", zap.String("path", path), zap.Error(err))
		}
	}
	return cfg, logger, nil
}

// configPath returns the --config flag or the default config location.
func (a *app) configPath() (string, error) {
	if a.flags.configPath != "" {
		return a.flags.configPath, nil
	}
	return config.DefaultPath()
}

// loadPlugins discovers and opens the plugins of dir in listing order.
func (a *app) loadPlugins(dir string, logger *zap.Logger) []*plugin.Plugin {
	paths, err := plugin.Discover(dir)
	if err != nil {
		logger.Warn("cannot list plugins", zap.String("dir", dir), zap.Error(err))
		return nil
	}
	return plugin.LoadAll(paths, logger)
}
