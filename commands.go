package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"gofetch/plugin"
)

// newPluginsCommand lists the candidate plugin files and whether each loads.
func newPluginsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List plugins found in the plugins directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.flags.noSave = true
			cfg, logger, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			paths, err := plugin.Discover(cfg.PluginsDir)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				fmt.Fprintf(a.out, "no plugins in %s\n", cfg.PluginsDir)
				return nil
			}
			for _, path := range paths {
				p, err := plugin.Open(path)
				if err != nil {
					fmt.Fprintf(a.out, "%s\tfailed\t%v\n", path, err)
					continue
				}
				fmt.Fprintf(a.out, "%s\tok\t%s\n", path, p.Name())
				_ = p.Close()
			}
			return nil
		},
	}
}

// newConfigCommand prints the location and effective values of the config.
func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.flags.noSave = true
			cfg, logger, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			path, err := a.configPath()
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "# %s\n", path)
			values := map[string]any{
				"show_distro": cfg.ShowDistro,
				"show_os":     cfg.ShowOS,
				"show_kernel": cfg.ShowKernel,
				"show_uptime": cfg.ShowUptime,
				"show_host":   cfg.ShowHost,
				"show_shell":  cfg.ShowShell,
				"show_cpu":    cfg.ShowCPU,
				"show_memory": cfg.ShowMemory,
				"gap":         cfg.Gap,
				"plugins_dir": cfg.PluginsDir,
				"workers":     cfg.Workers,
				"color":       cfg.Color,
				"log_file":    cfg.LogFile,
			}
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(a.out, "%s = %v\n", k, values[k])
			}
			return nil
		},
	}
}

// newVersionCommand prints the same build information as --version.
func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gofetch version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(a.out, "gofetch version %s\n", versionString())
			return err
		},
	}
}
