package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofetch/ascii"
	"gofetch/fetch"
	"gofetch/sysinfo"
)

// Local test helpers

type testEnv struct {
	dir     string
	config  string
	plugins string
	out     bytes.Buffer
	errOut  bytes.Buffer
}

func newTestEnv(t *testing.T, configJSON string) *testEnv {
	t.Helper()
	env := &testEnv{dir: t.TempDir()}
	env.config = filepath.Join(env.dir, "config.json")
	env.plugins = filepath.Join(env.dir, "plugins")
	require.NoError(t, os.MkdirAll(env.plugins, 0o755))
	if configJSON != "" {
		require.NoError(t, os.WriteFile(env.config, []byte(configJSON), 0o644))
	}
	return env
}

func fakeProviders(texts map[fetch.FieldKind]string) func(sysinfo.Options) map[fetch.FieldKind]fetch.ProviderFunc {
	return func(sysinfo.Options) map[fetch.FieldKind]fetch.ProviderFunc {
		providers := make(map[fetch.FieldKind]fetch.ProviderFunc)
		for kind, text := range texts {
			providers[kind] = func(context.Context) string { return text }
		}
		return providers
	}
}

func (env *testEnv) run(t *testing.T, texts map[fetch.FieldKind]string, args ...string) error {
	t.Helper()
	a := &app{
		out:        &env.out,
		errOut:     &env.errOut,
		providers:  fakeProviders(texts),
		isTerminal: func() bool { return false },
	}
	root := newRootCommand(a)
	root.SetArgs(append([]string{"--config", env.config, "--plugins-dir", env.plugins}, args...))
	return root.ExecuteContext(context.Background())
}

var allFields = map[fetch.FieldKind]string{
	fetch.FieldDistro: "L0\nL1\nL2",
	fetch.FieldOS:     "OS: ExampleOS 1.0 (Stable) x86_64",
	fetch.FieldKernel: "Kernel: 6.9.0",
	fetch.FieldUptime: "Uptime: 1hr 0m 0s",
}

// TestRunFetch_OSOnly tests the single-field scenario end to end
func TestRunFetch_OSOnly(t *testing.T) {
	env := newTestEnv(t, `{"show_distro": false, "show_os": true, "show_kernel": false, "show_uptime": false}`)

	require.NoError(t, env.run(t, allFields))

	assert.Equal(t, "OS: ExampleOS 1.0 (Stable) x86_64\n", env.out.String())
	assert.Empty(t, env.errOut.String())
}

// TestRunFetch_AllOff tests that nothing is printed when every toggle is off
func TestRunFetch_AllOff(t *testing.T) {
	env := newTestEnv(t, `{"show_distro": false, "show_os": false, "show_kernel": false, "show_uptime": false}`)

	require.NoError(t, env.run(t, allFields))

	assert.Empty(t, env.out.String())
}

// TestRunFetch_LogoBesideText tests the overlay with colors kept
func TestRunFetch_LogoBesideText(t *testing.T) {
	env := newTestEnv(t, `{"show_distro": true, "show_os": true, "show_kernel": false, "show_uptime": false}`)

	require.NoError(t, env.run(t, allFields, "--color", "always"))

	lines := strings.Split(strings.TrimSuffix(env.out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "L0"+ascii.Reset+"OS: ExampleOS 1.0 (Stable) x86_64", lines[0])
	assert.Equal(t, "L1"+ascii.Reset, lines[1])
	assert.Equal(t, "L2"+ascii.Reset, lines[2])
}

// TestRunFetch_ColorStrippedWhenPiped tests the auto color mode
func TestRunFetch_ColorStrippedWhenPiped(t *testing.T) {
	env := newTestEnv(t, `{"show_distro": true, "show_os": true, "show_kernel": false, "show_uptime": false}`)

	require.NoError(t, env.run(t, allFields))

	assert.Equal(t, "L0OS: ExampleOS 1.0 (Stable) x86_64\nL1\nL2\n", env.out.String())
}

// TestRunFetch_BrokenPluginSkipped tests that a non-plugin file costs one warning and nothing else
func TestRunFetch_BrokenPluginSkipped(t *testing.T) {
	env := newTestEnv(t, `{"show_distro": false}`)
	broken := filepath.Join(env.plugins, "broken.so")
	require.NoError(t, os.WriteFile(broken, []byte("not an ELF file"), 0o644))

	require.NoError(t, env.run(t, allFields))

	assert.Equal(t, "OS: ExampleOS 1.0 (Stable) x86_64\nKernel: 6.9.0\nUptime: 1hr 0m 0s\n", env.out.String())
	assert.Equal(t, 1, strings.Count(env.errOut.String(), "failed to load plugin"))
	assert.Contains(t, env.errOut.String(), broken)
}

// TestRunFetch_NoPluginsFlag tests that plugins can be switched off
func TestRunFetch_NoPluginsFlag(t *testing.T) {
	env := newTestEnv(t, `{"show_distro": false}`)
	require.NoError(t, os.WriteFile(filepath.Join(env.plugins, "broken.so"), []byte("x"), 0o644))

	require.NoError(t, env.run(t, allFields, "--no-plugins"))

	assert.NotContains(t, env.errOut.String(), "failed to load plugin")
}

// TestRunFetch_MalformedConfig tests the warn-and-continue policy for the config file
func TestRunFetch_MalformedConfig(t *testing.T) {
	env := newTestEnv(t, `{"show_os": `)

	require.NoError(t, env.run(t, allFields, "--color", "never"))

	assert.Contains(t, env.errOut.String(), "config file ignored")
	assert.Contains(t, env.out.String(), "OS: ExampleOS")
	data, err := os.ReadFile(env.config)
	require.NoError(t, err)
	assert.Equal(t, `{"show_os": `, string(data), "a broken config is never overwritten")
}

// TestRunFetch_FirstRunSavesConfig tests that the defaults are written as a template
func TestRunFetch_FirstRunSavesConfig(t *testing.T) {
	env := newTestEnv(t, "")

	require.NoError(t, env.run(t, allFields))

	data, err := os.ReadFile(env.config)
	require.NoError(t, err)
	assert.Contains(t, string(data), "show_uptime")
}

// TestRunFetch_InvalidColorFlag tests that CLI misuse is an error
func TestRunFetch_InvalidColorFlag(t *testing.T) {
	env := newTestEnv(t, "")

	err := env.run(t, allFields, "--color", "rainbow")

	assert.Error(t, err)
	assert.Empty(t, env.out.String())
}

// TestPluginsCommand tests the plugin listing
func TestPluginsCommand(t *testing.T) {
	env := newTestEnv(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(env.plugins, "notes.txt"), []byte("x"), 0o644))

	require.NoError(t, env.run(t, nil, "plugins"))

	assert.Contains(t, env.out.String(), "notes.txt\tfailed")
	_, err := os.Stat(env.config)
	assert.True(t, os.IsNotExist(err), "listing plugins does not write the config")
}

// TestConfigCommand tests the configuration dump
func TestConfigCommand(t *testing.T) {
	env := newTestEnv(t, `{"show_cpu": true}`)

	require.NoError(t, env.run(t, nil, "config"))

	out := env.out.String()
	assert.True(t, strings.HasPrefix(out, "# "+env.config+"\n"))
	assert.Contains(t, out, "show_cpu = true")
	assert.Contains(t, out, "plugins_dir = "+env.plugins)
}

// TestVersionCommand tests that the subcommand and the flag agree
func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t, "")

	require.NoError(t, env.run(t, nil, "version"))
	assert.Equal(t, "gofetch version "+versionString()+"\n", env.out.String())
	_, err := os.Stat(env.config)
	assert.True(t, os.IsNotExist(err), "version must not touch the config file")

	env.out.Reset()
	require.NoError(t, env.run(t, nil, "--version"))
	assert.Contains(t, env.out.String(), versionString())
}
