package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeRoot runs rootCmd with args. Every call passes its own --config so
// no state from $HOME or an earlier run leaks in.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommandReportsConfigScreens(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "themelist.yaml")
	writeFile(t, cfg, `
screens:
  - path: /app/src/screens/DashboardScreen.js
    container: View
    line_approx: 12
  - path: ReportScreen.js
    container: ScrollView
`)

	out, err := executeRoot(t, "--config", cfg, "--manifest", "", "--file", "", "--pdf", "")
	require.NoError(t, err)
	assert.Equal(t, "Need to update 2 screens\n  - DashboardScreen.js\n  - ReportScreen.js\n", out)
}

func TestRootCommandManifestOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "themelist.yaml")
	writeFile(t, cfg, "screens:\n  - path: /c/ConfigScreen.js\n")
	manifest := filepath.Join(dir, "screens.yml")
	writeFile(t, manifest, "screens:\n  - path: /m/LoginScreen.js\n  - path: \"\"\n")

	out, err := executeRoot(t, "--config", cfg, "--manifest", manifest, "--file", "", "--pdf", "")
	var invalid *InvalidRecordError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, invalid.Index)
	assert.Equal(t, "Need to update 2 screens\n  - LoginScreen.js\n", out)
}

func TestRootCommandRejectsArguments(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "themelist.yaml")
	writeFile(t, cfg, "verbose: false\n")

	_, err := executeRoot(t, "--config", cfg, "extra")
	assert.Error(t, err)
}

func TestRootCommandBadConfig(t *testing.T) {
	_, err := executeRoot(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config")
}

func TestDiscoverCommandWritesManifest(t *testing.T) {
	root := newAppTree(t)
	cfg := filepath.Join(t.TempDir(), "themelist.yaml")
	writeFile(t, cfg, "verbose: false\n")

	out, err := executeRoot(t, "--config", cfg, "discover", root, "--container", "ScrollView", "--out", "")
	require.NoError(t, err)

	records, err := parseManifest([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, Records{
		{Path: slashJoin(root, "src/screens/Invoice/CreateInvoiceScreen.tsx"), Container: "ScrollView"},
		{Path: slashJoin(root, "src/screens/LoginScreen.js"), Container: "ScrollView"},
	}, records)
}

func TestDiscoverCommandOutFile(t *testing.T) {
	root := newAppTree(t)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "themelist.yaml")
	writeFile(t, cfg, "verbose: false\n")
	manifest := filepath.Join(dir, "screens.yml")

	out, err := executeRoot(t, "--config", cfg, "discover", root, "--pattern", "Login*", "--container", "View", "--out", manifest)
	require.NoError(t, err)
	assert.Empty(t, out)

	records, err := loadManifest(manifest)
	require.NoError(t, err)
	assert.Equal(t, Records{{Path: slashJoin(root, "src/screens/LoginScreen.js"), Container: "View"}}, records)
}

func TestRunDefaultScreens(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "themelist.yaml")
	writeFile(t, cfg, "verbose: false\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfg, "--manifest", "", "--file", "", "--pdf", ""}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
	assert.Equal(t, "Need to update 9 screens\n", strings.SplitAfter(stdout.String(), "\n")[0])
	assert.Equal(t, 10, strings.Count(stdout.String(), "\n"))
	assert.True(t, strings.HasSuffix(stdout.String(), "  - LoginScreen.js\n"))
}

func TestRunInvalidRecordExitCode(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "themelist.yaml")
	writeFile(t, cfg, "verbose: false\n")
	manifest := filepath.Join(dir, "m.yml")
	writeFile(t, manifest, "screens:\n  - path: /app/src/screens/LoginScreen.js\n  - path: \"\"\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfg, "--manifest", manifest, "--file", "", "--pdf", ""}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Need to update 2 screens\n  - LoginScreen.js\n", stdout.String())
	assert.Equal(t, "Error: invalid screen record 1 (path \"\"): empty path\n", stderr.String())
}

func TestRunBadManifestExitCode(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "themelist.yaml")
	writeFile(t, cfg, "verbose: false\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfg, "--manifest", filepath.Join(dir, "missing.yml")}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.True(t, strings.HasPrefix(stderr.String(), "Error: error reading manifest "))
	assert.Equal(t, 1, strings.Count(stderr.String(), "\n"))
}

func TestDiscoverInteractiveBoundToViper(t *testing.T) {
	flags := discoverCmd.Flags()
	t.Cleanup(func() { _ = flags.Set("interactive", "false") })

	assert.False(t, viper.GetBool("discover.interactive"))
	require.NoError(t, flags.Set("interactive", "true"))
	assert.True(t, viper.GetBool("discover.interactive"))
}
