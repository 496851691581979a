package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetFlagVars restores package-level flag values between executions so
// cobra state does not leak across tests.
func resetFlagVars() {
	generateManifestDir = ""
	generateDryRun = false
	validateManifestDir = ""
	checkOnly = false
}

// executeCmd executes the root command with the given args and returns the output.
// This handles proper state reset between test executions.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlagVars()
	buf := new(bytes.Buffer)
	// Important: Set args BEFORE setting output buffers
	rootCmd.SetArgs(args)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	err := rootCmd.Execute()
	return buf.String(), err
}

// writeManifest writes a minimal valid Cargo.toml into dir and returns dir.
func writeManifest(t *testing.T, dir string) string {
	t.Helper()
	content := []byte(`
[package]
name = "demo"
version = "0.1.0"
authors = ["A <a@x.com>"]
description = "d"
license = "MIT"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), content, 0644))
	return dir
}

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})
}
