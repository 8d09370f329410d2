package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTUIWithoutTerminalReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := runTUI()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}

func TestMainHelpFlagDoesNotExit(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"cex", "--help"}
	defer func() { os.Args = oldArgs }()

	// main() should return normally for help (no os.Exit).
	main()
}

func TestRootRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"api", "health", "register", "login", "session", "kyc", "balances"} {
		found, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestRootVerboseFlagWithSubcommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CEX_API", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--verbose", "api"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "http://localhost:8000\n", out.String())
}
