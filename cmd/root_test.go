package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tests below check command wiring only; they never execute a
// command, since bootstrap touches the user's home directory.

func TestRootCmd(t *testing.T) {
	require.NotNil(t, rootCmd)
	assert.Equal(t, "oiprep", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.Contains(t, rootCmd.Long, "fetch")
	assert.Contains(t, rootCmd.Long, "select")
	assert.Contains(t, rootCmd.Long, "upload")
	assert.Contains(t, rootCmd.Long, "status")
}

func TestRootCmdBootstrap(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentPreRunE,
		"PersistentPreRunE should be set for bootstrap")
	assert.NotNil(t, rootCmd.RunE,
		"RunE should be set to handle version flag")
}

func TestRootCmdErrorSilencing(t *testing.T) {
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmdSubcommands(t *testing.T) {
	want := []string{"fetch", "select", "upload", "status"}
	var got []string
	for _, c := range rootCmd.Commands() {
		got = append(got, c.Name())
	}
	for _, name := range want {
		assert.Contains(t, got, name)
	}
}

func TestRootCmdVersionFlag(t *testing.T) {
	f := rootCmd.Flags().Lookup("version")
	require.NotNil(t, f)
	assert.Equal(t, "V", f.Shorthand)
}

func TestSubcommandFlags(t *testing.T) {
	tests := []struct {
		cmd   string
		flags []string
	}{
		{cmd: "select", flags: []string{"classes", "count", "batch"}},
		{cmd: "upload", flags: []string{"keep-going"}},
		{cmd: "status", flags: []string{"job"}},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			var found *bool
			for _, c := range rootCmd.Commands() {
				if c.Name() != tt.cmd {
					continue
				}
				for _, name := range tt.flags {
					f := c.Flags().Lookup(name)
					assert.NotNil(t, f, name)
				}
				ok := true
				found = &ok
			}
			require.NotNil(t, found, "command %s is registered", tt.cmd)
		})
	}
}
