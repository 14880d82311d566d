package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func findCommand(t *testing.T, app *cli.App, names ...string) *cli.Command {
	t.Helper()
	cmds := app.Commands
	var found *cli.Command
	for _, name := range names {
		found = nil
		for _, cmd := range cmds {
			if cmd.Name == name {
				found = cmd
				break
			}
		}
		require.NotNil(t, found, "command %q not found", name)
		cmds = found.Subcommands
	}
	return found
}

func stringFlag(t *testing.T, cmd *cli.Command, name string) *cli.StringFlag {
	t.Helper()
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.StringFlag); ok && f.Name == name {
			return f
		}
	}
	t.Fatalf("string flag %q not found", name)
	return nil
}

func TestAppLayout(t *testing.T) {
	app := newApp()

	t.Run("has all top-level commands", func(t *testing.T) {
		for _, name := range []string{"project", "ingest", "chat", "screen", "summarize"} {
			assert.NotNil(t, findCommand(t, app, name))
		}
	})

	t.Run("project has lifecycle subcommands", func(t *testing.T) {
		for _, name := range []string{"create", "list", "delete", "set-password", "set-prompt"} {
			assert.NotNil(t, findCommand(t, app, "project", name))
		}
	})

	t.Run("config flag has default", func(t *testing.T) {
		var cfg *cli.StringFlag
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "config" {
				cfg = f
			}
		}
		require.NotNil(t, cfg)
		assert.Equal(t, "config.yaml", cfg.Value)
	})
}

func TestCommandFlags(t *testing.T) {
	app := newApp()

	t.Run("project create requires name and owner", func(t *testing.T) {
		cmd := findCommand(t, app, "project", "create")
		assert.True(t, stringFlag(t, cmd, "name").Required)
		assert.True(t, stringFlag(t, cmd, "owner").Required)
	})

	t.Run("set-password requires only the name", func(t *testing.T) {
		cmd := findCommand(t, app, "project", "set-password")
		assert.True(t, stringFlag(t, cmd, "name").Required)
		// Empty credential clears protection, so the flag stays optional
		assert.False(t, stringFlag(t, cmd, "password").Required)
	})

	t.Run("ingest requires project", func(t *testing.T) {
		cmd := findCommand(t, app, "ingest")
		assert.True(t, stringFlag(t, cmd, "project").Required)
	})

	t.Run("screen requires job posting", func(t *testing.T) {
		cmd := findCommand(t, app, "screen")
		assert.True(t, stringFlag(t, cmd, "title").Required)
		assert.True(t, stringFlag(t, cmd, "description-file").Required)
	})

	t.Run("summarize word limit defaults to 200", func(t *testing.T) {
		cmd := findCommand(t, app, "summarize")
		var words *cli.IntFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "words" {
				words = f
			}
		}
		require.NotNil(t, words)
		assert.Equal(t, 200, words.Value)
	})
}

func TestSetupRejectsBadLogLevel(t *testing.T) {
	app := newApp()
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "noop",
		Action: func(c *cli.Context) error { return nil },
	})

	err := app.Run([]string{"converso", "--log-level", "loud", "noop"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
