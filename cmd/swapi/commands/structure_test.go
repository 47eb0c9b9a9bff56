package commands_test

import (
	"testing"

	"github.com/fivetwenty-io/swapi/cmd/swapi/commands"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.Equal(t, "Manage CLI configuration", cmd.Short)

	require.NotNil(t, findSubcommand(cmd, "show"))
	require.NotNil(t, findSubcommand(cmd, "set"))
	assert.Len(t, cmd.Commands(), 2)
}

func TestNewSearchCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewSearchCommand()
	assert.Equal(t, "search TYPE [QUERY]", cmd.Use)
	assert.Equal(t, []string{"list", "ls"}, cmd.Aliases)

	page := cmd.Flags().Lookup("page")
	require.NotNil(t, page)
	assert.Equal(t, "1", page.DefValue)

	all := cmd.Flags().Lookup("all")
	require.NotNil(t, all)
	assert.Equal(t, "false", all.DefValue)
}

func TestNewShowCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewShowCommand()
	assert.Equal(t, "show TYPE ID", cmd.Use)

	concurrency := cmd.Flags().Lookup("concurrency")
	require.NotNil(t, concurrency)
	assert.Equal(t, "0", concurrency.DefValue)

	require.Error(t, cmd.Args(cmd, []string{}))
	require.NoError(t, cmd.Args(cmd, []string{"films", "1"}))
	require.NoError(t, cmd.Args(cmd, []string{"https://swapi.py4e.com/api/films/1/"}))
}

func TestNewGetCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewGetCommand()
	assert.Equal(t, "get TYPE ID", cmd.Use)
	require.Error(t, cmd.Args(cmd, []string{"people", "1", "2"}))
}
