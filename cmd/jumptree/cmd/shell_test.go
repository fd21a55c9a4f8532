package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcusj6/JumpSearchTree/pkg/bench"
	"github.com/marcusj6/JumpSearchTree/pkg/dictionary"
)

func shellTestCommand(out *bytes.Buffer) *cobra.Command {
	c := &cobra.Command{Use: "test"}
	c.SetOut(out)
	return c
}

func TestRunShellCommandInsertSearchDelete(t *testing.T) {
	reg := bench.NewRegistry()
	treeName := "shelltest"
	var tree dictionary.Dictionary = reg.GetOrCreate(treeName, 5, 4)

	var out bytes.Buffer
	c := shellTestCommand(&out)

	require.NoError(t, runShellCommand(c, reg, &treeName, &tree, 5, 4, "insert 1 100"))
	require.NoError(t, runShellCommand(c, reg, &treeName, &tree, 5, 4, "search 1"))
	assert.Contains(t, out.String(), "1=100")

	out.Reset()
	require.NoError(t, runShellCommand(c, reg, &treeName, &tree, 5, 4, "delete 1"))
	require.NoError(t, runShellCommand(c, reg, &treeName, &tree, 5, 4, "search 1"))
	assert.Contains(t, out.String(), "not found")
}

func TestRunShellCommandUseSwitchesTree(t *testing.T) {
	reg := bench.NewRegistry()
	treeName := "first"
	var tree dictionary.Dictionary = reg.GetOrCreate(treeName, 5, 4)

	var out bytes.Buffer
	c := shellTestCommand(&out)

	require.NoError(t, runShellCommand(c, reg, &treeName, &tree, 5, 4, "use second"))
	assert.Equal(t, "second", treeName)

	require.NoError(t, runShellCommand(c, reg, &treeName, &tree, 5, 4, "insert 9 90"))
	second, exists := reg.Get("second")
	require.True(t, exists)
	assert.Equal(t, 1, second.Size())
}

func TestRunShellCommandUnknownCommand(t *testing.T) {
	reg := bench.NewRegistry()
	treeName := "x"
	var tree dictionary.Dictionary = reg.GetOrCreate(treeName, 5, 4)

	var out bytes.Buffer
	c := shellTestCommand(&out)

	err := runShellCommand(c, reg, &treeName, &tree, 5, 4, "frobnicate")
	assert.Error(t, err)
}
