package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "seed", "tables", "simulate"})
}

func TestSimulateCmd_InvalidID(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-4"} {
		t.Run(arg, func(t *testing.T) {
			root := newRootCmd()
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			root.SetArgs([]string{"simulate", "--", arg})

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid campaign id")
		})
	}
}

func TestSimulateCmd_RequiresOneArg(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"simulate"})

	assert.Error(t, root.Execute())
}
