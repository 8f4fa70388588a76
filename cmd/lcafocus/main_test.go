package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/lcafocus/internal/cli"
	"github.com/rshade/lcafocus/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "lcafocus", root.Use)

		names := map[string]bool{}
		for _, c := range root.Commands() {
			names[c.Name()] = true
		}
		for _, want := range []string{
			"validate", "impacts", "totals", "compare", "breakdown",
			"stages", "eol", "correlation", "factors", "config",
		} {
			assert.True(t, names[want], "missing subcommand %q", want)
		}
	})
}
