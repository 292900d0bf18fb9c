package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("using defaults without a file", func(t *testing.T) {
		config, err := loadConfig("", -1)
		require.NoError(t, err)
		require.Equal(t, 3, config.Depth)
	})

	t.Run("letting the depth flag win over the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("depth: 4\ngames: 2\n"), 0644))

		config, err := loadConfig(path, 1)

		require.NoError(t, err)
		require.Equal(t, 1, config.Depth)
		require.Equal(t, 2, config.Games)
	})
}

func TestRunUnknownExperiment(t *testing.T) {
	config, err := loadConfig("", -1)
	require.NoError(t, err)
	require.Error(t, run("tournament", config))
}

func TestRunSession(t *testing.T) {
	t.Run("answering the human's move", func(t *testing.T) {
		config, err := loadConfig("", 1)
		require.NoError(t, err)
		config.Seed = 5

		var out strings.Builder
		err = runSession(config, strings.NewReader("x\n0 0 5 5\n2 0 3 0\n"), &out)

		require.NoError(t, err)
		require.Contains(t, out.String(), "expected four numbers")
		require.Contains(t, out.String(), "illegal move")
		require.Equal(t, 1, strings.Count(out.String(), "engine played"))
	})

	t.Run("letting the engine open for a black human", func(t *testing.T) {
		config, err := loadConfig("", 1)
		require.NoError(t, err)
		config.HumanSide = "black"

		var out strings.Builder
		require.NoError(t, runSession(config, strings.NewReader(""), &out))

		require.True(t, strings.HasPrefix(out.String(), "engine played"))
		require.Contains(t, out.String(), "black to move")
	})
}
