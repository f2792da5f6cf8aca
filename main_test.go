package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renate-frame/board"
	"renate-frame/config"
	"renate-frame/engine"
	"renate-frame/types"
)

func TestGameDefaults(t *testing.T) {
	assert.Equal(t, engine.DefaultConfig(), gameDefaults(config.GameConfig{}))

	got := gameDefaults(config.GameConfig{Mode: types.YouVsFriend, Width: 12, Height: 40})
	assert.Equal(t, engine.GameConfig{Mode: types.YouVsFriend, Width: 12, Height: 9}, got)

	got = gameDefaults(config.GameConfig{Mode: types.Mode(9), Width: 5, Height: 5})
	assert.Equal(t, types.RenateVsYou, got.Mode)
}

func TestBuildGameConfigFromFlags(t *testing.T) {
	c := config.DefaultConfig
	c.Game.Width = 7
	cfg = &c
	t.Cleanup(func() { cfg = nil })

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--mode", "4", "--height", "5", "--seed", "3"}))
	got, err := buildGameConfigFromFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, engine.GameConfig{Mode: types.YouVsFriend, Width: 7, Height: 5, Seed: 3}, got)

	cmd = newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--width", "2"}))
	_, err = buildGameConfigFromFlags(cmd)
	assert.ErrorIs(t, err, board.ErrInvalidSize)

	cmd = newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--mode", "chess"}))
	_, err = buildGameConfigFromFlags(cmd)
	assert.Error(t, err)
}
