package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGame struct {
	command string
	prefix  string
}

func (g *stubGame) Name() string           { return "stub" }
func (g *stubGame) Command() string        { return g.command }
func (g *stubGame) Description() string    { return "stub game" }
func (g *stubGame) CallbackPrefix() string { return g.prefix }

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(&stubGame{command: "play", prefix: "num_"}))
	assert.Equal(t, 1, r.Count())

	g, ok := r.Get("play")
	require.True(t, ok)
	assert.Equal(t, "play", g.Command())

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_RegisterInvalid(t *testing.T) {
	r := NewRegistry()

	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(&stubGame{command: "", prefix: "x_"}))
	assert.Error(t, r.Register(&stubGame{command: "play", prefix: ""}))
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_ByCallbackData(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubGame{command: "play", prefix: "num_"}))
	require.NoError(t, r.Register(&stubGame{command: "other", prefix: "oth_"}))

	g, ok := r.ByCallbackData("num_cell_4")
	require.True(t, ok)
	assert.Equal(t, "play", g.Command())

	_, ok = r.ByCallbackData("shop_buy_1")
	assert.False(t, ok)
}
