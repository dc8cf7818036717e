package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakhall/teambot/internal/gateway"
	"github.com/oakhall/teambot/internal/model"
)

func TestCommandSchema(t *testing.T) {
	commands := Commands()
	require.Len(t, commands, 3)

	assert.Equal(t, "ping", commands[0].Name)
	assert.Empty(t, commands[0].Options)

	id := commands[1]
	assert.Equal(t, "id", id.Name)
	require.Len(t, id.Options, 1)
	assert.Equal(t, model.OptionTypeUser, id.Options[0].Type)
	assert.True(t, id.Options[0].Required)

	team := commands[2]
	assert.Equal(t, "team", team.Name)
	require.Len(t, team.Options, 4)

	byName := make(map[string]gateway.OptionSpec)
	for _, opt := range team.Options {
		byName[opt.Name] = opt
	}

	rename, ok := byName["rename"]
	require.True(t, ok)
	assert.Equal(t, model.OptionTypeSubCommand, rename.Type)
	require.Len(t, rename.Options, 1)
	assert.Equal(t, model.OptionTypeString, rename.Options[0].Type)

	recolor, ok := byName["recolor"]
	require.True(t, ok)
	require.Len(t, recolor.Options, 3)
	for i, name := range []string{"red", "green", "blue"} {
		assert.Equal(t, name, recolor.Options[i].Name)
		assert.Equal(t, model.OptionTypeInteger, recolor.Options[i].Type)
		assert.True(t, recolor.Options[i].Required)
	}

	create, ok := byName["create"]
	require.True(t, ok)
	require.Len(t, create.Options, 2)
	assert.Equal(t, model.OptionTypeChannel, create.Options[0].Type)
	assert.Equal(t, model.OptionTypeRole, create.Options[1].Type)

	score, ok := byName["score"]
	require.True(t, ok)
	assert.Equal(t, model.OptionTypeSubCommandGroup, score.Type)
	require.Len(t, score.Options, 2)
	assert.Equal(t, "list", score.Options[0].Name)
	adjust := score.Options[1]
	assert.Equal(t, "adjust", adjust.Name)
	require.Len(t, adjust.Options, 1)
	assert.Equal(t, "amount", adjust.Options[0].Name)
	assert.Equal(t, model.OptionTypeInteger, adjust.Options[0].Type)
}
