package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFromInts(t *testing.T) {
	color, err := ColorFromInts(0, 128, 255)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0, G: 128, B: 255}, color)
}

func TestColorFromIntsOutOfRange(t *testing.T) {
	for _, components := range [][3]int64{
		{256, 0, 0},
		{0, -1, 0},
		{0, 0, 1000},
	} {
		_, err := ColorFromInts(components[0], components[1], components[2])
		assert.ErrorIs(t, err, ErrInvalidColorComponent)
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "(10, 20, 30)", Color{R: 10, G: 20, B: 30}.String())
}

func TestUserTag(t *testing.T) {
	user := User{ID: "42", Username: "alice", Discriminator: "0420"}
	assert.Equal(t, "alice#0420", user.Tag())
}
