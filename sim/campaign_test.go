package sim

import (
	"testing"

	"github.com/automoto/haunt/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaign(t *testing.T) {
	levels := map[string]*leveldata.Level{
		"a": finishLevel("a", ""),
		"b": finishLevel("b", "a"),
	}
	c := NewCampaign(levels, []string{"a", "b"}, Options{})

	first, err := c.Start("")
	require.NoError(t, err)
	assert.Equal(t, "a", first.Level().Name)

	second, err := c.Next(first, "")
	require.NoError(t, err)
	assert.Equal(t, "b", second.Level().Name)

	back, err := c.Next(second, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", back.Level().Name)

	end, err := c.Next(second, "")
	require.NoError(t, err)
	assert.Nil(t, end)

	_, err = c.Start("zzz")
	assert.ErrorIs(t, err, ErrUnknownLevel)

	_, err = NewCampaign(nil, nil, Options{}).Start("")
	assert.ErrorIs(t, err, ErrNoLevel)
}

func TestCampaignDrivesGameLoop(t *testing.T) {
	levels := map[string]*leveldata.Level{
		"a": finishLevel("a", ""),
		"b": finishLevel("b", ""),
	}
	c := NewCampaign(levels, []string{"a", "b"}, Options{})
	first, err := c.Start("a")
	require.NoError(t, err)

	loop := NewGameLoop(first, 60, c.Next, nil)
	steps := 0
	for loop.Step() {
		steps++
		require.Less(t, steps, 200)
	}
	assert.Equal(t, "b", loop.Simulation().Level().Name)
}
