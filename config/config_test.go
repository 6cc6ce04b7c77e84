package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())
	assert.Equal(t, DefaultTuning().Player, Player)
	assert.Equal(t, DefaultTuning().Physics, Physics)
}

func TestLoadTuningOverridesOnlyGivenKeys(t *testing.T) {
	src := `
physics:
  gravity: 1000
player:
  movement:
    maxSpeed: 200
    dashEnabled: true
`
	tuning, err := LoadTuning(strings.NewReader(src))
	require.NoError(t, err)

	def := DefaultTuning()
	assert.Equal(t, 1000.0, tuning.Physics.Gravity)
	assert.Equal(t, def.Physics.MaxFallSpeed, tuning.Physics.MaxFallSpeed)
	assert.Equal(t, 200.0, tuning.Player.Movement.MaxSpeed)
	assert.True(t, tuning.Player.Movement.DashEnabled)
	assert.Equal(t, def.Player.Movement.JumpSpeed, tuning.Player.Movement.JumpSpeed)
	assert.Equal(t, def.Walker, tuning.Walker)
}

func TestLoadTuningEmptyDocument(t *testing.T) {
	tuning, err := LoadTuning(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning().Bounce, tuning.Bounce)
}

func TestLoadTuningRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"walkable angle": "player:\n  movement:\n    maxWalkableAngle: 95\n",
		"cancel factor":  "walker:\n  movement:\n    jumpCancelFactor: 2\n",
		"no cancel":      "player:\n  movement:\n    jumpCancelFactor: 0\n",
		"max step":       "physics:\n  maxStep: 0\n",
		"missing filter": "possession:\n  respawnFilter: nowhere\n",
		"size":           "bouncer:\n  width: 0\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadTuning(strings.NewReader(src))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTuning)
		})
	}
}

func TestValidateReportsCharactersInOrder(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Bouncer.Width = 0
	tuning.Walker.Movement.MaxWalkableAngle = 0
	tuning.Player.Height = 0

	for i := 0; i < 20; i++ {
		err := tuning.Validate()
		require.ErrorIs(t, err, ErrInvalidTuning)
		assert.Contains(t, err.Error(), "player size")
	}

	tuning.Player.Height = 40
	assert.Contains(t, tuning.Validate().Error(), "walker.movement.maxWalkableAngle")
}

func TestLoadTuningUnknownKey(t *testing.T) {
	_, err := LoadTuning(strings.NewReader("physics:\n  gravty: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode tuning")
}

func TestLoadTuningFileEmptyPath(t *testing.T) {
	tuning, err := LoadTuningFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning().Flow, tuning.Flow)
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("HAUNT_TICK_RATE", "30")
	t.Setenv("HAUNT_LEVEL", "level02")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 30, s.TickRate)
	assert.Equal(t, "level02", s.Level)
	assert.Equal(t, "info", s.LogLevel)
	assert.Empty(t, s.LevelsDir)
}

func TestLoadSettingsError(t *testing.T) {
	t.Setenv("HAUNT_TICK_RATE", "fast")

	_, err := LoadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadSettingsRejectsZeroTickRate(t *testing.T) {
	t.Setenv("HAUNT_TICK_RATE", "0")

	_, err := LoadSettings()
	require.Error(t, err)
}
