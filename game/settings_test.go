package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/hexaroni/model"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, model.PlayerA, s.StartingPlayer)
	assert.Equal(t, 5.0, s.PlayMoveTimeout)
	assert.Equal(t, 2.5, s.GameStartCountdown)
	assert.Equal(t, 0.25, s.MoveDuration)
	assert.Equal(t, 0.4, s.KillDuration)
	assert.Equal(t, 2.0, s.FallDuration)
	assert.Equal(t, 2, s.IndicatorLead)
	assert.False(t, s.Rules.DasherCanFly)
	assert.False(t, s.Rules.WallsMove)
}

func TestWithEnv(t *testing.T) {
	s, err := DefaultSettings().WithEnv(map[string]string{
		"HEXARONI_STARTING_PLAYER": "B",
		"HEXARONI_MOVE_TIMEOUT":    "7.5",
		"HEXARONI_DASHER_CAN_FLY":  "true",
		"HEXARONI_INDICATOR_LEAD":  "3",
		"UNRELATED":                "x",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PlayerB, s.StartingPlayer)
	assert.Equal(t, 7.5, s.PlayMoveTimeout)
	assert.True(t, s.Rules.DasherCanFly)
	assert.Equal(t, 3, s.IndicatorLead)
	assert.Equal(t, 2.5, s.GameStartCountdown)
}

func TestWithEnvRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"HEXARONI_STARTING_PLAYER": "God",
		"HEXARONI_MOVE_TIMEOUT":    "-1",
		"HEXARONI_KILL_DURATION":   "soon",
		"HEXARONI_WALLS_MOVE":      "maybe",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := DefaultSettings().WithEnv(map[string]string{key: value})
			assert.Error(t, err)
		})
	}
}

func TestLoadSettingsFromDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hexaroni.env")
	require.NoError(t, os.WriteFile(path, []byte("# match tuning\nHEXARONI_COUNTDOWN=1\nHEXARONI_WALLS_MOVE=true\nHEXARONI_MOVE_DURATION=0.5\n"), 0o600))
	t.Setenv("HEXARONI_MOVE_DURATION", "0.3")

	s, err := LoadSettings(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.GameStartCountdown)
	assert.True(t, s.Rules.WallsMove)
	// the process environment wins over files
	assert.Equal(t, 0.3, s.MoveDuration)
}

func TestLoadSettingsWithoutFiles(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettingsDecay(t *testing.T) {
	s := DefaultSettings()
	s.IndicatorLead = 4
	s.FallDuration = 1
	d := s.Decay(20)
	assert.Equal(t, 20, d.Lifespan)
	assert.Equal(t, 4, d.IndicatorLead)
	assert.Equal(t, 1.0, d.FallDuration)
	assert.Equal(t, model.DefaultWobbleSpeed, d.WobbleSpeed)
}
