package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/zucenko/hexaroni/model"
)

// Rules are the rule variants move generation depends on.
type Rules struct {
	// DasherCanFly lets a Dasher slide across missing tiles. It never lands on one.
	DasherCanFly bool
	// WallsMove gives player-owned walls a one-step move.
	WallsMove bool
}

// Settings are the tunables of a match. Times are in seconds.
type Settings struct {
	StartingPlayer     model.Player
	PlayMoveTimeout    float64
	GameStartCountdown float64
	MoveDuration       float64
	KillDuration       float64
	FallDuration       float64
	IndicatorLead      int
	Rules              Rules
}

func DefaultSettings() Settings {
	return Settings{
		StartingPlayer:     model.PlayerA,
		PlayMoveTimeout:    5.0,
		GameStartCountdown: 2.5,
		MoveDuration:       0.25,
		KillDuration:       0.4,
		FallDuration:       model.DefaultFallDuration,
		IndicatorLead:      model.DefaultIndicatorLead,
	}
}

// Decay returns the tile decay for a tile with lifespan.
func (s Settings) Decay(lifespan int) model.Decay {
	d := model.DefaultDecay(lifespan)
	d.IndicatorLead = s.IndicatorLead
	d.FallDuration = s.FallDuration
	return d
}

const envPrefix = "HEXARONI_"

// LoadSettings starts from DefaultSettings and applies HEXARONI_* values
// read from the given dotenv files and then from the process environment,
// which wins. Files that do not exist are skipped.
func LoadSettings(files ...string) (Settings, error) {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	env := map[string]string{}
	if len(existing) > 0 {
		read, err := godotenv.Read(existing...)
		if err != nil {
			return Settings{}, fmt.Errorf("reading %v: %w", existing, err)
		}
		env = read
	}
	for _, key := range settingKeys {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			env[envPrefix+key] = v
		}
	}
	return DefaultSettings().WithEnv(env)
}

var settingKeys = []string{
	"STARTING_PLAYER",
	"MOVE_TIMEOUT",
	"COUNTDOWN",
	"MOVE_DURATION",
	"KILL_DURATION",
	"FALL_DURATION",
	"INDICATOR_LEAD",
	"DASHER_CAN_FLY",
	"WALLS_MOVE",
}

// WithEnv overrides s with the HEXARONI_* keys present in env.
func (s Settings) WithEnv(env map[string]string) (Settings, error) {
	for _, key := range settingKeys {
		v, ok := env[envPrefix+key]
		if !ok || v == "" {
			continue
		}
		var err error
		switch key {
		case "STARTING_PLAYER":
			s.StartingPlayer, err = model.ParsePlayer(v)
			if err == nil && !s.StartingPlayer.Competing() {
				err = fmt.Errorf("god cannot start")
			}
		case "MOVE_TIMEOUT":
			s.PlayMoveTimeout, err = parseSeconds(v)
		case "COUNTDOWN":
			s.GameStartCountdown, err = parseSeconds(v)
		case "MOVE_DURATION":
			s.MoveDuration, err = parseSeconds(v)
		case "KILL_DURATION":
			s.KillDuration, err = parseSeconds(v)
		case "FALL_DURATION":
			s.FallDuration, err = parseSeconds(v)
		case "INDICATOR_LEAD":
			s.IndicatorLead, err = strconv.Atoi(v)
		case "DASHER_CAN_FLY":
			s.Rules.DasherCanFly, err = strconv.ParseBool(v)
		case "WALLS_MOVE":
			s.Rules.WallsMove, err = strconv.ParseBool(v)
		}
		if err != nil {
			return Settings{}, fmt.Errorf("%s%s=%q: %w", envPrefix, key, v, err)
		}
	}
	return s, nil
}

func parseSeconds(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("negative duration")
	}
	return f, nil
}
