package main

import (
	"flag"
	"strings"

	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/hexaroni/game"
	"github.com/zucenko/hexaroni/model"
)

type Config struct {
	LayoutPath string
	Size       int
	Seed       int64
	EnvFile    string
	Spectate   string
	Debug      bool
}

func parseFlags(args []string) (*Config, error) {
	c := &Config{}
	fs := flag.NewFlagSet("hexaroni", flag.ContinueOnError)
	fs.StringVar(&c.LayoutPath, "layout", "", "board layout file; the test square when empty")
	fs.IntVar(&c.Size, "size", 0, "generate a random board of this size instead of loading one")
	fs.Int64Var(&c.Seed, "seed", 0, "seed for -size, random when 0")
	fs.StringVar(&c.EnvFile, "env", ".env", "dotenv file with HEXARONI_* settings")
	fs.StringVar(&c.Spectate, "spectate", "", "serve the spectator feed on this address, e.g. :8080")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Settings() (game.Settings, error) {
	return game.LoadSettings(c.EnvFile)
}

// NewBoard builds the board a match starts on.
func (c *Config) NewBoard(settings game.Settings) (*model.Board, error) {
	switch {
	case c.LayoutPath != "":
		return Load(c.LayoutPath, settings)
	case c.Size > 0:
		layout, err := game.GenerateLayout(c.Size, c.Seed)
		if err != nil {
			return nil, err
		}
		log.WithField("size", c.Size).Debugf("generated layout\n%s", layout)
		return game.ReadLayout(strings.NewReader(layout), settings)
	default:
		return game.TestSquare(settings), nil
	}
}

// Load opens a layout the way ebiten opens assets.
func Load(path string, settings game.Settings) (*model.Board, error) {
	file, err := ebitenutil.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return game.ReadLayout(file, settings)
}
