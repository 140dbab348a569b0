package game

import (
	"fmt"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/zucenko/hexaroni/model"
)

// GenConfig drives layout generation. Noise levels are in [0,1].
type GenConfig struct {
	Size int
	// Seed 0 picks a random seed.
	Seed int64
	// HomeRows is the number of rows each side starts in.
	HomeRows int
	// PieceLevel is the noise level above which a home cell holds a piece.
	PieceLevel float64
	// WallLevel and HoleLevel place walls and holes in the middle rows.
	WallLevel float64
	HoleLevel float64
}

func DefaultGenConfig(size int, seed int64) GenConfig {
	return GenConfig{
		Size:       size,
		Seed:       seed,
		HomeRows:   (size + 1) / 3,
		PieceLevel: 0.5,
		WallLevel:  0.62,
		HoleLevel:  0.3,
	}
}

// GenerateLayout returns a random layout of the given size in the layout
// format.
func GenerateLayout(size int, seed int64) (string, error) {
	return Generate(DefaultGenConfig(size, seed))
}

// Generate builds a layout from simplex noise. The layout is point
// symmetric: B's home rows are on top, A gets the mirror image, and each
// side has a Dasher in the middle of its back row.
func Generate(cfg GenConfig) (string, error) {
	if cfg.Size < 3 {
		return "", fmt.Errorf("%w: size %d too small to generate", ErrBadLayout, cfg.Size)
	}
	if cfg.HomeRows < 1 || 2*cfg.HomeRows > cfg.Size {
		return "", fmt.Errorf("%w: %d home rows on size %d", ErrBadLayout, cfg.HomeRows, cfg.Size)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	// separate layers for placement and for piece kind
	placeNoise := opensimplex.NewNormalized(seed)
	kindNoise := opensimplex.NewNormalized(seed + 1)

	size := cfg.Size
	grid := make([][]byte, size)
	for y := range grid {
		grid[y] = make([]byte, size)
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			mx, my := size-1-x, size-1-y
			// visit each mirror pair once, from the B side
			if y*size+x >= my*size+mx {
				continue
			}
			pos := model.ScreenCoordFromHex(model.NewHexCoord(x, y, size))
			n := octaveNoise(placeNoise, pos.X, pos.Y, 3, 0.35, 0.5)
			var char byte = '.'
			switch {
			case y < cfg.HomeRows:
				if n > cfg.PieceLevel {
					char = 'j'
					if kindNoise.Eval2(pos.X, pos.Y) > 0.5 {
						char = 'd'
					}
				}
			case n > cfg.WallLevel:
				char = 'W'
			case n < cfg.HoleLevel:
				char = '_'
			}
			grid[y][x] = char
			grid[my][mx] = mirrorCell(char)
		}
	}

	grid[0][size/2] = 'd'
	grid[size-1][size-1-size/2] = 'D'

	return fmt.Sprintf("# generated size=%d seed=%d\n", size, seed) + formatGrid(grid), nil
}

// mirrorCell hands a B piece over to A. Neutral cells stay as they are.
func mirrorCell(char byte) byte {
	switch char {
	case 'd':
		return 'D'
	case 'j':
		return 'J'
	}
	return char
}

// octaveNoise layers octaves of noise, each at twice the frequency of the last.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
