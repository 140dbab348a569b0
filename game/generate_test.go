package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/hexaroni/model"
)

func cells(t *testing.T, layout string) [][]string {
	t.Helper()
	var grid [][]string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "size") {
			continue
		}
		grid = append(grid, strings.Fields(line))
	}
	return grid
}

func TestGenerateLayoutIsPlayable(t *testing.T) {
	for _, size := range []int{3, 5, 7, 9} {
		for _, seed := range []int64{1, 42, 1234} {
			layout, err := GenerateLayout(size, seed)
			require.NoError(t, err)
			b, err := ReadLayout(strings.NewReader(layout), DefaultSettings())
			require.NoError(t, err, "size=%d seed=%d\n%s", size, seed, layout)
			assert.Equal(t, size, b.Size)

			dasher := b.Contents(model.NewHexCoord(size/2, 0, size))
			require.NotNil(t, dasher)
			assert.Equal(t, model.Dasher, dasher.Type)
			assert.Equal(t, model.PlayerB, dasher.Player)
		}
	}
}

func TestGenerateLayoutIsDeterministic(t *testing.T) {
	a, err := GenerateLayout(7, 99)
	require.NoError(t, err)
	b, err := GenerateLayout(7, 99)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "# generated size=7 seed=99\n"))
}

func TestGenerateLayoutIsPointSymmetric(t *testing.T) {
	layout, err := GenerateLayout(8, 7)
	require.NoError(t, err)
	grid := cells(t, layout)
	require.Len(t, grid, 8)
	for y, row := range grid {
		for x, cell := range row {
			mirror := grid[7-y][7-x]
			switch cell {
			case "d", "j":
				assert.Equal(t, strings.ToUpper(cell), mirror)
			case "D", "J":
				assert.Equal(t, strings.ToLower(cell), mirror)
			default:
				assert.Equal(t, cell, mirror)
			}
		}
	}
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	_, err := GenerateLayout(2, 1)
	assert.True(t, errors.Is(err, ErrBadLayout))

	cfg := DefaultGenConfig(7, 1)
	cfg.HomeRows = 4
	_, err = Generate(cfg)
	assert.True(t, errors.Is(err, ErrBadLayout))
}
