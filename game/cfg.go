package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/hexaroni/model"
)

var ErrBadLayout = errors.New("bad layout")

// DefaultLayout is the 7x7 test square. Rows are y, columns x; indentation
// only mirrors the hex stagger.
//
//	.   tile        _   hole (no tile)
//	W   wall        D J Dasher, Jumper of A
//	                d j Dasher, Jumper of B
const DefaultLayout = `# test square
size 7
J . . . d . .
 . d d . . . J
  . d W W . J W
   j . . . . . J
    W j . W W D .
     j . . . D D .
      . . D . . . j
`

// TestSquare builds the board of DefaultLayout.
func TestSquare(settings Settings) *model.Board {
	b, err := ReadLayout(strings.NewReader(DefaultLayout), settings)
	if err != nil {
		panic(err)
	}
	return b
}

// Load reads the layout file at path.
func Load(path string, settings Settings) (*model.Board, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	b, err := ReadLayout(file, settings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(log.Fields{"path": path, "size": b.Size, "objects": b.Len()}).Info("layout loaded")
	return b, nil
}

// ReadLayout parses a layout and builds a verified board from it.
func ReadLayout(reader io.Reader, settings Settings) (*model.Board, error) {
	size, objects, err := read(reader, settings)
	if err != nil {
		return nil, err
	}
	return model.NewBoard(size, objects)
}

func read(reader io.Reader, settings Settings) (size int, objects []model.Object, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	var tiles, pieces []model.Object
	lineNr := 0
	row := 0

	for scanner.Scan() {
		lineNr++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if size == 0 {
			fields := strings.Fields(s)
			if len(fields) != 2 || fields[0] != "size" {
				return 0, nil, fmt.Errorf("%w: line %d: expected \"size N\", got %q", ErrBadLayout, lineNr, s)
			}
			size, err = strconv.Atoi(fields[1])
			if err != nil || size < 1 {
				return 0, nil, fmt.Errorf("%w: line %d: bad size %q", ErrBadLayout, lineNr, fields[1])
			}
			continue
		}
		if row >= size {
			return 0, nil, fmt.Errorf("%w: line %d: more than %d rows", ErrBadLayout, lineNr, size)
		}
		cells := strings.Fields(s)
		if len(cells) != size {
			return 0, nil, fmt.Errorf("%w: line %d: %d cells, want %d", ErrBadLayout, lineNr, len(cells), size)
		}
		for x, cellText := range cells {
			if len(cellText) != 1 {
				return 0, nil, fmt.Errorf("%w: line %d: bad cell %q", ErrBadLayout, lineNr, cellText)
			}
			coord := model.NewHexCoord(x, row, size)
			char := cellText[0]
			if char == '_' {
				continue
			}
			tiles = append(tiles, model.NewTile(row*size+x, coord, settings.Decay(Lifespan(coord, settings.IndicatorLead))))
			oid := size*size + len(pieces)
			switch char {
			case '.':
			case 'W':
				pieces = append(pieces, model.NewWall(oid, coord))
			case 'D':
				pieces = append(pieces, model.NewPiece(oid, model.Dasher, coord, model.PlayerA))
			case 'J':
				pieces = append(pieces, model.NewPiece(oid, model.Jumper, coord, model.PlayerA))
			case 'd':
				pieces = append(pieces, model.NewPiece(oid, model.Dasher, coord, model.PlayerB))
			case 'j':
				pieces = append(pieces, model.NewPiece(oid, model.Jumper, coord, model.PlayerB))
			default:
				return 0, nil, fmt.Errorf("%w: line %d: unknown cell %q", ErrBadLayout, lineNr, cellText)
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, err
	}
	if size == 0 {
		return 0, nil, fmt.Errorf("%w: missing size", ErrBadLayout)
	}
	if row != size {
		return 0, nil, fmt.Errorf("%w: %d rows, want %d", ErrBadLayout, row, size)
	}
	return size, append(tiles, pieces...), nil
}

// Lifespan is the move number at which the tile on c collapses. Tiles far
// from the centre go first; no tile collapses before its warning can show.
func Lifespan(c model.HexCoord, indicatorLead int) int {
	center := (c.BoardSize - 1) / 2
	delay := func(d int) int {
		return int(math.Round(33 * float64(d) / float64(c.BoardSize)))
	}
	lifespan := 48 - delay(abs(c.X-center)) - delay(abs(c.Y-center))
	if floor := indicatorLead + 1; lifespan < floor {
		return floor
	}
	return lifespan
}

// FormatBoard renders b in the layout format. Dead or missing tiles are
// holes; dead pieces are left out.
func FormatBoard(b *model.Board) string {
	grid := make([][]byte, b.Size)
	for y := range grid {
		grid[y] = make([]byte, b.Size)
		for x := range grid[y] {
			grid[y][x] = cellChar(b, model.NewHexCoord(x, y, b.Size))
		}
	}
	return formatGrid(grid)
}

func formatGrid(grid [][]byte) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "size %d\n", len(grid))
	for y, row := range grid {
		sb.WriteString(strings.Repeat(" ", y))
		for x, char := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(char)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellChar(b *model.Board, c model.HexCoord) byte {
	tile := b.TileAt(c)
	if tile == nil || tile.Props.Dead {
		return '_'
	}
	piece := b.Contents(c)
	if piece == nil {
		return '.'
	}
	var char byte
	switch piece.Type {
	case model.Wall:
		return 'W'
	case model.Dasher:
		char = 'd'
	case model.Jumper:
		char = 'j'
	default:
		return '.'
	}
	if piece.OwnedBy(model.PlayerA) {
		char -= 'a' - 'A'
	}
	return char
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
