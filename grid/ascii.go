package grid

import (
	"fmt"
	"strings"
)

// ASCII glyphs used by Parse and String.
const (
	GlyphEmpty    = '.'
	GlyphObstacle = '#'
	GlyphStart    = 'S'
	GlyphEnd      = 'E'
	GlyphRoute    = '*'
	GlyphRound    = 'o'
)

// Glyph returns the ASCII character for s.
func (s CellState) Glyph() byte {
	switch s {
	case Obstacle:
		return GlyphObstacle
	case Start:
		return GlyphStart
	case End:
		return GlyphEnd
	case Route:
		return GlyphRoute
	case Round:
		return GlyphRound
	default:
		return GlyphEmpty
	}
}

// Parse reads a square ASCII layout, one row per line. Blank lines and
// surrounding whitespace are ignored. Exactly one 'S' and one 'E' are required.
//
//	S.#
//	..#
//	..E
func Parse(layout string) (g *Grid, start, end Coord, err error) {
	var rows [][]CellState
	var haveStart, haveEnd bool
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		y := len(rows)
		row := make([]CellState, len(line))
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case GlyphEmpty:
				row[x] = Empty
			case GlyphObstacle:
				row[x] = Obstacle
			case GlyphRoute:
				row[x] = Route
			case GlyphRound:
				row[x] = Round
			case GlyphStart:
				if haveStart {
					return nil, Coord{}, Coord{}, fmt.Errorf("%w: second start at (%d,%d)", ErrBadLayout, x, y)
				}
				haveStart, start = true, Coord{X: x, Y: y}
				row[x] = Start
			case GlyphEnd:
				if haveEnd {
					return nil, Coord{}, Coord{}, fmt.Errorf("%w: second end at (%d,%d)", ErrBadLayout, x, y)
				}
				haveEnd, end = true, Coord{X: x, Y: y}
				row[x] = End
			default:
				return nil, Coord{}, Coord{}, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrBadLayout, line[x], x, y)
			}
		}
		rows = append(rows, row)
	}
	if g, err = FromRows(rows); err != nil {
		return nil, Coord{}, Coord{}, err
	}
	if !haveStart || !haveEnd {
		return nil, Coord{}, Coord{}, fmt.Errorf("%w: layout needs one 'S' and one 'E'", ErrBadLayout)
	}

	return g, start, end, nil
}

// String renders the grid with one line per row, using the glyphs above.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			b.WriteByte(g.cells[y*g.size+x].Glyph())
		}
		b.WriteByte('\n')
	}

	return b.String()
}
