package game

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"match-game/game/types"
)

// Board holds the tiles, indexed [row][col].
type Board [types.GridSize][types.GridSize]types.Tile

// At returns the tile at p.
func (b *Board) At(p types.Point) types.Tile {
	return b[p.Y][p.X]
}

// Set places t at p.
func (b *Board) Set(p types.Point, t types.Tile) {
	b[p.Y][p.X] = t
}

func (b *Board) swap(p, q types.Point) {
	b[p.Y][p.X], b[q.Y][q.X] = b[q.Y][q.X], b[p.Y][p.X]
}

// Matches is the set of cells that belong to at least one run of three or more.
type Matches map[types.Point]struct{}

// Contains reports whether p is part of a run.
func (m Matches) Contains(p types.Point) bool {
	_, ok := m[p]
	return ok
}

// Sorted returns the cells in row-major order.
func (m Matches) Sorted() []types.Point {
	points := maps.Keys(m)
	slices.SortFunc(points, func(a, b types.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return points
}

// FindMatches scans every row and every column for maximal runs of at least
// three identical colors. A cell on both a horizontal and a vertical run is
// reported once.
func (b *Board) FindMatches() Matches {
	matches := make(Matches)

	for y := 0; y < types.GridSize; y++ {
		b.scanLine(matches, func(i int) types.Point { return types.Point{X: i, Y: y} })
	}
	for x := 0; x < types.GridSize; x++ {
		b.scanLine(matches, func(i int) types.Point { return types.Point{X: x, Y: i} })
	}

	return matches
}

// scanLine walks one row or column, where at maps a position along the line
// to its cell.
func (b *Board) scanLine(matches Matches, at func(int) types.Point) {
	start := 0
	for i := 1; i <= types.GridSize; i++ {
		if i < types.GridSize && b.At(at(i)) == b.At(at(start)) {
			continue
		}
		if i-start >= 3 && b.At(at(start)).Valid() {
			for j := start; j < i; j++ {
				matches[at(j)] = struct{}{}
			}
		}
		start = i
	}
}

// FindMove returns the first swap, in row-major order, that would produce a
// match.
func (b *Board) FindMove() (types.Point, types.Point, bool) {
	for y := 0; y < types.GridSize; y++ {
		for x := 0; x < types.GridSize; x++ {
			p := types.Point{X: x, Y: y}
			for _, q := range []types.Point{{X: x + 1, Y: y}, {X: x, Y: y + 1}} {
				if !q.InBounds() {
					continue
				}
				trial := *b
				trial.swap(p, q)
				if len(trial.FindMatches()) > 0 {
					return p, q, true
				}
			}
		}
	}
	return types.Point{}, types.Point{}, false
}
