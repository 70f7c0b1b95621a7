package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-game/game/types"
)

// patternBoard returns a board with no runs: tile(x, y) = (x + 2y) mod 6.
func patternBoard() Board {
	var b Board
	for y := 0; y < types.GridSize; y++ {
		for x := 0; x < types.GridSize; x++ {
			b[y][x] = types.Tile((x + 2*y) % types.NumColors)
		}
	}
	return b
}

func pts(ps ...types.Point) []types.Point { return ps }

func TestPatternBoardHasNoMatches(t *testing.T) {
	b := patternBoard()
	assert.Empty(t, b.FindMatches())
}

func TestFindMatchesHorizontalRun(t *testing.T) {
	b := patternBoard()
	for x := 0; x < 4; x++ {
		b[0][x] = 0
	}

	matches := b.FindMatches()
	assert.Equal(t, pts(
		types.Point{X: 0, Y: 0},
		types.Point{X: 1, Y: 0},
		types.Point{X: 2, Y: 0},
		types.Point{X: 3, Y: 0},
	), matches.Sorted())
}

func TestFindMatchesCrossingRunsAreDeduplicated(t *testing.T) {
	b := patternBoard()
	// Row 3 gets 2,2,2 at x=2..4; column 2 gets 2 at y=3..6.
	b[3][3] = 2
	b[3][4] = 2
	b[4][2] = 2
	b[5][2] = 2

	matches := b.FindMatches()
	require.Len(t, matches, 6)
	for _, p := range pts(
		types.Point{X: 2, Y: 3}, types.Point{X: 3, Y: 3}, types.Point{X: 4, Y: 3},
		types.Point{X: 2, Y: 4}, types.Point{X: 2, Y: 5}, types.Point{X: 2, Y: 6},
	) {
		assert.True(t, matches.Contains(p), "expected %v in matches", p)
	}
}

func TestFindMatchesRunAtLineEnd(t *testing.T) {
	b := patternBoard()
	b[7][5] = 3
	b[7][6] = 3
	b[7][7] = 3

	assert.Equal(t, pts(
		types.Point{X: 5, Y: 7},
		types.Point{X: 6, Y: 7},
		types.Point{X: 7, Y: 7},
	), b.FindMatches().Sorted())
}

func TestFindMatchesIgnoresEmptyRuns(t *testing.T) {
	b := patternBoard()
	for x := 0; x < 3; x++ {
		b[0][x] = types.Empty
	}
	for y := 0; y < 5; y++ {
		b[y][7] = types.Empty
	}

	assert.Empty(t, b.FindMatches())
}

func TestFindMatchesPairIsNotARun(t *testing.T) {
	b := patternBoard()
	b[0][1] = 0

	assert.Empty(t, b.FindMatches())
}

func TestFindMoveProducesAMatch(t *testing.T) {
	b := patternBoard()
	b[0][0] = 4
	b[0][1] = 4

	p, q, ok := b.FindMove()
	require.True(t, ok)
	require.True(t, p.Adjacent(q))

	trial := b
	trial.swap(p, q)
	assert.NotEmpty(t, trial.FindMatches())
}

func TestFindMoveNoneOnPatternBoard(t *testing.T) {
	// Swapping neighbours of (x + 2y) mod 6 never lines up three equal tiles.
	b := patternBoard()
	_, _, ok := b.FindMove()
	assert.False(t, ok)
}
