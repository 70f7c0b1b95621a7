package ui

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"match-game/game"
	"match-game/game/types"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{60 * time.Second, "01:00"},
		{59*time.Second + time.Millisecond*999, "00:59"},
		{9 * time.Second, "00:09"},
		{500 * time.Millisecond, "00:00"},
		{0, "00:00"},
		{-time.Second, "00:00"},
		{10*time.Minute + 30*time.Second, "10:30"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatClock(tc.in), tc.in.String())
	}
}

func TestOffsetsByCellKeepsFirstMoving(t *testing.T) {
	a := types.Point{X: 2, Y: 3}
	b := types.Point{X: 3, Y: 3}
	anims := []game.Animation{
		game.SwapAnimation{A: a, B: b, Remaining: types.Offset{X: 20}},
		game.SwapAnimation{A: b, B: a, Remaining: types.Offset{X: -20}},
		game.SwapAnimation{A: a, B: b, Remaining: types.Offset{X: 30}},
		game.FallAnimation{From: types.Point{X: 0, Y: 1}, To: types.Point{X: 0, Y: 4}, DY: -150},
		game.SpawnAnimation{At: types.Point{X: 0, Y: 0}, DY: -60},
		game.RemoveAnimation{At: types.Point{X: 7, Y: 7}},
	}

	want := map[types.Point]types.Offset{
		a:            {X: 20},
		b:            {X: -20},
		{X: 0, Y: 4}: {Y: -150},
		{X: 0, Y: 0}: {Y: -60},
	}
	if diff := cmp.Diff(want, OffsetsByCell(anims)); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

// A cascade queues Remove before the Fall and Spawn that refill the same
// cells; the refilled tiles must be drawn at their falling offsets.
func TestOffsetsByCellSkipsRemoveUnderRefill(t *testing.T) {
	col := func(y int) types.Point { return types.Point{X: 1, Y: y} }
	anims := []game.Animation{
		game.RemoveAnimation{At: col(5)},
		game.RemoveAnimation{At: col(6)},
		game.RemoveAnimation{At: col(7)},
		game.FallAnimation{From: col(2), To: col(5), DY: -180},
		game.FallAnimation{From: col(3), To: col(6), DY: -180},
		game.FallAnimation{From: col(4), To: col(7), DY: -180},
		game.SpawnAnimation{At: col(0), DY: -60},
	}

	want := map[types.Point]types.Offset{
		col(5): {Y: -180},
		col(6): {Y: -180},
		col(7): {Y: -180},
		col(0): {Y: -60},
	}
	if diff := cmp.Diff(want, OffsetsByCell(anims)); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestPaletteCoversEveryColor(t *testing.T) {
	seen := make(map[[4]uint8]bool)
	for i := types.Tile(0); i < types.NumColors; i++ {
		c := Palette[i]
		assert.Equal(t, uint8(255), c.A)
		key := [4]uint8{c.R, c.G, c.B, c.A}
		assert.False(t, seen[key], "duplicate color for tile %d", i)
		seen[key] = true
	}
}
