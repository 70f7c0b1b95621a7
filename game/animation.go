package game

import "match-game/game/types"

// AnimationKind tags the variants of Animation.
type AnimationKind int

const (
	KindSwap AnimationKind = iota
	KindRemove
	KindFall
	KindSpawn
)

func (k AnimationKind) String() string {
	switch k {
	case KindSwap:
		return "swap"
	case KindRemove:
		return "remove"
	case KindFall:
		return "fall"
	case KindSpawn:
		return "spawn"
	}
	return "unknown"
}

// Animation is an in-flight visual transition. Cell is where the tile rests
// on the board; Offset is the pixel displacement to draw it at this frame.
// The set of implementations is closed to this package.
type Animation interface {
	Kind() AnimationKind
	Cell() types.Point
	Offset() types.Offset
	Done() bool
	step(px int) Animation
}

// SwapAnimation slides the tile now at A in from B's side.
type SwapAnimation struct {
	A, B      types.Point
	Remaining types.Offset
}

func newSwapAnimation(a, b types.Point, cellSize int) SwapAnimation {
	return SwapAnimation{
		A: a,
		B: b,
		Remaining: types.Offset{
			X: (b.X - a.X) * cellSize / 2,
			Y: (b.Y - a.Y) * cellSize / 2,
		},
	}
}

func (a SwapAnimation) Kind() AnimationKind  { return KindSwap }
func (a SwapAnimation) Cell() types.Point    { return a.A }
func (a SwapAnimation) Offset() types.Offset { return a.Remaining }
func (a SwapAnimation) Done() bool           { return a.Remaining.IsZero() }

func (a SwapAnimation) step(px int) Animation {
	a.Remaining.X = decay(a.Remaining.X, px)
	a.Remaining.Y = decay(a.Remaining.Y, px)
	return a
}

// RemoveAnimation marks a cleared cell. It completes on the next tick.
type RemoveAnimation struct {
	At types.Point
}

func (a RemoveAnimation) Kind() AnimationKind  { return KindRemove }
func (a RemoveAnimation) Cell() types.Point    { return a.At }
func (a RemoveAnimation) Offset() types.Offset { return types.Offset{} }
func (a RemoveAnimation) Done() bool           { return true }
func (a RemoveAnimation) step(int) Animation   { return a }

// FallAnimation drops a tile from From to To. DY starts at minus the fall
// distance in pixels so the tile is first drawn where it came from.
type FallAnimation struct {
	From, To types.Point
	DY       int
}

func newFallAnimation(from, to types.Point, cellSize int) FallAnimation {
	return FallAnimation{From: from, To: to, DY: -(to.Y - from.Y) * cellSize}
}

func (a FallAnimation) Kind() AnimationKind  { return KindFall }
func (a FallAnimation) Cell() types.Point    { return a.To }
func (a FallAnimation) Offset() types.Offset { return types.Offset{Y: a.DY} }
func (a FallAnimation) Done() bool           { return a.DY == 0 }

func (a FallAnimation) step(px int) Animation {
	a.DY = decay(a.DY, px)
	return a
}

// SpawnAnimation drops a fresh tile into At from one cell above.
type SpawnAnimation struct {
	At types.Point
	DY int
}

func newSpawnAnimation(at types.Point, cellSize int) SpawnAnimation {
	return SpawnAnimation{At: at, DY: -cellSize}
}

func (a SpawnAnimation) Kind() AnimationKind  { return KindSpawn }
func (a SpawnAnimation) Cell() types.Point    { return a.At }
func (a SpawnAnimation) Offset() types.Offset { return types.Offset{Y: a.DY} }
func (a SpawnAnimation) Done() bool           { return a.DY == 0 }

func (a SpawnAnimation) step(px int) Animation {
	a.DY = decay(a.DY, px)
	return a
}

// decay moves v toward zero by px without crossing it.
func decay(v, px int) int {
	switch {
	case v > 0:
		v -= px
		if v < 0 {
			v = 0
		}
	case v < 0:
		v += px
		if v > 0 {
			v = 0
		}
	}
	return v
}

// advance steps every animation and drops the finished ones, keeping order.
// The queue's backing array is reused.
func advance(queue []Animation, px int) []Animation {
	kept := queue[:0]
	for _, a := range queue {
		a = a.step(px)
		if !a.Done() {
			kept = append(kept, a)
		}
	}
	clear(queue[len(kept):])
	return kept
}
