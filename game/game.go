package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"match-game/game/types"
)

// Engine defaults
const (
	DefaultTimeLimit     = 60 * time.Second
	DefaultTargetScore   = 1000
	DefaultAnimationStep = 10 // Pixels per tick

	maxDealAttempts = 100
)

// Status is the coarse state of a round.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	}
	return "unknown"
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether the round is over.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Options configures a Game. Zero fields take the package defaults.
type Options struct {
	TimeLimit     time.Duration
	TargetScore   int
	AnimationStep int
	Seed          uint64 // 0 seeds from the wall clock
	Layout        types.Layout
	Now           func() time.Time
	Logger        *zerolog.Logger
}

// Round summarizes one game from Reset to its end.
type Round struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Score     int       `json:"score"`
	Status    Status    `json:"status"`
}

// Game is the match engine: board, selection, score, animation queue, clock
// and status. It is driven by one UpdateAnimations call per frame and is not
// safe for concurrent use.
type Game struct {
	grid       Board
	selected   *types.Point
	score      int
	animations []Animation
	status     Status

	pausedByUser     bool
	showInstructions bool

	timeLimit   time.Duration
	targetScore int
	step        int
	layout      types.Layout

	clock *Clock
	rng   *rand.Rand
	round Round
	log   zerolog.Logger
}

func NewGame(opts Options) *Game {
	if opts.TimeLimit <= 0 {
		opts.TimeLimit = DefaultTimeLimit
	}
	if opts.TargetScore <= 0 {
		opts.TargetScore = DefaultTargetScore
	}
	if opts.AnimationStep <= 0 {
		opts.AnimationStep = DefaultAnimationStep
	}
	if opts.Layout.CellSize <= 0 {
		opts.Layout = types.DefaultLayout
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	g := &Game{
		timeLimit:   opts.TimeLimit,
		targetScore: opts.TargetScore,
		step:        opts.AnimationStep,
		layout:      opts.Layout,
		clock:       NewClock(opts.TimeLimit, opts.Now),
		rng:         rand.New(rand.NewSource(opts.Seed)),
		log:         logger.With().Str("component", "engine").Logger(),
	}

	g.InitializeGrid()
	g.Reset()
	return g
}

// Reset starts a new round on the current board: score, clock, selection,
// animations and pause state all return to their initial values.
func (g *Game) Reset() {
	g.score = 0
	g.selected = nil
	g.animations = nil
	g.pausedByUser = false
	g.showInstructions = false
	g.status = StatusPlaying
	g.clock.Start()
	g.round = Round{
		ID:        uuid.NewString(),
		StartTime: g.clock.Now(),
		Status:    StatusPlaying,
	}
	g.log.Info().Str("round", g.round.ID).Dur("time_limit", g.timeLimit).Int("target", g.targetScore).Msg("round started")
}

// InitializeGrid deals a new board with no runs on it and at least one swap
// that produces a run.
func (g *Game) InitializeGrid() {
	g.selected = nil
	g.animations = nil

	for attempt := 1; ; attempt++ {
		g.deal()
		if _, _, ok := g.grid.FindMove(); ok {
			g.log.Debug().Int("attempts", attempt).Msg("board dealt")
			return
		}
		if attempt == maxDealAttempts {
			g.log.Warn().Int("attempts", attempt).Msg("no playable board found, keeping last deal")
			return
		}
	}
}

// deal fills the board at random and settles it.
func (g *Game) deal() {
	for y := range g.grid {
		for x := range g.grid[y] {
			g.grid[y][x] = g.randomTile()
		}
	}
	g.settle()
}

// settle removes and refills runs without scoring or animating until none
// are left.
func (g *Game) settle() {
	for {
		matches := g.grid.FindMatches()
		if len(matches) == 0 {
			return
		}
		for p := range matches {
			g.grid.Set(p, types.Empty)
		}
		g.collapse(false)
	}
}

func (g *Game) randomTile() types.Tile {
	return types.Tile(g.rng.Intn(types.NumColors))
}

// FindMatches returns every cell that is part of a run of three or more.
func (g *Game) FindMatches() Matches {
	return g.grid.FindMatches()
}

// Hint returns a swap that would produce a run.
func (g *Game) Hint() (types.Point, types.Point, bool) {
	return g.grid.FindMove()
}

// HandleClick routes a click in screen pixels to the cell under it.
func (g *Game) HandleClick(x, y int) {
	g.Select(g.layout.CellAt(x, y))
}

// Select advances the two-click swap gesture. The first click selects a tile.
// The second click always clears the selection; if it lands next to the
// first tile the two are swapped, and swapped back when no run results.
func (g *Game) Select(p types.Point) {
	if g.status != StatusPlaying || !p.InBounds() {
		return
	}
	if g.selected == nil {
		g.selected = &p
		return
	}

	first := *g.selected
	g.selected = nil
	if !first.Adjacent(p) {
		return
	}

	g.Swap(first, p)
	if len(g.grid.FindMatches()) == 0 {
		g.Swap(p, first)
		g.log.Debug().Interface("a", first).Interface("b", p).Msg("swap reverted")
	}
}

// Swap exchanges two tiles and queues the slide animation.
func (g *Game) Swap(a, b types.Point) {
	if !a.InBounds() || !b.InBounds() {
		return
	}
	g.grid.swap(a, b)
	g.animations = append(g.animations, newSwapAnimation(a, b, g.layout.CellSize))
}

// RemoveMatches clears every matched tile and scores it. It reports whether
// anything was removed.
func (g *Game) RemoveMatches() bool {
	matches := g.grid.FindMatches()
	if len(matches) == 0 {
		return false
	}

	for _, p := range matches.Sorted() {
		g.animations = append(g.animations, RemoveAnimation{At: p})
		g.grid.Set(p, types.Empty)
	}
	g.score += types.PointsPerTile * len(matches)
	g.log.Debug().Int("removed", len(matches)).Int("score", g.score).Msg("matches removed")

	if g.score >= g.targetScore && !g.status.Terminal() {
		g.finish(StatusWon)
	}
	return true
}

// FillEmptyCells lets tiles fall into the gaps below them and refills the top
// of each column with fresh tiles.
func (g *Game) FillEmptyCells() {
	g.collapse(true)
}

func (g *Game) collapse(animate bool) {
	for x := 0; x < types.GridSize; x++ {
		emptyRow := types.GridSize - 1
		for y := types.GridSize - 1; y >= 0; y-- {
			if !g.grid[y][x].Valid() {
				continue
			}
			if emptyRow != y {
				from, to := types.Point{X: x, Y: y}, types.Point{X: x, Y: emptyRow}
				g.grid.Set(to, g.grid.At(from))
				g.grid.Set(from, types.Empty)
				if animate {
					g.animations = append(g.animations, newFallAnimation(from, to, g.layout.CellSize))
				}
			}
			emptyRow--
		}

		for y := 0; y <= emptyRow; y++ {
			p := types.Point{X: x, Y: y}
			g.grid.Set(p, g.randomTile())
			if animate {
				g.animations = append(g.animations, newSpawnAnimation(p, g.layout.CellSize))
			}
		}
	}
}

// UpdateAnimations advances the engine by one tick: animations decay, a
// settled board with runs on it resolves one cascade step, and an expired
// countdown ends the round.
func (g *Game) UpdateAnimations() {
	if g.status != StatusPlaying {
		return
	}

	g.animations = advance(g.animations, g.step)

	if len(g.animations) == 0 && len(g.grid.FindMatches()) > 0 {
		g.RemoveMatches()
		g.FillEmptyCells()
	}

	if g.status == StatusPlaying && g.clock.Expired() {
		g.finish(StatusLost)
	}
}

// TogglePause holds or releases the explicit pause. Finished rounds ignore it.
func (g *Game) TogglePause() {
	if g.status.Terminal() {
		return
	}
	g.pausedByUser = !g.pausedByUser
	g.syncPause()
}

// ToggleInstructions shows or hides the help overlay. Showing it pauses a
// running round.
func (g *Game) ToggleInstructions() {
	g.showInstructions = !g.showInstructions
	if !g.status.Terminal() {
		g.syncPause()
	}
}

func (g *Game) syncPause() {
	hold := g.pausedByUser || g.showInstructions
	switch {
	case hold && g.status == StatusPlaying:
		g.clock.Stop()
		g.setStatus(StatusPaused)
	case !hold && g.status == StatusPaused:
		g.clock.Resume()
		g.setStatus(StatusPlaying)
	}
}

func (g *Game) finish(s Status) {
	g.clock.Stop()
	g.selected = nil
	g.round.EndTime = g.clock.Now()
	g.setStatus(s)
	g.log.Info().Str("round", g.round.ID).Int("score", g.score).Str("status", s.String()).Msg("round finished")
}

func (g *Game) setStatus(s Status) {
	if g.status == s {
		return
	}
	g.log.Debug().Str("from", g.status.String()).Str("to", s.String()).Msg("status changed")
	g.status = s
}

// Grid returns a copy of the board.
func (g *Game) Grid() Board {
	return g.grid
}

// Selected returns the pending first click of a swap gesture.
func (g *Game) Selected() (types.Point, bool) {
	if g.selected == nil {
		return types.Point{}, false
	}
	return *g.selected, true
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) TargetScore() int {
	return g.targetScore
}

func (g *Game) Remaining() time.Duration {
	return g.clock.Remaining()
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) ShowingInstructions() bool {
	return g.showInstructions
}

func (g *Game) Layout() types.Layout {
	return g.layout
}

// Animations returns a copy of the in-flight animation queue.
func (g *Game) Animations() []Animation {
	out := make([]Animation, len(g.animations))
	copy(out, g.animations)
	return out
}

// Round reports the current round with its live score and status.
func (g *Game) Round() Round {
	r := g.round
	r.Score = g.score
	r.Status = g.status
	return r
}
