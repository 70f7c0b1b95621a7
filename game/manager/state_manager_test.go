package manager

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-game/game"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestStateManagerRecordsLossOnce(t *testing.T) {
	fc := newFakeClock()
	var buf bytes.Buffer
	sm := NewStateManager(game.NewGame(game.Options{Seed: 1, Now: fc.Now}), zerolog.New(&buf))

	sm.Tick()
	assert.Equal(t, 0, sm.GamesPlayed())

	fc.Advance(time.Minute)
	sm.Tick()
	sm.Tick()

	require.Equal(t, game.StatusLost, sm.Game().Status())
	require.Equal(t, 1, sm.GamesPlayed())
	r := sm.History()[0]
	assert.Equal(t, game.StatusLost, r.Status)
	assert.Equal(t, time.Minute, r.EndTime.Sub(r.StartTime))
	assert.Contains(t, buf.String(), "round recorded")
	assert.Equal(t, 0, sm.Wins())
}

func TestStateManagerRecordsWinFromHintedMove(t *testing.T) {
	fc := newFakeClock()
	g := game.NewGame(game.Options{Seed: 3, TargetScore: 10, Now: fc.Now})
	sm := NewStateManager(g, zerolog.Nop())

	a, b, ok := g.Hint()
	require.True(t, ok)
	g.Select(a)
	g.Select(b)

	for i := 0; i < 10 && !g.Status().Terminal(); i++ {
		sm.Tick()
	}

	require.Equal(t, game.StatusWon, g.Status())
	assert.Equal(t, 1, sm.GamesPlayed())
	assert.Equal(t, 1, sm.Wins())
	assert.Equal(t, g.Score(), sm.HighScore())
	assert.InDelta(t, float64(g.Score()), sm.AverageScore(), 0.001)
}

func TestStateManagerRestartStartsNewRound(t *testing.T) {
	fc := newFakeClock()
	sm := NewStateManager(game.NewGame(game.Options{Seed: 5, Now: fc.Now}), zerolog.Nop())
	first := sm.Game().Round().ID

	fc.Advance(time.Minute)
	sm.Tick()
	sm.Restart()

	assert.Equal(t, game.StatusPlaying, sm.Game().Status())
	assert.NotEqual(t, first, sm.Game().Round().ID)
	assert.Equal(t, game.DefaultTimeLimit, sm.Game().Remaining())

	fc.Advance(time.Minute)
	sm.Tick()
	assert.Equal(t, 2, sm.GamesPlayed())

	// Abandoned rounds are not recorded.
	sm.Restart()
	sm.Restart()
	assert.Equal(t, 2, sm.GamesPlayed())
}

func TestStateManagerHistoryIsBounded(t *testing.T) {
	fc := newFakeClock()
	sm := NewStateManager(game.NewGame(game.Options{Seed: 9, Now: fc.Now}), zerolog.Nop())

	for i := 0; i < maxHistory+5; i++ {
		fc.Advance(time.Minute)
		sm.Tick()
		sm.Restart()
	}

	assert.Equal(t, maxHistory, sm.GamesPlayed())
	assert.Zero(t, sm.AverageScore())
}
