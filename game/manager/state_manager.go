package manager

import (
	"github.com/rs/zerolog"

	"match-game/game"
)

const maxHistory = 50 // Rounds kept for the session summary

// StateManager drives one engine across rounds and keeps the session's high
// score and round history in memory.
type StateManager struct {
	game      *game.Game
	highScore int
	history   []game.Round
	recorded  bool
	log       zerolog.Logger
}

func NewStateManager(g *game.Game, logger zerolog.Logger) *StateManager {
	return &StateManager{
		game:    g,
		history: make([]game.Round, 0),
		log:     logger.With().Str("component", "state").Logger(),
	}
}

func (sm *StateManager) Game() *game.Game {
	return sm.game
}

// Tick advances the engine one frame and records the round the first time it
// finishes.
func (sm *StateManager) Tick() {
	sm.game.UpdateAnimations()
	sm.recordFinished()
}

// Restart deals a new board and starts a new round. An unfinished round is
// dropped without being recorded.
func (sm *StateManager) Restart() {
	if !sm.recorded {
		r := sm.game.Round()
		sm.log.Debug().Str("round", r.ID).Int("score", r.Score).Msg("round abandoned")
	}
	sm.game.InitializeGrid()
	sm.game.Reset()
	sm.recorded = false
}

func (sm *StateManager) recordFinished() {
	r := sm.game.Round()
	if sm.recorded || !r.Status.Terminal() {
		return
	}
	sm.recorded = true

	if len(sm.history) >= maxHistory {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, r)

	if r.Score > sm.highScore {
		sm.highScore = r.Score
		sm.log.Info().Int("high_score", r.Score).Msg("new session high score")
	}
	sm.log.Info().
		Str("round", r.ID).
		Str("status", r.Status.String()).
		Int("score", r.Score).
		Dur("duration", r.EndTime.Sub(r.StartTime)).
		Msg("round recorded")
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

// History returns the recorded rounds, oldest first.
func (sm *StateManager) History() []game.Round {
	out := make([]game.Round, len(sm.history))
	copy(out, sm.history)
	return out
}

func (sm *StateManager) GamesPlayed() int {
	return len(sm.history)
}

// AverageScore is the mean score of the recorded rounds.
func (sm *StateManager) AverageScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	sum := 0
	for _, r := range sm.history {
		sum += r.Score
	}
	return float64(sum) / float64(len(sm.history))
}

// Wins counts recorded rounds that reached the target score.
func (sm *StateManager) Wins() int {
	wins := 0
	for _, r := range sm.history {
		if r.Status == game.StatusWon {
			wins++
		}
	}
	return wins
}
