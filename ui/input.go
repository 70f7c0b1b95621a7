package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"match-game/game/manager"
)

// HandleInput polls the mouse and keyboard once per frame and forwards the
// events to the session. Esc and window close are left to the caller.
func (r *Renderer) HandleInput(sm *manager.StateManager) {
	g := sm.Game()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		g.HandleClick(int(rl.GetMouseX()), int(rl.GetMouseY()))
	}

	switch {
	case rl.IsKeyPressed(rl.KeyR):
		sm.Restart()
		r.showHint = false
	case rl.IsKeyPressed(rl.KeyP), rl.IsKeyPressed(rl.KeySpace):
		g.TogglePause()
	case rl.IsKeyPressed(rl.KeyI):
		g.ToggleInstructions()
	case rl.IsKeyPressed(rl.KeyH):
		r.ToggleHint()
	}
}
