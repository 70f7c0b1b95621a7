package ui

import (
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"match-game/game"
	"match-game/game/manager"
	"match-game/game/types"
)

const (
	borderPadding = 10 // Frame around the board
	tileGap       = 4  // Space between neighbouring tiles
	panelX        = 560
	fontSize      = 24
	titleSize     = 48
	lineHeight    = 32
)

var (
	background  = rl.Color{R: 30, G: 30, B: 50, A: 255}
	boardFill   = rl.Color{R: 50, G: 50, B: 70, A: 255}
	boardBorder = rl.Color{R: 100, G: 100, B: 150, A: 255}
	tileBorder  = rl.Color{R: 200, G: 200, B: 200, A: 255}
	gold        = rl.Color{R: 255, G: 215, B: 0, A: 255}
	dimText     = rl.Color{R: 200, G: 200, B: 200, A: 255}
)

// Palette holds one color per tile value.
var Palette = [types.NumColors]rl.Color{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 255, G: 0, B: 255, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
}

var instructions = []string{
	"How to play:",
	"1. Click a tile to select it",
	"2. Click a neighbour to swap",
	"3. Line up 3 or more to clear",
	"4. Tiles above fall into gaps",
	"R restart  P pause  H hint",
	"I help  Esc quit",
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	font         rl.Font
	customFont   bool
	showHint     bool
	log          zerolog.Logger
}

// NewRenderer must be called after the window is open. An empty or
// unloadable fontPath falls back to raylib's built-in font.
func NewRenderer(fontPath string, logger zerolog.Logger) *Renderer {
	r := &Renderer{
		font: rl.GetFontDefault(),
		log:  logger.With().Str("component", "renderer").Logger(),
	}
	if fontPath != "" {
		r.loadFont(fontPath)
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) loadFont(path string) {
	if _, err := os.Stat(path); err != nil {
		r.log.Warn().Err(err).Str("font", path).Msg("font not available, using default")
		return
	}
	font := rl.LoadFont(path)
	if font.Texture.ID == 0 || font.BaseSize == 0 {
		r.log.Warn().Str("font", path).Msg("font failed to load, using default")
		return
	}
	r.font = font
	r.customFont = true
}

// Close releases the custom font, if any.
func (r *Renderer) Close() {
	if r.customFont {
		rl.UnloadFont(r.font)
	}
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// ToggleHint shows or hides the suggested swap.
func (r *Renderer) ToggleHint() {
	r.showHint = !r.showHint
}

func (r *Renderer) Draw(sm *manager.StateManager) {
	g := sm.Game()

	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(background)

	r.drawCentered("Match Three", 10, titleSize, gold)
	r.drawBoard(g)
	r.drawPanel(sm)

	switch {
	case g.Status().Terminal():
		r.drawResult(sm)
	case g.ShowingInstructions():
		r.drawOverlay()
		r.drawLines(instructions, r.screenWidth/2-180, r.screenHeight/2-120, rl.White)
	case g.Status() == game.StatusPaused:
		r.drawOverlay()
		r.drawCentered("Paused", r.screenHeight/2-40, titleSize, rl.White)
		r.drawCentered("Press P to resume", r.screenHeight/2+20, fontSize, dimText)
	}

	rl.DrawFPS(r.screenWidth-100, 20)
	rl.EndDrawing()
}

func (r *Renderer) drawBoard(g *game.Game) {
	layout := g.Layout()
	extent := int32(layout.CellSize * types.GridSize)

	frame := rl.Rectangle{
		X:      float32(layout.OriginX - borderPadding),
		Y:      float32(layout.OriginY - borderPadding),
		Width:  float32(extent + 2*borderPadding),
		Height: float32(extent + 2*borderPadding),
	}
	rl.DrawRectangleRec(frame, boardFill)
	rl.DrawRectangleLinesEx(frame, 3, boardBorder)

	offsets := OffsetsByCell(g.Animations())
	grid := g.Grid()
	selected, hasSelection := g.Selected()
	size := float32(layout.CellSize - tileGap)

	for y := 0; y < types.GridSize; y++ {
		for x := 0; x < types.GridSize; x++ {
			p := types.Point{X: x, Y: y}
			px, py := layout.CellOrigin(p)
			off := offsets[p]
			rec := rl.Rectangle{X: float32(px + off.X), Y: float32(py + off.Y), Width: size, Height: size}

			if t := grid.At(p); t.Valid() {
				rl.DrawRectangleRounded(rec, 0.3, 8, Palette[t])
				rl.DrawRectangleLinesEx(rec, 2, tileBorder)
			}
			if hasSelection && selected == p {
				outline := rl.Rectangle{X: rec.X - 4, Y: rec.Y - 4, Width: size + 8, Height: size + 8}
				rl.DrawRectangleLinesEx(outline, 3, rl.White)
			}
		}
	}

	if !r.showHint || g.Status() != game.StatusPlaying {
		return
	}
	if a, b, ok := g.Hint(); ok {
		for _, p := range []types.Point{a, b} {
			px, py := layout.CellOrigin(p)
			rl.DrawRectangleLinesEx(rl.Rectangle{X: float32(px), Y: float32(py), Width: size, Height: size}, 3, gold)
		}
	}
}

func (r *Renderer) drawPanel(sm *manager.StateManager) {
	g := sm.Game()
	y := int32(90)

	stats := []string{
		fmt.Sprintf("Score: %d", g.Score()),
		fmt.Sprintf("Time: %s", FormatClock(g.Remaining())),
		fmt.Sprintf("Target: %d", g.TargetScore()),
		fmt.Sprintf("Best: %d", sm.HighScore()),
		fmt.Sprintf("Games: %d  Wins: %d", sm.GamesPlayed(), sm.Wins()),
	}
	y = r.drawLines(stats, panelX, y, rl.White)

	if !g.ShowingInstructions() {
		r.drawLines(instructions[5:], panelX, y+lineHeight, dimText)
	}
}

func (r *Renderer) drawResult(sm *manager.StateManager) {
	g := sm.Game()
	r.drawOverlay()

	message, color := "Game Over!", rl.Red
	if g.Status() == game.StatusWon {
		message, color = "You Win!", gold
	}
	r.drawCentered(message, r.screenHeight/2-100, titleSize*3/2, color)
	r.drawCentered(fmt.Sprintf("Final score: %d", g.Score()), r.screenHeight/2, fontSize, rl.White)
	r.drawCentered(fmt.Sprintf("Session best: %d", sm.HighScore()), r.screenHeight/2+lineHeight, fontSize, rl.White)
	r.drawCentered("Press R to play again", r.screenHeight/2+lineHeight*2+20, fontSize*3/4, dimText)
}

func (r *Renderer) drawOverlay() {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Color{A: 180})
}

// drawLines draws one string per line and returns the y below the last one.
func (r *Renderer) drawLines(lines []string, x, y int32, color rl.Color) int32 {
	for _, line := range lines {
		r.drawText(line, x, y, fontSize, color)
		y += lineHeight
	}
	return y
}

func (r *Renderer) drawCentered(text string, y, size int32, color rl.Color) {
	width := rl.MeasureTextEx(r.font, text, float32(size), 1).X
	r.drawText(text, (r.screenWidth-int32(width))/2, y, size, color)
}

func (r *Renderer) drawText(text string, x, y, size int32, color rl.Color) {
	rl.DrawTextEx(r.font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(size), 1, color)
}

// OffsetsByCell returns the draw displacement of each moving cell. Finished
// animations (every Remove) are skipped; when several moving animations
// target the same cell the earliest queued one wins.
func OffsetsByCell(anims []game.Animation) map[types.Point]types.Offset {
	offsets := make(map[types.Point]types.Offset, len(anims))
	for _, a := range anims {
		if a.Done() {
			continue
		}
		if _, ok := offsets[a.Cell()]; ok {
			continue
		}
		offsets[a.Cell()] = a.Offset()
	}
	return offsets
}

// FormatClock renders a countdown as MM:SS, truncating partial seconds.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
