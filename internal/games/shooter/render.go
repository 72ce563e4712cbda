package shooter

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Visual characters for the HUD
const (
	HeartFull  = '♥'
	HeartEmpty = '♡'
)

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}
	DrawFrame(dst, g.Frame())
}

// DrawFrame paints a frame snapshot: entities back to front, the HUD, and the
// game over overlay when the run has ended.
func DrawFrame(dst *core.Screen, f Frame) {
	for _, item := range f.Items {
		if s := spriteFor(item); s != nil {
			s.Draw(dst, item.Bounds.X, item.Bounds.Y)
		}
	}

	drawHUD(dst, f.HUD)

	if f.GameOver {
		drawGameOver(dst, f.FinalScore)
	}
}

// drawHUD shows the level top-left, hearts top-right and a boxed score
// bottom-centre.
func drawHUD(dst *core.Screen, hud HUD) {
	dst.DrawTextColored(2, 0, fmt.Sprintf("Level: %d", hud.Level), core.ColorBrightWhite)

	hearts := make([]rune, 0, hud.MaxLives*2)
	colors := make([]core.Color, 0, hud.MaxLives*2)
	for i := range hud.MaxLives {
		if i > 0 {
			hearts = append(hearts, ' ')
			colors = append(colors, core.ColorDefault)
		}
		if i < hud.Lives {
			hearts = append(hearts, HeartFull)
			colors = append(colors, core.ColorBrightRed)
		} else {
			hearts = append(hearts, HeartEmpty)
			colors = append(colors, core.ColorGray)
		}
	}
	x := dst.Width() - len(hearts) - 2
	for i, r := range hearts {
		dst.SetColored(x+i, 0, r, colors[i])
	}

	score := fmt.Sprintf("Score: %d", hud.Score)
	w := len(score) + 4
	box := core.NewRect((dst.Width()-w)/2, dst.Height()-3, w, 3)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawTextColored(box.X+2, box.Y+1, score, core.ColorBrightWhite)
}

// drawGameOver draws the end-of-run panel in the middle of the screen.
func drawGameOver(dst *core.Screen, finalScore int) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{"GAME OVER", core.ColorBrightRed},
		{"", core.ColorDefault},
		{fmt.Sprintf("Final Score: %d", finalScore), core.ColorBrightWhite},
		{"", core.ColorDefault},
		{"Press R to play again or Q to quit", core.ColorGray},
	}

	w := 0
	for _, l := range lines {
		w = max(w, len(l.text))
	}
	w += 6
	h := len(lines) + 2
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	blank := strings.Repeat(" ", w-2)
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		dst.DrawText(box.X+1, y, blank)
	}
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextColored(box.X+(w-len(l.text))/2, box.Y+1+i, l.text, l.color)
	}
}
