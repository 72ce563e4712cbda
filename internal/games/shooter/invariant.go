package shooter

import "fmt"

// checkInvariants verifies run-state invariants after a step.
// Release builds log the violation and clamp; debug builds panic.
func (g *Game) checkInvariants(prevScore int) {
	if g.player.lives < 0 {
		g.violation("negative lives", "lives", g.player.lives)
		g.player.lives = 0
	}
	if g.player.lives > g.player.maxLives {
		g.violation("lives above maximum", "lives", g.player.lives, "max", g.player.maxLives)
		g.player.lives = g.player.maxLives
	}
	if g.score < prevScore {
		g.violation("score decreased", "score", g.score, "previous", prevScore)
		g.score = prevScore
	}
	if g.player.lives == 0 && g.phase != PhaseGameOver {
		g.violation("no lives left while playing")
		g.player.alive = false
		g.phase = PhaseGameOver
	}
}

func (g *Game) violation(msg string, keyvals ...any) {
	if strictInvariants {
		panic(fmt.Sprintf("shooter: invariant violated: %s %v", msg, keyvals))
	}
	g.logger.Error("invariant violated: "+msg, keyvals...)
}
