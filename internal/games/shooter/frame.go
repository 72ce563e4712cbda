package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// DrawItem is one entity to draw this step.
// FrameIndex is the rotation frame for hazards, the animation frame for
// effects and the star variant for decorations.
type DrawItem struct {
	Kind       Kind
	Pos        core.Vec2
	Rotation   float64
	FrameIndex int
	Bounds     core.Rect
}

// HUD holds the values shown on top of the play area.
type HUD struct {
	Score    int
	Level    int
	Lives    int
	MaxLives int
}

// Frame is the snapshot handed to the presentation layer after each step.
type Frame struct {
	Items      []DrawItem // back to front
	HUD        HUD
	GameOver   bool
	FinalScore int
}

// Frame builds the draw list: decorations, hazards, projectiles, effects, player.
func (g *Game) Frame() Frame {
	f := Frame{
		Items: make([]DrawItem, 0, g.entityCount()),
		HUD: HUD{
			Score:    g.score,
			Level:    g.level(),
			Lives:    g.player.Lives(),
			MaxLives: g.player.maxLives,
		},
		GameOver: g.phase == PhaseGameOver,
	}
	if f.GameOver {
		f.FinalScore = g.score
	}

	g.forEachEntity(func(e Entity) {
		f.Items = append(f.Items, e.DrawItem())
	})
	return f
}

// spriteFor returns the visual for a draw item.
func spriteFor(item DrawItem) *Sprite {
	switch item.Kind {
	case KindPlayer:
		return playerSprite
	case KindProjectile:
		return projectileSprite
	case KindHazard:
		return meteorFrames[item.FrameIndex%len(meteorFrames)]
	case KindEffect:
		return explosionFrames[item.FrameIndex%len(explosionFrames)]
	case KindDecoration:
		return starSprites[item.FrameIndex%len(starSprites)]
	default:
		return nil
	}
}
