package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Sprite is an immutable cell image. Spaces are transparent.
type Sprite struct {
	rows  [][]rune
	color core.Color
	mask  *core.Mask
}

// NewSprite builds a sprite from text rows.
func NewSprite(color core.Color, rows ...string) *Sprite {
	runes := make([][]rune, len(rows))
	for i, r := range rows {
		runes[i] = []rune(r)
	}
	return newSpriteFromRunes(color, runes)
}

func newSpriteFromRunes(color core.Color, rows [][]rune) *Sprite {
	return &Sprite{
		rows:  rows,
		color: color,
		mask:  core.MaskFromRunes(rows),
	}
}

// Width returns the sprite width in cells.
func (s *Sprite) Width() int { return s.mask.Width() }

// Height returns the sprite height in cells.
func (s *Sprite) Height() int { return s.mask.Height() }

// Mask returns the opacity mask of the sprite.
func (s *Sprite) Mask() *core.Mask { return s.mask }

// Draw paints the sprite with its top-left corner at (x, y).
func (s *Sprite) Draw(dst *core.Screen, x, y int) {
	for dy, row := range s.rows {
		for dx, r := range row {
			if r == ' ' || r == 0 {
				continue
			}
			dst.SetColored(x+dx, y+dy, r, s.color)
		}
	}
}

var playerSprite = NewSprite(core.ColorBrightCyan,
	"  ▲  ",
	" ◢█◣ ",
	"◢█▀█◣",
)

var projectileSprite = NewSprite(core.ColorBrightYellow,
	"┃",
	"┃",
)

// Explosion animation, played once at the impact point.
var explosionFrames = []*Sprite{
	NewSprite(core.ColorBrightWhite,
		"     ",
		"  *  ",
		"     "),
	NewSprite(core.ColorBrightYellow,
		"  .  ",
		" (*) ",
		"  '  "),
	NewSprite(core.ColorBrightYellow,
		" \\|/ ",
		"-=*=-",
		" /|\\ "),
	NewSprite(core.ColorOrange,
		"\\ | /",
		"- @ -",
		"/ | \\"),
	NewSprite(core.ColorRed,
		".  ' ",
		" ' . ",
		"'  . "),
	NewSprite(core.ColorGray,
		" .  .",
		".    ",
		"  .  "),
	NewSprite(core.ColorDarkGray,
		"     ",
		"  .  ",
		"     "),
}

var starSprites = []*Sprite{
	NewSprite(core.ColorDarkGray, "."),
	NewSprite(core.ColorGray, "·"),
	NewSprite(core.ColorGray, "+"),
	NewSprite(core.ColorWhite, "*"),
}

// Meteor geometry. The outline is a lumpy disc in row units; each rotation
// step is rasterized once into its own sprite so the collision mask always
// matches what is drawn.
const (
	meteorW      = 8
	meteorH      = 4
	meteorRadius = 1.55
	meteorSteps  = 24
	meteorStep   = 360.0 / meteorSteps
)

var meteorFrames = buildMeteorFrames()

func buildMeteorFrames() []*Sprite {
	frames := make([]*Sprite, meteorSteps)
	for i := range frames {
		frames[i] = rasterizeMeteor(float64(i) * meteorStep)
	}
	return frames
}

// rasterizeMeteor samples the meteor outline rotated by deg degrees.
func rasterizeMeteor(deg float64) *Sprite {
	theta := deg * math.Pi / 180
	sin, cos := math.Sincos(-theta)

	rows := make([][]rune, meteorH)
	for cy := range rows {
		rows[cy] = make([]rune, meteorW)
		for cx := range rows[cy] {
			// Cell centre relative to the sprite centre, in row units
			u := (float64(cx) + 0.5 - meteorW/2.0) / cellAspect
			v := float64(cy) + 0.5 - meteorH/2.0

			// Sample the unrotated outline
			ru := u*cos - v*sin
			rv := u*sin + v*cos
			rows[cy][cx] = meteorRune(ru, rv)
		}
	}
	return newSpriteFromRunes(core.ColorOrange, rows)
}

// meteorRune returns the glyph at a point of the unrotated meteor.
func meteorRune(u, v float64) rune {
	r := math.Hypot(u, v)
	phi := math.Atan2(v, u)
	edge := meteorRadius * (1 + 0.18*math.Sin(3*phi) + 0.08*math.Cos(5*phi+1))

	switch {
	case r > edge:
		return ' '
	case math.Hypot(u-0.55, v-0.25) < 0.35:
		return '▒' // crater
	case r < 0.5*edge:
		return '█'
	default:
		return '▓'
	}
}

// meteorFrameIndex maps a rotation in degrees to a precomputed frame.
func meteorFrameIndex(deg float64) int {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return int(deg/meteorStep) % meteorSteps
}
