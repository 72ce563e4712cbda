package core

import "strconv"

// Color is a foreground color for a screen cell.
type Color uint8

// Palette used by the shooter's sprites and HUD. The zero value leaves the
// terminal's own foreground untouched.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

var ansi256 = [...]int{
	ColorDefault:      -1,
	ColorRed:          1,
	ColorYellow:       3,
	ColorCyan:         6,
	ColorWhite:        7,
	ColorBrightRed:    9,
	ColorBrightYellow: 11,
	ColorBrightCyan:   14,
	ColorBrightWhite:  15,
	ColorOrange:       208,
	ColorGray:         245,
	ColorDarkGray:     238,
}

// ANSI returns the 256-color palette index as a string, or "" for
// ColorDefault and unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansi256) || ansi256[c] < 0 {
		return ""
	}
	return strconv.Itoa(ansi256[c])
}
