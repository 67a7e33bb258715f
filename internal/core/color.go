package core

import "image/color"

// Color is a palette index for a screen cell or a drawn entity.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorGray
	ColorLightGray
	ColorPaddle
	ColorBall
	ColorBrick
)

type paletteEntry struct {
	ansi string
	rgb  color.RGBA
}

// Paddle/brick and ball colors follow the classic host palette:
// (0.5, 0.5, 1.0) for paddle and bricks, (1.0, 0.5, 0.5) for the ball.
var palette = map[Color]paletteEntry{
	ColorDefault:   {"", color.RGBA{0x20, 0x20, 0x20, 0xff}},
	ColorRed:       {"1", color.RGBA{0xcc, 0x33, 0x33, 0xff}},
	ColorGreen:     {"2", color.RGBA{0x33, 0xaa, 0x33, 0xff}},
	ColorYellow:    {"3", color.RGBA{0xcc, 0xaa, 0x22, 0xff}},
	ColorBlue:      {"4", color.RGBA{0x33, 0x55, 0xcc, 0xff}},
	ColorCyan:      {"6", color.RGBA{0x33, 0xaa, 0xaa, 0xff}},
	ColorGray:      {"245", color.RGBA{0x8a, 0x8a, 0x8a, 0xff}},
	ColorLightGray: {"252", color.RGBA{0xcc, 0xcc, 0xcc, 0xff}},
	ColorPaddle:    {"105", color.RGBA{0x80, 0x80, 0xff, 0xff}},
	ColorBall:      {"210", color.RGBA{0xff, 0x80, 0x80, 0xff}},
	ColorBrick:     {"111", color.RGBA{0x80, 0x80, 0xff, 0xff}},
}

// ANSI returns the 256-color terminal code, or "" for the terminal default.
func (c Color) ANSI() string {
	return palette[c].ansi
}

// RGBA returns the color used by pixel frontends.
func (c Color) RGBA() color.RGBA {
	if e, ok := palette[c]; ok {
		return e.rgb
	}
	return palette[ColorDefault].rgb
}
