package core

import "image/color"

// Color is a palette index for a screen cell or a sprite. Terminal
// frontends map it to ANSI codes, graphical ones to RGB via RGBA.
type Color uint8

// Palette entries.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var rgba = [...]color.RGBA{
	ColorDefault:       {0xd0, 0xd0, 0xd0, 0xff},
	ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	ColorGreen:         {0x0d, 0xbc, 0x79, 0xff},
	ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

// RGBA returns the opaque RGB value of c. Unknown values fall back to
// ColorDefault.
func (c Color) RGBA() color.RGBA {
	if int(c) < len(rgba) {
		return rgba[c]
	}
	return rgba[ColorDefault]
}
