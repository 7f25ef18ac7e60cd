package core

import (
	"fmt"
	"image/color"
)

// rgb holds the graphical rendition of each Color, roughly matching
// the ANSI 256-color codes used by the terminal host.
var rgb = map[Color]color.RGBA{
	ColorDefault:      {0xd0, 0xd0, 0xd0, 0xff},
	ColorRed:          {0xcd, 0x31, 0x31, 0xff},
	ColorGreen:        {0x0d, 0xbc, 0x79, 0xff},
	ColorYellow:       {0xe5, 0xe5, 0x10, 0xff},
	ColorBlue:         {0x24, 0x72, 0xc8, 0xff},
	ColorMagenta:      {0xbc, 0x3f, 0xbc, 0xff},
	ColorCyan:         {0x11, 0xa8, 0xcd, 0xff},
	ColorWhite:        {0xe5, 0xe5, 0xe5, 0xff},
	ColorBrightRed:    {0xf1, 0x4c, 0x4c, 0xff},
	ColorBrightYellow: {0xf5, 0xf5, 0x43, 0xff},
	ColorBrightCyan:   {0x29, 0xb8, 0xdb, 0xff},
	ColorOrange:       {0xff, 0x87, 0x00, 0xff},
	ColorGray:         {0x8a, 0x8a, 0x8a, 0xff},
	ColorDarkBlue:     {0x00, 0x00, 0x87, 0xff},
	ColorPurple:       {0x87, 0x00, 0xff, 0xff},
}

// RGBA returns the color for graphical hosts. Unknown colors map to ColorDefault.
func (c Color) RGBA() color.RGBA {
	if v, ok := rgb[c]; ok {
		return v
	}
	return rgb[ColorDefault]
}

// Dim returns the color scaled towards black, for backgrounds.
func (c Color) Dim(factor float64) color.RGBA {
	v := c.RGBA()
	scale := func(x uint8) uint8 { return uint8(float64(x) * factor) }
	return color.RGBA{scale(v.R), scale(v.G), scale(v.B), v.A}
}

// Hex returns the color as #rrggbb for the browser host.
func (c Color) Hex() string {
	v := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
}
