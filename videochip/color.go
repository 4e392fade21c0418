package videochip

import "image/color"

const (
	// ColorsPerPalette is the size of each global palette.
	ColorsPerPalette = 16
	// ColorsPerTile is the size of a local sub-palette, one entry per 2 bit pixel value.
	ColorsPerTile = 4
	// LocalPaletteCount is the number of local sub-palettes.
	LocalPaletteCount = 16
)

// Color12 is a 12 bit RGB colour stored as 0x0RGB.
type Color12 uint16

// ColorID indexes one of the two global palettes.
type ColorID uint8

// RGB12 packs three 4 bit channels. Higher bits are dropped.
func RGB12(r, g, b uint8) Color12 {
	return Color12(uint16(r&0xF)<<8 | uint16(g&0xF)<<4 | uint16(b&0xF))
}

// FromColor converts any colour to the nearest lower 12 bit colour.
func FromColor(c color.Color) Color12 {
	r, g, b, _ := c.RGBA()
	return RGB12(uint8(r>>12), uint8(g>>12), uint8(b>>12))
}

func (c Color12) R() uint8 { return uint8(c>>8) & 0xF }

func (c Color12) G() uint8 { return uint8(c>>4) & 0xF }

func (c Color12) B() uint8 { return uint8(c) & 0xF }

// RGBA implements color.Color. Colours are always opaque.
func (c Color12) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R()) * 0x1111
	g = uint32(c.G()) * 0x1111
	b = uint32(c.B()) * 0x1111
	a = 0xFFFF
	return
}

// RGBA8 expands the colour to 8 bits per channel.
func (c Color12) RGBA8() color.RGBA {
	return color.RGBA{R: c.R() * 0x11, G: c.G() * 0x11, B: c.B() * 0x11, A: 0xFF}
}

// Names for the entries of DefaultPalette.
const (
	Black ColorID = iota
	DarkBlue
	Purple
	DarkGreen
	Brown
	DarkGray
	Gray
	White
	Red
	Orange
	Yellow
	Green
	Blue
	Lavender
	Pink
	Peach
)

// DefaultPalette is loaded into both global palettes on reset.
var DefaultPalette = [ColorsPerPalette]Color12{
	RGB12(0x0, 0x0, 0x0),
	RGB12(0x1, 0x2, 0x5),
	RGB12(0x7, 0x2, 0x5),
	RGB12(0x0, 0x8, 0x5),
	RGB12(0xA, 0x5, 0x3),
	RGB12(0x5, 0x5, 0x4),
	RGB12(0xC, 0xC, 0xC),
	RGB12(0xF, 0xF, 0xF),
	RGB12(0xF, 0x0, 0x4),
	RGB12(0xF, 0xA, 0x0),
	RGB12(0xF, 0xE, 0x2),
	RGB12(0x0, 0xE, 0x3),
	RGB12(0x2, 0xA, 0xF),
	RGB12(0x8, 0x7, 0x9),
	RGB12(0xF, 0x7, 0xA),
	RGB12(0xF, 0xC, 0xA),
}
