package videochip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField(t *testing.T) {
	f := Field{Index: 4, Size: 4}

	v := uint8(0)
	assert.Equal(t, uint8(0), f.Get(v))

	v = f.Set(v, 0xA)
	assert.Equal(t, uint8(0xA0), v)
	assert.Equal(t, uint8(0xA), f.Get(v))

	v |= 0x0F
	v = f.Set(v, 0x3)
	assert.Equal(t, uint8(0x3F), v)

	// Bits that do not fit are dropped.
	v = f.Set(v, 0x1F)
	assert.Equal(t, uint8(0xFF), v)
	v = Field{Index: 0, Size: 1}.Set(v, 2)
	assert.Equal(t, uint8(0xFE), v)
}

func TestTileFlags(t *testing.T) {
	f := TileFlags(0)
	assert.False(t, f.FlipX())
	assert.False(t, f.FlipY())
	assert.False(t, f.FG())
	assert.Equal(t, PaletteID(0), f.Palette())

	f = Flags(9, FlagFlipY, FlagFG)
	assert.False(t, f.FlipX())
	assert.True(t, f.FlipY())
	assert.True(t, f.FG())
	assert.Equal(t, PaletteID(9), f.Palette())
	assert.Equal(t, TileFlags(0b1001_1010), f)

	f = f.WithPalette(15) | FlagFlipX
	assert.True(t, f.FlipX())
	assert.Equal(t, PaletteID(15), f.Palette())
	assert.Equal(t, "TileFlags{flipX: true, flipY: true, fg: true, palette: 15}", f.String())

	assert.Panics(t, func() { Flags(16) })
}
