package videochip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpriteGeneratorInsert(t *testing.T) {
	var g SpriteGenerator

	g.Insert(10, 4, 64, 32, FlagFG, 3)
	assert.Equal(t, 1, g.Len())
	for y := uint16(0); y < 32; y++ {
		spans := g.line(y)
		if y < 4 || y >= 12 {
			assert.Empty(t, spans, "line %d", y)
			continue
		}
		if assert.Len(t, spans, 1, "line %d", y) {
			assert.Equal(t, span{x: 10, id: 3, row: uint8(y - 4), flags: FlagFG}, spans[0])
		}
	}
}

func TestSpriteGeneratorClipping(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int16
		lines []uint16
	}{
		{"top edge", 0, -5, []uint16{0, 1, 2}},
		{"bottom edge", 0, 29, []uint16{29, 30, 31}},
		{"left edge", -7, 0, []uint16{0, 1, 2, 3, 4, 5, 6, 7}},
		{"right edge", 63, 0, []uint16{0, 1, 2, 3, 4, 5, 6, 7}},
		{"left of screen", -8, 0, nil},
		{"right of screen", 64, 0, nil},
		{"above screen", 0, -8, nil},
		{"below screen", 0, 32, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g SpriteGenerator
			g.Insert(tt.x, tt.y, 64, 32, 0, 1)

			var lines []uint16
			for y := uint16(0); y < 32; y++ {
				if len(g.line(y)) > 0 {
					lines = append(lines, y)
				}
			}
			assert.Equal(t, tt.lines, lines)
			assert.Equal(t, len(tt.lines) > 0, g.Len() == 1)
		})
	}
}

func TestSpriteGeneratorFlipY(t *testing.T) {
	var g SpriteGenerator
	g.Insert(0, -2, 16, 16, FlagFlipY, 0)

	// Rows 2..7 of the sprite are visible, sampled bottom up.
	for y := uint16(0); y < 6; y++ {
		assert.Equal(t, uint8(5-y), g.line(y)[0].row, "line %d", y)
	}
}

func TestSpriteGeneratorOrderAndOverflow(t *testing.T) {
	var g SpriteGenerator
	for i := 0; i < SpritesPerLine+3; i++ {
		g.Insert(int16(i), 0, 256, 16, 0, TileID(i))
	}

	assert.True(t, g.Overflow())
	spans := g.line(0)
	assert.Len(t, spans, SpritesPerLine)
	for i, s := range spans {
		assert.Equal(t, TileID(i), s.id)
	}

	g.Reset()
	assert.False(t, g.Overflow())
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.line(0))
	assert.Equal(t, SpriteGenerator{}, g)
}
