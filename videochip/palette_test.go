package videochip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushSubpalette(t *testing.T) {
	c := New(64, 64)
	for i := 0; i < LocalPaletteCount; i++ {
		colors := [ColorsPerTile]ColorID{0, ColorID(i), 2, 3}
		require.Equal(t, PaletteID(i), c.PushSubpalette(colors))
		assert.Equal(t, colors, c.SubPalette(PaletteID(i)))
	}
	assert.Panics(t, func() { c.PushSubpalette([ColorsPerTile]ColorID{}) })

	// A second chip has its own cursor.
	other := New(64, 64)
	assert.Equal(t, PaletteID(0), other.PushSubpalette([ColorsPerTile]ColorID{}))

	c.ResetPalettes()
	assert.Equal(t, PaletteID(0), c.PushSubpalette([ColorsPerTile]ColorID{}))
}

func TestSetPalette(t *testing.T) {
	c := New(64, 64)
	c.SetPalette(15, [ColorsPerTile]ColorID{Red, Green, Blue, White})
	assert.Equal(t, [ColorsPerTile]ColorID{Red, Green, Blue, White}, c.SubPalette(15))

	assert.Panics(t, func() { c.SetPalette(16, [ColorsPerTile]ColorID{}) })
	assert.Panics(t, func() { c.SetPalette(0, [ColorsPerTile]ColorID{0, 16, 0, 0}) })
	assert.Panics(t, func() { c.SubPalette(16) })
}

func TestColorCycle(t *testing.T) {
	tests := []struct {
		name     string
		start    ColorID
		min, max ColorID
		dir      CycleDir
		want     ColorID
	}{
		{"up", 1, 0, 3, CycleUp, 2},
		{"up wraps to min", 3, 0, 3, CycleUp, 0},
		{"down", 2, 0, 3, CycleDown, 1},
		{"down wraps to max", 0, 0, 3, CycleDown, 3},
		{"narrow range up", 9, 8, 9, CycleUp, 8},
		{"narrow range down", 8, 8, 9, CycleDown, 9},
		{"full range up", 15, 0, 15, CycleUp, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(64, 64)
			c.SetPalette(4, [ColorsPerTile]ColorID{0, tt.start, 0, 0})
			c.ColorCycle(4, 1, tt.min, tt.max, tt.dir)
			assert.Equal(t, tt.want, c.SubPalette(4)[1])
			// Other slots are left alone.
			assert.Equal(t, ColorID(0), c.SubPalette(4)[0])
		})
	}
}

func TestColorCycleInvalid(t *testing.T) {
	c := New(64, 64)
	assert.Panics(t, func() { c.ColorCycle(16, 0, 0, 3, CycleUp) })
	assert.Panics(t, func() { c.ColorCycle(0, 0, 4, 3, CycleUp) })
	assert.Panics(t, func() { c.ColorCycle(0, 0, 0, 16, CycleUp) })
}

func TestColor12(t *testing.T) {
	c := RGB12(0xF, 0x8, 0x1)
	assert.Equal(t, Color12(0xF81), c)
	assert.Equal(t, uint8(0xF), c.R())
	assert.Equal(t, uint8(0x8), c.G())
	assert.Equal(t, uint8(0x1), c.B())

	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0x8888, 0x1111, 0xFFFF}, []uint32{r, g, b, a})
	assert.Equal(t, c, FromColor(c.RGBA8()))
	assert.Equal(t, c, FromColor(c))
}
