package videochip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBGMapSetGet(t *testing.T) {
	m := NewBGMap(4, 3)
	assert.Equal(t, uint16(4), m.Columns())
	assert.Equal(t, uint16(3), m.Rows())
	assert.Equal(t, Cell{ID: NoTile}, m.Get(3, 2))

	m.Set(3, 2, Cell{ID: 7, Flags: FlagFlipX})
	assert.Equal(t, Cell{ID: 7, Flags: FlagFlipX}, m.Get(3, 2))
	assert.Equal(t, Cell{ID: NoTile}, m.Get(2, 2))

	assert.Panics(t, func() { m.Get(4, 0) })
	assert.Panics(t, func() { m.Set(0, 3, Cell{}) })

	m.Reset()
	assert.Equal(t, Cell{ID: NoTile}, m.Get(3, 2))
}

func TestNewBGMapInvalid(t *testing.T) {
	assert.Panics(t, func() { NewBGMap(0, 4) })
	assert.Panics(t, func() { NewBGMap(4, BGMaxRows+1) })
	assert.NotPanics(t, func() { NewBGMap(BGMaxColumns, BGMaxRows) })
}

func TestBGMapSample(t *testing.T) {
	m := NewBGMap(4, 2)
	for col := uint16(0); col < 4; col++ {
		for row := uint16(0); row < 2; row++ {
			m.Set(col, row, Cell{ID: TileID(row*4 + col)})
		}
	}

	tests := []struct {
		name   string
		px, py int
		wrap   bool
		id     TileID
		x, y   uint8
		ok     bool
	}{
		{"origin", 0, 0, false, 0, 0, 0, true},
		{"inside", 13, 9, false, 5, 5, 1, true},
		{"last pixel", 31, 15, false, 7, 7, 7, true},
		{"right of map", 32, 0, false, 0, 0, 0, false},
		{"below map", 0, 16, false, 0, 0, 0, false},
		{"left of map", -1, 0, false, 0, 0, 0, false},
		{"right of map wraps", 32, 0, true, 0, 0, 0, true},
		{"left of map wraps", -1, 0, true, 3, 7, 0, true},
		{"above map wraps", 2, -1, true, 4, 2, 7, true},
		{"far away wraps", 32*5 + 9, 16*3 + 8, true, 5, 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, x, y, ok := m.Sample(tt.px, tt.py, tt.wrap)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.id, c.ID)
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.y, y)
		})
	}
}
