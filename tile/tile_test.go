package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func roundTrip[C Cluster[C]](t *testing.T, bits uint8) {
	var tl Tile[C]
	for y := uint8(0); y < Size; y++ {
		for x := uint8(0); x < Size; x++ {
			for v := uint8(0); v < 1<<bits; v++ {
				tl.SetPixel(x, y, v)
				if got := tl.Pixel(x, y); got != v {
					t.Fatalf("%d bpp (%d, %d): expected %d, got %d", bits, x, y, v, got)
				}
			}
		}
	}
}

func TestPixelRoundTrip(t *testing.T) {
	roundTrip[Cluster1](t, 1)
	roundTrip[Cluster2](t, 2)
	roundTrip[Cluster4](t, 4)
}

// Writing one pixel must leave its neighbours alone.
func TestSetPixelIsolated(t *testing.T) {
	tl := FromPixels[Cluster4](Empty)
	tl.SetPixel(3, 5, 0xF)
	tl.SetPixel(4, 5, 0x9)
	tl.SetPixel(3, 5, 0x2)

	px := tl.Pixels()
	for i, v := range px {
		switch i {
		case 5*Size + 3:
			assert.Equal(t, uint8(0x2), v)
		case 5*Size + 4:
			assert.Equal(t, uint8(0x9), v)
		default:
			assert.Equal(t, uint8(0), v, "pixel %d", i)
		}
	}
}

func TestClusterLayout(t *testing.T) {
	c := Cluster2(0).WithPixel(0, 3).WithPixel(7, 1)
	assert.Equal(t, Cluster2(0b0100_0000_0000_0011), c)
	assert.Equal(t, uint8(3), c.Pixel(0))
	assert.Equal(t, uint8(1), c.Pixel(7))

	c4 := Cluster4(0).WithPixel(1, 0xA)
	assert.Equal(t, Cluster4(0xA0), c4)
}

func TestFixtures(t *testing.T) {
	bank := Fixtures()
	assert.Len(t, bank, 6)

	for y := uint8(0); y < Size; y++ {
		for x := uint8(0); x < Size; x++ {
			assert.Equal(t, uint8(1), bank[SolidID].Pixel(x, y))
			assert.Equal(t, uint8(0), bank[EmptyID].Pixel(x, y))

			var want uint8
			switch {
			case x < 4 && y < 4:
				want = 0
			case y < 4:
				want = 1
			case x < 4:
				want = 2
			default:
				want = 3
			}
			assert.Equal(t, want, bank[CheckersID].Pixel(x, y), "checkers (%d, %d)", x, y)
		}
	}

	assert.Equal(t, Crosshairs, bank[CrosshairsID].Pixels())
	assert.Equal(t, Outline, bank[OutlineID].Pixels())
	assert.Equal(t, Corner, bank[CornerID].Pixels())
}
