package tile

type word interface {
	~uint8 | ~uint16 | ~uint32
}

// Pixel 0 sits in the lowest bits of the word.

func pixel[W word](w W, bits, x uint8) uint8 {
	mask := W(1)<<bits - 1
	return uint8(w >> (x * bits) & mask)
}

func withPixel[W word](w W, bits, x, value uint8) W {
	shift := x * bits
	mask := (W(1)<<bits - 1) << shift
	return w&^mask | W(value)<<shift&mask
}

// Cluster1 packs eight 1 bit pixels.
type Cluster1 uint8

func (c Cluster1) Pixel(x uint8) uint8 { return pixel(c, 1, x) }

func (c Cluster1) WithPixel(x, value uint8) Cluster1 { return withPixel(c, 1, x, value) }

// Cluster2 packs eight 2 bit pixels.
type Cluster2 uint16

func (c Cluster2) Pixel(x uint8) uint8 { return pixel(c, 2, x) }

func (c Cluster2) WithPixel(x, value uint8) Cluster2 { return withPixel(c, 2, x, value) }

// Cluster4 packs eight 4 bit pixels.
type Cluster4 uint32

func (c Cluster4) Pixel(x uint8) uint8 { return pixel(c, 4, x) }

func (c Cluster4) WithPixel(x, value uint8) Cluster4 { return withPixel(c, 4, x, value) }
