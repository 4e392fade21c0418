/*
Package tile implements packed storage for 8 by 8 indexed colour tiles.

Each tile row is a cluster: the eight pixels of the row packed into the
smallest word that holds 8*B bits, where B is the number of bits per pixel.
The pixel depth is chosen through the cluster type, so a bank of 2 bit tiles
and a bank of 4 bit tiles can be used side by side without branching on the
depth for every pixel.
*/
package tile

const (
	// Size is the width and height of a tile in pixels.
	Size       = 8
	pixelCount = Size * Size
)

// Cluster is a packed tile row. WithPixel returns a copy of the cluster with
// pixel x replaced, which keeps the row types plain values.
type Cluster[C any] interface {
	Pixel(x uint8) uint8
	WithPixel(x, value uint8) C
}

// Tile is an array of clusters, one per row.
type Tile[C Cluster[C]] struct {
	Rows [Size]C
}

type (
	// Tile1 holds two colour tiles.
	Tile1 = Tile[Cluster1]
	// Tile2 holds four colour tiles, the format used by the video chip.
	Tile2 = Tile[Cluster2]
	// Tile4 holds sixteen colour tiles.
	Tile4 = Tile[Cluster4]
)

// Pixel returns the value at x, y. Both must be less than Size.
func (t *Tile[C]) Pixel(x, y uint8) uint8 {
	return t.Rows[y].Pixel(x)
}

// SetPixel stores value at x, y. The value must fit the tile depth.
func (t *Tile[C]) SetPixel(x, y, value uint8) {
	t.Rows[y] = t.Rows[y].WithPixel(x, value)
}

// Pixels unpacks the tile into one byte per pixel, row by row.
func (t *Tile[C]) Pixels() [pixelCount]uint8 {
	var px [pixelCount]uint8
	for y := uint8(0); y < Size; y++ {
		for x := uint8(0); x < Size; x++ {
			px[int(y)*Size+int(x)] = t.Pixel(x, y)
		}
	}
	return px
}

// FromPixels packs one byte per pixel, row by row, into a tile.
func FromPixels[C Cluster[C]](px [pixelCount]uint8) Tile[C] {
	var t Tile[C]
	for y := uint8(0); y < Size; y++ {
		for x := uint8(0); x < Size; x++ {
			t.SetPixel(x, y, px[int(y)*Size+int(x)])
		}
	}
	return t
}
