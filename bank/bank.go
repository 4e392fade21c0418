// Package bank builds 2 bit tile banks from ordinary images.
package bank

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG for Load
	"os"
	"sort"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"

	"tilechip/tile"
	"tilechip/videochip"
)

// colors is the number of pixel values of a 2 bit tile.
const colors = 1 << 2

var errSize = errors.New("bank: image size is not a multiple of the tile size")

// FromImage cuts m into tiles, left to right and then top to bottom.
//
// A paletted image with at most four colours keeps its indices. Anything
// else is reduced to four colours, sorted darkest first so the darkest one
// becomes the transparent value 0. The returned palette maps pixel values
// to colours.
func FromImage(m image.Image) ([]tile.Tile2, []videochip.Color12, error) {
	b := m.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || b.Dx()%tile.Size != 0 || b.Dy()%tile.Size != 0 {
		return nil, nil, fmt.Errorf("%w: %dx%d", errSize, b.Dx(), b.Dy())
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > colors {
		q := quantize.MedianCutQuantizer{}
		p := q.Quantize(make(color.Palette, 0, colors), m)
		sort.SliceStable(p, func(i, j int) bool {
			return luma(p[i]) < luma(p[j])
		})
		pm = image.NewPaletted(b, p)
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	cols, rows := b.Dx()/tile.Size, b.Dy()/tile.Size
	tiles := make([]tile.Tile2, 0, cols*rows)
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			var t tile.Tile2
			for y := 0; y < tile.Size; y++ {
				for x := 0; x < tile.Size; x++ {
					v := pm.ColorIndexAt(b.Min.X+tx*tile.Size+x, b.Min.Y+ty*tile.Size+y)
					t.SetPixel(uint8(x), uint8(y), v&(colors-1))
				}
			}
			tiles = append(tiles, t)
		}
	}

	palette := make([]videochip.Color12, len(pm.Palette))
	for i, c := range pm.Palette {
		palette[i] = videochip.FromColor(c)
	}
	return tiles, palette, nil
}

// Load decodes the image at path and passes it to FromImage.
func Load(path string) ([]tile.Tile2, []videochip.Color12, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("bank: decoding %s: %w", path, err)
	}
	return FromImage(m)
}

func luma(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return 299*r + 587*g + 114*b
}
