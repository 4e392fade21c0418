/*
Package videochip implements a tile and sprite video chip.

A Chip owns a background map, two global 16 colour palettes, sixteen local
4 colour sub-palettes and a per frame sprite list. It does not own tile
pixels: the caller passes a bank of 2 bit tiles to IterPixels, which returns
a stream producing the final colour of every screen pixel in row major order.

A frame looks like this:

	chip.StartFrame()
	chip.DrawSprite(videochip.DrawBundle{X: 10, Y: 20, ID: 1, Flags: videochip.FlagFG})
	pixels := chip.IterPixels(bank)
	for pixels.Next() {
		x, y := pixels.Pos()
		img.Set(int(x), int(y), pixels.Color())
	}

Misuse, like an out of range palette or screen height, panics.
*/
package videochip

import (
	"fmt"

	"tilechip/tile"
)

// DrawBundle is a sprite placement for the current frame, in world coordinates.
type DrawBundle struct {
	X     int16
	Y     int16
	ID    TileID
	Flags TileFlags
}

// Chip is a tile and sprite video chip with a w by h pixel screen.
type Chip struct {
	// BG is the background tile map.
	BG BGMap
	// BGColor is shown wherever no layer produces an opaque pixel. It indexes BGPalette.
	BGColor ColorID
	// FGPalette resolves sprite colours.
	FGPalette [ColorsPerPalette]Color12
	// BGPalette resolves background colours.
	BGPalette [ColorsPerPalette]Color12
	// WrapSprites folds sprite coordinates around the screen instead of culling them.
	WrapSprites bool
	// WrapBG repeats the background map outside its borders.
	WrapBG bool
	// ScrollX and ScrollY offset the background map and sprites.
	ScrollX int16
	ScrollY int16
	// HorizontalIRQPosition is the column at which HorizontalIRQCallback runs on every line.
	HorizontalIRQPosition uint16
	// HorizontalIRQCallback is optional and handed to every pixel stream.
	HorizontalIRQCallback HorizontalIRQ

	localPalettes [LocalPaletteCount][ColorsPerTile]ColorID
	sprites       SpriteGenerator
	w             uint16
	h             uint16
	view          Rect
	frameCount    uint64
	paletteHead   uint8
}

// New powers on a chip with a w by h pixel screen.
func New(w, h uint16) *Chip {
	if h < tile.Size || h > MaxLines {
		panic(fmt.Sprintf("videochip: screen height %d outside %d..%d", h, tile.Size, MaxLines))
	}
	if w == 0 {
		panic("videochip: screen width must be positive")
	}
	c := &Chip{w: w, h: h}
	c.BG.init(BGMaxColumns, BGMaxRows)
	c.ResetAll()
	return c
}

func (c *Chip) Width() uint16 { return c.w }

func (c *Chip) Height() uint16 { return c.h }

func (c *Chip) MaxX() uint16 { return c.w - 1 }

func (c *Chip) MaxY() uint16 { return c.h - 1 }

// FrameCount is the number of StartFrame calls since the last ResetAll.
func (c *Chip) FrameCount() uint64 { return c.frameCount }

// SetViewport masks pixels outside the rectangle with the background colour.
// It does not move the background or sprites.
func (c *Chip) SetViewport(left, top, w, h uint16) {
	c.view = rectOf(left, top, w, h)
}

func (c *Chip) Viewport() Rect { return c.view }

// Sprites exposes the sprites drawn so far this frame.
func (c *Chip) Sprites() *SpriteGenerator { return &c.sprites }

// SpriteOverflow reports whether a scanline dropped sprites this frame.
func (c *Chip) SpriteOverflow() bool { return c.sprites.Overflow() }

// ResetAll restores the power on state.
func (c *Chip) ResetAll() {
	c.BGColor = Gray
	c.WrapSprites = true
	c.WrapBG = true
	c.frameCount = 0
	c.ResetScroll()
	c.ResetPalettes()
	c.ResetBGMap()
	c.ResetViewport()
	c.ResetSprites()
	c.ResetIRQ()
}

func (c *Chip) ResetScroll() {
	c.ScrollX = 0
	c.ScrollY = 0
}

func (c *Chip) ResetBGMap() {
	c.BG.Reset()
}

func (c *Chip) ResetViewport() {
	c.view = Rect{Right: c.w, Bottom: c.h}
}

func (c *Chip) ResetSprites() {
	c.sprites.Reset()
}

func (c *Chip) ResetIRQ() {
	c.HorizontalIRQPosition = 0
	c.HorizontalIRQCallback = nil
}

// StartFrame advances the frame counter and clears last frame's sprites. Call
// it before drawing anything for the frame.
func (c *Chip) StartFrame() {
	c.frameCount++
	c.ResetSprites()
}

// DrawSprite places a tile as a sprite. With WrapSprites the position folds
// into a space one tile wider than the screen on every side, so a sprite
// leaving one edge comes back on the opposite one. Without it, sprites that
// are entirely off screen are dropped.
func (c *Chip) DrawSprite(b DrawBundle) {
	const size = tile.Size

	x := int(b.X) - int(c.ScrollX)
	y := int(b.Y) - int(c.ScrollY)
	if c.WrapSprites {
		x = wrapCoord(x, int(c.w))
		y = wrapCoord(y, int(c.h))
	} else if x < -size || x > int(c.MaxX()) || y < -size || y > int(c.MaxY()) {
		return
	}

	c.sprites.Insert(int16(x), int16(y), c.w, c.h, b.Flags, b.ID)
}

// wrapCoord folds v into -tile.Size .. n+tile.Size-1.
func wrapCoord(v, n int) int {
	const size = tile.Size
	span := n + size*2
	return ((v+size)%span+span)%span - size
}

// IterPixels returns the pixel stream for the current frame. tiles is only
// read, and must outlive the stream. Do not modify the chip until the
// stream is done; use HorizontalIRQCallback for mid frame changes.
func (c *Chip) IterPixels(tiles []tile.Tile2) *PixelIter {
	return newPixelIter(c, tiles)
}
