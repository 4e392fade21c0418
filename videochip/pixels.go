package videochip

import "tilechip/tile"

// Rect is a half open rectangle in device pixels.
type Rect struct {
	Left, Top, Right, Bottom uint16
}

func rectOf(left, top, w, h uint16) Rect {
	return Rect{Left: left, Top: top, Right: satAdd(left, w), Bottom: satAdd(top, h)}
}

func satAdd(a, b uint16) uint16 {
	if s := a + b; s >= a {
		return s
	}
	return 0xFFFF
}

func (r Rect) Contains(x, y uint16) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Raster is the view of the chip handed to a HorizontalIRQ. It carries the
// display parameters of the pass in progress; changing them affects every
// pixel produced afterwards but never the chip itself.
type Raster struct {
	ScrollX int16
	ScrollY int16

	view  Rect
	line  uint16
	frame uint64
}

// Line is the scanline being produced.
func (r *Raster) Line() uint16 { return r.line }

// Frame is the chip frame counter at the start of the pass.
func (r *Raster) Frame() uint64 { return r.frame }

func (r *Raster) Viewport() Rect { return r.view }

func (r *Raster) SetViewport(left, top, w, h uint16) {
	r.view = rectOf(left, top, w, h)
}

// HorizontalIRQ is called once per scanline when the pixel stream reaches
// the chip's HorizontalIRQPosition.
type HorizontalIRQ func(r *Raster)

type spritePixel struct {
	value uint8 // 0 when no sprite covers the pixel
	flags TileFlags
}

// PixelIter produces the colours of one frame in row major order. It is
// single use; ask the chip for a new one every frame.
type PixelIter struct {
	chip  *Chip
	tiles []tile.Tile2

	w, h   uint16
	x, y   uint16
	cx, cy uint16
	color  Color12

	irq    HorizontalIRQ
	irqAt  uint16
	raster Raster

	sprites []spritePixel
}

func newPixelIter(c *Chip, tiles []tile.Tile2) *PixelIter {
	p := &PixelIter{
		chip:    c,
		tiles:   tiles,
		w:       c.w,
		h:       c.h,
		irqAt:   c.HorizontalIRQPosition,
		sprites: make([]spritePixel, c.w),
		raster: Raster{
			ScrollX: c.ScrollX,
			ScrollY: c.ScrollY,
			view:    c.view,
			frame:   c.frameCount,
		},
	}
	if c.HorizontalIRQCallback != nil && c.HorizontalIRQPosition < c.w {
		p.irq = c.HorizontalIRQCallback
	}
	return p
}

// Next advances to the next pixel. It returns false once the frame is done.
func (p *PixelIter) Next() bool {
	if p.y >= p.h {
		return false
	}
	if p.x == 0 {
		p.raster.line = p.y
		p.loadSprites(p.y)
	}
	if p.irq != nil && p.x == p.irqAt {
		p.irq(&p.raster)
	}

	p.cx, p.cy = p.x, p.y
	p.color = p.shade(p.x, p.y)

	p.x++
	if p.x == p.w {
		p.x = 0
		p.y++
	}
	return true
}

// Color is the colour produced by the last call to Next.
func (p *PixelIter) Color() Color12 { return p.color }

// Pos is the device position of the last pixel produced by Next.
func (p *PixelIter) Pos() (x, y uint16) { return p.cx, p.cy }

// NextLine produces the rest of the current scanline into dst, indexed by
// column, so dst must be at least as wide as the screen.
func (p *PixelIter) NextLine(dst []Color12) bool {
	y := p.y
	if y >= p.h {
		return false
	}
	for p.y == y && p.Next() {
		dst[p.cx] = p.color
	}
	return true
}

// loadSprites rasterises the sprites of line y. Later sprites overwrite
// earlier ones; transparent pixels never do.
func (p *PixelIter) loadSprites(y uint16) {
	for i := range p.sprites {
		p.sprites[i] = spritePixel{}
	}

	for _, s := range p.chip.sprites.line(y) {
		cluster := p.tiles[s.id].Rows[s.row]
		for px := 0; px < tile.Size; px++ {
			sx := int(s.x) + px
			if sx < 0 || sx >= len(p.sprites) {
				continue
			}
			col := uint8(px)
			if s.flags.FlipX() {
				col = tileMask - col
			}
			if v := cluster.Pixel(col); v != 0 {
				p.sprites[sx] = spritePixel{value: v, flags: s.flags}
			}
		}
	}
}

// shade composes one pixel: foreground sprites, then the background map,
// then background sprites, then the background colour.
func (p *PixelIter) shade(x, y uint16) Color12 {
	c := p.chip
	if !p.raster.view.Contains(x, y) {
		return c.BGPalette[c.BGColor]
	}

	spr := p.sprites[x]
	if spr.value != 0 && spr.flags.FG() {
		return c.FGPalette[c.localPalettes[spr.flags.Palette()][spr.value]]
	}

	if v, flags := p.sampleBG(x, y); v != 0 {
		return c.BGPalette[c.localPalettes[flags.Palette()][v]]
	}

	if spr.value != 0 {
		return c.FGPalette[c.localPalettes[spr.flags.Palette()][spr.value]]
	}
	return c.BGPalette[c.BGColor]
}

func (p *PixelIter) sampleBG(x, y uint16) (uint8, TileFlags) {
	px := int(x) + int(p.raster.ScrollX)
	py := int(y) + int(p.raster.ScrollY)

	cell, lx, ly, ok := p.chip.BG.Sample(px, py, p.chip.WrapBG)
	if !ok || cell.ID == NoTile {
		return 0, 0
	}
	if cell.Flags.FlipX() {
		lx = tileMask - lx
	}
	if cell.Flags.FlipY() {
		ly = tileMask - ly
	}
	return p.tiles[cell.ID].Pixel(lx, ly), cell.Flags
}
