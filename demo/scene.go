/*
Package demo drives a video chip through a small animated scene: a scrolling
checkerboard, bouncing sprites, colour cycling and a per line wave produced by
the horizontal IRQ. It knows nothing about windows; frames are rendered into
an image.RGBA that the caller presents or saves.
*/
package demo

import (
	"image"
	"io"
	"log"
	"math"

	"tilechip/tile"
	"tilechip/videochip"
)

const (
	actorCount = 12
	// cycleEvery is the number of frames between colour cycle steps.
	cycleEvery = 8
	waveLength = 64
	waveHeight = 6
)

type actor struct {
	x, y   int16
	dx, dy int16
	id     videochip.TileID
	flags  videochip.TileFlags
}

// Scene owns a chip and the state of the animation running on it.
type Scene struct {
	Chip *videochip.Chip

	bank     []tile.Tile2
	imported []tile.Tile2
	extra    []videochip.Color12
	palette  *[videochip.ColorsPerPalette]videochip.Color12
	logger   *log.Logger

	actors []actor
	wave   [waveLength]int16
	irq    bool

	cyclePalette videochip.PaletteID
	line         []videochip.Color12
}

// Options configures a Scene. Zero values select the defaults.
type Options struct {
	Width, Height uint16
	// Palette replaces the default global palette.
	Palette *[videochip.ColorsPerPalette]videochip.Color12
	// Tiles and TileColors are an imported bank shown below the checkerboard.
	Tiles      []tile.Tile2
	TileColors []videochip.Color12
	Logger     *log.Logger
}

func NewScene(o Options) *Scene {
	if o.Width == 0 {
		o.Width = 256
	}
	if o.Height == 0 {
		o.Height = 192
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}

	s := &Scene{
		Chip:     videochip.New(o.Width, o.Height),
		imported: o.Tiles,
		extra:    o.TileColors,
		palette:  o.Palette,
		logger:   o.Logger,
		line:     make([]videochip.Color12, o.Width),
	}
	s.bank = append(tile.Fixtures(), o.Tiles...)
	for i := range s.wave {
		s.wave[i] = int16(math.Round(waveHeight * math.Sin(2*math.Pi*float64(i)/waveLength)))
	}

	s.logger.Printf("chip %dx%d, %d tiles in bank", o.Width, o.Height, len(s.bank))
	s.Reset()
	return s
}

// Reset powers the chip back on and rebuilds the scene.
func (s *Scene) Reset() {
	c := s.Chip
	c.ResetAll()
	if s.palette != nil {
		c.FGPalette = *s.palette
		c.BGPalette = *s.palette
	}
	c.BGColor = videochip.DarkBlue

	board := c.PushSubpalette([videochip.ColorsPerTile]videochip.ColorID{0, videochip.DarkGray, videochip.Brown, videochip.Purple})
	s.cyclePalette = c.PushSubpalette([videochip.ColorsPerTile]videochip.ColorID{0, videochip.Red, videochip.Orange, videochip.Yellow})
	light := c.PushSubpalette([videochip.ColorsPerTile]videochip.ColorID{0, videochip.White, videochip.Pink, videochip.Lavender})
	bright := c.PushSubpalette([videochip.ColorsPerTile]videochip.ColorID{0, videochip.Yellow, videochip.Green, videochip.Blue})

	for row := uint16(0); row < c.BG.Rows(); row++ {
		for col := uint16(0); col < c.BG.Columns(); col++ {
			cell := videochip.Cell{ID: tile.CheckersID, Flags: videochip.Flags(board)}
			if (row+col)%2 == 1 {
				cell = videochip.Cell{ID: tile.OutlineID, Flags: videochip.Flags(s.cyclePalette)}
			}
			c.BG.Set(col, row, cell)
		}
	}
	s.placeImported()

	spanX := int(c.Width()) - tile.Size + 1
	spanY := int(c.Height()) - tile.Size + 1
	if spanX < 1 {
		spanX = 1
	}
	s.actors = s.actors[:0]
	for i := 0; i < actorCount; i++ {
		a := actor{
			x:  int16(i * 20 % spanX),
			y:  int16(i * 13 % spanY),
			dx: int16(i%3 + 1),
			dy: int16(i%2*2 - 1),
			id: tile.CrosshairsID,
		}
		pal := light
		if i%2 == 1 {
			a.id = tile.CornerID
			pal = bright
		}
		var bits []videochip.TileFlags
		if i&1 != 0 {
			bits = append(bits, videochip.FlagFlipX)
		}
		if i&2 != 0 {
			bits = append(bits, videochip.FlagFlipY)
		}
		if i%3 == 0 {
			bits = append(bits, videochip.FlagFG)
		}
		a.flags = videochip.Flags(pal, bits...)
		s.actors = append(s.actors, a)
	}

	s.irq = false
	s.SetIRQ(true)
}

// placeImported lays the imported tiles out from map row 2 down, using the
// top four colours of the BG palette for their colours.
func (s *Scene) placeImported() {
	if len(s.imported) == 0 {
		return
	}
	c := s.Chip

	var colors [videochip.ColorsPerTile]videochip.ColorID
	for i := range colors {
		id := videochip.ColorID(videochip.ColorsPerPalette - videochip.ColorsPerTile + i)
		colors[i] = id
		if i < len(s.extra) {
			c.BGPalette[id] = s.extra[i]
		}
	}
	pal := c.PushSubpalette(colors)

	first := videochip.TileID(len(s.bank) - len(s.imported))
	cols := c.BG.Columns()
	for i := range s.imported {
		row := 2 + uint16(i)/cols
		if row >= c.BG.Rows() {
			s.logger.Printf("%d imported tiles do not fit the map", len(s.imported)-i)
			break
		}
		c.BG.Set(uint16(i)%cols, row, videochip.Cell{ID: first + videochip.TileID(i), Flags: videochip.Flags(pal)})
	}
}

// SetIRQ turns the raster wave on or off.
func (s *Scene) SetIRQ(on bool) {
	if on == s.irq {
		return
	}
	s.irq = on
	if !on {
		s.Chip.ResetIRQ()
		return
	}
	s.Chip.HorizontalIRQPosition = 0
	s.Chip.HorizontalIRQCallback = s.raster
}

func (s *Scene) IRQ() bool { return s.irq }

// raster bends every line by a sine wave that drifts one line per frame.
func (s *Scene) raster(r *videochip.Raster) {
	i := (uint64(r.Line()) + r.Frame()) % waveLength
	r.ScrollX = s.Chip.ScrollX + s.wave[i]
}

// Scroll moves the camera.
func (s *Scene) Scroll(dx, dy int16) {
	s.Chip.ScrollX += dx
	s.Chip.ScrollY += dy
}

// Step advances the animation by one frame and queues this frame's sprites.
func (s *Scene) Step() {
	c := s.Chip
	c.StartFrame()

	if c.FrameCount()%cycleEvery == 0 {
		c.ColorCycle(s.cyclePalette, 1, videochip.Red, videochip.Peach, videochip.CycleUp)
	}

	maxX := int16(c.Width()) - tile.Size
	maxY := int16(c.Height()) - tile.Size
	for i := range s.actors {
		a := &s.actors[i]
		a.x += a.dx
		a.y += a.dy
		if a.x < 0 || a.x > maxX {
			a.dx = -a.dx
		}
		if a.y < 0 || a.y > maxY {
			a.dy = -a.dy
		}
		// Actors live in screen space; the chip wants world coordinates.
		c.DrawSprite(videochip.DrawBundle{
			X:     a.x + c.ScrollX,
			Y:     a.y + c.ScrollY,
			ID:    a.id,
			Flags: a.flags,
		})
	}
	if c.SpriteOverflow() {
		s.logger.Printf("frame %d: sprite line overflow", c.FrameCount())
	}
}

// Render draws the current frame into dst, which must be at least as large
// as the screen.
func (s *Scene) Render(dst *image.RGBA) {
	p := s.Chip.IterPixels(s.bank)
	for y := 0; p.NextLine(s.line); y++ {
		off := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		for _, c := range s.line {
			rgba := c.RGBA8()
			dst.Pix[off+0] = rgba.R
			dst.Pix[off+1] = rgba.G
			dst.Pix[off+2] = rgba.B
			dst.Pix[off+3] = rgba.A
			off += 4
		}
	}
}

// Frame returns a new image holding the current frame.
func (s *Scene) Frame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(s.Chip.Width()), int(s.Chip.Height())))
	s.Render(img)
	return img
}
