package videochip

import "tilechip/tile"

const (
	tileShift = 3 // log2(tile.Size)
	tileMask  = tile.Size - 1

	// MaxLines is the tallest supported screen.
	MaxLines = 240
	// SpritesPerLine is how many sprite rows a single scanline can hold.
	SpritesPerLine = 16
)

// span is one sprite row on one scanline. row is already flipped.
type span struct {
	x     int16
	id    TileID
	row   uint8
	flags TileFlags
}

// SpriteGenerator collects the sprites of one frame, sorted by scanline in
// draw order, so the pixel stream only ever looks at the sprites of the line
// it is producing.
type SpriteGenerator struct {
	lines    [MaxLines][SpritesPerLine]span
	counts   [MaxLines]uint8
	sprites  int
	overflow bool
}

// Insert records a sprite already placed in device space. Rows outside
// 0..h-1 and sprites entirely left or right of the screen are skipped.
// A scanline that already holds SpritesPerLine rows drops the new row and
// sets Overflow, so once a line is full the latest sprites go missing
// rather than the earliest.
func (g *SpriteGenerator) Insert(x, y int16, w, h uint16, flags TileFlags, id TileID) {
	if int(x)+tile.Size <= 0 || int(x) >= int(w) {
		return
	}

	inserted := false
	for r := 0; r < tile.Size; r++ {
		line := int(y) + r
		if line < 0 {
			continue
		}
		if line >= int(h) || line >= MaxLines {
			break
		}

		n := g.counts[line]
		if n == SpritesPerLine {
			g.overflow = true
			continue
		}

		row := uint8(r)
		if flags.FlipY() {
			row = tileMask - row
		}
		g.lines[line][n] = span{x: x, id: id, row: row, flags: flags}
		g.counts[line] = n + 1
		inserted = true
	}

	if inserted {
		g.sprites++
	}
}

// Reset forgets every sprite. Only lines that were used are cleared.
func (g *SpriteGenerator) Reset() {
	for line, n := range g.counts {
		if n == 0 {
			continue
		}
		g.lines[line] = [SpritesPerLine]span{}
		g.counts[line] = 0
	}
	g.sprites = 0
	g.overflow = false
}

// Len returns how many sprites left at least one row on screen.
func (g *SpriteGenerator) Len() int {
	return g.sprites
}

// Overflow reports whether a scanline ran out of sprite slots this frame.
func (g *SpriteGenerator) Overflow() bool {
	return g.overflow
}

func (g *SpriteGenerator) line(y uint16) []span {
	return g.lines[y][:g.counts[y]]
}
