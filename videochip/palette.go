package videochip

import "fmt"

// CycleDir is the step applied by ColorCycle.
type CycleDir int8

const (
	CycleUp   CycleDir = 1
	CycleDown CycleDir = -1
)

func checkColors(colors [ColorsPerTile]ColorID) {
	for i, id := range colors {
		if id >= ColorsPerPalette {
			panic(fmt.Sprintf("videochip: color %d of sub-palette is %d, must be less than %d", i, id, ColorsPerPalette))
		}
	}
}

// ResetPalettes loads DefaultPalette into both global palettes, sets every
// sub-palette to the first four colours and rewinds PushSubpalette.
func (c *Chip) ResetPalettes() {
	c.FGPalette = DefaultPalette
	c.BGPalette = DefaultPalette
	for i := range c.localPalettes {
		c.localPalettes[i] = [ColorsPerTile]ColorID{0, 1, 2, 3}
	}
	c.paletteHead = 0
}

// SetPalette overwrites sub-palette id.
func (c *Chip) SetPalette(id PaletteID, colors [ColorsPerTile]ColorID) {
	checkPalette(id)
	checkColors(colors)
	c.localPalettes[id] = colors
}

// PushSubpalette stores colors in the next unused sub-palette and returns
// its id. It panics once all sixteen have been handed out.
func (c *Chip) PushSubpalette(colors [ColorsPerTile]ColorID) PaletteID {
	if c.paletteHead >= LocalPaletteCount {
		panic(fmt.Sprintf("videochip: all %d local palettes are in use", LocalPaletteCount))
	}
	checkColors(colors)
	id := PaletteID(c.paletteHead)
	c.localPalettes[id] = colors
	c.paletteHead++
	return id
}

func (c *Chip) SubPalette(id PaletteID) [ColorsPerTile]ColorID {
	checkPalette(id)
	return c.localPalettes[id]
}

// ColorCycle steps the colour at slot of a sub-palette by dir, wrapping
// within min..max. Calling it every few frames animates every tile using the
// sub-palette without touching pixel data.
func (c *Chip) ColorCycle(palette PaletteID, slot uint8, min, max ColorID, dir CycleDir) {
	checkPalette(palette)
	if min > max || max >= ColorsPerPalette {
		panic(fmt.Sprintf("videochip: invalid color cycle range %d..%d", min, max))
	}

	entry := &c.localPalettes[palette][slot]
	v := int(*entry) + int(dir)
	switch {
	case v > int(max):
		v = int(min)
	case v < int(min):
		v = int(max)
	}
	*entry = ColorID(v)
}
