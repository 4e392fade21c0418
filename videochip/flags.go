package videochip

import "fmt"

// Field is a bit range inside a flags byte.
type Field struct {
	Index uint8
	Size  uint8
}

func (f Field) mask() uint8 {
	return (1<<f.Size - 1) << f.Index
}

// Get extracts the field from v.
func (f Field) Get(v uint8) uint8 {
	return v & f.mask() >> f.Index
}

// Set returns v with the field replaced by value. Bits of value that do not
// fit the field are dropped.
func (f Field) Set(v, value uint8) uint8 {
	return v&^f.mask() | value<<f.Index&f.mask()
}

var (
	flipXField   = Field{0, 1}
	flipYField   = Field{1, 1}
	fgField      = Field{3, 1}
	paletteField = Field{4, 4}
)

// TileID identifies a tile in a caller owned bank.
type TileID uint16

// NoTile marks an empty background cell. It never reaches the tile bank.
const NoTile TileID = 0xFFFF

// PaletteID selects one of the local sub-palettes.
type PaletteID uint8

func checkPalette(id PaletteID) {
	if id >= LocalPaletteCount {
		panic(fmt.Sprintf("videochip: invalid local palette %d, must be less than %d", id, LocalPaletteCount))
	}
}

// TileFlags holds the per tile attributes shared by sprites and background cells:
//
//	bit 0    flip horizontally
//	bit 1    flip vertically
//	bit 3    foreground: sprite pixels cover opaque background pixels
//	bits 4-7 local palette
type TileFlags uint8

const (
	FlagFlipX TileFlags = 1 << 0
	FlagFlipY TileFlags = 1 << 1
	FlagFG    TileFlags = 1 << 3
)

// Flags builds a TileFlags value from a palette and any of the Flag bits.
func Flags(palette PaletteID, bits ...TileFlags) TileFlags {
	checkPalette(palette)
	f := TileFlags(0).WithPalette(palette)
	for _, b := range bits {
		f |= b
	}
	return f
}

func (f TileFlags) FlipX() bool { return flipXField.Get(uint8(f)) != 0 }

func (f TileFlags) FlipY() bool { return flipYField.Get(uint8(f)) != 0 }

func (f TileFlags) FG() bool { return fgField.Get(uint8(f)) != 0 }

func (f TileFlags) Palette() PaletteID { return PaletteID(paletteField.Get(uint8(f))) }

func (f TileFlags) WithPalette(id PaletteID) TileFlags {
	return TileFlags(paletteField.Set(uint8(f), uint8(id)))
}

func (f TileFlags) String() string {
	return fmt.Sprintf("TileFlags{flipX: %t, flipY: %t, fg: %t, palette: %d}", f.FlipX(), f.FlipY(), f.FG(), f.Palette())
}
