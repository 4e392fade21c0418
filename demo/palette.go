package demo

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"

	"tilechip/videochip"
)

// ReadPalette decodes a JSON array of up to sixteen [r, g, b] triples with
// 8 bit channels. Missing entries keep their DefaultPalette colour.
func ReadPalette(r io.Reader) ([videochip.ColorsPerPalette]videochip.Color12, error) {
	palette := videochip.DefaultPalette

	var result [][3]uint8
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return palette, fmt.Errorf("palette: %w", err)
	}
	if len(result) > len(palette) {
		return palette, fmt.Errorf("palette: %d colours, at most %d allowed", len(result), len(palette))
	}

	for i, c := range result {
		palette[i] = videochip.FromColor(color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xFF})
	}
	return palette, nil
}

// LoadPalette reads a palette file written for ReadPalette.
func LoadPalette(path string) ([videochip.ColorsPerPalette]videochip.Color12, error) {
	f, err := os.Open(path)
	if err != nil {
		return videochip.DefaultPalette, err
	}
	defer f.Close()

	p, err := ReadPalette(f)
	if err != nil {
		return p, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
