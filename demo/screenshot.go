package demo

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Scale returns m enlarged by an integer factor with square pixels.
func Scale(m image.Image, factor int) image.Image {
	if factor <= 1 {
		return m
	}
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)
	return dst
}

// Screenshot runs the scene for frames frames and writes the last one to
// path as a PNG, scaled by factor.
func (s *Scene) Screenshot(path string, frames, factor int) error {
	for i := 0; i < frames; i++ {
		s.Step()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, Scale(s.Frame(), factor)); err != nil {
		f.Close()
		return fmt.Errorf("screenshot: %w", err)
	}
	s.logger.Printf("wrote frame %d to %s", s.Chip.FrameCount(), path)
	return f.Close()
}
