package render

import (
	"image"
	"image/color"
	"image/draw"
)

// RGBASurface rasterises onto an in-memory RGBA image.
type RGBASurface struct {
	Background color.Color

	img  *image.RGBA
	fill *image.Uniform
}

// NewRGBASurface allocates a transparent surface of the given size.
func NewRGBASurface(width, height int) *RGBASurface {
	s := &RGBASurface{Background: color.Transparent, fill: image.NewUniform(DefaultLiveColor)}
	s.Clear(width, height)
	return s
}

// Image exposes the backing image.
func (s *RGBASurface) Image() *image.RGBA { return s.img }

// Clear resizes the image if needed and paints it with Background.
func (s *RGBASurface) Clear(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.img == nil || s.img.Bounds().Dx() != width || s.img.Bounds().Dy() != height {
		s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	bg := s.Background
	if bg == nil {
		bg = color.Transparent
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// SetFillColor sets the colour used by FillRect.
func (s *RGBASurface) SetFillColor(c color.Color) {
	s.fill = image.NewUniform(c)
}

// FillRect paints a rectangle clipped to the image. Empty rectangles draw nothing.
func (s *RGBASurface) FillRect(x, y, w, h int) {
	if s.img == nil || s.fill == nil || w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	draw.Draw(s.img, r, s.fill, image.Point{}, draw.Src)
}
