//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface draws onto an offscreen ebiten image that the host blits to the
// screen every frame.
type ImageSurface struct {
	Background color.Color

	img  *ebiten.Image
	fill color.Color
}

// NewImageSurface returns a surface with a black background.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{Background: color.Black, fill: DefaultLiveColor}
}

// Image returns the offscreen image, or nil while the viewport is empty.
func (s *ImageSurface) Image() *ebiten.Image { return s.img }

func (s *ImageSurface) Clear(width, height int) {
	if width <= 0 || height <= 0 {
		if s.img != nil {
			s.img.Deallocate()
			s.img = nil
		}
		return
	}
	if s.img == nil || s.img.Bounds().Dx() != width || s.img.Bounds().Dy() != height {
		if s.img != nil {
			s.img.Deallocate()
		}
		s.img = ebiten.NewImage(width, height)
	}
	s.img.Fill(s.Background)
}

func (s *ImageSurface) SetFillColor(c color.Color) { s.fill = c }

func (s *ImageSurface) FillRect(x, y, w, h int) {
	if s.img == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), s.fill, false)
}
