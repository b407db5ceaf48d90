package render

import (
	"image/color"
	"strings"
)

// TextSurface rasterises onto a terminal character grid. Each character holds
// two vertically stacked pixels drawn with half-block glyphs, so a pixel is
// roughly square in most terminal fonts.
type TextSurface struct {
	w, h int
	px   []bool
}

// NewTextSurface allocates a surface of width×height pixels.
func NewTextSurface(width, height int) *TextSurface {
	s := &TextSurface{}
	s.Clear(width, height)
	return s
}

// Size returns the surface dimensions in pixels.
func (s *TextSurface) Size() (int, int) { return s.w, s.h }

func (s *TextSurface) Clear(width, height int) {
	s.w, s.h = max(width, 0), max(height, 0)
	if cap(s.px) >= s.w*s.h {
		s.px = s.px[:s.w*s.h]
		clear(s.px)
		return
	}
	s.px = make([]bool, s.w*s.h)
}

// SetFillColor is a no-op; colour is applied when the lines are styled.
func (s *TextSurface) SetFillColor(color.Color) {}

func (s *TextSurface) FillRect(x, y, w, h int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.w), min(y+h, s.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.px[py*s.w+px] = true
		}
	}
}

// Lit reports whether pixel (x, y) was filled.
func (s *TextSurface) Lit(x, y int) bool {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return false
	}
	return s.px[y*s.w+x]
}

// Lines renders the surface as ceil(h/2) strings of w runes each.
func (s *TextSurface) Lines() []string {
	lines := make([]string, 0, (s.h+1)/2)
	var b strings.Builder
	for y := 0; y < s.h; y += 2 {
		b.Reset()
		for x := 0; x < s.w; x++ {
			top, bottom := s.Lit(x, y), s.Lit(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
