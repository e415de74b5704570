package panel

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSurface is a Surface backed by an *ebiten.Image. Sub-surfaces are
// ebiten sub-images sharing the parent's pixels, clipped to its bounds.
type ImageSurface struct {
	img *ebiten.Image
}

// NewImageSurface wraps img.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

// Image returns the underlying image. For a sub-surface this is the
// sub-image, whose bounds are in the coordinates of the original image.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// Bounds returns the image bounds. X and Y are the sub-image's offset
// within the original image.
func (s *ImageSurface) Bounds() Rect {
	return RectFromImage(s.img.Bounds())
}

// SubSurface returns the region r, relative to this surface's top-left
// corner. Parts of r outside the surface are clipped away.
func (s *ImageSurface) SubSurface(r Rect) Surface {
	b := s.img.Bounds()
	sub := r.Translate(Point{b.Min.X, b.Min.Y}).Image().Intersect(b)
	if sub.Empty() {
		sub = image.Rectangle{Min: b.Min, Max: b.Min}
	}
	return &ImageSurface{img: s.img.SubImage(sub).(*ebiten.Image)}
}

// Fill fills the surface region with c.
func (s *ImageSurface) Fill(c color.Color) {
	s.img.Fill(c)
}

// FillSurface fills s with c when s is an ImageSurface, and does nothing
// otherwise. Handy in OnPaint hooks that only target ebiten.
func FillSurface(s Surface, c color.Color) {
	if is, ok := s.(*ImageSurface); ok {
		is.Fill(c)
	}
}
