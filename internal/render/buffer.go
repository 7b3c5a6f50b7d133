package render

import (
	"image"
	"image/color"

	"github.com/san-kum/mandelview/internal/palette"
)

// FrameBuffer holds one packed 0xRRGGBB pixel per screen position in
// row-major order.
type FrameBuffer struct {
	Width, Height int
	Pixels        []uint32
}

func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

func (b *FrameBuffer) At(col, row int) uint32 {
	return b.Pixels[row*b.Width+col]
}

// Fill sets every pixel to p.
func (b *FrameBuffer) Fill(p uint32) {
	for i := range b.Pixels {
		b.Pixels[i] = p
	}
}

// CopyRGBA writes the frame into dst as opaque RGBA colors. dst must hold at
// least Width*Height entries.
func (b *FrameBuffer) CopyRGBA(dst []color.RGBA) {
	for i, p := range b.Pixels {
		r, g, bl := palette.Unpack(p)
		dst[i] = color.RGBA{R: r, G: g, B: bl, A: 255}
	}
}

// Image returns a copy of the frame as an *image.RGBA.
func (b *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, p := range b.Pixels {
		r, g, bl := palette.Unpack(p)
		img.SetRGBA(i%b.Width, i/b.Width, color.RGBA{R: r, G: g, B: bl, A: 255})
	}
	return img
}
