package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Palette holds every color the scene renderer needs.
type Palette struct {
	Sky        color.RGBA
	Ground     color.RGBA
	GroundEdge color.RGBA
	Player     color.RGBA
	Opponent   color.RGBA
	Wreck      color.RGBA
	Projectile color.RGBA
	Trail      color.RGBA
	Impact     color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with alpha a, keeping the channels premultiplied.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	if c.A == 0 {
		return color.RGBA{}
	}
	k := float64(a) / float64(c.A)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: a,
	}
}

func applyColor(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
