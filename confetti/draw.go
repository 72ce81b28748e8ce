package confetti

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Draw renders every live flake as a rotated, tinted square.
func (e *Emitter) Draw(screen *ebiten.Image) {
	img := pixel()
	var op ebiten.DrawImageOptions
	e.Each(func(f Flake) {
		op.GeoM.Reset()
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(f.Size, f.Size*0.6)
		op.GeoM.Rotate(f.Rotation)
		op.GeoM.Translate(f.X, f.Y)

		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(f.Color)
		op.ColorScale.ScaleAlpha(float32(f.Alpha))
		screen.DrawImage(img, &op)
	})
}
