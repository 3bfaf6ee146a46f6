package export

import (
	"image"
	"image/color"

	"github.com/mazznoer/colorgrad"

	"github.com/Faultbox/terragen/internal/terrain"
)

var seaColor = color.NRGBA{24, 58, 110, 255}

// reliefGradient colors land from lowland green to snow.
func reliefGradient() (colorgrad.Gradient, error) {
	return colorgrad.NewGradient().
		Colors(
			color.RGBA{52, 120, 60, 255},
			color.RGBA{150, 170, 80, 255},
			color.RGBA{200, 180, 110, 255},
			color.RGBA{130, 100, 80, 255},
			color.RGBA{245, 245, 245, 255},
		).
		Build()
}

// Preview renders the heightfield with a hypsometric tint: a flat sea
// color at elevation 0 and the relief gradient above it.
func Preview(hf *terrain.HeightField) (*image.NRGBA, error) {
	grad, err := reliefGradient()
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, hf.Width(), hf.Height()))
	for y := 0; y < hf.Height(); y++ {
		for x := 0; x < hf.Width(); x++ {
			v := hf.At(x, y)
			if v == 0 {
				img.SetNRGBA(x, y, seaColor)
				continue
			}
			r, g, b := grad.At(float64(v) / 255).RGB255()
			img.SetNRGBA(x, y, color.NRGBA{r, g, b, 255})
		}
	}
	return img, nil
}

// WritePreview writes Preview as a PNG.
func WritePreview(path string, hf *terrain.HeightField) error {
	img, err := Preview(hf)
	if err != nil {
		return err
	}
	return savePNG(path, img)
}
