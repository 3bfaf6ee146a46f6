package export

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/Faultbox/terragen/pkg/raster"
)

// ReadHeightmap decodes an image file into a grid of gray levels.
func ReadHeightmap(path string) (*raster.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	b := img.Bounds()
	g := raster.NewGrid(b.Dx(), b.Dy())
	if gray, ok := img.(*image.Gray); ok && gray.Stride == b.Dx() {
		copy(g.Pix, gray.Pix)
		return g, nil
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			g.Pix[y*g.W+x] = c.Y
		}
	}
	return g, nil
}

// ReadRaw loads headerless 8-bit samples of a square map.
func ReadRaw(path string) (*raster.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	side := 1
	for side*side < len(data) {
		side++
	}
	if side*side != len(data) {
		return nil, fmt.Errorf("%s: %d bytes is not a square map", path, len(data))
	}
	return &raster.Grid{W: side, H: side, Pix: data}, nil
}
