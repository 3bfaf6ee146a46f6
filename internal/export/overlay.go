package export

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/Faultbox/terragen/internal/terrain"
	mathx "github.com/Faultbox/terragen/pkg/math"
	"github.com/Faultbox/terragen/pkg/partition"
)

// Overlay colors.
var (
	kindFill = map[partition.Kind]color.NRGBA{
		partition.Inland:   {60, 160, 60, 60},
		partition.Coastal:  {230, 200, 90, 70},
		partition.Mountain: {150, 90, 50, 90},
	}
	edgeColor  = color.NRGBA{0, 0, 0, 140}
	riverColor = color.NRGBA{40, 110, 230, 255}
	rangeColor = color.NRGBA{120, 40, 20, 255}
	siteColor  = color.NRGBA{255, 255, 255, 255}
)

// Overlay draws the cell partition tinted by site kind, mountain ranges
// and rivers over the grayscale heightfield.
func Overlay(res *terrain.Result) *image.RGBA {
	hf := res.Height
	bounds := image.Rect(0, 0, hf.Width(), hf.Height())
	dest := image.NewRGBA(bounds)

	gray := image.NewGray(bounds)
	copy(gray.Pix, hf.Bytes())
	draw.Draw(dest, bounds, gray, image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetLineWidth(1)

	if p := res.Partition; p != nil {
		for _, s := range p.Sites {
			c := &p.Cells[s.Cell]
			if c.Degenerate() {
				continue
			}
			gc.SetFillColor(kindFill[s.Kind])
			gc.SetStrokeColor(edgeColor)
			gc.BeginPath()
			gc.MoveTo(c.Vertices[0].X, c.Vertices[0].Y)
			for _, v := range c.Vertices[1:] {
				gc.LineTo(v.X, v.Y)
			}
			gc.Close()
			gc.FillStroke()
		}

		gc.SetLineWidth(2)
		gc.SetStrokeColor(rangeColor)
		for _, path := range res.Ranges {
			strokePolyline(gc, p.Centers(path))
		}

		gc.SetFillColor(siteColor)
		for _, s := range p.Sites {
			gc.BeginPath()
			gc.ArcTo(s.Pos.X, s.Pos.Y, 1.5, 1.5, 0, 2*math.Pi)
			gc.Close()
			gc.Fill()
		}
	}

	gc.SetLineWidth(1.5)
	gc.SetStrokeColor(riverColor)
	for _, line := range res.Rivers {
		strokePolyline(gc, line)
	}
	return dest
}

func strokePolyline(gc *draw2dimg.GraphicContext, pts []mathx.Vec2) {
	if len(pts) < 2 {
		return
	}
	gc.BeginPath()
	gc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		gc.LineTo(p.X, p.Y)
	}
	gc.Stroke()
}

// WriteOverlay writes Overlay as a PNG.
func WriteOverlay(path string, res *terrain.Result) error {
	return savePNG(path, Overlay(res))
}
