package terrain

import (
	"errors"
	"math"
	"testing"

	"github.com/Faultbox/terragen/pkg/raster"
)

func testField() *HeightField {
	g := raster.NewGrid(2, 2)
	copy(g.Pix, []uint8{0, 100, 200, 50})
	return newHeightField(g)
}

func TestHeightFieldSample(t *testing.T) {
	hf := testField()
	tests := []struct {
		u, v float64
		want float64
	}{
		{0, 0, 0},
		{1, 0, 100},
		{0, 1, 200},
		{1, 1, 50},
		{0.5, 0, 50},
		{0.5, 0.5, 87.5},
		{-3, -3, 0},
		{4, 4, 50},
		{math.NaN(), 0, 0},
	}
	for _, tt := range tests {
		if got := hf.Sample(tt.u, tt.v); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Sample(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestHeightFieldAtClamps(t *testing.T) {
	hf := testField()
	if hf.At(-1, -1) != 0 || hf.At(5, 0) != 100 || hf.At(0, 9) != 200 {
		t.Error("At does not clamp to the edges")
	}
}

func TestHeightFieldBytesIsCopy(t *testing.T) {
	hf := testField()
	b := hf.Bytes()
	b[0] = 99
	if hf.At(0, 0) != 0 {
		t.Error("mutating Bytes changed the heightfield")
	}
	g := hf.Grid()
	g.Pix[1] = 7
	if hf.At(1, 0) != 100 {
		t.Error("mutating Grid changed the heightfield")
	}
}

type recordingUploader struct {
	w, h int
	pix  []byte
	err  error
}

func (u *recordingUploader) UploadHeightmap(w, h int, pix []byte) error {
	u.w, u.h, u.pix = w, h, pix
	return u.err
}

func TestHeightFieldUpload(t *testing.T) {
	hf := testField()
	u := &recordingUploader{}
	if err := hf.Upload(u); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if u.w != 2 || u.h != 2 || len(u.pix) != 4 || u.pix[2] != 200 {
		t.Errorf("uploader got %dx%d %v", u.w, u.h, u.pix)
	}

	u.err = errors.New("device lost")
	if err := hf.Upload(u); !errors.Is(err, u.err) {
		t.Errorf("expected uploader error, got %v", err)
	}
}
