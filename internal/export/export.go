// Package export writes generated terrain to disk: a grayscale heightmap,
// raw samples, a colored preview, a debug overlay and run metadata.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/terrain"
)

// Writer places artifacts of one run in a directory under a shared stem.
type Writer struct {
	outputDir string
	name      string
	stamp     string
}

// NewWriter creates a writer. An empty name becomes a timestamped
// "terrain_<time>" stem.
func NewWriter(outputDir, name string) *Writer {
	w := &Writer{outputDir: outputDir, name: name}
	if name == "" {
		w.stamp = time.Now().Format("2006-01-02_15-04-05")
	}
	return w
}

// Path returns the artifact path for a suffix such as ".png" or
// "_preview.png".
func (w *Writer) Path(suffix string) string {
	stem := w.name
	if stem == "" {
		stem = fmt.Sprintf("terrain_%s", w.stamp)
	}
	if w.outputDir != "" {
		return filepath.Join(w.outputDir, stem+suffix)
	}
	return stem + suffix
}

// WriteAll writes every artifact enabled in out and returns their paths.
func (w *Writer) WriteAll(res *terrain.Result, out config.OutputConfig) ([]string, error) {
	// Create output directory if needed
	if w.outputDir != "" {
		if err := os.MkdirAll(w.outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output dir: %w", err)
		}
	}

	type job struct {
		enabled bool
		suffix  string
		write   func(string) error
	}
	jobs := []job{
		{out.PNG, ".png", func(p string) error { return WritePNG(p, res.Height) }},
		{out.Raw, ".r8", func(p string) error { return WriteRaw(p, res.Height) }},
		{out.Preview, "_preview.png", func(p string) error { return WritePreview(p, res.Height) }},
		{out.Overlay, "_overlay.png", func(p string) error { return WriteOverlay(p, res) }},
	}

	var written []string
	for _, j := range jobs {
		if !j.enabled {
			continue
		}
		path := w.Path(j.suffix)
		if err := j.write(path); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}

	// Metadata goes last so it can list the other files.
	if out.Metadata {
		path := w.Path(".yaml")
		if err := WriteMetadata(path, res, written); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// WritePNG writes the heightfield as an 8-bit grayscale PNG.
func WritePNG(path string, hf *terrain.HeightField) error {
	img := image.NewGray(image.Rect(0, 0, hf.Width(), hf.Height()))
	copy(img.Pix, hf.Bytes())
	return savePNG(path, img)
}

// WriteRaw writes the samples row-major with no header.
func WriteRaw(path string, hf *terrain.HeightField) error {
	return os.WriteFile(path, hf.Bytes(), 0644)
}

func savePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}
