package utils

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestSaveAndLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tile.png")

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	img.SetNRGBA(3, 5, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	if err := SaveImage(img, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := loaded.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("loaded bounds %v", b)
	}
	r, g, _, _ := loaded.At(3, 5).RGBA()
	if r>>8 != 200 || g>>8 != 100 {
		t.Error("pixel lost in round trip")
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadImageNotAnImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(path, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("garbage file should fail to decode")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")

	if err := WriteFileAtomic(path, []byte("{}")); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(path, []byte(`{"tile-1":{}}`)); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"tile-1":{}}` {
		t.Errorf("content %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmp-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestSaveImageAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.png")

	if err := SaveImageAtomic(image.NewRGBA(image.Rect(0, 0, 32, 48)), path); err != nil {
		t.Fatal(err)
	}
	img, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 48 {
		t.Errorf("bounds %v", b)
	}
}

func TestSavePalette(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.png")

	palette := []colorful.Color{{R: 1}, {G: 1}, {B: 1}}
	if err := SavePalette(palette, 8, path); err != nil {
		t.Fatal(err)
	}
	img, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 8 {
		t.Errorf("strip bounds %v, want 24x8", b)
	}
	r, _, _, _ := img.At(2, 2).RGBA()
	if r>>8 != 255 {
		t.Error("first swatch should be the first palette color")
	}

	if err := SavePalette(nil, 8, path); err == nil {
		t.Error("empty palette should fail")
	}
}
