package tileforge

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/setanarut/tileforge/utils"
)

func solidTile(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestBakeChunkFullyCovered(t *testing.T) {
	grass := color.NRGBA{R: 40, G: 160, B: 60, A: 255}
	chunk := BakeChunk(solidTile(16, grass), DefaultBakeOptions())

	if b := chunk.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Fatalf("chunk bounds %v, want 256x256", b)
	}
	for y := 0; y < 256; y += 7 {
		for x := 0; x < 256; x += 7 {
			if !sameColor(t, chunk.At(x, y), grass) {
				t.Fatalf("gap at (%d,%d)", x, y)
			}
		}
	}
}

func TestBakeChunkScalesMismatchedTile(t *testing.T) {
	grass := color.NRGBA{R: 40, G: 160, B: 60, A: 255}
	chunk := BakeChunk(solidTile(8, grass), DefaultBakeOptions())

	if b := chunk.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Fatalf("chunk bounds %v, want 256x256", b)
	}
	if _, _, _, a := chunk.At(255, 255).RGBA(); a == 0 {
		t.Error("scaled tile should still cover the whole chunk")
	}
}

func TestBakeSingleChunk(t *testing.T) {
	out := t.TempDir()
	names, err := Bake(solidTile(16, color.NRGBA{G: 200, A: 255}), out, DefaultBakeOptions())
	if err != nil {
		t.Fatal(err)
	}
	// Map 16x16 with 16-tile chunks: exactly one chunk.
	if len(names) != 1 || names[0] != "grass-chunk-0-0.png" {
		t.Fatalf("names = %v", names)
	}
	img, err := utils.LoadImage(filepath.Join(out, names[0]))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Errorf("chunk file %v, want 256x256", b)
	}
}

func TestBakeOverhangingChunks(t *testing.T) {
	opt := DefaultBakeOptions()
	opt.MapCols = 40
	opt.MapRows = 20

	out := t.TempDir()
	names, err := Bake(solidTile(16, color.NRGBA{B: 120, A: 255}), out, opt)
	if err != nil {
		t.Fatal(err)
	}
	// ceil(40/16) x ceil(20/16) = 3x2 chunks, all full size.
	if len(names) != 6 {
		t.Fatalf("baked %d chunks, want 6", len(names))
	}
	for _, name := range []string{
		"grass-chunk-0-0.png", "grass-chunk-2-0.png", "grass-chunk-1-1.png", "grass-chunk-2-1.png",
	} {
		img, err := utils.LoadImage(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
			t.Errorf("%s is %v, want full 256x256 chunk", name, b)
		}
	}
}

func TestBakeFromDir(t *testing.T) {
	tileDir := t.TempDir()
	out := t.TempDir()

	opt := DefaultBakeOptions()
	if _, err := BakeFromDir(tileDir, out, opt); err == nil {
		t.Fatal("missing source tile should fail")
	}

	if err := utils.SaveImage(solidTile(16, color.NRGBA{R: 90, G: 200, B: 90, A: 255}), filepath.Join(tileDir, "24.png")); err != nil {
		t.Fatal(err)
	}
	names, err := BakeFromDir(tileDir, out, opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 {
		t.Fatalf("baked %d chunks, want 1", len(names))
	}
	if _, err := os.Stat(filepath.Join(out, "grass-chunk-0-0.png")); err != nil {
		t.Error(err)
	}
}
