package tileforge

import (
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/setanarut/tileforge/utils"
)

func TestInspect(t *testing.T) {
	dir := t.TempDir()

	opaque := solidTile(16, color.NRGBA{R: 200, A: 255})
	half := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			half.SetNRGBA(x, y, color.NRGBA{G: 200, A: 255})
		}
	}
	empty := image.NewNRGBA(image.Rect(0, 0, 16, 16))

	for name, img := range map[string]image.Image{
		"1.png": opaque,
		"2.png": half,
		"3.png": empty,
	} {
		if err := utils.SaveImage(img, filepath.Join(dir, name)); err != nil {
			t.Fatal(err)
		}
	}

	report, err := Inspect(dir, DefaultInspectOptions())
	if err != nil {
		t.Fatal(err)
	}
	if report.Tiles != 3 {
		t.Fatalf("tiles = %d, want 3", report.Tiles)
	}
	if report.AtlasWidth != 256 || report.AtlasHeight != 16 {
		t.Errorf("atlas %dx%d, want 256x16", report.AtlasWidth, report.AtlasHeight)
	}
	if math.Abs(report.CoverageMean-0.5) > 1e-9 {
		t.Errorf("mean coverage %v, want 0.5", report.CoverageMean)
	}
	if math.Abs(report.CoverageStdDev-0.5) > 1e-9 {
		t.Errorf("coverage stddev %v, want 0.5", report.CoverageStdDev)
	}
	if report.CoverageMin != 0 || report.CoverageMax != 1 {
		t.Errorf("min/max %v/%v, want 0/1", report.CoverageMin, report.CoverageMax)
	}
}

func TestInspectSkipsInvalidStems(t *testing.T) {
	dir := t.TempDir()
	if err := utils.SaveImage(solidTile(16, color.NRGBA{R: 10, A: 255}), filepath.Join(dir, "1.png")); err != nil {
		t.Fatal(err)
	}
	if err := utils.SaveImage(solidTile(16, color.NRGBA{G: 10, A: 255}), filepath.Join(dir, "0_16.png")); err != nil {
		t.Fatal(err)
	}

	report, err := Inspect(dir, DefaultInspectOptions())
	if err != nil {
		t.Fatal(err)
	}
	if report.Tiles != 1 {
		t.Errorf("tiles = %d, want only the indexed file", report.Tiles)
	}
	if report.CoverageStdDev != 0 {
		t.Errorf("single tile stddev = %v, want 0", report.CoverageStdDev)
	}
}

func TestInspectEmptyDir(t *testing.T) {
	if _, err := Inspect(t.TempDir(), DefaultInspectOptions()); err == nil {
		t.Error("empty folder should fail")
	}
}
