package tileforge

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/setanarut/tileforge/grid"
	"github.com/setanarut/tileforge/utils"
)

type InspectOptions struct {
	Columns  int
	TileSize int
}

func DefaultInspectOptions() InspectOptions {
	return InspectOptions{Columns: 16, TileSize: 16}
}

// InspectReport summarizes an indexed tile folder before packing.
// Coverage is the fraction of non-transparent pixels per tile.
type InspectReport struct {
	Tiles       int
	AtlasWidth  int
	AtlasHeight int

	CoverageMean   float64
	CoverageStdDev float64
	CoverageMin    float64
	CoverageMax    float64
}

// Inspect scans the integer-named tiles in dir and reports the atlas
// geometry they would pack into plus opacity-coverage statistics.
// Read-only; files with non-integer stems are skipped with a diagnostic
// since nothing is being packed yet.
func Inspect(dir string, opt InspectOptions) (*InspectReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var coverage []float64
	for _, e := range entries {
		if e.IsDir() || !grid.IsPNG(e.Name()) {
			continue
		}
		if _, err := grid.ParseIndexStem(grid.Stem(e.Name())); err != nil {
			log.Printf("skipping %s (invalid name)", e.Name())
			continue
		}
		img, err := utils.LoadImage(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		opaque := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
					opaque++
				}
			}
		}
		coverage = append(coverage, float64(opaque)/float64(b.Dx()*b.Dy()))
	}

	if len(coverage) == 0 {
		return nil, fmt.Errorf("inspect %s: no indexed tiles found", dir)
	}

	bounds := grid.AtlasBounds(len(coverage), opt.TileSize, opt.Columns)
	report := &InspectReport{
		Tiles:        len(coverage),
		AtlasWidth:   bounds.Dx(),
		AtlasHeight:  bounds.Dy(),
		CoverageMean: stat.Mean(coverage, nil),
		CoverageMin:  slices.Min(coverage),
		CoverageMax:  slices.Max(coverage),
	}
	if len(coverage) > 1 {
		report.CoverageStdDev = stat.StdDev(coverage, nil)
	}
	return report, nil
}
