// Package tileforge implements the batch transforms of the tile
// preparation toolkit: splitting tileset images into tile files,
// renaming coordinate-named tiles to linear ids, packing indexed tiles
// into an atlas with a lookup manifest, and baking filler chunks.
//
// The transforms never call one another; they compose through the
// filename convention defined in package grid.
package tileforge

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/setanarut/tileforge/grid"
	"github.com/setanarut/tileforge/utils"
)

type SplitOptions struct {
	TileWidth  int
	TileHeight int
	// SkipEmpty drops tiles whose every pixel is fully transparent.
	// The check scans the whole alpha channel, not a bounding box guess.
	SkipEmpty bool
}

func DefaultSplitOptions() SplitOptions {
	return SplitOptions{TileWidth: 16, TileHeight: 16}
}

// Tile is one cell cut out of a tileset image, identified by its pixel
// origin in the source.
type Tile struct {
	Origin grid.Coord
	Image  *image.RGBA
}

// Split cuts src into a row-major grid of TileWidth x TileHeight tiles
// (y outer, x inner). Iteration bounds use integer division, so partial
// trailing tiles are dropped.
func Split(src image.Image, opt SplitOptions) []Tile {
	b := src.Bounds()
	cols := b.Dx() / opt.TileWidth
	rows := b.Dy() / opt.TileHeight

	tiles := make([]Tile, 0, cols*rows)
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			ox := tx * opt.TileWidth
			oy := ty * opt.TileHeight
			tile := image.NewRGBA(image.Rect(0, 0, opt.TileWidth, opt.TileHeight))
			draw.Draw(tile, tile.Bounds(), src, b.Min.Add(image.Pt(ox, oy)), draw.Src)
			if opt.SkipEmpty && fullyTransparent(tile) {
				continue
			}
			tiles = append(tiles, Tile{Origin: grid.Coord{X: ox, Y: oy}, Image: tile})
		}
	}
	return tiles
}

func fullyTransparent(img *image.RGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// SplitFile splits the image at imagePath into outDir, one
// `<x>_<y>.png` per kept tile, and returns how many tiles were written.
func SplitFile(imagePath, outDir string, opt SplitOptions) (int, error) {
	src, err := utils.LoadImage(imagePath)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, err
	}

	b := src.Bounds()
	fmt.Printf("Splitting %s into %d tiles...\n", imagePath,
		(b.Dx()/opt.TileWidth)*(b.Dy()/opt.TileHeight))

	tiles := Split(src, opt)
	for _, t := range tiles {
		path := filepath.Join(outDir, grid.CoordFilename(t.Origin))
		if err := utils.SaveImage(t.Image, path); err != nil {
			return 0, err
		}
	}
	return len(tiles), nil
}
