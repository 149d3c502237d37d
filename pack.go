package tileforge

import (
	"cmp"
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/anthonynsimon/bild/transform"

	"github.com/setanarut/tileforge/grid"
	"github.com/setanarut/tileforge/utils"
)

type PackOptions struct {
	// Columns is the atlas width in tiles.
	Columns  int
	TileSize int
	// OutImage and OutManifest are the atlas and manifest destinations.
	OutImage    string
	OutManifest string
	// PreviewScale > 1 additionally writes a nearest-neighbor upscale of
	// the atlas next to OutImage, for eyeballing pixel art.
	PreviewScale int
}

func DefaultPackOptions() PackOptions {
	return PackOptions{
		Columns:     16,
		TileSize:    16,
		OutImage:    "tileset.png",
		OutManifest: "tileset.json",
	}
}

// ManifestRect locates one tile inside the packed atlas.
type ManifestRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Atlas is a packed tileset image plus its coordinate-lookup manifest,
// held in memory until Save publishes both.
type Atlas struct {
	Image    *image.RGBA
	Manifest map[string]ManifestRect
	Tiles    int
}

// Pack composes the integer-named tiles in dir into a single atlas,
// sorted ascending by tile id, placed row-major at Columns tiles per
// row. A stem that does not parse as an integer fails the whole run:
// unlike a renamer skip, skipping here would shift every later tile one
// cell and silently corrupt the atlas and manifest.
func Pack(dir string, opt PackOptions) (*Atlas, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type tileFile struct {
		id   int
		name string
	}
	var files []tileFile
	for _, e := range entries {
		if e.IsDir() || !grid.IsPNG(e.Name()) {
			continue
		}
		id, err := grid.ParseIndexStem(grid.Stem(e.Name()))
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", dir, err)
		}
		files = append(files, tileFile{id: id, name: e.Name()})
	}
	slices.SortFunc(files, func(a, b tileFile) int { return cmp.Compare(a.id, b.id) })

	atlas := image.NewRGBA(grid.AtlasBounds(len(files), opt.TileSize, opt.Columns))
	manifest := make(map[string]ManifestRect, len(files))
	for i, f := range files {
		img, err := utils.LoadImage(filepath.Join(dir, f.name))
		if err != nil {
			return nil, err
		}
		cell := grid.CellRect(i, opt.TileSize, opt.Columns)
		draw.Draw(atlas, cell, img, img.Bounds().Min, draw.Over)
		manifest[fmt.Sprintf("tile-%d", f.id)] = ManifestRect{
			X:      cell.Min.X,
			Y:      cell.Min.Y,
			Width:  opt.TileSize,
			Height: opt.TileSize,
		}
	}

	return &Atlas{Image: atlas, Manifest: manifest, Tiles: len(files)}, nil
}

// Save publishes the atlas image and manifest. Both go through a temp
// file renamed into place, so an interrupted run never leaves a
// half-written atlas or manifest behind.
func (a *Atlas) Save(opt PackOptions) error {
	if err := utils.SaveImageAtomic(a.Image, opt.OutImage); err != nil {
		return err
	}

	buf, err := json.MarshalIndent(a.Manifest, "", "  ")
	if err != nil {
		return err
	}
	if err := utils.WriteFileAtomic(opt.OutManifest, append(buf, '\n')); err != nil {
		return err
	}

	if opt.PreviewScale > 1 {
		b := a.Image.Bounds()
		preview := transform.Resize(a.Image,
			b.Dx()*opt.PreviewScale, b.Dy()*opt.PreviewScale, transform.NearestNeighbor)
		if err := utils.SaveImage(preview, PreviewPath(opt.OutImage)); err != nil {
			return err
		}
	}
	return nil
}

// PreviewPath derives the preview filename from the atlas path:
// `tileset.png` becomes `tileset-preview.png`.
func PreviewPath(outImage string) string {
	ext := filepath.Ext(outImage)
	return strings.TrimSuffix(outImage, ext) + "-preview" + ext
}
