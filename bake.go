package tileforge

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/setanarut/tileforge/grid"
	"github.com/setanarut/tileforge/utils"
)

type BakeOptions struct {
	TileSize int
	// Chunk size in tiles.
	ChunkCols int
	ChunkRows int
	// Nominal map size in tiles. Chunks are baked until the map is
	// covered; an overhanging trailing chunk is still full size.
	MapCols int
	MapRows int
	// TileID names the source tile loaded by BakeFromDir.
	TileID int
}

func DefaultBakeOptions() BakeOptions {
	return BakeOptions{
		TileSize:  16,
		ChunkCols: 16,
		ChunkRows: 16,
		MapCols:   16,
		MapRows:   16,
		TileID:    24,
	}
}

// BakeChunk renders one chunk: a transparent canvas of
// ChunkCols*TileSize x ChunkRows*TileSize px with the source tile
// composited source-over at every cell. A tile whose size differs from
// TileSize is first scaled to fit with nearest neighbor, so oversized
// art still bakes crisply.
func BakeChunk(tile image.Image, opt BakeOptions) *image.RGBA {
	if b := tile.Bounds(); b.Dx() != opt.TileSize || b.Dy() != opt.TileSize {
		scaled := image.NewRGBA(image.Rect(0, 0, opt.TileSize, opt.TileSize))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), tile, b, xdraw.Src, nil)
		tile = scaled
	}

	chunk := image.NewRGBA(image.Rect(0, 0, opt.ChunkCols*opt.TileSize, opt.ChunkRows*opt.TileSize))
	for y := 0; y < opt.ChunkRows; y++ {
		for x := 0; x < opt.ChunkCols; x++ {
			cell := image.Rect(x*opt.TileSize, y*opt.TileSize,
				(x+1)*opt.TileSize, (y+1)*opt.TileSize)
			draw.Draw(chunk, cell, tile, tile.Bounds().Min, draw.Over)
		}
	}
	return chunk
}

// Bake writes every chunk covering the configured map into outDir,
// named `grass-chunk-<cx>-<cy>.png`, and returns the written filenames
// in order. Every chunk is identical, so the pixels are rendered once.
func Bake(tile image.Image, outDir string, opt BakeOptions) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

	chunksX := grid.Rows(opt.MapCols, opt.ChunkCols)
	chunksY := grid.Rows(opt.MapRows, opt.ChunkRows)
	chunk := BakeChunk(tile, opt)

	names := make([]string, 0, chunksX*chunksY)
	for cy := 0; cy < chunksY; cy++ {
		for cx := 0; cx < chunksX; cx++ {
			name := fmt.Sprintf("grass-chunk-%d-%d.png", cx, cy)
			if err := utils.SaveImage(chunk, filepath.Join(outDir, name)); err != nil {
				return names, err
			}
			names = append(names, name)
		}
	}
	return names, nil
}

// BakeFromDir loads `<TileID>.png` from tileDir and bakes it into
// outDir.
func BakeFromDir(tileDir, outDir string, opt BakeOptions) ([]string, error) {
	tile, err := utils.LoadImage(filepath.Join(tileDir, grid.IndexFilename(opt.TileID)))
	if err != nil {
		return nil, err
	}
	return Bake(tile, outDir, opt)
}
