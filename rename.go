package tileforge

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/setanarut/tileforge/grid"
)

type RenameOptions struct {
	// Columns is the tileset width in tiles.
	Columns  int
	TileSize int
}

func DefaultRenameOptions() RenameOptions {
	return RenameOptions{Columns: 17, TileSize: 16}
}

type RenameResult struct {
	Renamed int
	Skipped int
}

// Rename maps every `<x>_<y>.png` in dir to its `<id>.png` tile-index
// name, in place. A stem that does not parse as two integers is skipped
// with a diagnostic and the batch continues. A target name that already
// exists is overwritten without warning; two sources mapping to the same
// id lose data, so run this on a freshly split folder.
func Rename(dir string, opt RenameOptions) (RenameResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return RenameResult{}, err
	}

	var res RenameResult
	for _, e := range entries {
		if e.IsDir() || !grid.IsPNG(e.Name()) {
			continue
		}
		c, err := grid.ParseCoordStem(grid.Stem(e.Name()))
		if err != nil {
			log.Printf("skipping %s (invalid name)", e.Name())
			res.Skipped++
			continue
		}
		id := grid.Index(c, opt.TileSize, opt.Columns)
		target := grid.IndexFilename(id)
		if err := os.Rename(filepath.Join(dir, e.Name()), filepath.Join(dir, target)); err != nil {
			return res, err
		}
		fmt.Printf("%s -> %s\n", e.Name(), target)
		res.Renamed++
	}
	return res, nil
}
