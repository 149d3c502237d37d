// Package grid defines the tile coordinate system shared by every
// transform in the toolkit: pixel origins, 1-based row-major tile
// indices, atlas cell geometry and the filename convention that carries
// them between runs (`<x>_<y>.png` before indexing, `<id>.png` after).
package grid

import (
	"fmt"
	"image"
	"path/filepath"
	"strconv"
	"strings"
)

// Coord is the top-left pixel origin of a tile inside its source image.
// Both offsets are multiples of the tile size.
type Coord struct {
	X, Y int
}

// Index converts a tile origin to its 1-based row-major tile id for a
// tileset that is columns tiles wide.
func Index(c Coord, tileSize, columns int) int {
	return c.Y/tileSize*columns + c.X/tileSize + 1
}

// CoordOf is the inverse of Index.
func CoordOf(index, tileSize, columns int) Coord {
	i := index - 1
	return Coord{X: i % columns * tileSize, Y: i / columns * tileSize}
}

// Rows returns how many rows a fixed-column grid needs for count tiles.
func Rows(count, columns int) int {
	return (count + columns - 1) / columns
}

// AtlasBounds is the exact canvas for count tiles packed at columns
// tiles per row.
func AtlasBounds(count, tileSize, columns int) image.Rectangle {
	return image.Rect(0, 0, columns*tileSize, Rows(count, columns)*tileSize)
}

// CellRect returns the pixel rectangle of the tile at 0-based packing
// position i: origin (i%columns*tileSize, i/columns*tileSize).
func CellRect(i, tileSize, columns int) image.Rectangle {
	x := i % columns * tileSize
	y := i / columns * tileSize
	return image.Rect(x, y, x+tileSize, y+tileSize)
}

// IsPNG reports whether name has a .png extension, case-insensitive.
func IsPNG(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".png")
}

// Stem strips the extension from a filename.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ParseCoordStem parses a `<x>_<y>` filename stem.
func ParseCoordStem(stem string) (Coord, error) {
	xs, ys, ok := strings.Cut(stem, "_")
	if !ok {
		return Coord{}, fmt.Errorf("stem %q is not <x>_<y>", stem)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Coord{}, fmt.Errorf("stem %q is not <x>_<y>", stem)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Coord{}, fmt.Errorf("stem %q is not <x>_<y>", stem)
	}
	return Coord{X: x, Y: y}, nil
}

// ParseIndexStem parses a `<id>` filename stem.
func ParseIndexStem(stem string) (int, error) {
	id, err := strconv.Atoi(stem)
	if err != nil {
		return 0, fmt.Errorf("stem %q is not an integer tile id", stem)
	}
	return id, nil
}

// CoordFilename is the pre-indexing filename for a tile origin.
func CoordFilename(c Coord) string {
	return fmt.Sprintf("%d_%d.png", c.X, c.Y)
}

// IndexFilename is the post-indexing filename for a tile id.
func IndexFilename(id int) string {
	return fmt.Sprintf("%d.png", id)
}
