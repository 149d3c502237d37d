package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tileforge",
	Short: "Offline utilities for preparing 2D tile-based game art",
	Long: `tileforge prepares 2D tile-based game art in batch:

  split    cut a tileset image into <x>_<y>.png tile files
  rename   rename <x>_<y>.png tiles to linear <id>.png tile ids
  pack     pack <id>.png tiles into an atlas image plus a JSON manifest
  bake     bake filler chunk images from one repeated tile
  palette  extract the dominant color palette of a tileset
  inspect  report grid geometry and opacity coverage of a tile folder

The commands share only the filename convention; run them in sequence
(split -> rename -> pack) to rebuild an atlas from a tileset image.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
