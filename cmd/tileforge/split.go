package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/setanarut/tileforge"
)

var (
	splitTileWidth  int
	splitTileHeight int
	splitSkipEmpty  bool
)

var splitCmd = &cobra.Command{
	Use:   "split [image] [output]",
	Short: "Split a tileset image into separate tile files",
	Long: `Split a tileset image into one PNG per grid cell, each named
<x>_<y>.png after its pixel origin. Partial tiles at the right and
bottom edges are dropped.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		opt := tileforge.DefaultSplitOptions()
		opt.TileWidth = splitTileWidth
		opt.TileHeight = splitTileHeight
		opt.SkipEmpty = splitSkipEmpty

		n, err := tileforge.SplitFile(args[0], args[1], opt)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Done! Saved %d tiles to %s\n", n, args[1])
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().IntVar(&splitTileWidth, "tilewidth", 16, "Tile width in pixels")
	splitCmd.Flags().IntVar(&splitTileHeight, "tileheight", 16, "Tile height in pixels")
	splitCmd.Flags().BoolVar(&splitSkipEmpty, "skip-empty", false, "Skip fully transparent tiles")
}
