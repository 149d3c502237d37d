package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/setanarut/tileforge"
)

var (
	bakeTileSize  int
	bakeChunkCols int
	bakeChunkRows int
	bakeMapCols   int
	bakeMapRows   int
	bakeTileID    int
)

var bakeCmd = &cobra.Command{
	Use:   "bake [tiledir] [output]",
	Short: "Bake filler chunk images from one repeated tile",
	Long: `Bake grass-chunk-<cx>-<cy>.png filler images covering the
configured map, each chunk fully filled by repeating the source tile
<tileid>.png from the tile folder. Trailing chunks that overhang the
map are still baked at full chunk size.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		opt := tileforge.DefaultBakeOptions()
		opt.TileSize = bakeTileSize
		opt.ChunkCols = bakeChunkCols
		opt.ChunkRows = bakeChunkRows
		opt.MapCols = bakeMapCols
		opt.MapRows = bakeMapRows
		opt.TileID = bakeTileID

		names, err := tileforge.BakeFromDir(args[0], args[1], opt)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Baked %d chunk images to %s\n", len(names), args[1])
	},
}

func init() {
	rootCmd.AddCommand(bakeCmd)

	bakeCmd.Flags().IntVar(&bakeTileSize, "tilesize", 16, "Tile size in pixels")
	bakeCmd.Flags().IntVar(&bakeChunkCols, "chunk-cols", 16, "Chunk width in tiles")
	bakeCmd.Flags().IntVar(&bakeChunkRows, "chunk-rows", 16, "Chunk height in tiles")
	bakeCmd.Flags().IntVar(&bakeMapCols, "map-cols", 16, "Map width in tiles")
	bakeCmd.Flags().IntVar(&bakeMapRows, "map-rows", 16, "Map height in tiles")
	bakeCmd.Flags().IntVar(&bakeTileID, "tileid", 24, "Tile id of the source tile")
}
