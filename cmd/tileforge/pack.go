package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/setanarut/tileforge"
	"github.com/setanarut/tileforge/grid"
)

var (
	packColumns      int
	packTileSize     int
	packOutImage     string
	packOutManifest  string
	packPreviewScale int
)

var packCmd = &cobra.Command{
	Use:   "pack [folder]",
	Short: "Pack <id>.png tiles into an atlas image and a JSON manifest",
	Long: `Pack the integer-named tiles in the folder into a single atlas
image, sorted ascending by tile id, plus a JSON manifest mapping
"tile-<id>" to each tile's pixel rectangle. A file whose name is not an
integer fails the whole run, since skipping it would shift every later
tile's atlas cell.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opt := tileforge.DefaultPackOptions()
		opt.Columns = packColumns
		opt.TileSize = packTileSize
		opt.OutImage = packOutImage
		opt.OutManifest = packOutManifest
		opt.PreviewScale = packPreviewScale

		atlas, err := tileforge.Pack(args[0], opt)
		if err != nil {
			log.Fatal(err)
		}
		if err := atlas.Save(opt); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Atlas created: %s\n", opt.OutImage)
		fmt.Printf("Manifest saved: %s\n", opt.OutManifest)
		fmt.Printf("Tiles packed: %d (%dx%d)\n", atlas.Tiles, opt.Columns, grid.Rows(atlas.Tiles, opt.Columns))
	},
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().IntVar(&packColumns, "columns", 16, "Atlas width in tiles")
	packCmd.Flags().IntVar(&packTileSize, "tilesize", 16, "Tile size in pixels")
	packCmd.Flags().StringVarP(&packOutImage, "out", "o", "tileset.png", "Output atlas image")
	packCmd.Flags().StringVar(&packOutManifest, "manifest", "tileset.json", "Output manifest file")
	packCmd.Flags().IntVar(&packPreviewScale, "preview", 0, "Also write a nearest-neighbor preview scaled by this factor")
}
