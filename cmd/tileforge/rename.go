package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/setanarut/tileforge"
)

var (
	renameColumns  int
	renameTileSize int
)

var renameCmd = &cobra.Command{
	Use:   "rename [folder]",
	Short: "Rename <x>_<y>.png tiles to linear <id>.png tile ids",
	Long: `Rename every <x>_<y>.png in the folder to <id>.png, where
id = y/tilesize*columns + x/tilesize + 1. Files whose name does not
parse are skipped; a colliding target id is overwritten.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opt := tileforge.DefaultRenameOptions()
		opt.Columns = renameColumns
		opt.TileSize = renameTileSize

		res, err := tileforge.Rename(args[0], opt)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Renamed %d tiles (%d skipped)\n", res.Renamed, res.Skipped)
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)

	renameCmd.Flags().IntVar(&renameColumns, "columns", 17, "Tileset width in tiles")
	renameCmd.Flags().IntVar(&renameTileSize, "tilesize", 16, "Tile size in pixels")
}
