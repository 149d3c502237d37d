package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/setanarut/tileforge"
)

var (
	inspectColumns  int
	inspectTileSize int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [folder]",
	Short: "Report grid geometry and opacity coverage of a tile folder",
	Long: `Scan the integer-named tiles in the folder and report how big
an atlas they would pack into, plus per-tile opacity coverage
statistics. Useful as a sanity check before packing.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opt := tileforge.DefaultInspectOptions()
		opt.Columns = inspectColumns
		opt.TileSize = inspectTileSize

		report, err := tileforge.Inspect(args[0], opt)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Tiles:    %d\n", report.Tiles)
		fmt.Printf("Atlas:    %dx%d px at %d columns\n", report.AtlasWidth, report.AtlasHeight, opt.Columns)
		fmt.Printf("Coverage: mean %.3f, stddev %.3f, min %.3f, max %.3f\n",
			report.CoverageMean, report.CoverageStdDev, report.CoverageMin, report.CoverageMax)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntVar(&inspectColumns, "columns", 16, "Atlas width in tiles")
	inspectCmd.Flags().IntVar(&inspectTileSize, "tilesize", 16, "Tile size in pixels")
}
