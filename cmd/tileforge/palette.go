package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/setanarut/tileforge/palette"
	"github.com/setanarut/tileforge/utils"
)

var (
	paletteColors int
	paletteMethod string
	paletteOut    string
	paletteSwatch int
)

var paletteCmd = &cobra.Command{
	Use:   "palette [image]",
	Short: "Extract the dominant color palette of a tileset",
	Long: `Extract the dominant color palette of a tileset or atlas image
and write it as a horizontal swatch strip, darkest color first.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		method, err := palette.ParseMethod(paletteMethod)
		if err != nil {
			log.Fatal(err)
		}
		img, err := utils.LoadImage(args[0])
		if err != nil {
			log.Fatal(err)
		}

		colors := palette.Extract(img, paletteColors, method)
		if len(colors) == 0 {
			log.Fatalf("no colors extracted from %s", args[0])
		}
		palette.SortByBrightness(colors)

		if err := utils.SavePalette(colors, paletteSwatch, paletteOut); err != nil {
			log.Fatal(err)
		}
		for _, c := range colors {
			fmt.Println(c.Hex())
		}
		fmt.Printf("Palette saved: %s (%d colors, %s)\n", paletteOut, len(colors), method)
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().IntVar(&paletteColors, "colors", 7, "Number of palette colors")
	paletteCmd.Flags().StringVar(&paletteMethod, "method", "dominant", "Extraction method (dominant or kmeans)")
	paletteCmd.Flags().StringVarP(&paletteOut, "out", "o", "palette.png", "Output swatch strip image")
	paletteCmd.Flags().IntVar(&paletteSwatch, "swatch", 64, "Swatch square size in pixels")
}
