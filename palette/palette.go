// Package palette extracts the dominant color palette of a tileset or
// atlas image, for authoring filler art that matches an existing set.
package palette

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

type Method int

const (
	MethodDominant Method = iota
	MethodKMeans
)

func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	default:
		return "dominant"
	}
}

// ParseMethod maps a CLI flag value to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "dominant":
		return MethodDominant, nil
	case "kmeans":
		return MethodKMeans, nil
	}
	return 0, fmt.Errorf("unknown palette method %q (want dominant or kmeans)", s)
}

type weightedColor struct {
	col    colorful.Color
	weight float64
}

// Extract returns up to k palette colors from img using the given
// method. The kmeans method falls back to dominant when clustering
// yields nothing usable.
func Extract(img image.Image, k int, method Method) []colorful.Color {
	switch method {
	case MethodKMeans:
		p := extractKMeans(img, k)
		if len(p) != 0 {
			return p
		}
		log.Println("palette warning: kmeans returned empty palette, falling back to dominant")
		return extractDominant(img, k)
	default:
		return extractDominant(img, k)
	}
}

// SortByBrightness orders colors darkest to brightest by linear-RGB
// luminance, so the first entry works as a background color.
func SortByBrightness(palette []colorful.Color) {
	slices.SortFunc(palette, func(a, b colorful.Color) int {
		ri, gi, bi := a.LinearRgb()
		rj, gj, bj := b.LinearRgb()
		yi := 0.2126*ri + 0.7152*gi + 0.0722*bi
		yj := 0.2126*rj + 0.7152*gj + 0.0722*bj
		if yi < yj {
			return -1
		}
		if yi > yj {
			return 1
		}
		return 0
	})
}

func extractDominant(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}

	nCandidates := max(24, k*8)
	candidates := dominantcolor.FindWeight(img, nCandidates)
	if len(candidates) == 0 {
		// Last resort: avoid an empty palette breaking callers.
		candidates = append(candidates, dominantcolor.Color{
			RGBA:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
			Weight: 1.0,
		})
	}

	weighted := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		w := c.Weight
		if w <= 0 {
			w = 1e-6
		}
		weighted = append(weighted, weightedColor{col: col.Clamped(), weight: w})
	}
	return selectDiverse(weighted, k)
}

func extractKMeans(img image.Image, k int) []colorful.Color {
	if k <= 0 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}

	// Subsample to keep kmeans tractable on large atlases; fully
	// transparent pixels carry no color and are excluded.
	maxSamples := 12000
	step := 1
	if b.Dx()*b.Dy() > maxSamples {
		step = int(math.Sqrt(float64(b.Dx()*b.Dy())/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(b.Dx()*b.Dy(), maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	workK := min(max(k*4, k+2), len(dataset))
	if workK <= 0 {
		return nil
	}
	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}

	// Populous clusters first so dominant colors win ties.
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	weighted := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		w := float64(len(c.Observations))
		if w <= 0 {
			w = 1e-6
		}
		weighted = append(weighted, weightedColor{col: col, weight: w})
	}
	return selectDiverse(weighted, k)
}

// selectDiverse greedily picks k colors, balancing Lab-space distance
// from the already-picked set against candidate weight, seeded with the
// strongest candidate.
func selectDiverse(cands []weightedColor, k int) []colorful.Color {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	if k > len(cands) {
		k = len(cands)
	}

	type item struct {
		col colorful.Color
		lab [3]float64
		w   float64
	}
	items := make([]item, len(cands))
	maxW := 0.0
	for i, c := range cands {
		l, a, b := c.col.Lab()
		items[i] = item{col: c.col, lab: [3]float64{l, a, b}, w: c.weight}
		if c.weight > maxW {
			maxW = c.weight
		}
	}
	if maxW <= 0 {
		maxW = 1.0
	}

	picked := make([]int, 0, k)
	taken := make([]bool, len(items))

	seed := 0
	for i := 1; i < len(items); i++ {
		if items[i].w > items[seed].w {
			seed = i
		}
	}
	picked = append(picked, seed)
	taken[seed] = true

	for len(picked) < k {
		bestIdx := -1
		bestScore := -1.0
		for i := range items {
			if taken[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, p := range picked {
				d0 := items[i].lab[0] - items[p].lab[0]
				d1 := items[i].lab[1] - items[p].lab[1]
				d2 := items[i].lab[2] - items[p].lab[2]
				d := d0*d0 + d1*d1 + d2*d2
				if d < minD2 {
					minD2 = d
				}
			}
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(items[i].w/maxW))
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		taken[bestIdx] = true
		picked = append(picked, bestIdx)
	}

	out := make([]colorful.Color, 0, len(picked))
	for _, idx := range picked {
		out = append(out, items[idx].col)
	}
	return out
}
