// Command silhouette samples an image the way snowcat does and writes a PNG preview of the targets
//
//	silhouette [-o preview.png] [-w 1280 -h 800] [-seed N] [image]
//
// Without an image the built-in cat is sampled
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/snowcat/silhouette"
	"github.com/lixenwraith/snowcat/vmath"
)

func main() {
	var (
		outPath       string
		width, height int
		seed          int64
	)
	flag.StringVar(&outPath, "o", "preview.png", "Output PNG path")
	flag.IntVar(&width, "w", 1280, "Surface width in world units")
	flag.IntVar(&height, "h", 800, "Surface height in world units")
	flag.Int64Var(&seed, "seed", 1, "Shuffle seed")
	flag.Parse()

	if width <= 0 || height <= 0 {
		fmt.Fprintf(os.Stderr, "invalid surface %dx%d\n", width, height)
		os.Exit(2)
	}

	source := "built-in cat"
	img := silhouette.Default()
	if flag.NArg() > 0 {
		source = flag.Arg(0)
		var err error
		if img, err = silhouette.Load(source); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
			os.Exit(1)
		}
	}

	targets, err := silhouette.Sample(img, float64(width), float64(height), vmath.NewFastRand(uint64(seed)))
	if errors.Is(err, silhouette.ErrNoShape) {
		fmt.Fprintf(os.Stderr, "%s: no dark opaque pixels to sample\n", source)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sampling: %v\n", err)
		os.Exit(1)
	}

	caption := fmt.Sprintf("%s  %d targets", source, len(targets))
	if err := writePreview(outPath, targets, width, height, caption); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing preview: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(summary(source, outPath, targets, width, height))
}

// writePreview draws the targets around the surface center, white on black, with a caption
func writePreview(path string, targets []vmath.Vec2, width, height int, caption string) error {
	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	cx, cy := float64(width)/2, float64(height)/2

	// Cat bounding crosshair
	dc.SetRGBA(0.3, 0.4, 0.5, 0.6)
	dc.SetLineWidth(1)
	dc.DrawLine(cx, 0, cx, float64(height))
	dc.DrawLine(0, cy, float64(width), cy)
	dc.Stroke()

	dc.SetRGBA(1, 1, 1, 0.9)
	for _, t := range targets {
		dc.DrawRectangle(cx+t.X, cy+t.Y, 3, 3)
	}
	dc.Fill()

	face, err := captionFace(14)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetRGB(0.8, 0.94, 1)
	dc.DrawStringAnchored(caption, 12, float64(height)-12, 0, 0)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func captionFace(points float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse caption font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

// extent returns the bounding box size of the targets
func extent(targets []vmath.Vec2) (w, h float64) {
	if len(targets) == 0 {
		return 0, 0
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range targets {
		minX, maxX = math.Min(minX, t.X), math.Max(maxX, t.X)
		minY, maxY = math.Min(minY, t.Y), math.Max(maxY, t.Y)
	}
	return maxX - minX, maxY - minY
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C8F0FF"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7A8AA0")).Width(9)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3C5A78")).Padding(0, 1)
)

// summary renders the sampling result as a small styled panel
func summary(source, outPath string, targets []vmath.Vec2, width, height int) string {
	w, h := extent(targets)
	rows := []struct{ label, value string }{
		{"source", source},
		{"surface", fmt.Sprintf("%dx%d", width, height)},
		{"targets", fmt.Sprintf("%d", len(targets))},
		{"extent", fmt.Sprintf("%.0fx%.0f", w, h)},
		{"preview", outPath},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("silhouette"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(r.value)
	}
	return boxStyle.Render(b.String())
}
