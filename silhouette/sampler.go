// Package silhouette converts a dark-on-light raster into the sparse offset points
// the cat's structural particles are pinned to
package silhouette

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/vmath"
)

// ErrNoShape is returned when no pixel qualifies as part of the silhouette
var ErrNoShape = errors.New("silhouette: image contains no dark opaque pixels")

// Sample fits img into the working canvas and returns shuffled offsets from the shape's
// bounding-box center, scaled so the longer side spans SilhouetteScreenFraction of
// min(width, height). At most SilhouetteMaxTargets points are returned
func Sample(img image.Image, width, height float64, rng vmath.Random) ([]vmath.Vec2, error) {
	canvas := Fit(img, parameter.SilhouetteCanvas)
	return SampleCanvas(canvas, width, height, rng)
}

// SampleCanvas scans an already fitted canvas
func SampleCanvas(canvas *image.NRGBA, width, height float64, rng vmath.Random) ([]vmath.Vec2, error) {
	b := canvas.Bounds()
	stride := parameter.SilhouetteStride

	// Pass 1: bounding box
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y
	found := false
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			if !isShape(canvas, x, y) {
				continue
			}
			found = true
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if !found {
		return nil, ErrNoShape
	}

	shapeW := float64(maxX - minX)
	shapeH := float64(maxY - minY)
	centerX := float64(minX) + shapeW/2
	centerY := float64(minY) + shapeH/2

	// Single row/column shapes have a zero side; a point-like shape keeps unit scale
	extent := math.Max(shapeW, shapeH)
	if extent == 0 {
		extent = 1
	}
	scale := math.Min(width, height) * parameter.SilhouetteScreenFraction / extent

	// Pass 2: emit offsets
	points := make([]vmath.Vec2, 0, 256)
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			if isShape(canvas, x, y) {
				points = append(points, vmath.V2((float64(x)-centerX)*scale, (float64(y)-centerY)*scale))
			}
		}
	}

	vmath.Shuffle(rng, len(points), func(i, j int) { points[i], points[j] = points[j], points[i] })
	if len(points) > parameter.SilhouetteMaxTargets {
		points = points[:parameter.SilhouetteMaxTargets]
	}
	return points, nil
}

// isShape reports dark, opaque pixels (non-premultiplied channels)
func isShape(canvas *image.NRGBA, x, y int) bool {
	i := canvas.PixOffset(x, y)
	return canvas.Pix[i+3] > parameter.SilhouetteAlphaMin && canvas.Pix[i] < parameter.SilhouetteRedMax
}

// Fit scales img into a size×size transparent canvas, preserving aspect ratio and centering it
func Fit(img image.Image, size int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	sb := img.Bounds()
	srcW, srcH := sb.Dx(), sb.Dy()
	if srcW == 0 || srcH == 0 {
		return canvas
	}

	if srcW == size && srcH == size {
		draw.Copy(canvas, image.Point{}, img, sb, draw.Src, nil)
		return canvas
	}

	ratio := math.Min(float64(size)/float64(srcW), float64(size)/float64(srcH))
	newW := int(math.Round(float64(srcW) * ratio))
	newH := int(math.Round(float64(srcH) * ratio))
	offX := (size - newW) / 2
	offY := (size - newH) / 2

	dr := image.Rect(offX, offY, offX+newW, offY+newH)
	draw.CatmullRom.Scale(canvas, dr, img, sb, draw.Over, nil)
	return canvas
}
