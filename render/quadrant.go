package render

import "image/color"

// QuadrantChars maps 4-bit patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground)
var QuadrantChars = [16]rune{
	' ', // 0000 - empty
	'▘', // 0001 - upper-left
	'▝', // 0010 - upper-right
	'▀', // 0011 - upper half
	'▖', // 0100 - lower-left
	'▌', // 0101 - left half
	'▞', // 0110 - anti-diagonal
	'▛', // 0111 - UL + UR + LL
	'▗', // 1000 - lower-right
	'▚', // 1001 - diagonal
	'▐', // 1010 - right half
	'▜', // 1011 - UL + UR + LR
	'▄', // 1100 - lower half
	'▙', // 1101 - UL + LL + LR
	'▟', // 1110 - UR + LL + LR
	'█', // 1111 - full block
}

// findBestQuadrant finds the optimal quadrant character and fg/bg colors for 4 pixels
// Uses exhaustive search over all 16 patterns to minimize color error
// A uniform lit cell comes out as a full block over black so the background stays dark
func findBestQuadrant(pixels [4]color.RGBA) (rune, color.RGBA, color.RGBA) {
	bestError := int(^uint(0) >> 1) // max int
	bestPattern := 0
	var bestFg, bestBg color.RGBA

	for pattern := 0; pattern < 16; pattern++ {
		fg, bg, err := computePatternColors(pixels, pattern)
		if err < bestError {
			bestError = err
			bestPattern = pattern
			bestFg = fg
			bestBg = bg
		}
	}

	black := color.RGBA{0, 0, 0, 255}
	if bestPattern == 0 && bestBg != black {
		return QuadrantChars[15], bestBg, black
	}
	return QuadrantChars[bestPattern], bestFg, bestBg
}

// computePatternColors computes optimal fg/bg colors for a given bit pattern
// Returns the average color for each group and total squared error
func computePatternColors(pixels [4]color.RGBA, pattern int) (fg, bg color.RGBA, totalError int) {
	var fgR, fgG, fgB, fgCount int
	var bgR, bgG, bgB, bgCount int

	for i := 0; i < 4; i++ {
		if pattern&(1<<i) != 0 {
			fgR += int(pixels[i].R)
			fgG += int(pixels[i].G)
			fgB += int(pixels[i].B)
			fgCount++
		} else {
			bgR += int(pixels[i].R)
			bgG += int(pixels[i].G)
			bgB += int(pixels[i].B)
			bgCount++
		}
	}

	fg.A, bg.A = 255, 255
	if fgCount > 0 {
		fg.R = uint8(fgR / fgCount)
		fg.G = uint8(fgG / fgCount)
		fg.B = uint8(fgB / fgCount)
	}
	if bgCount > 0 {
		bg.R = uint8(bgR / bgCount)
		bg.G = uint8(bgG / bgCount)
		bg.B = uint8(bgB / bgCount)
	}

	for i := 0; i < 4; i++ {
		target := bg
		if pattern&(1<<i) != 0 {
			target = fg
		}
		totalError += colorDistanceSq(pixels[i], target)
	}

	return fg, bg, totalError
}

// colorDistanceSq computes squared Euclidean distance in RGB space
func colorDistanceSq(a, b color.RGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// averageColor is the mean of the 4 pixels, used behind overlay text
func averageColor(pixels [4]color.RGBA) color.RGBA {
	var r, g, b int
	for _, p := range pixels {
		r += int(p.R)
		g += int(p.G)
		b += int(p.B)
	}
	return color.RGBA{uint8(r / 4), uint8(g / 4), uint8(b / 4), 255}
}
