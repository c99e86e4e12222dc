package visual

import "image/color"

// color.RGBA definitions for everything drawn on the canvas and overlay
// Alpha is applied at draw time; all entries are opaque
var (
	// General colors for various uses
	RgbBlack = color.RGBA{0, 0, 0, 255}
	RgbWhite = color.RGBA{255, 255, 255, 255}

	// Snow and cat particles
	RgbSnow      = RgbWhite
	RgbKnockback = color.RGBA{255, 200, 200, 255} // Pale red tint while the cat reels from a hit

	// Snowball and charge aura
	RgbIce     = color.RGBA{200, 240, 255, 255} // Projectile glow and charge core
	RgbIceCore = RgbWhite

	// Tree tiers
	RgbFoliage  = color.RGBA{100, 255, 150, 255}
	RgbBerry    = color.RGBA{255, 80, 80, 255}
	RgbOrnament = color.RGBA{255, 230, 50, 255} // Gold bells

	// Overlay text
	RgbText       = RgbWhite
	RgbHitText    = color.RGBA{255, 100, 100, 255}
	RgbEndingGlow = color.RGBA{255, 215, 0, 255} // Title halo
)
