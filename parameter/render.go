package parameter

import "time"

// Canvas geometry: each terminal cell is a 2x2 block of sub-pixels
const (
	SubPixelWidth  = CellWidth / 2
	SubPixelHeight = CellHeight / 2

	// TrailFade is the opacity of the black wash applied every frame
	TrailFade = 0.4
)

// Particle appearance
const (
	SnowAlpha            = 0.8
	StructuralAlphaScale = 0.6
	DebrisAlpha          = 0.4
	BerryAlpha           = 0.9

	// FlakeArmScale is the half-length of a detailed flake arm relative to its size
	FlakeArmScale  = 1.5
	FlakeLineWidth = 1.0
)

// Projectile appearance
const (
	ProjectileGlowScale = 1.5
	ProjectileGlowAlpha = 0.5
)

// Charge aura around the pointer while a snowball is gathering
const (
	AuraDotsBase   = 10
	AuraDotsCharge = 20
	AuraRadius     = 40.0
	AuraJitter     = 10.0
	AuraPeriod     = 100 * time.Millisecond
	AuraAlphaBase  = 0.4
	AuraCoreBase   = 4.0
	AuraCoreCharge = 4.0
	AuraCoreAlpha  = 0.8
	AuraFullRadius = 10.0
	AuraFullAlpha  = 0.9

	// Perlin generator for ring jitter
	AuraNoiseAlpha   = 2.0
	AuraNoiseBeta    = 2.0
	AuraNoiseOctaves = 3
	AuraNoiseScale   = 0.37
)

// Overlay text
const (
	TextIntro    = "[ Look, it’s snowing. ]"
	TextHint     = "[ touch to invoke ]"
	TextLost     = "[ Where did you go...? ]"
	TextHit      = "[ It really hurts... ]"
	TextTitle    = "Merry Christmas."
	TextSubtitle = "Thankful for your presence."

	// Pulse rates are radians per millisecond of simulated time
	IntroPulseRate = 0.002
	IntroPulseBase = 0.6
	IntroPulseAmp  = 0.4
	HintPulseRate  = 0.003

	// HintSpringFrequency and HintSpringDamping shape the hint fade in/out
	HintSpringFrequency = 6.0
	HintSpringDamping   = 1.0
	HintVisibleMin      = 0.01

	LostTextOffset = 60.0
	HitTextOffset  = 70.0
	HitTextRise    = 0.5

	EndingTitleHeight    = 0.15
	EndingSubtitleOffset = 40.0
	EndingTitleAlpha     = 0.95
	EndingSubtitleAlpha  = 0.8
	EndingGlowAlpha      = 0.6
)
