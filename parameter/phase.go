package parameter

import "time"

// Intro -> Snow
const (
	// IntroFadeStep is intro message alpha lost per tick while dissolving
	IntroFadeStep = 0.02
)

// Snow -> Summon
const (
	// SummonHoldDuration is how long contact must be held to invoke the cat
	SummonHoldDuration = 3000 * time.Millisecond

	// CatSpawnRadiusFactor scales min(width, height) into the spawn distance from the pointer
	CatSpawnRadiusFactor = 0.4
)

// Summon
const (
	// MaxCharge caps the snowball charge accumulator (ticks)
	MaxCharge = 120
	// FireThreshold is the charge a release must exceed to throw
	FireThreshold = 100

	// CatLostDamping is cat velocity decay per tick while contact is lost
	CatLostDamping = 0.95
	// LostOpacityStep ramps the lost message in
	LostOpacityStep = 0.05

	// PursuitFarDistance separates the two pursuit regimes
	PursuitFarDistance = 200.0
	// PursuitGainFar is displacement->velocity gain while farther than PursuitFarDistance
	PursuitGainFar = 0.0028
	// PursuitGainNear is displacement->velocity gain once within PursuitFarDistance
	PursuitGainNear = 0.0014

	// SettleRadius is pointer-to-cat distance counted as settled
	SettleRadius = 120.0
	// SettleTicks is the settle timer value that enters Bond (3s)
	SettleTicks = 180

	// KnockbackDamping is cat velocity decay per tick during knockback
	KnockbackDamping = 0.9
)

// Bond
const (
	// BondWaitTicks is the stationary pause after the cat bonds (1s)
	BondWaitTicks = 60
	// SnowInjectCount is the number of extra flakes added once after the pause
	SnowInjectCount = 300

	// BondSpringK is pointer-follow spring stiffness
	BondSpringK = 0.05
	// BondFriction multiplies velocity after the spring acceleration is integrated
	BondFriction = 0.85

	// TrustTicks is the trust value that enters Ending (10s)
	TrustTicks = 600
)

// Ending
const (
	// EndingTextDelay reveals the closing message
	EndingTextDelay = 4 * time.Second
	// DissipateDelay starts the cat fading away
	DissipateDelay = 7 * time.Second
)
