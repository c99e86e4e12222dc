package parameter

// Population
const (
	// ExtraParticles is the number of particles created beyond the silhouette targets (debris)
	ExtraParticles = 200
	// BackgroundChance is the probability a non-forced particle stays background snow
	BackgroundChance = 0.2
	// DetailedChance is the probability a particle renders as a rotating flake
	DetailedChance = 0.03
)

// Spawn ranges
const (
	ParticleInitialSpeed = 2.0
	ParticleSizeMin      = 2.0
	ParticleSizeMax      = 4.5
	ParticleSpinMax      = 0.05
	ParticleInitialAlpha = 0.9
	ParticleNoiseMax     = 1000.0
)

// Snow physics
const (
	// SnowJitter is the half-range of random horizontal acceleration per tick
	SnowJitter = 0.05
	// SnowGravity is constant downward acceleration per tick
	SnowGravity = 0.025
	// SnowDamping is velocity retained per tick
	SnowDamping = 0.95

	// PointerRadius is the pointer interaction radius
	PointerRadius = 120.0
	// PointerRadiusSq is PointerRadius squared, compared against squared distance
	PointerRadiusSq = PointerRadius * PointerRadius
	// GatherForce pulls flakes toward a charging pointer
	GatherForce = 0.05
	// GatherRadius bounds the gather pull
	GatherRadius = 200.0
	// SwirlForce scales the (PointerRadius - dist) push away from the pointer
	SwirlForce = 0.15
)

// Structural seek
const (
	StructuralNoiseBase      = 12.0
	StructuralNoiseSpeed     = 8.0
	StructuralNoiseKnockback = 40.0

	// SeekSummon is the smoothing factor while approaching during Summon
	SeekSummon = 0.15
	// SeekBond is the smoothing factor once bonded
	SeekBond = 0.25
)

// Debris orbit
const (
	DebrisRing     = 60.0
	DebrisPush     = 3.0
	DebrisPull     = 0.3
	DebrisTangent  = 2.5
	DebrisJitter   = 0.5
	DebrisSpeedCap = 6.0
	DebrisDamping  = 0.9
)

// Ending regroup / dissipation
const (
	// EndingConverge is the smoothing factor toward the tree-base anchor
	EndingConverge = 0.05
	// EndingBaseOffset is anchor distance above the bottom edge
	EndingBaseOffset = 100.0

	DissipateRiseMin = 0.5
	DissipateRiseMax = 1.5
	DissipateDrift   = 0.5
	DissipateFade    = 0.005
)

// Tree particle animation
const (
	TreeFadeIn    = 0.02
	TreeSway      = 0.1
	TreeSwayRate  = 0.005 // per millisecond of simulated time
	TwinkleChance = 0.05
	TwinkleMin    = 0.8
)

// Projectile
const (
	ProjectileLife       = 120
	ProjectileHitRadius  = 70.0
	ProjectileImpulse    = 4.0
	ProjectileSizeBase   = 5.0
	ProjectileSizeCharge = 7.0

	// KnockbackTicks is agitation duration after a hit
	KnockbackTicks = 30
	// HitTextTicks is the hurt message duration after a hit
	HitTextTicks = 60

	// ThrowSpeedThreshold is pointer speed above which the throw follows pointer motion
	ThrowSpeedThreshold = 2.0
	// ThrowScale multiplies pointer motion into projectile velocity
	ThrowScale = 1.5
	// FallbackThrowSpeed is used when pointer motion is negligible, aimed at the cat
	FallbackThrowSpeed = 8.0
)
