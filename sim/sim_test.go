package sim

import (
	"math"
	"testing"

	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/vmath"
)

const (
	testWidth  = 1000.0
	testHeight = 800.0
)

// squareTargets returns a 10x10 grid of offsets around the origin
func squareTargets() []vmath.Vec2 {
	targets := make([]vmath.Vec2, 0, 100)
	for y := range 10 {
		for x := range 10 {
			targets = append(targets, vmath.V2(float64(x*4-18), float64(y*4-18)))
		}
	}
	return targets
}

func newTestSim(targets []vmath.Vec2) *Sim {
	return New(Config{
		Width:   testWidth,
		Height:  testHeight,
		Targets: targets,
		Random:  vmath.NewFastRand(42),
	})
}

// stepUntil steps until the phase is reached and returns the number of steps taken
func stepUntil(t *testing.T, s *Sim, phase Phase, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		s.Step()
		if s.Phase() == phase {
			return i
		}
	}
	t.Fatalf("phase %s not reached within %d steps, at %s", phase, limit, s.Phase())
	return 0
}

func toSnow(t *testing.T) *Sim {
	t.Helper()
	s := newTestSim(squareTargets())
	s.PointerStart(vmath.V2(testWidth/2, testHeight/2))
	stepUntil(t, s, PhaseSnow, 100)
	return s
}

func toSummon(t *testing.T, press vmath.Vec2) *Sim {
	t.Helper()
	s := toSnow(t)
	s.PointerStart(press)
	stepUntil(t, s, PhaseSummon, 200)
	return s
}

func toBond(t *testing.T) *Sim {
	t.Helper()
	s := toSummon(t, vmath.V2(testWidth/2, testHeight/2))
	s.cat.Center = s.pointer.Pos
	s.cat.Settle = parameter.SettleTicks - 1
	s.Step()
	if s.Phase() != PhaseBond {
		t.Fatalf("phase = %s, want Bond", s.Phase())
	}
	return s
}

func TestNewPopulation(t *testing.T) {
	targets := squareTargets()
	s := newTestSim(targets)

	if got, want := len(s.Particles()), len(targets)+parameter.ExtraParticles; got != want {
		t.Fatalf("particles = %d, want %d", got, want)
	}
	if s.Phase() != PhaseIntro {
		t.Errorf("phase = %s, want Intro", s.Phase())
	}
	if s.IntroAlpha() != 1 {
		t.Errorf("intro alpha = %v, want 1", s.IntroAlpha())
	}

	var structural, background int
	for i, p := range s.Particles() {
		switch p.Kind {
		case KindStructural:
			structural++
			if i >= len(targets) || p.Target != i {
				t.Errorf("particle %d structural with target %d", i, p.Target)
			}
		case KindDebris:
			if i < len(targets) {
				t.Errorf("particle %d is debris inside the target range", i)
			}
		case KindBackground:
			background++
		case KindTree:
			t.Errorf("particle %d is a tree particle before Ending", i)
		}
		if p.Pos.X < 0 || p.Pos.X > testWidth || p.Pos.Y < 0 || p.Pos.Y > testHeight {
			t.Errorf("particle %d spawned outside surface at %v", i, p.Pos)
		}
		if p.Size != p.BaseSize || p.Size < parameter.ParticleSizeMin || p.Size > parameter.ParticleSizeMax {
			t.Errorf("particle %d size %v base %v", i, p.Size, p.BaseSize)
		}
	}
	if structural == 0 || background == 0 {
		t.Errorf("structural = %d background = %d, want both populated", structural, background)
	}
}

func TestNewWithoutTargets(t *testing.T) {
	s := newTestSim(nil)
	for i, p := range s.Particles() {
		if p.Kind == KindStructural {
			t.Fatalf("particle %d structural with no targets", i)
		}
	}

	s.PointerStart(vmath.V2(100, 100))
	stepUntil(t, s, PhaseSnow, 100)
	s.PointerStart(vmath.V2(100, 100))
	stepUntil(t, s, PhaseSummon, 200)
	for range 100 {
		s.Step()
	}
	if s.Phase() != PhaseSummon {
		t.Errorf("phase = %s, want Summon", s.Phase())
	}
}

func TestIntroFrozenUntilDismissed(t *testing.T) {
	s := newTestSim(squareTargets())
	before := append([]Particle(nil), s.Particles()...)

	for range 30 {
		s.Step()
	}
	for i, p := range s.Particles() {
		if p.Pos != before[i].Pos {
			t.Fatalf("particle %d moved before intro dismissed", i)
		}
	}
	if s.Phase() != PhaseIntro || s.IntroAlpha() != 1 {
		t.Fatalf("phase = %s alpha = %v", s.Phase(), s.IntroAlpha())
	}

	s.PointerStart(vmath.V2(10, 10))
	if !s.IntroDissolving() {
		t.Fatal("press did not dismiss intro")
	}
	if s.Pointer().Touching {
		t.Error("intro press counted as touch")
	}

	s.Step()
	if got := s.IntroAlpha(); math.Abs(got-(1-parameter.IntroFadeStep)) > 1e-9 {
		t.Errorf("intro alpha after one step = %v", got)
	}

	steps := stepUntil(t, s, PhaseSnow, 100)
	if steps < 45 || steps > 51 {
		t.Errorf("intro fade took %d steps", steps)
	}
	if s.IntroDissolving() {
		t.Error("dissolving flag kept after Snow entered")
	}
}

func TestSnowWrapsOnSurface(t *testing.T) {
	s := toSnow(t)
	s.PointerStart(vmath.V2(testWidth/2, testHeight/2))
	s.PointerMove(vmath.V2(testWidth/2+5, testHeight/2))

	for range 150 {
		s.Step()
		for i, p := range s.Particles() {
			if p.Pos.X < 0 || p.Pos.X > testWidth || p.Pos.Y < 0 || p.Pos.Y > testHeight {
				t.Fatalf("tick %d particle %d escaped to %v", s.Tick(), i, p.Pos)
			}
		}
	}
}

func TestSnowPointerRepels(t *testing.T) {
	s := toSnow(t)
	s.PointerStart(vmath.V2(500, 400))

	p := &s.particles[0]
	p.Pos = vmath.V2(550, 400)
	p.Vel = vmath.Vec2{}
	s.updateSnow(p, PhaseSnow)

	// (120 - 50) * 0.15 pushes right, damped after integration
	if p.Pos.X <= 550+10 {
		t.Errorf("particle not pushed away: x = %v", p.Pos.X)
	}
}

func TestSnowReleaseResetsParticles(t *testing.T) {
	s := toSnow(t)
	s.PointerStart(vmath.V2(500, 400))
	for range 20 {
		s.Step()
	}
	for i := range s.particles {
		s.particles[i].Alpha = 0.3
		s.particles[i].Size = 99
	}

	s.PointerEnd()
	for i, p := range s.Particles() {
		if p.Alpha != parameter.ParticleInitialAlpha || p.Size != p.BaseSize {
			t.Fatalf("particle %d not reset: alpha %v size %v", i, p.Alpha, p.Size)
		}
		if math.Abs(p.Vel.X) > parameter.ParticleInitialSpeed || math.Abs(p.Vel.Y) > parameter.ParticleInitialSpeed {
			t.Fatalf("particle %d velocity %v out of range", i, p.Vel)
		}
	}
	if s.Pointer().Pos.X != parameter.PointerSentinel {
		t.Errorf("pointer = %v, want sentinel", s.Pointer().Pos)
	}
}

func TestReleaseWithoutPressIgnored(t *testing.T) {
	s := toSnow(t)
	for range 5 {
		s.Step()
	}
	before := append([]Particle(nil), s.Particles()...)

	s.PointerEnd()
	for i, p := range s.Particles() {
		if p != before[i] {
			t.Fatalf("particle %d changed by stray release", i)
		}
	}
}

func TestIntroReleaseParksPointer(t *testing.T) {
	s := newTestSim(squareTargets())
	click := vmath.V2(500, 400)
	s.PointerStart(click)
	s.PointerEnd()
	stepUntil(t, s, PhaseSnow, 100)
	for range 120 {
		s.Step()
	}

	sentinel := vmath.V2(parameter.PointerSentinel, parameter.PointerSentinel)
	if got := s.Pointer(); got.Pos != sentinel || got.Touching {
		t.Fatalf("pointer = %+v touching=%v, want sentinel and released", got.Pos, got.Touching)
	}

	near := 0
	for _, p := range s.Particles() {
		if vmath.Dist(p.Pos, click) < parameter.PointerRadius {
			near++
		}
	}
	if near == 0 {
		t.Error("no snow near the released intro click; pointer still repelling")
	}
}

func TestSummonAfterHold(t *testing.T) {
	s := toSnow(t)
	press := vmath.V2(100, 100)
	s.PointerStart(press)

	for i := 1; i <= 180; i++ {
		s.Step()
		if s.Phase() != PhaseSnow {
			t.Fatalf("left Snow after %d ticks", i)
		}
	}
	s.Step()
	if s.Phase() != PhaseSummon {
		t.Fatalf("phase = %s after 181 ticks, want Summon", s.Phase())
	}

	// Cat spawns on the far side of the surface center, 0.4 * min(W, H) from the press
	center := vmath.V2(testWidth/2, testHeight/2)
	want := press.Add(center.Sub(press).Normalize().Scale(0.4 * testHeight))
	// One pursuit step has already moved it toward the pointer
	if d := vmath.Dist(s.Cat().Center, want); d > 2 {
		t.Errorf("cat at %v, want near %v", s.Cat().Center, want)
	}
}

func TestHoldResetByRelease(t *testing.T) {
	s := toSnow(t)
	s.PointerStart(vmath.V2(100, 100))
	for range 150 {
		s.Step()
	}
	s.PointerEnd()
	s.PointerStart(vmath.V2(100, 100))
	for range 150 {
		s.Step()
	}
	if s.Phase() != PhaseSnow {
		t.Errorf("phase = %s, interrupted hold must not summon", s.Phase())
	}
}

func TestChargeSaturates(t *testing.T) {
	s := toSummon(t, vmath.V2(100, 100))
	s.charge = 0

	for i := 1; i <= 200; i++ {
		s.Step()
		if got, want := s.Charge(), min(i, parameter.MaxCharge); got != want {
			t.Fatalf("tick %d charge = %d, want %d", i, got, want)
		}
	}
}

func TestChargeLostOnRelease(t *testing.T) {
	s := toSummon(t, vmath.V2(100, 100))
	s.charge = 50
	s.PointerEnd()

	if s.Charge() != 0 {
		t.Errorf("charge = %d after release", s.Charge())
	}
	if len(s.Projectiles()) != 0 {
		t.Errorf("projectiles = %d, want none below threshold", len(s.Projectiles()))
	}

	s.Step()
	c := s.Cat()
	if !c.Lost || s.Charge() != 0 {
		t.Errorf("lost = %v charge = %d", c.Lost, s.Charge())
	}
	if c.LostOpacity != parameter.LostOpacityStep {
		t.Errorf("lost opacity = %v", c.LostOpacity)
	}

	for range 40 {
		s.Step()
	}
	if s.Cat().LostOpacity != 1 {
		t.Errorf("lost opacity = %v, want saturated at 1", s.Cat().LostOpacity)
	}

	s.PointerStart(vmath.V2(120, 120))
	if s.Cat().Lost {
		t.Error("press did not recover lost cat")
	}
	s.Step()
	if s.Cat().LostOpacity != 0 || s.Charge() != 1 {
		t.Errorf("after recovery opacity = %v charge = %d", s.Cat().LostOpacity, s.Charge())
	}
}

func TestReleaseThrowsTowardCat(t *testing.T) {
	s := toSummon(t, vmath.V2(100, 100))
	s.PointerStart(vmath.V2(200, 150))
	s.cat.Center = vmath.V2(600, 450)
	s.charge = 110

	s.PointerEnd()

	if len(s.Projectiles()) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(s.Projectiles()))
	}
	pr := s.Projectiles()[0]
	if pr.Pos != vmath.V2(200, 150) {
		t.Errorf("projectile at %v, want release point", pr.Pos)
	}
	if math.Abs(pr.Vel.Len()-parameter.FallbackThrowSpeed) > 1e-9 {
		t.Errorf("speed = %v, want 8", pr.Vel.Len())
	}
	want := vmath.V2(400, 300).Normalize()
	if got := pr.Vel.Normalize(); vmath.Dist(got, want) > 1e-9 {
		t.Errorf("direction = %v, want %v", got, want)
	}
	if pr.Life != parameter.ProjectileLife || !pr.Active {
		t.Errorf("life = %d active = %v", pr.Life, pr.Active)
	}
	if s.Charge() != 0 {
		t.Errorf("charge = %d after throw", s.Charge())
	}
}

func TestReleaseThrowsAlongSwipe(t *testing.T) {
	s := toSummon(t, vmath.V2(100, 100))
	s.PointerStart(vmath.V2(200, 150))
	s.PointerMove(vmath.V2(210, 150))
	s.charge = parameter.MaxCharge

	s.PointerEnd()
	if len(s.Projectiles()) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(s.Projectiles()))
	}
	pr := s.Projectiles()[0]
	if pr.Vel != vmath.V2(15, 0) {
		t.Errorf("velocity = %v, want swipe * 1.5", pr.Vel)
	}
	if want := parameter.ProjectileSizeBase + parameter.ProjectileSizeCharge; pr.Size != want {
		t.Errorf("size = %v, want %v", pr.Size, want)
	}
}

func TestProjectileExpires(t *testing.T) {
	s := toSummon(t, vmath.V2(800, 600))
	s.cat.Center = s.pointer.Pos
	s.projectiles = append(s.projectiles, newProjectile(vmath.V2(10, 10), vmath.Vec2{}, 0))

	for i := 1; i < parameter.ProjectileLife; i++ {
		s.Step()
		if len(s.Projectiles()) != 1 {
			t.Fatalf("projectile removed after %d ticks", i)
		}
		if got := s.Projectiles()[0].Life; got != parameter.ProjectileLife-i {
			t.Fatalf("tick %d life = %d", i, got)
		}
	}
	s.Step()
	if len(s.Projectiles()) != 0 {
		t.Errorf("projectile still active after %d ticks", parameter.ProjectileLife)
	}
}

func TestProjectileHitOnce(t *testing.T) {
	s := toSummon(t, vmath.V2(500, 400))
	s.cat.Center = s.pointer.Pos
	s.cat.Vel = vmath.Vec2{}
	s.projectiles = append(s.projectiles, newProjectile(s.cat.Center.Add(vmath.V2(60, 0)), vmath.Vec2{}, 0))

	s.Step()

	c := s.Cat()
	if len(s.Projectiles()) != 0 {
		t.Fatalf("projectiles = %d after hit", len(s.Projectiles()))
	}
	if c.Vel != vmath.V2(-parameter.ProjectileImpulse, 0) {
		t.Errorf("cat velocity = %v, want impulse away from hit", c.Vel)
	}
	if c.Knockback != parameter.KnockbackTicks || c.HitText != parameter.HitTextTicks {
		t.Errorf("knockback = %d hit text = %d", c.Knockback, c.HitText)
	}

	s.Step()
	c = s.Cat()
	if c.Knockback != parameter.KnockbackTicks-1 {
		t.Errorf("knockback = %d", c.Knockback)
	}
	if math.Abs(c.Vel.X-(-parameter.ProjectileImpulse*parameter.KnockbackDamping)) > 1e-9 {
		t.Errorf("cat velocity = %v, want damped once", c.Vel)
	}
}

func TestSettleAccumulates(t *testing.T) {
	s := toSummon(t, vmath.V2(500, 400))
	s.cat.Center = s.pointer.Pos.Add(vmath.V2(50, 0))
	s.cat.Settle = 0

	for i := 1; i < parameter.SettleTicks; i++ {
		s.Step()
		if s.Phase() != PhaseSummon {
			t.Fatalf("left Summon after %d ticks", i)
		}
		if s.Cat().Settle != i {
			t.Fatalf("tick %d settle = %d", i, s.Cat().Settle)
		}
	}
	s.Step()
	if s.Phase() != PhaseBond {
		t.Errorf("phase = %s after %d settled ticks, want Bond", s.Phase(), parameter.SettleTicks)
	}
}

func TestSettleDecrements(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *Sim)
		settle int
		want   int
	}{
		{
			name:   "far",
			setup:  func(s *Sim) { s.cat.Center = s.pointer.Pos.Add(vmath.V2(400, 0)) },
			settle: 10,
			want:   9,
		},
		{
			name:   "floored",
			setup:  func(s *Sim) { s.cat.Center = s.pointer.Pos.Add(vmath.V2(400, 0)) },
			settle: 0,
			want:   0,
		},
		{
			name: "released",
			setup: func(s *Sim) {
				s.cat.Center = s.pointer.Pos
				s.charge = 0
				s.PointerEnd()
			},
			settle: 10,
			want:   9,
		},
		{
			name: "knockback",
			setup: func(s *Sim) {
				s.cat.Center = s.pointer.Pos
				s.cat.Knockback = 5
			},
			settle: 10,
			want:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := toSummon(t, vmath.V2(500, 400))
			tt.setup(s)
			s.cat.Settle = tt.settle
			s.Step()
			if got := s.Cat().Settle; got != tt.want {
				t.Errorf("settle = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStructuralSeeksTargets(t *testing.T) {
	s := toSummon(t, vmath.V2(500, 400))
	s.cat.Center = s.pointer.Pos
	for range 60 {
		s.Step()
	}

	c := s.Cat()
	for i, p := range s.Particles() {
		if p.Kind != KindStructural {
			continue
		}
		want := c.Center.Add(s.Targets()[p.Target])
		if d := vmath.Dist(p.Pos, want); d > 20 {
			t.Errorf("particle %d is %v from its slot", i, d)
		}
	}
}

func TestBondEntry(t *testing.T) {
	s := toSummon(t, vmath.V2(500, 400))
	s.projectiles = append(s.projectiles, newProjectile(vmath.V2(10, 10), vmath.Vec2{}, 0))
	s.cat.Center = s.pointer.Pos
	s.cat.Vel = vmath.V2(1, 1)
	s.cat.Settle = parameter.SettleTicks - 1

	s.Step()

	if s.Phase() != PhaseBond {
		t.Fatalf("phase = %s", s.Phase())
	}
	c := s.Cat()
	if c.Vel != (vmath.Vec2{}) || c.Wait != parameter.BondWaitTicks {
		t.Errorf("velocity = %v wait = %d", c.Vel, c.Wait)
	}
	if len(s.Projectiles()) != 0 || s.Charge() != 0 {
		t.Errorf("projectiles = %d charge = %d", len(s.Projectiles()), s.Charge())
	}
}

func TestBondInjectsSnowOnce(t *testing.T) {
	s := toBond(t)
	s.PointerEnd()
	base := len(s.Particles())

	for i := 1; i < parameter.BondWaitTicks; i++ {
		s.Step()
		if len(s.Particles()) != base {
			t.Fatalf("snow injected after %d ticks", i)
		}
	}
	s.Step()
	if got := len(s.Particles()); got != base+parameter.SnowInjectCount {
		t.Fatalf("particles = %d, want %d", got, base+parameter.SnowInjectCount)
	}
	for _, p := range s.Particles()[base:] {
		if p.Kind != KindBackground {
			t.Fatal("injected particle is not background snow")
		}
	}

	for range 200 {
		s.Step()
	}
	if got := len(s.Particles()); got != base+parameter.SnowInjectCount {
		t.Errorf("particles = %d after further ticks, injection repeated", got)
	}
	if s.Cat().Trust != 201 {
		t.Errorf("trust = %d, want 201", s.Cat().Trust)
	}
}

func TestBondFollowsAnchor(t *testing.T) {
	s := toBond(t)
	s.PointerMove(vmath.V2(300, 300))
	s.PointerEnd()
	s.cat.Wait = 0

	for range 200 {
		s.Step()
	}
	if d := vmath.Dist(s.Cat().Center, vmath.V2(300, 300)); d > 1 {
		t.Errorf("cat %v from anchor after release", d)
	}
	if s.Pointer().Pos.X != parameter.PointerSentinel {
		t.Errorf("pointer = %v, want sentinel", s.Pointer().Pos)
	}
}

func TestEndingSchedule(t *testing.T) {
	s := toBond(t)
	s.cat.Wait = 0
	s.cat.SnowDoubled = true
	s.cat.Trust = parameter.TrustTicks - 1
	s.Step()
	if s.Phase() != PhaseEnding {
		t.Fatalf("phase = %s, want Ending", s.Phase())
	}
	entered := s.Tick()
	treeCount := func() int {
		n := 0
		for _, p := range s.Particles() {
			if p.Kind == KindTree {
				n++
			}
		}
		return n
	}

	branchTicks := s.clock.Ticks(parameter.TreeBranchDelay)
	for s.Tick() < entered+branchTicks-1 {
		s.Step()
	}
	if n := treeCount(); n != 0 {
		t.Fatalf("tree particles = %d before first branch", n)
	}
	s.Step()
	if n := treeCount(); n != parameter.TreeBranchSteps+1 {
		t.Fatalf("tree particles = %d after trunk", n)
	}

	textTick := entered + s.clock.Ticks(parameter.EndingTextDelay)
	for s.Tick() < textTick-1 {
		s.Step()
	}
	if s.EndingTextVisible() {
		t.Fatal("ending text shown early")
	}
	s.Step()
	if !s.EndingTextVisible() {
		t.Fatal("ending text not shown on schedule")
	}

	// Depth-8 binary tree, seven points per branch
	if n, want := treeCount(), 255*(parameter.TreeBranchSteps+1); n != want {
		t.Errorf("tree particles = %d, want %d", n, want)
	}
	for _, p := range s.Particles() {
		if p.Kind != KindTree {
			continue
		}
		if p.Tier > TierOrnament || p.Alpha < 0 || p.Alpha > 1 {
			t.Fatalf("bad tree particle %+v", p)
		}
		if p.Tier == TierOrnament && p.Size < parameter.OrnamentSizeMin {
			t.Fatalf("ornament size %v", p.Size)
		}
	}

	dissolveTick := entered + s.clock.Ticks(parameter.DissipateDelay)
	for s.Tick() < dissolveTick-1 {
		s.Step()
	}
	if s.Cat().Dissipating {
		t.Fatal("dissipation started early")
	}
	s.Step()
	if !s.Cat().Dissipating {
		t.Fatal("dissipation not started on schedule")
	}

	alpha := make(map[int]float64)
	for i, p := range s.Particles() {
		if p.Kind == KindStructural {
			alpha[i] = p.Alpha
		}
	}
	for range 10 {
		s.Step()
	}
	for i, a := range alpha {
		if got := s.Particles()[i].Alpha; got >= a && a > 0 {
			t.Fatalf("particle %d alpha %v did not fade from %v", i, got, a)
		}
	}
}

func TestPhaseMonotonicFullSession(t *testing.T) {
	s := newTestSim(squareTargets())
	press := vmath.V2(300, 500)
	s.PointerStart(press)

	prev := s.Phase()
	var pressed bool
	for i := 0; i < 6000 && s.Phase() != PhaseEnding; i++ {
		if s.Phase() == PhaseSnow && !pressed {
			s.PointerStart(press)
			pressed = true
		}
		s.Step()
		if s.Phase() < prev {
			t.Fatalf("tick %d phase regressed %s -> %s", s.Tick(), prev, s.Phase())
		}
		if s.Phase() > prev+1 {
			t.Fatalf("tick %d phase skipped %s -> %s", s.Tick(), prev, s.Phase())
		}
		if c := s.Charge(); c < 0 || c > parameter.MaxCharge {
			t.Fatalf("tick %d charge = %d", s.Tick(), c)
		}
		prev = s.Phase()
	}
	if s.Phase() != PhaseEnding {
		t.Fatalf("session stalled in %s", s.Phase())
	}

	for range 500 {
		s.Step()
		if s.Phase() != PhaseEnding {
			t.Fatalf("left Ending for %s", s.Phase())
		}
	}
	if !s.Cat().SnowDoubled || !s.EndingTextVisible() || !s.Cat().Dissipating {
		t.Errorf("ending incomplete: %+v text=%v", s.Cat(), s.EndingTextVisible())
	}
}

func TestResizeKeepsTargets(t *testing.T) {
	s := newTestSim(squareTargets())
	s.PointerMove(vmath.V2(900, 700))
	before := append([]vmath.Vec2(nil), s.Targets()...)

	s.Resize(400, 300)

	w, h := s.Size()
	if w != 400 || h != 300 {
		t.Errorf("size = %vx%v", w, h)
	}
	for i, v := range s.Targets() {
		if v != before[i] {
			t.Fatalf("target %d changed on resize", i)
		}
	}
	if a := s.Pointer().Anchor; a.X > 400 || a.Y > 300 {
		t.Errorf("anchor %v outside resized surface", a)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIntro, "Intro"},
		{PhaseSnow, "Snow"},
		{PhaseSummon, "Summon"},
		{PhaseBond, "Bond"},
		{PhaseEnding, "Ending"},
		{Phase(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
