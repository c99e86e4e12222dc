// Package sim holds the snow/cat particle simulation and its phase progression
// A Sim is single-threaded: all mutation happens in Step and the pointer handlers, called from one goroutine
package sim

import (
	"time"

	"github.com/lixenwraith/snowcat/engine"
	"github.com/lixenwraith/snowcat/engine/fsm"
	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/vmath"
)

// Config configures a new Sim
type Config struct {
	// Width and Height of the simulation surface in world units
	Width, Height float64
	// Targets are silhouette offsets relative to the cat center
	Targets []vmath.Vec2
	// Random source; nil seeds a FastRand from the wall clock
	Random vmath.Random
	// Interval is the simulated time per tick; zero means parameter.FrameDuration
	Interval time.Duration
}

// Sim is the simulation context shared by the phase controller and every entity update
type Sim struct {
	width, height float64
	targets       []vmath.Vec2

	rng       vmath.Random
	clock     *engine.TickClock
	scheduler *engine.Scheduler
	machine   *fsm.Machine[*Sim]

	particles   []Particle
	projectiles []Projectile
	cat         Cat
	pointer     Pointer
	charge      int

	introAlpha      float64
	introDissolving bool
	endingText      bool
}

// New creates a simulation in the Intro phase with len(Targets)+ExtraParticles particles
func New(cfg Config) *Sim {
	rng := cfg.Random
	if rng == nil {
		rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}

	s := &Sim{
		width:      cfg.Width,
		height:     cfg.Height,
		targets:    cfg.Targets,
		rng:        rng,
		clock:      engine.NewTickClock(cfg.Interval),
		scheduler:  engine.NewScheduler(),
		introAlpha: 1,
	}
	s.pointer = newPointer(s.width, s.height)

	count := len(s.targets) + parameter.ExtraParticles
	s.particles = make([]Particle, 0, count)
	for i := range count {
		s.particles = append(s.particles, s.newParticle(i, false))
	}

	s.machine = newController()
	if err := s.machine.Init(s, fsm.StateID(PhaseIntro)); err != nil {
		panic(err)
	}
	return s
}

// Step advances the simulation by one tick
func (s *Sim) Step() {
	tick := s.clock.Advance()
	s.scheduler.RunDue(tick)
	s.machine.Update(s, s.clock.Interval())

	for i := range s.particles {
		s.updateParticle(&s.particles[i])
	}
	s.updateProjectiles()
}

// Resize changes the surface dimensions; silhouette offsets are kept
func (s *Sim) Resize(width, height float64) {
	s.width = width
	s.height = height
	s.pointer.Anchor = vmath.V2(
		vmath.Clamp(s.pointer.Anchor.X, 0, width),
		vmath.Clamp(s.pointer.Anchor.Y, 0, height),
	)
}

// Phase returns the current narrative phase
func (s *Sim) Phase() Phase {
	return Phase(s.machine.State())
}

// Tick returns the number of completed steps
func (s *Sim) Tick() int64 {
	return s.clock.Tick()
}

// Now returns the simulated time elapsed since start
func (s *Sim) Now() time.Duration {
	return s.clock.Now()
}

// Size returns the surface dimensions
func (s *Sim) Size() (width, height float64) {
	return s.width, s.height
}

// Targets returns the silhouette offsets; callers must not modify them
func (s *Sim) Targets() []vmath.Vec2 {
	return s.targets
}

// Particles returns the live particle slice; callers must not modify or retain it across Step
func (s *Sim) Particles() []Particle {
	return s.particles
}

// Projectiles returns the active snowballs; callers must not modify or retain it across Step
func (s *Sim) Projectiles() []Projectile {
	return s.projectiles
}

// Cat returns a snapshot of the cat state
func (s *Sim) Cat() Cat {
	return s.cat
}

// Pointer returns a snapshot of the pointer state
func (s *Sim) Pointer() Pointer {
	return s.pointer
}

// Charge returns the snowball charge counter in [0, MaxCharge]
func (s *Sim) Charge() int {
	return s.charge
}

// IntroAlpha returns the intro text opacity
func (s *Sim) IntroAlpha() float64 {
	return s.introAlpha
}

// IntroDissolving reports whether the intro has been dismissed
func (s *Sim) IntroDissolving() bool {
	return s.introDissolving
}

// EndingTextVisible reports whether the closing message is shown
func (s *Sim) EndingTextVisible() bool {
	return s.endingText
}
