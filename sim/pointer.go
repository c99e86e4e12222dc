package sim

import (
	"time"

	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/vmath"
)

// Pointer is the user's touch or mouse state in world units
type Pointer struct {
	// Pos is the sentinel (-1000, -1000) while released, so no particle is in range
	Pos  vmath.Vec2
	Last vmath.Vec2
	Vel  vmath.Vec2

	Touching   bool
	TouchStart int64 // tick of the current press

	// Anchor is the last position seen inside the surface; Bond follows it after release
	Anchor vmath.Vec2
}

func newPointer(width, height float64) Pointer {
	sentinel := vmath.V2(parameter.PointerSentinel, parameter.PointerSentinel)
	return Pointer{
		Pos:    sentinel,
		Last:   sentinel,
		Anchor: vmath.V2(width/2, height/2),
	}
}

// PointerStart handles a press at pos
// During Intro it only dismisses the intro text; the press does not count as a touch
func (s *Sim) PointerStart(pos vmath.Vec2) {
	s.setAnchor(pos)

	if s.Phase() == PhaseIntro {
		if !s.introDissolving {
			s.introDissolving = true
			s.pointer.Pos = pos
			s.pointer.Last = pos
		}
		return
	}

	s.pointer.Touching = true
	s.pointer.TouchStart = s.clock.Tick()
	s.pointer.Pos = pos
	s.pointer.Last = pos
	s.pointer.Vel = vmath.Vec2{}

	if s.Phase() == PhaseSummon && s.cat.Lost {
		s.cat.Lost = false
	}
}

// PointerMove handles pointer motion, pressed or hovering
func (s *Sim) PointerMove(pos vmath.Vec2) {
	s.setAnchor(pos)
	s.pointer.Last = s.pointer.Pos
	s.pointer.Vel = pos.Sub(s.pointer.Pos)
	s.pointer.Pos = pos
}

// PointerEnd handles release and always parks the pointer at the sentinel
// Throwing and particle reset only follow a counted press
func (s *Sim) PointerEnd() {
	if s.pointer.Touching {
		s.pointer.Touching = false

		switch s.Phase() {
		case PhaseSummon:
			if s.charge > parameter.FireThreshold {
				s.launch()
			}
			s.charge = 0
		case PhaseSnow:
			for i := range s.particles {
				s.particles[i].reset(s.rng)
			}
		}
	}

	sentinel := vmath.V2(parameter.PointerSentinel, parameter.PointerSentinel)
	s.pointer.Pos = sentinel
	s.pointer.Last = sentinel
	s.pointer.Vel = vmath.Vec2{}
}

// TouchDuration returns the simulated time the current press has been held, zero when released
func (s *Sim) TouchDuration() time.Duration {
	if !s.pointer.Touching {
		return 0
	}
	return s.clock.Interval() * time.Duration(s.clock.Tick()-s.pointer.TouchStart)
}

func (s *Sim) setAnchor(pos vmath.Vec2) {
	if pos.X >= 0 && pos.X <= s.width && pos.Y >= 0 && pos.Y <= s.height {
		s.pointer.Anchor = pos
	}
}
