package sim

import (
	"math"

	"github.com/lixenwraith/snowcat/engine/fsm"
	"github.com/lixenwraith/snowcat/parameter"
)

// newController builds the phase graph; every edge points forward so phases never regress
func newController() *fsm.Machine[*Sim] {
	m := fsm.NewMachine[*Sim]()

	intro := m.AddState(fsm.StateID(PhaseIntro), PhaseIntro.String())
	intro.OnUpdate = append(intro.OnUpdate, (*Sim).updateIntro)

	snow := m.AddState(fsm.StateID(PhaseSnow), PhaseSnow.String())
	snow.OnEnter = append(snow.OnEnter, func(s *Sim) {
		s.introDissolving = false
		s.introAlpha = 0
	})

	summon := m.AddState(fsm.StateID(PhaseSummon), PhaseSummon.String())
	summon.OnEnter = append(summon.OnEnter, (*Sim).spawnCat)
	summon.OnUpdate = append(summon.OnUpdate,
		func(s *Sim) { s.updateContact(PhaseSummon) },
		(*Sim).updateSummon,
	)

	bond := m.AddState(fsm.StateID(PhaseBond), PhaseBond.String())
	bond.OnEnter = append(bond.OnEnter, (*Sim).enterBond)
	bond.OnUpdate = append(bond.OnUpdate,
		func(s *Sim) { s.updateContact(PhaseBond) },
		(*Sim).updateBond,
	)

	ending := m.AddState(fsm.StateID(PhaseEnding), PhaseEnding.String())
	ending.OnEnter = append(ending.OnEnter, (*Sim).beginEnding)
	ending.OnUpdate = append(ending.OnUpdate, func(s *Sim) { s.updateContact(PhaseEnding) })

	mustTransition(m, PhaseIntro, PhaseSnow, func(s *Sim) bool {
		return s.introDissolving && s.introAlpha <= 0
	})
	mustTransition(m, PhaseSnow, PhaseSummon, func(s *Sim) bool {
		return s.TouchDuration() > parameter.SummonHoldDuration
	})
	mustTransition(m, PhaseSummon, PhaseBond, func(s *Sim) bool {
		return s.cat.Settle >= parameter.SettleTicks
	})
	mustTransition(m, PhaseBond, PhaseEnding, func(s *Sim) bool {
		return s.cat.Trust >= parameter.TrustTicks
	})
	return m
}

func mustTransition(m *fsm.Machine[*Sim], from, to Phase, guard fsm.GuardFunc[*Sim]) {
	if err := m.AddTransition(fsm.StateID(from), fsm.StateID(to), guard); err != nil {
		panic(err)
	}
}

// updateIntro fades the intro text once dismissed
func (s *Sim) updateIntro() {
	if s.introDissolving {
		s.introAlpha = math.Max(0, s.introAlpha-parameter.IntroFadeStep)
	}
}
