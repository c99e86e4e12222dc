package sim

// Phase is one stage of the narrative, strictly increasing over a session
type Phase uint8

const (
	PhaseIntro Phase = iota
	PhaseSnow
	PhaseSummon
	PhaseBond
	PhaseEnding
)

// String returns human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "Intro"
	case PhaseSnow:
		return "Snow"
	case PhaseSummon:
		return "Summon"
	case PhaseBond:
		return "Bond"
	case PhaseEnding:
		return "Ending"
	default:
		return "Unknown"
	}
}
