package component

// Phase — фаза раунда
type Phase int

const (
	SetupPhase Phase = iota
	AimingPhase
	FiringPhase
	ResolvedPhase
	QuitPhase
)

func (p Phase) String() string {
	switch p {
	case SetupPhase:
		return "setup"
	case AimingPhase:
		return "aiming"
	case FiringPhase:
		return "firing"
	case ResolvedPhase:
		return "resolved"
	case QuitPhase:
		return "quit"
	}
	return "unknown"
}

// Outcome — итог раунда
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeHit
	OutcomeMiss
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	case OutcomeAborted:
		return "aborted"
	}
	return "none"
}

// MissReason — почему снаряд не попал
type MissReason int

const (
	MissNone MissReason = iota
	MissLeftPlayfield
	MissHitGround
)

func (r MissReason) String() string {
	switch r {
	case MissLeftPlayfield:
		return "left_playfield"
	case MissHitGround:
		return "hit_ground"
	}
	return ""
}

// RoundOutcome — итог раунда вместе с подробностями
type RoundOutcome struct {
	Kind      Outcome
	Struck    *Vehicle // подбитый танк, только для OutcomeHit
	Reason    MissReason
	Impact    Point
	HasImpact bool
}
