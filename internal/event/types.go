// internal/event/types.go
package event

import "time"

const (
	RoundStarted EventType = "RoundStarted" // рельеф построен, танки расставлены
	ShotFired    EventType = "ShotFired"    // снаряд вылетел
	TargetHit    EventType = "TargetHit"    // танк противника подбит
	ShotMissed   EventType = "ShotMissed"   // снаряд ушёл за край или в землю
	RoundAborted EventType = "RoundAborted" // игрок вышел посреди раунда
)

// AllRoundEvents — все события жизненного цикла раунда
var AllRoundEvents = []EventType{RoundStarted, ShotFired, TargetHit, ShotMissed, RoundAborted}

// RoundInfo идентифицирует раунд во всех событиях
type RoundInfo struct {
	ID     string
	Number int
}

// RoundStartedData — данные RoundStarted
type RoundStartedData struct {
	Round     RoundInfo
	Seed      int64
	Samples   int
	PlayerX   float64
	OpponentX float64
}

// ShotFiredData — данные ShotFired
type ShotFiredData struct {
	Round     RoundInfo
	Angle     int
	Velocity  int
	OriginX   float64
	OriginY   float64
	FlatRange float64 // дальность на ровной местности, для логов
}

// ShotResultData — данные TargetHit и ShotMissed
type ShotResultData struct {
	Round    RoundInfo
	Outcome  string
	Reason   string
	X, Y     float64
	SimTime  float64
	Duration time.Duration // реальное время полёта
}

// RoundAbortedData — данные RoundAborted
type RoundAbortedData struct {
	Round RoundInfo
	Phase string
}
