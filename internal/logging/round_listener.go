// internal/logging/round_listener.go
package logging

import (
	"go-scorched-earth/internal/event"

	"github.com/rs/zerolog"
)

// RoundListener пишет по строке лога на каждое событие раунда
type RoundListener struct {
	log zerolog.Logger
}

func NewRoundListener(log zerolog.Logger) *RoundListener {
	return &RoundListener{log: log.With().Str("component", "round").Logger()}
}

func (l *RoundListener) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.RoundStartedData:
		l.log.Info().
			Str("round_id", d.Round.ID).
			Int("round", d.Round.Number).
			Int64("seed", d.Seed).
			Int("samples", d.Samples).
			Float64("player_x", d.PlayerX).
			Float64("opponent_x", d.OpponentX).
			Msg("round started")
	case event.ShotFiredData:
		l.log.Info().
			Str("round_id", d.Round.ID).
			Int("round", d.Round.Number).
			Int("angle", d.Angle).
			Int("velocity", d.Velocity).
			Float64("flat_range", d.FlatRange).
			Msg("Pew Pew!!")
	case event.ShotResultData:
		l.log.Info().
			Str("event", string(e.Type)).
			Str("round_id", d.Round.ID).
			Int("round", d.Round.Number).
			Str("outcome", d.Outcome).
			Str("reason", d.Reason).
			Float64("x", d.X).
			Float64("y", d.Y).
			Float64("sim_time", d.SimTime).
			Dur("flight", d.Duration).
			Msg("shot resolved")
	case event.RoundAbortedData:
		l.log.Warn().
			Str("round_id", d.Round.ID).
			Int("round", d.Round.Number).
			Str("phase", d.Phase).
			Msg("round aborted")
	default:
		l.log.Debug().Str("event", string(e.Type)).Msg("unhandled event")
	}
}
