// internal/app/game.go
package app

import (
	"fmt"
	"time"

	"go-scorched-earth/internal/component"
	"go-scorched-earth/internal/config"
	"go-scorched-earth/internal/event"
	"go-scorched-earth/internal/input"
	"go-scorched-earth/internal/system"
	"go-scorched-earth/pkg/ballistics"
	"go-scorched-earth/pkg/terrain"

	"github.com/google/uuid"
)

// RandomSource — источник случайных чисел для рельефа и расстановки
type RandomSource interface {
	terrain.Source
	Seed() int64
}

// Options — параметры раунда
type Options struct {
	Width, Height    int
	Border, Spacing  int
	TimeScale        float64
	TerrainCollision bool
	TrailLength      int
	VehicleWidth     float64
	VehicleHeight    float64
	DefaultAim       component.AimState
	Limits           component.AimLimits
}

// OptionsFromSettings собирает Options из загруженных настроек
func OptionsFromSettings(s config.Settings) Options {
	return Options{
		Width:            s.Width,
		Height:           s.Height,
		Border:           s.Border,
		Spacing:          s.Spacing,
		TimeScale:        s.TimeScale,
		TerrainCollision: s.TerrainCollision,
		TrailLength:      config.TrailLength,
		VehicleWidth:     config.VehicleWidth,
		VehicleHeight:    config.VehicleHeight,
		DefaultAim:       component.AimState{Angle: config.DefaultAngle, Velocity: config.DefaultVelocity},
		Limits: component.AimLimits{
			MinAngle:    config.MinAngle,
			MaxAngle:    config.MaxAngle,
			MinVelocity: config.MinVelocity,
			MaxVelocity: config.MaxVelocity,
		},
	}
}

// RoundState — всё состояние раунда. Им владеет только Game.
type RoundState struct {
	ID         string
	Number     int
	Phase      component.Phase
	Terrain    *terrain.Profile
	Player     component.Vehicle
	Opponent   component.Vehicle
	Aim        component.AimState
	Projectile *component.Projectile
	FiredAt    time.Duration
	Trail      []component.Point // след последнего выстрела после его завершения
	Outcome    component.RoundOutcome
}

// Game — пошаговый автомат раунда: Setup -> Aiming -> Firing -> Resolved -> Setup.
// Вызывается один раз за тик через Update.
type Game struct {
	opts        Options
	rng         RandomSource
	dispatcher  *event.Dispatcher
	projectiles *system.ProjectileSystem
	round       RoundState
	newID       func() string
}

// NewGame создаёт игру в фазе Setup. Первый раунд строится в Start или на первом Update.
func NewGame(opts Options, rng RandomSource, dispatcher *event.Dispatcher) *Game {
	if rng == nil {
		panic("rng cannot be nil")
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &Game{
		opts:        opts,
		rng:         rng,
		dispatcher:  dispatcher,
		projectiles: system.NewProjectileSystem(opts.TimeScale, opts.TrailLength, opts.TerrainCollision, float64(opts.Height)),
		round:       RoundState{Phase: component.SetupPhase},
		newID:       uuid.NewString,
	}
}

// Start строит первый раунд, чтобы ошибки конфигурации всплыли до запуска цикла
func (g *Game) Start() error {
	if g.round.Phase != component.SetupPhase {
		return nil
	}
	return g.setup()
}

// Update продвигает автомат на один тик. now — монотонное время от любой точки отсчёта.
// Выход обрабатывается в любой фазе, в том числе во время полёта.
func (g *Game) Update(actions input.Actions, now time.Duration) error {
	if g.round.Phase == component.QuitPhase {
		return nil
	}
	if actions.Quit {
		g.quit()
		return nil
	}

	switch g.round.Phase {
	case component.SetupPhase:
		return g.setup()
	case component.AimingPhase:
		g.aim(actions.Resolve(), now)
	case component.FiringPhase:
		g.fly(now)
	case component.ResolvedPhase:
		if actions.Fire {
			g.round.Phase = component.SetupPhase
			return g.setup()
		}
	}
	return nil
}

// Done сообщает, что игрок вышел
func (g *Game) Done() bool {
	return g.round.Phase == component.QuitPhase
}

// Round возвращает копию состояния раунда
func (g *Game) Round() RoundState {
	return g.round
}

func (g *Game) info() event.RoundInfo {
	return event.RoundInfo{ID: g.round.ID, Number: g.round.Number}
}

func (g *Game) setup() error {
	profile, err := terrain.Generate(g.rng, g.opts.Width, g.opts.Height, g.opts.Border, g.opts.Spacing)
	if err != nil {
		return fmt.Errorf("round setup: %w", err)
	}
	playerPos, opponentPos, err := terrain.Place(profile, g.rng)
	if err != nil {
		return fmt.Errorf("round setup: %w", err)
	}

	player := component.NewVehicle(playerPos.X, playerPos.Y, g.opts.VehicleWidth, g.opts.VehicleHeight)
	opponent := component.NewVehicle(opponentPos.X, opponentPos.Y, g.opts.VehicleWidth, g.opts.VehicleHeight)
	player.Facing = component.FacingToward(player.X, opponent.X)
	opponent.Facing = component.FacingToward(opponent.X, player.X)

	g.round = RoundState{
		ID:       g.newID(),
		Number:   g.round.Number + 1,
		Phase:    component.AimingPhase,
		Terrain:  profile,
		Player:   player,
		Opponent: opponent,
		Aim:      g.opts.DefaultAim,
	}

	g.dispatcher.Dispatch(event.Event{Type: event.RoundStarted, Data: event.RoundStartedData{
		Round:     g.info(),
		Seed:      g.rng.Seed(),
		Samples:   len(profile.Samples()),
		PlayerX:   player.X,
		OpponentX: opponent.X,
	}})
	return nil
}

func (g *Game) aim(actions input.Actions, now time.Duration) {
	switch {
	case actions.AngleUp:
		g.round.Aim.AdjustAngle(1, g.opts.Limits)
	case actions.AngleDown:
		g.round.Aim.AdjustAngle(-1, g.opts.Limits)
	case actions.PowerUp:
		g.round.Aim.AdjustVelocity(1, g.opts.Limits)
	case actions.PowerDown:
		g.round.Aim.AdjustVelocity(-1, g.opts.Limits)
	case actions.Fire:
		g.fire(now)
	}
}

func (g *Game) fire(now time.Duration) {
	x, y := g.round.Player.Muzzle()
	g.round.Projectile = component.NewProjectile(x, y, g.round.Aim)
	g.round.FiredAt = now
	g.round.Phase = component.FiringPhase

	g.dispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: event.ShotFiredData{
		Round:     g.info(),
		Angle:     g.round.Aim.Angle,
		Velocity:  g.round.Aim.Velocity,
		OriginX:   x,
		OriginY:   y,
		FlatRange: ballistics.Range(float64(g.round.Aim.Velocity), float64(g.round.Aim.Angle)),
	}})
}

func (g *Game) fly(now time.Duration) {
	p := g.round.Projectile
	out := g.projectiles.Update(p, now-g.round.FiredAt, &g.round.Opponent, g.round.Terrain)
	if out.Kind == component.OutcomeNone {
		return
	}

	if out.Kind == component.OutcomeHit {
		out.Struck.Alive = false
	}
	g.round.Outcome = out
	g.round.Trail = append(append([]component.Point(nil), p.Trail...), component.Point{X: p.X, Y: p.Y})
	g.round.Projectile = nil
	g.round.Phase = component.ResolvedPhase

	data := event.ShotResultData{
		Round:    g.info(),
		Outcome:  out.Kind.String(),
		Reason:   out.Reason.String(),
		X:        p.X,
		Y:        p.Y,
		SimTime:  p.SimTime,
		Duration: now - g.round.FiredAt,
	}
	if out.Kind == component.OutcomeHit {
		g.dispatcher.Dispatch(event.Event{Type: event.TargetHit, Data: data})
	} else {
		g.dispatcher.Dispatch(event.Event{Type: event.ShotMissed, Data: data})
	}
}

func (g *Game) quit() {
	phase := g.round.Phase
	if phase != component.ResolvedPhase {
		g.round.Outcome = component.RoundOutcome{Kind: component.OutcomeAborted}
		g.round.Projectile = nil
		g.dispatcher.Dispatch(event.Event{Type: event.RoundAborted, Data: event.RoundAbortedData{
			Round: g.info(),
			Phase: phase.String(),
		}})
	}
	g.round.Phase = component.QuitPhase
}
