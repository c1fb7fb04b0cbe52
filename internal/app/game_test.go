package app

import (
	"testing"
	"time"

	"go-scorched-earth/internal/component"
	"go-scorched-earth/internal/config"
	"go-scorched-earth/internal/event"
	"go-scorched-earth/internal/input"
	"go-scorched-earth/internal/utils"
	"go-scorched-earth/pkg/ballistics"
	"go-scorched-earth/pkg/terrain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestGame(t *testing.T, mutate func(*Options)) (*Game, *recorder) {
	t.Helper()
	opts := OptionsFromSettings(config.Defaults())
	if mutate != nil {
		mutate(&opts)
	}
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec)

	g := NewGame(opts, utils.NewPRNGService(1234), d)
	require.NoError(t, g.Start())
	return g, rec
}

func press(t *testing.T, g *Game, a input.Actions, n int, now time.Duration) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, g.Update(a, now))
	}
}

func TestStart_BuildsFirstRound(t *testing.T) {
	g, rec := newTestGame(t, nil)
	r := g.Round()

	assert.Equal(t, component.AimingPhase, r.Phase)
	assert.Equal(t, 1, r.Number)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, component.AimState{Angle: 45, Velocity: 50}, r.Aim)
	assert.Less(t, r.Player.X, r.Opponent.X)
	assert.Equal(t, component.FacingRight, r.Player.Facing)
	assert.Equal(t, component.FacingLeft, r.Opponent.Facing)
	assert.True(t, r.Player.Alive)
	assert.True(t, r.Opponent.Alive)
	assert.Equal(t, []event.EventType{event.RoundStarted}, rec.types())

	data := rec.events[0].Data.(event.RoundStartedData)
	assert.Equal(t, int64(1234), data.Seed)
	assert.Equal(t, 14, data.Samples)

	// повторный Start ничего не делает
	require.NoError(t, g.Start())
	assert.Equal(t, 1, g.Round().Number)
}

func TestUpdate_SetupOnFirstTickWithoutStart(t *testing.T) {
	g := NewGame(OptionsFromSettings(config.Defaults()), utils.NewPRNGService(5), nil)
	require.NoError(t, g.Update(input.Actions{}, 0))
	assert.Equal(t, component.AimingPhase, g.Round().Phase)
}

func TestSetup_InsufficientTerrain(t *testing.T) {
	opts := OptionsFromSettings(config.Defaults())
	opts.Spacing = 400 // 1024 / 400 -> 3 samples

	g := NewGame(opts, utils.NewPRNGService(1), nil)
	err := g.Start()
	require.Error(t, err)
	assert.ErrorIs(t, err, terrain.ErrInsufficientTerrain)
	assert.Equal(t, component.SetupPhase, g.Round().Phase)
}

func TestAiming_VelocityClampedAtMaximum(t *testing.T) {
	g, _ := newTestGame(t, nil)

	press(t, g, input.Actions{PowerUp: true}, 950, 0)
	assert.Equal(t, 1000, g.Round().Aim.Velocity)

	press(t, g, input.Actions{PowerUp: true}, 100, 0)
	assert.Equal(t, 1000, g.Round().Aim.Velocity)
}

func TestAiming_ClampsAngleAndVelocityFloor(t *testing.T) {
	g, _ := newTestGame(t, nil)

	press(t, g, input.Actions{AngleUp: true}, 60, 0)
	assert.Equal(t, 90, g.Round().Aim.Angle)

	press(t, g, input.Actions{AngleDown: true}, 120, 0)
	assert.Equal(t, 0, g.Round().Aim.Angle)

	press(t, g, input.Actions{PowerDown: true}, 60, 0)
	assert.Equal(t, 0, g.Round().Aim.Velocity)
}

func TestAiming_OneActionPerTick(t *testing.T) {
	g, _ := newTestGame(t, nil)

	press(t, g, input.Actions{AngleUp: true, PowerUp: true, Fire: true}, 1, 0)
	r := g.Round()
	assert.Equal(t, component.AimState{Angle: 46, Velocity: 50}, r.Aim)
	assert.Equal(t, component.AimingPhase, r.Phase)

	press(t, g, input.Actions{PowerDown: true, Fire: true}, 1, 0)
	r = g.Round()
	assert.Equal(t, component.AimState{Angle: 46, Velocity: 49}, r.Aim)
	assert.Equal(t, component.AimingPhase, r.Phase)
}

func TestFire_CapturesProjectileAtMuzzle(t *testing.T) {
	g, rec := newTestGame(t, nil)

	press(t, g, input.Actions{Fire: true}, 1, 3*time.Second)
	r := g.Round()
	require.Equal(t, component.FiringPhase, r.Phase)
	require.NotNil(t, r.Projectile)

	mx, my := r.Player.Muzzle()
	assert.Equal(t, mx, r.Projectile.OriginX)
	assert.Equal(t, my, r.Projectile.OriginY)
	assert.Equal(t, 45.0, r.Projectile.Angle)
	assert.Equal(t, 50.0, r.Projectile.Velocity)
	assert.Equal(t, 3*time.Second, r.FiredAt)

	require.Len(t, rec.events, 2)
	shot := rec.events[1].Data.(event.ShotFiredData)
	assert.InDelta(t, 255.1, shot.FlatRange, 0.01)
}

func TestFiring_IgnoresAimInput(t *testing.T) {
	g, _ := newTestGame(t, func(o *Options) { o.TerrainCollision = false })
	press(t, g, input.Actions{Fire: true}, 1, 0)

	press(t, g, input.Actions{AngleUp: true, PowerUp: true}, 1, time.Millisecond)
	assert.Equal(t, component.AimState{Angle: 45, Velocity: 50}, g.Round().Aim)
}

func TestFiring_HitDestroysOpponent(t *testing.T) {
	g, rec := newTestGame(t, func(o *Options) { o.TerrainCollision = false })

	// ставим противника точно в точку падения на уровне вылета
	mx, my := g.round.Player.Muzzle()
	g.round.Opponent.X = mx + ballistics.Range(50, 45)
	g.round.Opponent.Y = my + 10

	press(t, g, input.Actions{Fire: true}, 1, 0)
	landing := time.Duration(ballistics.FlightTime(50, 45) / config.TimeScale * float64(time.Second))
	press(t, g, input.Actions{}, 1, landing)

	r := g.Round()
	require.Equal(t, component.ResolvedPhase, r.Phase)
	assert.Equal(t, component.OutcomeHit, r.Outcome.Kind)
	assert.False(t, r.Opponent.Alive)
	assert.True(t, r.Player.Alive)
	assert.Nil(t, r.Projectile)
	assert.NotEmpty(t, r.Trail)
	assert.Equal(t, event.TargetHit, rec.events[len(rec.events)-1].Type)

	// Struck указывает на танк противника внутри игры
	assert.Same(t, &g.round.Opponent, g.round.Outcome.Struck)
}

func TestFiring_FallsIntoGround(t *testing.T) {
	g, rec := newTestGame(t, nil)
	press(t, g, input.Actions{PowerDown: true}, 50, 0)

	press(t, g, input.Actions{Fire: true}, 1, 0)
	now := time.Duration(0)
	for i := 0; i < 100 && g.Round().Phase == component.FiringPhase; i++ {
		now += 50 * time.Millisecond
		press(t, g, input.Actions{}, 1, now)
	}

	r := g.Round()
	require.Equal(t, component.ResolvedPhase, r.Phase)
	assert.Equal(t, component.OutcomeMiss, r.Outcome.Kind)
	assert.Equal(t, component.MissHitGround, r.Outcome.Reason)
	assert.InDelta(t, r.Player.X, r.Outcome.Impact.X, 1e-9)
	assert.Equal(t, event.ShotMissed, rec.events[len(rec.events)-1].Type)
}

func TestQuit_MidFlightEndsOnSameTick(t *testing.T) {
	g, rec := newTestGame(t, func(o *Options) { o.TerrainCollision = false })
	press(t, g, input.Actions{AngleUp: true}, 45, 0) // прямо вверх, летит долго
	press(t, g, input.Actions{PowerUp: true}, 500, 0)
	press(t, g, input.Actions{Fire: true}, 1, 0)
	press(t, g, input.Actions{}, 1, 100*time.Millisecond)
	require.Equal(t, component.FiringPhase, g.Round().Phase)

	require.NoError(t, g.Update(input.Actions{Quit: true}, 200*time.Millisecond))

	assert.True(t, g.Done())
	r := g.Round()
	assert.Equal(t, component.QuitPhase, r.Phase)
	assert.Equal(t, component.OutcomeAborted, r.Outcome.Kind)
	assert.Nil(t, r.Projectile)

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, event.RoundAborted, last.Type)
	assert.Equal(t, "firing", last.Data.(event.RoundAbortedData).Phase)

	// после выхода тики ничего не меняют
	count := len(rec.events)
	press(t, g, input.Actions{Fire: true}, 3, time.Second)
	assert.Len(t, rec.events, count)
	assert.True(t, g.Done())
}

func TestQuit_AfterResolvedKeepsOutcome(t *testing.T) {
	g, rec := newTestGame(t, nil)
	press(t, g, input.Actions{PowerDown: true}, 50, 0)
	press(t, g, input.Actions{Fire: true}, 1, 0)
	press(t, g, input.Actions{}, 1, 10*time.Second)
	require.Equal(t, component.ResolvedPhase, g.Round().Phase)
	count := len(rec.events)

	press(t, g, input.Actions{Quit: true}, 1, 11*time.Second)
	assert.True(t, g.Done())
	assert.Equal(t, component.OutcomeMiss, g.Round().Outcome.Kind)
	assert.Len(t, rec.events, count)
}

func TestRoundTrip_MissThenNewRoundResetsAim(t *testing.T) {
	g, rec := newTestGame(t, func(o *Options) { o.TerrainCollision = false })
	first := g.Round()

	press(t, g, input.Actions{AngleUp: true}, 15, 0)
	press(t, g, input.Actions{PowerDown: true}, 50, 0)
	require.Equal(t, component.AimState{Angle: 60, Velocity: 0}, g.Round().Aim)

	press(t, g, input.Actions{Fire: true}, 1, 0)
	now := time.Duration(0)
	for i := 0; i < 200 && g.Round().Phase == component.FiringPhase; i++ {
		now += 100 * time.Millisecond
		press(t, g, input.Actions{}, 1, now)
	}
	r := g.Round()
	require.Equal(t, component.ResolvedPhase, r.Phase)
	require.Equal(t, component.OutcomeMiss, r.Outcome.Kind)
	assert.Equal(t, component.MissLeftPlayfield, r.Outcome.Reason)

	// без подтверждения раунд не меняется
	press(t, g, input.Actions{AngleUp: true}, 1, now)
	assert.Equal(t, component.ResolvedPhase, g.Round().Phase)

	press(t, g, input.Actions{Fire: true}, 1, now)
	next := g.Round()
	assert.Equal(t, component.AimingPhase, next.Phase)
	assert.Equal(t, component.AimState{Angle: 45, Velocity: 50}, next.Aim)
	assert.Equal(t, 2, next.Number)
	assert.NotEqual(t, first.ID, next.ID)
	assert.Equal(t, component.OutcomeNone, next.Outcome.Kind)
	assert.Empty(t, next.Trail)

	assert.Equal(t, []event.EventType{
		event.RoundStarted, event.ShotFired, event.ShotMissed, event.RoundStarted,
	}, rec.types())
}

func TestSnapshot_DoesNotShareMemory(t *testing.T) {
	g, _ := newTestGame(t, func(o *Options) { o.TerrainCollision = false })
	press(t, g, input.Actions{Fire: true}, 1, 0)
	press(t, g, input.Actions{}, 1, 100*time.Millisecond)
	press(t, g, input.Actions{}, 1, 200*time.Millisecond)

	s := g.Snapshot()
	require.NotNil(t, s.Projectile)
	require.NotEmpty(t, s.Projectile.Trail)
	assert.Equal(t, component.FiringPhase, s.Phase)
	assert.Len(t, s.Terrain, 14+3)
	assert.Equal(t, s.Terrain[0], s.Terrain[len(s.Terrain)-1])

	s.Projectile.Trail[0].X = -999
	assert.NotEqual(t, -999.0, g.Round().Projectile.Trail[0].X)
}
