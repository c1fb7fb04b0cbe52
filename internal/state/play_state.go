// internal/state/play_state.go
package state

import (
	"go-scorched-earth/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// SnapshotDrawer рисует снимок раунда поверх экрана
type SnapshotDrawer interface {
	Draw(screen *ebiten.Image, s app.Snapshot)
}

// PlayState — экран боя: один тик драйвера на кадр, затем отрисовка снимка
type PlayState struct {
	driver *app.Driver
	layers []SnapshotDrawer
	last   app.Snapshot
	log    zerolog.Logger
}

// NewPlayState принимает слои в порядке отрисовки (сцена, затем HUD)
func NewPlayState(driver *app.Driver, log zerolog.Logger, layers ...SnapshotDrawer) *PlayState {
	return &PlayState{driver: driver, layers: layers, log: log}
}

func (p *PlayState) Enter() {
	p.last = p.driver.Game().Snapshot()
	p.log.Debug().Int("round", p.last.Round).Msg("play started")
}

func (p *PlayState) Update() error {
	snap, err := p.driver.Tick()
	if err != nil {
		return err
	}
	p.last = snap
	if p.driver.Done() {
		return ebiten.Termination
	}
	return nil
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	for _, l := range p.layers {
		l.Draw(screen, p.last)
	}
}

func (p *PlayState) Exit() {}

// Snapshot возвращает последний снятый кадр
func (p *PlayState) Snapshot() app.Snapshot {
	return p.last
}
