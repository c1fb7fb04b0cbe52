// internal/app/driver.go
package app

import (
	"go-scorched-earth/internal/clock"
	"go-scorched-earth/internal/input"
)

// Driver связывает игру с источником ввода и часами: один вызов Tick — один кадр
type Driver struct {
	game  *Game
	input input.Source
	clock clock.Clock
}

func NewDriver(game *Game, source input.Source, clk clock.Clock) *Driver {
	return &Driver{game: game, input: source, clock: clk}
}

// Tick опрашивает ввод и часы, продвигает игру и возвращает снимок для отрисовки
func (d *Driver) Tick() (Snapshot, error) {
	actions := d.input.Poll()
	if err := d.game.Update(actions, d.clock.Elapsed()); err != nil {
		return Snapshot{}, err
	}
	return d.game.Snapshot(), nil
}

// Done сообщает, что игрок вышел
func (d *Driver) Done() bool {
	return d.game.Done()
}

// Game возвращает управляемую игру
func (d *Driver) Game() *Game {
	return d.game
}
