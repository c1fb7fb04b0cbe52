// internal/state/title_state.go
package state

import (
	"go-scorched-earth/internal/config"
	"go-scorched-earth/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const titlePrompt = "Press Space to start, Escape to quit"

// TitleState — заставка перед первым раундом
type TitleState struct {
	sm     *StateMachine
	source input.Source
	next   State
	face   font.Face
}

func NewTitleState(sm *StateMachine, source input.Source, next State, face font.Face) *TitleState {
	return &TitleState{sm: sm, source: source, next: next, face: face}
}

func (t *TitleState) Enter() {}

func (t *TitleState) Update() error {
	actions := t.source.Poll()
	switch {
	case actions.Quit:
		return ebiten.Termination
	case actions.Fire:
		t.sm.SetState(t.next)
	}
	return nil
}

func (t *TitleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.SkyColor)
	if t.face == nil {
		return
	}
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	b := text.BoundString(t.face, config.WindowTitle)
	text.Draw(screen, config.WindowTitle, t.face, (w-b.Dx())/2, h/3, config.TextLightColor)
	b = text.BoundString(t.face, titlePrompt)
	text.Draw(screen, titlePrompt, t.face, (w-b.Dx())/2, h/2, config.TextLightColor)
}

func (t *TitleState) Exit() {}
