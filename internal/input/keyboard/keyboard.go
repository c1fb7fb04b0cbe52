// internal/input/keyboard/keyboard.go
package keyboard

import (
	"go-scorched-earth/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyMap — привязка клавиш к действиям
type KeyMap struct {
	AngleUp   []ebiten.Key
	AngleDown []ebiten.Key
	PowerUp   []ebiten.Key
	PowerDown []ebiten.Key
	Fire      []ebiten.Key
	Quit      []ebiten.Key
}

// DefaultKeyMap — стрелки и цифровой блок
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AngleUp:   []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyNumpad8},
		AngleDown: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyNumpad2},
		PowerUp:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyNumpadAdd, ebiten.KeyEqual},
		PowerDown: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyNumpadSubtract, ebiten.KeyMinus},
		Fire:      []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		Quit:      []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ},
	}
}

var _ input.Source = (*Keyboard)(nil)

// Keyboard читает клавиатуру через ebiten.
// Прицел меняется, пока клавиша зажата; выстрел и выход срабатывают по нажатию.
type Keyboard struct {
	keys KeyMap
}

func NewKeyboard(keys KeyMap) *Keyboard {
	return &Keyboard{keys: keys}
}

func (k *Keyboard) Poll() input.Actions {
	return input.Actions{
		AngleUp:   anyPressed(k.keys.AngleUp),
		AngleDown: anyPressed(k.keys.AngleDown),
		PowerUp:   anyPressed(k.keys.PowerUp),
		PowerDown: anyPressed(k.keys.PowerDown),
		Fire:      anyJustPressed(k.keys.Fire),
		Quit:      anyJustPressed(k.keys.Quit),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
