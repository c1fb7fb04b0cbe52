// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-scorched-earth/internal/app"
	"go-scorched-earth/internal/component"
	"go-scorched-earth/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// HUD выводит прицел, номер раунда и итог выстрела
type HUD struct {
	face       font.Face
	bannerFace font.Face
	width      int
}

// NewFace собирает шрифт нужного размера из встроенного Go Regular
func NewFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

func NewHUD(size float64, screenWidth int) (*HUD, error) {
	face, err := NewFace(size)
	if err != nil {
		return nil, err
	}
	banner, err := NewFace(size * 1.5)
	if err != nil {
		return nil, err
	}
	return &HUD{face: face, bannerFace: banner, width: screenWidth}, nil
}

func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot) {
	text.Draw(screen, AimLabel(s.Aim), h.face, config.HUDX, config.HUDY, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Round %d", s.Round), h.face, config.HUDX, config.HUDY+config.HUDFontSize+8, config.TextLightColor)

	msg, clr := Banner(s)
	if msg == "" {
		return
	}
	b := text.BoundString(h.bannerFace, msg)
	x := (h.width - b.Dx()) / 2
	text.Draw(screen, msg, h.bannerFace, x, config.HUDY*3, clr)
}

// AimLabel — строка с текущим прицелом
func AimLabel(a component.AimState) string {
	return fmt.Sprintf("Angle: %d, Velocity: %d", a.Angle, a.Velocity)
}

// Banner — сообщение по итогам раунда; пусто, пока раунд идёт
func Banner(s app.Snapshot) (string, color.Color) {
	if s.Phase != component.ResolvedPhase {
		return "", nil
	}
	switch s.Outcome {
	case component.OutcomeHit:
		return "Direct hit! Press Space for a new round", config.HitBannerColor
	case component.OutcomeMiss:
		if s.Reason == component.MissHitGround {
			return "Into the dirt. Press Space for a new round", config.MissBannerColor
		}
		return "Missed. Press Space for a new round", config.MissBannerColor
	}
	return "", nil
}
