// cmd/game/main.go
package main

import (
	"errors"
	"net/http"
	_ "net/http/pprof"
	"os"

	"go-scorched-earth/internal/app"
	"go-scorched-earth/internal/clock"
	"go-scorched-earth/internal/config"
	"go-scorched-earth/internal/event"
	"go-scorched-earth/internal/input/keyboard"
	"go-scorched-earth/internal/logging"
	"go-scorched-earth/internal/state"
	"go-scorched-earth/internal/telemetry"
	"go-scorched-earth/internal/ui"
	"go-scorched-earth/internal/utils"
	"go-scorched-earth/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromTitle = true // false — сразу в бой, без заставки

type AppGame struct {
	stateMachine *state.StateMachine
	width        int
	height       int
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	settings, err := config.Load(os.Args[1:])
	if err != nil {
		fallback := logging.Setup("info", os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load settings")
	}
	log := logging.Setup(settings.LogLevel, os.Stderr)

	if settings.PprofAddr != "" {
		go func() {
			log.Info().Str("addr", settings.PprofAddr).Msg("pprof listening")
			if err := http.ListenAndServe(settings.PprofAddr, nil); err != nil {
				log.Error().Err(err).Msg("pprof server stopped")
			}
		}()
	}

	rng := utils.NewPRNGService(settings.Seed)
	dispatcher := event.NewDispatcher()
	dispatcher.SubscribeAll(logging.NewRoundListener(log))
	recorder, err := telemetry.NewRecorder(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up metrics")
	}
	dispatcher.SubscribeAll(recorder)

	game := app.NewGame(app.OptionsFromSettings(settings), rng, dispatcher)
	if err := game.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start round")
	}

	hud, err := ui.NewHUD(config.HUDFontSize, settings.Width)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load HUD font")
	}
	scene := render.NewSceneRenderer(render.Palette{
		Sky:        config.SkyColor,
		Ground:     config.GroundColor,
		GroundEdge: config.GroundEdgeColor,
		Player:     config.PlayerColor,
		Opponent:   config.OpponentColor,
		Wreck:      config.WreckColor,
		Projectile: config.ProjectileColor,
		Trail:      config.TrailColor,
		Impact:     config.ImpactColor,
	}, render.SceneOptions{
		BarrelLength:     config.BarrelLength,
		BarrelWidth:      config.BarrelWidth,
		ProjectileRadius: config.ProjectileRadius,
		ImpactRadius:     config.ImpactRadius,
	})

	keys := keyboard.NewKeyboard(keyboard.DefaultKeyMap())
	driver := app.NewDriver(game, keys, clock.NewMonotonic())
	play := state.NewPlayState(driver, log, scene, hud)

	sm := state.NewStateMachine()
	if startFromTitle {
		titleFace, err := ui.NewFace(config.HUDFontSize * 1.5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load title font")
		}
		sm.SetState(state.NewTitleState(sm, keys, play, titleFace))
	} else {
		sm.SetState(play)
	}

	log.Info().
		Int64("seed", rng.Seed()).
		Int("tps", settings.TicksPerSecond).
		Bool("terrainCollision", settings.TerrainCollision).
		Msg("starting")

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(settings.TicksPerSecond)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, width: settings.Width, height: settings.Height}); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop failed")
	}
	log.Info().Int("rounds", game.Round().Number).Msg("bye")
}
