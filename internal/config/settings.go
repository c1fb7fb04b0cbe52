// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"go-scorched-earth/pkg/terrain"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidSettings — настройки, с которыми раунд не может быть построен
var ErrInvalidSettings = errors.New("invalid settings")

// Settings — параметры запуска, которые можно переопределить файлом, окружением или флагами
type Settings struct {
	Width            int     `mapstructure:"width"`
	Height           int     `mapstructure:"height"`
	Border           int     `mapstructure:"border"`
	Spacing          int     `mapstructure:"spacing"`
	Seed             int64   `mapstructure:"seed"`
	TimeScale        float64 `mapstructure:"timeScale"`
	TicksPerSecond   int     `mapstructure:"tps"`
	TerrainCollision bool    `mapstructure:"terrainCollision"`
	LogLevel         string  `mapstructure:"logLevel"`
	PprofAddr        string  `mapstructure:"pprof"` // пусто — профилировщик выключен
}

// Defaults возвращает настройки, собранные из констант пакета
func Defaults() Settings {
	return Settings{
		Width:            ScreenWidth,
		Height:           ScreenHeight,
		Border:           TerrainBorder,
		Spacing:          TerrainSpacing,
		TimeScale:        TimeScale,
		TicksPerSecond:   TicksPerSecond,
		TerrainCollision: TerrainCollision,
		LogLevel:         "info",
	}
}

// Load собирает Settings: значения по умолчанию, затем JSON-файл (--config),
// затем переменные окружения SCORCHED_*, затем флаги командной строки.
func Load(args []string) (Settings, error) {
	fs := pflag.NewFlagSet("scorched", pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to a JSON settings file")
	fs.Int64("seed", 0, "terrain seed (0 picks one from the clock)")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.Int("tps", TicksPerSecond, "simulation ticks per second")
	fs.Bool("terrain-collision", TerrainCollision, "stop shots that fly into the ground")
	fs.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	if err := fs.Parse(args); err != nil {
		return Settings{}, fmt.Errorf("failed to parse flags: %w", err)
	}

	v := viper.New()
	def := Defaults()
	v.SetDefault("width", def.Width)
	v.SetDefault("height", def.Height)
	v.SetDefault("border", def.Border)
	v.SetDefault("spacing", def.Spacing)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("timeScale", def.TimeScale)
	v.SetDefault("tps", def.TicksPerSecond)
	v.SetDefault("terrainCollision", def.TerrainCollision)
	v.SetDefault("logLevel", def.LogLevel)
	v.SetDefault("pprof", def.PprofAddr)

	v.SetEnvPrefix("SCORCHED")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if *configPath != "" {
		v.SetConfigFile(*configPath)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Флаги перекрывают всё остальное, но только если заданы явно
	flagKeys := map[string]string{
		"seed":              "seed",
		"log-level":         "logLevel",
		"tps":               "tps",
		"terrain-collision": "terrainCollision",
		"pprof":             "pprof",
	}
	for flagName, key := range flagKeys {
		if f := fs.Lookup(flagName); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return Settings{}, fmt.Errorf("failed to bind flag %s: %w", flagName, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate отклоняет геометрию, на которой нельзя расставить танки
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: playfield %dx%d", ErrInvalidSettings, s.Width, s.Height)
	}
	if s.Spacing <= 0 {
		return fmt.Errorf("%w: spacing %d", ErrInvalidSettings, s.Spacing)
	}
	if s.Border < 0 || s.Border > s.Height-s.Border {
		return fmt.Errorf("%w: border %d for height %d", ErrInvalidSettings, s.Border, s.Height)
	}
	if n := terrain.SampleCount(s.Width, s.Spacing); n < terrain.MinSamples {
		return fmt.Errorf("%w: %d terrain samples, need %d: %w", ErrInvalidSettings, n, terrain.MinSamples, terrain.ErrInsufficientTerrain)
	}
	if s.TimeScale <= 0 {
		return fmt.Errorf("%w: time scale %v", ErrInvalidSettings, s.TimeScale)
	}
	if s.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidSettings, s.TicksPerSecond)
	}
	return nil
}
