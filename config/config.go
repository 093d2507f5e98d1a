package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/input"
)

const (
	// FileName is looked up in the working directory when no path is given
	FileName = "vi-invaders.json"
	// EnvPrefix scopes environment overrides, e.g. VI_INVADERS_AUDIO_ENABLED
	EnvPrefix = "VI_INVADERS"
)

// Colour modes accepted by render.colorMode
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
	ColorMono      = "mono"
)

// ErrInvalid marks a value outside its accepted range
var ErrInvalid = errors.New("invalid config value")

// SimulationConfig tunes the fixed-step loop
type SimulationConfig struct {
	TicksPerFrame       int     `json:"ticksPerFrame" mapstructure:"ticksPerFrame"`
	EnemyFireChance     float64 `json:"enemyFireChance" mapstructure:"enemyFireChance"`
	InfiniteSpawnChance float64 `json:"infiniteSpawnChance" mapstructure:"infiniteSpawnChance"`
}

// InputConfig holds key tracking settings
type InputConfig struct {
	HoldWindow time.Duration `json:"holdWindow" mapstructure:"holdWindow"`
}

// AudioConfig holds speaker settings
type AudioConfig struct {
	Enabled      bool    `json:"enabled" mapstructure:"enabled"`
	MasterVolume float64 `json:"masterVolume" mapstructure:"masterVolume"`
	SampleRate   int     `json:"sampleRate" mapstructure:"sampleRate"`
}

// ScoresConfig holds high-score storage settings
type ScoresConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Path    string `json:"path" mapstructure:"path"`
}

// RenderConfig holds terminal output settings
type RenderConfig struct {
	ColorMode string `json:"colorMode" mapstructure:"colorMode"`
}

// Settings is the typed view of the whole configuration
type Settings struct {
	LogLevel   string           `json:"logLevel" mapstructure:"logLevel"`
	Simulation SimulationConfig `json:"simulation" mapstructure:"simulation"`
	Input      InputConfig      `json:"input" mapstructure:"input"`
	Audio      AudioConfig      `json:"audio" mapstructure:"audio"`
	Scores     ScoresConfig     `json:"scores" mapstructure:"scores"`
	Render     RenderConfig     `json:"render" mapstructure:"render"`
}

// SetDefaults registers every key with its default value
func SetDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("simulation.ticksPerFrame", constants.DefaultTicksPerFrame)
	viper.SetDefault("simulation.enemyFireChance", constants.DefaultEnemyFireChance)
	viper.SetDefault("simulation.infiniteSpawnChance", constants.DefaultInfiniteSpawnChance)

	viper.SetDefault("input.holdWindow", input.DefaultHoldWindow)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.masterVolume", constants.DefaultMasterVolume)
	viper.SetDefault("audio.sampleRate", constants.DefaultSampleRate)

	viper.SetDefault("scores.enabled", false)
	viper.SetDefault("scores.path", "vi-invaders.db")

	viper.SetDefault("render.colorMode", ColorAuto)
}

// Load sets defaults, binds environment overrides and reads the JSON file.
// An empty path looks for FileName in the working directory and tolerates its
// absence; an explicit path must exist.
func Load(path string) error {
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetConfigType("json")

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}

	viper.SetConfigName(FileName)
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Get decodes and validates the current configuration
func Get() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks ranges of every tunable
func (s Settings) Validate() error {
	if s.Simulation.TicksPerFrame < 1 {
		return fmt.Errorf("%w: simulation.ticksPerFrame must be at least 1, got %d", ErrInvalid, s.Simulation.TicksPerFrame)
	}
	if !isProbability(s.Simulation.EnemyFireChance) {
		return fmt.Errorf("%w: simulation.enemyFireChance must be within [0,1], got %g", ErrInvalid, s.Simulation.EnemyFireChance)
	}
	if !isProbability(s.Simulation.InfiniteSpawnChance) {
		return fmt.Errorf("%w: simulation.infiniteSpawnChance must be within [0,1], got %g", ErrInvalid, s.Simulation.InfiniteSpawnChance)
	}
	if s.Input.HoldWindow <= 0 {
		return fmt.Errorf("%w: input.holdWindow must be positive, got %s", ErrInvalid, s.Input.HoldWindow)
	}
	if s.Audio.MasterVolume < 0 || s.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.masterVolume must be within [0,1], got %g", ErrInvalid, s.Audio.MasterVolume)
	}
	if s.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sampleRate must be positive, got %d", ErrInvalid, s.Audio.SampleRate)
	}
	if s.Scores.Enabled && s.Scores.Path == "" {
		return fmt.Errorf("%w: scores.path is required when scores are enabled", ErrInvalid)
	}
	switch s.Render.ColorMode {
	case ColorAuto, ColorTrueColor, Color256, ColorMono:
	default:
		return fmt.Errorf("%w: render.colorMode %q", ErrInvalid, s.Render.ColorMode)
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
