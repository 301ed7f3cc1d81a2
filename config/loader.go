package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Tuning is the part of the configuration that can be overridden from a YAML file.
type Tuning struct {
	Game    Config        `yaml:"game"`
	Player  PlayerConfig  `yaml:"player"`
	Pipe    PipeConfig    `yaml:"pipe"`
	Physics PhysicsConfig `yaml:"physics"`
	Score   ScoreConfig   `yaml:"score"`
}

// Current returns a copy of the active tuning values.
func Current() Tuning {
	return Tuning{
		Game:    *C,
		Player:  Player,
		Pipe:    Pipe,
		Physics: Physics,
		Score:   Score,
	}
}

// Apply makes t the active tuning.
func Apply(t Tuning) {
	game := t.Game
	C = &game
	Player = t.Player
	Pipe = t.Pipe
	Physics = t.Physics
	Score = t.Score
}

// Parse decodes YAML on top of base. Keys missing from data keep the base value.
func Parse(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: parse: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// Load reads the tuning file and returns it with the path it came from.
// Search order: customPath -> ~/.flapbird/config.yaml -> ./configs/flapbird.yaml -> built-in defaults.
// An explicit customPath that cannot be read or parsed is an error; the other
// locations are optional.
func Load(customPath string) (Tuning, string, error) {
	base := Current()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		t, err := Parse(data, base)
		if err != nil {
			return base, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return t, customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "flapbird.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		t, err := Parse(data, base)
		if err != nil {
			return base, "", fmt.Errorf("config: %s: %w", path, err)
		}
		return t, path, nil
	}

	return base, "", nil
}

// KeepStartup returns t with the values that only take effect at startup
// taken from active: window size, scale, seed, tick rate and collision cell
// size. It reports whether t tried to change any of them.
func (t Tuning) KeepStartup(active Tuning) (Tuning, bool) {
	changed := t.Game.Width != active.Game.Width ||
		t.Game.Height != active.Game.Height ||
		t.Game.Scale != active.Game.Scale ||
		t.Physics.TPS != active.Physics.TPS ||
		t.Physics.CellSize != active.Physics.CellSize

	t.Game = active.Game
	t.Physics.TPS = active.Physics.TPS
	t.Physics.CellSize = active.Physics.CellSize
	return t, changed
}

// Validate reports values the game cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Game.Width <= 0 || t.Game.Height <= 0 {
		errs = append(errs, fmt.Errorf("game: resolution must be positive, got %dx%d", t.Game.Width, t.Game.Height))
	}
	if t.Game.Scale <= 0 {
		errs = append(errs, fmt.Errorf("game: scale must be positive, got %v", t.Game.Scale))
	}
	if t.Pipe.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("pipe: blockSize must be positive, got %v", t.Pipe.BlockSize))
	}
	if t.Pipe.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("pipe: spawnInterval must be positive, got %v", t.Pipe.SpawnInterval))
	}
	if t.Pipe.GapWidth <= 0 {
		errs = append(errs, fmt.Errorf("pipe: gapWidth must be positive, got %d", t.Pipe.GapWidth))
	}
	if t.Game.Scale > 0 && t.Pipe.BlockSize > 0 {
		columns := int(float64(t.Game.Height) / (t.Game.Scale * t.Pipe.BlockSize))
		if t.Pipe.GapWidth > columns {
			errs = append(errs, fmt.Errorf("pipe: gapWidth %d does not fit in %d columns", t.Pipe.GapWidth, columns))
		}
	}
	if t.Physics.TPS <= 0 {
		errs = append(errs, fmt.Errorf("physics: tps must be positive, got %d", t.Physics.TPS))
	}
	if t.Physics.DeadZoneBottom <= t.Physics.DeadZoneTop {
		errs = append(errs, fmt.Errorf("physics: deadZoneBottom %v must be below deadZoneTop %v", t.Physics.DeadZoneBottom, t.Physics.DeadZoneTop))
	}
	if t.Physics.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("physics: cellSize must be positive, got %d", t.Physics.CellSize))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flapbird", filename)
}
