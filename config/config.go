package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Config is the whole game configuration. It is replaced as a unit on reload.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Pawn     PawnConfig    `yaml:"pawn"`
	Physics  PhysicsConfig `yaml:"physics"`
	Camera   CameraConfig  `yaml:"camera"`
	Spawner  SpawnerConfig `yaml:"spawner"`
	Levels   []LevelConfig `yaml:"levels"`
}

// PawnConfig holds walker defaults.
type PawnConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Density      float64 `yaml:"density"`
	WalkSpeed    float64 `yaml:"walk_speed"`
	Acceleration float64 `yaml:"acceleration"`
}

type PhysicsConfig struct {
	Gravity               Vec2    `yaml:"gravity"`
	LiftWidth             float64 `yaml:"lift_width"`
	LiftHeight            float64 `yaml:"lift_height"`
	LiftVelocity          Vec2    `yaml:"lift_velocity"`
	ChangeDirectionWidth  float64 `yaml:"change_direction_width"`
	ChangeDirectionHeight float64 `yaml:"change_direction_height"`
	MatriarchGracePeriod  float64 `yaml:"matriarch_grace_period"`
	RamSize               Vec2    `yaml:"ram_size"`
	RamDensity            float64 `yaml:"ram_density"`
	RamVelocity           Vec2    `yaml:"ram_velocity"`
	RamLife               float64 `yaml:"ram_life"`
}

type CameraConfig struct {
	Offset           Vec2    `yaml:"offset"`
	ConvergenceSpeed float64 `yaml:"convergence_speed"`
	ZoomSpeed        float64 `yaml:"zoom_speed"`
	ZMin             float64 `yaml:"z_min"`
	ZMax             float64 `yaml:"z_max"`
	FinalPosition    *Vec3   `yaml:"final_position"`
}

type SpawnerConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MaxCount  uint64  `yaml:"max_count"`
	Frequency Range   `yaml:"frequency"`
}

// BoxConfig is a box centred at (X, Y).
type BoxConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Rotation float64 `yaml:"rotation"`
}

type LevelConfig struct {
	Name          string         `yaml:"name"`
	Description   string         `yaml:"description"`
	Spawn         Vec2           `yaml:"spawn"`
	Spawner       *SpawnerConfig `yaml:"spawner"`
	Platforms     []BoxConfig    `yaml:"platforms"`
	Hazards       []BoxConfig    `yaml:"hazards"`
	Exit          BoxConfig      `yaml:"exit"`
	Left          float64        `yaml:"left"`
	Right         float64        `yaml:"right"`
	KillHeight    float64        `yaml:"kill_height"`
	FinalPosition *Vec3          `yaml:"final_position"`
}

// SpawnerFor returns the level's spawner override or the global section.
func (c *Config) SpawnerFor(level LevelConfig) SpawnerConfig {
	if level.Spawner != nil {
		return *level.Spawner
	}
	return c.Spawner
}

// FinalPositionFor returns the camera end position for a level, preferring the
// level's own setting.
func (c *Config) FinalPositionFor(level LevelConfig) *Vec3 {
	if level.FinalPosition != nil {
		return level.FinalPosition
	}
	return c.Camera.FinalPosition
}

// Parse decodes and validates YAML. Unknown keys are rejected so typos do not
// silently fall back to zero values.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytesReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads path from disk, falling back to the embedded default when the
// file does not exist.
func Load(path string) (*Config, error) {
	data, err := read(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("config: embedded default: %w", err)
	}
	return cfg, nil
}

func read(path string) ([]byte, error) {
	if path == "" {
		return defaultYAML, nil
	}
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return defaultYAML, nil
	}
	return nil, fmt.Errorf("config: read %s: %w", path, err)
}

// Validate reports every malformed value at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Pawn.Width <= 0 || c.Pawn.Height <= 0 {
		bad("pawn size must be positive, got %gx%g", c.Pawn.Width, c.Pawn.Height)
	}
	if c.Pawn.Density <= 0 {
		bad("pawn.density must be positive")
	}
	if c.Pawn.WalkSpeed < 0 || c.Pawn.Acceleration < 0 {
		bad("pawn speeds must not be negative")
	}
	if c.Physics.LiftWidth <= 0 || c.Physics.LiftHeight <= 0 {
		bad("physics lift size must be positive")
	}
	if c.Physics.ChangeDirectionWidth <= 0 || c.Physics.ChangeDirectionHeight <= 0 {
		bad("physics change_direction size must be positive")
	}
	if c.Physics.MatriarchGracePeriod < 0 {
		bad("physics.matriarch_grace_period must not be negative")
	}
	if c.Physics.RamSize.X <= 0 || c.Physics.RamSize.Y <= 0 {
		bad("physics.ram_size must be positive")
	}
	if c.Physics.RamDensity <= 0 {
		bad("physics.ram_density must be positive")
	}
	if c.Physics.RamLife <= 0 {
		bad("physics.ram_life must be positive")
	}
	if c.Camera.ConvergenceSpeed < 0 || c.Camera.ZoomSpeed < 0 {
		bad("camera speeds must not be negative")
	}
	if c.Camera.ZMin > c.Camera.ZMax {
		bad("camera.z_min %g exceeds z_max %g", c.Camera.ZMin, c.Camera.ZMax)
	}
	if err := c.Spawner.validate("spawner"); err != nil {
		errs = append(errs, err)
	}
	if len(c.Levels) == 0 {
		bad("levels must not be empty")
	}
	for i, lvl := range c.Levels {
		if lvl.Name == "" {
			bad("levels[%d].name is required", i)
		}
		if lvl.Spawner != nil {
			if err := lvl.Spawner.validate(fmt.Sprintf("levels[%d].spawner", i)); err != nil {
				errs = append(errs, err)
			}
		}
		if lvl.Exit.Width <= 0 || lvl.Exit.Height <= 0 {
			bad("levels[%d].exit size must be positive", i)
		}
		if lvl.Right <= lvl.Left {
			bad("levels[%d] right %g must exceed left %g", i, lvl.Right, lvl.Left)
		}
		for j, box := range append(append([]BoxConfig(nil), lvl.Platforms...), lvl.Hazards...) {
			if box.Width <= 0 || box.Height <= 0 {
				bad("levels[%d] box %d size must be positive", i, j)
			}
		}
	}
	return errors.Join(errs...)
}

func (s SpawnerConfig) validate(path string) error {
	var errs []error
	if s.Width < 0 || s.Height < 0 {
		errs = append(errs, fmt.Errorf("%w: %s size must not be negative", ErrInvalid, path))
	}
	if s.Frequency.Min <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s.frequency.min must be positive", ErrInvalid, path))
	}
	if s.Frequency.Max < s.Frequency.Min {
		errs = append(errs, fmt.Errorf("%w: %s.frequency.max %g is below min %g", ErrInvalid, path, s.Frequency.Max, s.Frequency.Min))
	}
	return errors.Join(errs...)
}
