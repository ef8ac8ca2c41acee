package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-racer/audio"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/render"
	"github.com/lixenwraith/vi-racer/vmath"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

const (
	// FileName is the config file looked up when no path is given
	FileName = "vi-racer.toml"
	// EnvPrefix prefixes environment overrides, car.max_speed -> VI_RACER_CAR_MAX_SPEED
	EnvPrefix = "VI_RACER"
)

// Display backends
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
	BackendHeadless = "headless"
)

// CarConfig holds physics tuning
type CarConfig struct {
	MaxSpeed         float64 `mapstructure:"max_speed"`
	AccelerationRate float64 `mapstructure:"acceleration_rate"`
	BrakingRate      float64 `mapstructure:"braking_rate"`
	TurnSpeed        float64 `mapstructure:"turn_speed"`
	Downforce        float64 `mapstructure:"downforce"`
	SteeringLock     float64 `mapstructure:"steering_lock"`
	ClampSpeed       bool    `mapstructure:"clamp_speed"`
	Inertia          string  `mapstructure:"inertia"`
	ArcadeResponse   float64 `mapstructure:"arcade_response"`
	CoastDrag        float64 `mapstructure:"coast_drag"`
	GroundY          float64 `mapstructure:"ground_y"`
}

// CameraConfig holds view placement
type CameraConfig struct {
	Mode        string    `mapstructure:"mode"`
	Fov         float64   `mapstructure:"fov"`
	EyeHeight   float64   `mapstructure:"eye_height"`
	ChaseOffset []float64 `mapstructure:"chase_offset"`
}

// DisplayConfig selects and paces the presentation backend
type DisplayConfig struct {
	Backend  string `mapstructure:"backend"`
	FPS      int    `mapstructure:"fps"`
	Color    string `mapstructure:"color"`
	ShowHint bool   `mapstructure:"show_hint"`
}

// WindowConfig holds window backend settings
type WindowConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Fullscreen bool   `mapstructure:"fullscreen"`
	Antialias  bool   `mapstructure:"antialias"`
	Title      string `mapstructure:"title"`
}

// InputConfig holds key bindings and terminal hold emulation
type InputConfig struct {
	InitialHold time.Duration       `mapstructure:"initial_hold"`
	RepeatHold  time.Duration       `mapstructure:"repeat_hold"`
	Keys        map[string][]string `mapstructure:"keys"`
}

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Volume     float64       `mapstructure:"volume"`
	SampleRate int           `mapstructure:"sample_rate"`
	Buffer     time.Duration `mapstructure:"buffer"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
}

// Config is the full program configuration
type Config struct {
	Car     CarConfig     `mapstructure:"car"`
	Camera  CameraConfig  `mapstructure:"camera"`
	Display DisplayConfig `mapstructure:"display"`
	Window  WindowConfig  `mapstructure:"window"`
	Input   InputConfig   `mapstructure:"input"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Log     LogConfig     `mapstructure:"log"`

	// Source is the file the config was read from, empty for defaults only
	Source string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("car.max_speed", parameter.CarMaxSpeed)
	v.SetDefault("car.acceleration_rate", parameter.CarAccelerationRate)
	v.SetDefault("car.braking_rate", parameter.CarBrakingRate)
	v.SetDefault("car.turn_speed", parameter.CarTurnSpeed)
	v.SetDefault("car.downforce", parameter.CarDownforce)
	v.SetDefault("car.steering_lock", parameter.CarSteeringLock)
	v.SetDefault("car.clamp_speed", true)
	v.SetDefault("car.inertia", physics.InertiaArcade.String())
	v.SetDefault("car.arcade_response", parameter.CarArcadeResponse)
	v.SetDefault("car.coast_drag", parameter.CarCoastDrag)
	v.SetDefault("car.ground_y", parameter.CarGroundY)

	o := parameter.CameraChaseOffset
	v.SetDefault("camera.mode", engine.CameraChase.String())
	v.SetDefault("camera.fov", parameter.CameraFovY)
	v.SetDefault("camera.eye_height", parameter.CameraEyeHeight)
	v.SetDefault("camera.chase_offset", []float64{o[0], o[1], o[2]})

	v.SetDefault("display.backend", BackendTerminal)
	v.SetDefault("display.fps", parameter.TargetFPS)
	v.SetDefault("display.color", "auto")
	v.SetDefault("display.show_hint", true)

	v.SetDefault("window.width", parameter.WindowWidth)
	v.SetDefault("window.height", parameter.WindowHeight)
	v.SetDefault("window.fullscreen", parameter.WindowFullscreen)
	v.SetDefault("window.antialias", true)
	v.SetDefault("window.title", parameter.WindowTitle)

	v.SetDefault("input.initial_hold", parameter.KeyInitialHold)
	v.SetDefault("input.repeat_hold", parameter.KeyRepeatHold)
	for action, keys := range input.DefaultKeyMap() {
		v.SetDefault("input.keys."+action, keys)
	}

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioMasterVolume)
	v.SetDefault("audio.sample_rate", parameter.AudioSampleRate)
	v.SetDefault("audio.buffer", parameter.AudioBufferDuration)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.dir", "logs")
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := decode(newViper())
	if err != nil {
		panic(fmt.Sprintf("default config invalid: %v", err))
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path, environment overrides apply on top
// An empty path searches FileName in the working directory and the user config dir;
// not finding it there is not an error, an explicit path that cannot be read is
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".toml"))
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(dir + "/vi-racer")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	cfg.Source = v.ConfigFileUsed()
	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enum values, every failure wraps ErrInvalidConfig
func (c *Config) Validate() error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...)))
	}

	positive := []struct {
		field string
		val   float64
	}{
		{"car.max_speed", c.Car.MaxSpeed},
		{"car.acceleration_rate", c.Car.AccelerationRate},
		{"car.braking_rate", c.Car.BrakingRate},
		{"car.turn_speed", c.Car.TurnSpeed},
		{"car.arcade_response", c.Car.ArcadeResponse},
	}
	for _, p := range positive {
		if !(p.val > 0) {
			fail(p.field, "must be positive, got %v", p.val)
		}
	}
	if !(c.Car.SteeringLock >= 0) {
		fail("car.steering_lock", "must not be negative, got %v", c.Car.SteeringLock)
	}
	if !(c.Car.CoastDrag >= 0) {
		fail("car.coast_drag", "must not be negative, got %v", c.Car.CoastDrag)
	}
	if !(c.Car.Downforce >= 0) {
		fail("car.downforce", "must not be negative, got %v", c.Car.Downforce)
	}
	if _, err := physics.ParseInertiaPolicy(c.Car.Inertia); err != nil {
		fail("car.inertia", "%v", err)
	}

	if _, err := engine.ParseCameraMode(c.Camera.Mode); err != nil {
		fail("camera.mode", "%v", err)
	}
	if !(c.Camera.Fov > 0 && c.Camera.Fov < 180) {
		fail("camera.fov", "must be in (0, 180), got %v", c.Camera.Fov)
	}
	if len(c.Camera.ChaseOffset) != 3 {
		fail("camera.chase_offset", "must have 3 components, got %d", len(c.Camera.ChaseOffset))
	}

	switch c.Display.Backend {
	case BackendTerminal, BackendWindow, BackendHeadless:
	default:
		fail("display.backend", "unknown backend %q", c.Display.Backend)
	}
	if c.Display.FPS < 1 || c.Display.FPS > 1000 {
		fail("display.fps", "must be in [1, 1000], got %d", c.Display.FPS)
	}
	switch strings.ToLower(c.Display.Color) {
	case "auto", "truecolor", "24bit", "rgb", "256":
	default:
		fail("display.color", "unknown color mode %q", c.Display.Color)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		fail("window", "size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Input.InitialHold <= 0 || c.Input.RepeatHold <= 0 {
		fail("input", "hold durations must be positive, got %v/%v", c.Input.InitialHold, c.Input.RepeatHold)
	}
	if _, err := input.ParseBindings(c.Input.Keys); err != nil {
		fail("input.keys", "%v", err)
	}

	if !(c.Audio.Volume >= 0 && c.Audio.Volume <= 1) {
		fail("audio.volume", "must be in [0, 1], got %v", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		fail("audio.sample_rate", "must be positive, got %d", c.Audio.SampleRate)
	}

	return errors.Join(errs...)
}

// CarParams converts car tuning to physics parameters
func (c *Config) CarParams() physics.Params {
	inertia, _ := physics.ParseInertiaPolicy(c.Car.Inertia)
	return physics.Params{
		MaxSpeed:         c.Car.MaxSpeed,
		AccelerationRate: c.Car.AccelerationRate,
		BrakingRate:      c.Car.BrakingRate,
		TurnSpeed:        c.Car.TurnSpeed,
		Downforce:        c.Car.Downforce,
		SteeringLock:     c.Car.SteeringLock,
		ClampSpeed:       c.Car.ClampSpeed,
		Inertia:          inertia,
		ArcadeResponse:   c.Car.ArcadeResponse,
		CoastDrag:        c.Car.CoastDrag,
		GroundY:          c.Car.GroundY,
	}
}

// SessionConfig builds the session startup state, the car starts on the ground at the origin
func (c *Config) SessionConfig() engine.SessionConfig {
	mode, _ := engine.ParseCameraMode(c.Camera.Mode)
	return engine.SessionConfig{
		Params: c.CarParams(),
		Camera: mode,
		Start:  vmath.Vec3F{Y: c.Car.GroundY},
	}
}

// CameraConfig converts camera placement for the renderers
func (c *Config) CameraConfig() render.CameraConfig {
	cc := render.DefaultCameraConfig()
	cc.FovY = c.Camera.Fov
	cc.EyeHeight = c.Camera.EyeHeight
	if len(c.Camera.ChaseOffset) == 3 {
		cc.ChaseOffset = vmath.Vec3F{X: c.Camera.ChaseOffset[0], Y: c.Camera.ChaseOffset[1], Z: c.Camera.ChaseOffset[2]}
	}
	return cc
}

// Bindings builds the key bindings
func (c *Config) Bindings() (*input.Bindings, error) {
	return input.ParseBindings(c.Input.Keys)
}

// AudioSettings converts sound settings for the sound manager
func (c *Config) AudioSettings() audio.Config {
	return audio.Config{
		SampleRate:     c.Audio.SampleRate,
		BufferDuration: c.Audio.Buffer,
		MasterVolume:   c.Audio.Volume,
	}
}
