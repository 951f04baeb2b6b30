package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"swipedeck/internal/carousel"
	"swipedeck/internal/eventbus"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Card sizes and styles
const (
	SizeNormal  = "normal"
	SizeCompact = "compact"
	CardBox     = "box"
	CardHolo    = "holo"
)

// Config represents the application configuration
type Config struct {
	Version  int              `toml:"version"`
	Deck     string           `toml:"deck"` // default deck path
	Carousel CarouselSettings `toml:"carousel"`
	UI       UISettings       `toml:"ui"`
	Logging  LoggingSettings  `toml:"logging"`
}

// CarouselSettings tunes paging and gesture recognition
type CarouselSettings struct {
	SwipeThreshold   float64 `toml:"swipe_threshold"`
	CellWidthPx      float64 `toml:"cell_width_px"` // scales terminal cells into pixel-like units
	VelocityWindowMs int     `toml:"velocity_window_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Size            string  `toml:"size"`
	Card            string  `toml:"card"`
	Rounded         bool    `toml:"rounded"`
	Animate         bool    `toml:"animate"`
	MarkdownStyle   string  `toml:"markdown_style"`
	SpringStiffness float64 `toml:"spring_stiffness"`
	SpringDamping   float64 `toml:"spring_damping"`
	ShowHelp        bool    `toml:"show_help"`
}

// LoggingSettings controls the log file
type LoggingSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "swipedeck", "config.toml")
}

// NewConfigService creates a config service backed by path, or the
// default location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path: cs.filePath,
			Deck: cfg.Deck,
		})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate rejects values the UI cannot honor
func (c *Config) Validate() error {
	switch c.UI.Size {
	case SizeNormal, SizeCompact:
	default:
		return fmt.Errorf("ui.size %q must be %q or %q: %w", c.UI.Size, SizeNormal, SizeCompact, ErrInvalidConfig)
	}
	switch c.UI.Card {
	case CardBox, CardHolo:
	default:
		return fmt.Errorf("ui.card %q must be %q or %q: %w", c.UI.Card, CardBox, CardHolo, ErrInvalidConfig)
	}
	if !positive(c.Carousel.SwipeThreshold) {
		return fmt.Errorf("carousel.swipe_threshold must be positive: %w", ErrInvalidConfig)
	}
	if !positive(c.Carousel.CellWidthPx) {
		return fmt.Errorf("carousel.cell_width_px must be positive: %w", ErrInvalidConfig)
	}
	if c.Carousel.VelocityWindowMs <= 0 {
		return fmt.Errorf("carousel.velocity_window_ms must be positive: %w", ErrInvalidConfig)
	}
	if !positive(c.UI.SpringStiffness) || !positive(c.UI.SpringDamping) {
		return fmt.Errorf("ui spring constants must be positive: %w", ErrInvalidConfig)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Carousel: CarouselSettings{
			SwipeThreshold:   carousel.DefaultSwipeThreshold,
			CellWidthPx:      8,
			VelocityWindowMs: 100,
		},
		UI: UISettings{
			Size:            SizeNormal,
			Card:            CardBox,
			Rounded:         true,
			Animate:         true,
			MarkdownStyle:   "dark",
			SpringStiffness: 350,
			SpringDamping:   30,
			ShowHelp:        true,
		},
		Logging: LoggingSettings{
			Level: "info",
			File:  "swipedeck.log",
		},
	}
}
