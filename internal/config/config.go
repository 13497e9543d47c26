package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"selectlist/internal/domain"
	"selectlist/internal/eventbus"
	"selectlist/internal/selection"
)

// FileName is the default config file name
const FileName = ".selectlist.toml"

// Config represents the application configuration
type Config struct {
	Version    int          `toml:"version"`
	Title      string       `toml:"title"`
	Mode       string       `toml:"mode"` // "single" or "multiple"
	UISettings UISettings   `toml:"ui"`
	Items      []ItemConfig `toml:"items"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp       bool `toml:"show_help"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// ItemConfig is one list entry with its initial selection flag
type ItemConfig struct {
	Name     string `toml:"name"`
	Selected bool   `toml:"selected"`
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

// NewConfigService creates a config service for the file at path.
// An empty path means FileName in the working directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = FileName
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to DefaultConfig when the file does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		log.Info().Str("path", cs.filePath).Msg("No config file, using defaults")
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:  cs.filePath,
			Mode:  cfg.Mode,
			Items: len(cfg.Items),
		})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	if cfg.Mode == "" {
		cfg.Mode = selection.Single.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}

	log.Debug().Str("path", path).Int("items", len(cfg.Items)).Msg("Loaded config")
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create config directory")
		}
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	log.Debug().Str("path", path).Msg("Saved config")
	return nil
}

// Validate checks the mode and item names
func (c *Config) Validate() error {
	if _, err := selection.ParseMode(c.Mode); err != nil {
		return err
	}
	for i, item := range c.Items {
		if strings.TrimSpace(item.Name) == "" {
			return errors.Errorf("item %d has an empty name", i)
		}
	}
	return nil
}

// SelectionMode returns the parsed mode; invalid values fall back to Single
func (c *Config) SelectionMode() selection.Mode {
	mode, err := selection.ParseMode(c.Mode)
	if err != nil {
		return selection.Single
	}
	return mode
}

// People builds the list items described by the config
func (c *Config) People() []selection.Item[domain.Person] {
	items := make([]selection.Item[domain.Person], len(c.Items))
	for i, item := range c.Items {
		items[i] = selection.Item[domain.Person]{
			Value:    domain.Person{Name: item.Name},
			Selected: item.Selected,
		}
	}
	return items
}

// ApplySelection copies the current flags and mode back into the config
func (c *Config) ApplySelection(items []selection.Item[domain.Person], mode selection.Mode) {
	c.Mode = mode.String()
	c.Items = make([]ItemConfig, len(items))
	for i, item := range items {
		c.Items[i] = ItemConfig{Name: item.Value.Name, Selected: item.Selected}
	}
}

// DefaultConfig returns the people example list
func DefaultConfig() *Config {
	names := []string{"Duck", "Jeffrey", "Pudge", "Santa"}
	items := make([]ItemConfig, len(names))
	for i, name := range names {
		items[i] = ItemConfig{Name: name, Selected: name == "Santa"}
	}

	return &Config{
		Version: 1,
		Title:   "People",
		Mode:    selection.Multiple.String(),
		UISettings: UISettings{
			ShowHelp:       true,
			AutosaveOnExit: true,
		},
		Items: items,
	}
}
