package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/byxorna/recipebox/pkg/types/v1"
	"github.com/go-playground/validator"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "~/.recipebox.yaml"
)

type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

var (
	// Default is the configuration used when no file exists, and the base
	// that a file is merged over
	Default = Config{
		Theme: ThemeAuto,
		Emoji: EmojiConfig{
			Enabled: true,
			Count:   8,
		},
		StatusTimeout: 2 * time.Second,
	}
)

type Config struct {
	Theme         Theme         `yaml:"theme" validate:"required,oneof=auto dark light"`
	Emoji         EmojiConfig   `yaml:"emoji" validate:""`
	StatusTimeout time.Duration `yaml:"statusTimeout" validate:"gt=0"`
	// StarterRecipes are loaded into the store at startup, first on top
	StarterRecipes []v1.Draft `yaml:"starterRecipes,omitempty" validate:""`
}

// EmojiConfig controls the floating food emoji lane
type EmojiConfig struct {
	Enabled bool     `yaml:"enabled" validate:""`
	Count   int      `yaml:"count" validate:"min=0,max=32"`
	Glyphs  []string `yaml:"glyphs,omitempty,flow" validate:"dive,required"`
}

func NewFromReader(r io.Reader) (*Config, error) {
	c := Default

	bytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Config: %w", err)
	}
	err = yaml.Unmarshal(bytes, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal Config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(*c)
	if err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}

	for i := range c.StarterRecipes {
		if err := c.StarterRecipes[i].Validate(); err != nil {
			return fmt.Errorf("config validation error: starterRecipes[%d] needs a title", i)
		}
	}
	return nil
}

// Load reads the config at path. A missing file yields the default config.
func Load(path string) (*Config, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(expandedPath)
	if errors.Is(err, os.ErrNotExist) {
		c := Default
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := NewFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("unable to load configuration %s: %w", expandedPath, err)
	}
	return cfg, nil
}

func (c *Config) YAML() (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
