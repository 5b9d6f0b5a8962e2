package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/kuredoro/snake_smooth/core"
)

// Config holds the tunable constants of the game. World units are
// abstract: the console engine projects them onto terminal cells.
type Config struct {
	// Field size in world units.
	FieldWidth  float64 `json:"field_width"`
	FieldHeight float64 `json:"field_height"`

	// Speed is the distance the snake covers per second.
	Speed float64 `json:"speed"`

	// InputInterval is the minimum time between two applied turns. It
	// guarantees that a double turn leaves enough space between the two
	// parallel parts of the body.
	InputInterval float64 `json:"input_interval"`

	// FoodSize is both the side of the food box and the length the
	// snake grows by when it eats.
	FoodSize float64 `json:"food_size"`

	// InitialLength is the body length a fresh snake is grown to.
	InitialLength float64 `json:"initial_length"`

	FPS   int    `json:"fps"`
	Sound bool   `json:"sound"`
	Log   string `json:"log"`
}

// Default returns the configuration the game ships with.
func Default() *Config {
	return &Config{
		FieldWidth:    800,
		FieldHeight:   600,
		Speed:         150,
		InputInterval: 0.1,
		FoodSize:      30,
		InitialLength: 50,
		FPS:           30,
		Sound:         true,
		Log:           "snake_smooth.log",
	}
}

// Load reads the configuration from path. A missing file is not an
// error: the defaults are written to path and returned.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("write default config: %v", err)
		}
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %v", err)
	}
	defer file.Close()

	cfg := Default()
	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to path as indented JSON.
func Save(path string, cfg *Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %v", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %v", err)
	}

	return nil
}

// Validate checks every field and reports all offending ones at once.
func (c *Config) Validate() error {
	var merr *multierror.Error

	positive := map[string]float64{
		"field_width":    c.FieldWidth,
		"field_height":   c.FieldHeight,
		"speed":          c.Speed,
		"input_interval": c.InputInterval,
		"food_size":      c.FoodSize,
		"initial_length": c.InitialLength,
		"fps":            float64(c.FPS),
	}

	for field, v := range positive {
		if v <= 0 {
			merr = multierror.Append(merr, &FieldError{
				Field: field,
				Err:   fmt.Errorf("must be positive, got %v", v),
			})
		}
	}

	if c.FoodSize >= c.FieldWidth || c.FoodSize >= c.FieldHeight {
		merr = multierror.Append(merr, &FieldError{
			Field: "food_size",
			Err:   fmt.Errorf("must fit inside the field"),
		})
	}

	return merr.ErrorOrNil()
}

// FieldRect returns the play-field bounds.
func (c *Config) FieldRect() core.Rect {
	return core.Rect{X: 0, Y: 0, W: c.FieldWidth, H: c.FieldHeight}
}
