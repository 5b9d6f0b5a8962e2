package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/kuredoro/snake_smooth/config"
)

func TestDefault(t *testing.T) {
	if err := config.Default().Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file produces the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")

		cfg, err := config.Load(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		if *cfg != *config.Default() {
			t.Errorf("got %+v, want the defaults %+v", cfg, config.Default())
		}

		if _, err := os.Stat(path); err != nil {
			t.Errorf("defaults were not written out: %v", err)
		}
	})

	t.Run("reads back a saved config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")

		want := config.Default()
		want.Speed = 250
		want.Sound = false
		if err := config.Save(path, want); err != nil {
			t.Fatalf("save: %v", err)
		}

		got, err := config.Load(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		if *got != *want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("rejects an invalid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")

		bad := config.Default()
		bad.Speed = -10
		if err := config.Save(path, bad); err != nil {
			t.Fatalf("save: %v", err)
		}

		if _, err := config.Load(path); err == nil {
			t.Errorf("negative speed passed validation")
		}
	})
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Speed = -10
	cfg.FPS = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("invalid config passed validation")
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("got error %T, want a multierror", err)
	}

	if len(merr.Errors) != 2 {
		t.Errorf("got %d errors (%v), want 2", len(merr.Errors), merr)
	}

	var ferr *config.FieldError
	if !errors.As(merr.Errors[0], &ferr) {
		t.Errorf("got error %T, want a FieldError", merr.Errors[0])
	}
}
