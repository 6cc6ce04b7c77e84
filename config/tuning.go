package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning file decodes into unusable values.
var ErrInvalidTuning = errors.New("invalid tuning")

// LoadTuning decodes a YAML document on top of the built-in defaults, so a
// file only needs the keys it changes.
func LoadTuning(r io.Reader) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuningFile is LoadTuning for a path. An empty path yields the defaults.
func LoadTuningFile(path string) (Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("open tuning %s: %w", path, err)
	}
	defer f.Close()

	t, err := LoadTuning(f)
	if err != nil {
		return Tuning{}, fmt.Errorf("load tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate reports the first unusable value.
func (t Tuning) Validate() error {
	if t.Physics.Gravity < 0 {
		return fmt.Errorf("%w: physics.gravity must not be negative", ErrInvalidTuning)
	}
	if t.Physics.MaxStep <= 0 {
		return fmt.Errorf("%w: physics.maxStep must be positive", ErrInvalidTuning)
	}
	if t.Physics.SkinWidth < 0 || t.Physics.SkinWidth >= t.Physics.MaxStep {
		return fmt.Errorf("%w: physics.skinWidth must be in [0, maxStep)", ErrInvalidTuning)
	}
	if t.Physics.CellSize <= 0 {
		return fmt.Errorf("%w: physics.cellSize must be positive", ErrInvalidTuning)
	}

	characters := []struct {
		name string
		c    CharacterConfig
	}{
		{"player", t.Player},
		{"walker", t.Walker},
		{"bouncer", t.Bouncer},
	}
	for _, ch := range characters {
		name, c := ch.name, ch.c
		if c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("%w: %s size must be positive", ErrInvalidTuning, name)
		}
		m := c.Movement
		if m.MaxWalkableAngle <= 0 || m.MaxWalkableAngle >= 90 {
			return fmt.Errorf("%w: %s.movement.maxWalkableAngle must be in (0, 90)", ErrInvalidTuning, name)
		}
		if m.JumpCancelFactor <= 0 || m.JumpCancelFactor > 1 {
			return fmt.Errorf("%w: %s.movement.jumpCancelFactor must be in (0, 1]", ErrInvalidTuning, name)
		}
		if m.DashDuration < 0 || m.DashCooldown < 0 {
			return fmt.Errorf("%w: %s dash timings must not be negative", ErrInvalidTuning, name)
		}
	}

	if _, ok := t.Filters[t.Possession.RespawnFilter]; !ok {
		return fmt.Errorf("%w: respawn filter %q is not defined", ErrInvalidTuning, t.Possession.RespawnFilter)
	}
	return nil
}
