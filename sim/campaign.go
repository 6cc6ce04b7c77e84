package sim

import (
	"errors"
	"fmt"
	"slices"

	"github.com/automoto/haunt/shared/leveldata"
)

var ErrUnknownLevel = errors.New("unknown level")

// Campaign plays a set of levels in name order. Every level is built with
// the same Options, so the input source carries over between levels.
type Campaign struct {
	levels map[string]*leveldata.Level
	names  []string
	opts   Options
}

func NewCampaign(levels map[string]*leveldata.Level, names []string, opts Options) *Campaign {
	return &Campaign{levels: levels, names: names, opts: opts}
}

// Start builds the named level, or the first one when name is empty.
func (c *Campaign) Start(name string) (*Simulation, error) {
	if name == "" {
		if len(c.names) == 0 {
			return nil, ErrNoLevel
		}
		name = c.names[0]
	}
	return c.build(name)
}

// Next is a NextLevelFunc. An empty id moves to the level after current;
// past the last level it returns nil.
func (c *Campaign) Next(current *Simulation, levelID string) (*Simulation, error) {
	if levelID != "" {
		return c.build(levelID)
	}
	i := slices.Index(c.names, current.Level().Name)
	if i < 0 || i+1 >= len(c.names) {
		return nil, nil
	}
	return c.build(c.names[i+1])
}

func (c *Campaign) build(name string) (*Simulation, error) {
	level, ok := c.levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q: %w", name, ErrUnknownLevel)
	}
	return New(level, c.opts)
}
