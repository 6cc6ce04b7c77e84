package input

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Step holds a set of actions and axis values for a number of ticks.
type Step struct {
	Ticks      int      `yaml:"ticks"`
	Hold       []string `yaml:"hold"`
	Horizontal float64  `yaml:"horizontal"`
	Vertical   float64  `yaml:"vertical"`

	actions []Action
}

// Script is a Device that replays a fixed list of steps, one poll per tick.
// After the last step it reports nothing held.
type Script struct {
	steps []Step
	index int
	tick  int
}

// NewScript validates the action names of every step.
func NewScript(steps []Step) (*Script, error) {
	out := make([]Step, len(steps))
	for i, st := range steps {
		if st.Ticks <= 0 {
			return nil, fmt.Errorf("step %d: ticks must be positive", i)
		}
		st.actions = make([]Action, 0, len(st.Hold))
		for _, name := range st.Hold {
			a, err := ParseAction(name)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			st.actions = append(st.actions, a)
		}
		out[i] = st
	}
	return &Script{steps: out}, nil
}

// LoadScript decodes a YAML list of steps.
func LoadScript(r io.Reader) (*Script, error) {
	var steps []Step
	if err := yaml.NewDecoder(r).Decode(&steps); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return NewScript(steps)
}

// Done reports whether every step has been replayed.
func (s *Script) Done() bool {
	return s.index >= len(s.steps)
}

func (s *Script) Poll(snap *Snapshot) {
	if s.Done() {
		return
	}
	st := s.steps[s.index]
	for _, a := range st.actions {
		snap.Pressed[a] = true
	}
	if snap.Horizontal == 0 {
		snap.Horizontal = st.Horizontal
	}
	if snap.Vertical == 0 {
		snap.Vertical = st.Vertical
	}

	s.tick++
	if s.tick >= st.Ticks {
		s.tick = 0
		s.index++
	}
}
