package input

import "fmt"

// Action is a logical button
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionJump
	ActionDash
	ActionPossess
	ActionPower
	ActionDisplayInfo
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionUp:          "up",
	ActionDown:        "down",
	ActionJump:        "jump",
	ActionDash:        "dash",
	ActionPossess:     "possess",
	ActionPower:       "power",
	ActionDisplayInfo: "info",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps a name back to its Action.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// Snapshot is what devices write into each poll. Devices OR their buttons
// together; the first non-zero analog value wins.
type Snapshot struct {
	Pressed    [ActionCount]bool
	Horizontal float64
	Vertical   float64
}

// Device is a physical or scripted input producer. Keyboard-like and
// controller-like devices satisfy the same contract.
type Device interface {
	Poll(s *Snapshot)
}

// Source hands out one Frame per tick.
type Source interface {
	Next() Frame
}
