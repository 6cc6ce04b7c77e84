// Package leveldata parses TMX levels into plain data. It has no
// dependencies on ebitengine, donburi or resolv.
package leveldata

// Level holds everything a simulation needs from one TMX file. Positions
// are top-left corners in pixels.
type Level struct {
	Name      string
	MapWidth  int
	MapHeight int

	Solids       []SolidRect
	Spawn        Point
	Walkers      []Actor
	Bouncers     []Actor
	Platforms    []Platform
	Buttons      []Button
	DashEnablers []DashEnabler
	DeadZones    []Rect
	FinishLines  []FinishLine
	AnchorDowns  []AnchorDown
}

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	Rect
	SlopeType string // "", "45_up_right", "45_up_left"
}

// Actor is a possessable character placement. Respawn, when set, overrides
// where a released possessor's feet go relative to the actor's feet.
type Actor struct {
	Name    string
	X, Y    float64
	Respawn *Point
}

// Platform is a one-way or solid platform, moving when Duration is set.
type Platform struct {
	Rect
	MoveX, MoveY float64
	Duration     float64 // Seconds for one round trip
	Solid        bool
}

type Button struct {
	Rect
	Name    string
	Pressed bool
}

type DashEnabler struct {
	Rect
	Enable bool
}

type FinishLine struct {
	Rect
	Level string
}

// AnchorDown is a zone pushing grounded bodies down. DownForce is in px/s;
// zero takes the game default.
type AnchorDown struct {
	Rect
	DownForce float64
}
