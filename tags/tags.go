package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Walker         = donburi.NewTag().SetName("Walker")
	Bouncer        = donburi.NewTag().SetName("Bouncer")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Wall           = donburi.NewTag().SetName("Wall")
	Button         = donburi.NewTag().SetName("Button")
	DashEnabler    = donburi.NewTag().SetName("DashEnabler")
	DeadZone       = donburi.NewTag().SetName("DeadZone")
	FinishLine     = donburi.NewTag().SetName("FinishLine")
	AnchorDown     = donburi.NewTag().SetName("AnchorDown")
)

// Resolv tags for physics collision
const (
	ResolvSolid       = "solid"
	ResolvRamp        = "ramp"
	ResolvPlatform    = "platform"
	ResolvCharacter   = "character"
	ResolvPlayer      = "Player"
	ResolvPossessable = "possessable"
	ResolvDeadZone    = "deadzone"
	ResolvFinishLine  = "finishline"
	ResolvButton      = "button"
	ResolvDashEnabler = "dashenabler"
	ResolvAnchorDown  = "anchordown"
	ResolvTrigger     = "trigger"

	// Slope type tags
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)

// Surfaces are the tags a body collides with.
var Surfaces = []string{ResolvSolid, ResolvRamp, ResolvPlatform}
