package components

import (
	"github.com/automoto/haunt/props"
	"github.com/yohamta/donburi"
)

var (
	Health      = donburi.NewComponentType[props.Health]()
	Button      = donburi.NewComponentType[props.Button]()
	DashEnabler = donburi.NewComponentType[props.DashEnabler]()
	DeadZone    = donburi.NewComponentType[props.DeadZone]()
	FinishLine  = donburi.NewComponentType[props.FinishLine]()
	AnchorDown  = donburi.NewComponentType[props.AnchorDown]()
)
