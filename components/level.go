package components

import (
	"github.com/automoto/haunt/flow"
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	DT           float64 // Seconds per tick
}

var Level = donburi.NewComponentType[LevelData]()

var Flow = donburi.NewComponentType[flow.Controller]()

// InputData holds the input source and the frame selected for this tick.
type InputData struct {
	Source input.Source
	Frame  input.Frame
}

var Input = donburi.NewComponentType[InputData]()
