package factory

import (
	"github.com/automoto/haunt/archetypes"
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/physics"
	"github.com/automoto/haunt/props"
	"github.com/automoto/haunt/shared/leveldata"
	"github.com/automoto/haunt/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

func CreateButton(ecs *ecs.ECS, b leveldata.Button, log *zap.Logger) *donburi.Entry {
	button := archetypes.Button.Spawn(ecs)
	components.Button.Set(button, props.NewButton(b.Name, b.Pressed, log))
	addTrigger(ecs, button, b.Rect, tags.ResolvButton)
	return button
}

func CreateDashEnabler(ecs *ecs.ECS, d leveldata.DashEnabler) *donburi.Entry {
	enabler := archetypes.DashEnabler.Spawn(ecs)
	components.DashEnabler.SetValue(enabler, props.DashEnabler{Enable: d.Enable})
	addTrigger(ecs, enabler, d.Rect, tags.ResolvDashEnabler)
	return enabler
}

// CreateDeadZone creates an invisible zone that kills what falls into it
func CreateDeadZone(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	zone := archetypes.DeadZone.Spawn(ecs)
	components.DeadZone.SetValue(zone, props.DeadZone{})
	addTrigger(ecs, zone, r, tags.ResolvDeadZone)
	return zone
}

func CreateFinishLine(ecs *ecs.ECS, f leveldata.FinishLine) *donburi.Entry {
	finishLine := archetypes.FinishLine.Spawn(ecs)
	components.FinishLine.SetValue(finishLine, props.FinishLine{Level: f.Level})
	addTrigger(ecs, finishLine, f.Rect, tags.ResolvFinishLine)
	return finishLine
}

// CreateAnchorDown creates a zone that keeps grounded bodies on the ground
func CreateAnchorDown(ecs *ecs.ECS, a leveldata.AnchorDown) *donburi.Entry {
	force := a.DownForce
	if force <= 0 {
		force = props.DefaultDownForce
	}
	zone := archetypes.AnchorDown.Spawn(ecs)
	components.AnchorDown.SetValue(zone, props.AnchorDown{DownForce: force})
	addTrigger(ecs, zone, a.Rect, tags.ResolvAnchorDown)
	return zone
}

func addTrigger(ecs *ecs.ECS, e *donburi.Entry, r leveldata.Rect, tag string) *resolv.Object {
	obj := space(ecs).AddArea(physics.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}, e, tags.ResolvTrigger, tag)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return obj
}
