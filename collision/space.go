// Package collision implements the physics Environment on top of a resolv
// space. resolv's cells act as the broad phase; the narrow phase is exact
// box and ramp math.
package collision

import (
	"math"
	"sort"

	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/physics"
	"github.com/automoto/haunt/shared/gamemath"
	"github.com/automoto/haunt/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

const touchEpsilon = 1e-6

// Space is a resolv space plus the surfaces registered in it.
type Space struct {
	*resolv.Space

	filters       map[string][]string
	dropThreshold float64
	probe         *resolv.Object
	surfaces      []*Surface
}

// NewSpace creates a space of the given pixel size. filters maps filter
// names used by Overlap to resolv tags.
func NewSpace(width, height, cellSize int, filters map[string][]string, phys config.PhysicsConfig) *Space {
	s := &Space{
		Space:         resolv.NewSpace(width, height, cellSize, cellSize),
		filters:       filters,
		dropThreshold: phys.PlatformDropThreshold,
		probe:         resolv.NewObject(0, 0, 1, 1),
	}
	s.Space.Add(s.probe)
	return s
}

// Surfaces returns every registered surface in insertion order.
func (s *Space) Surfaces() []*Surface {
	return s.surfaces
}

// AddSolid adds a solid box.
func (s *Space) AddSolid(r physics.Rect) *Surface {
	return s.addSurface(r, KindSolid, tags.ResolvSolid)
}

// AddRamp adds a ramp tile. slopeType is tags.Slope45UpRight or
// tags.Slope45UpLeft; the tile's proportions give the angle.
func (s *Space) AddRamp(r physics.Rect, slopeType string) *Surface {
	surf := s.addSurface(r, KindRamp, tags.ResolvRamp, slopeType)
	surf.upRight = slopeType == tags.Slope45UpRight
	return surf
}

// AddPlatform adds a one-way platform.
func (s *Space) AddPlatform(r physics.Rect) *Surface {
	return s.addSurface(r, KindPlatform, tags.ResolvPlatform)
}

// AddMover adds a platform that travels by travel and back every duration
// seconds. oneWay selects a platform over a solid.
func (s *Space) AddMover(r physics.Rect, travel dmath.Vec2, duration float64, oneWay bool) *Surface {
	var surf *Surface
	if oneWay {
		surf = s.AddPlatform(r)
	} else {
		surf = s.AddSolid(r)
	}
	if duration > 0 {
		surf.path = newPath(duration)
		surf.origin = dmath.Vec2{X: r.X, Y: r.Y}
		surf.travel = travel
	}
	return surf
}

func (s *Space) addSurface(r physics.Rect, kind Kind, tagList ...string) *Surface {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tagList...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	surf := &Surface{ID: len(s.surfaces), Kind: kind, Object: obj}
	obj.Data = surf

	s.Space.Add(obj)
	s.surfaces = append(s.surfaces, surf)
	return surf
}

// AddArea adds a non-colliding box, such as a trigger or a character, with
// the given tags.
func (s *Space) AddArea(r physics.Rect, data interface{}, tagList ...string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tagList...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = data
	s.Space.Add(obj)
	return obj
}

// Overlapping returns the objects carrying any of tagList whose boxes
// strictly overlap area.
func (s *Space) Overlapping(area physics.Rect, tagList ...string) []*resolv.Object {
	check := s.probeAt(area, tagList)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, o := range check.Objects {
		if o == s.probe || !area.Intersects(bounds(o)) {
			continue
		}
		if !contains(out, o) {
			out = append(out, o)
		}
	}
	return out
}

// Overlap counts the objects matching filter that overlap area. Unknown
// filters match nothing.
func (s *Space) Overlap(area physics.Rect, filter string) int {
	tagList, ok := s.filters[filter]
	if !ok {
		return 0
	}
	return len(s.Overlapping(area, tagList...))
}

// Contacts returns the surfaces within q.Skin of q.Box, deepest first.
func (s *Space) Contacts(q physics.Query) []physics.Contact {
	inflated := q.Box.Inflate(q.Skin)
	check := s.probeAt(inflated, tags.Surfaces)
	if check == nil {
		return nil
	}

	var contacts []physics.Contact
	seen := make(map[*Surface]bool, len(check.Objects))
	for _, o := range check.Objects {
		surf, ok := o.Data.(*Surface)
		if !ok || seen[surf] {
			continue
		}
		seen[surf] = true
		if q.Ignore != nil && q.Ignore == physics.Surface(surf) {
			continue
		}

		var c physics.Contact
		var hit bool
		switch surf.Kind {
		case KindSolid:
			c, hit = boxContact(q, inflated, surf)
		case KindRamp:
			c, hit = rampContact(q, inflated, surf)
		case KindPlatform:
			c, hit = s.platformContact(q, inflated, surf)
		}
		if hit {
			contacts = append(contacts, c)
		}
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		if contacts[i].Depth != contacts[j].Depth {
			return contacts[i].Depth > contacts[j].Depth
		}
		return contacts[i].Surface.(*Surface).ID < contacts[j].Surface.(*Surface).ID
	})
	return contacts
}

// boxContact resolves against a solid box. The axis is the one the box
// was separated on before the sub-step, or the shallower one if it was
// already embedded.
func boxContact(q physics.Query, inflated physics.Rect, surf *Surface) (physics.Contact, bool) {
	r := surf.Bounds()
	ox, oy := inflated.Overlap(r)
	if ox < 0 || oy < 0 {
		return physics.Contact{}, false
	}

	pox, poy := q.Previous.Overlap(r)
	vertical := oy < ox
	switch {
	case poy <= touchEpsilon:
		vertical = true
	case pox <= touchEpsilon:
		vertical = false
	}

	// Low ledges, such as the block at the top of a ramp, are stepped onto
	box := q.Box
	if !vertical && q.Velocity.Y >= 0 && box.Bottom()-r.Y <= box.W/2+q.Skin && box.CenterY() < r.Y {
		vertical = true
	}

	c := physics.Contact{Surface: surf}
	if vertical {
		c.Point.X = (math.Max(box.X, r.X) + math.Min(box.Right(), r.Right())) / 2
		if box.CenterY() < r.CenterY() {
			c.Normal = dmath.Vec2{X: 0, Y: -1}
			c.Depth = box.Bottom() - r.Y
			c.Point.Y = r.Y
		} else {
			c.Normal = dmath.Vec2{X: 0, Y: 1}
			c.Depth = r.Bottom() - box.Y
			c.Point.Y = r.Bottom()
		}
		return c, true
	}

	c.Point.Y = (math.Max(box.Y, r.Y) + math.Min(box.Bottom(), r.Bottom())) / 2
	if box.CenterX() < r.CenterX() {
		c.Normal = dmath.Vec2{X: -1, Y: 0}
		c.Depth = box.Right() - r.X
		c.Point.X = r.X
	} else {
		c.Normal = dmath.Vec2{X: 1, Y: 0}
		c.Depth = r.Right() - box.X
		c.Point.X = r.Right()
	}
	return c, true
}

// rampContact resolves against the diagonal of a ramp tile, sampled at the
// box's center x. Past the high end the ramp acts as a flat top.
func rampContact(q physics.Query, inflated physics.Rect, surf *Surface) (physics.Contact, bool) {
	r := surf.Bounds()
	ox, _ := inflated.Overlap(r)
	if ox < 0 {
		return physics.Contact{}, false
	}

	box := q.Box
	cx := box.CenterX()
	pastHigh := (surf.upRight && cx > r.Right()) || (!surf.upRight && cx < r.X)
	pastLow := (surf.upRight && cx < r.X) || (!surf.upRight && cx > r.Right())
	if pastLow {
		return physics.Contact{}, false
	}

	surfaceY := gamemath.SlopeSurfaceY(cx, r.X, r.Y, r.W, r.H, surf.upRight)
	pv := box.Bottom() - surfaceY
	if pv < -q.Skin || box.Y >= surfaceY || pv > r.H {
		return physics.Contact{}, false
	}

	c := physics.Contact{
		Point:   dmath.Vec2{X: gamemath.Clamp(cx, r.X, r.Right()), Y: surfaceY},
		Normal:  dmath.Vec2{X: 0, Y: -1},
		Depth:   pv,
		Surface: surf,
	}
	if !pastHigh {
		nx, ny := gamemath.SlopeNormal(r.W, r.H, surf.upRight)
		c.Normal = dmath.Vec2{X: nx, Y: ny}
		c.Depth = pv * -ny
	}
	return c, true
}

// platformContact only reports a one-way platform to a box that is not
// rising and was above its top before the sub-step.
func (s *Space) platformContact(q physics.Query, inflated physics.Rect, surf *Surface) (physics.Contact, bool) {
	if q.Velocity.Y < 0 {
		return physics.Contact{}, false
	}
	r := surf.Bounds()
	ox, oy := inflated.Overlap(r)
	if ox < 0 || oy < 0 {
		return physics.Contact{}, false
	}
	if q.Previous.Bottom() > r.Y+s.dropThreshold {
		return physics.Contact{}, false
	}

	box := q.Box
	return physics.Contact{
		Point:   dmath.Vec2{X: (math.Max(box.X, r.X) + math.Min(box.Right(), r.Right())) / 2, Y: r.Y},
		Normal:  dmath.Vec2{X: 0, Y: -1},
		Depth:   box.Bottom() - r.Y,
		Surface: surf,
	}, true
}

// probeAt moves the shared probe over area and runs the cell check.
func (s *Space) probeAt(area physics.Rect, tagList []string) *resolv.Collision {
	s.probe.X, s.probe.Y = area.X, area.Y
	s.probe.W, s.probe.H = area.W, area.H
	s.probe.Update()
	return s.probe.Check(0, 0, tagList...)
}

func bounds(o *resolv.Object) physics.Rect {
	return physics.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

func contains(objs []*resolv.Object, o *resolv.Object) bool {
	for _, x := range objs {
		if x == o {
			return true
		}
	}
	return false
}
