package input

// Sampler polls its devices once per tick and derives edges by comparing the
// current pressed state with the previous one.
type Sampler struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool

	devices []Device
	snap    Snapshot
}

func NewSampler(devices ...Device) *Sampler {
	return &Sampler{devices: devices}
}

// SetDevices swaps the polled devices. Held buttons carry over, so switching
// from keyboard to gamepad mid-press does not fire a release edge unless the
// new device reports the button up.
func (s *Sampler) SetDevices(devices ...Device) {
	s.devices = devices
}

// Action returns the temporal state of a for the last sampled tick.
func (s *Sampler) Action(a Action) ActionState {
	return ActionState{
		Pressed:      s.Current[a],
		JustPressed:  s.Current[a] && !s.Previous[a],
		JustReleased: !s.Current[a] && s.Previous[a],
	}
}

// Next polls every device and returns this tick's frame.
func (s *Sampler) Next() Frame {
	s.Previous = s.Current
	s.snap = Snapshot{}
	for _, d := range s.devices {
		d.Poll(&s.snap)
	}
	s.Current = s.snap.Pressed

	h := s.snap.Horizontal
	if h == 0 {
		h = digitalAxis(s.Current[ActionLeft], s.Current[ActionRight])
	}
	v := s.snap.Vertical
	if v == 0 {
		v = digitalAxis(s.Current[ActionDown], s.Current[ActionUp])
	}

	return NewFrame(Frame{
		Horizontal:         h,
		Vertical:           v,
		JumpPressed:        s.Action(ActionJump).JustPressed,
		JumpReleased:       s.Action(ActionJump).JustReleased,
		DashPressed:        s.Action(ActionDash).JustPressed,
		DashReleased:       s.Action(ActionDash).JustReleased,
		PossessPressed:     s.Action(ActionPossess).JustPressed,
		PowerReleased:      s.Action(ActionPower).JustReleased,
		DisplayInfoPressed: s.Action(ActionDisplayInfo).JustPressed,
	})
}

func digitalAxis(neg, pos bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}
