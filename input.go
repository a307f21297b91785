package gotoclock

import (
	"github.com/ajanata/gotoclock/internal/config"
	"github.com/ajanata/gotoclock/internal/face"
)

// Buttons is the latched state of the physical buttons. The driver sets a flag when a button is
// pressed and it stays set until Clear.
type Buttons interface {
	Pressed(b Button) bool
	Clear()
}

// ButtonSet is a Buttons backed by a bit set, for drivers that latch presses themselves.
type ButtonSet uint8

var _ Buttons = (*ButtonSet)(nil)

func (s *ButtonSet) Press(b Button) { *s |= 1 << b }

func (s *ButtonSet) Pressed(b Button) bool { return *s&(1<<b) != 0 }

func (s *ButtonSet) Clear() { *s = 0 }

type Action uint8

const (
	ActionNone Action = iota
	ActionMinimise
	ActionToggleFill
	ActionCycleShape
	ActionToggleSpectrum
	ActionResize
	ActionRotate
	ActionInvertSpin
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMinimise:
		return "minimise"
	case ActionToggleFill:
		return "toggle fill"
	case ActionCycleShape:
		return "cycle shape"
	case ActionToggleSpectrum:
		return "toggle spectrum"
	case ActionResize:
		return "resize"
	case ActionRotate:
		return "rotate"
	case ActionInvertSpin:
		return "invert spin"
	default:
		return "INVALID"
	}
}

// Controller maps button presses to changes of the display state.
type Controller struct {
	state *face.State
	left  Action
}

func NewController(cfg *config.Config, state *face.State) *Controller {
	left := ActionResize
	if cfg.LeftButton == config.LeftButtonRotate {
		left = ActionRotate
	}
	return &Controller{state: state, left: left}
}

// ActionFor returns the action bound to b.
func (c *Controller) ActionFor(b Button) Action {
	switch b {
	case ButtonCancel:
		return ActionMinimise
	case ButtonConfirm:
		return ActionToggleFill
	case ButtonUp:
		return ActionCycleShape
	case ButtonDown:
		return ActionToggleSpectrum
	case ButtonLeft:
		return c.left
	case ButtonRight:
		return ActionInvertSpin
	default:
		return ActionNone
	}
}

// Poll fires the action of the first pressed button, clears every flag and returns the action.
// Minimising is left to the caller since only the driver can do it. Any action arms the pulse
// notifier.
func (c *Controller) Poll(b Buttons, now int64) Action {
	if b == nil {
		return ActionNone
	}
	for _, btn := range buttonOrder {
		if !b.Pressed(btn) {
			continue
		}
		b.Clear()
		a := c.ActionFor(btn)
		c.apply(a, now)
		return a
	}
	return ActionNone
}

func (c *Controller) apply(a Action, now int64) {
	switch a {
	case ActionToggleFill:
		c.state.ToggleFill()
	case ActionCycleShape:
		c.state.CycleShape()
	case ActionToggleSpectrum:
		c.state.ToggleSpectrum()
	case ActionResize:
		c.state.Resize()
	case ActionRotate:
		c.state.Rotate(now)
	case ActionInvertSpin:
		c.state.InvertSpin()
	}
	c.state.Pulse(now)
}
