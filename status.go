package gotoclock

import (
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/ajanata/gotoclock/internal/notify"
)

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// statusLines is the idle status screen, one string per text line.
func (c *Clock) statusLines(now time.Time) []string {
	s := c.state
	spin := "cw"
	if !s.Clockwise {
		spin = "ccw"
	}
	lines := []string{
		now.Format("15:04:05") + " " + strconv.Itoa(int(c.lastFPS)) + "Hz",
		c.cfg.Preset + " " + s.Kind().String() + " " + strconv.Itoa(int(s.MarkerSize)),
		"fill " + onOff(s.Filled) + " rgb " + onOff(s.FullSpectrum),
		"spin " + spin + " rot " + strconv.Itoa(int(s.Offset())),
		"last " + c.lastAction.String(),
	}
	var active []string
	for _, name := range s.Notifiers.Names() {
		if s.Notifiers.Enabled(name) {
			active = append(active, name)
		}
	}
	return append(lines, strings.Join(active, " "))
}

// drawIdleStatus rewrites only the lines that changed since the screen was last cleared. Every textbuf write flushes
// the whole panel, so this keeps redraws off the bus.
func (c *Clock) drawIdleStatus() {
	_, h := c.statusText.Size()
	if c.statusShown == nil {
		c.statusShown = make([]string, h)
	}
	lines := c.statusLines(c.Now())
	for i := range c.statusShown {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if line == c.statusShown[i] {
			continue
		}
		if i == 0 {
			_ = c.statusText.SetLineInverse(0, line)
		} else {
			_ = c.statusText.SetLine(int16(i), line)
		}
		c.statusShown[i] = line
	}
}

func (c *Clock) updateStatus(redraw bool) {
	switch c.statusState {
	case statusStateBoot:
		// the boot log stays up until it times out or the state changes through a button
		if time.Now().After(c.statusStateChange.Add(statusTimeout)) || c.lastAction != ActionNone {
			c.changeStatusState(statusStateIdle)
		}
	case statusStateIdle:
		if redraw || c.state.Notifiers.Enabled(notify.Pulse) {
			c.drawIdleStatus()
		}
	}
}

func (c *Clock) changeStatusState(state statusState) {
	if state == statusStateIdle {
		_ = c.statusText.Clear()
		c.statusShown = nil
		// make sure we clear the *entire* screen, including pixels outside the coverage of the text buffer
		w, h := c.statusDisplay.Size()
		for x := int16(0); x < w; x++ {
			for y := int16(0); y < h; y++ {
				c.statusDisplay.SetPixel(x, y, color.RGBA{})
			}
		}
		c.drawIdleStatus()
	}
	c.statusState = state
	c.statusStateChange = time.Now()
}
