package face

import (
	"image/color"

	"github.com/ajanata/gotoclock/internal/canvas"
	"github.com/ajanata/gotoclock/internal/config"
	"github.com/ajanata/gotoclock/internal/gamma"
	"github.com/ajanata/gotoclock/internal/geometry"
	"github.com/ajanata/gotoclock/internal/hue"
	"github.com/ajanata/gotoclock/internal/notify"
	"github.com/ajanata/gotoclock/internal/ring"
	"github.com/ajanata/gotoclock/internal/shape"
)

const (
	// pulseScale enlarges the wordmark while the pulse notifier is on.
	pulseScale = 1.25
	// rotationScale enlarges the 12 o'clock marker while the rotation notifier is on.
	rotationScale = 1.5
	// ringPhase centres each light between two markers.
	ringPhase = 15.0
)

type Renderer struct {
	cfg        *config.Config
	state      *State
	ring       ring.Ring
	background color.NRGBA
	second     geometry.SecondHand
}

func New(cfg *config.Config, state *State, r ring.Ring) (*Renderer, error) {
	bg, err := cfg.Background()
	if err != nil {
		return nil, err
	}
	return &Renderer{
		cfg:        cfg,
		state:      state,
		ring:       r,
		background: bg,
		second:     geometry.SecondHand{Overtick: cfg.OvertickAmount},
	}, nil
}

// colour picks the hue for a part of the face at angle deg.
func (r *Renderer) colour(deg float64) color.NRGBA {
	if r.state.FullSpectrum {
		return hue.Colour(deg+r.state.ColourOffset, r.cfg.Opacity)
	}
	return hue.Colour(r.state.ColourOffset, r.cfg.Opacity)
}

// Overlays builds the frame's shapes back to front: background, wordmark, markers, hands. It
// advances the second hand's overtick tracking, so call it once per frame.
func (r *Renderer) Overlays(t geometry.TimeOfDay) []shape.Shape {
	out := make([]shape.Shape, 0, 2+geometry.Markers+6)
	out = append(out, shape.Background{
		Colour:  r.background,
		Image:   r.cfg.BackgroundImage,
		Opacity: r.cfg.BackgroundOpacity,
		Radius:  r.cfg.Radius,
	})
	if r.cfg.Brand.Enabled {
		out = append(out, r.brand())
	}
	out = r.appendMarkers(out)
	return r.appendHands(out, geometry.Hands(t, &r.second, r.state.Offset()))
}

func (r *Renderer) brand() shape.Shape {
	scale := r.cfg.Brand.Scale
	if r.state.Notifiers.Enabled(notify.Pulse) {
		scale *= pulseScale
	}
	return shape.Wordmark{
		Center:    geometry.Point{Y: r.cfg.Brand.YOffset},
		Scale:     scale,
		LineWidth: r.cfg.Brand.LineWidth,
		Colour:    r.colour(0),
	}
}

func (r *Renderer) appendMarkers(out []shape.Shape) []shape.Shape {
	kind := r.state.Kind()
	size := r.state.MarkerSize
	rotating := r.state.Notifiers.Enabled(notify.Rotation)
	for i := 0; i < geometry.Markers; i++ {
		angle := geometry.MarkerAngle(i, r.state.Offset())
		s := size
		dist := r.cfg.Radius - size - 1
		if i == 0 && rotating {
			s = size * rotationScale
			dist -= s
		}
		out = append(out, shape.NewMarker(kind, shape.Style{
			Center:   geometry.Polar(angle, dist),
			Size:     s,
			Rotation: geometry.Radians(angle),
			Colour:   r.colour(angle),
			Filled:   r.state.Filled,
		}))
	}
	return out
}

func (r *Renderer) appendHands(out []shape.Shape, a geometry.HandAngles) []shape.Shape {
	hands := r.cfg.Hands
	for _, h := range []struct {
		angle float64
		spec  config.HandSpec
	}{{a.Hour, hands.Hour}, {a.Minute, hands.Minute}, {a.Second, hands.Second}} {
		col := r.colour(h.angle)
		if r.cfg.HandStyle == config.HandStyleHand {
			out = append(out, shape.Hand{
				Angle:  h.angle,
				Length: h.spec.Length,
				Tail:   r.cfg.HandsOverhang,
				Width:  h.spec.Width,
				Colour: col,
				Filled: true,
			})
			continue
		}
		tip := geometry.Polar(h.angle, h.spec.Length)
		out = append(out, shape.Line{
			Start:  geometry.Polar(h.angle, -r.cfg.HandsOverhang),
			End:    tip,
			Width:  h.spec.Width,
			Colour: col,
		})
		if h.spec.Blob > 0 {
			out = append(out, shape.Dot(tip, h.spec.Blob, col))
		}
	}
	return out
}

// Lights returns the ring colours by ring index, so Lights()[0] is pixel 1. Pixel 12-i sits at
// clockwise position i.
func (r *Renderer) Lights() [ring.Pixels]color.RGBA {
	var px [ring.Pixels]color.RGBA
	for i := 0; i < ring.Pixels; i++ {
		deg := r.state.ColourOffset
		if r.state.FullSpectrum {
			deg = float64(i)*geometry.MarkerStep + ringPhase + r.state.Offset() + r.state.ColourOffset
		}
		red, green, blue := hue.RGB(hue.Normalize(deg))
		b := r.state.LEDBrightness
		px[ring.Pixels-i-1] = color.RGBA{
			R: gamma.Scale(red, b),
			G: gamma.Scale(green, b),
			B: gamma.Scale(blue, b),
			A: 255,
		}
	}
	return px
}

// Draw renders one frame at t and flushes the ring once. now is the monotonic clock in
// milliseconds that drives the notifiers. After a successful frame the colour offset advances.
func (r *Renderer) Draw(c canvas.Canvas, t geometry.TimeOfDay, now int64) error {
	overlays := r.Overlays(t)
	for i, col := range r.Lights() {
		r.ring.Set(i+1, col)
	}
	for _, o := range overlays {
		if err := o.Draw(c); err != nil {
			return err
		}
	}
	if err := r.ring.Write(); err != nil {
		return err
	}
	r.state.AdvanceColour()
	r.state.Notifiers.Update(now)
	return nil
}
