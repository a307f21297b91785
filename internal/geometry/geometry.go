// Package geometry computes where the parts of the clock face point.
//
// Clock angles are degrees measured clockwise from 12 o'clock as the viewer sees the face. Canvas
// coordinates put the origin at the centre of the screen with x to the right and y growing
// downward. A panel that is physically mounted upside down is corrected at the pixel layer, not
// here.
package geometry

import (
	"math"
	"time"

	"github.com/ajanata/gotoclock/internal/hue"
)

// ScreenSpin is the sign that turns a clock angle into a canvas rotation. With y growing downward
// a positive canvas rotation is already clockwise on screen.
const ScreenSpin = 1.0

const (
	// Markers is the number of hour markers around the face.
	Markers = 12
	// MarkerStep is the angle between adjacent markers.
	MarkerStep = 360.0 / Markers

	degreesPerSecond = 6.0
)

type TimeOfDay struct {
	Hours   int
	Minutes int
	Seconds int
}

func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hours: t.Hour(), Minutes: t.Minute(), Seconds: t.Second()}
}

// HourAngle advances 30 degrees per hour, continuously through minutes and seconds.
func HourAngle(t TimeOfDay) float64 {
	return hue.Normalize(float64(t.Hours*3600+t.Minutes*60+t.Seconds) / 120)
}

// MinuteAngle advances 6 degrees per minute, continuously through seconds.
func MinuteAngle(t TimeOfDay) float64 {
	return hue.Normalize(float64(t.Minutes*60+t.Seconds) / 10)
}

func SecondAngle(seconds int) float64 {
	return hue.Normalize(float64(seconds) * degreesPerSecond)
}

// MarkerAngle is the angle of marker i (0 is 12 o'clock) on a face turned by offset degrees.
func MarkerAngle(i int, offset float64) float64 {
	return hue.Normalize(float64(i)*MarkerStep + offset)
}

// SecondHand tracks the integer second between frames so it can overshoot on the frame where the
// second changes.
type SecondHand struct {
	// Overtick is added to the angle for the single frame on which the second changes.
	Overtick float64

	last    int
	started bool
}

func (h *SecondHand) Angle(seconds int) float64 {
	a := SecondAngle(seconds)
	if h.started && seconds != h.last {
		a = hue.Normalize(a + h.Overtick)
	}
	h.last, h.started = seconds, true
	return a
}

// HandAngles holds the three hand angles of one frame.
type HandAngles struct {
	Hour, Minute, Second float64
}

// Hands returns the hand angles for t on a face turned by offset degrees. sec supplies the second
// hand so overtick state carries across frames; it may be nil.
func Hands(t TimeOfDay, sec *SecondHand, offset float64) HandAngles {
	s := SecondAngle(t.Seconds)
	if sec != nil {
		s = sec.Angle(t.Seconds)
	}
	return HandAngles{
		Hour:   hue.Normalize(HourAngle(t) + offset),
		Minute: hue.Normalize(MinuteAngle(t) + offset),
		Second: hue.Normalize(s + offset),
	}
}

// flatZ is roughly 1 g, the z reading of a device lying flat.
const flatZ = 10.0

// TiltOffset turns an accelerometer reading in m/s^2 into a face rotation. Lying flat the weight
// is near zero so the face stays put; as the device approaches vertical the rotation follows the
// direction of gravity in the x/y plane.
func TiltOffset(x, y, z float64) float64 {
	weight := math.Min(1, math.Abs(flatZ-z)/9)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return hue.Normalize(deg * weight)
}

type Point struct {
	X, Y float64
}

// Radians converts a clock angle into a canvas rotation.
func Radians(deg float64) float64 {
	return ScreenSpin * deg * math.Pi / 180
}

// Polar returns the canvas point at clock angle deg and distance r from the centre.
func Polar(deg, r float64) Point {
	rad := Radians(deg)
	return Point{X: r * math.Sin(rad), Y: -r * math.Cos(rad)}
}

// Rotate turns p about the origin by rad radians in canvas space.
func (p Point) Rotate(rad float64) Point {
	s, c := math.Sincos(rad)
	return Point{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}
