// Package gamma corrects linear channel values for the light ring LEDs.
package gamma

import "math"

// Exponent used to build Table; suits WS2812-class LEDs.
const Exponent = 2.8

// Table maps a linear channel value to its perceptually corrected output. It is filled once at
// init and must not be modified.
var Table [256]uint8

func init() {
	for i := range Table {
		Table[i] = uint8(math.Pow(float64(i)/255, Exponent)*255 + 0.5)
	}
}

func Correct(v uint8) uint8 {
	return Table[v]
}

// Scale applies brightness in [0, 1] to a linear channel in [0, 255], truncates, then corrects.
func Scale(v float64, brightness float64) uint8 {
	s := v * brightness
	if s < 0 {
		s = 0
	} else if s > 255 {
		s = 255
	}
	return Table[int(s)]
}
