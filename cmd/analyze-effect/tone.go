package main

import "math"

// sin returns the value of a unit sine at freq Hz for sample i.
func sin(freq float64, i, rate int) float64 {
	return math.Sin(2 * math.Pi * freq * float64(i) / float64(rate))
}
