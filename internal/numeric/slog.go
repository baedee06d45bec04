package numeric

import "math"

// Slog is the iterated logarithm, extended continuously: values above 1 cost
// one level per log, non-positive values earn levels back through exp, and
// the fractional part interpolates linearly on (0, 1]. Transcendental escape
// encodings use it in place of log2.
func Slog(x float64) float64 {
	if math.IsInf(x, 0) {
		return 1000
	}
	level := 0.0
	for x <= 0 {
		x = math.Exp(x)
		level--
	}
	for x > 1 {
		x = math.Log(x)
		level++
	}
	return level + x - 1
}
