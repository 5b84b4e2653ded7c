package geom2d

import "math"

// Precision is the number of decimal places a comparison is rounded to. Every
// tolerance-sensitive operation takes one, so two callers can ask the same
// question at different tolerances.
const (
	DP3 = 3
	DP6 = 6
	DP9 = 9

	DefaultPrecision = DP3
)

// RoundTo rounds x to n decimal places, halves away from zero.
func RoundTo(x float64, n int) float64 {
	scale := math.Pow(10, float64(n))
	return math.Round(x*scale) / scale
}

// Sign is +1 when x rounds to a non-negative value and -1 otherwise. Values
// that round to zero count as positive.
func Sign(x float64, n int) float64 {
	if RoundTo(x, n) >= 0 {
		return 1
	}
	return -1
}

// AlmostZero reports whether x is zero at n decimal places.
func AlmostZero(x float64, n int) bool {
	return RoundTo(x, n) == 0
}

// IsOffAxis reports whether a Location-style result means the point does not
// lie on the queried geometry.
func IsOffAxis(loc float64) bool {
	return math.IsInf(loc, 0)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// RemoveDuplicates collapses runs of adjacent almost-equal points. Only
// neighbours are compared, so A, B, A keeps all three points.
func RemoveDuplicates(points []Point, precision int) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if len(result) > 0 && result[len(result)-1].AlmostEquals(p, precision) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// RemoveCollinear drops knots that lie on the straight run between their
// neighbours. When a new point is collinear with the last two kept points and
// lies forward of them, it replaces the last kept point if it reaches further;
// a collinear point lying backwards is dropped.
func RemoveCollinear(points []Point, precision int) []Point {
	if len(points) < 3 {
		return append([]Point(nil), points...)
	}
	result := []Point{points[0], points[1]}
	for _, p := range points[2:] {
		a := result[len(result)-2]
		b := result[len(result)-1]
		ab := b.Sub(a)
		ap := p.Sub(a)
		if !AlmostZero(ab.Cross(ap), precision) {
			result = append(result, p)
			continue
		}
		if ab.Dot(ap) >= 0 && ap.Length() > ab.Length() {
			result[len(result)-1] = p
		}
	}
	return result
}
