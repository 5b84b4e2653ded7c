package geom2d

import "math"

// Point is a position in the plane. Equality is always tolerance based; use
// AlmostEquals rather than ==.
type Point struct {
	X float64
	Y float64
}

// Origin is the point (0, 0).
func Origin() Point {
	return Point{}
}

func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub is the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y}
}

func (p Point) SubVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// ToVector reinterprets p as a displacement from the origin.
func (p Point) ToVector() Vector {
	return Vector{p.X, p.Y}
}

func (p Point) AlmostEquals(q Point, precision int) bool {
	return AlmostZero(p.X-q.X, precision) && AlmostZero(p.Y-q.Y, precision)
}

// DistanceTo is the Euclidean distance to q, rounded to precision.
func (p Point) DistanceTo(q Point, precision int) float64 {
	return RoundTo(p.distance(q), precision)
}

func (p Point) distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Average is the arithmetic mean of points.
func Average(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrEmptyInput
	}
	var sum Point
	for _, p := range points {
		sum.X += p.X
		sum.Y += p.Y
	}
	return sum.Scale(1 / float64(len(points))), nil
}

func (p Point) Kind() Kind { return KindPoint }

func (p Point) ToWkt(precision int) string {
	return formatWkt(KindPoint, false, precision, p)
}

func (p Point) String() string {
	return p.ToWkt(DefaultPrecision)
}

func (p Point) ToFile(path string, precision int) error {
	return writeWkt(path, p, precision)
}

func PointFromWkt(text string) (Point, error) {
	lit, err := expectWkt(text, KindPoint, 1)
	if err != nil {
		return Point{}, err
	}
	return lit.points()[0], nil
}

func PointFromFile(path string) (Point, error) {
	text, err := readWkt(path)
	if err != nil {
		return Point{}, err
	}
	return PointFromWkt(text)
}
