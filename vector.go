package geom2d

import "math"

// Vector is a free displacement. It has a direction and a length but no
// position.
type Vector struct {
	X float64
	Y float64
}

func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

func (v Vector) Scale(f float64) Vector {
	return Vector{v.X * f, v.Y * f}
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross is the z component of the 3D cross product. It is positive when w is
// counterclockwise from v.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Perp rotates v by +90 degrees.
func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

// Normalize divides v by its length. A zero vector yields NaN components, so
// callers check the length first.
func (v Vector) Normalize() Vector {
	return v.Scale(1 / v.Length())
}

func (v Vector) ToPoint() Point {
	return Point{v.X, v.Y}
}

func (v Vector) AlmostEquals(w Vector, precision int) bool {
	return AlmostZero(v.X-w.X, precision) && AlmostZero(v.Y-w.Y, precision)
}

func (v Vector) Kind() Kind { return KindVector }

func (v Vector) ToWkt(precision int) string {
	return formatWkt(KindVector, false, precision, v.ToPoint())
}

func (v Vector) String() string {
	return v.ToWkt(DefaultPrecision)
}

func (v Vector) ToFile(path string, precision int) error {
	return writeWkt(path, v, precision)
}

func VectorFromWkt(text string) (Vector, error) {
	lit, err := expectWkt(text, KindVector, 1)
	if err != nil {
		return Vector{}, err
	}
	return lit.points()[0].ToVector(), nil
}

func VectorFromFile(path string) (Vector, error) {
	text, err := readWkt(path)
	if err != nil {
		return Vector{}, err
	}
	return VectorFromWkt(text)
}
