// A 2D geometry kernel for Go.
//
// This package provides immutable value types for points, vectors, lines, rays,
// segments, polylines, triangles and polygons, together with intersection,
// containment, distance and location queries, and a WKT-style text format for
// each of them.
//
// Floats are never compared directly. Every tolerance-sensitive operation takes
// a precision, the number of decimal places both sides are rounded to before
// comparing, so the same values can be compared strictly in one place and
// loosely in another:
//
//	a := geom2d.Point{X: 1, Y: 2}
//	b := geom2d.Point{X: 1.0004, Y: 2}
//	a.AlmostEquals(b, geom2d.DP3) // true
//	a.AlmostEquals(b, geom2d.DP6) // false
//
// Constructors validate their input and return a *ConstructionError rather
// than a degenerate value. Decoders return a *ParseError, and file helpers an
// *IOError.
package geom2d
