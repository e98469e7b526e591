package core

import "math"

// Epsilon is the tolerance used for float comparisons, plane parallelism
// and the shadow bias applied along surface normals.
const Epsilon = 1e-5

// Tuple is a homogeneous 4-component value. W is 1 for points and 0 for vectors.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a new Tuple
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a tuple with w=1
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple with w=0
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether w == 1
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether w == 0
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the componentwise sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the componentwise difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the negative of the tuple
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction.
// A zero-length tuple yields NaN components; use TryNormalize where the
// input is not known to be non-degenerate.
func (t Tuple) Normalize() Tuple {
	return t.Divide(t.Magnitude())
}

// TryNormalize is Normalize that reports ErrZeroVector instead of producing NaN
func (t Tuple) TryNormalize() (Tuple, error) {
	m := t.Magnitude()
	if m == 0 {
		return Tuple{}, ErrZeroVector
	}
	return t.Divide(m), nil
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors. W is ignored.
func (t Tuple) Cross(other Tuple) Tuple {
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect reflects the vector around the normal n
func (t Tuple) Reflect(n Tuple) Tuple {
	return t.Subtract(n.Multiply(2 * t.Dot(n)))
}

// Hadamard returns the componentwise product of two tuples (used to blend colors)
func (t Tuple) Hadamard(other Tuple) Tuple {
	return Tuple{t.X * other.X, t.Y * other.Y, t.Z * other.Z, t.W * other.W}
}

// ApproxEqual compares all four components within Epsilon
func (t Tuple) ApproxEqual(other Tuple) bool {
	return floatEqual(t.X, other.X) &&
		floatEqual(t.Y, other.Y) &&
		floatEqual(t.Z, other.Z) &&
		floatEqual(t.W, other.W)
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
