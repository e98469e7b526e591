package core

import (
	"fmt"
	"math"
)

// Translation creates a translation matrix
func Translation(x, y, z float64) Matrix {
	return Matrix{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scaling creates a scaling matrix
func Scaling(x, y, z float64) Matrix {
	return Matrix{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX rotates around the x axis (radians, left-handed)
func RotationX(r float64) Matrix {
	c, s := math.Cos(r), math.Sin(r)
	return Matrix{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationY rotates around the y axis (radians, left-handed)
func RotationY(r float64) Matrix {
	c, s := math.Cos(r), math.Sin(r)
	return Matrix{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ rotates around the z axis (radians, left-handed)
func RotationZ(r float64) Matrix {
	c, s := math.Cos(r), math.Sin(r)
	return Matrix{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing moves each component in proportion to the other two.
// xy is "x moved in proportion to y", and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Matrix{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// ViewTransform orients the world relative to an eye at from looking at to.
// It fails with ErrZeroVector when from == to or up is parallel to the view direction.
func ViewTransform(from, to, up Tuple) (Matrix, error) {
	forward, err := to.Subtract(from).TryNormalize()
	if err != nil {
		return Matrix{}, fmt.Errorf("view direction: %w", err)
	}
	upn, err := up.TryNormalize()
	if err != nil {
		return Matrix{}, fmt.Errorf("up vector: %w", err)
	}

	left := forward.Cross(upn)
	if left.Magnitude() < Epsilon {
		return Matrix{}, fmt.Errorf("up vector parallel to view direction: %w", ErrZeroVector)
	}
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}

	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}
