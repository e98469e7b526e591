package core

import "errors"

var (
	// ErrSingularMatrix is returned when inverting a matrix whose determinant is zero
	ErrSingularMatrix = errors.New("matrix is not invertible")

	// ErrZeroVector is returned when normalizing a zero-length vector
	ErrZeroVector = errors.New("zero-length vector")
)
