package dft

import "errors"

// Sentinel errors returned by plan construction and transforms.
var (
	ErrInvalidLength  = errors.New("dft: length must be positive and even")
	ErrLengthMismatch = errors.New("dft: buffer length mismatch")
	ErrNilSlice       = errors.New("dft: nil slice")
	ErrInvalidLayout  = errors.New("dft: invalid layout")
)
