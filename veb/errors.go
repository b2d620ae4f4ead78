package veb

import "errors"

// ErrInvalidUniverse is returned by New when u is not of the form
// 2^(2^k) for some k >= 0 (2, 4, 16, 256, 65536, …).
var ErrInvalidUniverse = errors.New("veb: universe size must be of the form 2^(2^k), k >= 0")

// ErrOutOfRange is returned by Insert and Delete when x is outside
// [0, u).
var ErrOutOfRange = errors.New("veb: value out of universe range")
