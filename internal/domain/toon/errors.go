package toon

import "errors"

// ErrDegenerateEyePair возвращается, если центр правого глаза не правее центра левого.
var ErrDegenerateEyePair = errors.New("toon: degenerate eye pair")
