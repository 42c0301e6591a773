//go:build !linux

package panel

import "errors"

// Real is not available on non-Linux platforms.
type Real struct{}

// NewReal returns an error on non-Linux platforms.
func NewReal(int, int) (*Real, error) {
	return nil, errors.New("panel: not supported on this platform (requires Linux)")
}

func (r *Real) Read() (bool, bool, error) {
	return false, false, errors.New("panel: not supported")
}

func (r *Real) Close() error { return nil }
