//go:build !linux

package sensor

import "errors"

// Real is not available on non-Linux platforms.
type Real struct{}

// NewReal returns an error on non-Linux platforms.
func NewReal(Config) (*Real, error) {
	return nil, errors.New("sensor: not supported on this platform (requires Linux)")
}

func (r *Real) ReadAmbient() (float64, float64, error) {
	return 0, 0, errors.New("sensor: not supported")
}

func (r *Real) ReadBodyTemp() (float64, error) {
	return 0, errors.New("sensor: not supported")
}

func (r *Real) ReadSound() (int, error) {
	return 0, errors.New("sensor: not supported")
}

func (r *Real) PollPulse() (int, bool, error) {
	return 0, false, errors.New("sensor: not supported")
}

func (r *Real) Close() error { return nil }
