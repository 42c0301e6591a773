//go:build linux

package panel

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// Real reads the panel inputs from the GPIO character device.
type Real struct {
	chip     *gpiocdev.Chip
	enable   *gpiocdev.Line
	override *gpiocdev.Line
}

// NewReal requests the two input lines with pull-ups, matching the
// active-low switch wiring.
func NewReal(pinEnable, pinOverride int) (*Real, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	enable, err := chip.RequestLine(pinEnable, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request enable pin %d: %w", pinEnable, err)
	}

	override, err := chip.RequestLine(pinOverride, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		enable.Close()
		chip.Close()
		return nil, fmt.Errorf("request override pin %d: %w", pinOverride, err)
	}

	return &Real{
		chip:     chip,
		enable:   enable,
		override: override,
	}, nil
}

// Read returns the logical states of the enable switch and override button.
// Inverts raw GPIO: raw low (0) = asserted.
func (r *Real) Read() (bool, bool, error) {
	enRaw, err := r.enable.Value()
	if err != nil {
		return false, false, fmt.Errorf("read enable pin: %w", err)
	}

	ovRaw, err := r.override.Value()
	if err != nil {
		return false, false, fmt.Errorf("read override pin: %w", err)
	}

	return enRaw == 0, ovRaw == 0, nil
}

// Close releases the GPIO lines.
func (r *Real) Close() error {
	var errs []error
	if r.enable != nil {
		if err := r.enable.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close enable pin: %w", err))
		}
	}
	if r.override != nil {
		if err := r.override.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close override pin: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
