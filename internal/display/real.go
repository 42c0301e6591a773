package display

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/devices/v3/hd44780"
	"periph.io/x/host/v3"
)

// LCDPins names the six GPIO lines of one HD44780 in 4-bit mode.
type LCDPins struct {
	RS string
	EN string
	D4 string
	D5 string
	D6 string
	D7 string
}

// Pins selects the wiring for both surfaces.
type Pins struct {
	Status    LCDPins
	HeartRate LCDPins
}

// DefaultPins returns the standard wiring.
func DefaultPins() Pins {
	return Pins{
		Status:    LCDPins{RS: "GPIO5", EN: "GPIO6", D4: "GPIO16", D5: "GPIO20", D6: "GPIO21", D7: "GPIO26"},
		HeartRate: LCDPins{RS: "GPIO7", EN: "GPIO8", D4: "GPIO9", D5: "GPIO10", D6: "GPIO11", D7: "GPIO25"},
	}
}

// Real drives the two character LCDs. Presenter calls swallow hardware
// errors: a failed redraw must never stop the control loop, and the next
// redraw replaces the frame anyway.
type Real struct {
	status    *hd44780.Dev
	heartRate *hd44780.Dev
}

// NewReal attaches to both LCDs.
func NewReal(pins Pins) (*Real, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}

	status, err := openLCD(pins.Status)
	if err != nil {
		return nil, fmt.Errorf("open status lcd: %w", err)
	}
	heartRate, err := openLCD(pins.HeartRate)
	if err != nil {
		return nil, fmt.Errorf("open heart-rate lcd: %w", err)
	}

	return &Real{status: status, heartRate: heartRate}, nil
}

func openLCD(p LCDPins) (*hd44780.Dev, error) {
	pins := make([]gpio.PinOut, 0, 6)
	for _, name := range []string{p.RS, p.EN, p.D4, p.D5, p.D6, p.D7} {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, fmt.Errorf("no such pin %q", name)
		}
		pins = append(pins, pin)
	}
	dev, err := hd44780.New(pins[2:], pins[0], pins[1])
	if err != nil {
		return nil, fmt.Errorf("init hd44780: %w", err)
	}
	return dev, nil
}

// ShowHeartRate redraws the heart-rate surface.
func (r *Real) ShowHeartRate(bpm int) {
	l1, l2 := HeartRateLines(bpm)
	redraw(r.heartRate, l1, l2)
}

// ShowStatus redraws the status surface with ambient and body readings.
func (r *Real) ShowStatus(temp, humidity, bodyTemp float64) {
	l1, l2 := StatusLines(temp, humidity, bodyTemp)
	redraw(r.status, l1, l2)
}

// ShowError redraws the status surface with the fault.
func (r *Real) ShowError(label, message string) {
	l1, l2 := ErrorLines(label, message)
	redraw(r.status, l1, l2)
}

func redraw(dev *hd44780.Dev, line1, line2 string) {
	if err := dev.Reset(); err != nil {
		return
	}
	if err := dev.SetCursor(0, 0); err != nil {
		return
	}
	if err := dev.Print(clip(line1)); err != nil {
		return
	}
	if err := dev.SetCursor(1, 0); err != nil {
		return
	}
	_ = dev.Print(clip(line2))
}
