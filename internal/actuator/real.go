package actuator

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/sweeney/nursery-incubator/internal/control"
)

// Real drives the physical outputs through periph GPIO and PWM.
type Real struct {
	heater gpio.PinOut
	fan    gpio.PinOut
	buzzer gpio.PinOut
	leds   map[control.LedID]gpio.PinOut

	// Last written levels; a repeated write at the same level is skipped.
	heaterOn  bool
	heaterSet bool
	fanLevel  control.FanLevel
	fanSet    bool
	alarmOn   bool
	alarmSet  bool
	ledOn     map[control.LedID]bool
}

// NewReal looks up the output pins and returns a bank with all outputs
// forced to their safe (off) levels.
func NewReal(pins Pins) (*Real, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}

	lookup := func(name, what string) (gpio.PinOut, error) {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("no such pin %q for %s", name, what)
		}
		return p, nil
	}

	heater, err := lookup(pins.Heater, "heater")
	if err != nil {
		return nil, err
	}
	fan, err := lookup(pins.Fan, "fan")
	if err != nil {
		return nil, err
	}
	buzzer, err := lookup(pins.Buzzer, "buzzer")
	if err != nil {
		return nil, err
	}
	heaterLed, err := lookup(pins.HeaterLed, "heater LED")
	if err != nil {
		return nil, err
	}
	fanLed, err := lookup(pins.FanLed, "fan LED")
	if err != nil {
		return nil, err
	}
	faultLed, err := lookup(pins.FaultLed, "fault LED")
	if err != nil {
		return nil, err
	}

	r := &Real{
		heater: heater,
		fan:    fan,
		buzzer: buzzer,
		leds: map[control.LedID]gpio.PinOut{
			control.LedHeater: heaterLed,
			control.LedFan:    fanLed,
			control.LedFault:  faultLed,
		},
		ledOn: make(map[control.LedID]bool),
	}

	if err := r.Close(); err != nil {
		return nil, fmt.Errorf("force safe outputs: %w", err)
	}
	return r, nil
}

// SetHeater switches the heater relay.
func (r *Real) SetHeater(on bool) error {
	if r.heaterSet && r.heaterOn == on {
		return nil
	}
	if err := r.heater.Out(gpio.Level(on)); err != nil {
		return fmt.Errorf("set heater: %w", err)
	}
	r.heaterOn, r.heaterSet = on, true
	return nil
}

// SetFan sets the fan PWM level.
func (r *Real) SetFan(level control.FanLevel) error {
	if r.fanSet && r.fanLevel == level {
		return nil
	}
	var err error
	switch level {
	case control.FanOff:
		err = r.fan.Out(gpio.Low)
	case control.FanLow:
		err = r.fan.PWM(fanDutyLow, fanFreq)
	default:
		err = r.fan.PWM(fanDutyHigh, fanFreq)
	}
	if err != nil {
		return fmt.Errorf("set fan %s: %w", level, err)
	}
	r.fanLevel, r.fanSet = level, true
	return nil
}

// SetAlarm starts or silences the fixed-frequency buzzer tone.
func (r *Real) SetAlarm(on bool) error {
	if r.alarmSet && r.alarmOn == on {
		return nil
	}
	var err error
	if on {
		err = r.buzzer.PWM(gpio.DutyHalf, alarmTone)
	} else {
		err = r.buzzer.Out(gpio.Low)
	}
	if err != nil {
		return fmt.Errorf("set alarm: %w", err)
	}
	r.alarmOn, r.alarmSet = on, true
	return nil
}

// SetIndicatorLed switches one of the indicator LEDs.
func (r *Real) SetIndicatorLed(id control.LedID, on bool) error {
	pin, ok := r.leds[id]
	if !ok {
		return fmt.Errorf("no such LED %d", id)
	}
	if prev, set := r.ledOn[id]; set && prev == on {
		return nil
	}
	if err := pin.Out(gpio.Level(on)); err != nil {
		return fmt.Errorf("set LED %d: %w", id, err)
	}
	r.ledOn[id] = on
	return nil
}

// Close forces every output to its safe level.
func (r *Real) Close() error {
	var errs []error
	if err := r.heater.Out(gpio.Low); err != nil {
		errs = append(errs, fmt.Errorf("heater off: %w", err))
	}
	if err := r.fan.Out(gpio.Low); err != nil {
		errs = append(errs, fmt.Errorf("fan off: %w", err))
	}
	if err := r.buzzer.Out(gpio.Low); err != nil {
		errs = append(errs, fmt.Errorf("buzzer off: %w", err))
	}
	for id, pin := range r.leds {
		if err := pin.Out(gpio.Low); err != nil {
			errs = append(errs, fmt.Errorf("LED %d off: %w", id, err))
		}
	}

	r.heaterOn, r.heaterSet = false, true
	r.fanLevel, r.fanSet = control.FanOff, true
	r.alarmOn, r.alarmSet = false, true
	for id := range r.leds {
		r.ledOn[id] = false
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
