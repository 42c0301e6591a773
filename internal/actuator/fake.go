package actuator

import "github.com/sweeney/nursery-incubator/internal/control"

// Write records one physical write that actually reached an output.
type Write struct {
	Output string
	Level  string
}

// Fake records output levels and physical writes for test assertions.
// Like the real bank it suppresses redundant writes, so Writes reflects
// what would have reached the hardware.
type Fake struct {
	Heater bool
	Fan    control.FanLevel
	Alarm  bool
	Leds   map[control.LedID]bool

	Writes []Write

	// Err, if set, is returned by every set-operation.
	Err error

	set map[string]bool
}

// NewFake creates a Fake with all outputs off.
func NewFake() *Fake {
	return &Fake{
		Leds: make(map[control.LedID]bool),
		set:  make(map[string]bool),
	}
}

func (f *Fake) SetHeater(on bool) error {
	if f.Err != nil {
		return f.Err
	}
	if f.set["heater"] && f.Heater == on {
		return nil
	}
	f.Heater = on
	f.set["heater"] = true
	f.Writes = append(f.Writes, Write{Output: "heater", Level: onOff(on)})
	return nil
}

func (f *Fake) SetFan(level control.FanLevel) error {
	if f.Err != nil {
		return f.Err
	}
	if f.set["fan"] && f.Fan == level {
		return nil
	}
	f.Fan = level
	f.set["fan"] = true
	f.Writes = append(f.Writes, Write{Output: "fan", Level: level.String()})
	return nil
}

func (f *Fake) SetAlarm(on bool) error {
	if f.Err != nil {
		return f.Err
	}
	if f.set["alarm"] && f.Alarm == on {
		return nil
	}
	f.Alarm = on
	f.set["alarm"] = true
	f.Writes = append(f.Writes, Write{Output: "alarm", Level: onOff(on)})
	return nil
}

func (f *Fake) SetIndicatorLed(id control.LedID, on bool) error {
	if f.Err != nil {
		return f.Err
	}
	key := ledKey(id)
	if f.set[key] && f.Leds[id] == on {
		return nil
	}
	f.Leds[id] = on
	f.set[key] = true
	f.Writes = append(f.Writes, Write{Output: key, Level: onOff(on)})
	return nil
}

// Reset clears recorded state.
func (f *Fake) Reset() {
	f.Heater = false
	f.Fan = control.FanOff
	f.Alarm = false
	f.Leds = make(map[control.LedID]bool)
	f.Writes = nil
	f.Err = nil
	f.set = make(map[string]bool)
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

func ledKey(id control.LedID) string {
	switch id {
	case control.LedHeater:
		return "heater led"
	case control.LedFan:
		return "fan led"
	default:
		return "fault led"
	}
}
