// Package actuator drives the incubator's outputs: heater relay, chamber
// fan, alarm buzzer, and the three indicator LEDs. All set-operations are
// idempotent level-setters; the real implementation caches the last written
// level and skips redundant writes.
package actuator

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Default wiring (periph pin names).
const (
	DefaultHeaterPin    = "GPIO18"
	DefaultFanPin       = "GPIO12" // hardware PWM
	DefaultBuzzerPin    = "GPIO13" // hardware PWM
	DefaultHeaterLedPin = "GPIO22"
	DefaultFanLedPin    = "GPIO23"
	DefaultFaultLedPin  = "GPIO24"
)

// Fan PWM duties and the fixed alarm tone.
const (
	fanDutyLow  = gpio.DutyMax / 4
	fanDutyHigh = gpio.DutyMax

	alarmTone = 1 * physic.KiloHertz
	fanFreq   = 25 * physic.KiloHertz
)

// Pins selects the output wiring.
type Pins struct {
	Heater    string
	Fan       string
	Buzzer    string
	HeaterLed string
	FanLed    string
	FaultLed  string
}

// DefaultPins returns the standard wiring.
func DefaultPins() Pins {
	return Pins{
		Heater:    DefaultHeaterPin,
		Fan:       DefaultFanPin,
		Buzzer:    DefaultBuzzerPin,
		HeaterLed: DefaultHeaterLedPin,
		FanLed:    DefaultFanLedPin,
		FaultLed:  DefaultFaultLedPin,
	}
}
