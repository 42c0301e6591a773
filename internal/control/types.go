// Package control contains the incubator control policy and its state
// machine. This package has NO hardware dependencies (no GPIO, I2C, or
// time.Sleep). Time is always injectable via time.Time parameters and an
// injected sleep function.
package control

import "time"

// Mode is the top-level system state, driven by the enable switch.
type Mode string

const (
	ModeDisabled Mode = "DISABLED"
	ModeArmed    Mode = "ARMED"
)

// FanLevel is the commanded fan output level.
type FanLevel int

const (
	FanOff FanLevel = iota
	FanLow
	FanHigh
)

// String returns the level name for logs and tests.
func (l FanLevel) String() string {
	switch l {
	case FanLow:
		return "LOW"
	case FanHigh:
		return "HIGH"
	default:
		return "OFF"
	}
}

// LedID identifies one of the indicator LEDs.
type LedID int

const (
	LedHeater LedID = iota
	LedFan
	LedFault
)

// Fault describes one raised fault condition.
type Fault struct {
	Label   string // short machine tag: DHT, BabyT, Noise, Pulse
	Message string
}

// Sample is one slow-cycle reading of the non-pulse sensors. Each group
// carries its own error so the policy layer can classify failures instead
// of the gateway suppressing them.
type Sample struct {
	AmbientTemp float64
	Humidity    float64
	AmbientErr  error

	BodyTemp float64
	BodyErr  error

	Sound    int
	SoundErr error
}

// Sensors is the gateway to the incubator's measurement hardware.
type Sensors interface {
	// ReadAmbient returns chamber temperature (°C) and relative humidity (%).
	ReadAmbient() (temp, humidity float64, err error)

	// ReadBodyTemp returns the infant skin temperature in °C.
	ReadBodyTemp() (float64, error)

	// ReadSound returns the chamber sound level on the 0..1023 count scale.
	ReadSound() (int, error)

	// PollPulse samples the pulse sensor once. edge is true when a new
	// heartbeat edge was seen on this poll; bpm is only meaningful then.
	PollPulse() (bpm int, edge bool, err error)
}

// Actuators sets physical output levels. All operations are idempotent.
type Actuators interface {
	SetHeater(on bool) error
	SetFan(level FanLevel) error
	SetAlarm(on bool) error
	SetIndicatorLed(id LedID, on bool) error
}

// Display renders the two output surfaces. Each call fully redraws its
// target surface.
type Display interface {
	ShowHeartRate(bpm int)
	ShowStatus(temp, humidity, bodyTemp float64)
	ShowError(label, message string)
}

// Panel reads the caretaker inputs.
type Panel interface {
	// Read returns the enable switch and manual-override button states.
	Read() (enabled, override bool, err error)
}

// Control thresholds. Fixed at compile time; runtime configuration is
// deliberately not supported.
const (
	// Chamber temperature band (°C): heat below, vent hard above.
	AmbientLow  = 36.5
	AmbientHigh = 38.0

	// Acceptable infant skin temperature band (°C) and the tolerance
	// applied on each side before a fault is flagged.
	BodyLow       = 36.5
	BodyHigh      = 37.5
	BodyTolerance = 5.0

	// Sound ceiling on the 0..1023 count scale.
	SoundLimit = 600 * 3 / 2

	// PulseStale is how long the loop tolerates no heartbeat edge.
	PulseStale = 3000 * time.Millisecond

	// SlowPeriod is the cadence of the ambient/body/sound sampling pass.
	SlowPeriod = 5000 * time.Millisecond

	// Fault indication blink sequence.
	BlinkCount    = 5
	BlinkInterval = 200 * time.Millisecond
)
