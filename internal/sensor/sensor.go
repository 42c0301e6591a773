// Package sensor implements the incubator's measurement gateway.
// The real implementation reads a DHT22 (ambient), an ADS1115 ADC carrying
// the LM35 body probe and the sound module, and a pulse sensor digital
// output. The fake implementation allows testing without hardware.
//
// Reads are not retried and failures are not suppressed; the control layer
// classifies them.
package sensor

import "time"

// Default wiring (BCM numbering for the pulse line, periph names otherwise).
const (
	DefaultDHTPin   = "GPIO4"
	DefaultPulsePin = 17
)

// Config selects the hardware the gateway attaches to.
type Config struct {
	// DHTPin is the periph pin name of the DHT22 data line.
	DHTPin string
	// I2CBus is the periph I2C bus name; empty selects the first bus.
	I2CBus string
	// PulsePin is the BCM number of the pulse sensor digital output.
	PulsePin int
}

// adcVolts converts a 10-bit converter count to volts on a 5 V reference.
func adcVolts(count int) float64 {
	return float64(count) * 5.0 / 1023
}

// LM35Celsius converts an LM35 output voltage to °C (10 mV per degree).
func LM35Celsius(volts float64) float64 {
	return volts * 100
}

// pulseRefractory rejects retriggers faster than any plausible heartbeat.
const pulseRefractory = 200 * time.Millisecond

// pulseTracker turns raw pulse-sensor levels into beat edges and a BPM
// estimate from the inter-beat interval.
type pulseTracker struct {
	lastLevel int
	lastBeat  time.Time
	bpm       int
}

// sample processes one raw level. edge is true when a new beat was seen;
// bpm is the running estimate (0 until two beats have been observed).
func (p *pulseTracker) sample(level int, now time.Time) (bpm int, edge bool) {
	rising := p.lastLevel == 0 && level != 0
	p.lastLevel = level
	if !rising {
		return p.bpm, false
	}
	if !p.lastBeat.IsZero() {
		interval := now.Sub(p.lastBeat)
		if interval < pulseRefractory {
			// Bounce, not a beat.
			return p.bpm, false
		}
		p.bpm = int(time.Minute / interval)
	}
	p.lastBeat = now
	return p.bpm, true
}
