//go:build linux

package sensor

import (
	"fmt"
	"time"

	dht "github.com/MichaelS11/go-dht"
	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
)

// Real reads the actual incubator sensors.
type Real struct {
	dht   *dht.DHT
	bus   i2c.BusCloser
	body  ads1x15.PinADC
	sound ads1x15.PinADC

	chip  *gpiocdev.Chip
	pulse *gpiocdev.Line
	beats pulseTracker
}

// NewReal attaches to the sensor hardware.
func NewReal(cfg Config) (*Real, error) {
	if err := dht.HostInit(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}

	d, err := dht.NewDHT(cfg.DHTPin, dht.Celsius, "dht22")
	if err != nil {
		return nil, fmt.Errorf("open dht22 on %s: %w", cfg.DHTPin, err)
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus: %w", err)
	}

	adc, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("open ads1115: %w", err)
	}

	body, err := adc.PinForChannel(ads1x15.Channel0, 5*physic.Volt, 10*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("configure body-temp channel: %w", err)
	}

	sound, err := adc.PinForChannel(ads1x15.Channel1, 5*physic.Volt, 10*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		body.Halt()
		bus.Close()
		return nil, fmt.Errorf("configure sound channel: %w", err)
	}

	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		sound.Halt()
		body.Halt()
		bus.Close()
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	pulse, err := chip.RequestLine(cfg.PulsePin, gpiocdev.AsInput, gpiocdev.WithPullDown)
	if err != nil {
		chip.Close()
		sound.Halt()
		body.Halt()
		bus.Close()
		return nil, fmt.Errorf("request pulse pin %d: %w", cfg.PulsePin, err)
	}

	return &Real{
		dht:   d,
		bus:   bus,
		body:  body,
		sound: sound,
		chip:  chip,
		pulse: pulse,
	}, nil
}

// ReadAmbient returns chamber temperature (°C) and relative humidity (%).
func (r *Real) ReadAmbient() (float64, float64, error) {
	humidity, temp, err := r.dht.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("read dht22: %w", err)
	}
	return temp, humidity, nil
}

// ReadBodyTemp returns the LM35 probe temperature in °C.
func (r *Real) ReadBodyTemp() (float64, error) {
	s, err := r.body.Read()
	if err != nil {
		return 0, fmt.Errorf("read body-temp channel: %w", err)
	}
	volts := float64(s.V) / float64(physic.Volt)
	return LM35Celsius(volts), nil
}

// ReadSound returns the sound level mapped onto the 0..1023 count scale
// the thresholds are specified against.
func (r *Real) ReadSound() (int, error) {
	s, err := r.sound.Read()
	if err != nil {
		return 0, fmt.Errorf("read sound channel: %w", err)
	}
	count := int(int64(s.Raw) * 1023 / 32767)
	if count < 0 {
		count = 0
	}
	return count, nil
}

// PollPulse samples the pulse line once and reports beat edges.
func (r *Real) PollPulse() (int, bool, error) {
	v, err := r.pulse.Value()
	if err != nil {
		return 0, false, fmt.Errorf("read pulse pin: %w", err)
	}
	bpm, edge := r.beats.sample(v, time.Now())
	return bpm, edge, nil
}

// Close releases the sensor hardware.
func (r *Real) Close() error {
	var errs []error
	if r.pulse != nil {
		if err := r.pulse.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close pulse pin: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}
	if r.body != nil {
		if err := r.body.Halt(); err != nil {
			errs = append(errs, fmt.Errorf("halt body-temp channel: %w", err))
		}
	}
	if r.sound != nil {
		if err := r.sound.Halt(); err != nil {
			errs = append(errs, fmt.Errorf("halt sound channel: %w", err))
		}
	}
	if r.bus != nil {
		if err := r.bus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close i2c bus: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
