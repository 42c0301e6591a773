// Command nursery-incubator polls the incubator sensors and drives the
// heater, fan, alarm buzzer, indicator LEDs, and the two displays.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sweeney/nursery-incubator/internal/actuator"
	"github.com/sweeney/nursery-incubator/internal/control"
	"github.com/sweeney/nursery-incubator/internal/display"
	"github.com/sweeney/nursery-incubator/internal/panel"
	"github.com/sweeney/nursery-incubator/internal/sensor"
)

func main() {
	poll := flag.Duration("poll", 50*time.Millisecond, "Control tick interval")
	dhtPin := flag.String("pin-dht", sensor.DefaultDHTPin, "Pin name for the DHT22 data line")
	pulsePin := flag.Int("pin-pulse", sensor.DefaultPulsePin, "BCM pin number for the pulse sensor")
	enablePin := flag.Int("pin-enable", panel.DefaultPinEnable, "BCM pin number for the enable switch")
	overridePin := flag.Int("pin-override", panel.DefaultPinOverride, "BCM pin number for the override button")
	i2cBus := flag.String("i2c", "", "I2C bus for the ADC (empty selects the first available)")
	printState := flag.Bool("print-state", false, "Print current sensor readings and exit")

	flag.Parse()

	log := newLogger()
	defer log.Sync()

	if err := run(log, *poll, *dhtPin, *i2cBus, *pulsePin, *enablePin, *overridePin, *printState); err != nil {
		log.Fatal("fatal", zap.Error(err))
	}
}

// encoderConfig is the serial-style line format: "[LEVEL] message".
// Fault lines come out exactly as "[ERROR] <label>: <message>".
func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey: "msg",
		LevelKey:   "level",
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + l.CapitalString() + "]")
		},
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
	}
}

func newLogger() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.Lock(zapcore.AddSync(os.Stderr)),
		zap.InfoLevel,
	)
	return zap.New(core)
}

func run(log *zap.Logger, poll time.Duration, dhtPin, i2cBus string, pulsePin, enablePin, overridePin int, printState bool) error {
	sensors, err := sensor.NewReal(sensor.Config{
		DHTPin:   dhtPin,
		I2CBus:   i2cBus,
		PulsePin: pulsePin,
	})
	if err != nil {
		return fmt.Errorf("init sensors: %w", err)
	}
	defer sensors.Close()

	// Print state mode
	if printState {
		return printCurrentState(sensors)
	}

	pnl, err := panel.NewReal(enablePin, overridePin)
	if err != nil {
		return fmt.Errorf("init panel: %w", err)
	}
	defer pnl.Close()

	acts, err := actuator.NewReal(actuator.DefaultPins())
	if err != nil {
		return fmt.Errorf("init actuators: %w", err)
	}
	defer acts.Close()

	disp, err := display.NewReal(display.DefaultPins())
	if err != nil {
		return fmt.Errorf("init displays: %w", err)
	}

	ctrl := control.New(sensors, acts, disp, pnl, log)

	log.Info("started", zap.Duration("poll", poll))

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(ctrl, log, time.Now, ticker.C, sigCh)
}

// runLoop drives the controller until a signal arrives, then forces safe
// outputs and returns.
func runLoop(ctrl *control.Controller, log *zap.Logger, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	for {
		select {
		case s := <-sig:
			log.Info("received signal", zap.String("signal", s.String()))
			ctrl.Shutdown()
			return nil

		case <-tick:
			ctrl.Tick(now())
		}
	}
}

func printCurrentState(s *sensor.Real) error {
	if temp, hum, err := s.ReadAmbient(); err != nil {
		fmt.Printf("Ambient: unavailable (%v)\n", err)
	} else {
		fmt.Printf("Ambient: %.2f°C %.2f%%\n", temp, hum)
	}

	if body, err := s.ReadBodyTemp(); err != nil {
		fmt.Printf("Body: unavailable (%v)\n", err)
	} else {
		fmt.Printf("Body: %.2f°C\n", body)
	}

	if sound, err := s.ReadSound(); err != nil {
		fmt.Printf("Sound: unavailable (%v)\n", err)
	} else {
		fmt.Printf("Sound: %d\n", sound)
	}

	if bpm, edge, err := s.PollPulse(); err != nil {
		fmt.Printf("Pulse: unavailable (%v)\n", err)
	} else {
		fmt.Printf("Pulse: %d BPM (edge=%v)\n", bpm, edge)
	}

	return nil
}
