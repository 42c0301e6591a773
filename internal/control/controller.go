package control

import (
	"time"

	"go.uber.org/zap"
)

// Controller owns every piece of mutable control state and drives the
// actuators and displays from sensor input. One Tick runs to completion
// before the next begins; there is no other execution context.
type Controller struct {
	sensors Sensors
	acts    Actuators
	disp    Display
	panel   Panel
	log     *zap.Logger

	// sleep is swapped out in tests to avoid real blink delays.
	sleep func(time.Duration)

	mode     Mode
	override bool
	fault    *Fault
	lastSlow time.Time
	lastEdge time.Time
	lastBPM  int
}

// New creates a Controller in the Disabled state.
func New(sensors Sensors, acts Actuators, disp Display, panel Panel, log *zap.Logger) *Controller {
	return &Controller{
		sensors: sensors,
		acts:    acts,
		disp:    disp,
		panel:   panel,
		log:     log,
		sleep:   time.Sleep,
		mode:    ModeDisabled,
	}
}

// Tick runs one control iteration. The enable check always runs first and
// unconditionally short-circuits everything else, including an active fault.
func (c *Controller) Tick(now time.Time) {
	enabled, override, err := c.panel.Read()
	if err != nil {
		c.log.Warn("panel read failed, treating as disabled", zap.Error(err))
		enabled = false
	}

	if !enabled {
		c.disarm()
		return
	}

	c.override = override
	if c.mode != ModeArmed {
		c.arm(now)
	}

	// Fast path: pulse freshness runs every tick, independent of the
	// slow cycle, and can raise a fault mid-cycle.
	bpm, edge, err := c.sensors.PollPulse()
	if err != nil {
		c.log.Warn("pulse poll failed", zap.Error(err))
	} else if edge {
		c.lastEdge = now
		c.lastBPM = bpm
	}
	c.disp.ShowHeartRate(c.lastBPM)

	if !c.slowDue(now) {
		c.checkPulse(now)
		return
	}
	c.lastSlow = now

	// The prior fault clears at the start of every slow cycle; faults are
	// self-healing once the underlying condition goes away.
	c.fault = nil

	s := c.sample()
	if f := evaluate(s); f != nil {
		// Actuators keep whatever they were last set to this cycle.
		c.raise(*f)
		return
	}

	c.apply(s)
	c.disp.ShowStatus(s.AmbientTemp, s.Humidity, s.BodyTemp)

	// Staleness is re-checked after the clear so a persisting pulse loss
	// re-raises on this tick instead of dropping the alarm until the next.
	c.checkPulse(now)
}

// checkPulse raises the pulse fault once the freshness timer exceeds the
// staleness ceiling. It does nothing while another fault is indicated; the
// next slow cycle's clear re-arms it.
func (c *Controller) checkPulse(now time.Time) {
	if c.fault == nil && now.Sub(c.lastEdge) > PulseStale {
		c.raise(FaultPulse)
	}
}

// SetSleep replaces the delay function used by the fault blink sequence.
// Tests inject a no-op so fault scenarios run without real delays.
func (c *Controller) SetSleep(fn func(time.Duration)) {
	c.sleep = fn
}

// Shutdown forces all outputs to their safe levels. Called by the daemon
// before exit.
func (c *Controller) Shutdown() {
	c.log.Info("shutting down, forcing safe outputs")
	c.disarm()
}

// Mode returns the current top-level state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// ActiveFault returns a copy of the currently indicated fault, or nil.
func (c *Controller) ActiveFault() *Fault {
	if c.fault == nil {
		return nil
	}
	f := *c.fault
	return &f
}

func (c *Controller) disarm() {
	if c.mode != ModeDisabled {
		c.log.Info("disabled, forcing safe outputs")
	}
	c.mode = ModeDisabled
	c.fault = nil
	c.override = false
	c.safeOutputs()
}

// arm enters Armed/Normal with no history from any prior fault.
func (c *Controller) arm(now time.Time) {
	c.log.Info("armed")
	c.mode = ModeArmed
	c.fault = nil
	c.lastEdge = now
	c.lastBPM = 0
	c.lastSlow = time.Time{}
}

func (c *Controller) slowDue(now time.Time) bool {
	return c.lastSlow.IsZero() || now.Sub(c.lastSlow) >= SlowPeriod
}

func (c *Controller) sample() Sample {
	var s Sample
	s.AmbientTemp, s.Humidity, s.AmbientErr = c.sensors.ReadAmbient()
	s.BodyTemp, s.BodyErr = c.sensors.ReadBodyTemp()
	s.Sound, s.SoundErr = c.sensors.ReadSound()
	if s.SoundErr != nil {
		c.log.Warn("sound read failed", zap.Error(s.SoundErr))
	}
	return s
}

// apply computes and writes the Normal-path control outputs.
func (c *Controller) apply(s Sample) {
	heat := c.override || s.AmbientTemp < AmbientLow

	fan := FanLow
	if c.override {
		fan = FanOff
	} else if s.AmbientTemp > AmbientHigh {
		fan = FanHigh
	}

	c.actuate("heater", c.acts.SetHeater(heat))
	c.actuate("fan", c.acts.SetFan(fan))
	c.actuate("alarm", c.acts.SetAlarm(false))
	c.actuate("heater led", c.acts.SetIndicatorLed(LedHeater, heat))
	c.actuate("fan led", c.acts.SetIndicatorLed(LedFan, fan != FanOff))
	c.actuate("fault led", c.acts.SetIndicatorLed(LedFault, false))
}

// raise records the fault and performs its side effects: log line, error
// display, continuous alarm tone, and the bounded fault-LED blink.
func (c *Controller) raise(f Fault) {
	c.fault = &f
	c.log.Error(f.Label + ": " + f.Message)
	c.disp.ShowError(f.Label, f.Message)
	c.actuate("alarm", c.acts.SetAlarm(true))

	for i := 0; i < BlinkCount; i++ {
		c.actuate("fault led", c.acts.SetIndicatorLed(LedFault, true))
		c.sleep(BlinkInterval)
		c.actuate("fault led", c.acts.SetIndicatorLed(LedFault, false))
		c.sleep(BlinkInterval)
	}
}

func (c *Controller) safeOutputs() {
	c.actuate("heater", c.acts.SetHeater(false))
	c.actuate("fan", c.acts.SetFan(FanOff))
	c.actuate("alarm", c.acts.SetAlarm(false))
	c.actuate("heater led", c.acts.SetIndicatorLed(LedHeater, false))
	c.actuate("fan led", c.acts.SetIndicatorLed(LedFan, false))
	c.actuate("fault led", c.acts.SetIndicatorLed(LedFault, false))
}

func (c *Controller) actuate(output string, err error) {
	if err != nil {
		c.log.Warn("actuator write failed", zap.String("output", output), zap.Error(err))
	}
}
