package control

// The four fault conditions the controller can raise.
var (
	FaultAmbientSensor = Fault{Label: "DHT", Message: "Sensor Fail"}
	FaultBodyTemp      = Fault{Label: "BabyT", Message: "OOR"}
	FaultNoise         = Fault{Label: "Noise", Message: "Too Loud"}
	FaultPulse         = Fault{Label: "Pulse", Message: "No signal"}
)

// faultCheck pairs a predicate with the fault it raises.
type faultCheck struct {
	match func(Sample) bool
	fault Fault
}

// slowChecks is evaluated in order on every slow cycle; the first match
// wins and the rest are skipped for that cycle. Order is the priority
// contract: ambient sensor failure, then body temperature, then noise.
var slowChecks = []faultCheck{
	{
		match: func(s Sample) bool { return s.AmbientErr != nil },
		fault: FaultAmbientSensor,
	},
	{
		// An unreadable probe counts as out of range.
		match: func(s Sample) bool {
			return s.BodyErr != nil ||
				s.BodyTemp < BodyLow-BodyTolerance ||
				s.BodyTemp > BodyHigh+BodyTolerance
		},
		fault: FaultBodyTemp,
	},
	{
		match: func(s Sample) bool { return s.SoundErr == nil && s.Sound > SoundLimit },
		fault: FaultNoise,
	},
}

// evaluate returns the highest-priority fault matching the sample, or nil.
func evaluate(s Sample) *Fault {
	for _, c := range slowChecks {
		if c.match(s) {
			f := c.fault
			return &f
		}
	}
	return nil
}
