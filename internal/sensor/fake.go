package sensor

// Fake is a test double returning settable sensor values. Tests mutate the
// fields between control ticks to script a scenario.
type Fake struct {
	AmbientTemp float64
	Humidity    float64
	AmbientErr  error

	BodyTemp float64
	BodyErr  error

	Sound    int
	SoundErr error

	// BPM and Edge are returned by every PollPulse call.
	BPM      int
	Edge     bool
	PulseErr error

	// PulsePolls counts PollPulse calls.
	PulsePolls int
}

// NewFake creates a Fake with nominal in-band readings.
func NewFake() *Fake {
	return &Fake{
		AmbientTemp: 37.0,
		Humidity:    50.0,
		BodyTemp:    37.0,
		Sound:       200,
		BPM:         120,
		Edge:        true,
	}
}

func (f *Fake) ReadAmbient() (float64, float64, error) {
	return f.AmbientTemp, f.Humidity, f.AmbientErr
}

func (f *Fake) ReadBodyTemp() (float64, error) {
	return f.BodyTemp, f.BodyErr
}

func (f *Fake) ReadSound() (int, error) {
	return f.Sound, f.SoundErr
}

func (f *Fake) PollPulse() (int, bool, error) {
	f.PulsePolls++
	if f.PulseErr != nil {
		return 0, false, f.PulseErr
	}
	return f.BPM, f.Edge, nil
}

func (f *Fake) Close() error { return nil }
