package panel

// Fake is a test double returning settable input states.
type Fake struct {
	Enabled  bool
	Override bool

	// Err, if set, is returned by Read.
	Err error

	// Reads counts Read calls.
	Reads int

	Closed bool
}

// NewFake creates a Fake with both inputs released.
func NewFake() *Fake {
	return &Fake{}
}

// Read returns the scripted input states.
func (f *Fake) Read() (bool, bool, error) {
	f.Reads++
	if f.Err != nil {
		return false, false, f.Err
	}
	return f.Enabled, f.Override, nil
}

// Close marks the panel as closed.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}
