package display

// Surface captures the two lines last drawn on one fake surface, plus a
// redraw count.
type Surface struct {
	Line1   string
	Line2   string
	Redraws int
}

// Fake records what each surface would show.
type Fake struct {
	Status    Surface
	HeartRate Surface
}

// NewFake creates a Fake with blank surfaces.
func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) ShowHeartRate(bpm int) {
	f.HeartRate.Line1, f.HeartRate.Line2 = HeartRateLines(bpm)
	f.HeartRate.Redraws++
}

func (f *Fake) ShowStatus(temp, humidity, bodyTemp float64) {
	f.Status.Line1, f.Status.Line2 = StatusLines(temp, humidity, bodyTemp)
	f.Status.Redraws++
}

func (f *Fake) ShowError(label, message string) {
	f.Status.Line1, f.Status.Line2 = ErrorLines(label, message)
	f.Status.Redraws++
}
