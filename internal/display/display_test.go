package display

import "testing"

func TestStatusLines(t *testing.T) {
	l1, l2 := StatusLines(35.0, 50.0, 37.0)
	if l1 != "T:35.00°C H:50.00%" {
		t.Errorf("line1 = %q", l1)
	}
	if l2 != "BT:37.00°C" {
		t.Errorf("line2 = %q", l2)
	}
}

func TestErrorLines(t *testing.T) {
	l1, l2 := ErrorLines("DHT", "Sensor Fail")
	if l1 != "ERR: DHT" {
		t.Errorf("line1 = %q", l1)
	}
	if l2 != "Sensor Fail" {
		t.Errorf("line2 = %q", l2)
	}
}

func TestHeartRateLines(t *testing.T) {
	l1, l2 := HeartRateLines(122)
	if l1 != "Heart Rate:" {
		t.Errorf("line1 = %q", l1)
	}
	if l2 != "122 BPM" {
		t.Errorf("line2 = %q", l2)
	}
}

func TestClip(t *testing.T) {
	if got := clip("T:35.00°C H:50.00%"); len([]rune(got)) != Width {
		t.Errorf("expected clip to %d runes, got %q (%d)", Width, got, len([]rune(got)))
	}
	if got := clip("short"); got != "short" {
		t.Errorf("expected short line untouched, got %q", got)
	}
}

func TestFakeFullRedrawReplacesSurface(t *testing.T) {
	f := NewFake()

	f.ShowStatus(35.0, 50.0, 37.0)
	f.ShowError("Noise", "Too Loud")

	if f.Status.Line1 != "ERR: Noise" || f.Status.Line2 != "Too Loud" {
		t.Errorf("expected error frame to replace status, got %q/%q", f.Status.Line1, f.Status.Line2)
	}
	if f.Status.Redraws != 2 {
		t.Errorf("expected 2 redraws, got %d", f.Status.Redraws)
	}
}

func TestFakeSurfacesAreIndependent(t *testing.T) {
	f := NewFake()

	f.ShowHeartRate(118)
	f.ShowError("Pulse", "No signal")

	if f.HeartRate.Line2 != "118 BPM" {
		t.Errorf("heart-rate surface clobbered: %q", f.HeartRate.Line2)
	}
	if f.Status.Line1 != "ERR: Pulse" {
		t.Errorf("status surface = %q", f.Status.Line1)
	}
}
