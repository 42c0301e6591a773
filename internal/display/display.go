// Package display renders the status and heart-rate surfaces. Both are
// 16x2 character LCDs; every call fully redraws its target surface.
// The line formats are shared by the real and fake implementations so
// tests assert exactly what hardware would show.
package display

import "fmt"

// Width is the character width of both surfaces. Longer lines are clipped.
const Width = 16

// StatusLines formats the Normal-mode status surface.
func StatusLines(temp, humidity, bodyTemp float64) (line1, line2 string) {
	return fmt.Sprintf("T:%.2f°C H:%.2f%%", temp, humidity),
		fmt.Sprintf("BT:%.2f°C", bodyTemp)
}

// ErrorLines formats the Fault-mode status surface.
func ErrorLines(label, message string) (line1, line2 string) {
	return "ERR: " + label, message
}

// HeartRateLines formats the heart-rate surface.
func HeartRateLines(bpm int) (line1, line2 string) {
	return "Heart Rate:", fmt.Sprintf("%d BPM", bpm)
}

func clip(s string) string {
	r := []rune(s)
	if len(r) <= Width {
		return s
	}
	return string(r[:Width])
}
