// Package panel reads the caretaker inputs: the system enable switch and
// the manual override button. Both are active-low, so the raw GPIO values
// are inverted: raw low = asserted.
package panel

// Pin definitions (BCM numbering)
const (
	DefaultPinEnable   = 27 // system enable switch
	DefaultPinOverride = 19 // manual override button
)
