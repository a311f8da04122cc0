package parcel

import (
	"parceltrack/internal/pkg/errs"
)

// Priority represents the delivery urgency of a parcel on a fixed scale
// from 1 to 5, where 1 is the most urgent. The dispatch queue releases
// parcels in ascending priority order, so a Highest parcel always leaves
// before a Normal one.
//
// Priority is a value object that validates its level and provides string
// representations for display.
type Priority int

const (
	// Unspecified represents an invalid or undefined priority.
	// This value (0) helps catch uninitialized Priority values.
	Unspecified Priority = iota

	// Highest is the most urgent priority level (1).
	Highest

	// High is the second most urgent priority level (2).
	High

	// Normal is the default priority level (3).
	Normal

	// Low is the fourth priority level (4).
	Low

	// Lowest is the least urgent priority level (5).
	Lowest
)

// getPriorityStrings returns a map of Priority values to their string representations.
// All priorities are included for string conversion.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		Unspecified: "Unspecified",
		Highest:     "Highest",
		High:        "High",
		Normal:      "Normal",
		Low:         "Low",
		Lowest:      "Lowest",
	}
}

// getValidPriorityStrings returns a map of only valid Priority values.
// Only valid priorities are included to support validation.
func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // Unspecified is intentionally excluded as it's invalid
	return map[Priority]string{
		Highest: "Highest",
		High:    "High",
		Normal:  "Normal",
		Low:     "Low",
		Lowest:  "Lowest",
	}
}

// NewPriority creates a Priority from its raw numeric level.
//
// Valid levels are 1 through 5. Any other value is rejected, so callers can
// hand user input straight to this constructor.
//
// Returns:
//   - the Priority if the level is within range
//   - an error if the level is outside 1..5
func NewPriority(level int) (Priority, error) {
	priority := Priority(level)
	if err := priority.Validate(); err != nil {
		return Unspecified, err
	}
	return priority, nil
}

// Validate checks if the Priority value is valid.
//
// Valid priorities are: Highest, High, Normal, Low, Lowest.
// Unspecified (0) and any other values are invalid.
//
// Returns:
//   - nil if the priority is valid
//   - error with details if the priority is outside the allowed range
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsOutOfRangeError("priority", int(p), int(Highest), int(Lowest))
	}
	return nil
}

// Level returns the raw numeric level of the priority (1..5).
func (p Priority) Level() int {
	return int(p)
}

// MoreUrgentThan reports whether this priority outranks the other one.
// Lower numeric levels are more urgent, so Highest outranks everything.
//
// Example:
//
//	parcel.Highest.MoreUrgentThan(parcel.Normal) // true
//	parcel.Lowest.MoreUrgentThan(parcel.High)    // false
func (p Priority) MoreUrgentThan(other Priority) bool {
	return p < other
}

// String returns the human-readable name of the priority.
//
// Returns:
//   - "Highest", "High", "Normal", "Low", or "Lowest" for valid priorities
//   - "Unspecified" for invalid priority values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Priority value, including invalid ones.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unspecified"
}
