package viewport

import "time"

const (
	// DefaultThreshold is the width below which a viewport counts as compact.
	DefaultThreshold = 768

	// DefaultDebounceDelay is the quiet period required after a resize before
	// the classification is recomputed.
	DefaultDebounceDelay = 100 * time.Millisecond
)

// Mode selects which dimensions are compared against the threshold.
type Mode int

const (
	// ModeWidth compares the width only.
	ModeWidth Mode = iota
	// ModeOrientation treats the viewport as compact when either the width
	// or the height is below the threshold, so a landscape phone still counts.
	ModeOrientation
)

func (m Mode) String() string {
	switch m {
	case ModeWidth:
		return "width"
	case ModeOrientation:
		return "orientation"
	default:
		return "unknown"
	}
}

// Snapshot is the size of the display surface as reported by the host.
type Snapshot struct {
	Width  int
	Height int
}

// Classify reports whether s is compact for the given threshold and mode.
func Classify(s Snapshot, threshold int, m Mode) bool {
	if m == ModeOrientation {
		return s.Width < threshold || s.Height < threshold
	}
	return s.Width < threshold
}
