package astro

// DaySegment is the coarse theming classification of a local hour. It is
// purely cosmetic: gradients and text color key off it, nothing else does.
type DaySegment string

const (
	Morning   DaySegment = "morning"
	Afternoon DaySegment = "afternoon"
	Evening   DaySegment = "evening"
	Night     DaySegment = "night"
)

// Classify maps a local hour to its day segment. The boundaries partition
// all 24 hours with no gaps or overlaps: morning [6,12), afternoon [12,17),
// evening [17,20), night otherwise.
func Classify(hour int) DaySegment {
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 20:
		return Evening
	default:
		return Night
	}
}

// IsDay reports whether the segment counts as daytime.
func IsDay(seg DaySegment) bool {
	return seg == Morning || seg == Afternoon
}
