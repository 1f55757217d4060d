package models

import (
	"time"
)

// MoonTimelineItem is one day of the forward-looking lunar timeline.
type MoonTimelineItem struct {
	Date     time.Time `json:"date"`
	Label    string    `json:"label"`    // "Today" for index 0, else short weekday name
	Fraction float64   `json:"fraction"` // illuminated fraction, 0..1
	Phase    float64   `json:"phase"`    // 0..1, new moon to new moon
	Waxing   bool      `json:"waxing"`
}
