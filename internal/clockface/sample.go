package clockface

import (
	"math"
	"time"
)

// Sample holds the fractional clock readings for one instant. Each unit
// includes the progress of the unit below it, so the hands sweep
// continuously instead of jumping.
type Sample struct {
	Seconds float64 // [0, 60)
	Minutes float64 // [0, 60)
	Hours   float64 // [0, 12), 12-hour dial
}

// SampleAt reads the wall-clock fields of t in t's own location.
func SampleAt(t time.Time) Sample {
	secs := float64(t.Second()) + float64(t.Nanosecond())/1e9
	mins := float64(t.Minute()) + secs/60
	hours := float64(t.Hour()%12) + mins/60
	return Sample{Seconds: secs, Minutes: mins, Hours: hours}
}

// SecondAngle is the second hand angle in radians, clockwise from 12.
func (s Sample) SecondAngle() float64 {
	return s.Seconds / 60 * 2 * math.Pi
}

// MinuteAngle is the minute hand angle in radians, clockwise from 12.
func (s Sample) MinuteAngle() float64 {
	return s.Minutes / 60 * 2 * math.Pi
}

// HourAngle is the hour hand angle in radians, clockwise from 12.
func (s Sample) HourAngle() float64 {
	return s.Hours / 12 * 2 * math.Pi
}
