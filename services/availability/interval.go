// File: services/availability/interval.go
package availability

import (
	"fmt"
	"time"
)

const (
	MinutesPerDay = 24 * 60

	timeLayout = "15:04"
)

// ToMinutes converts a strict "HH:MM" string to minutes from midnight.
func ToMinutes(s string) (int, error) {
	// time.Parse accepts single-digit hours for "15", so pin the shape first.
	if len(s) != len(timeLayout) || s[2] != ':' {
		return 0, newTimeFormatError(s)
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, newTimeFormatError(s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FromMinutes formats minutes from midnight as zero-padded "HH:MM".
func FromMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Interval is a time range within the modeled day, in minutes from midnight.
// Start >= End is accepted as is; such an interval is never reordered.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParseInterval parses a start/end pair of "HH:MM" strings.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ToMinutes(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ToMinutes(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// Strings returns the interval as its external [start, end] pair.
func (iv Interval) Strings() []string {
	return []string{FromMinutes(iv.Start), FromMinutes(iv.End)}
}

func (iv Interval) String() string {
	return FromMinutes(iv.Start) + "-" + FromMinutes(iv.End)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share a minute.
// Touching endpoints do not overlap, which keeps back-to-back bookings legal.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aEnd > bStart && bEnd > aStart
}

func (iv Interval) Overlaps(other Interval) bool {
	return Overlaps(iv.Start, iv.End, other.Start, other.End)
}

// FreeIntervals subtracts blocked intervals from bounds and returns the
// continuous free pieces in ascending order. Degenerate blocks are skipped.
func FreeIntervals(bounds Interval, blocked []Interval) []Interval {
	free := []Interval{bounds}
	for _, block := range blocked {
		if block.Start >= block.End {
			continue
		}
		var updated []Interval
		for _, iv := range free {
			if !iv.Overlaps(block) {
				updated = append(updated, iv)
				continue
			}
			if block.Start > iv.Start {
				updated = append(updated, Interval{Start: iv.Start, End: block.Start})
			}
			if block.End < iv.End {
				updated = append(updated, Interval{Start: block.End, End: iv.End})
			}
		}
		free = updated
	}
	return free
}

// WorkdayBounds is the window all suggestions must fall in.
type WorkdayBounds struct {
	Start int
	End   int
}

var DefaultWorkday = WorkdayBounds{Start: 9 * 60, End: 18 * 60}

// NewWorkdayBounds parses and validates a workday window.
func NewWorkdayBounds(start, end string) (WorkdayBounds, error) {
	iv, err := ParseInterval(start, end)
	if err != nil {
		return WorkdayBounds{}, fmt.Errorf("workday bounds: %w", err)
	}
	if iv.Start >= iv.End {
		return WorkdayBounds{}, fmt.Errorf("workday bounds: start %s must be before end %s", start, end)
	}
	return WorkdayBounds{Start: iv.Start, End: iv.End}, nil
}

func (w WorkdayBounds) Interval() Interval {
	return Interval{Start: w.Start, End: w.End}
}
