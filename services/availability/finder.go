package availability

import "strconv"

// SearchStatus tells "nothing to search" apart from "searched and found nothing".
type SearchStatus string

const (
	StatusNoParticipants SearchStatus = "no_participants"
	StatusSearched       SearchStatus = "searched"
)

const DefaultMaxSuggestions = 3

// Suggestion is the outcome of one slot search.
type Suggestion struct {
	Status  SearchStatus `json:"status"`
	Windows []Interval   `json:"windows"`
}

// SnapshotSource is anything that can hand the finder a consistent view of
// participants. *Store satisfies it.
type SnapshotSource interface {
	Snapshot() Snapshot
}

// Finder scans the workday minute by minute for windows free for everyone.
type Finder struct {
	source  SnapshotSource
	workday WorkdayBounds
	limit   int
	// overlapping keeps scanning from the minute after an accepted start, so
	// suggestions may overlap each other (09:00, 09:01, ...). Otherwise the
	// scan resumes at the end of the accepted window.
	overlapping bool
}

func NewFinder(source SnapshotSource, workday WorkdayBounds, limit int, overlapping bool) *Finder {
	if limit <= 0 {
		limit = DefaultMaxSuggestions
	}
	return &Finder{source: source, workday: workday, limit: limit, overlapping: overlapping}
}

func (f *Finder) Workday() WorkdayBounds { return f.workday }

func (f *Finder) Limit() int { return f.limit }

// Suggest searches the source's current state.
func (f *Finder) Suggest(duration int) (Suggestion, error) {
	return f.Search(f.source.Snapshot(), duration)
}

// Search returns up to limit windows of the given duration, earliest first.
// Each candidate start minute in [workday start, workday end - duration] is
// accepted when no participant has an interval overlapping it; the scan stops
// at the first conflict per candidate and after limit accepted windows.
func (f *Finder) Search(snap Snapshot, duration int) (Suggestion, error) {
	if duration <= 0 {
		return Suggestion{}, NewInvalidDurationError(strconv.Itoa(duration), "Duration must be a positive integer.")
	}
	if len(snap.Participants) == 0 {
		return Suggestion{Status: StatusNoParticipants}, nil
	}

	windows := make([]Interval, 0, f.limit)
	for start := f.workday.Start; start <= f.workday.End-duration; {
		window := Interval{Start: start, End: start + duration}
		if !freeForAll(snap.Participants, window) {
			start++
			continue
		}
		windows = append(windows, window)
		if len(windows) >= f.limit {
			break
		}
		if f.overlapping {
			start++
		} else {
			start = window.End
		}
	}
	return Suggestion{Status: StatusSearched, Windows: windows}, nil
}

func freeForAll(participants map[string][]Interval, window Interval) bool {
	for _, intervals := range participants {
		for _, iv := range intervals {
			if window.Overlaps(iv) {
				return false
			}
		}
	}
	return true
}
