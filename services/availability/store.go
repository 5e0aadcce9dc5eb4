package availability

import (
	"fmt"
	"sync"
)

// BusyEntry is one participant's raw busy list as received from a client.
type BusyEntry struct {
	ParticipantID string
	Intervals     [][]string
}

// Calendar is a participant's stored busy and booked intervals.
type Calendar struct {
	ParticipantID string
	Busy          []Interval
	Booked        []Interval
}

// Snapshot is a consistent view of every registered participant's merged
// intervals, taken under a single read lock.
type Snapshot struct {
	Revision     uint64
	Participants map[string][]Interval
}

type participantRecord struct {
	busy   []Interval
	booked []Interval
	// registered is set once busy intervals have been ingested. Records created
	// by a booking alone stay unregistered.
	registered bool
}

// Store holds per-participant busy and booked intervals for the modeled day.
type Store struct {
	mu       sync.RWMutex
	records  map[string]*participantRecord
	revision uint64
}

func NewStore() *Store {
	return &Store{records: make(map[string]*participantRecord)}
}

// SetBusy replaces the busy intervals of every participant in entries, in
// order. Each participant's list is parsed in full before it is stored; the
// first bad pair aborts the call, leaving earlier participants updated and the
// failing one untouched.
func (s *Store) SetBusy(entries []BusyEntry) error {
	for _, entry := range entries {
		intervals, err := parseBusy(entry)
		if err != nil {
			return err
		}

		s.mu.Lock()
		rec := s.recordLocked(entry.ParticipantID)
		rec.busy = intervals
		rec.registered = true
		s.revision++
		s.mu.Unlock()
	}
	return nil
}

func parseBusy(entry BusyEntry) ([]Interval, error) {
	intervals := make([]Interval, 0, len(entry.Intervals))
	for _, pair := range entry.Intervals {
		if len(pair) != 2 {
			return nil, &Error{
				Kind:        KindInvalidTimeFormat,
				Participant: entry.ParticipantID,
				Value:       fmt.Sprint(pair),
				Message:     fmt.Sprintf("Invalid time format for user %s: %v. Use [HH:MM, HH:MM] pairs.", entry.ParticipantID, pair),
			}
		}
		iv, err := ParseInterval(pair[0], pair[1])
		if err != nil {
			return nil, &Error{
				Kind:        KindInvalidTimeFormat,
				Participant: entry.ParticipantID,
				Value:       pair[0] + "-" + pair[1],
				Message:     fmt.Sprintf("Invalid time format for user %s: %s-%s. Use HH:MM.", entry.ParticipantID, pair[0], pair[1]),
			}
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

// AddBooking appends a booked interval for the participant, creating the
// record if needed. Conflicts with existing intervals are not checked.
func (s *Store) AddBooking(participantID, start, end string) (Interval, error) {
	iv, err := ParseInterval(start, end)
	if err != nil {
		return Interval{}, &Error{
			Kind:        KindInvalidTimeFormat,
			Participant: participantID,
			Value:       start + "-" + end,
			Message:     "Invalid time format. Use HH:MM.",
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.recordLocked(participantID)
	rec.booked = append(rec.booked, iv)
	s.revision++
	return iv, nil
}

func (s *Store) recordLocked(participantID string) *participantRecord {
	rec, ok := s.records[participantID]
	if !ok {
		rec = &participantRecord{}
		s.records[participantID] = rec
	}
	return rec
}

// MergedIntervals returns busy followed by booked intervals. Unknown
// participants have none.
func (s *Store) MergedIntervals(participantID string) []Interval {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[participantID]
	if !ok {
		return nil
	}
	return rec.merged()
}

func (r *participantRecord) merged() []Interval {
	out := make([]Interval, 0, len(r.busy)+len(r.booked))
	out = append(out, r.busy...)
	return append(out, r.booked...)
}

// Calendar returns the participant's intervals. Only participants whose busy
// intervals were set are found, even if bookings exist for the id.
func (s *Store) Calendar(participantID string) (Calendar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[participantID]
	if !ok || !rec.registered {
		return Calendar{}, newNotFoundError(participantID)
	}
	return Calendar{
		ParticipantID: participantID,
		Busy:          append([]Interval(nil), rec.busy...),
		Booked:        append([]Interval(nil), rec.booked...),
	}, nil
}

// Snapshot copies the merged intervals of all registered participants.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	participants := make(map[string][]Interval, len(s.records))
	for id, rec := range s.records {
		if rec.registered {
			participants[id] = rec.merged()
		}
	}
	return Snapshot{Revision: s.revision, Participants: participants}
}

// Len returns the number of registered participants.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, rec := range s.records {
		if rec.registered {
			n++
		}
	}
	return n
}
