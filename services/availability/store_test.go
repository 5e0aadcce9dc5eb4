package availability

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busy(id string, pairs ...[]string) BusyEntry {
	return BusyEntry{ParticipantID: id, Intervals: pairs}
}

func pair(start, end string) []string { return []string{start, end} }

func TestStoreSetBusyReplacesPreviousList(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.SetBusy([]BusyEntry{busy("a", pair("09:00", "10:00"), pair("11:00", "12:00"))}))
	_, err := s.AddBooking("a", "15:00", "15:30")
	require.NoError(t, err)
	require.NoError(t, s.SetBusy([]BusyEntry{busy("a", pair("13:00", "14:00"))}))

	cal, err := s.Calendar("a")
	require.NoError(t, err)
	assert.Equal(t, []Interval{{Start: 780, End: 840}}, cal.Busy)
	assert.Equal(t, []Interval{{Start: 900, End: 930}}, cal.Booked)
}

func TestStoreBookingsAccumulateInCallOrder(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetBusy([]BusyEntry{busy("a")}))

	_, err := s.AddBooking("a", "14:00", "14:30")
	require.NoError(t, err)
	_, err = s.AddBooking("a", "10:00", "10:30")
	require.NoError(t, err)

	cal, err := s.Calendar("a")
	require.NoError(t, err)
	assert.Equal(t, []Interval{{Start: 840, End: 870}, {Start: 600, End: 630}}, cal.Booked)
}

func TestStoreDoubleBookingIsAllowed(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetBusy([]BusyEntry{busy("a", pair("10:00", "11:00"))}))

	_, err := s.AddBooking("a", "10:00", "11:00")
	require.NoError(t, err)
	_, err = s.AddBooking("a", "10:15", "10:45")
	require.NoError(t, err)

	assert.Len(t, s.MergedIntervals("a"), 3)
}

func TestStoreInvalidPairLeavesParticipantUntouched(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetBusy([]BusyEntry{busy("a", pair("09:00", "10:00"))}))
	before := s.Snapshot().Revision

	err := s.SetBusy([]BusyEntry{busy("a", pair("11:00", "12:00"), pair("25:00", "10:00"))})
	require.Error(t, err)

	var aerr *Error
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, KindInvalidTimeFormat, aerr.Kind)
	assert.Equal(t, "a", aerr.Participant)
	assert.Equal(t, "Invalid time format for user a: 25:00-10:00. Use HH:MM.", aerr.Message)

	cal, err := s.Calendar("a")
	require.NoError(t, err)
	assert.Equal(t, []Interval{{Start: 540, End: 600}}, cal.Busy)
	assert.Equal(t, before, s.Snapshot().Revision)
}

func TestStoreBatchAppliesParticipantsBeforeFailure(t *testing.T) {
	s := NewStore()

	err := s.SetBusy([]BusyEntry{
		busy("a", pair("09:00", "10:00")),
		busy("b", pair("09:00", "nope")),
		busy("c", pair("09:00", "10:00")),
	})
	require.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = s.Calendar("a")
	assert.NoError(t, err)
	_, err = s.Calendar("b")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Calendar("c")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRejectsMalformedPair(t *testing.T) {
	s := NewStore()
	err := s.SetBusy([]BusyEntry{busy("a", []string{"09:00"})})
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	assert.Zero(t, s.Len())
}

func TestStoreAddBookingInvalidTime(t *testing.T) {
	s := NewStore()
	_, err := s.AddBooking("a", "10:00", "7pm")
	require.ErrorIs(t, err, ErrInvalidTimeFormat)
	assert.Empty(t, s.MergedIntervals("a"))
}

func TestStoreCalendarRequiresBusyRecord(t *testing.T) {
	s := NewStore()

	_, err := s.Calendar("ghost")
	require.ErrorIs(t, err, ErrNotFound)

	// Bookings alone do not register a participant.
	_, err = s.AddBooking("booker", "10:00", "11:00")
	require.NoError(t, err)
	_, err = s.Calendar("booker")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []Interval{{Start: 600, End: 660}}, s.MergedIntervals("booker"))

	require.NoError(t, s.SetBusy([]BusyEntry{busy("booker")}))
	cal, err := s.Calendar("booker")
	require.NoError(t, err)
	assert.Empty(t, cal.Busy)
	assert.Equal(t, []Interval{{Start: 600, End: 660}}, cal.Booked)
}

func TestStoreMergedIntervals(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.MergedIntervals("unknown"))

	require.NoError(t, s.SetBusy([]BusyEntry{busy("a", pair("09:00", "10:00"))}))
	_, err := s.AddBooking("a", "12:00", "13:00")
	require.NoError(t, err)

	assert.Equal(t, []Interval{{Start: 540, End: 600}, {Start: 720, End: 780}}, s.MergedIntervals("a"))
}

func TestStoreSnapshotOnlyHoldsRegisteredParticipants(t *testing.T) {
	s := NewStore()
	_, err := s.AddBooking("booker", "10:00", "11:00")
	require.NoError(t, err)
	require.NoError(t, s.SetBusy([]BusyEntry{busy("a", pair("09:00", "10:00"))}))

	snap := s.Snapshot()
	assert.Equal(t, uint64(2), snap.Revision)
	assert.Len(t, snap.Participants, 1)
	assert.Contains(t, snap.Participants, "a")
	assert.Equal(t, 1, s.Len())
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetBusy([]BusyEntry{busy("a", pair("09:00", "10:00"))}))

	snap := s.Snapshot()
	snap.Participants["a"][0] = Interval{Start: 0, End: 1}

	assert.Equal(t, []Interval{{Start: 540, End: 600}}, s.MergedIntervals("a"))
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("user-%d", i)
		wg.Add(3)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.SetBusy([]BusyEntry{busy(id, pair("09:00", "09:30"))}))
		}()
		go func() {
			defer wg.Done()
			_, err := s.AddBooking(id, "12:00", "12:30")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			for _, intervals := range s.Snapshot().Participants {
				assert.NotEmpty(t, intervals)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, s.Len())
	assert.Equal(t, uint64(40), s.Snapshot().Revision)
	for i := 0; i < 20; i++ {
		assert.Len(t, s.MergedIntervals(fmt.Sprintf("user-%d", i)), 2)
	}
}
