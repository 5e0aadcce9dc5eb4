package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFinder(t *testing.T, entries ...BusyEntry) (*Store, *Finder) {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.SetBusy(entries))
	return s, NewFinder(s, DefaultWorkday, DefaultMaxSuggestions, false)
}

func windows(pairs ...[]string) []Interval {
	out := make([]Interval, 0, len(pairs))
	for _, p := range pairs {
		iv, err := ParseInterval(p[0], p[1])
		if err != nil {
			panic(err)
		}
		out = append(out, iv)
	}
	return out
}

func TestFinderFirstCommonWindow(t *testing.T) {
	_, f := newTestFinder(t,
		busy("A", pair("09:00", "10:00")),
		busy("B", pair("09:30", "10:30")),
	)

	got, err := f.Suggest(30)
	require.NoError(t, err)
	assert.Equal(t, StatusSearched, got.Status)
	assert.Equal(t, windows(
		pair("10:30", "11:00"),
		pair("11:00", "11:30"),
		pair("11:30", "12:00"),
	), got.Windows)
}

func TestFinderStopsAfterLimit(t *testing.T) {
	_, f := newTestFinder(t, busy("A"), busy("B"))

	got, err := f.Suggest(30)
	require.NoError(t, err)
	assert.Equal(t, windows(
		pair("09:00", "09:30"),
		pair("09:30", "10:00"),
		pair("10:00", "10:30"),
	), got.Windows)
}

func TestFinderOverlappingWindows(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetBusy([]BusyEntry{
		busy("A", pair("09:00", "10:00")),
		busy("B", pair("09:30", "10:30")),
	}))
	f := NewFinder(s, DefaultWorkday, DefaultMaxSuggestions, true)

	got, err := f.Suggest(30)
	require.NoError(t, err)
	assert.Equal(t, windows(
		pair("10:30", "11:00"),
		pair("10:31", "11:01"),
		pair("10:32", "11:02"),
	), got.Windows)
}

func TestFinderResumesAfterAcceptedWindow(t *testing.T) {
	// Without overlapping windows the scan restarts where the last accepted
	// window ended.
	_, f := newTestFinder(t, busy("A", pair("10:30", "18:00")))

	got, err := f.Suggest(45)
	require.NoError(t, err)
	assert.Equal(t, windows(
		pair("09:00", "09:45"),
		pair("09:45", "10:30"),
	), got.Windows)
}

func TestFinderNoParticipants(t *testing.T) {
	_, f := newTestFinder(t)

	got, err := f.Suggest(30)
	require.NoError(t, err)
	assert.Equal(t, StatusNoParticipants, got.Status)
	assert.Empty(t, got.Windows)
}

func TestFinderSearchedWithoutMatches(t *testing.T) {
	_, f := newTestFinder(t, busy("A", pair("09:00", "18:00")))

	got, err := f.Suggest(30)
	require.NoError(t, err)
	assert.Equal(t, StatusSearched, got.Status)
	assert.Empty(t, got.Windows)
}

func TestFinderInvalidDuration(t *testing.T) {
	_, f := newTestFinder(t, busy("A"))

	for _, d := range []int{0, -15} {
		_, err := f.Suggest(d)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	}
}

func TestFinderDurationLongerThanWorkday(t *testing.T) {
	_, f := newTestFinder(t, busy("A"))

	got, err := f.Suggest(541)
	require.NoError(t, err)
	assert.Empty(t, got.Windows)

	got, err = f.Suggest(540)
	require.NoError(t, err)
	assert.Equal(t, windows(pair("09:00", "18:00")), got.Windows)
}

func TestFinderLastWindowEndsAtWorkdayEnd(t *testing.T) {
	_, f := newTestFinder(t, busy("A", pair("09:00", "17:30")))

	got, err := f.Suggest(30)
	require.NoError(t, err)
	assert.Equal(t, windows(pair("17:30", "18:00")), got.Windows)
}

func TestFinderBackToBackWindows(t *testing.T) {
	_, f := newTestFinder(t, busy("A", pair("09:00", "10:00"), pair("10:30", "18:00")))

	got, err := f.Suggest(30)
	require.NoError(t, err)
	assert.Equal(t, windows(pair("10:00", "10:30")), got.Windows)
}

func TestFinderRespectsBookings(t *testing.T) {
	s, f := newTestFinder(t, busy("A", pair("09:00", "10:00")))
	_, err := s.AddBooking("A", "10:00", "10:45")
	require.NoError(t, err)

	got, err := f.Suggest(60)
	require.NoError(t, err)
	require.NotEmpty(t, got.Windows)
	assert.Equal(t, Interval{Start: 645, End: 705}, got.Windows[0])
}

func TestFinderIgnoresUnregisteredBookers(t *testing.T) {
	s, f := newTestFinder(t, busy("A"))
	_, err := s.AddBooking("B", "09:00", "12:00")
	require.NoError(t, err)

	got, err := f.Suggest(30)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 540, End: 570}, got.Windows[0])
}

func TestFinderCustomWorkdayAndLimit(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetBusy([]BusyEntry{busy("A", pair("13:00", "13:10"))}))
	workday, err := NewWorkdayBounds("13:00", "14:00")
	require.NoError(t, err)
	f := NewFinder(s, workday, 1, false)

	got, err := f.Suggest(15)
	require.NoError(t, err)
	assert.Equal(t, windows(pair("13:10", "13:25")), got.Windows)
	assert.Equal(t, 1, f.Limit())
}

func TestFinderDegenerateIntervalBlocksStraddlingWindows(t *testing.T) {
	// [10:00, 09:30) overlaps any window that starts before 09:30 and ends after 10:00.
	_, f := newTestFinder(t, busy("A", pair("10:00", "09:30")))

	got, err := f.Suggest(90)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 9*60 + 30, End: 11 * 60}, got.Windows[0])
}
