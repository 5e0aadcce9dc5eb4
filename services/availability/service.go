package availability

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AvailabilityService is the narrow interface the request layer calls into.
type AvailabilityService interface {
	SetBusy(ctx context.Context, entries []BusyEntry) error
	Suggest(ctx context.Context, duration int) (Suggestion, error)
	GetCalendar(ctx context.Context, participantID string) (Calendar, error)
	Book(ctx context.Context, participantID, start, end string) (Booking, error)
	Workday() WorkdayBounds
	MaxSuggestions() int
}

// Booking is a recorded booked interval.
type Booking struct {
	ID            string
	ParticipantID string
	Interval      Interval
}

// DefaultAvailabilityService implements AvailabilityService over a Store.
type DefaultAvailabilityService struct {
	Store  *Store
	Finder *Finder
	Cache  SuggestionCache
	Logger *zap.Logger
}

func NewAvailabilityService(store *Store, finder *Finder, cache SuggestionCache, logger *zap.Logger) *DefaultAvailabilityService {
	if cache == nil {
		cache = NoopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAvailabilityService{
		Store:  store,
		Finder: finder,
		Cache:  cache,
		Logger: logger,
	}
}

func (s *DefaultAvailabilityService) Workday() WorkdayBounds {
	return s.Finder.Workday()
}

func (s *DefaultAvailabilityService) MaxSuggestions() int {
	return s.Finder.Limit()
}

func (s *DefaultAvailabilityService) SetBusy(ctx context.Context, entries []BusyEntry) error {
	if err := s.Store.SetBusy(entries); err != nil {
		s.Logger.Debug("SetBusy: rejected batch", zap.Int("participants", len(entries)), zap.Error(err))
		return err
	}
	s.Logger.Debug("SetBusy: busy slots replaced", zap.Int("participants", len(entries)))
	return nil
}

// Suggest searches a consistent snapshot, consulting the cache first. Cache
// failures are logged and otherwise ignored.
func (s *DefaultAvailabilityService) Suggest(ctx context.Context, duration int) (Suggestion, error) {
	snap := s.Store.Snapshot()

	if duration > 0 {
		cached, ok, err := s.Cache.Get(ctx, snap.Revision, duration)
		if err != nil {
			s.Logger.Warn("Suggest: cache lookup failed", zap.Error(err))
		} else if ok {
			s.Logger.Debug("Suggest: cache hit", zap.Uint64("revision", snap.Revision), zap.Int("duration", duration))
			return cached, nil
		}
	}

	result, err := s.Finder.Search(snap, duration)
	if err != nil {
		return Suggestion{}, err
	}
	s.Logger.Debug("Suggest: searched",
		zap.Uint64("revision", snap.Revision),
		zap.Int("participants", len(snap.Participants)),
		zap.Int("duration", duration),
		zap.Int("windows", len(result.Windows)),
	)

	if err := s.Cache.Set(ctx, snap.Revision, duration, result); err != nil {
		s.Logger.Warn("Suggest: cache store failed", zap.Error(err))
	}
	return result, nil
}

func (s *DefaultAvailabilityService) GetCalendar(ctx context.Context, participantID string) (Calendar, error) {
	return s.Store.Calendar(participantID)
}

func (s *DefaultAvailabilityService) Book(ctx context.Context, participantID, start, end string) (Booking, error) {
	if participantID == "" {
		return Booking{}, NewMissingFieldError("user_id", "Missing user_id, start_time, or end_time.")
	}
	if start == "" {
		return Booking{}, NewMissingFieldError("start_time", "Missing user_id, start_time, or end_time.")
	}
	if end == "" {
		return Booking{}, NewMissingFieldError("end_time", "Missing user_id, start_time, or end_time.")
	}

	iv, err := s.Store.AddBooking(participantID, start, end)
	if err != nil {
		return Booking{}, err
	}
	b := Booking{ID: uuid.New().String(), ParticipantID: participantID, Interval: iv}
	s.Logger.Debug("Book: slot recorded",
		zap.String("bookingID", b.ID),
		zap.String("participantID", participantID),
		zap.String("slot", iv.String()),
	)
	return b, nil
}
