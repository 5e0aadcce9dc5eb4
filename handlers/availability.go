package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"meetslot/models"
	"meetslot/services/availability"
	"meetslot/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const noParticipantsMessage = "No users or busy slots defined yet. Add users via /slots first."

// AvailabilityHandler exposes the availability service over HTTP. It only
// decodes, validates shape and maps errors; scheduling stays in the service.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// IndexHandler renders the landing page.
func (h *AvailabilityHandler) IndexHandler(c *gin.Context) {
	workday := h.Service.Workday()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"WorkdayStart":   availability.FromMinutes(workday.Start),
		"WorkdayEnd":     availability.FromMinutes(workday.End),
		"MaxSuggestions": h.Service.MaxSuggestions(),
	})
}

// SetBusySlotsHandler replaces the busy slots of every user in the payload.
func (h *AvailabilityHandler) SetBusySlotsHandler(c *gin.Context) {
	var req models.BusySlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input format. Expected JSON with 'users' key.", err.Error())
		return
	}

	entries := make([]availability.BusyEntry, 0, len(req.Users))
	for _, u := range req.Users {
		entries = append(entries, availability.BusyEntry{
			ParticipantID: u.ID.String(),
			Intervals:     u.Busy,
		})
	}

	if err := h.Service.SetBusy(c.Request.Context(), entries); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Busy slots updated successfully."})
}

// SuggestHandler returns the earliest common free windows of ?duration minutes.
func (h *AvailabilityHandler) SuggestHandler(c *gin.Context) {
	duration, err := parseDuration(c.Query("duration"))
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.Service.Suggest(c.Request.Context(), duration)
	if err != nil {
		respondError(c, err)
		return
	}
	if result.Status == availability.StatusNoParticipants {
		c.JSON(http.StatusOK, models.MessageResponse{
			Message: noParticipantsMessage,
			Status:  string(result.Status),
		})
		return
	}
	c.JSON(http.StatusOK, toPairs(result.Windows))
}

func parseDuration(raw string) (int, error) {
	if raw == "" {
		return 0, availability.NewInvalidDurationError(raw, "Missing 'duration' parameter.")
	}
	duration, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, availability.NewInvalidDurationError(raw, "Invalid 'duration' format. Must be an integer.")
	}
	if duration <= 0 {
		return 0, availability.NewInvalidDurationError(raw, "Duration must be a positive integer.")
	}
	return duration, nil
}

// GetCalendarHandler returns one user's busy, booked and free slots.
func (h *AvailabilityHandler) GetCalendarHandler(c *gin.Context) {
	userID := c.Param("userId")
	cal, err := h.Service.GetCalendar(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	blocked := append(append([]availability.Interval(nil), cal.Busy...), cal.Booked...)
	free := availability.FreeIntervals(h.Service.Workday().Interval(), blocked)

	c.JSON(http.StatusOK, models.CalendarResponse{
		UserID:      cal.ParticipantID,
		BusySlots:   toPairs(cal.Busy),
		BookedSlots: toPairs(cal.Booked),
		FreeSlots:   toPairs(free),
	})
}

// BookHandler records a booked slot for a user without conflict checks.
func (h *AvailabilityHandler) BookHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			respondError(c, availability.NewMissingFieldError(strings.Join(fields, ","), "Missing user_id, start_time, or end_time."))
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	booking, err := h.Service.Book(c.Request.Context(), req.UserID.String(), req.StartTime, req.EndTime)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		Message:   fmt.Sprintf("Slot %s-%s booked for user %s.", req.StartTime, req.EndTime, booking.ParticipantID),
		BookingID: booking.ID,
	})
}

// respondError maps availability errors to status codes.
func respondError(c *gin.Context, err error) {
	var aerr *availability.Error
	if !errors.As(err, &aerr) {
		getLogger(c).Error("Unexpected availability error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	status := http.StatusBadRequest
	if aerr.Kind == availability.KindNotFound {
		status = http.StatusNotFound
	}
	details := aerr.Field
	if aerr.Participant != "" {
		details = "participant " + aerr.Participant
	}
	utils.JSONError(c, status, aerr.Message, details)
}

func toPairs(intervals []availability.Interval) [][]string {
	pairs := make([][]string, 0, len(intervals))
	for _, iv := range intervals {
		pairs = append(pairs, iv.Strings())
	}
	return pairs
}
