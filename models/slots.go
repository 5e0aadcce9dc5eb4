package models

// UserBusySlots is one participant's entry in a busy-slots upload.
// Each busy element is a [start, end] pair of "HH:MM" strings.
type UserBusySlots struct {
	ID   ParticipantID `json:"id" binding:"required"`
	Busy [][]string    `json:"busy"`
}

// BusySlotsRequest defines the payload for replacing busy slots.
type BusySlotsRequest struct {
	Users []UserBusySlots `json:"users" binding:"required,dive"`
}

// BookingRequest defines the payload for booking a slot.
type BookingRequest struct {
	UserID    ParticipantID `json:"user_id" binding:"required"`
	StartTime string        `json:"start_time" binding:"required"`
	EndTime   string        `json:"end_time" binding:"required"`
}

// CalendarResponse is a participant's stored slots.
type CalendarResponse struct {
	UserID      string     `json:"user_id"`
	BusySlots   [][]string `json:"busy_slots"`
	BookedSlots [][]string `json:"booked_slots"`
	FreeSlots   [][]string `json:"free_slots"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

// BookingResponse acknowledges a recorded booking.
type BookingResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
}
