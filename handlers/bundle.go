package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	IndexHandler  gin.HandlerFunc
	HealthHandler gin.HandlerFunc

	// Availability endpoints
	SetBusySlotsHandler gin.HandlerFunc
	SuggestHandler      gin.HandlerFunc
	GetCalendarHandler  gin.HandlerFunc
	BookHandler         gin.HandlerFunc
}
