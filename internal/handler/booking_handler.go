// Package handler exposes the application services over HTTP.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-app/backend/internal/application"
	"github.com/shareit-app/backend/internal/domain"
	"github.com/shareit-app/backend/internal/httpx"
	"github.com/shareit-app/backend/internal/middleware"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.RequireUserID())
	{
		bookings.POST("", h.CreateBooking)
		bookings.PATCH("/:bookingId", h.Decide)
		bookings.GET("/owner", h.ListByOwner)
		bookings.GET("/:bookingId", h.GetBooking)
		bookings.GET("", h.ListByBooker)
	}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	bookerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	// An inverted or empty range must never reach persistence.
	if !req.Start.Before(req.End) {
		httpx.Error(c, domain.NewNotAvailableError(
			"booking start must be strictly before its end"))
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), bookerID, req)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// Decide handles PATCH /bookings/:bookingId?approved={bool}.
func (h *BookingHandler) Decide(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		httpx.BadRequest(c, "invalid booking id")
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httpx.BadRequest(c, "approved query parameter must be true or false")
		return
	}

	result, err := h.service.Decide(c.Request.Context(), approved, ownerID, bookingID)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// GetBooking handles GET /bookings/:bookingId.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	requesterID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		httpx.BadRequest(c, "invalid booking id")
		return
	}

	result, err := h.service.GetBooking(c.Request.Context(), bookingID, requesterID)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// ListByBooker handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	state := c.DefaultQuery("state", "ALL")
	from, size, err := parsePagination(c)
	if err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ListByBooker(c.Request.Context(), state, userID, from, size)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// ListByOwner handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	state := c.DefaultQuery("state", "ALL")
	from, size, err := parsePagination(c)
	if err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ListByOwner(c.Request.Context(), state, userID, from, size)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// parsePagination extracts the from/size query parameters with the listing
// defaults. Range validation stays in the services.
func parsePagination(c *gin.Context) (int, int, error) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		return 0, 0, domain.NewValidationError("from must be a number")
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		return 0, 0, domain.NewValidationError("size must be a number")
	}
	return from, size, nil
}
