package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoteldesk/hms_backend/internal/apperrors"
	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
	"github.com/hoteldesk/hms_backend/internal/dto"
	"github.com/hoteldesk/hms_backend/internal/middleware"
)

// bookingHandler handles HTTP requests related to bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bs}
}

// RegisterBookingRoutes registers routes related to bookings.
func RegisterBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listBookings)
		bookings.GET("/:id", h.getBookingByID)
		bookings.PUT("/:id/status", h.updateBookingStatus)
	}
}

// createBooking godoc
// @Summary Create a new booking
// @Description Books a room for a guest over a date range. The total is
// @Description computed from the room's nightly price and the booking starts
// @Description in confirmed status.
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} ErrorResponse "Invalid input or room unavailable"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Room or guest not found"
// @Failure 500 {object} ErrorResponse "Failed to create booking"
// @Security BearerAuth
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req, creatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Room or guest not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create booking", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// listBookings godoc
// @Summary List all bookings
// @Description Retrieves all bookings with room and guest details, newest first
// @Tags bookings
// @Produce  json
// @Success 200 {object} dto.ListBookingsResponse
// @Failure 500 {object} ErrorResponse "Failed to list bookings"
// @Security BearerAuth
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list bookings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list bookings"})
		return
	}

	responses := make([]dto.BookingDetailsResponse, len(bookings))
	for i, b := range bookings {
		responses[i] = dto.ToBookingDetailsResponse(&b)
	}
	c.JSON(http.StatusOK, dto.ListBookingsResponse{Bookings: responses})
}

// getBookingByID godoc
// @Summary Get a booking by ID
// @Description Retrieves a booking with its room and guest details
// @Tags bookings
// @Produce  json
// @Param   id path string true "Booking ID"
// @Success 200 {object} dto.BookingDetailsResponse
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve booking"
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (h *bookingHandler) getBookingByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Booking not found"})
		} else {
			logger.Error("Failed to get booking", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve booking"})
		}
		return
	}

	response := dto.ToBookingDetailsResponse(booking)
	c.JSON(http.StatusOK, response)
}

// updateBookingStatus godoc
// @Summary Update booking status
// @Description Moves a booking through its lifecycle. Check-in accumulates
// @Description advance payment; check-out settles the balance and records a
// @Description sale; cancellation is terminal.
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   id path string true "Booking ID"
// @Param   transition body dto.UpdateBookingStatusRequest true "Requested status and payment fields"
// @Success 200 {object} dto.BookingStatusResponse
// @Failure 400 {object} ErrorResponse "Invalid transition or input"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 409 {object} ErrorResponse "Booking changed concurrently"
// @Failure 500 {object} ErrorResponse "Failed to update booking status"
// @Security BearerAuth
// @Router /bookings/{id}/status [put]
func (h *bookingHandler) updateBookingStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateBookingStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	transition, err := h.bookingService.UpdateBookingStatus(c.Request.Context(), bookingID, req, updaterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Booking not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Booking was modified concurrently, retry"})
		} else {
			logger.Error("Failed to update booking status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update booking status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.BookingStatusResponse{
		BookingResponse: dto.ToBookingResponse(&transition.Booking),
		BalanceDue:      transition.BalanceDue,
	})
}
