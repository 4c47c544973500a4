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

// guestHandler handles HTTP requests related to guests.
type guestHandler struct {
	guestService portssvc.GuestSvcFacade
}

func newGuestHandler(gs portssvc.GuestSvcFacade) *guestHandler {
	return &guestHandler{guestService: gs}
}

// registerGuestRoutes registers routes related to guests.
func registerGuestRoutes(rg *gin.RouterGroup, guestService portssvc.GuestSvcFacade) {
	h := newGuestHandler(guestService)

	guests := rg.Group("/guests")
	{
		guests.POST("", h.createGuest)
		guests.GET("", h.listGuests)
		guests.GET("/:id", h.getGuestByID)
	}
}

// createGuest godoc
// @Summary Register a new guest
// @Description Creates a guest record with contact and identity details
// @Tags guests
// @Accept  json
// @Produce  json
// @Param   guest body dto.CreateGuestRequest true "Guest details"
// @Success 201 {object} dto.GuestResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to register guest"
// @Security BearerAuth
// @Router /guests [post]
func (h *guestHandler) createGuest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createGuest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	guest, err := h.guestService.CreateGuest(c.Request.Context(), req, creatorID)
	if err != nil {
		logger.Error("Failed to register guest", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register guest"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToGuestResponse(guest))
}

// listGuests godoc
// @Summary List all guests
// @Description Retrieves all guest records, most recently registered first
// @Tags guests
// @Produce  json
// @Success 200 {object} dto.ListGuestsResponse
// @Failure 500 {object} ErrorResponse "Failed to list guests"
// @Security BearerAuth
// @Router /guests [get]
func (h *guestHandler) listGuests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	guests, err := h.guestService.ListGuests(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list guests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list guests"})
		return
	}

	c.JSON(http.StatusOK, dto.ListGuestsResponse{Guests: dto.ToListGuestResponse(guests)})
}

// getGuestByID godoc
// @Summary Get a guest by ID
// @Description Retrieves a specific guest record
// @Tags guests
// @Produce  json
// @Param   id path string true "Guest ID"
// @Success 200 {object} dto.GuestResponse
// @Failure 404 {object} ErrorResponse "Guest not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve guest"
// @Security BearerAuth
// @Router /guests/{id} [get]
func (h *guestHandler) getGuestByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	guestID := c.Param("id")

	guest, err := h.guestService.GetGuestByID(c.Request.Context(), guestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Guest not found"})
		} else {
			logger.Error("Failed to get guest", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve guest"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGuestResponse(guest))
}
