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

// roomHandler handles HTTP requests related to rooms.
type roomHandler struct {
	roomService portssvc.RoomSvcFacade
}

// newRoomHandler creates a new roomHandler.
func newRoomHandler(rs portssvc.RoomSvcFacade) *roomHandler {
	return &roomHandler{roomService: rs}
}

// registerRoomRoutes registers routes related to rooms.
func registerRoomRoutes(rg *gin.RouterGroup, roomService portssvc.RoomSvcFacade) {
	h := newRoomHandler(roomService)

	rooms := rg.Group("/rooms")
	{
		rooms.POST("", h.createRoom)
		rooms.GET("", h.listRooms)
		rooms.POST("/availability", h.findAvailableRooms)
		rooms.GET("/:id", h.getRoomByID)
		rooms.PUT("/:id", h.updateRoom)
		rooms.DELETE("/:id", h.deleteRoom)
	}
}

// createRoom godoc
// @Summary Create a new room
// @Description Registers a new room in the hotel inventory
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Room number already exists"
// @Failure 500 {object} ErrorResponse "Failed to create room"
// @Security BearerAuth
// @Router /rooms [post]
func (h *roomHandler) createRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createRoom", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), req, creatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Room number already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create room", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create room"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// listRooms godoc
// @Summary List all rooms
// @Description Retrieves all rooms ordered by room number
// @Tags rooms
// @Produce  json
// @Success 200 {object} dto.ListRoomsResponse
// @Failure 500 {object} ErrorResponse "Failed to list rooms"
// @Security BearerAuth
// @Router /rooms [get]
func (h *roomHandler) listRooms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rooms, err := h.roomService.ListRooms(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rooms", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list rooms"})
		return
	}

	c.JSON(http.StatusOK, dto.ListRoomsResponse{Rooms: dto.ToListRoomResponse(rooms)})
}

// findAvailableRooms godoc
// @Summary Find available rooms
// @Description Retrieves rooms free for a date range, optionally filtered by room type
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   query body dto.AvailabilityRequest true "Availability query"
// @Success 200 {object} dto.ListRoomsResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to find available rooms"
// @Security BearerAuth
// @Router /rooms/availability [post]
func (h *roomHandler) findAvailableRooms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for findAvailableRooms", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	rooms, err := h.roomService.FindAvailableRooms(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to find available rooms", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to find available rooms"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListRoomsResponse{Rooms: dto.ToListRoomResponse(rooms)})
}

// getRoomByID godoc
// @Summary Get a room by ID
// @Description Retrieves details for a specific room
// @Tags rooms
// @Produce  json
// @Param   id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} ErrorResponse "Room not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve room"
// @Security BearerAuth
// @Router /rooms/{id} [get]
func (h *roomHandler) getRoomByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomID := c.Param("id")

	room, err := h.roomService.GetRoomByID(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Room not found"})
		} else {
			logger.Error("Failed to get room", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve room"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// updateRoom godoc
// @Summary Update a room
// @Description Updates details of an existing room
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   id path string true "Room ID"
// @Param   room body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Room not found"
// @Failure 409 {object} ErrorResponse "Room number already exists"
// @Failure 500 {object} ErrorResponse "Failed to update room"
// @Security BearerAuth
// @Router /rooms/{id} [put]
func (h *roomHandler) updateRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomID := c.Param("id")

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateRoom", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), roomID, req, updaterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Room not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Room number already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update room", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update room"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// deleteRoom godoc
// @Summary Delete a room
// @Description Removes a room from the inventory
// @Tags rooms
// @Produce  json
// @Param   id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Room not found"
// @Failure 500 {object} ErrorResponse "Failed to delete room"
// @Security BearerAuth
// @Router /rooms/{id} [delete]
func (h *roomHandler) deleteRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomID := c.Param("id")

	if err := h.roomService.DeleteRoom(c.Request.Context(), roomID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Room not found"})
		} else {
			logger.Error("Failed to delete room", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete room"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
