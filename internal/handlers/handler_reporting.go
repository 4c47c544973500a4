package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
	"github.com/hoteldesk/hms_backend/internal/dto"
	"github.com/hoteldesk/hms_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for the dashboard.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the dashboard routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getDashboardStats)
		dashboard.GET("/room-status", h.getRoomStatusBoard)
	}
}

// getDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Aggregates room, booking, revenue and expense figures as of today
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 500 {object} ErrorResponse "Failed to compute dashboard stats"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *reportingHandler) getDashboardStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.GetDashboardStats(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logger.Error("Failed to compute dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}

// getRoomStatusBoard godoc
// @Summary Get the room status board
// @Description Derives each room's occupancy state from the bookings covering today
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.RoomStatusBoardResponse
// @Failure 500 {object} ErrorResponse "Failed to compute room status board"
// @Security BearerAuth
// @Router /dashboard/room-status [get]
func (h *reportingHandler) getRoomStatusBoard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	board, err := h.reportingService.GetRoomStatusBoard(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logger.Error("Failed to compute room status board", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute room status board"})
		return
	}

	responses := make([]dto.RoomOccupancyResponse, len(board))
	for i, ro := range board {
		responses[i] = dto.RoomOccupancyResponse{
			RoomResponse: dto.ToRoomResponse(&ro.Room),
			Occupancy:    ro.Occupancy,
		}
	}
	c.JSON(http.StatusOK, dto.RoomStatusBoardResponse{Rooms: responses})
}
