package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hoteldesk/hms_backend/internal/core/ports/services"
	"github.com/hoteldesk/hms_backend/internal/dto"
	"github.com/hoteldesk/hms_backend/internal/middleware"
)

// saleHandler handles HTTP requests related to sales. Sales are generated by
// booking checkouts, so only reads are exposed.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.GET("", h.listSales)
	}
}

// listSales godoc
// @Summary List all sales
// @Description Retrieves all revenue records, newest first
// @Tags sales
// @Produce  json
// @Success 200 {object} dto.ListSalesResponse
// @Failure 500 {object} ErrorResponse "Failed to list sales"
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sales, err := h.saleService.ListSales(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list sales"})
		return
	}

	responses := make([]dto.SaleResponse, len(sales))
	for i, s := range sales {
		responses[i] = dto.ToSaleResponse(&s)
	}
	c.JSON(http.StatusOK, dto.ListSalesResponse{Sales: responses})
}
