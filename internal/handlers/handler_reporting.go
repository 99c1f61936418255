package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KilauLaundry/laundry_pos_app/internal/core/domain"
	portssvc "github.com/KilauLaundry/laundry_pos_app/internal/core/ports/services"
	"github.com/KilauLaundry/laundry_pos_app/internal/dto"
	"github.com/KilauLaundry/laundry_pos_app/internal/middleware"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes wires up the read-only dashboard reports. Cashiers
// do not see aggregated revenue.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportingHandler(rs)
	reports := rg.Group("/reports", middleware.RequireRoles(domain.RoleOwner, domain.RoleCollector, domain.RoleInvestor))
	{
		reports.GET("/revenue", h.getRevenueReport)
		reports.GET("/payment-methods", h.getPaymentMethodReport)
	}
}

// getRevenueReport godoc
// @Summary Revenue report
// @Description Aggregates paid revenue per branch, day and shift over a date range.
// @Tags reports
// @Produce json
// @Param branchID query string false "Branch filter (all branches when omitted)"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.RevenueReportResponse "Revenue rows with grand total"
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /reports/revenue [get]
// @Security BearerAuth
func (h *reportingHandler) getRevenueReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.RevenueReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid revenue report params", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.GetRevenueReport(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to build revenue report", "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getPaymentMethodReport godoc
// @Summary Payment method report
// @Description Aggregates the cash/QRIS split of paid transactions over a date range.
// @Tags reports
// @Produce json
// @Param branchID query string false "Branch filter (all branches when omitted)"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.PaymentMethodReportResponse "Per-method rows"
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /reports/payment-methods [get]
// @Security BearerAuth
func (h *reportingHandler) getPaymentMethodReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.RevenueReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid payment method report params", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.GetPaymentMethodReport(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to build payment method report", "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
