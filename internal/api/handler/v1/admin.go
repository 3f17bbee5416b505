package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/machikasa/machikasa-api/internal/domain"
)

type AnalyticsService interface {
	TransactionStats(ctx context.Context) domain.TransactionStats
	UmbrellaStatusDistribution(ctx context.Context) domain.StatusDistribution
	StationUtilization(ctx context.Context) []domain.StationUtilization
	AdminSummary(ctx context.Context) domain.AdminSummary
	ExportTransactionsCSV(ctx context.Context) string
	ExportFilename() string
}

type BootstrapService interface {
	Reset(ctx context.Context)
}

type AdminHandler struct {
	analytics AnalyticsService
	bootstrap BootstrapService
}

func NewAdminHandler(analytics AnalyticsService, bootstrap BootstrapService) *AdminHandler {
	return &AdminHandler{
		analytics: analytics,
		bootstrap: bootstrap,
	}
}

// HandleTransactionStats godoc
// @Summary      Transaction totals, daily series and per-station counts
// @Tags         admin
// @Produce      json
// @Success      200 {object} domain.TransactionStats
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Router       /admin/stats/transactions [get]
func (h *AdminHandler) HandleTransactionStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.analytics.TransactionStats(ctx.Request.Context()))
}

// HandleUmbrellaStats godoc
// @Summary      Umbrella fleet status distribution
// @Tags         admin
// @Produce      json
// @Success      200 {object} domain.StatusDistribution
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Router       /admin/stats/umbrellas [get]
func (h *AdminHandler) HandleUmbrellaStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.analytics.UmbrellaStatusDistribution(ctx.Request.Context()))
}

// HandleStationUtilization godoc
// @Summary      Per-station utilization rates
// @Tags         admin
// @Produce      json
// @Success      200 {array} domain.StationUtilization
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Router       /admin/stats/stations [get]
func (h *AdminHandler) HandleStationUtilization(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.analytics.StationUtilization(ctx.Request.Context()))
}

// HandleAdminSummary godoc
// @Summary      Dashboard summary
// @Tags         admin
// @Produce      json
// @Success      200 {object} domain.AdminSummary
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Router       /admin/summary [get]
func (h *AdminHandler) HandleAdminSummary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.analytics.AdminSummary(ctx.Request.Context()))
}

// HandleExportTransactions godoc
// @Summary      Download all transactions as CSV
// @Tags         admin
// @Produce      text/csv
// @Success      200 {string} string "CSV content"
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Router       /admin/transactions/export [get]
func (h *AdminHandler) HandleExportTransactions(ctx *gin.Context) {
	csv := h.analytics.ExportTransactionsCSV(ctx.Request.Context())

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.analytics.ExportFilename()))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// HandleReset godoc
// @Summary      Wipe storage and reload the seed dataset
// @Tags         admin
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Router       /admin/reset [post]
func (h *AdminHandler) HandleReset(ctx *gin.Context) {
	h.bootstrap.Reset(ctx.Request.Context())

	ctx.JSON(http.StatusOK, gin.H{"status": "reset"})
}
