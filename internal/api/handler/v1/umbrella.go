package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/machikasa/machikasa-api/internal/api/handler/v1/request"
	"github.com/machikasa/machikasa-api/internal/api/handler/v1/response"
	"github.com/machikasa/machikasa-api/internal/domain"
)

var errUmbrellaNotFound = errors.New("umbrella not found")

type UmbrellaDirectory interface {
	Umbrellas(ctx context.Context) []domain.Umbrella
	Umbrella(ctx context.Context, id string) (domain.Umbrella, bool)
	UmbrellaByQR(ctx context.Context, payload string) (domain.Umbrella, bool)
	AvailableUmbrellas(ctx context.Context, stationID string) []domain.Umbrella
}

type UmbrellaHandler struct {
	svc UmbrellaDirectory
}

func NewUmbrellaHandler(svc UmbrellaDirectory) *UmbrellaHandler {
	return &UmbrellaHandler{
		svc: svc,
	}
}

// HandleListUmbrellas godoc
// @Summary      List umbrellas, optionally filtered by station and status
// @Tags         umbrellas
// @Produce      json
// @Param        station query string false "station id"
// @Param        status  query string false "umbrella status"
// @Success      200 {array} domain.Umbrella
// @Router       /umbrellas [get]
func (h *UmbrellaHandler) HandleListUmbrellas(ctx *gin.Context) {
	stationID := ctx.Query("station")
	status := ctx.Query("status")

	// The common scanner query has its own repository path.
	if status == string(domain.UmbrellaAvailable) {
		ctx.JSON(http.StatusOK, h.svc.AvailableUmbrellas(ctx.Request.Context(), stationID))

		return
	}

	umbrellas := make([]domain.Umbrella, 0)
	for _, u := range h.svc.Umbrellas(ctx.Request.Context()) {
		if stationID != "" && u.StationID != stationID {
			continue
		}
		if status != "" && u.Status != domain.UmbrellaStatus(status) {
			continue
		}

		umbrellas = append(umbrellas, u)
	}

	ctx.JSON(http.StatusOK, umbrellas)
}

// HandleGetUmbrella godoc
// @Summary      Get an umbrella by id
// @Tags         umbrellas
// @Produce      json
// @Param        umbrellaID path string true "umbrella id"
// @Success      200 {object} domain.Umbrella
// @Failure      404 {object} response.Err
// @Router       /umbrellas/{umbrellaID} [get]
func (h *UmbrellaHandler) HandleGetUmbrella(ctx *gin.Context) {
	umbrella, ok := h.svc.Umbrella(ctx.Request.Context(), ctx.Param("umbrellaID"))
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound(errUmbrellaNotFound))

		return
	}

	ctx.JSON(http.StatusOK, umbrella)
}

// HandleScanUmbrella godoc
// @Summary      Resolve a scanned QR payload to an umbrella
// @Tags         umbrellas
// @Accept       json
// @Produce      json
// @Param        request body request.ScanRequest true "request body"
// @Success      200 {object} domain.Umbrella
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Router       /umbrellas/scan [post]
func (h *UmbrellaHandler) HandleScanUmbrella(ctx *gin.Context) {
	var req request.ScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	umbrella, ok := h.svc.UmbrellaByQR(ctx.Request.Context(), req.Payload)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound(errUmbrellaNotFound))

		return
	}

	ctx.JSON(http.StatusOK, umbrella)
}
