package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/machikasa/machikasa-api/internal/api/handler/v1/response"
	"github.com/machikasa/machikasa-api/internal/domain"
)

var errStationNotFound = errors.New("station not found")

type StationDirectory interface {
	Stations(ctx context.Context) []domain.Station
	Station(ctx context.Context, id string) (domain.Station, bool)
}

type StationHandler struct {
	svc StationDirectory
}

func NewStationHandler(svc StationDirectory) *StationHandler {
	return &StationHandler{
		svc: svc,
	}
}

// HandleListStations godoc
// @Summary      List all stations
// @Tags         stations
// @Produce      json
// @Success      200 {array} domain.Station
// @Router       /stations [get]
func (h *StationHandler) HandleListStations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.Stations(ctx.Request.Context()))
}

// HandleGetStation godoc
// @Summary      Get a station by id
// @Tags         stations
// @Produce      json
// @Param        stationID path string true "station id"
// @Success      200 {object} domain.Station
// @Failure      404 {object} response.Err
// @Router       /stations/{stationID} [get]
func (h *StationHandler) HandleGetStation(ctx *gin.Context) {
	station, ok := h.svc.Station(ctx.Request.Context(), ctx.Param("stationID"))
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound(errStationNotFound))

		return
	}

	ctx.JSON(http.StatusOK, station)
}
