package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/machikasa/machikasa-api/internal/api/handler/v1/response"
	"github.com/machikasa/machikasa-api/internal/domain"
)

var errPartnerStoreNotFound = errors.New("partner store not found")

type PartnerDirectory interface {
	Sponsors(ctx context.Context) []domain.Sponsor
	ActiveSponsors(ctx context.Context) []domain.Sponsor
	PartnerStores(ctx context.Context) []domain.PartnerStore
	PartnerStore(ctx context.Context, id string) (domain.PartnerStore, bool)
	ActivePartnerStores(ctx context.Context) []domain.PartnerStore
	PartnerStoresByType(ctx context.Context, storeType domain.PartnerStoreType) []domain.PartnerStore
	ActiveDealsByPartnerStore(ctx context.Context, storeID string) []domain.SponsorshipDeal
}

type PartnerHandler struct {
	svc PartnerDirectory
}

func NewPartnerHandler(svc PartnerDirectory) *PartnerHandler {
	return &PartnerHandler{
		svc: svc,
	}
}

// HandleListSponsors godoc
// @Summary      List sponsors
// @Tags         partners
// @Produce      json
// @Param        active query bool false "only active sponsors"
// @Success      200 {array} domain.Sponsor
// @Router       /sponsors [get]
func (h *PartnerHandler) HandleListSponsors(ctx *gin.Context) {
	if ctx.Query("active") == "true" {
		ctx.JSON(http.StatusOK, h.svc.ActiveSponsors(ctx.Request.Context()))

		return
	}

	ctx.JSON(http.StatusOK, h.svc.Sponsors(ctx.Request.Context()))
}

// HandleListPartnerStores godoc
// @Summary      List partner stores, optionally filtered by type
// @Tags         partners
// @Produce      json
// @Param        type   query string false "store type"
// @Param        active query bool   false "only active stores"
// @Success      200 {array} domain.PartnerStore
// @Router       /partner-stores [get]
func (h *PartnerHandler) HandleListPartnerStores(ctx *gin.Context) {
	if storeType := ctx.Query("type"); storeType != "" {
		ctx.JSON(http.StatusOK, h.svc.PartnerStoresByType(ctx.Request.Context(), domain.PartnerStoreType(storeType)))

		return
	}

	if ctx.Query("active") == "true" {
		ctx.JSON(http.StatusOK, h.svc.ActivePartnerStores(ctx.Request.Context()))

		return
	}

	ctx.JSON(http.StatusOK, h.svc.PartnerStores(ctx.Request.Context()))
}

// HandleGetPartnerStore godoc
// @Summary      Get a partner store by id
// @Tags         partners
// @Produce      json
// @Param        storeID path string true "partner store id"
// @Success      200 {object} domain.PartnerStore
// @Failure      404 {object} response.Err
// @Router       /partner-stores/{storeID} [get]
func (h *PartnerHandler) HandleGetPartnerStore(ctx *gin.Context) {
	store, ok := h.svc.PartnerStore(ctx.Request.Context(), ctx.Param("storeID"))
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound(errPartnerStoreNotFound))

		return
	}

	ctx.JSON(http.StatusOK, store)
}

// HandleStoreDeals godoc
// @Summary      List a partner store's currently active deals
// @Tags         partners
// @Produce      json
// @Param        storeID path string true "partner store id"
// @Success      200 {array} domain.SponsorshipDeal
// @Failure      404 {object} response.Err
// @Router       /partner-stores/{storeID}/deals [get]
func (h *PartnerHandler) HandleStoreDeals(ctx *gin.Context) {
	storeID := ctx.Param("storeID")
	if _, ok := h.svc.PartnerStore(ctx.Request.Context(), storeID); !ok {
		response.RenderErr(ctx, response.ErrNotFound(errPartnerStoreNotFound))

		return
	}

	ctx.JSON(http.StatusOK, h.svc.ActiveDealsByPartnerStore(ctx.Request.Context(), storeID))
}
