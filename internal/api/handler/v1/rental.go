package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/machikasa/machikasa-api/internal/api/handler/v1/request"
	"github.com/machikasa/machikasa-api/internal/api/handler/v1/response"
	"github.com/machikasa/machikasa-api/internal/domain"
)

type RentalService interface {
	BorrowUmbrella(ctx context.Context, umbrellaID, userID string) domain.BorrowResult
	ReturnUmbrella(ctx context.Context, umbrellaID, userID string) domain.ReturnResult
	ReturnUmbrellaToPartnerStore(ctx context.Context, umbrellaID, userID, partnerStoreID string) domain.PartnerReturnResult
}

type RentalHandler struct {
	svc RentalService
}

func NewRentalHandler(svc RentalService) *RentalHandler {
	return &RentalHandler{
		svc: svc,
	}
}

// Rental outcomes are results, not HTTP errors: a business-rule
// rejection still renders 200 with success=false and the callers
// branch on it.

// HandleBorrow godoc
// @Summary      Borrow an umbrella
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        request body request.BorrowRequest true "request body"
// @Success      200 {object} domain.BorrowResult
// @Failure      400 {object} response.Err
// @Router       /rentals/borrow [post]
func (h *RentalHandler) HandleBorrow(ctx *gin.Context) {
	var req request.BorrowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result := h.svc.BorrowUmbrella(ctx.Request.Context(), req.UmbrellaID, req.UserID)

	ctx.JSON(http.StatusOK, result)
}

// HandleReturn godoc
// @Summary      Return an umbrella at its station
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        request body request.ReturnRequest true "request body"
// @Success      200 {object} domain.ReturnResult
// @Failure      400 {object} response.Err
// @Router       /rentals/return [post]
func (h *RentalHandler) HandleReturn(ctx *gin.Context) {
	var req request.ReturnRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result := h.svc.ReturnUmbrella(ctx.Request.Context(), req.UmbrellaID, req.UserID)

	ctx.JSON(http.StatusOK, result)
}

// HandleReturnToPartner godoc
// @Summary      Return an umbrella at a partner store
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        request body request.PartnerReturnRequest true "request body"
// @Success      200 {object} domain.PartnerReturnResult
// @Failure      400 {object} response.Err
// @Router       /rentals/return-to-partner [post]
func (h *RentalHandler) HandleReturnToPartner(ctx *gin.Context) {
	var req request.PartnerReturnRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result := h.svc.ReturnUmbrellaToPartnerStore(ctx.Request.Context(), req.UmbrellaID, req.UserID, req.PartnerStoreID)

	ctx.JSON(http.StatusOK, result)
}
