package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/machikasa/machikasa-api/internal/api/handler/v1/request"
	"github.com/machikasa/machikasa-api/internal/api/handler/v1/response"
	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/service"
)

type SessionService interface {
	CurrentUser(ctx context.Context) (domain.User, error)
	SwitchUser(ctx context.Context, userID string) (domain.User, error)
}

type SessionHandler struct {
	svc SessionService
}

func NewSessionHandler(svc SessionService) *SessionHandler {
	return &SessionHandler{
		svc: svc,
	}
}

// HandleGetCurrentUser godoc
// @Summary      Get the session's current user
// @Tags         session
// @Produce      json
// @Success      200 {object} domain.User
// @Failure      404 {object} response.Err
// @Router       /session/current-user [get]
func (h *SessionHandler) HandleGetCurrentUser(ctx *gin.Context) {
	user, err := h.svc.CurrentUser(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoCurrentUser) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetCurrentUser -> h.svc.CurrentUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleSwitchUser godoc
// @Summary      Switch the session to another user
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request body request.SwitchUserRequest true "request body"
// @Success      200 {object} domain.User
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Router       /session/current-user [put]
func (h *SessionHandler) HandleSwitchUser(ctx *gin.Context) {
	var req request.SwitchUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.SwitchUser(ctx.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleSwitchUser -> h.svc.SwitchUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}
