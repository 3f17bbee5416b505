package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/machikasa/machikasa-api/internal/api/handler/v1/response"
	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/service"
)

type UserService interface {
	Users(ctx context.Context) []domain.User
	User(ctx context.Context, userID string) (domain.User, error)
	UserTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleListUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200 {array} domain.User
// @Router       /users [get]
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.Users(ctx.Request.Context()))
}

// HandleGetUser godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        userID path string true "user id"
// @Success      200 {object} domain.User
// @Failure      404 {object} response.Err
// @Router       /users/{userID} [get]
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	user, err := h.svc.User(ctx.Request.Context(), ctx.Param("userID"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.User -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUserTransactions godoc
// @Summary      List a user's transactions, newest first
// @Tags         users
// @Produce      json
// @Param        userID path  string true  "user id"
// @Param        limit  query int    false "max records"
// @Success      200 {array} domain.Transaction
// @Failure      404 {object} response.Err
// @Router       /users/{userID}/transactions [get]
func (h *UserHandler) HandleUserTransactions(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid limit")))

		return
	}

	transactions, err := h.svc.UserTransactions(ctx.Request.Context(), ctx.Param("userID"), limit)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleUserTransactions -> h.svc.UserTransactions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, transactions)
}
