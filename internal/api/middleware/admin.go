package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/machikasa/machikasa-api/internal/api/handler/v1/response"
	"github.com/machikasa/machikasa-api/internal/domain"
)

type CurrentUserResolver interface {
	CurrentUser(ctx context.Context) (domain.User, error)
}

var errAdminOnly = errors.New("admin role required")

// RequireAdmin gates admin routes on the current user's role string.
// This is the demo's entire authorization model; there is no
// authentication behind it.
func RequireAdmin(session CurrentUserResolver) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := session.CurrentUser(ctx.Request.Context())
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))

			return
		}

		if user.Role != domain.RoleAdmin {
			response.RenderErr(ctx, response.ErrForbidden(errAdminOnly))

			return
		}

		ctx.Next()
	}
}
