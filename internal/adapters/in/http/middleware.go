package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// tenantContextKey is the echo context key under which the authenticated
// tenant's id is stored.
const tenantContextKey = "tenantID"

// TenantAuth resolves the Bearer token from the Authorization header to a
// tenant and stores the tenant id in the request context. Requests with a
// missing, malformed or unknown token are rejected with 401.
func TenantAuth(tenants ports.TenantRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			token = strings.TrimSpace(token)
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing or malformed API token",
				})
			}

			current, err := tenants.GetByAPIToken(ctx.Request().Context(), token)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					return ctx.JSON(http.StatusUnauthorized, Error{
						Code:    http.StatusUnauthorized,
						Message: "Unknown API token",
					})
				}
				return ctx.JSON(http.StatusInternalServerError, Error{
					Code:    http.StatusInternalServerError,
					Message: "Failed to resolve API token",
				})
			}

			ctx.Set(tenantContextKey, current.ID())
			return next(ctx)
		}
	}
}

// tenantFromContext returns the tenant id stored by TenantAuth.
func tenantFromContext(ctx echo.Context) (kernel.UUID, bool) {
	tenantID, ok := ctx.Get(tenantContextKey).(kernel.UUID)
	return tenantID, ok
}
