package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pindrop/internal/core/domain/model/kernel"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
	headerAreaCode = "X-Area-Code"

	principalKey = "principal"
)

const (
	roleCustomer = "customer"
	roleOwner    = "owner"
	roleCare     = "care"
	rolePartner  = "delivery"
	roleAdmin    = "admin"
)

// Principal is the verified identity forwarded by the gateway.
type Principal struct {
	UserID   kernel.ID
	Role     string
	AreaCode string
}

// extractPrincipal reads the gateway identity headers into a Principal and
// stores it on the request context. Requests without a valid user identifier
// and role are rejected with 401.
func extractPrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		userID, err := kernel.IDFromString(ctx.Request().Header.Get(headerUserID))
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing or invalid " + headerUserID + " header",
			})
		}

		role := ctx.Request().Header.Get(headerUserRole)
		if role == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing " + headerUserRole + " header",
			})
		}

		ctx.Set(principalKey, Principal{
			UserID:   userID,
			Role:     role,
			AreaCode: ctx.Request().Header.Get(headerAreaCode),
		})
		return next(ctx)
	}
}

// requireRole rejects requests whose principal carries none of the given roles.
func requireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			p := principalFrom(ctx)
			for _, role := range roles {
				if p.Role == role {
					return next(ctx)
				}
			}
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "role " + p.Role + " is not allowed to access this resource",
			})
		}
	}
}

// principalFrom returns the Principal stored by extractPrincipal.
func principalFrom(ctx echo.Context) Principal {
	p, _ := ctx.Get(principalKey).(Principal)
	return p
}
