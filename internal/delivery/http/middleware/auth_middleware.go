// Package middleware contains the HTTP middlewares for authentication,
// authorization and boundary error translation.
package middleware

import (
	"strings"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// claimsContextKey stores the validated token claims on the echo context.
const claimsContextKey = "authClaims"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its claims on the
// request context. Failures surface as typed errors; the error handler
// renders them, so no JSON is written here.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrAuthenticationRequired.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrAuthenticationRequired.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return err
		}

		c.Set(claimsContextKey, claims)

		return next(c)
	}
}

// RequireRole restricts a route to callers holding one of the given roles.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return domainerrors.ErrAuthenticationRequired.WrapMessage("no claims on context")
			}

			if !allowed.Contains(entity.Role(claims.Role)) {
				return domainerrors.ErrForbidden.WrapMessage("role " + claims.Role + " is not allowed")
			}

			return next(c)
		}
	}
}

// ClaimsFromContext returns the claims Authenticate stored, if any.
func ClaimsFromContext(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*service.Claims)

	return claims, ok
}
