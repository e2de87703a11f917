package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/riderapp/admin-console/internal/core/ports"
)

// Auth validates the bearer token, rejects revoked tokens, and injects the
// identity claims into the echo context.
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			tokenID, _ := claims["jti"].(string)
			if tokenID != "" && revoker != nil {
				revoked, err := revoker.IsRevoked(c.Request().Context(), tokenID)
				if err != nil {
					return echo.NewHTTPError(http.StatusServiceUnavailable, "revocation check unavailable")
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set("identity_id", claims["sub"])
			c.Set("name", claims["name"])
			c.Set("email", claims["email"])
			c.Set("role", claims["role"])
			c.Set("employee_id", claims["employee_id"])
			c.Set("token_id", tokenID)
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				c.Set("token_ttl", time.Until(exp.Time))
			}

			return next(c)
		}
	}
}
