package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

var (
	errTokenRequired = echo.NewHTTPError(http.StatusUnauthorized, "bearer token required")
	errTokenInvalid  = echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
)

// JWTAuth verifies HS256 bearer tokens and stores the numeric "sub" claim as
// the request principal. Requests to /health and /metrics pass through.
//
// With an empty secret authentication is off and every request is anonymous.
func JWTAuth(secret string) echo.MiddlewareFunc {
	key := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" || isPublicPath(c.Request().URL.Path) {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return errTokenRequired
			}
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return errTokenInvalid
			}

			principal, err := parsePrincipal(strings.TrimSpace(raw), key)
			if err != nil {
				return errTokenInvalid.WithInternal(err)
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

func parsePrincipal(raw string, key []byte) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, errors.New("subject is not a numeric user id")
	}
	return id, nil
}

func isPublicPath(path string) bool {
	return path == "/health" || path == "/metrics"
}

// Principal returns the authenticated user id, or nil for anonymous requests.
func Principal(c echo.Context) *int64 {
	id, ok := c.Get(principalKey).(int64)
	if !ok {
		return nil
	}
	return &id
}
