package httpapi

import (
	"fmt"

	"github.com/dmitrijs2005/awarddeck/internal/common"
	"github.com/dmitrijs2005/awarddeck/internal/server/auth"
	"github.com/labstack/echo/v4"
)

// bearerAuth requires a valid bearer token on every route, including /health.
func (s *Server) bearerAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := auth.FromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return fail(c, fmt.Errorf("%w: missing or malformed bearer token", common.ErrUnauthorized))
		}
		if err := s.verifier.Verify(token); err != nil {
			return fail(c, fmt.Errorf("%w: invalid token", common.ErrUnauthorized))
		}
		return next(c)
	}
}
