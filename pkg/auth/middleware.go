package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/locallibrary/catalog/pkg/errcodes"
	"github.com/robinjoseph08/golib/logger"
)

// HeaderAPIKey carries the caller's credential on mutating requests.
const HeaderAPIKey = "X-API-Key"

const unauthorizedMessage = "Invalid or missing API key."

// Middleware guards routes behind a Verifier.
type Middleware struct {
	verifier Verifier
}

func NewMiddleware(verifier Verifier) *Middleware {
	return &Middleware{verifier: verifier}
}

// RequireKey rejects the request with 401 unless the X-API-Key header holds a
// credential the verifier accepts. It runs before any binding, so an
// unauthenticated request never reaches validation.
func (m *Middleware) RequireKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential := c.Request().Header.Get(HeaderAPIKey)
		if credential == "" {
			return errcodes.Unauthorized(unauthorizedMessage)
		}

		if err := m.verifier.Verify(c.Request().Context(), credential); err != nil {
			logger.FromContext(c.Request().Context()).Info("rejected credential", logger.Data{"path": c.Path()})
			return errcodes.Unauthorized(unauthorizedMessage)
		}

		return next(c)
	}
}
