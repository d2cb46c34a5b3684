package bookinstances

import (
	"github.com/labstack/echo/v4"
	"github.com/locallibrary/catalog/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers book instance routes on a pre-configured
// group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		bookInstanceService: NewService(db),
	}

	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create, authMiddleware.RequireKey)
	g.PUT("/:id", h.update, authMiddleware.RequireKey)
	g.DELETE("/:id", h.delete, authMiddleware.RequireKey)
}
