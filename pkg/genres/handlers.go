package genres

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locallibrary/catalog/pkg/identity"
	"github.com/locallibrary/catalog/pkg/models"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
)

type handler struct {
	genreService *Service
}

func (h *handler) list(c echo.Context) error {
	genres, err := h.genreService.ListGenres(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, genres))
}

func (h *handler) retrieve(c echo.Context) error {
	id, err := identity.ParseSequentialID(c.Param("id"), "Genre")
	if err != nil {
		return err
	}

	genre, err := h.genreService.RetrieveGenre(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, genre))
}

func (h *handler) create(c echo.Context) error {
	params := GenreIn{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	genre := &models.Genre{Name: params.Name}
	if err := h.genreService.CreateGenre(c.Request().Context(), genre); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, genre))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := identity.ParseSequentialID(c.Param("id"), "Genre")
	if err != nil {
		return err
	}

	params := GenreIn{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	genre := &models.Genre{ID: id, Name: params.Name}
	if err := h.genreService.UpdateGenre(ctx, genre); err != nil {
		return errors.WithStack(err)
	}

	genre, err = h.genreService.RetrieveGenre(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, genre))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := identity.ParseSequentialID(c.Param("id"), "Genre")
	if err != nil {
		return err
	}

	bookCount, err := h.genreService.GetBookCount(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.genreService.DeleteGenre(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	if bookCount > 0 {
		logger.FromContext(ctx).Info("genre detached from books", logger.Data{"genre_id": id, "book_count": bookCount})
	}

	return errors.WithStack(c.JSON(http.StatusOK, echo.Map{"success": true}))
}
