package authors

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locallibrary/catalog/pkg/identity"
	"github.com/pkg/errors"
)

type handler struct {
	authorService *Service
}

func (h *handler) list(c echo.Context) error {
	authors, err := h.authorService.ListAuthors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, ToAuthorOuts(authors)))
}

func (h *handler) retrieve(c echo.Context) error {
	id, err := identity.ParseSequentialID(c.Param("id"), "Author")
	if err != nil {
		return err
	}

	author, err := h.authorService.RetrieveAuthor(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, ToAuthorOut(author)))
}

func (h *handler) create(c echo.Context) error {
	params := AuthorIn{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	author, err := FromAuthorIn(params)
	if err != nil {
		return err
	}

	if err := h.authorService.CreateAuthor(c.Request().Context(), author); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, ToAuthorOut(author)))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := identity.ParseSequentialID(c.Param("id"), "Author")
	if err != nil {
		return err
	}

	params := AuthorIn{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	author, err := FromAuthorIn(params)
	if err != nil {
		return err
	}
	author.ID = id

	if err := h.authorService.UpdateAuthor(ctx, author); err != nil {
		return errors.WithStack(err)
	}

	author, err = h.authorService.RetrieveAuthor(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, ToAuthorOut(author)))
}

func (h *handler) delete(c echo.Context) error {
	id, err := identity.ParseSequentialID(c.Param("id"), "Author")
	if err != nil {
		return err
	}

	if err := h.authorService.DeleteAuthor(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, echo.Map{"success": true}))
}
