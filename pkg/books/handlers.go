package books

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locallibrary/catalog/pkg/identity"
	"github.com/pkg/errors"
)

type handler struct {
	bookService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.ListBooks(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	genreIDs, err := h.bookService.GenreIDsByBook(ctx, books)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]BookOut, 0, len(books))
	for _, b := range books {
		out = append(out, ToBookOut(b, genreIDs[b.ID]))
	}

	return errors.WithStack(c.JSON(http.StatusOK, out))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := identity.ParseSequentialID(c.Param("id"), "Book")
	if err != nil {
		return err
	}

	book, err := h.bookService.RetrieveBook(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	genreIDs, err := h.bookService.GenreIDs(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, ToBookOut(book, genreIDs)))
}

func (h *handler) create(c echo.Context) error {
	params := BookIn{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	fields, genreIDs := FromBookIn(params)
	book := fields.Book(0)
	if err := h.bookService.CreateBook(c.Request().Context(), book, genreIDs); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, ToBookOut(book, genreIDs)))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := identity.ParseSequentialID(c.Param("id"), "Book")
	if err != nil {
		return err
	}

	params := BookIn{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	fields, genreIDs := FromBookIn(params)
	if err := h.bookService.UpdateBook(ctx, fields.Book(id), genreIDs); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.bookService.RetrieveBook(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, ToBookOut(book, genreIDs)))
}

func (h *handler) delete(c echo.Context) error {
	id, err := identity.ParseSequentialID(c.Param("id"), "Book")
	if err != nil {
		return err
	}

	if err := h.bookService.DeleteBook(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, echo.Map{"success": true}))
}
