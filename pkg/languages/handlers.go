package languages

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locallibrary/catalog/pkg/identity"
	"github.com/locallibrary/catalog/pkg/models"
	"github.com/pkg/errors"
)

type handler struct {
	languageService *Service
}

func (h *handler) list(c echo.Context) error {
	languages, err := h.languageService.ListLanguages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, languages))
}

func (h *handler) retrieve(c echo.Context) error {
	id, err := identity.ParseSequentialID(c.Param("id"), "Language")
	if err != nil {
		return err
	}

	language, err := h.languageService.RetrieveLanguage(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, language))
}

func (h *handler) create(c echo.Context) error {
	params := LanguageIn{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	language := &models.Language{Name: params.Name}
	if err := h.languageService.CreateLanguage(c.Request().Context(), language); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, language))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := identity.ParseSequentialID(c.Param("id"), "Language")
	if err != nil {
		return err
	}

	params := LanguageIn{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	language := &models.Language{ID: id, Name: params.Name}
	if err := h.languageService.UpdateLanguage(ctx, language); err != nil {
		return errors.WithStack(err)
	}

	language, err = h.languageService.RetrieveLanguage(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, language))
}

func (h *handler) delete(c echo.Context) error {
	id, err := identity.ParseSequentialID(c.Param("id"), "Language")
	if err != nil {
		return err
	}

	if err := h.languageService.DeleteLanguage(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, echo.Map{"success": true}))
}
