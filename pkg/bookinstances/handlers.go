package bookinstances

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locallibrary/catalog/pkg/identity"
	"github.com/pkg/errors"
)

const resource = "Book instance"

type handler struct {
	bookInstanceService *Service
}

func (h *handler) list(c echo.Context) error {
	instances, err := h.bookInstanceService.ListBookInstances(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, ToBookInstanceOuts(instances)))
}

func (h *handler) retrieve(c echo.Context) error {
	id, err := identity.ParseInstanceID(c.Param("id"), resource)
	if err != nil {
		return err
	}

	instance, err := h.bookInstanceService.RetrieveBookInstance(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, ToBookInstanceOut(instance)))
}

func (h *handler) create(c echo.Context) error {
	params := BookInstanceIn{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	instance, err := FromBookInstanceIn(params)
	if err != nil {
		return err
	}

	if err := h.bookInstanceService.CreateBookInstance(c.Request().Context(), instance); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, ToBookInstanceOut(instance)))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := identity.ParseInstanceID(c.Param("id"), resource)
	if err != nil {
		return err
	}

	params := BookInstanceIn{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	instance, err := FromBookInstanceIn(params)
	if err != nil {
		return err
	}
	instance.ID = id

	if err := h.bookInstanceService.UpdateBookInstance(ctx, instance); err != nil {
		return errors.WithStack(err)
	}

	instance, err = h.bookInstanceService.RetrieveBookInstance(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, ToBookInstanceOut(instance)))
}

func (h *handler) delete(c echo.Context) error {
	id, err := identity.ParseInstanceID(c.Param("id"), resource)
	if err != nil {
		return err
	}

	if err := h.bookInstanceService.DeleteBookInstance(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, echo.Map{"success": true}))
}
