package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core/school"
)

func (api *schoolApi) queryMessages(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Snapshot().Messages)
}

func (api *schoolApi) createMessage(ctx echo.Context) error {
	var data school.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMessage")
	}
	msg, err := api.svc.SendMessage(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, msg)
}

func (api *schoolApi) readMessage(ctx echo.Context) error {
	if err := api.svc.MarkMessageRead(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *schoolApi) queryEvents(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Snapshot().Events)
}

func (api *schoolApi) createEvent(ctx echo.Context) error {
	var data school.NewEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEvent")
	}
	ev, err := api.svc.AddEvent(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ev)
}
