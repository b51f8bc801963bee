package echoapi

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core/school"
	exportsvc "github.com/trezcool/elimu/services/export"
)

type ExportResponse struct {
	Location string `json:"location"`
}

type dataApi struct {
	svc      *school.Service
	exporter *exportsvc.Exporter
}

func registerDataAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service, exporter *exportsvc.Exporter) {
	api := dataApi{svc: svc, exporter: exporter}

	ag := g.Group("", jwt)
	ag.GET("/preferences/:key", api.retrievePreference)
	ag.PUT("/preferences/:key", api.updatePreference)

	dg := ag.Group("/data", adminOnly)
	dg.GET("/export", api.download)
	dg.POST("/export", api.export)
	dg.POST("/reset", api.reset)
}

func (api *dataApi) retrievePreference(ctx echo.Context) error {
	value, err := api.svc.Preference(ctx.Request().Context(), ctx.Param("key"))
	if err != nil {
		return err
	}
	return ctx.JSONBlob(http.StatusOK, value)
}

func (api *dataApi) updatePreference(ctx echo.Context) error {
	value, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return errors.Wrap(err, "reading preference")
	}
	if err = api.svc.SetPreference(ctx.Request().Context(), ctx.Param("key"), value); err != nil {
		return err
	}
	return ctx.JSONBlob(http.StatusOK, value)
}

// download sends the stored dataset, unmodified, as a JSON file.
func (api *dataApi) download(ctx echo.Context) error {
	blob, err := api.svc.Export()
	if err != nil {
		return errors.Wrap(err, "exporting dataset")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportsvc.DownloadName+`"`)
	return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSON, blob)
}

func (api *dataApi) export(ctx echo.Context) error {
	if api.exporter == nil {
		return errNoExporter
	}
	loc, err := api.exporter.Export(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "exporting dataset")
	}
	return ctx.JSON(http.StatusCreated, ExportResponse{Location: loc})
}

func (api *dataApi) reset(ctx echo.Context) error {
	api.svc.Reset(ctx.Request().Context())
	return ctx.NoContent(http.StatusNoContent)
}
