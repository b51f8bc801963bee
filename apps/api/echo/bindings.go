package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/elimu/core"
)

var orderingParam = "ordering"

func bindOrdering(ctx echo.Context) []core.Ordering {
	return core.ParseOrderings(ctx.QueryParam(orderingParam))
}
