package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core/school"
)

type PayrollResponse struct {
	Staff []school.Staff `json:"staff"`
	Total float64        `json:"total"`
}

func (api *schoolApi) queryFees(ctx echo.Context) error {
	d := api.svc.Snapshot()
	status := ctx.QueryParam("status")
	if status != "paid" && status != "pending" {
		return ctx.JSON(http.StatusOK, d.Fees)
	}
	paid := status == "paid"
	fees := make([]school.Fee, 0)
	for _, f := range d.Fees {
		if f.Paid == paid {
			fees = append(fees, f)
		}
	}
	return ctx.JSON(http.StatusOK, fees)
}

func (api *schoolApi) feeTotals(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, school.FeeTotals(api.svc.Snapshot()))
}

func (api *schoolApi) createPayment(ctx echo.Context) error {
	var data school.NewPayment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPayment")
	}
	pmt, err := api.svc.RecordPayment(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, pmt)
}

func (api *schoolApi) queryStaff(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Snapshot().Staff)
}

func (api *schoolApi) createStaff(ctx echo.Context) error {
	var data school.NewStaff
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStaff")
	}
	st, err := api.svc.AddStaff(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, st)
}

func (api *schoolApi) payroll(ctx echo.Context) error {
	d := api.svc.Snapshot()
	return ctx.JSON(http.StatusOK, PayrollResponse{Staff: d.Staff, Total: school.PayrollTotal(d)})
}
