package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core/school"
)

type LibraryStatsResponse struct {
	school.LibrarySummary
	Categories []string `json:"categories"`
}

func (api *schoolApi) queryBooks(ctx echo.Context) error {
	var filter school.BookFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(ctx, &filter); err != nil {
		return errors.Wrap(err, "binding to BookFilter")
	}
	return ctx.JSON(http.StatusOK, school.SearchBooks(api.svc.Snapshot(), filter))
}

func (api *schoolApi) createBook(ctx echo.Context) error {
	var data school.NewBook
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewBook")
	}
	book, err := api.svc.AddBook(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, book)
}

func (api *schoolApi) libraryStats(ctx echo.Context) error {
	d := api.svc.Snapshot()
	return ctx.JSON(http.StatusOK, LibraryStatsResponse{
		LibrarySummary: school.LibraryStats(d),
		Categories:     school.BookCategories(d),
	})
}

func (api *schoolApi) queryLoans(ctx echo.Context) error {
	d := api.svc.Snapshot()
	switch ctx.QueryParam("status") {
	case "active":
		return ctx.JSON(http.StatusOK, school.ActiveLoans(d))
	case "overdue":
		return ctx.JSON(http.StatusOK, school.OverdueLoans(d))
	}
	return ctx.JSON(http.StatusOK, d.BookLoans)
}

func (api *schoolApi) createLoan(ctx echo.Context) error {
	var data school.NewLoan
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLoan")
	}
	loan, err := api.svc.IssueLoan(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, loan)
}

func (api *schoolApi) returnLoan(ctx echo.Context) error {
	loan, err := api.svc.ReturnLoan(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, loan)
}
