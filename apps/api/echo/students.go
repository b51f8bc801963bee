package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core/school"
)

type (
	AttendanceRequest struct {
		Date   string                  `json:"date"`
		Status school.AttendanceStatus `json:"status"`
	}

	ClassPresentRequest struct {
		Date string `json:"date"`
	}

	ClassPresentResponse struct {
		Marked int `json:"marked"`
	}
)

func (api *schoolApi) queryStudents(ctx echo.Context) error {
	d := api.svc.Snapshot()
	students := school.StudentsByLevel(d, levelParam(ctx))
	students = school.SearchStudents(students, ctx.QueryParam("search"))
	if classID := ctx.QueryParam("classId"); classID != "" {
		inClass := make([]school.Student, 0)
		for _, stu := range students {
			if stu.ClassID == classID {
				inClass = append(inClass, stu)
			}
		}
		students = inClass
	}
	return ctx.JSON(http.StatusOK, school.SortStudents(students, bindOrdering(ctx)))
}

func (api *schoolApi) createStudent(ctx echo.Context) error {
	var data school.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	stu, err := api.svc.AddStudent(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, stu)
}

func (api *schoolApi) retrieveStudent(ctx echo.Context) error {
	stu, err := api.svc.Snapshot().Student(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stu)
}

func (api *schoolApi) updateStudent(ctx echo.Context) error {
	var data school.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	stu, err := api.svc.UpdateStudent(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stu)
}

// destroyStudent leaves the student's fees, loans, reports and messages in place.
func (api *schoolApi) destroyStudent(ctx echo.Context) error {
	if err := api.svc.DeleteStudent(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *schoolApi) markAttendance(ctx echo.Context) error {
	var data AttendanceRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AttendanceRequest")
	}
	ma := school.MarkAttendance{StudentID: ctx.Param("id"), Date: data.Date, Status: data.Status}
	if err := api.svc.MarkAttendance(ctx.Request().Context(), ma); err != nil {
		return err
	}
	return api.retrieveStudent(ctx)
}

func (api *schoolApi) updateCompetencies(ctx echo.Context) error {
	var data school.Competencies
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Competencies")
	}
	if err := api.svc.UpdateCompetencies(ctx.Request().Context(), ctx.Param("id"), data); err != nil {
		return err
	}
	return api.retrieveStudent(ctx)
}

func (api *schoolApi) studentPortal(ctx echo.Context) error {
	portal, err := school.StudentPortal(api.svc.Snapshot(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, portal)
}

// ownPortal shows the portal of the session's student, or of the first student when the session names none.
func (api *schoolApi) ownPortal(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	d := api.svc.Snapshot()
	id := sess.UserID
	if _, err = d.Student(id); err != nil && len(d.Students) > 0 {
		id = d.Students[0].ID
	}
	portal, err := school.StudentPortal(d, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, portal)
}

func (api *schoolApi) queryTeachers(ctx echo.Context) error {
	d := api.svc.Snapshot()
	level := levelParam(ctx)
	if level == "" {
		return ctx.JSON(http.StatusOK, d.Teachers)
	}
	teachers := make([]school.Teacher, 0)
	for _, t := range d.Teachers {
		for _, l := range t.EducationLevels {
			if l == level {
				teachers = append(teachers, t)
				break
			}
		}
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api *schoolApi) queryClasses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, school.ClassesByLevel(api.svc.Snapshot(), levelParam(ctx)))
}

func (api *schoolApi) classAttendance(ctx echo.Context) error {
	date := ctx.QueryParam("date")
	if date == "" {
		date = school.NowFunc().Format(school.DateLayout)
	}
	return ctx.JSON(http.StatusOK, school.ClassAttendance(api.svc.Snapshot(), ctx.Param("id"), date))
}

func (api *schoolApi) markClassPresent(ctx echo.Context) error {
	var data ClassPresentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ClassPresentRequest")
	}
	n, err := api.svc.MarkClassPresent(ctx.Request().Context(), school.MarkClassPresent{ClassID: ctx.Param("id"), Date: data.Date})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ClassPresentResponse{Marked: n})
}

func (api *schoolApi) classTimetable(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, school.TimetableForClass(api.svc.Snapshot(), ctx.Param("id")))
}
