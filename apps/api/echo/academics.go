package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core/school"
)

type ExamMarksRequest struct {
	Marks []school.ExamMarks `json:"marks"`
}

func (api *schoolApi) stats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, school.DashboardStats(api.svc.Snapshot(), levelParam(ctx)))
}

func (api *schoolApi) teacherLessonPlans(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, school.LessonPlansForTeacher(api.svc.Snapshot(), ctx.Param("id")))
}

func (api *schoolApi) queryLessonPlans(ctx echo.Context) error {
	d := api.svc.Snapshot()
	if teacherID := ctx.QueryParam("teacherId"); teacherID != "" {
		return ctx.JSON(http.StatusOK, school.LessonPlansForTeacher(d, teacherID))
	}
	return ctx.JSON(http.StatusOK, d.LessonPlans)
}

func (api *schoolApi) createLessonPlan(ctx echo.Context) error {
	var data school.NewLessonPlan
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLessonPlan")
	}
	lp, err := api.svc.AddLessonPlan(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, lp)
}

func (api *schoolApi) queryTimetable(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, school.TimetableForClass(api.svc.Snapshot(), ctx.QueryParam("classId")))
}

func (api *schoolApi) createTimetableSlot(ctx echo.Context) error {
	var data school.NewTimetableSlot
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTimetableSlot")
	}
	slot, err := api.svc.AddTimetableSlot(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, slot)
}

func (api *schoolApi) queryExams(ctx echo.Context) error {
	d := api.svc.Snapshot()
	classID := ctx.QueryParam("classId")
	if classID == "" {
		return ctx.JSON(http.StatusOK, d.Exams)
	}
	exams := make([]school.Exam, 0)
	for _, e := range d.Exams {
		if e.ClassID == classID {
			exams = append(exams, e)
		}
	}
	return ctx.JSON(http.StatusOK, exams)
}

func (api *schoolApi) createExam(ctx echo.Context) error {
	var data school.NewExam
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewExam")
	}
	exam, err := api.svc.AddExam(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, exam)
}

func (api *schoolApi) recordExamMarks(ctx echo.Context) error {
	var data ExamMarksRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ExamMarksRequest")
	}
	exam, err := api.svc.RecordExamMarks(ctx.Request().Context(), ctx.Param("id"), data.Marks)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, exam)
}

func (api *schoolApi) queryReports(ctx echo.Context) error {
	d := api.svc.Snapshot()
	studentID := ctx.QueryParam("studentId")
	if studentID == "" {
		return ctx.JSON(http.StatusOK, d.Reports)
	}
	reports := make([]school.Report, 0)
	for _, r := range d.Reports {
		if r.StudentID == studentID {
			reports = append(reports, r)
		}
	}
	return ctx.JSON(http.StatusOK, reports)
}

func (api *schoolApi) createReport(ctx echo.Context) error {
	var data school.NewReport
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewReport")
	}
	report, err := api.svc.GenerateReport(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, report)
}
