package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/elimu/core/curriculum"
	"github.com/trezcool/elimu/core/school"
)

type schoolApi struct {
	svc *school.Service
}

func registerSchoolAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service) {
	api := schoolApi{svc: svc}

	// un-authed endpoints
	g.GET("/curriculum", api.curriculum)

	// authed endpoints
	ag := g.Group("", jwt)
	ag.GET("/stats", api.stats, staffOnly)
	ag.GET("/portal", api.ownPortal)

	sg := ag.Group("/students")
	sg.GET("", api.queryStudents, staffOnly)
	sg.POST("", api.createStudent, adminOnly)
	sg.GET("/:id", api.retrieveStudent, staffOnly)
	sg.PUT("/:id", api.updateStudent, adminOnly)
	sg.DELETE("/:id", api.destroyStudent, adminOnly)
	sg.PUT("/:id/attendance", api.markAttendance, staffOnly)
	sg.PUT("/:id/competencies", api.updateCompetencies, staffOnly)
	sg.GET("/:id/portal", api.studentPortal, staffOnly)

	ag.GET("/teachers", api.queryTeachers, staffOnly)
	ag.GET("/teachers/:id/lesson-plans", api.teacherLessonPlans, staffOnly)

	cg := ag.Group("/classes", staffOnly)
	cg.GET("", api.queryClasses)
	cg.GET("/:id/attendance", api.classAttendance)
	cg.POST("/:id/attendance", api.markClassPresent)
	cg.GET("/:id/timetable", api.classTimetable)

	ag.GET("/lesson-plans", api.queryLessonPlans, staffOnly)
	ag.POST("/lesson-plans", api.createLessonPlan, staffOnly)
	ag.GET("/timetable", api.queryTimetable)
	ag.POST("/timetable", api.createTimetableSlot, adminOnly)
	ag.GET("/exams", api.queryExams, staffOnly)
	ag.POST("/exams", api.createExam, staffOnly)
	ag.PUT("/exams/:id/results", api.recordExamMarks, staffOnly)
	ag.GET("/reports", api.queryReports, staffOnly)
	ag.POST("/reports", api.createReport, staffOnly)

	ag.GET("/fees", api.queryFees, adminOnly)
	ag.GET("/fees/totals", api.feeTotals, adminOnly)
	ag.POST("/payments", api.createPayment, adminOnly)
	ag.GET("/staff", api.queryStaff, adminOnly)
	ag.POST("/staff", api.createStaff, adminOnly)
	ag.GET("/staff/payroll", api.payroll, adminOnly)

	ag.GET("/messages", api.queryMessages)
	ag.POST("/messages", api.createMessage, staffOnly)
	ag.PUT("/messages/:id/read", api.readMessage)
	ag.GET("/events", api.queryEvents)
	ag.POST("/events", api.createEvent, adminOnly)

	ag.GET("/books", api.queryBooks)
	ag.POST("/books", api.createBook, adminOnly)
	ag.GET("/books/stats", api.libraryStats, staffOnly)
	ag.GET("/loans", api.queryLoans, staffOnly)
	ag.POST("/loans", api.createLoan, staffOnly)
	ag.PUT("/loans/:id/return", api.returnLoan, staffOnly)
}

func levelParam(ctx echo.Context) curriculum.Level {
	return curriculum.Level(ctx.QueryParam("level"))
}
