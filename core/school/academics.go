package school

import (
	"github.com/trezcool/elimu/core/curriculum"
)

type (
	NewLessonPlan struct {
		Title          string           `json:"title" validate:"required"`
		Scheme         string           `json:"scheme" validate:"required"`
		AlignedCBC     bool             `json:"alignedCBC"`
		TeacherID      string           `json:"teacherId" validate:"required"`
		Subject        string           `json:"subject" validate:"required"`
		EducationLevel curriculum.Level `json:"educationLevel" validate:"required,edulevel"`
	}

	NewTimetableSlot struct {
		Day       string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
		Period    string `json:"period" validate:"required,oneof=1 2 3 4 5"`
		Subject   string `json:"subject" validate:"required"`
		TeacherID string `json:"teacherId" validate:"required"`
		ClassID   string `json:"classId" validate:"required"`
		Time      string `json:"time" validate:"required,timerange"`
	}

	NewExam struct {
		Name    string `json:"name" validate:"required"`
		Date    string `json:"date" validate:"required,endate"`
		ClassID string `json:"classId" validate:"required"`
		Subject string `json:"subject" validate:"required"`
	}

	ExamMarks struct {
		StudentID string  `json:"studentId" validate:"required"`
		Marks     float64 `json:"marks" validate:"min=0,max=100"`
	}

	NewReport struct {
		StudentID     string `json:"studentId" validate:"required"`
		Term          string `json:"term" validate:"required"`
		HolisticNotes string `json:"holisticNotes"`
	}
)

// Days and Periods are the slots a timetable is made of.
var (
	Days    = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	Periods = []string{"1", "2", "3", "4", "5"}
)

// UpdateCompetencies replaces the whole scorecard of student `id`. No history is kept.
func (d Dataset) UpdateCompetencies(id string, c Competencies) ([]Replacement, error) {
	i := indexOf(d.Students, id, Student.key)
	if i < 0 {
		return nil, ErrNotFound
	}
	stu := d.Students[i]
	stu.Competencies = c
	return []Replacement{ReplaceStudents(replaced(d.Students, i, stu))}, nil
}

func (d Dataset) AddLessonPlan(nlp NewLessonPlan) (LessonPlan, []Replacement) {
	id, seq := d.nextID(string(LessonPlans))
	lp := LessonPlan{
		ID:             id,
		Title:          nlp.Title,
		Scheme:         nlp.Scheme,
		AlignedCBC:     nlp.AlignedCBC,
		SharedWith:     []string{},
		TeacherID:      nlp.TeacherID,
		Subject:        nlp.Subject,
		EducationLevel: nlp.EducationLevel,
		CreatedAt:      today(),
	}
	return lp, []Replacement{ReplaceLessonPlans(appended(d.LessonPlans, lp)), seq}
}

// AddTimetableSlot appends a slot; clashes on (day, period, class) are allowed.
func (d Dataset) AddTimetableSlot(nts NewTimetableSlot) (TimetableSlot, []Replacement) {
	id, seq := d.nextID(string(Timetable))
	slot := TimetableSlot{
		ID:        id,
		Day:       nts.Day,
		Period:    nts.Period,
		Subject:   nts.Subject,
		TeacherID: nts.TeacherID,
		ClassID:   nts.ClassID,
		Time:      nts.Time,
	}
	return slot, []Replacement{ReplaceTimetable(appended(d.Timetable, slot)), seq}
}

func (d Dataset) AddExam(ne NewExam) (Exam, []Replacement) {
	id, seq := d.nextID(string(Exams))
	exam := Exam{
		ID:       id,
		Name:     ne.Name,
		Date:     ne.Date,
		ClassID:  ne.ClassID,
		Subject:  ne.Subject,
		Schedule: []ExamResult{},
	}
	return exam, []Replacement{ReplaceExams(appended(d.Exams, exam)), seq}
}

// RecordExamMarks sets the marks of students in exam `id`, replacing any marks they already had.
// Students are not checked against the class roster.
func (d Dataset) RecordExamMarks(id string, marks ...ExamMarks) (Exam, []Replacement, error) {
	i := indexOf(d.Exams, id, Exam.key)
	if i < 0 {
		return Exam{}, nil, ErrNotFound
	}
	exam := d.Exams[i]
	schedule := append([]ExamResult(nil), exam.Schedule...)
	for _, m := range marks {
		res := ExamResult{StudentID: m.StudentID, Marks: m.Marks}
		j := indexOf(schedule, m.StudentID, func(r ExamResult) string { return r.StudentID })
		if j < 0 {
			schedule = append(schedule, res)
		} else {
			schedule[j] = res
		}
	}
	if schedule == nil {
		schedule = []ExamResult{}
	}
	exam.Schedule = schedule
	return exam, []Replacement{ReplaceExams(replaced(d.Exams, i, exam))}, nil
}

// GenerateReport snapshots the student's current scorecard; later edits do not reach the report.
func (d Dataset) GenerateReport(nr NewReport) (Report, []Replacement, error) {
	i := indexOf(d.Students, nr.StudentID, Student.key)
	if i < 0 {
		return Report{}, nil, ErrNotFound
	}
	id, seq := d.nextID(string(Reports))
	rep := Report{
		ID:            id,
		StudentID:     nr.StudentID,
		Competencies:  d.Students[i].Competencies,
		HolisticNotes: nr.HolisticNotes,
		Term:          nr.Term,
		GeneratedAt:   today(),
	}
	return rep, []Replacement{ReplaceReports(appended(d.Reports, rep)), seq}, nil
}
