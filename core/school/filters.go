package school

import (
	"cmp"
	"slices"
	"strings"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/curriculum"
)

// unknown is the label of a dangling reference.
const unknown = "Unknown"

// BookFilter narrows the catalog. Zero fields match everything.
type BookFilter struct {
	// Search does a case-insensitive match on one of Book.Title, Book.Author or Book.ISBN.
	Search   string           `query:"search"`
	Category string           `query:"category"`
	Level    curriculum.Level `query:"level"`
}

// StudentsByLevel returns the students of `level`; an empty level returns them all.
func StudentsByLevel(d Dataset, level curriculum.Level) []Student {
	if level == "" {
		return d.Students
	}
	students := make([]Student, 0)
	for _, stu := range d.Students {
		if stu.EducationLevel == level {
			students = append(students, stu)
		}
	}
	return students
}

func ClassesByLevel(d Dataset, level curriculum.Level) []Class {
	if level == "" {
		return d.Classes
	}
	classes := make([]Class, 0)
	for _, c := range d.Classes {
		if c.EducationLevel == level {
			classes = append(classes, c)
		}
	}
	return classes
}

// SearchStudents matches `query` against student names, ignoring case.
func SearchStudents(students []Student, query string) []Student {
	query = core.CleanString(query, true /* lower */)
	if query == "" {
		return students
	}
	found := make([]Student, 0)
	for _, stu := range students {
		if strings.Contains(strings.ToLower(stu.Name), query) {
			found = append(found, stu)
		}
	}
	return found
}

var studentOrderings = map[string]func(a, b Student) int{
	"id":   func(a, b Student) int { return cmp.Compare(a.ID, b.ID) },
	"name": func(a, b Student) int { return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) },
	"grade": func(a, b Student) int {
		if c := cmp.Compare(levelRank(a.EducationLevel), levelRank(b.EducationLevel)); c != 0 {
			return c
		}
		return cmp.Compare(a.Grade, b.Grade)
	},
	"educationLevel": func(a, b Student) int {
		return cmp.Compare(levelRank(a.EducationLevel), levelRank(b.EducationLevel))
	},
}

func levelRank(level curriculum.Level) int {
	return slices.Index(curriculum.Levels(), level)
}

// SortStudents returns a sorted copy of `students`. Unknown fields are ignored.
func SortStudents(students []Student, ords []core.Ordering) []Student {
	sorted := slices.Clone(students)
	slices.SortStableFunc(sorted, func(a, b Student) int {
		for _, ord := range ords {
			compare, ok := studentOrderings[ord.Field]
			if !ok {
				continue
			}
			c := compare(a, b)
			if !ord.Ascending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
	return sorted
}

func SearchBooks(d Dataset, filter BookFilter) []Book {
	search := core.CleanString(filter.Search, true /* lower */)
	category := core.CleanString(filter.Category)
	if strings.EqualFold(category, "all") {
		category = ""
	}
	books := make([]Book, 0)
	for _, b := range d.Books {
		if category != "" && b.Category != category {
			continue
		}
		if filter.Level != "" && !b.ServesLevel(filter.Level) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Title), search) &&
			!strings.Contains(strings.ToLower(b.Author), search) &&
			!strings.Contains(strings.ToLower(b.ISBN), search) {
			continue
		}
		books = append(books, b)
	}
	return books
}

// LessonPlansForTeacher returns the plans a teacher owns or that were shared with them.
func LessonPlansForTeacher(d Dataset, teacherID string) []LessonPlan {
	plans := make([]LessonPlan, 0)
	for _, lp := range d.LessonPlans {
		if lp.TeacherID == teacherID || slices.Contains(lp.SharedWith, teacherID) {
			plans = append(plans, lp)
		}
	}
	return plans
}

// TimetableForClass returns the slots of a class ordered by day then period.
// An empty classID returns the whole timetable in that order.
func TimetableForClass(d Dataset, classID string) []TimetableSlot {
	slots := make([]TimetableSlot, 0)
	for _, s := range d.Timetable {
		if classID == "" || s.ClassID == classID {
			slots = append(slots, s)
		}
	}
	dayRank := func(day string) int {
		if i := slices.Index(Days, day); i >= 0 {
			return i
		}
		return len(Days)
	}
	slices.SortStableFunc(slots, func(a, b TimetableSlot) int {
		if da, db := dayRank(a.Day), dayRank(b.Day); da != db {
			return da - db
		}
		return strings.Compare(a.Period, b.Period)
	})
	return slots
}

// Find-or-default lookups

func StudentName(d Dataset, id string) string {
	if i := indexOf(d.Students, id, Student.key); i >= 0 {
		return d.Students[i].Name
	}
	return unknown
}

func TeacherName(d Dataset, id string) string {
	if i := indexOf(d.Teachers, id, Teacher.key); i >= 0 {
		return d.Teachers[i].Name
	}
	return unknown
}

func ClassName(d Dataset, id string) string {
	if i := indexOf(d.Classes, id, Class.key); i >= 0 {
		return d.Classes[i].Name
	}
	return unknown
}

func BookTitle(d Dataset, id string) string {
	if i := indexOf(d.Books, id, Book.key); i >= 0 {
		return d.Books[i].Title
	}
	return unknown
}

// Getters used by the API detail routes. They fail with ErrNotFound.

func (d Dataset) Student(id string) (Student, error) {
	if i := indexOf(d.Students, id, Student.key); i >= 0 {
		return d.Students[i], nil
	}
	return Student{}, ErrNotFound
}

func (d Dataset) Book(id string) (Book, error) {
	if i := indexOf(d.Books, id, Book.key); i >= 0 {
		return d.Books[i], nil
	}
	return Book{}, ErrNotFound
}

func (d Dataset) Exam(id string) (Exam, error) {
	if i := indexOf(d.Exams, id, Exam.key); i >= 0 {
		return d.Exams[i], nil
	}
	return Exam{}, ErrNotFound
}
