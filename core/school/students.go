package school

import (
	"github.com/trezcool/elimu/core/curriculum"
)

type (
	StudentBio struct {
		DOB           string `json:"dob" validate:"required,endate"`
		ParentContact string `json:"parentContact" validate:"required"`
		Email         string `json:"email" validate:"omitempty,email"`
		Address       string `json:"address"`
	}

	NewStudent struct {
		Name             string              `json:"name" validate:"required"`
		BioData          StudentBio          `json:"bioData"`
		ClassID          string              `json:"classId"`
		Grade            string              `json:"grade" validate:"required"`
		Stream           string              `json:"stream"`
		EducationLevel   curriculum.Level    `json:"educationLevel" validate:"required,edulevel"`
		Subjects         []string            `json:"subjects"`
		OptionalSubjects []string            `json:"optionalSubjects"`
		CareerPathway    *curriculum.Pathway `json:"careerPathway"`
	}

	// UpdateStudent carries the editable fields of a student; bioData.address is kept as is.
	UpdateStudent NewStudent
)

func (ns NewStudent) level() curriculum.Level         { return ns.EducationLevel }
func (us UpdateStudent) level() curriculum.Level      { return us.EducationLevel }
func (ns NewStudent) grade() string                   { return ns.Grade }
func (us UpdateStudent) grade() string                { return us.Grade }
func (ns NewStudent) pathway() *curriculum.Pathway    { return ns.CareerPathway }
func (us UpdateStudent) pathway() *curriculum.Pathway { return us.CareerPathway }

// AddStudent enrolls a new student with a blank scorecard, no attendance and a zero balance.
func (d Dataset) AddStudent(ns NewStudent) (Student, []Replacement) {
	id, seq := d.nextID(string(Students))
	stu := Student{
		ID:   id,
		Name: ns.Name,
		BioData: BioData{
			DOB:           ns.BioData.DOB,
			ParentContact: ns.BioData.ParentContact,
			Email:         ns.BioData.Email,
			Address:       ns.BioData.Address,
		},
		ClassID:          ns.ClassID,
		Grade:            ns.Grade,
		Stream:           ns.Stream,
		EducationLevel:   ns.EducationLevel,
		Subjects:         orEmpty(ns.Subjects),
		OptionalSubjects: ns.OptionalSubjects,
		CareerPathway:    seniorPathway(ns.EducationLevel, ns.CareerPathway),
		Attendance:       []AttendanceRecord{},
		Fees:             StudentFees{Payments: []Payment{}},
		Messages:         []string{},
		Extracurriculars: []string{},
	}
	return stu, []Replacement{ReplaceStudents(appended(d.Students, stu)), seq}
}

// UpdateStudent replaces the editable fields of student `id`.
// Attendance, fees, messages and competencies are preserved.
func (d Dataset) UpdateStudent(id string, us UpdateStudent) (Student, []Replacement, error) {
	i := indexOf(d.Students, id, Student.key)
	if i < 0 {
		return Student{}, nil, ErrNotFound
	}
	stu := d.Students[i]
	stu.Name = us.Name
	stu.Grade = us.Grade
	stu.Stream = us.Stream
	stu.EducationLevel = us.EducationLevel
	stu.Subjects = orEmpty(us.Subjects)
	stu.OptionalSubjects = us.OptionalSubjects
	stu.CareerPathway = seniorPathway(us.EducationLevel, us.CareerPathway)
	stu.ClassID = us.ClassID
	stu.BioData.DOB = us.BioData.DOB
	stu.BioData.ParentContact = us.BioData.ParentContact
	stu.BioData.Email = us.BioData.Email
	return stu, []Replacement{ReplaceStudents(replaced(d.Students, i, stu))}, nil
}

// DeleteStudent removes student `id`. Fees, classes, reports and loans keep referencing it.
func (d Dataset) DeleteStudent(id string) ([]Replacement, error) {
	i := indexOf(d.Students, id, Student.key)
	if i < 0 {
		return nil, ErrNotFound
	}
	students := make([]Student, 0, len(d.Students)-1)
	students = append(students, d.Students[:i]...)
	students = append(students, d.Students[i+1:]...)
	return []Replacement{ReplaceStudents(students)}, nil
}

// seniorPathway drops the career pathway of non Senior Secondary students.
func seniorPathway(level curriculum.Level, p *curriculum.Pathway) *curriculum.Pathway {
	if p == nil || level != curriculum.SeniorSecondary {
		return nil
	}
	pathway := *p
	return &pathway
}

func orEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return append([]string(nil), ss...)
}
