package school

import (
	"github.com/trezcool/elimu/core/curriculum"
)

type (
	AttendanceStatus string
	MessageType      string
	LoanStatus       string
	BorrowerType     string
	Role             string
)

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"

	SMS   MessageType = "SMS"
	Email MessageType = "Email"

	LoanIssued   LoanStatus = "issued"
	LoanReturned LoanStatus = "returned"
	LoanOverdue  LoanStatus = "overdue"

	BorrowerStudent BorrowerType = "Student"
	BorrowerTeacher BorrowerType = "Teacher"
	BorrowerStaff   BorrowerType = "Staff"

	RoleAdmin   Role = "Admin"
	RoleTeacher Role = "Teacher"
	RoleParent  Role = "Parent"
	RoleStudent Role = "Student"
)

// Roles lists the roles a session can be opened with.
var Roles = []Role{RoleAdmin, RoleTeacher, RoleParent, RoleStudent}

func (s AttendanceStatus) Valid() bool {
	switch s {
	case Present, Absent, Late:
		return true
	}
	return false
}

func (t MessageType) Valid() bool { return t == SMS || t == Email }

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanIssued, LoanReturned, LoanOverdue:
		return true
	}
	return false
}

// Active reports whether the book is still out.
func (s LoanStatus) Active() bool { return s == LoanIssued || s == LoanOverdue }

func (t BorrowerType) Valid() bool {
	switch t {
	case BorrowerStudent, BorrowerTeacher, BorrowerStaff:
		return true
	}
	return false
}

func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the authentication state: who is acting and as what.
type Session struct {
	Role   Role   `json:"role"`
	UserID string `json:"userId,omitempty"`
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

type Competencies struct {
	CriticalThinking int `json:"criticalThinking" validate:"min=0,max=100"`
	Creativity       int `json:"creativity" validate:"min=0,max=100"`
	Communication    int `json:"communication" validate:"min=0,max=100"`
	Collaboration    int `json:"collaboration" validate:"min=0,max=100"`
	Citizenship      int `json:"citizenship" validate:"min=0,max=100"`
	DigitalLiteracy  int `json:"digitalLiteracy" validate:"min=0,max=100"`
	LearningToLearn  int `json:"learningToLearn" validate:"min=0,max=100"`
}

// CompetencyNames are the scorecard fields in display order.
var CompetencyNames = []string{
	"criticalThinking", "creativity", "communication", "collaboration",
	"citizenship", "digitalLiteracy", "learningToLearn",
}

// Scores returns the seven scores in CompetencyNames order.
func (c Competencies) Scores() []int {
	return []int{
		c.CriticalThinking, c.Creativity, c.Communication, c.Collaboration,
		c.Citizenship, c.DigitalLiteracy, c.LearningToLearn,
	}
}

type BioData struct {
	DOB           string `json:"dob"`
	ParentContact string `json:"parentContact"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
}

type AttendanceRecord struct {
	Date   string           `json:"date"`
	Status AttendanceStatus `json:"status"`
}

type Payment struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Method string  `json:"method"`
}

type StudentFees struct {
	Balance  float64   `json:"balance"`
	Payments []Payment `json:"payments"`
}

type Student struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	BioData          BioData             `json:"bioData"`
	ClassID          string              `json:"classId"`
	Grade            string              `json:"grade"`
	Stream           string              `json:"stream"`
	EducationLevel   curriculum.Level    `json:"educationLevel"`
	Subjects         []string            `json:"subjects"`
	OptionalSubjects []string            `json:"optionalSubjects,omitempty"`
	CareerPathway    *curriculum.Pathway `json:"careerPathway,omitempty"`
	Competencies     Competencies        `json:"competencies"`
	Attendance       []AttendanceRecord  `json:"attendance"`
	Fees             StudentFees         `json:"fees"`
	Messages         []string            `json:"messages"`
	Extracurriculars []string            `json:"extracurriculars,omitempty"`
}

type Teacher struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Subjects        []string           `json:"subjects"`
	EducationLevels []curriculum.Level `json:"educationLevels"`
	LessonPlans     []string           `json:"lessonPlans"`
	Email           string             `json:"email,omitempty"`
	Phone           string             `json:"phone,omitempty"`
}

type Class struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Grade          string           `json:"grade"`
	Stream         string           `json:"stream"`
	EducationLevel curriculum.Level `json:"educationLevel"`
	Students       []string         `json:"students"`
	Subjects       []string         `json:"subjects"`
	Timetable      []string         `json:"timetable"`
	TeacherID      string           `json:"teacherId,omitempty"`
}

type LessonPlan struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Scheme         string           `json:"scheme"`
	AlignedCBC     bool             `json:"alignedCBC"`
	SharedWith     []string         `json:"sharedWith"`
	TeacherID      string           `json:"teacherId"`
	Subject        string           `json:"subject"`
	EducationLevel curriculum.Level `json:"educationLevel"`
	CreatedAt      string           `json:"createdAt"`
}

type TimetableSlot struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	Period    string `json:"period"`
	Subject   string `json:"subject"`
	TeacherID string `json:"teacherId"`
	ClassID   string `json:"classId"`
	Time      string `json:"time"`
}

type ExamResult struct {
	StudentID string  `json:"studentId"`
	Marks     float64 `json:"marks"`
}

type Exam struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Date     string       `json:"date"`
	ClassID  string       `json:"classId"`
	Subject  string       `json:"subject"`
	Schedule []ExamResult `json:"schedule"`
}

type Fee struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"studentId"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Paid        bool    `json:"paid"`
	Description string  `json:"description"`
}

type Payroll struct {
	Salary     float64 `json:"salary"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `json:"netPay"` // snapshot taken when the record is written
}

type Staff struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Payroll      Payroll `json:"payroll"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	LeaveBalance int     `json:"leaveBalance"`
}

type Message struct {
	ID        string      `json:"id"`
	To        []string    `json:"to"`
	From      string      `json:"from"`
	Content   string      `json:"content"`
	Type      MessageType `json:"type"`
	Timestamp string      `json:"timestamp"`
	Read      bool        `json:"read"`
}

type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Report is a point-in-time copy of a student's scorecard with narrative notes.
type Report struct {
	ID            string       `json:"id"`
	StudentID     string       `json:"studentId"`
	Competencies  Competencies `json:"competencies"`
	HolisticNotes string       `json:"holisticNotes"`
	Term          string       `json:"term"`
	GeneratedAt   string       `json:"generatedAt"`
}

type Book struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Author         string             `json:"author"`
	ISBN           string             `json:"isbn"`
	Category       string             `json:"category"`
	EducationLevel []curriculum.Level `json:"educationLevel"`
	Quantity       int                `json:"quantity"`
	Available      int                `json:"available"`
	Publisher      string             `json:"publisher,omitempty"`
	YearPublished  string             `json:"yearPublished,omitempty"`
	Description    string             `json:"description,omitempty"`
	CoverImage     string             `json:"coverImage,omitempty"`
}

// ServesLevel reports whether the book is catalogued for `level`.
func (b Book) ServesLevel(level curriculum.Level) bool {
	for _, l := range b.EducationLevel {
		if l == level {
			return true
		}
	}
	return false
}

type BookLoan struct {
	ID           string       `json:"id"`
	BookID       string       `json:"bookId"`
	BorrowerID   string       `json:"borrowerId"`
	BorrowerType BorrowerType `json:"borrowerType"`
	BorrowerName string       `json:"borrowerName"`
	DateIssued   string       `json:"dateIssued"`
	DateDue      string       `json:"dateDue"`
	DateReturned string       `json:"dateReturned,omitempty"`
	Status       LoanStatus   `json:"status"` // never moved to overdue by a clock
	Fine         float64      `json:"fine,omitempty"`
}
