package school

import (
	"math"
	"slices"

	"github.com/trezcool/elimu/core/curriculum"
)

type (
	// AttendanceSummary counts a class' attendance on one date.
	AttendanceSummary struct {
		ClassID  string `json:"classId"`
		Date     string `json:"date"`
		Present  int    `json:"present"`
		Absent   int    `json:"absent"`
		Late     int    `json:"late"`
		Unmarked int    `json:"unmarked"`
		Rate     int    `json:"rate"`
	}

	FeeSummary struct {
		Pending     float64 `json:"pending"`
		Collected   float64 `json:"collected"`
		Outstanding float64 `json:"outstanding"`
	}

	LibrarySummary struct {
		Titles      int `json:"titles"`
		TotalCopies int `json:"totalCopies"`
		Available   int `json:"available"`
		OnLoan      int `json:"onLoan"`
		Overdue     int `json:"overdue"`
	}

	LevelCount struct {
		Level curriculum.Level `json:"level"`
		Count int              `json:"count"`
	}

	Dashboard struct {
		Students         int          `json:"students"`
		StudentsPerLevel []LevelCount `json:"studentsPerLevel"`
		Classes          int          `json:"classes"`
		Subjects         int          `json:"subjects"`
		Teachers         int          `json:"teachers"`
		PendingFees      float64      `json:"pendingFees"`
		Events           int          `json:"events"`
		Competencies     Competencies `json:"competencies"`
	}

	Portal struct {
		Student        Student    `json:"student"`
		ClassName      string     `json:"className"`
		AttendanceRate int        `json:"attendanceRate"`
		Average        int        `json:"average"`
		Balance        float64    `json:"balance"`
		Messages       []Message  `json:"messages"`
		Reports        []Report   `json:"reports"`
		Loans          []BookLoan `json:"loans"`
	}
)

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// AttendanceRate is the rounded share of `present` records, in percent. No records rate 0.
func AttendanceRate(records []AttendanceRecord) int {
	var present int
	for _, r := range records {
		if r.Status == Present {
			present++
		}
	}
	return percent(present, len(records))
}

// ClassAttendance summarizes the attendance of the students of `classID` on `date`.
func ClassAttendance(d Dataset, classID, date string) AttendanceSummary {
	sum := AttendanceSummary{ClassID: classID, Date: date}
	var total int
	for _, stu := range d.Students {
		if stu.ClassID != classID {
			continue
		}
		total++
		status := Unmarked
		for _, r := range stu.Attendance {
			if r.Date == date {
				status = r.Status
			}
		}
		switch status {
		case Present:
			sum.Present++
		case Absent:
			sum.Absent++
		case Late:
			sum.Late++
		default:
			sum.Unmarked++
		}
	}
	sum.Rate = percent(sum.Present, total)
	return sum
}

// Unmarked is the status of a student with no record for a date. It is never stored.
const Unmarked AttendanceStatus = ""

// Average is the mean of the seven scores.
func (c Competencies) Average() float64 {
	var total int
	scores := c.Scores()
	for _, s := range scores {
		total += s
	}
	return float64(total) / float64(len(scores))
}

// CompetencyAverage is the rounded mean of the seven scores.
func CompetencyAverage(c Competencies) int {
	return int(math.Round(c.Average()))
}

// AverageCompetencies returns the per-competency rounded mean over `students`.
func AverageCompetencies(students []Student) Competencies {
	if len(students) == 0 {
		return Competencies{}
	}
	var sums [7]int
	for _, stu := range students {
		for i, s := range stu.Competencies.Scores() {
			sums[i] += s
		}
	}
	avg := func(i int) int {
		return int(math.Round(float64(sums[i]) / float64(len(students))))
	}
	return Competencies{
		CriticalThinking: avg(0),
		Creativity:       avg(1),
		Communication:    avg(2),
		Collaboration:    avg(3),
		Citizenship:      avg(4),
		DigitalLiteracy:  avg(5),
		LearningToLearn:  avg(6),
	}
}

// FeeTotals sums unpaid fees and collected payments. Both come from different collections and need not agree.
func FeeTotals(d Dataset) FeeSummary {
	var sum FeeSummary
	for _, f := range d.Fees {
		if !f.Paid {
			sum.Pending += f.Amount
		}
	}
	for _, stu := range d.Students {
		sum.Outstanding += stu.Fees.Balance
		for _, p := range stu.Fees.Payments {
			sum.Collected += p.Amount
		}
	}
	return sum
}

func LibraryStats(d Dataset) LibrarySummary {
	sum := LibrarySummary{Titles: len(d.Books)}
	for _, b := range d.Books {
		sum.TotalCopies += b.Quantity
		sum.Available += b.Available
	}
	for _, l := range d.BookLoans {
		if l.Status.Active() {
			sum.OnLoan++
		}
		if l.Status == LoanOverdue {
			sum.Overdue++
		}
	}
	return sum
}

// ActiveLoans returns the loans still out, overdue ones included.
func ActiveLoans(d Dataset) []BookLoan {
	loans := make([]BookLoan, 0)
	for _, l := range d.BookLoans {
		if l.Status.Active() {
			loans = append(loans, l)
		}
	}
	return loans
}

func OverdueLoans(d Dataset) []BookLoan {
	loans := make([]BookLoan, 0)
	for _, l := range d.BookLoans {
		if l.Status == LoanOverdue {
			loans = append(loans, l)
		}
	}
	return loans
}

// BookCategories lists the distinct categories in catalog order.
func BookCategories(d Dataset) []string {
	seen := make(map[string]bool)
	cats := make([]string, 0)
	for _, b := range d.Books {
		if !seen[b.Category] {
			seen[b.Category] = true
			cats = append(cats, b.Category)
		}
	}
	return cats
}

// PayrollTotal sums the stored net pay of every staff member.
func PayrollTotal(d Dataset) float64 {
	var total float64
	for _, st := range d.Staff {
		total += st.Payroll.NetPay
	}
	return total
}

// DashboardStats builds the admin dashboard. An empty `level` means all levels
// and only narrows the class and subject counts.
func DashboardStats(d Dataset, level curriculum.Level) Dashboard {
	classes := ClassesByLevel(d, level)
	var subjects int
	for _, c := range classes {
		subjects += len(c.Subjects)
	}
	perLevel := make(map[curriculum.Level]int)
	for _, stu := range d.Students {
		perLevel[stu.EducationLevel]++
	}
	counts := make([]LevelCount, 0, len(perLevel))
	for _, l := range curriculum.Levels() {
		counts = append(counts, LevelCount{Level: l, Count: perLevel[l]})
	}
	return Dashboard{
		Students:         len(d.Students),
		StudentsPerLevel: counts,
		Classes:          len(classes),
		Subjects:         subjects,
		Teachers:         len(d.Teachers),
		PendingFees:      FeeTotals(d).Pending,
		Events:           len(d.Events),
		Competencies:     AverageCompetencies(d.Students),
	}
}

// StudentPortal gathers what a parent or the student sees. It fails with ErrNotFound for unknown students.
func StudentPortal(d Dataset, studentID string) (Portal, error) {
	i := indexOf(d.Students, studentID, Student.key)
	if i < 0 {
		return Portal{}, ErrNotFound
	}
	stu := d.Students[i]
	portal := Portal{
		Student:        stu,
		ClassName:      ClassName(d, stu.ClassID),
		AttendanceRate: AttendanceRate(stu.Attendance),
		Average:        CompetencyAverage(stu.Competencies),
		Balance:        stu.Fees.Balance,
		Messages:       make([]Message, 0, len(stu.Messages)),
		Reports:        make([]Report, 0),
		Loans:          make([]BookLoan, 0),
	}
	for _, id := range stu.Messages {
		if j := indexOf(d.Messages, id, Message.key); j >= 0 {
			portal.Messages = append(portal.Messages, d.Messages[j])
		}
	}
	for _, r := range d.Reports {
		if r.StudentID == studentID {
			portal.Reports = append(portal.Reports, r)
		}
	}
	// latest report first
	slices.Reverse(portal.Reports)
	for _, l := range d.BookLoans {
		if l.BorrowerType == BorrowerStudent && l.BorrowerID == studentID {
			portal.Loans = append(portal.Loans, l)
		}
	}
	return portal, nil
}
