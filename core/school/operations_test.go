package school

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/curriculum"
)

func assertBooksInBounds(t *testing.T, d Dataset) {
	t.Helper()
	for _, b := range d.Books {
		if b.Available < 0 || b.Available > b.Quantity {
			t.Errorf("book %s: available = %d, quantity = %d", b.ID, b.Available, b.Quantity)
		}
	}
}

func TestAddStudent(t *testing.T) {
	freezeClock(t)
	d := Seed()
	stem := curriculum.STEM

	stu, repls := d.AddStudent(NewStudent{
		Name:           "Grace Atieno",
		BioData:        StudentBio{DOB: "02/02/2014", ParentContact: "+254711000111", Address: "Thika"},
		ClassID:        "c1",
		Grade:          "Grade 6",
		Stream:         "A",
		EducationLevel: curriculum.UpperPrimary,
		Subjects:       []string{"English"},
		CareerPathway:  &stem,
	})
	d = d.With(repls...)

	assert.Equal(t, "s6", stu.ID)
	assert.Equal(t, Competencies{}, stu.Competencies)
	assert.Empty(t, stu.Attendance)
	assert.NotNil(t, stu.Attendance)
	assert.Zero(t, stu.Fees.Balance)
	assert.Empty(t, stu.Fees.Payments)
	assert.Empty(t, stu.Messages)
	assert.Empty(t, stu.Extracurriculars)
	assert.Nil(t, stu.CareerPathway, "only senior students follow a pathway")
	assert.Equal(t, "Thika", stu.BioData.Address)
	assert.Equal(t, stu, findStudent(t, d, "s6"))
}

func TestUpdateStudent(t *testing.T) {
	d := Seed()
	orig := findStudent(t, d, "s1")

	stu, repls, err := d.UpdateStudent("s1", UpdateStudent{
		Name:           "Amina W. Mwangi",
		BioData:        StudentBio{DOB: "15/03/2012", ParentContact: "+254799999999", Email: "amina.parent@example.com", Address: "ignored"},
		ClassID:        "c2",
		Grade:          "Grade 7",
		Stream:         "B",
		EducationLevel: curriculum.JuniorSecondary,
		Subjects:       []string{"Mathematics"},
	})
	require.NoError(t, err)
	d = d.With(repls...)

	assert.Equal(t, "s1", stu.ID)
	assert.Equal(t, "Amina W. Mwangi", stu.Name)
	assert.Equal(t, "+254799999999", stu.BioData.ParentContact)
	assert.Equal(t, "Nairobi", stu.BioData.Address, "address is not editable")
	assert.Equal(t, orig.Attendance, stu.Attendance)
	assert.Equal(t, orig.Fees, stu.Fees)
	assert.Equal(t, orig.Competencies, stu.Competencies)
	assert.Equal(t, stu, findStudent(t, d, "s1"))

	_, _, err = d.UpdateStudent("s99", UpdateStudent{})
	assert.Equal(t, ErrNotFound, err)
}

func TestDeleteStudentDoesNotCascade(t *testing.T) {
	d := Seed()
	repls, err := d.DeleteStudent("s1")
	require.NoError(t, err)
	next := d.With(repls...)

	assert.Len(t, next.Students, 4)
	_, err = next.Student("s1")
	assert.Equal(t, ErrNotFound, err)

	// dangling references are left alone
	assert.Equal(t, d.Fees, next.Fees)
	assert.Equal(t, d.Classes, next.Classes)
	assert.Equal(t, d.Messages, next.Messages)
	assert.Equal(t, d.BookLoans, next.BookLoans)
	assert.Equal(t, "s1", next.Fees[0].StudentID)
	assert.Equal(t, "Unknown", StudentName(next, "s1"))

	_, err = next.DeleteStudent("s1")
	assert.Equal(t, ErrNotFound, err)
}

func TestRecordPayment(t *testing.T) {
	freezeClock(t)
	tests := []struct {
		name        string
		payment     NewPayment
		wantBalance float64
		wantPaid    bool
		wantErr     error
	}{
		{name: "full payment", payment: NewPayment{FeeID: "f1", Amount: 15000, Method: "M-PESA"}, wantBalance: 0, wantPaid: true},
		{name: "partial payment", payment: NewPayment{FeeID: "f1", Amount: 5000, Method: "Cash"}, wantBalance: 10000},
		{name: "overpayment", payment: NewPayment{FeeID: "f1", Amount: 20000, Method: "Bank"}, wantBalance: -5000, wantPaid: true},
		{name: "unknown fee", payment: NewPayment{FeeID: "f99", Amount: 100, Method: "Cash"}, wantErr: ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Seed()
			pmt, repls, err := d.RecordPayment(tt.payment)
			if err != tt.wantErr {
				t.Fatalf("RecordPayment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			next := d.With(repls...)
			stu := findStudent(t, next, "s1")

			assert.Equal(t, tt.wantBalance, stu.Fees.Balance)
			assert.Len(t, stu.Fees.Payments, 2)
			assert.Equal(t, pmt, stu.Fees.Payments[1])
			assert.Equal(t, "p6", pmt.ID)
			assert.Equal(t, "15/11/2025", pmt.Date)
			assert.Equal(t, tt.wantPaid, findFee(next, "f1").Paid)

			// the snapshot the payment was computed from is untouched
			assert.Equal(t, float64(15000), findStudent(t, d, "s1").Fees.Balance)
			assert.False(t, findFee(d, "f1").Paid)
		})
	}
}

func TestRecordPaymentForDeletedStudent(t *testing.T) {
	d := Seed()
	repls, _ := d.DeleteStudent("s2")
	d = d.With(repls...)

	_, repls, err := d.RecordPayment(NewPayment{FeeID: "f2", Amount: 20000, Method: "Cash"})
	assert.Equal(t, ErrNotFound, err)
	assert.Nil(t, repls)
}

func TestMarkAttendance(t *testing.T) {
	d := Seed()

	// 13/11/2025 is already marked late
	repls, err := d.MarkAttendance(MarkAttendance{StudentID: "s1", Date: "13/11/2025", Status: Present})
	require.NoError(t, err)
	d = d.With(repls...)
	repls, err = d.MarkAttendance(MarkAttendance{StudentID: "s1", Date: "17/11/2025", Status: Absent})
	require.NoError(t, err)
	d = d.With(repls...)

	stu := findStudent(t, d, "s1")
	assert.Len(t, stu.Attendance, 6)
	byDate := make(map[string]AttendanceStatus)
	for _, rec := range stu.Attendance {
		_, dup := byDate[rec.Date]
		assert.False(t, dup, "one record per date")
		byDate[rec.Date] = rec.Status
	}
	assert.Equal(t, Present, byDate["13/11/2025"])
	assert.Equal(t, Absent, byDate["17/11/2025"])
	assert.Equal(t, AttendanceRecord{Date: "17/11/2025", Status: Absent}, stu.Attendance[5])

	_, err = d.MarkAttendance(MarkAttendance{StudentID: "s99", Date: "17/11/2025", Status: Absent})
	assert.Equal(t, ErrNotFound, err)
}

func TestMarkClassPresent(t *testing.T) {
	d := Seed()
	marked, repls, err := d.MarkClassPresent(MarkClassPresent{ClassID: "c2", Date: "14/11/2025"})
	require.NoError(t, err)
	d = d.With(repls...)

	assert.Equal(t, 1, marked)
	s2 := findStudent(t, d, "s2")
	assert.Len(t, s2.Attendance, 5)
	assert.Equal(t, AttendanceRecord{Date: "14/11/2025", Status: Present}, s2.Attendance[4])
	assert.Equal(t, Seed().Students[0], findStudent(t, d, "s1"), "other classes are untouched")

	_, _, err = d.MarkClassPresent(MarkClassPresent{ClassID: "c99", Date: "14/11/2025"})
	assert.Equal(t, ErrNotFound, err)
}

func TestUpdateCompetencies(t *testing.T) {
	d := Seed()
	scores := Competencies{50, 60, 70, 80, 90, 100, 0}
	repls, err := d.UpdateCompetencies("s3", scores)
	require.NoError(t, err)
	next := d.With(repls...)

	assert.Equal(t, scores, findStudent(t, next, "s3").Competencies)
	// reports keep their snapshot
	assert.Equal(t, findStudent(t, d, "s3").Competencies, next.Reports[1].Competencies)
}

func TestIssueAndReturnLoan(t *testing.T) {
	freezeClock(t)
	d := Seed()

	loan, repls, err := d.IssueLoan(NewLoan{
		BookID: "b1", BorrowerID: "s2", BorrowerType: BorrowerStudent, BorrowerName: "Brian Omondi", DateDue: "01/12/2025",
	})
	require.NoError(t, err)
	d = d.With(repls...)
	assertBooksInBounds(t, d)

	b1, _ := d.Book("b1")
	assert.Equal(t, 34, b1.Available)
	assert.Equal(t, "bl6", loan.ID)
	assert.Equal(t, LoanIssued, loan.Status)
	assert.Equal(t, "15/11/2025", loan.DateIssued)
	assert.Equal(t, loan, findLoan(d, "bl6"))

	returned, repls, err := d.ReturnLoan(loan.ID)
	require.NoError(t, err)
	d = d.With(repls...)
	assertBooksInBounds(t, d)

	b1, _ = d.Book("b1")
	assert.Equal(t, 35, b1.Available)
	assert.Equal(t, LoanReturned, returned.Status)
	assert.Equal(t, "15/11/2025", returned.DateReturned)

	// a second return must not credit the book again
	_, repls, err = d.ReturnLoan(loan.ID)
	assert.Equal(t, ErrAlreadyReturned, err)
	assert.True(t, core.IsRuleError(err))
	assert.Nil(t, repls)

	_, _, err = d.ReturnLoan("bl99")
	assert.Equal(t, ErrNotFound, err)
}

func TestIssueLoanUnavailable(t *testing.T) {
	d := Seed()
	d = d.With(ReplaceBooks([]Book{{ID: "b1", Title: "Out", Quantity: 2, Available: 0}}))

	tests := []struct {
		name   string
		bookID string
	}{
		{name: "no copy left", bookID: "b1"},
		{name: "unknown book", bookID: "b42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, repls, err := d.IssueLoan(NewLoan{BookID: tt.bookID, BorrowerID: "s1", BorrowerType: BorrowerStudent, BorrowerName: "Amina", DateDue: "01/12/2025"})
			if err != ErrBookUnavailable {
				t.Errorf("IssueLoan() error = %v, wantErr %v", err, ErrBookUnavailable)
			}
			assert.Nil(t, repls)
		})
	}
}

func TestReturnOverdueLoanCapsAvailability(t *testing.T) {
	freezeClock(t)
	d := Seed()
	// the book of bl3 has every copy on the shelf already
	books := append([]Book(nil), d.Books...)
	books[3].Available = books[3].Quantity
	d = d.With(ReplaceBooks(books))

	loan, repls, err := d.ReturnLoan("bl3")
	require.NoError(t, err)
	d = d.With(repls...)

	assert.Equal(t, LoanReturned, loan.Status)
	assert.Equal(t, float64(50), loan.Fine, "fines are kept")
	assertBooksInBounds(t, d)
}

func TestAddBook(t *testing.T) {
	d := Seed()
	book, repls := d.AddBook(NewBook{Title: "Blossoms of the Savannah", Author: "H. R. Ole Kulet", ISBN: "978-9966-25-453-7", Category: "Literature", Quantity: 12})
	d = d.With(repls...)

	assert.Equal(t, "b9", book.ID)
	assert.Equal(t, 12, book.Available)
	assert.Equal(t, []curriculum.Level{curriculum.UpperPrimary}, book.EducationLevel)
	assert.Len(t, d.Books, 9)
	assertBooksInBounds(t, d)
}

func TestSendMessage(t *testing.T) {
	freezeClock(t)
	d := Seed()
	msg, repls := d.SendMessage(NewMessage{Type: SMS, Recipients: " +254712345678, ,+254723456789 ", Content: "School closes at noon"})
	d = d.With(repls...)

	assert.Equal(t, Message{
		ID:        "m4",
		To:        []string{"+254712345678", "+254723456789"},
		From:      "school",
		Content:   "School closes at noon",
		Type:      SMS,
		Timestamp: "15/11/2025 10:30",
	}, msg)
	assert.Len(t, d.Messages, 4)

	repls, err := d.MarkMessageRead("m4")
	require.NoError(t, err)
	d = d.With(repls...)
	assert.True(t, d.Messages[3].Read)

	repls, err = d.MarkMessageRead("m4")
	assert.NoError(t, err)
	assert.Nil(t, repls, "already read")
}

func TestAppendOperations(t *testing.T) {
	freezeClock(t)
	d := Seed()

	lp, repls := d.AddLessonPlan(NewLessonPlan{Title: "Fractions", Scheme: "Halves and quarters", AlignedCBC: true, TeacherID: "t1", Subject: "Mathematics", EducationLevel: curriculum.UpperPrimary})
	d = d.With(repls...)
	assert.Equal(t, "lp5", lp.ID)
	assert.Equal(t, []string{}, lp.SharedWith)
	assert.Equal(t, "15/11/2025", lp.CreatedAt)

	// clashing slots are accepted
	slot, repls := d.AddTimetableSlot(NewTimetableSlot{Day: "Monday", Period: "1", Subject: "Kiswahili", TeacherID: "t2", ClassID: "c1", Time: "08:00-09:00"})
	d = d.With(repls...)
	assert.Equal(t, "tt9", slot.ID)
	assert.Len(t, TimetableForClass(d, "c1"), 4)

	ev, repls := d.AddEvent(NewEvent{Title: "Prize Giving", Date: "28/11/2025", Type: "School Event"})
	d = d.With(repls...)
	assert.Equal(t, "ev5", ev.ID)

	st, repls := d.AddStaff(NewStaff{Name: "Mr. Tom Mboya", Role: "Driver", Salary: 40000, Deductions: 4000})
	d = d.With(repls...)
	assert.Equal(t, "st4", st.ID)
	assert.Equal(t, float64(36000), st.Payroll.NetPay)
	assert.Equal(t, 20, st.LeaveBalance)

	exam, repls := d.AddExam(NewExam{Name: "Kiswahili CAT", Date: "01/12/2025", ClassID: "c1", Subject: "Kiswahili"})
	d = d.With(repls...)
	assert.Equal(t, "e4", exam.ID)
	assert.Empty(t, exam.Schedule)

	exam, repls, err := d.RecordExamMarks("e4", ExamMarks{StudentID: "s1", Marks: 70}, ExamMarks{StudentID: "s5", Marks: 55})
	require.NoError(t, err)
	d = d.With(repls...)
	exam, repls, err = d.RecordExamMarks("e4", ExamMarks{StudentID: "s1", Marks: 75})
	require.NoError(t, err)
	d = d.With(repls...)
	assert.Equal(t, []ExamResult{{StudentID: "s1", Marks: 75}, {StudentID: "s5", Marks: 55}}, exam.Schedule)
	got, _ := d.Exam("e4")
	assert.Equal(t, exam, got)

	_, _, err = d.RecordExamMarks("e99", ExamMarks{StudentID: "s1", Marks: 1})
	assert.Equal(t, ErrNotFound, err)

	rep, repls, err := d.GenerateReport(NewReport{StudentID: "s2", Term: "Term 3 2025", HolisticNotes: "Keeps improving."})
	require.NoError(t, err)
	d = d.With(repls...)
	assert.Equal(t, "r3", rep.ID)
	assert.Equal(t, findStudent(t, d, "s2").Competencies, rep.Competencies)
	assert.Equal(t, "15/11/2025", rep.GeneratedAt)

	_, _, err = d.GenerateReport(NewReport{StudentID: "s99", Term: "Term 3 2025"})
	assert.Equal(t, ErrNotFound, err)
}
