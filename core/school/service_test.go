package school

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/elimu/core/curriculum"
)

func TestServiceValidation(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	stem := curriculum.STEM
	validStudent := NewStudent{
		Name:           "Grace Atieno",
		BioData:        StudentBio{DOB: "02/02/2014", ParentContact: "+254711000111"},
		Grade:          "Grade 11",
		EducationLevel: curriculum.SeniorSecondary,
		CareerPathway:  &stem,
	}

	tests := []struct {
		name       string
		call       func() error
		wantFields map[string]string
	}{
		{
			name: "valid student",
			call: func() error { _, err := svc.AddStudent(ctx, validStudent); return err },
		},
		{
			name: "missing fields",
			call: func() error { _, err := svc.AddStudent(ctx, NewStudent{}); return err },
			wantFields: map[string]string{
				"name": "required", "grade": "required", "educationLevel": "required",
				"dob": "required", "parentContact": "required",
			},
		},
		{
			name: "grade outside level",
			call: func() error {
				ns := validStudent
				ns.Grade = "Grade 3"
				_, err := svc.AddStudent(ctx, ns)
				return err
			},
			wantFields: map[string]string{"grade": "grade_for_level"},
		},
		{
			name: "pathway below senior",
			call: func() error {
				us := UpdateStudent(validStudent)
				us.Grade = "Grade 8"
				us.EducationLevel = curriculum.JuniorSecondary
				_, err := svc.UpdateStudent(ctx, "s2", us)
				return err
			},
			wantFields: map[string]string{"careerPathway": "pathway"},
		},
		{
			name: "bad date and level",
			call: func() error {
				ns := validStudent
				ns.BioData.DOB = "2014-02-02"
				ns.EducationLevel = "College"
				ns.CareerPathway = nil
				_, err := svc.AddStudent(ctx, ns)
				return err
			},
			wantFields: map[string]string{"dob": "endate", "educationLevel": "edulevel"},
		},
		{
			name: "scores out of range",
			call: func() error {
				return svc.UpdateCompetencies(ctx, "s1", Competencies{CriticalThinking: 101, Creativity: -1})
			},
			wantFields: map[string]string{"criticalThinking": "max", "creativity": "min"},
		},
		{
			name: "non positive payment",
			call: func() error {
				_, err := svc.RecordPayment(ctx, NewPayment{FeeID: "f1", Amount: 0, Method: "Cash"})
				return err
			},
			wantFields: map[string]string{"amount": "gt"},
		},
		{
			name: "unknown attendance status",
			call: func() error {
				return svc.MarkAttendance(ctx, MarkAttendance{StudentID: "s1", Date: "17/11/2025", Status: "sick"})
			},
			wantFields: map[string]string{"status": "attendance"},
		},
		{
			name: "blank recipients",
			call: func() error {
				_, err := svc.SendMessage(ctx, NewMessage{Type: "Fax", Recipients: " , ", Content: "hi"})
				return err
			},
			wantFields: map[string]string{"type": "msgtype", "recipients": "recipients"},
		},
		{
			name: "bad borrower",
			call: func() error {
				_, err := svc.IssueLoan(ctx, NewLoan{BookID: "b1", BorrowerID: "x", BorrowerType: "Alumni", BorrowerName: "X", DateDue: "01/12/2025"})
				return err
			},
			wantFields: map[string]string{"borrowerType": "borrower"},
		},
		{
			name: "bad timetable slot",
			call: func() error {
				_, err := svc.AddTimetableSlot(ctx, NewTimetableSlot{Day: "Sunday", Period: "9", Subject: "Art", TeacherID: "t1", ClassID: "c1", Time: "8am"})
				return err
			},
			wantFields: map[string]string{"day": "oneof", "period": "oneof", "time": "timerange"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := store.Snapshot()
			err := tt.call()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantFields, validationFields(err))
			assert.Equal(t, before, store.Snapshot(), "invalid input never reaches the store")
		})
	}
}

func TestServiceSendMessageDispatches(t *testing.T) {
	svc, store, disp := newTestService(t)

	msg, err := svc.SendMessage(context.Background(), NewMessage{Type: Email, Recipients: "parent1@example.com", Content: "Report cards are out"})
	require.NoError(t, err)

	require.Len(t, disp.sent, 1)
	assert.Equal(t, msg, disp.sent[0])
	assert.Equal(t, msg, store.Snapshot().Messages[3])
}

// Book b1 starts with 50 copies, 35 on the shelf.
func TestServiceLibraryScenario(t *testing.T) {
	freezeClock(t)
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	loan, err := svc.IssueLoan(ctx, NewLoan{
		BookID: "b1", BorrowerID: "s2", BorrowerType: BorrowerStudent, BorrowerName: "Brian Omondi", DateDue: "01/12/2025",
	})
	require.NoError(t, err)
	b1, _ := svc.Snapshot().Book("b1")
	assert.Equal(t, 34, b1.Available)
	assert.Equal(t, LoanIssued, findLoan(svc.Snapshot(), loan.ID).Status)

	_, err = svc.ReturnLoan(ctx, loan.ID)
	require.NoError(t, err)
	b1, _ = svc.Snapshot().Book("b1")
	assert.Equal(t, 35, b1.Available)
	returned := findLoan(svc.Snapshot(), loan.ID)
	assert.Equal(t, LoanReturned, returned.Status)
	assert.Equal(t, "15/11/2025", returned.DateReturned)

	_, err = svc.ReturnLoan(ctx, loan.ID)
	assert.Equal(t, ErrAlreadyReturned, err)
	b1, _ = svc.Snapshot().Book("b1")
	assert.Equal(t, 35, b1.Available)
}

// Student s1 owes 15000 on fee f1.
func TestServicePaymentScenario(t *testing.T) {
	freezeClock(t)
	svc, _, _ := newTestService(t)

	pmt, err := svc.RecordPayment(context.Background(), NewPayment{FeeID: "f1", Amount: 15000, Method: "M-PESA"})
	require.NoError(t, err)

	d := svc.Snapshot()
	s1 := findStudent(t, d, "s1")
	assert.Zero(t, s1.Fees.Balance)
	assert.Len(t, s1.Fees.Payments, 2)
	assert.Equal(t, Payment{ID: "p6", Amount: 15000, Date: "15/11/2025", Method: "M-PESA"}, pmt)
	assert.True(t, findFee(d, "f1").Paid)
}

func TestServiceIssueLoanFailureLeavesStoreUnchanged(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	books := append([]Book(nil), store.Snapshot().Books...)
	books[5].Available = 0
	store.Replace(ctx, ReplaceBooks(books))
	before := store.Snapshot()

	_, err := svc.IssueLoan(ctx, NewLoan{BookID: "b6", BorrowerID: "s4", BorrowerType: BorrowerStudent, BorrowerName: "Daniel Kamau", DateDue: "01/12/2025"})
	assert.Equal(t, ErrBookUnavailable, err)
	assert.Equal(t, before, store.Snapshot())
	assert.Len(t, store.Snapshot().BookLoans, 5)
}
