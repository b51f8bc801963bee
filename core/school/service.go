package school

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/elimu/core"
)

// Service validates user input and runs the school operations against the Store.
type Service struct {
	store      *Store
	validate   *validator.Validate
	dispatcher Dispatcher
}

func NewService(store *Store, validate *validator.Validate, dispatcher Dispatcher) *Service {
	if dispatcher == nil {
		dispatcher = nopDispatcher{}
	}
	return &Service{store: store, validate: validate, dispatcher: dispatcher}
}

// Snapshot returns the current dataset, to be read by the aggregators.
func (svc *Service) Snapshot() Dataset {
	return svc.store.Snapshot()
}

// Export returns the current dataset as saved, unmodified.
func (svc *Service) Export() ([]byte, error) {
	return svc.store.Blob()
}

func (svc *Service) Reset(ctx context.Context) {
	svc.store.Reset(ctx)
}

func (svc *Service) Preference(ctx context.Context, key string) (json.RawMessage, error) {
	return svc.store.Preference(ctx, key)
}

func (svc *Service) SetPreference(ctx context.Context, key string, value json.RawMessage) error {
	return svc.store.SetPreference(ctx, key, value)
}

// Students

func (svc *Service) AddStudent(ctx context.Context, ns NewStudent) (Student, error) {
	if err := svc.validate.Struct(ns); err != nil {
		return Student{}, err
	}
	var stu Student
	err := svc.store.Apply(ctx, "add_student", func(d Dataset) (repls []Replacement, err error) {
		stu, repls = d.AddStudent(ns)
		return repls, nil
	})
	return stu, err
}

func (svc *Service) UpdateStudent(ctx context.Context, id string, us UpdateStudent) (Student, error) {
	if err := svc.validate.Struct(us); err != nil {
		return Student{}, err
	}
	var stu Student
	err := svc.store.Apply(ctx, "update_student", func(d Dataset) (repls []Replacement, err error) {
		stu, repls, err = d.UpdateStudent(id, us)
		return repls, err
	})
	return stu, err
}

func (svc *Service) DeleteStudent(ctx context.Context, id string) error {
	return svc.store.Apply(ctx, "delete_student", func(d Dataset) ([]Replacement, error) {
		return d.DeleteStudent(id)
	})
}

func (svc *Service) MarkAttendance(ctx context.Context, ma MarkAttendance) error {
	if err := svc.validate.Struct(ma); err != nil {
		return err
	}
	return svc.store.Apply(ctx, "mark_attendance", func(d Dataset) ([]Replacement, error) {
		return d.MarkAttendance(ma)
	})
}

func (svc *Service) MarkClassPresent(ctx context.Context, mp MarkClassPresent) (int, error) {
	if err := svc.validate.Struct(mp); err != nil {
		return 0, err
	}
	var marked int
	err := svc.store.Apply(ctx, "mark_class_present", func(d Dataset) (repls []Replacement, err error) {
		marked, repls, err = d.MarkClassPresent(mp)
		return repls, err
	})
	return marked, err
}

func (svc *Service) UpdateCompetencies(ctx context.Context, id string, c Competencies) error {
	if err := svc.validate.Struct(c); err != nil {
		return err
	}
	return svc.store.Apply(ctx, "update_competencies", func(d Dataset) ([]Replacement, error) {
		return d.UpdateCompetencies(id, c)
	})
}

// Finance & HR

func (svc *Service) RecordPayment(ctx context.Context, np NewPayment) (Payment, error) {
	if err := svc.validate.Struct(np); err != nil {
		return Payment{}, err
	}
	var pmt Payment
	err := svc.store.Apply(ctx, "record_payment", func(d Dataset) (repls []Replacement, err error) {
		pmt, repls, err = d.RecordPayment(np)
		return repls, err
	})
	return pmt, err
}

func (svc *Service) AddStaff(ctx context.Context, ns NewStaff) (Staff, error) {
	if err := svc.validate.Struct(ns); err != nil {
		return Staff{}, err
	}
	var st Staff
	err := svc.store.Apply(ctx, "add_staff", func(d Dataset) (repls []Replacement, err error) {
		st, repls = d.AddStaff(ns)
		return repls, nil
	})
	return st, err
}

// Academics

func (svc *Service) AddLessonPlan(ctx context.Context, nlp NewLessonPlan) (LessonPlan, error) {
	if err := svc.validate.Struct(nlp); err != nil {
		return LessonPlan{}, err
	}
	var lp LessonPlan
	err := svc.store.Apply(ctx, "add_lesson_plan", func(d Dataset) (repls []Replacement, err error) {
		lp, repls = d.AddLessonPlan(nlp)
		return repls, nil
	})
	return lp, err
}

func (svc *Service) AddTimetableSlot(ctx context.Context, nts NewTimetableSlot) (TimetableSlot, error) {
	if err := svc.validate.Struct(nts); err != nil {
		return TimetableSlot{}, err
	}
	var slot TimetableSlot
	err := svc.store.Apply(ctx, "add_timetable_slot", func(d Dataset) (repls []Replacement, err error) {
		slot, repls = d.AddTimetableSlot(nts)
		return repls, nil
	})
	return slot, err
}

func (svc *Service) AddExam(ctx context.Context, ne NewExam) (Exam, error) {
	if err := svc.validate.Struct(ne); err != nil {
		return Exam{}, err
	}
	var exam Exam
	err := svc.store.Apply(ctx, "add_exam", func(d Dataset) (repls []Replacement, err error) {
		exam, repls = d.AddExam(ne)
		return repls, nil
	})
	return exam, err
}

func (svc *Service) RecordExamMarks(ctx context.Context, id string, marks []ExamMarks) (Exam, error) {
	if len(marks) == 0 {
		return Exam{}, core.NewValidationError(nil, core.FieldError{Field: "marks", Error: "at least one mark is required"})
	}
	for _, m := range marks {
		if err := svc.validate.Struct(m); err != nil {
			return Exam{}, err
		}
	}
	var exam Exam
	err := svc.store.Apply(ctx, "record_exam_marks", func(d Dataset) (repls []Replacement, err error) {
		exam, repls, err = d.RecordExamMarks(id, marks...)
		return repls, err
	})
	return exam, err
}

func (svc *Service) GenerateReport(ctx context.Context, nr NewReport) (Report, error) {
	if err := svc.validate.Struct(nr); err != nil {
		return Report{}, err
	}
	var rep Report
	err := svc.store.Apply(ctx, "generate_report", func(d Dataset) (repls []Replacement, err error) {
		rep, repls, err = d.GenerateReport(nr)
		return repls, err
	})
	return rep, err
}

// Library

func (svc *Service) AddBook(ctx context.Context, nb NewBook) (Book, error) {
	if err := svc.validate.Struct(nb); err != nil {
		return Book{}, err
	}
	var book Book
	err := svc.store.Apply(ctx, "add_book", func(d Dataset) (repls []Replacement, err error) {
		book, repls = d.AddBook(nb)
		return repls, nil
	})
	return book, err
}

func (svc *Service) IssueLoan(ctx context.Context, nl NewLoan) (BookLoan, error) {
	if err := svc.validate.Struct(nl); err != nil {
		return BookLoan{}, err
	}
	var loan BookLoan
	err := svc.store.Apply(ctx, "issue_loan", func(d Dataset) (repls []Replacement, err error) {
		loan, repls, err = d.IssueLoan(nl)
		return repls, err
	})
	return loan, err
}

func (svc *Service) ReturnLoan(ctx context.Context, id string) (BookLoan, error) {
	var loan BookLoan
	err := svc.store.Apply(ctx, "return_loan", func(d Dataset) (repls []Replacement, err error) {
		loan, repls, err = d.ReturnLoan(id)
		return repls, err
	})
	return loan, err
}

// Communication

// SendMessage stores the message and hands it to the dispatcher once stored.
func (svc *Service) SendMessage(ctx context.Context, nm NewMessage) (Message, error) {
	if err := svc.validate.Struct(nm); err != nil {
		return Message{}, err
	}
	var msg Message
	err := svc.store.Apply(ctx, "send_message", func(d Dataset) (repls []Replacement, err error) {
		msg, repls = d.SendMessage(nm)
		return repls, nil
	})
	if err != nil {
		return Message{}, err
	}
	svc.dispatcher.Dispatch(msg)
	return msg, nil
}

func (svc *Service) MarkMessageRead(ctx context.Context, id string) error {
	return svc.store.Apply(ctx, "mark_message_read", func(d Dataset) ([]Replacement, error) {
		return d.MarkMessageRead(id)
	})
}

func (svc *Service) AddEvent(ctx context.Context, ne NewEvent) (Event, error) {
	if err := svc.validate.Struct(ne); err != nil {
		return Event{}, err
	}
	var ev Event
	err := svc.store.Apply(ctx, "add_event", func(d Dataset) (repls []Replacement, err error) {
		ev, repls = d.AddEvent(ne)
		return repls, nil
	})
	return ev, err
}
