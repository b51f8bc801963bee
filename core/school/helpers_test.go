package school

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core"
)

var testNow = time.Date(2025, time.November, 15, 10, 30, 0, 0, time.UTC)

// freezeClock pins NowFunc to testNow for the duration of the test.
func freezeClock(t *testing.T) {
	t.Helper()
	NowFunc = func() time.Time { return testNow }
	t.Cleanup(func() { NowFunc = time.Now })
}

type memRepo struct {
	mu      sync.Mutex
	slots   map[string][]byte
	saves   int
	loadErr error
	saveErr error
}

func newMemRepo() *memRepo {
	return &memRepo{slots: make(map[string][]byte)}
}

func (r *memRepo) LoadSlot(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	payload, ok := r.slots[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return payload, nil
}

func (r *memRepo) SaveSlot(_ context.Context, key string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.slots[key] = append([]byte(nil), payload...)
	return nil
}

type testLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *testLogger) log(level, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, fmt.Sprintf("%s: %s %v", level, msg, args))
}

func (l *testLogger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args...) }
func (l *testLogger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args...) }
func (l *testLogger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args...) }
func (l *testLogger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args...) }
func (l *testLogger) Fatal(msg string, args ...interface{}) { l.log("FATAL", msg, args...) }

var _ core.Logger = (*testLogger)(nil)

type countRecorder struct {
	mutations map[string]int
	failures  int
	saves     int
	saveFails int
}

func newCountRecorder() *countRecorder {
	return &countRecorder{mutations: make(map[string]int)}
}

func (r *countRecorder) ObserveMutation(op string, err error, _ time.Duration) {
	r.mutations[op]++
	if err != nil {
		r.failures++
	}
}

func (r *countRecorder) ObserveSave(err error) {
	r.saves++
	if err != nil {
		r.saveFails++
	}
}

type dispatcherMock struct {
	sent []Message
}

func (d *dispatcherMock) Dispatch(msgs ...Message) {
	d.sent = append(d.sent, msgs...)
}

func newTestValidator() *validator.Validate {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

func newTestStore(t *testing.T) (*Store, *memRepo, *testLogger) {
	t.Helper()
	repo := newMemRepo()
	logger := &testLogger{}
	store := NewStore(repo, logger, nil)
	store.Load(context.Background())
	return store, repo, logger
}

func newTestService(t *testing.T) (*Service, *Store, *dispatcherMock) {
	t.Helper()
	store, _, _ := newTestStore(t)
	disp := &dispatcherMock{}
	return NewService(store, newTestValidator(), disp), store, disp
}

// validationFields returns the fields of a validator error, or nil.
func validationFields(err error) map[string]string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}
	fields := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

func findStudent(t *testing.T, d Dataset, id string) Student {
	t.Helper()
	stu, err := d.Student(id)
	if err != nil {
		t.Fatalf("student %s not found", id)
	}
	return stu
}

func findFee(d Dataset, id string) Fee {
	return d.Fees[indexOf(d.Fees, id, Fee.key)]
}

func findLoan(d Dataset, id string) BookLoan {
	return d.BookLoans[indexOf(d.BookLoans, id, BookLoan.key)]
}
