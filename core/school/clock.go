package school

import "time"

const (
	DateLayout      = "02/01/2006"
	TimestampLayout = "02/01/2006 15:04"
)

var NowFunc = time.Now // mockable

func today() string {
	return NowFunc().Format(DateLayout)
}

func timestamp() string {
	return NowFunc().Format(TimestampLayout)
}

// indexOf returns the position of the element whose id is `id`, or -1.
func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

// replaced returns a copy of `items` where the element at `i` is `v`.
func replaced[T any](items []T, i int, v T) []T {
	next := make([]T, len(items))
	copy(next, items)
	next[i] = v
	return next
}

// appended returns a new slice: `items` followed by `v`. `items` is never written to.
func appended[T any](items []T, v ...T) []T {
	next := make([]T, 0, len(items)+len(v))
	next = append(next, items...)
	return append(next, v...)
}

func (s Student) key() string  { return s.ID }
func (t Teacher) key() string  { return t.ID }
func (c Class) key() string    { return c.ID }
func (e Exam) key() string     { return e.ID }
func (f Fee) key() string      { return f.ID }
func (m Message) key() string  { return m.ID }
func (b Book) key() string     { return b.ID }
func (l BookLoan) key() string { return l.ID }
