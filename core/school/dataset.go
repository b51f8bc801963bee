package school

import (
	"regexp"
	"strconv"
)

// Collection names one of the dataset collections (also its JSON key).
type Collection string

const (
	Students    Collection = "students"
	Teachers    Collection = "teachers"
	Classes     Collection = "classes"
	LessonPlans Collection = "lessonPlans"
	Timetable   Collection = "timetable"
	Exams       Collection = "exams"
	Fees        Collection = "fees"
	StaffList   Collection = "staff"
	Messages    Collection = "messages"
	Events      Collection = "events"
	Reports     Collection = "reports"
	Books       Collection = "books"
	BookLoans   Collection = "bookLoans"

	// payments live inside students but draw ids from their own sequence
	paymentSeq = "payments"
)

// Collections lists every collection of a Dataset.
var Collections = []Collection{
	Students, Teachers, Classes, LessonPlans, Timetable, Exams, Fees,
	StaffList, Messages, Events, Reports, Books, BookLoans,
}

var (
	idPrefixes = map[string]string{
		string(Students):    "s",
		string(Teachers):    "t",
		string(Classes):     "c",
		string(LessonPlans): "lp",
		string(Timetable):   "tt",
		string(Exams):       "e",
		string(Fees):        "f",
		string(StaffList):   "st",
		string(Messages):    "m",
		string(Events):      "ev",
		string(Reports):     "r",
		string(Books):       "b",
		string(BookLoans):   "bl",
		paymentSeq:          "p",
	}
	idSuffixRegex = regexp.MustCompile(`(\d+)$`)
)

// Dataset is the whole school: one value per collection.
// It is treated as immutable once handed out by the Store; mutations build a new Dataset.
type Dataset struct {
	Students    []Student       `json:"students"`
	Teachers    []Teacher       `json:"teachers"`
	Classes     []Class         `json:"classes"`
	LessonPlans []LessonPlan    `json:"lessonPlans"`
	Timetable   []TimetableSlot `json:"timetable"`
	Exams       []Exam          `json:"exams"`
	Fees        []Fee           `json:"fees"`
	Staff       []Staff         `json:"staff"`
	Messages    []Message       `json:"messages"`
	Events      []Event         `json:"events"`
	Reports     []Report        `json:"reports"`
	Books       []Book          `json:"books"`
	BookLoans   []BookLoan      `json:"bookLoans"`

	// Sequences holds the last id number handed out per collection.
	// Blobs written without it get their counters from the highest existing id.
	Sequences map[string]int `json:"sequences,omitempty"`
}

// Replacement is the new value of one collection.
type Replacement struct {
	Collection Collection
	apply      func(d *Dataset)
}

func ReplaceStudents(v []Student) Replacement {
	return Replacement{Students, func(d *Dataset) { d.Students = v }}
}

func ReplaceTeachers(v []Teacher) Replacement {
	return Replacement{Teachers, func(d *Dataset) { d.Teachers = v }}
}

func ReplaceClasses(v []Class) Replacement {
	return Replacement{Classes, func(d *Dataset) { d.Classes = v }}
}

func ReplaceLessonPlans(v []LessonPlan) Replacement {
	return Replacement{LessonPlans, func(d *Dataset) { d.LessonPlans = v }}
}

func ReplaceTimetable(v []TimetableSlot) Replacement {
	return Replacement{Timetable, func(d *Dataset) { d.Timetable = v }}
}

func ReplaceExams(v []Exam) Replacement {
	return Replacement{Exams, func(d *Dataset) { d.Exams = v }}
}

func ReplaceFees(v []Fee) Replacement {
	return Replacement{Fees, func(d *Dataset) { d.Fees = v }}
}

func ReplaceStaff(v []Staff) Replacement {
	return Replacement{StaffList, func(d *Dataset) { d.Staff = v }}
}

func ReplaceMessages(v []Message) Replacement {
	return Replacement{Messages, func(d *Dataset) { d.Messages = v }}
}

func ReplaceEvents(v []Event) Replacement {
	return Replacement{Events, func(d *Dataset) { d.Events = v }}
}

func ReplaceReports(v []Report) Replacement {
	return Replacement{Reports, func(d *Dataset) { d.Reports = v }}
}

func ReplaceBooks(v []Book) Replacement {
	return Replacement{Books, func(d *Dataset) { d.Books = v }}
}

func ReplaceBookLoans(v []BookLoan) Replacement {
	return Replacement{BookLoans, func(d *Dataset) { d.BookLoans = v }}
}

func replaceSequences(v map[string]int) Replacement {
	return Replacement{"sequences", func(d *Dataset) { d.Sequences = v }}
}

// With returns a copy of `d` carrying the replaced collections; untouched collections are shared.
func (d Dataset) With(repls ...Replacement) Dataset {
	next := d
	for _, r := range repls {
		r.apply(&next)
	}
	return next
}

// normalize turns nil collections into empty ones so they serialize as [].
func (d Dataset) normalize() Dataset {
	if d.Students == nil {
		d.Students = []Student{}
	}
	if d.Teachers == nil {
		d.Teachers = []Teacher{}
	}
	if d.Classes == nil {
		d.Classes = []Class{}
	}
	if d.LessonPlans == nil {
		d.LessonPlans = []LessonPlan{}
	}
	if d.Timetable == nil {
		d.Timetable = []TimetableSlot{}
	}
	if d.Exams == nil {
		d.Exams = []Exam{}
	}
	if d.Fees == nil {
		d.Fees = []Fee{}
	}
	if d.Staff == nil {
		d.Staff = []Staff{}
	}
	if d.Messages == nil {
		d.Messages = []Message{}
	}
	if d.Events == nil {
		d.Events = []Event{}
	}
	if d.Reports == nil {
		d.Reports = []Report{}
	}
	if d.Books == nil {
		d.Books = []Book{}
	}
	if d.BookLoans == nil {
		d.BookLoans = []BookLoan{}
	}
	return d
}

// ids returns every id currently used under sequence `seq`.
func (d Dataset) ids(seq string) []string {
	var ids []string
	switch seq {
	case string(Students):
		for _, v := range d.Students {
			ids = append(ids, v.ID)
		}
	case string(Teachers):
		for _, v := range d.Teachers {
			ids = append(ids, v.ID)
		}
	case string(Classes):
		for _, v := range d.Classes {
			ids = append(ids, v.ID)
		}
	case string(LessonPlans):
		for _, v := range d.LessonPlans {
			ids = append(ids, v.ID)
		}
	case string(Timetable):
		for _, v := range d.Timetable {
			ids = append(ids, v.ID)
		}
	case string(Exams):
		for _, v := range d.Exams {
			ids = append(ids, v.ID)
		}
	case string(Fees):
		for _, v := range d.Fees {
			ids = append(ids, v.ID)
		}
	case string(StaffList):
		for _, v := range d.Staff {
			ids = append(ids, v.ID)
		}
	case string(Messages):
		for _, v := range d.Messages {
			ids = append(ids, v.ID)
		}
	case string(Events):
		for _, v := range d.Events {
			ids = append(ids, v.ID)
		}
	case string(Reports):
		for _, v := range d.Reports {
			ids = append(ids, v.ID)
		}
	case string(Books):
		for _, v := range d.Books {
			ids = append(ids, v.ID)
		}
	case string(BookLoans):
		for _, v := range d.BookLoans {
			ids = append(ids, v.ID)
		}
	case paymentSeq:
		for _, s := range d.Students {
			for _, p := range s.Fees.Payments {
				ids = append(ids, p.ID)
			}
		}
	}
	return ids
}

// lastID returns the highest id number used by sequence `seq`, stored or observed.
func (d Dataset) lastID(seq string) int {
	last := d.Sequences[seq]
	for _, id := range d.ids(seq) {
		m := idSuffixRegex.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		// suffixes too long for an int are skipped
		if n, err := strconv.Atoi(m[1]); err == nil && n > last {
			last = n
		}
	}
	return last
}

// nextID allocates the next id of sequence `seq`.
// The returned Replacement records the allocation and must be applied with the new entity.
func (d Dataset) nextID(seq string) (string, Replacement) {
	n := d.lastID(seq) + 1
	seqs := make(map[string]int, len(d.Sequences)+1)
	for k, v := range d.Sequences {
		seqs[k] = v
	}
	seqs[seq] = n
	return idPrefixes[seq] + strconv.Itoa(n), replaceSequences(seqs)
}
