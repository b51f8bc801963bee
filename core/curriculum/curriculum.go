// Package curriculum is the Kenyan Competency-Based Curriculum reference table:
// grades, subjects and career pathways per education level. It is read-only.
package curriculum

import "sort"

// Level is one of the five ordered schooling stages.
type Level string

const (
	PrePrimary      Level = "Pre-Primary"
	LowerPrimary    Level = "Lower Primary"
	UpperPrimary    Level = "Upper Primary"
	JuniorSecondary Level = "Junior Secondary"
	SeniorSecondary Level = "Senior Secondary"
)

// Pathway is a Senior Secondary specialization.
type Pathway string

const (
	ArtsAndSportsScience Pathway = "Arts and Sports Science"
	STEM                 Pathway = "STEM"
	SocialSciences       Pathway = "Social Sciences"
)

var (
	levels   = []Level{PrePrimary, LowerPrimary, UpperPrimary, JuniorSecondary, SeniorSecondary}
	pathways = []Pathway{ArtsAndSportsScience, STEM, SocialSciences}
)

// Levels returns the education levels in schooling order.
func Levels() []Level { return append([]Level(nil), levels...) }

// AllPathways returns the Senior Secondary pathways.
func AllPathways() []Pathway { return append([]Pathway(nil), pathways...) }

func (l Level) Valid() bool {
	_, ok := table[l]
	return ok
}

func (p Pathway) Valid() bool {
	for _, pw := range pathways {
		if p == pw {
			return true
		}
	}
	return false
}

// Stage is the curriculum of one education level.
// Each concrete type carries the subject shape of its level.
type Stage interface {
	Level() Level
	Grades() []string
	isStage()
}

type (
	// ActivityStage lists learning activities (Pre-Primary and Lower Primary).
	ActivityStage struct {
		level    Level
		grades   []string
		Subjects []string
	}

	// PrimaryStage has compulsory subjects plus optional ones (Upper Primary).
	PrimaryStage struct {
		grades   []string
		Subjects []string
		Optional []string
	}

	// JuniorStage has core and optional subjects (Junior Secondary).
	JuniorStage struct {
		grades   []string
		Core     []string
		Optional []string
	}

	// SeniorStage groups subjects by career pathway (Senior Secondary).
	SeniorStage struct {
		grades   []string
		Pathways map[Pathway][]string
	}
)

func (s ActivityStage) Level() Level     { return s.level }
func (s ActivityStage) Grades() []string { return s.grades }
func (ActivityStage) isStage()           {}

func (PrimaryStage) Level() Level       { return UpperPrimary }
func (s PrimaryStage) Grades() []string { return s.grades }
func (PrimaryStage) isStage()           {}

func (JuniorStage) Level() Level       { return JuniorSecondary }
func (s JuniorStage) Grades() []string { return s.grades }
func (JuniorStage) isStage()           {}

func (SeniorStage) Level() Level       { return SeniorSecondary }
func (s SeniorStage) Grades() []string { return s.grades }
func (SeniorStage) isStage()           {}

// Lookup returns the stage of `level`.
func Lookup(level Level) (Stage, bool) {
	s, ok := table[level]
	return s, ok
}

// Grades returns the valid grades of `level`, nil if the level is unknown.
func Grades(level Level) []string {
	s, ok := table[level]
	if !ok {
		return nil
	}
	return copyOf(s.Grades())
}

// DefaultGrade is the first grade of `level`.
func DefaultGrade(level Level) string {
	if grades := Grades(level); len(grades) > 0 {
		return grades[0]
	}
	return ""
}

// HasGrade reports whether `grade` belongs to `level`.
func HasGrade(level Level, grade string) bool {
	for _, g := range Grades(level) {
		if g == grade {
			return true
		}
	}
	return false
}

// Subjects returns the compulsory subjects of `level`.
// Senior Secondary has none of its own; it returns the union of all pathway subjects.
func Subjects(level Level) []string {
	switch s := table[level].(type) {
	case ActivityStage:
		return copyOf(s.Subjects)
	case PrimaryStage:
		return copyOf(s.Subjects)
	case JuniorStage:
		return copyOf(s.Core)
	case SeniorStage:
		seen := make(map[string]bool)
		var all []string
		for _, pw := range pathways {
			for _, subj := range s.Pathways[pw] {
				if !seen[subj] {
					seen[subj] = true
					all = append(all, subj)
				}
			}
		}
		return all
	default:
		return nil
	}
}

// OptionalSubjects returns the optional subjects of `level`, if any.
func OptionalSubjects(level Level) []string {
	switch s := table[level].(type) {
	case PrimaryStage:
		return copyOf(s.Optional)
	case JuniorStage:
		return copyOf(s.Optional)
	case ActivityStage, SeniorStage:
		return nil
	default:
		return nil
	}
}

// Pathways returns the career pathways of `level` (Senior Secondary only).
func Pathways(level Level) []Pathway {
	if _, ok := table[level].(SeniorStage); ok {
		return AllPathways()
	}
	return nil
}

// PathwaySubjects returns the subjects of a Senior Secondary pathway.
func PathwaySubjects(pathway Pathway) []string {
	s := table[SeniorSecondary].(SeniorStage)
	return copyOf(s.Pathways[pathway])
}

// Offers reports whether `subject` is taught at `level` (compulsory, optional or in any pathway).
func Offers(level Level, subject string) bool {
	all := append(Subjects(level), OptionalSubjects(level)...)
	sort.Strings(all)
	i := sort.SearchStrings(all, subject)
	return i < len(all) && all[i] == subject
}

func copyOf(ss []string) []string {
	if ss == nil {
		return nil
	}
	return append([]string(nil), ss...)
}
