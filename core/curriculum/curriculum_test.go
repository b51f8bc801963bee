package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryLevelHasAStage(t *testing.T) {
	for _, level := range Levels() {
		stage, ok := Lookup(level)
		if !ok {
			t.Fatalf("Lookup(%q) found nothing", level)
		}
		assert.Equal(t, level, stage.Level())
		assert.NotEmpty(t, stage.Grades())
		assert.True(t, level.Valid())
	}
	assert.False(t, Level("College").Valid())
	_, ok := Lookup("College")
	assert.False(t, ok)
}

func TestGrades(t *testing.T) {
	tests := []struct {
		level        Level
		wantFirst    string
		grade        string
		wantHasGrade bool
	}{
		{level: PrePrimary, wantFirst: "PP1", grade: "PP2", wantHasGrade: true},
		{level: LowerPrimary, wantFirst: "Grade 1", grade: "Grade 4"},
		{level: UpperPrimary, wantFirst: "Grade 4", grade: "Grade 6", wantHasGrade: true},
		{level: JuniorSecondary, wantFirst: "Grade 7", grade: "Grade 9", wantHasGrade: true},
		{level: SeniorSecondary, wantFirst: "Grade 10", grade: "Grade 9"},
		{level: "College", grade: "Year 1"},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := DefaultGrade(tt.level); got != tt.wantFirst {
				t.Errorf("DefaultGrade() = %v, want %v", got, tt.wantFirst)
			}
			if got := HasGrade(tt.level, tt.grade); got != tt.wantHasGrade {
				t.Errorf("HasGrade(%q) = %v, want %v", tt.grade, got, tt.wantHasGrade)
			}
		})
	}
}

func TestSubjects(t *testing.T) {
	assert.Equal(t, []string{
		"Environmental Activities", "Language Activities", "Psychomotor and Creative Activities",
		"Mathematical Activities", "Religious Education Activities",
	}, Subjects(PrePrimary))
	assert.Len(t, Subjects(UpperPrimary), 10)
	assert.Equal(t, []string{"Foreign Languages"}, OptionalSubjects(UpperPrimary))
	assert.Len(t, Subjects(JuniorSecondary), 12)
	assert.Contains(t, OptionalSubjects(JuniorSecondary), "Computer Science")
	assert.Nil(t, OptionalSubjects(LowerPrimary))
	assert.Nil(t, OptionalSubjects(SeniorSecondary))
	assert.Nil(t, Subjects("College"))

	// senior subjects are the pathway subjects, each listed once
	senior := Subjects(SeniorSecondary)
	assert.Len(t, senior, 16)
	assert.Equal(t, "Languages", senior[0])
	assert.Contains(t, senior, "Computer Science")
}

func TestPathways(t *testing.T) {
	assert.Equal(t, []Pathway{ArtsAndSportsScience, STEM, SocialSciences}, Pathways(SeniorSecondary))
	assert.Nil(t, Pathways(JuniorSecondary))
	assert.Equal(t, []string{"Mathematics", "Physics", "Chemistry", "Biology", "Computer Science", "Engineering"}, PathwaySubjects(STEM))
	assert.Nil(t, PathwaySubjects("Medicine"))
	assert.True(t, STEM.Valid())
	assert.False(t, Pathway("Medicine").Valid())
}

func TestOffers(t *testing.T) {
	assert.True(t, Offers(JuniorSecondary, "Computer Science"))
	assert.True(t, Offers(SeniorSecondary, "Physics"))
	assert.True(t, Offers(UpperPrimary, "Foreign Languages"))
	assert.False(t, Offers(UpperPrimary, "Physics"))
	assert.False(t, Offers("College", "Mathematics"))
}

func TestTableIsReadOnly(t *testing.T) {
	subjects := Subjects(UpperPrimary)
	subjects[0] = "Latin"
	grades := Grades(UpperPrimary)
	grades[0] = "Grade 0"
	assert.Equal(t, "English", Subjects(UpperPrimary)[0])
	assert.Equal(t, "Grade 4", DefaultGrade(UpperPrimary))

	levels := Levels()
	levels[0] = "College"
	assert.Equal(t, PrePrimary, Levels()[0])
}
