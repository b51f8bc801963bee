package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanString(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		lower bool
		want  string
	}{
		{name: "trims", s: "  Amina Mwangi \t", want: "Amina Mwangi"},
		{name: "lowers", s: " Grace.W@School.ac.ke ", lower: true, want: "grace.w@school.ac.ke"},
		{name: "empty", s: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanString(tt.s, tt.lower); got != tt.want {
				t.Errorf("CleanString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitAndClean(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []string
	}{
		{name: "single", s: "+254712345678", want: []string{"+254712345678"}},
		{name: "trims parts", s: "+254712345678, +254734567890 ,parent@example.com", want: []string{"+254712345678", "+254734567890", "parent@example.com"}},
		{name: "drops empty parts", s: " , a,,b, ", want: []string{"a", "b"}},
		{name: "empty", s: "", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAndClean(tt.s, ","))
		})
	}
}

func TestParseOrderings(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []Ordering
	}{
		{name: "empty", s: ""},
		{name: "ascending", s: "name", want: []Ordering{{Field: "name", Ascending: true}}},
		{
			name: "mixed", s: "grade, -name",
			want: []Ordering{{Field: "grade", Ascending: true}, {Field: "name", Ascending: false}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrderings(tt.s))
		})
	}
	assert.Equal(t, "name DESC", Ordering{Field: "name"}.String())
}
