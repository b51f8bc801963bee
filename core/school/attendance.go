package school

type MarkAttendance struct {
	StudentID string           `json:"studentId" validate:"required"`
	Date      string           `json:"date" validate:"required,endate"`
	Status    AttendanceStatus `json:"status" validate:"required,attendance"`
}

type MarkClassPresent struct {
	ClassID string `json:"classId" validate:"required"`
	Date    string `json:"date" validate:"required,endate"`
}

// MarkAttendance records the student's status for a date, replacing any record of that date.
func (d Dataset) MarkAttendance(ma MarkAttendance) ([]Replacement, error) {
	i := indexOf(d.Students, ma.StudentID, Student.key)
	if i < 0 {
		return nil, ErrNotFound
	}
	stu := d.Students[i]
	stu.Attendance = withAttendance(stu.Attendance, AttendanceRecord{Date: ma.Date, Status: ma.Status})
	return []Replacement{ReplaceStudents(replaced(d.Students, i, stu))}, nil
}

// MarkClassPresent marks every student of the class present on the date.
// It returns the number of students marked.
func (d Dataset) MarkClassPresent(mp MarkClassPresent) (int, []Replacement, error) {
	if indexOf(d.Classes, mp.ClassID, Class.key) < 0 {
		return 0, nil, ErrNotFound
	}
	var (
		students = make([]Student, len(d.Students))
		marked   int
	)
	for i, stu := range d.Students {
		if stu.ClassID == mp.ClassID {
			stu.Attendance = withAttendance(stu.Attendance, AttendanceRecord{Date: mp.Date, Status: Present})
			marked++
		}
		students[i] = stu
	}
	if marked == 0 {
		return 0, nil, nil
	}
	return marked, []Replacement{ReplaceStudents(students)}, nil
}

func withAttendance(records []AttendanceRecord, rec AttendanceRecord) []AttendanceRecord {
	next := make([]AttendanceRecord, 0, len(records)+1)
	for _, r := range records {
		if r.Date != rec.Date {
			next = append(next, r)
		}
	}
	return append(next, rec)
}
