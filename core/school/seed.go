package school

import (
	"github.com/trezcool/elimu/core/curriculum"
)

const seedTerm = "Term 3 2025"

// Seed returns the demo school. Every call builds a brand new, identical dataset.
func Seed() Dataset {
	stem := curriculum.STEM
	week := func(statuses ...AttendanceStatus) []AttendanceRecord {
		dates := []string{"10/11/2025", "11/11/2025", "12/11/2025", "13/11/2025", "14/11/2025"}
		records := make([]AttendanceRecord, len(statuses))
		for i, st := range statuses {
			records[i] = AttendanceRecord{Date: dates[i], Status: st}
		}
		return records
	}

	students := []Student{
		{
			ID:               "s1",
			Name:             "Amina Mwangi",
			BioData:          BioData{DOB: "15/03/2012", ParentContact: "+254712345678", Email: "parent1@example.com", Address: "Nairobi"},
			ClassID:          "c1",
			Grade:            "Grade 6",
			Stream:           "A",
			EducationLevel:   curriculum.UpperPrimary,
			Subjects:         []string{"English", "Mathematics", "Science and Technology", "Social Studies", "Kiswahili"},
			Competencies:     Competencies{85, 78, 90, 82, 88, 75, 80},
			Attendance:       week(Present, Present, Present, Late, Present),
			Fees:             StudentFees{Balance: 15000, Payments: []Payment{{ID: "p1", Amount: 35000, Date: "05/09/2025", Method: "M-PESA"}}},
			Messages:         []string{"m1"},
			Extracurriculars: []string{"Drama", "Debate"},
		},
		{
			ID:               "s2",
			Name:             "Brian Omondi",
			BioData:          BioData{DOB: "22/07/2013", ParentContact: "+254723456789", Email: "parent2@example.com", Address: "Mombasa"},
			ClassID:          "c2",
			Grade:            "Grade 8",
			Stream:           "B",
			EducationLevel:   curriculum.JuniorSecondary,
			Subjects:         []string{"Mathematics", "English", "Kiswahili", "Integrated Science", "Business Studies"},
			OptionalSubjects: []string{"Computer Science", "Visual Arts"},
			Competencies:     Competencies{70, 88, 75, 80, 78, 92, 85},
			Attendance:       week(Present, Late, Present, Present, Absent),
			Fees:             StudentFees{Balance: 20000, Payments: []Payment{{ID: "p2", Amount: 30000, Date: "01/09/2025", Method: "Bank"}}},
			Messages:         []string{},
			Extracurriculars: []string{"Football", "Coding Club"},
		},
		{
			ID:               "s3",
			Name:             "Cynthia Njeri",
			BioData:          BioData{DOB: "10/01/2019", ParentContact: "+254734567890", Email: "parent3@example.com", Address: "Kisumu"},
			ClassID:          "c3",
			Grade:            "Grade 2",
			Stream:           "A",
			EducationLevel:   curriculum.LowerPrimary,
			Subjects:         []string{"Mathematical Activities", "Literacy", "English Language Activities", "Environmental Activities"},
			Competencies:     Competencies{92, 85, 88, 90, 95, 80, 90},
			Attendance:       week(Present, Present, Present, Present, Present),
			Fees:             StudentFees{Balance: 0, Payments: []Payment{{ID: "p3", Amount: 50000, Date: "28/08/2025", Method: "M-PESA"}}},
			Messages:         []string{"m2"},
			Extracurriculars: []string{"Science Club", "Music"},
		},
		{
			ID:               "s4",
			Name:             "Daniel Kamau",
			BioData:          BioData{DOB: "05/09/2009", ParentContact: "+254745678901", Email: "parent4@example.com", Address: "Nakuru"},
			ClassID:          "c4",
			Grade:            "Grade 11",
			Stream:           "A",
			EducationLevel:   curriculum.SeniorSecondary,
			Subjects:         []string{"Mathematics", "Physics", "Chemistry", "Biology"},
			CareerPathway:    &stem,
			Competencies:     Competencies{65, 70, 68, 75, 72, 78, 70},
			Attendance:       week(Absent, Present, Present, Present, Late),
			Fees:             StudentFees{Balance: 25000, Payments: []Payment{{ID: "p4", Amount: 25000, Date: "15/09/2025", Method: "Cash"}}},
			Messages:         []string{},
			Extracurriculars: []string{"Basketball"},
		},
		{
			ID:               "s5",
			Name:             "Faith Akinyi",
			BioData:          BioData{DOB: "18/04/2021", ParentContact: "+254756789012", Email: "parent5@example.com", Address: "Eldoret"},
			ClassID:          "c5",
			Grade:            "PP2",
			Stream:           "B",
			EducationLevel:   curriculum.PrePrimary,
			Subjects:         []string{"Environmental Activities", "Language Activities", "Mathematical Activities"},
			Competencies:     Competencies{88, 92, 85, 87, 90, 85, 88},
			Attendance:       week(Present, Present, Present, Present, Present),
			Fees:             StudentFees{Balance: 10000, Payments: []Payment{{ID: "p5", Amount: 40000, Date: "20/08/2025", Method: "M-PESA"}}},
			Messages:         []string{"m3"},
			Extracurriculars: []string{"Art", "Play Activities"},
		},
	}

	teachers := []Teacher{
		{
			ID:              "t1",
			Name:            "Mr. John Kiprotich",
			Subjects:        []string{"Mathematics", "Science and Technology", "Physics"},
			EducationLevels: []curriculum.Level{curriculum.UpperPrimary, curriculum.JuniorSecondary, curriculum.SeniorSecondary},
			LessonPlans:     []string{"lp1", "lp2"},
			Email:           "john.k@school.ac.ke",
			Phone:           "+254700111222",
		},
		{
			ID:              "t2",
			Name:            "Ms. Grace Wanjiru",
			Subjects:        []string{"English", "Kiswahili", "Language Activities"},
			EducationLevels: []curriculum.Level{curriculum.PrePrimary, curriculum.LowerPrimary, curriculum.UpperPrimary, curriculum.JuniorSecondary},
			LessonPlans:     []string{"lp3"},
			Email:           "grace.w@school.ac.ke",
			Phone:           "+254700222333",
		},
		{
			ID:              "t3",
			Name:            "Mr. David Otieno",
			Subjects:        []string{"Social Studies", "Religious Education", "Integrated Science"},
			EducationLevels: []curriculum.Level{curriculum.UpperPrimary, curriculum.JuniorSecondary},
			LessonPlans:     []string{"lp4"},
			Email:           "david.o@school.ac.ke",
			Phone:           "+254700333444",
		},
	}

	classes := []Class{
		{ID: "c1", Name: "Grade 6 A", Grade: "Grade 6", Stream: "A", EducationLevel: curriculum.UpperPrimary, Students: []string{"s1"}, Subjects: curriculum.Subjects(curriculum.UpperPrimary), Timetable: []string{"tt1"}, TeacherID: "t1"},
		{ID: "c2", Name: "Grade 8 B", Grade: "Grade 8", Stream: "B", EducationLevel: curriculum.JuniorSecondary, Students: []string{"s2"}, Subjects: curriculum.Subjects(curriculum.JuniorSecondary), Timetable: []string{"tt2"}, TeacherID: "t2"},
		{ID: "c3", Name: "Grade 2 A", Grade: "Grade 2", Stream: "A", EducationLevel: curriculum.LowerPrimary, Students: []string{"s3"}, Subjects: curriculum.Subjects(curriculum.LowerPrimary), Timetable: []string{"tt3"}, TeacherID: "t3"},
		{ID: "c4", Name: "Grade 11 A", Grade: "Grade 11", Stream: "A", EducationLevel: curriculum.SeniorSecondary, Students: []string{"s4"}, Subjects: []string{"Mathematics", "Physics", "Chemistry", "Biology"}, Timetable: []string{"tt4"}, TeacherID: "t1"},
		{ID: "c5", Name: "PP2 B", Grade: "PP2", Stream: "B", EducationLevel: curriculum.PrePrimary, Students: []string{"s5"}, Subjects: curriculum.Subjects(curriculum.PrePrimary), Timetable: []string{"tt5"}, TeacherID: "t2"},
	}

	lessonPlans := []LessonPlan{
		{ID: "lp1", Title: "Algebra Basics", Scheme: "Introduction to variables and equations. Focus on problem-solving and critical thinking skills.", AlignedCBC: true, SharedWith: []string{"t2"}, TeacherID: "t1", Subject: "Mathematics", EducationLevel: curriculum.UpperPrimary, CreatedAt: "01/09/2025"},
		{ID: "lp2", Title: "Scientific Method", Scheme: "Hypothesis, experimentation, conclusion. Hands-on experiments to develop inquiry skills.", AlignedCBC: true, SharedWith: []string{}, TeacherID: "t1", Subject: "Science and Technology", EducationLevel: curriculum.UpperPrimary, CreatedAt: "05/09/2025"},
		{ID: "lp3", Title: "Essay Writing Skills", Scheme: "Structure: Introduction, Body, Conclusion. Developing communication competencies.", AlignedCBC: true, SharedWith: []string{"t1"}, TeacherID: "t2", Subject: "English", EducationLevel: curriculum.JuniorSecondary, CreatedAt: "08/09/2025"},
		{ID: "lp4", Title: "Kenyan Geography", Scheme: "Physical and political features of Kenya. Map reading and citizenship values.", AlignedCBC: true, SharedWith: []string{}, TeacherID: "t3", Subject: "Social Studies", EducationLevel: curriculum.UpperPrimary, CreatedAt: "10/09/2025"},
	}

	timetable := []TimetableSlot{
		{ID: "tt1", Day: "Monday", Period: "1", Subject: "Mathematics", TeacherID: "t1", ClassID: "c1", Time: "08:00-09:00"},
		{ID: "tt2", Day: "Monday", Period: "2", Subject: "English", TeacherID: "t2", ClassID: "c2", Time: "09:00-10:00"},
		{ID: "tt3", Day: "Tuesday", Period: "1", Subject: "Literacy", TeacherID: "t3", ClassID: "c3", Time: "08:00-09:00"},
		{ID: "tt4", Day: "Tuesday", Period: "2", Subject: "Physics", TeacherID: "t1", ClassID: "c4", Time: "09:00-10:00"},
		{ID: "tt5", Day: "Wednesday", Period: "1", Subject: "Language Activities", TeacherID: "t2", ClassID: "c5", Time: "08:00-09:00"},
		{ID: "tt6", Day: "Wednesday", Period: "2", Subject: "Science and Technology", TeacherID: "t1", ClassID: "c1", Time: "09:00-10:00"},
		{ID: "tt7", Day: "Thursday", Period: "1", Subject: "Integrated Science", TeacherID: "t3", ClassID: "c2", Time: "08:00-09:00"},
		{ID: "tt8", Day: "Friday", Period: "1", Subject: "Social Studies", TeacherID: "t3", ClassID: "c1", Time: "08:00-09:00"},
	}

	exams := []Exam{
		{ID: "e1", Name: "Mid-Term Math Exam", Date: "15/10/2025", ClassID: "c1", Subject: "Mathematics", Schedule: []ExamResult{{StudentID: "s1", Marks: 85}}},
		{ID: "e2", Name: "End-Term Science Test", Date: "20/11/2025", ClassID: "c2", Subject: "Integrated Science", Schedule: []ExamResult{{StudentID: "s2", Marks: 70}}},
		{ID: "e3", Name: "Physics CAT", Date: "25/11/2025", ClassID: "c4", Subject: "Physics", Schedule: []ExamResult{{StudentID: "s4", Marks: 65}}},
	}

	fees := []Fee{
		{ID: "f1", StudentID: "s1", Amount: 15000, DueDate: "30/11/2025", Description: "Term 3 Balance"},
		{ID: "f2", StudentID: "s2", Amount: 20000, DueDate: "30/11/2025", Description: "Term 3 Balance"},
		{ID: "f3", StudentID: "s4", Amount: 25000, DueDate: "30/11/2025", Description: "Term 3 Balance"},
		{ID: "f4", StudentID: "s5", Amount: 10000, DueDate: "30/11/2025", Description: "Term 3 Balance"},
	}

	staff := []Staff{
		{ID: "st1", Name: "Ms. Lucy Nduta", Role: "Accountant", Payroll: Payroll{Salary: 80000, Deductions: 8000, NetPay: 72000}, Email: "lucy.n@school.ac.ke", Phone: "+254700444555", LeaveBalance: 15},
		{ID: "st2", Name: "Mr. Peter Maina", Role: "IT Support", Payroll: Payroll{Salary: 60000, Deductions: 6000, NetPay: 54000}, Email: "peter.m@school.ac.ke", Phone: "+254700555666", LeaveBalance: 20},
		{ID: "st3", Name: "Mrs. Anne Wambui", Role: "Librarian", Payroll: Payroll{Salary: 50000, Deductions: 5000, NetPay: 45000}, Email: "anne.w@school.ac.ke", Phone: "+254700666777", LeaveBalance: 18},
	}

	messages := []Message{
		{ID: "m1", To: []string{"+254712345678"}, From: "school", Content: "Parent meeting on Friday at 2pm to discuss Term 3 progress", Type: SMS, Timestamp: "09/11/2025 14:30"},
		{ID: "m2", To: []string{"+254734567890"}, From: "school", Content: "Congratulations! Cynthia has been selected for the inter-school science competition", Type: Email, Timestamp: "08/11/2025 10:00", Read: true},
		{ID: "m3", To: []string{"+254756789012"}, From: "school", Content: "Reminder: Fee balance of KES 10,000 due by end of month", Type: SMS, Timestamp: "10/11/2025 09:00"},
	}

	events := []Event{
		{ID: "ev1", Title: "Sports Day", Date: "20/11/2025", Type: "School Event", Description: "Annual inter-house sports competition"},
		{ID: "ev2", Title: "Parent-Teacher Meeting", Date: "13/11/2025", Type: "Meeting", Description: "Term 3 progress review and discussion"},
		{ID: "ev3", Title: "Science Fair", Date: "25/11/2025", Type: "Academic", Description: "Student science project exhibition and awards"},
		{ID: "ev4", Title: "End of Term Closing", Date: "29/11/2025", Type: "School Event", Description: "Term 3 closing ceremony"},
	}

	reports := []Report{
		{
			ID:            "r1",
			StudentID:     "s1",
			Competencies:  students[0].Competencies,
			HolisticNotes: "Amina demonstrates excellent communication skills and shows strong leadership in group activities. She consistently participates in class discussions and helps peers. Her critical thinking abilities are evident in problem-solving tasks. Recommended for advanced mathematics program.",
			Term:          seedTerm,
			GeneratedAt:   "12/11/2025",
		},
		{
			ID:            "r2",
			StudentID:     "s3",
			Competencies:  students[2].Competencies,
			HolisticNotes: "Cynthia is an outstanding learner who excels across all competencies. Her critical thinking and citizenship values are exemplary. She actively contributes to environmental conservation initiatives and shows remarkable creativity in art activities.",
			Term:          seedTerm,
			GeneratedAt:   "12/11/2025",
		},
	}

	upToSenior := []curriculum.Level{curriculum.UpperPrimary, curriculum.JuniorSecondary, curriculum.SeniorSecondary}
	books := []Book{
		{ID: "b1", Title: "The River and the Source", Author: "Margaret Ogola", ISBN: "978-9966-46-842-7", Category: "Literature", EducationLevel: upToSenior, Quantity: 50, Available: 35, Publisher: "Focus Publishers", YearPublished: "1994", Description: "A classic Kenyan novel following the lives of four generations of women", CoverImage: "📚"},
		{ID: "b2", Title: "Mathematics for Grade 6", Author: "Kenya Institute of Curriculum Development", ISBN: "978-9966-00-123-4", Category: "Textbook", EducationLevel: []curriculum.Level{curriculum.UpperPrimary}, Quantity: 100, Available: 85, Publisher: "Kenya Literature Bureau", YearPublished: "2023", Description: "CBC-aligned mathematics textbook for Grade 6 learners", CoverImage: "📐"},
		{ID: "b3", Title: "Integrated Science Grade 8", Author: "KICD", ISBN: "978-9966-00-234-5", Category: "Textbook", EducationLevel: []curriculum.Level{curriculum.JuniorSecondary}, Quantity: 80, Available: 60, Publisher: "Longhorn Publishers", YearPublished: "2023", Description: "Comprehensive science textbook covering biology, chemistry, and physics", CoverImage: "🔬"},
		{ID: "b4", Title: "English Grammar in Use", Author: "Raymond Murphy", ISBN: "978-1-107-43920-1", Category: "Reference", EducationLevel: upToSenior, Quantity: 40, Available: 30, Publisher: "Cambridge University Press", YearPublished: "2019", Description: "Self-study reference and practice book for intermediate learners", CoverImage: "📖"},
		{ID: "b5", Title: "Kiswahili Sanifu", Author: "Mwangi wa Mutahi", ISBN: "978-9966-25-456-8", Category: "Language", EducationLevel: []curriculum.Level{curriculum.UpperPrimary, curriculum.JuniorSecondary}, Quantity: 60, Available: 45, Publisher: "East African Publishers", YearPublished: "2022", Description: "Comprehensive Kiswahili language guide for CBC", CoverImage: "📕"},
		{ID: "b6", Title: "Physics for Senior Secondary", Author: "Dr. John Kamau", ISBN: "978-9966-30-789-2", Category: "Textbook", EducationLevel: []curriculum.Level{curriculum.SeniorSecondary}, Quantity: 45, Available: 20, Publisher: "Oxford University Press", YearPublished: "2023", Description: "Advanced physics textbook for STEM pathway students", CoverImage: "⚛️"},
		{ID: "b7", Title: "Story Time Collection", Author: "Various Authors", ISBN: "978-9966-10-111-1", Category: "Fiction", EducationLevel: []curriculum.Level{curriculum.PrePrimary, curriculum.LowerPrimary}, Quantity: 75, Available: 70, Publisher: "Moran Publishers", YearPublished: "2021", Description: "Collection of age-appropriate stories for young learners", CoverImage: "📗"},
		{ID: "b8", Title: "Computer Science Grade 9", Author: "Tech Education Kenya", ISBN: "978-9966-40-555-3", Category: "Textbook", EducationLevel: []curriculum.Level{curriculum.JuniorSecondary}, Quantity: 35, Available: 25, Publisher: "Digital Learning Press", YearPublished: "2024", Description: "Introduction to programming and digital literacy", CoverImage: "💻"},
	}
	// b1 and b4 must not share the level slice
	books[3].EducationLevel = append([]curriculum.Level(nil), upToSenior...)

	bookLoans := []BookLoan{
		{ID: "bl1", BookID: "b1", BorrowerID: "s1", BorrowerType: BorrowerStudent, BorrowerName: "Amina Mwangi", DateIssued: "01/11/2025", DateDue: "15/11/2025", Status: LoanIssued},
		{ID: "bl2", BookID: "b6", BorrowerID: "s4", BorrowerType: BorrowerStudent, BorrowerName: "Daniel Kamau", DateIssued: "05/11/2025", DateDue: "19/11/2025", Status: LoanIssued},
		{ID: "bl3", BookID: "b4", BorrowerID: "t2", BorrowerType: BorrowerTeacher, BorrowerName: "Ms. Grace Wanjiru", DateIssued: "28/10/2025", DateDue: "11/11/2025", Status: LoanOverdue, Fine: 50},
		{ID: "bl4", BookID: "b2", BorrowerID: "s1", BorrowerType: BorrowerStudent, BorrowerName: "Amina Mwangi", DateIssued: "20/10/2025", DateDue: "03/11/2025", DateReturned: "02/11/2025", Status: LoanReturned},
		{ID: "bl5", BookID: "b3", BorrowerID: "s2", BorrowerType: BorrowerStudent, BorrowerName: "Brian Omondi", DateIssued: "10/11/2025", DateDue: "24/11/2025", Status: LoanIssued},
	}

	return Dataset{
		Students:    students,
		Teachers:    teachers,
		Classes:     classes,
		LessonPlans: lessonPlans,
		Timetable:   timetable,
		Exams:       exams,
		Fees:        fees,
		Staff:       staff,
		Messages:    messages,
		Events:      events,
		Reports:     reports,
		Books:       books,
		BookLoans:   bookLoans,
	}
}
