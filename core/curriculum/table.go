package curriculum

var table = map[Level]Stage{
	PrePrimary: ActivityStage{
		level:  PrePrimary,
		grades: []string{"PP1", "PP2"},
		Subjects: []string{
			"Environmental Activities",
			"Language Activities",
			"Psychomotor and Creative Activities",
			"Mathematical Activities",
			"Religious Education Activities",
		},
	},
	LowerPrimary: ActivityStage{
		level:  LowerPrimary,
		grades: []string{"Grade 1", "Grade 2", "Grade 3"},
		Subjects: []string{
			"Mathematical Activities",
			"Literacy",
			"English Language Activities",
			"Hygiene and Nutrition Activities",
			"Religious Education Activities",
			"Environmental Activities",
			"Movement and Creative Activities",
		},
	},
	UpperPrimary: PrimaryStage{
		grades: []string{"Grade 4", "Grade 5", "Grade 6"},
		Subjects: []string{
			"English",
			"Mathematics",
			"Agriculture",
			"Social Studies",
			"Kiswahili",
			"Home Science",
			"Science and Technology",
			"Physical and Health Education",
			"Religious Education (CRE/IRE/HRE)",
			"Creative Arts",
		},
		Optional: []string{"Foreign Languages"},
	},
	JuniorSecondary: JuniorStage{
		grades: []string{"Grade 7", "Grade 8", "Grade 9"},
		Core: []string{
			"Mathematics",
			"English",
			"Kiswahili",
			"Pre-Technical and Pre-Career Education",
			"Integrated Science",
			"Social Studies",
			"Agriculture",
			"Religious Education",
			"Health Education",
			"Life Skills Education",
			"Sports and Physical Education",
			"Business Studies",
		},
		Optional: []string{
			"Visual Arts",
			"Home Science",
			"Performing Arts",
			"Computer Science",
			"Foreign Languages (French/German/Arabic/Mandarin)",
			"Indigenous Languages",
		},
	},
	SeniorSecondary: SeniorStage{
		grades: []string{"Grade 10", "Grade 11", "Grade 12"},
		Pathways: map[Pathway][]string{
			ArtsAndSportsScience: {"Languages", "Humanities", "Sports Science", "Performing Arts", "Visual Arts"},
			STEM:                 {"Mathematics", "Physics", "Chemistry", "Biology", "Computer Science", "Engineering"},
			SocialSciences:       {"Business Studies", "Economics", "Geography", "History", "Government"},
		},
	},
}
