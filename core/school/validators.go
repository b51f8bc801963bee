package school

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/curriculum"
)

var (
	eduLevelTag  = "edulevel"
	eduLevelText = "{0} must be a valid education level"

	attendanceTag  = "attendance"
	attendanceText = "{0} must be one of present, absent or late"

	msgTypeTag  = "msgtype"
	msgTypeText = "{0} must be one of SMS or Email"

	borrowerTag  = "borrower"
	borrowerText = "{0} must be one of Student, Teacher or Staff"

	gradeForLevelTag  = "grade_for_level"
	gradeForLevelText = "{0} is not a grade of this education level"

	pathwayTag  = "pathway"
	pathwayText = "{0} is only available to Senior Secondary students and must be a known pathway"

	recipientsTag  = "recipients"
	recipientsText = "{0} must contain at least one recipient"
)

// studentForm is implemented by NewStudent and UpdateStudent.
type studentForm interface {
	level() curriculum.Level
	grade() string
	pathway() *curriculum.Pathway
}

// InitValidators registers the school validation tags and their translations.
// core.InitValidators must have been called on `validate` first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(eduLevelTag, eduLevelValidation)
	core.RegisterCustomTranslation(validate, translator, eduLevelTag, eduLevelText)

	_ = validate.RegisterValidation(attendanceTag, attendanceValidation)
	core.RegisterCustomTranslation(validate, translator, attendanceTag, attendanceText)

	_ = validate.RegisterValidation(msgTypeTag, msgTypeValidation)
	core.RegisterCustomTranslation(validate, translator, msgTypeTag, msgTypeText)

	_ = validate.RegisterValidation(borrowerTag, borrowerValidation)
	core.RegisterCustomTranslation(validate, translator, borrowerTag, borrowerText)

	validate.RegisterStructValidation(studentStructValidation, NewStudent{}, UpdateStudent{})
	core.RegisterCustomTranslation(validate, translator, gradeForLevelTag, gradeForLevelText)
	core.RegisterCustomTranslation(validate, translator, pathwayTag, pathwayText)

	validate.RegisterStructValidation(messageStructValidation, NewMessage{})
	core.RegisterCustomTranslation(validate, translator, recipientsTag, recipientsText)
}

// Custom Validators

func eduLevelValidation(fl validator.FieldLevel) bool {
	return curriculum.Level(fl.Field().String()).Valid()
}

func attendanceValidation(fl validator.FieldLevel) bool {
	return AttendanceStatus(fl.Field().String()).Valid()
}

func msgTypeValidation(fl validator.FieldLevel) bool {
	return MessageType(fl.Field().String()).Valid()
}

func borrowerValidation(fl validator.FieldLevel) bool {
	return BorrowerType(fl.Field().String()).Valid()
}

// studentStructValidation checks the grade against the education level,
// and that a career pathway is only picked at Senior Secondary.
func studentStructValidation(sl validator.StructLevel) {
	form, ok := sl.Current().Interface().(studentForm)
	if !ok {
		return
	}
	level := form.level()
	if level.Valid() && form.grade() != "" && !curriculum.HasGrade(level, form.grade()) {
		sl.ReportError(form.grade(), "grade", "Grade", gradeForLevelTag, "")
	}
	if p := form.pathway(); p != nil && (level != curriculum.SeniorSecondary || !p.Valid()) {
		sl.ReportError(*p, "careerPathway", "CareerPathway", pathwayTag, "")
	}
}

func messageStructValidation(sl validator.StructLevel) {
	if nm, ok := sl.Current().Interface().(NewMessage); ok {
		if nm.Recipients != "" && len(core.SplitAndClean(nm.Recipients, ",")) == 0 {
			sl.ReportError(nm.Recipients, "recipients", "Recipients", recipientsTag, "")
		}
	}
}
