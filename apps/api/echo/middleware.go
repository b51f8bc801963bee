package echoapi

import "github.com/trezcool/elimu/core/school"

var (
	adminOnly = roleMiddleware(school.RoleAdmin)
	staffOnly = roleMiddleware(school.RoleAdmin, school.RoleTeacher)
)
