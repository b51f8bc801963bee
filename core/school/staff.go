package school

const defaultLeaveBalance = 20

type NewStaff struct {
	Name       string  `json:"name" validate:"required"`
	Role       string  `json:"role" validate:"required"`
	Salary     float64 `json:"salary" validate:"gt=0"`
	Deductions float64 `json:"deductions" validate:"min=0"`
	Email      string  `json:"email" validate:"omitempty,email"`
	Phone      string  `json:"phone"`
}

// AddStaff hires a staff member. Net pay is computed once here and stored.
func (d Dataset) AddStaff(ns NewStaff) (Staff, []Replacement) {
	id, seq := d.nextID(string(StaffList))
	st := Staff{
		ID:   id,
		Name: ns.Name,
		Role: ns.Role,
		Payroll: Payroll{
			Salary:     ns.Salary,
			Deductions: ns.Deductions,
			NetPay:     ns.Salary - ns.Deductions,
		},
		Email:        ns.Email,
		Phone:        ns.Phone,
		LeaveBalance: defaultLeaveBalance,
	}
	return st, []Replacement{ReplaceStaff(appended(d.Staff, st)), seq}
}
