package domain

// Department identifies the submitting employee's department.
type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentFinance     Department = "Finance"
	DepartmentHR          Department = "HR"
	DepartmentOperations  Department = "Operations"
)

// Departments returns the selectable departments in display order.
func Departments() []Department {
	return []Department{
		DepartmentEngineering,
		DepartmentSales,
		DepartmentMarketing,
		DepartmentFinance,
		DepartmentHR,
		DepartmentOperations,
	}
}

// ValidDepartment reports whether d is one of the canonical departments.
func ValidDepartment(d Department) bool {
	for _, known := range Departments() {
		if d == known {
			return true
		}
	}
	return false
}
