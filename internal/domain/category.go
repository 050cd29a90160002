package domain

// Category is one of the fixed HR request categories assigned by
// classification.
type Category string

const (
	CategoryBenefitsEnrollment   Category = "Benefits Enrollment"
	CategoryPTOLeaveRequests     Category = "PTO/Leave Requests"
	CategoryPayrollIssues        Category = "Payroll Issues"
	CategoryITAccessRequests     Category = "IT Access Requests"
	CategoryPolicyClarifications Category = "Policy Clarifications"
	CategoryPerformanceReviews   Category = "Performance Reviews"
	CategoryOnboardingStatus     Category = "Onboarding Status"
	CategoryEquipmentRequests    Category = "Equipment Requests"
	CategoryTaxW2Documents       Category = "Tax/W2 Documents"
	Category401kRetirement       Category = "401k/Retirement"
	CategoryHealthInsurance      Category = "Health Insurance"
	CategoryExpenseReimbursement Category = "Expense Reimbursement"
	CategoryRoleTitleChanges     Category = "Role/Title Changes"
	CategoryWorkspaceFacilities  Category = "Workspace/Facilities"
	CategoryGeneralHRInquiries   Category = "General HR Inquiries"
)

// Categories returns all fifteen categories in canonical order. Analytics
// distributions and chart axes iterate this list so zero-count categories
// still appear.
func Categories() []Category {
	return []Category{
		CategoryBenefitsEnrollment,
		CategoryPTOLeaveRequests,
		CategoryPayrollIssues,
		CategoryITAccessRequests,
		CategoryPolicyClarifications,
		CategoryPerformanceReviews,
		CategoryOnboardingStatus,
		CategoryEquipmentRequests,
		CategoryTaxW2Documents,
		Category401kRetirement,
		CategoryHealthInsurance,
		CategoryExpenseReimbursement,
		CategoryRoleTitleChanges,
		CategoryWorkspaceFacilities,
		CategoryGeneralHRInquiries,
	}
}

// ValidCategory reports whether c is one of the canonical categories.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
