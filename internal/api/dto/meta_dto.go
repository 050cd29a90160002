package dto

import "github.com/spec-kit/hr-triage-service/internal/domain"

// CategoryOption is one classification category for portal pickers.
type CategoryOption struct {
	Name domain.Category `json:"name"`
}

// UrgencyOption pairs an urgency level with its badge variant.
type UrgencyOption struct {
	Name  domain.Urgency      `json:"name"`
	Badge domain.BadgeVariant `json:"badge"`
}

// DepartmentOption is one department for the submission form.
type DepartmentOption struct {
	Name domain.Department `json:"name"`
}

// CategoriesResponse lists the canonical categories and urgency levels.
type CategoriesResponse struct {
	Categories []CategoryOption `json:"categories"`
	Urgencies  []UrgencyOption  `json:"urgencies"`
}

// DepartmentsResponse lists the selectable departments.
type DepartmentsResponse struct {
	Departments []DepartmentOption `json:"departments"`
}

// NewCategoriesResponse builds the category listing in canonical order.
func NewCategoriesResponse() CategoriesResponse {
	resp := CategoriesResponse{}
	for _, cat := range domain.Categories() {
		resp.Categories = append(resp.Categories, CategoryOption{Name: cat})
	}
	for _, level := range domain.Urgencies() {
		resp.Urgencies = append(resp.Urgencies, UrgencyOption{
			Name:  level,
			Badge: domain.UrgencyBadge(level),
		})
	}
	return resp
}

// NewDepartmentsResponse builds the department listing.
func NewDepartmentsResponse() DepartmentsResponse {
	resp := DepartmentsResponse{}
	for _, dep := range domain.Departments() {
		resp.Departments = append(resp.Departments, DepartmentOption{Name: dep})
	}
	return resp
}
