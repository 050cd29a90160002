package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-triage-service/internal/api/dto"
)

// MetaHandler serves the static enumerations the portal renders from.
type MetaHandler struct{}

// NewMetaHandler constructs handler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Categories GET /api/categories.
func (h *MetaHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewCategoriesResponse()})
}

// Departments GET /api/departments.
func (h *MetaHandler) Departments(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewDepartmentsResponse()})
}
