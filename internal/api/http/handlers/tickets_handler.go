package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-triage-service/internal/api/dto"
	"github.com/spec-kit/hr-triage-service/internal/domain"
	"github.com/spec-kit/hr-triage-service/internal/query"
	"github.com/spec-kit/hr-triage-service/internal/service"
	"github.com/spec-kit/hr-triage-service/pkg/util"
)

// TicketsHandler manages the employee ticket endpoints.
type TicketsHandler struct {
	service *service.TriageService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(triageService *service.TriageService) *TicketsHandler {
	return &TicketsHandler{service: triageService}
}

// Submit POST /api/tickets.
func (h *TicketsHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.Submit(c.UserContext(), service.SubmitInput{
		EmployeeName: req.EmployeeName,
		Department:   domain.Department(req.Department),
		Description:  req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// List GET /api/tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	tickets, err := h.service.ListTickets(c.UserContext(), service.ListInput{
		Filter: query.Filter{
			Status:     domain.TicketStatus(strings.TrimSpace(c.Query("status"))),
			Category:   domain.Category(strings.TrimSpace(c.Query("category"))),
			Department: domain.Department(strings.TrimSpace(c.Query("department"))),
		},
		Search: c.Query("q"),
		Limit:  parseInt(c.Query("limit"), 50),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketListResponse(tickets)})
}

// Get GET /api/tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	ticket, err := h.service.GetTicket(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// Feedback POST /api/tickets/:id/feedback.
func (h *TicketsHandler) Feedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := h.service.SubmitFeedback(c.UserContext(), c.Params("id"), req.Helpful, req.Comment); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"recorded": true}})
}

// Override POST /api/tickets/:id/override.
func (h *TicketsHandler) Override(c *fiber.Ctx) error {
	ticket, err := h.service.Override(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
