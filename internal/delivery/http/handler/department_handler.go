package handler

import (
	"errors"

	"campus-placement/internal/delivery/http/dto"
	"campus-placement/internal/delivery/http/middleware"
	"campus-placement/internal/domain/department"
	"campus-placement/internal/pkg/response"
	"campus-placement/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// DepartmentHandler serves the department staff surface. The caller's subject is
// the department name; every view is scoped to the USN partition that name
// resolves to.
type DepartmentHandler struct {
	departments usecase.DepartmentUsecase
	approvals   usecase.ApprovalUsecase
	dashboards  usecase.DashboardUsecase
}

func NewDepartmentHandler(departments usecase.DepartmentUsecase, approvals usecase.ApprovalUsecase, dashboards usecase.DashboardUsecase) *DepartmentHandler {
	return &DepartmentHandler{departments: departments, approvals: approvals, dashboards: dashboards}
}

func (h *DepartmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/students", h.Students)
	r.Get("/students/approved", h.ApprovedStudents)
	r.Post("/students/:usn/approve", h.Approve)
	r.Get("/dashboard", h.Dashboard)
}

func (h *DepartmentHandler) Students(c fiber.Ctx) error {
	view, err := h.departments.Students(c.Context(), middleware.Subject(c))
	if err != nil {
		return mapDepartmentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, departmentStudentsResponse(view))
}

func (h *DepartmentHandler) ApprovedStudents(c fiber.Ctx) error {
	view, err := h.departments.ApprovedStudents(c.Context(), middleware.Subject(c))
	if err != nil {
		return mapDepartmentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, departmentStudentsResponse(view))
}

// Approve marks one student in the caller's department as approved. Repeating
// the call returns the already-approved profile unchanged.
func (h *DepartmentHandler) Approve(c fiber.Ctx) error {
	usn := c.Params("usn")
	reviewer, _ := c.Locals(middleware.CtxEmailKey).(string)
	if reviewer == "" {
		reviewer = middleware.Subject(c)
	}

	prof, err := h.approvals.Approve(c.Context(), usn, reviewer, middleware.Subject(c))
	if err != nil {
		return mapDepartmentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewStudentProfileResponse(prof))
}

func (h *DepartmentHandler) Dashboard(c fiber.Ctx) error {
	metrics, err := h.dashboards.DepartmentMetrics(c.Context(), middleware.Subject(c))
	if err != nil {
		return mapDepartmentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, metrics)
}

func departmentStudentsResponse(view usecase.DepartmentView) dto.DepartmentStudentsResponse {
	return dto.DepartmentStudentsResponse{
		Department: view.Name,
		Code:       view.Code,
		Students:   dto.NewStudentProfileResponses(view.Students),
	}
}

func mapDepartmentUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Student not found", nil, err)
	case errors.Is(err, usecase.ErrNotDepartmentStudent):
		return middleware.NewAppError(fiber.StatusForbidden, "Student belongs to another department", nil, err)
	case errors.Is(err, department.ErrNoDepartment), errors.Is(err, department.ErrInvalidUSN):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
