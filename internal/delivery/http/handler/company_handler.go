package handler

import (
	"errors"
	"time"

	"campus-placement/internal/delivery/http/dto"
	"campus-placement/internal/delivery/http/middleware"
	"campus-placement/internal/pkg/response"
	"campus-placement/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// CompanyHandler serves the company surface. The caller's subject is the company
// name; it owns exactly the postings created under that name.
type CompanyHandler struct {
	postings   usecase.PostingUsecase
	apps       usecase.ApplicationUsecase
	dashboards usecase.DashboardUsecase
}

type postingRequest struct {
	JobTitle            string   `json:"job_title"`
	JobType             string   `json:"job_type"`
	WorkMode            string   `json:"work_mode"`
	City                string   `json:"city"`
	State               string   `json:"state"`
	Salary              string   `json:"salary"`
	NumberOfPositions   int      `json:"number_of_positions"`
	DegreeRequired      string   `json:"degree_required"`
	AllowedBranches     []string `json:"allowed_branches"`
	RequiredSkills      []string `json:"required_skills"`
	GraduationYear      int      `json:"graduation_year"`
	MinCGPA             float64  `json:"min_cgpa"`
	BacklogAllowed      bool     `json:"backlog_allowed"`
	ApplicationDeadline string   `json:"application_deadline"`
}

func NewCompanyHandler(postings usecase.PostingUsecase, apps usecase.ApplicationUsecase, dashboards usecase.DashboardUsecase) *CompanyHandler {
	return &CompanyHandler{postings: postings, apps: apps, dashboards: dashboards}
}

func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/postings", h.Create)
	r.Get("/postings", h.List)
	r.Put("/postings/:id", h.Update)
	r.Delete("/postings/:id", h.Delete)
	r.Get("/applications", h.Applications)
	r.Get("/dashboard", h.Dashboard)
}

func (h *CompanyHandler) Create(c fiber.Ctx) error {
	in, err := postingInputFromRequest(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.postings.Create(c.Context(), middleware.Subject(c), in)
	if err != nil {
		return mapPostingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewPostingResponse(p))
}

func (h *CompanyHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in, err := postingInputFromRequest(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.postings.Update(c.Context(), middleware.Subject(c), id, in)
	if err != nil {
		return mapPostingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingResponse(p))
}

func (h *CompanyHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.postings.Delete(c.Context(), middleware.Subject(c), id); err != nil {
		return mapPostingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	items, err := h.postings.ListByCompany(c.Context(), middleware.Subject(c))
	if err != nil {
		return mapPostingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingResponses(items))
}

func (h *CompanyHandler) Applications(c fiber.Ctx) error {
	apps, err := h.apps.ListForCompany(c.Context(), middleware.Subject(c))
	if err != nil {
		return mapPostingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponses(apps))
}

func (h *CompanyHandler) Dashboard(c fiber.Ctx) error {
	metrics, err := h.dashboards.CompanyMetrics(c.Context(), middleware.Subject(c))
	if err != nil {
		return mapPostingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, metrics)
}

func postingInputFromRequest(c fiber.Ctx) (usecase.PostingInput, error) {
	var req postingRequest
	if err := c.Bind().Body(&req); err != nil {
		return usecase.PostingInput{}, err
	}

	deadline, err := time.Parse(time.RFC3339, req.ApplicationDeadline)
	if err != nil {
		return usecase.PostingInput{}, err
	}

	return usecase.PostingInput{
		JobTitle:            req.JobTitle,
		JobType:             req.JobType,
		WorkMode:            req.WorkMode,
		City:                req.City,
		State:               req.State,
		Salary:              req.Salary,
		NumberOfPositions:   req.NumberOfPositions,
		DegreeRequired:      req.DegreeRequired,
		AllowedBranches:     req.AllowedBranches,
		RequiredSkills:      req.RequiredSkills,
		GraduationYear:      req.GraduationYear,
		MinCGPA:             req.MinCGPA,
		BacklogAllowed:      req.BacklogAllowed,
		ApplicationDeadline: deadline,
	}, nil
}

func mapPostingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrNotPostingOwner):
		return middleware.NewAppError(fiber.StatusForbidden, "Posting belongs to another company", nil, err)
	case errors.Is(err, usecase.ErrPostingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Posting not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
