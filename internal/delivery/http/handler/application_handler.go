package handler

import (
	"errors"

	"campus-placement/internal/delivery/http/dto"
	"campus-placement/internal/delivery/http/middleware"
	"campus-placement/internal/pkg/response"
	"campus-placement/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type submitApplicationRequest struct {
	JobID string `json:"job_id"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/applications", h.Submit)
	r.Get("/applications", h.List)
}

// Submit records one application for the caller. A repeat submission for the
// same posting is a conflict, not a second application.
func (h *ApplicationHandler) Submit(c fiber.Ctx) error {
	usn := middleware.Subject(c)
	if usn == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req submitApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.Submit(c.Context(), usn, jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewApplicationResponse(app))
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	usn := middleware.Subject(c)
	if usn == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	apps, err := h.uc.ListForStudent(c.Context(), usn)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponses(apps))
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this posting", nil, err)
	case errors.Is(err, usecase.ErrPostingClosed):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Posting is past its application deadline", nil, err)
	case errors.Is(err, usecase.ErrPostingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Posting not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
