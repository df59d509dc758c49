package handler

import (
	"errors"
	"strconv"
	"strings"

	"campus-placement/internal/delivery/http/dto"
	"campus-placement/internal/delivery/http/middleware"
	"campus-placement/internal/domain/eligibility"
	"campus-placement/internal/pkg/response"
	"campus-placement/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// CatalogHandler serves the student-facing posting views. Every view is derived
// from the same catalog; they differ only in the filter applied.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
	apps    usecase.ApplicationUsecase
}

func NewCatalogHandler(catalog usecase.CatalogUsecase, apps usecase.ApplicationUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, apps: apps}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/postings", h.Search)
	r.Get("/postings/all", h.SearchAll)
	r.Get("/postings/available", h.Available)
	r.Get("/postings/eligible", h.Eligible)
}

// Search returns open postings matching the query criteria.
func (h *CatalogHandler) Search(c fiber.Ctx) error {
	criteria, err := criteriaFromQuery(c, false)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.catalog.Search(c.Context(), criteria)
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingResponses(items))
}

// SearchAll is the history view: expired postings stay in the result.
func (h *CatalogHandler) SearchAll(c fiber.Ctx) error {
	criteria, err := criteriaFromQuery(c, true)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.catalog.Search(c.Context(), criteria)
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingResponses(items))
}

// Available returns open postings the caller has not applied to yet.
func (h *CatalogHandler) Available(c fiber.Ctx) error {
	usn := middleware.Subject(c)
	if usn == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.apps.Available(c.Context(), usn)
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingResponses(items))
}

// Eligible returns open postings whose requirements the caller's profile meets.
func (h *CatalogHandler) Eligible(c fiber.Ctx) error {
	usn := middleware.Subject(c)
	if usn == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.catalog.EligibleFor(c.Context(), usn)
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingResponses(items))
}

func criteriaFromQuery(c fiber.Ctx, includeExpired bool) (eligibility.Criteria, error) {
	criteria := eligibility.Criteria{
		JobType:        c.Query("jobType"),
		WorkMode:       c.Query("workMode"),
		City:           c.Query("city"),
		State:          c.Query("state"),
		Branches:       parseListQuery(c.Query("allowedBranches")),
		Skills:         parseListQuery(c.Query("requiredSkills")),
		IncludeExpired: includeExpired,
	}

	if s := c.Query("minCGPA"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return eligibility.Criteria{}, err
		}
		criteria.MinCGPA = &v
	}
	if s := c.Query("graduationYear"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return eligibility.Criteria{}, err
		}
		criteria.GraduationYear = &v
	}

	return criteria, nil
}

func parseListQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func mapCatalogUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
