package handler

import (
	"errors"

	"campus-placement/internal/delivery/http/dto"
	"campus-placement/internal/delivery/http/middleware"
	"campus-placement/internal/pkg/response"
	"campus-placement/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type saveProfileRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	CollegeName     string   `json:"college_name"`
	Branch          string   `json:"branch"`
	CurrentSemester int      `json:"current_semester"`
	CGPA            float64  `json:"cgpa"`
	GraduationYear  int      `json:"graduation_year"`
	Skills          []string `json:"skills"`
	Interest        string   `json:"interest"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.Get)
	r.Post("/profile", h.Save)
	r.Put("/profile", h.Save)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	usn := middleware.Subject(c)
	if usn == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	prof, err := h.uc.Get(c.Context(), usn)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewStudentProfileResponse(prof))
}

// Save creates or updates the caller's own profile. Approval state is not part
// of the request and survives edits unchanged.
func (h *ProfileHandler) Save(c fiber.Ctx) error {
	usn := middleware.Subject(c)
	if usn == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	prof, err := h.uc.Save(c.Context(), usn, usecase.ProfileInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		CollegeName:     req.CollegeName,
		Branch:          req.Branch,
		CurrentSemester: req.CurrentSemester,
		CGPA:            req.CGPA,
		GraduationYear:  req.GraduationYear,
		Skills:          req.Skills,
		Interest:        req.Interest,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewStudentProfileResponse(prof))
}

func mapProfileUsecaseError(err error) error {
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
