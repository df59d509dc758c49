package dto

import (
	"campus-placement/internal/repository"

	"github.com/google/uuid"
)

type AccountResponse struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	Subject string    `json:"subject"`
}

func NewAccountResponse(a repository.Account) AccountResponse {
	return AccountResponse{ID: a.ID, Email: a.Email, Role: a.Role, Subject: a.Subject}
}
