package usecase

import (
	"context"
	"errors"
	"strings"

	"campus-placement/internal/pkg/jwt"
	"campus-placement/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
)

type RegisterInput struct {
	Email    string
	Password string
	Role     string
	Subject  string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (repository.Account, string, string, error)
	Login(ctx context.Context, in LoginInput) (repository.Account, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	accounts repository.AccountRepository
	jwt      jwt.Service
}

func NewAuthUsecase(accounts repository.AccountRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{accounts: accounts, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (repository.Account, string, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	subject := strings.TrimSpace(in.Subject)
	if email == "" || len(in.Password) < 8 || subject == "" {
		return repository.Account{}, "", "", ErrInvalidInput
	}
	switch in.Role {
	case repository.RoleStudent, repository.RoleDepartment, repository.RoleCompany:
	default:
		return repository.Account{}, "", "", ErrInvalidInput
	}

	if _, err := u.accounts.GetByEmail(ctx, email); err == nil {
		return repository.Account{}, "", "", ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return repository.Account{}, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.Account{}, "", "", ErrInternal
	}

	acc := repository.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Subject:      subject,
	}
	if err := u.accounts.Create(ctx, acc); err != nil {
		return repository.Account{}, "", "", err
	}

	return u.issue(acc)
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (repository.Account, string, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return repository.Account{}, "", "", ErrUnauthorized
	}

	acc, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return repository.Account{}, "", "", ErrUnauthorized
		}
		return repository.Account{}, "", "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)) != nil {
		return repository.Account{}, "", "", ErrUnauthorized
	}

	return u.issue(acc)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := u.jwt.ValidateToken(strings.TrimSpace(refreshToken))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	id := jwt.Identity{
		AccountID: claims.AccountID,
		Email:     claims.Email,
		Role:      claims.Role,
		Subject:   claims.Subject,
	}
	access, err := u.jwt.GenerateAccessToken(id)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(id)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) issue(acc repository.Account) (repository.Account, string, string, error) {
	id := jwt.Identity{AccountID: acc.ID, Email: acc.Email, Role: acc.Role, Subject: acc.Subject}

	access, err := u.jwt.GenerateAccessToken(id)
	if err != nil {
		return repository.Account{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(id)
	if err != nil {
		return repository.Account{}, "", "", ErrInternal
	}
	return acc, access, refresh, nil
}
