package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-placement/internal/pkg/jwt"
	"campus-placement/internal/repository"
)

func newAuthUC() (*Auth, *fakeAccountRepo) {
	repo := newFakeAccountRepo()
	svc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthUsecase(repo, svc), repo
}

func TestAuth_RegisterThenLogin(t *testing.T) {
	uc, _ := newAuthUC()

	acc, access, refresh, err := uc.Register(context.Background(), RegisterInput{
		Email:    "Asha@Example.com",
		Password: "strong-password",
		Role:     repository.RoleStudent,
		Subject:  "4HG23CS045",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if acc.Email != "asha@example.com" {
		t.Fatalf("email not normalized: %q", acc.Email)
	}
	if access == "" || refresh == "" {
		t.Fatal("register must issue both tokens")
	}

	if _, _, _, err := uc.Login(context.Background(), LoginInput{Email: "asha@example.com", Password: "strong-password"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, _, _, err := uc.Login(context.Background(), LoginInput{Email: "asha@example.com", Password: "wrong"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for bad password, got %v", err)
	}
}

func TestAuth_Register_Validation(t *testing.T) {
	uc, _ := newAuthUC()

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"short password", RegisterInput{Email: "a@b.com", Password: "short", Role: repository.RoleStudent, Subject: "4HG23CS045"}},
		{"unknown role", RegisterInput{Email: "a@b.com", Password: "strong-password", Role: "admin", Subject: "x"}},
		{"empty subject", RegisterInput{Email: "a@b.com", Password: "strong-password", Role: repository.RoleCompany, Subject: " "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, _, err := uc.Register(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	uc, _ := newAuthUC()

	in := RegisterInput{Email: "a@b.com", Password: "strong-password", Role: repository.RoleCompany, Subject: "Acme Corp"}
	if _, _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_Refresh(t *testing.T) {
	uc, _ := newAuthUC()

	_, access, refresh, err := uc.Register(context.Background(), RegisterInput{
		Email:    "staff@college.edu",
		Password: "strong-password",
		Role:     repository.RoleDepartment,
		Subject:  "Computer Science",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	newAccess, newRefresh, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Fatal("refresh must issue both tokens")
	}

	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token must not refresh, got %v", err)
	}
	if _, _, err := uc.Refresh(context.Background(), "garbage"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
