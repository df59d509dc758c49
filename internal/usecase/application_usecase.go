package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"campus-placement/internal/domain/application"
	"campus-placement/internal/domain/eligibility"
	"campus-placement/internal/domain/posting"
	"campus-placement/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrAlreadyApplied  = errors.New("already applied")
	ErrPostingClosed   = errors.New("posting is past its application deadline")
	ErrPostingNotFound = errors.New("posting not found")
)

// DashboardNotifier pushes a refresh hint to connected dashboard clients. A nil
// notifier is fine; delivery is best effort either way.
type DashboardNotifier interface {
	NotifyDashboardUpdated(scope, key string)
}

type ApplicationUsecase interface {
	Available(ctx context.Context, usn string) ([]posting.JobPosting, error)
	Submit(ctx context.Context, usn string, jobID uuid.UUID) (application.Application, error)
	ListForStudent(ctx context.Context, usn string) ([]application.Application, error)
	ListForCompany(ctx context.Context, companyName string) ([]application.Application, error)
}

type Applications struct {
	apps     repository.ApplicationRepository
	postings repository.PostingRepository
	cache    Cache
	notifier DashboardNotifier
	now      func() time.Time
}

func NewApplicationUsecase(apps repository.ApplicationRepository, postings repository.PostingRepository, cache Cache, notifier DashboardNotifier) *Applications {
	return &Applications{apps: apps, postings: postings, cache: cache, notifier: notifier, now: time.Now}
}

// Available returns the open postings the student has not applied to yet.
func (u *Applications) Available(ctx context.Context, usn string) ([]posting.JobPosting, error) {
	usn = strings.TrimSpace(usn)
	if usn == "" {
		return nil, ErrInvalidInput
	}

	all, err := u.postings.List(ctx)
	if err != nil {
		return nil, err
	}
	open := eligibility.Filter(all, eligibility.Criteria{}, u.now())

	existing, err := u.apps.ListByStudent(ctx, usn)
	if err != nil {
		return nil, err
	}

	return application.AvailableFor(usn, open, existing), nil
}

// Submit is the authoritative duplicate guard: the repository insert is atomic on
// the (studentUsn, jobId) key, so the availability check the UI ran earlier does
// not need to be trusted here.
func (u *Applications) Submit(ctx context.Context, usn string, jobID uuid.UUID) (application.Application, error) {
	usn = strings.TrimSpace(usn)
	if usn == "" || jobID == uuid.Nil {
		return application.Application{}, ErrInvalidInput
	}

	p, err := u.postings.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return application.Application{}, ErrPostingNotFound
		}
		return application.Application{}, err
	}

	now := u.now()
	if !p.Open(now) {
		return application.Application{}, ErrPostingClosed
	}

	a := application.New(usn, p, now)
	inserted, err := u.apps.Insert(ctx, a)
	if err != nil {
		return application.Application{}, err
	}
	if !inserted {
		return application.Application{}, ErrAlreadyApplied
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, CompanyDashboardCacheKey(p.CompanyName))
	}
	if u.notifier != nil {
		u.notifier.NotifyDashboardUpdated("company", p.CompanyName)
	}

	return a, nil
}

func (u *Applications) ListForStudent(ctx context.Context, usn string) ([]application.Application, error) {
	usn = strings.TrimSpace(usn)
	if usn == "" {
		return nil, ErrInvalidInput
	}
	return u.apps.ListByStudent(ctx, usn)
}

func (u *Applications) ListForCompany(ctx context.Context, companyName string) ([]application.Application, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, ErrInvalidInput
	}
	return u.apps.ListByCompany(ctx, companyName)
}
