package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"campus-placement/internal/domain/posting"
	"campus-placement/internal/repository"

	"github.com/google/uuid"
)

var ErrNotPostingOwner = errors.New("posting belongs to another company")

type PostingInput struct {
	JobTitle            string
	JobType             string
	WorkMode            string
	City                string
	State               string
	Salary              string
	NumberOfPositions   int
	DegreeRequired      string
	AllowedBranches     []string
	RequiredSkills      []string
	GraduationYear      int
	MinCGPA             float64
	BacklogAllowed      bool
	ApplicationDeadline time.Time
}

type PostingUsecase interface {
	Create(ctx context.Context, companyName string, in PostingInput) (posting.JobPosting, error)
	Update(ctx context.Context, companyName string, id uuid.UUID, in PostingInput) (posting.JobPosting, error)
	Delete(ctx context.Context, companyName string, id uuid.UUID) error
	ListByCompany(ctx context.Context, companyName string) ([]posting.JobPosting, error)
}

type Postings struct {
	postings repository.PostingRepository
	cache    Cache
	now      func() time.Time
}

func NewPostingUsecase(postings repository.PostingRepository, cache Cache) *Postings {
	return &Postings{postings: postings, cache: cache, now: time.Now}
}

func (u *Postings) Create(ctx context.Context, companyName string, in PostingInput) (posting.JobPosting, error) {
	p, err := u.build(companyName, in)
	if err != nil {
		return posting.JobPosting{}, err
	}
	p.ID = uuid.New()
	p.CreatedAt = u.now().UTC()

	if err := u.postings.Create(ctx, p); err != nil {
		return posting.JobPosting{}, err
	}
	u.invalidate(ctx, p.CompanyName)
	return p, nil
}

func (u *Postings) Update(ctx context.Context, companyName string, id uuid.UUID, in PostingInput) (posting.JobPosting, error) {
	existing, err := u.postings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return posting.JobPosting{}, ErrPostingNotFound
		}
		return posting.JobPosting{}, err
	}
	if !strings.EqualFold(existing.CompanyName, strings.TrimSpace(companyName)) {
		return posting.JobPosting{}, ErrNotPostingOwner
	}

	p, err := u.build(existing.CompanyName, in)
	if err != nil {
		return posting.JobPosting{}, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := u.postings.Update(ctx, p); err != nil {
		return posting.JobPosting{}, err
	}
	u.invalidate(ctx, p.CompanyName)
	return p, nil
}

func (u *Postings) Delete(ctx context.Context, companyName string, id uuid.UUID) error {
	existing, err := u.postings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return ErrPostingNotFound
		}
		return err
	}
	if !strings.EqualFold(existing.CompanyName, strings.TrimSpace(companyName)) {
		return ErrNotPostingOwner
	}

	if err := u.postings.Delete(ctx, id); err != nil {
		return err
	}
	u.invalidate(ctx, existing.CompanyName)
	return nil
}

func (u *Postings) ListByCompany(ctx context.Context, companyName string) ([]posting.JobPosting, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, ErrInvalidInput
	}
	return u.postings.ListByCompany(ctx, companyName)
}

func (u *Postings) build(companyName string, in PostingInput) (posting.JobPosting, error) {
	companyName = strings.TrimSpace(companyName)
	title := strings.TrimSpace(in.JobTitle)
	if companyName == "" || title == "" {
		return posting.JobPosting{}, ErrInvalidInput
	}

	jobType, err := posting.ParseJobType(in.JobType)
	if err != nil {
		return posting.JobPosting{}, ErrInvalidInput
	}
	workMode, err := posting.ParseWorkMode(in.WorkMode)
	if err != nil {
		return posting.JobPosting{}, ErrInvalidInput
	}

	if in.NumberOfPositions <= 0 {
		return posting.JobPosting{}, ErrInvalidInput
	}
	if in.MinCGPA < 0 || in.MinCGPA > 10 {
		return posting.JobPosting{}, ErrInvalidInput
	}
	if in.ApplicationDeadline.IsZero() {
		return posting.JobPosting{}, ErrInvalidInput
	}

	return posting.JobPosting{
		CompanyName:         companyName,
		JobTitle:            title,
		JobType:             jobType,
		WorkMode:            workMode,
		City:                strings.TrimSpace(in.City),
		State:               strings.TrimSpace(in.State),
		Salary:              strings.TrimSpace(in.Salary),
		NumberOfPositions:   in.NumberOfPositions,
		DegreeRequired:      strings.TrimSpace(in.DegreeRequired),
		AllowedBranches:     trimList(in.AllowedBranches),
		RequiredSkills:      trimList(in.RequiredSkills),
		GraduationYear:      in.GraduationYear,
		MinCGPA:             in.MinCGPA,
		BacklogAllowed:      in.BacklogAllowed,
		ApplicationDeadline: in.ApplicationDeadline,
	}, nil
}

// invalidate drops cached catalog searches and the company dashboard after any
// catalog mutation.
func (u *Postings) invalidate(ctx context.Context, companyName string) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, "postings:search:*")
	_ = u.cache.Delete(ctx, CompanyDashboardCacheKey(companyName))
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
