package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"campus-placement/internal/domain/eligibility"
	"campus-placement/internal/domain/posting"
	"campus-placement/internal/repository"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInternal        = errors.New("internal error")
)

const catalogCacheTTL = 2 * time.Minute

type CatalogUsecase interface {
	Search(ctx context.Context, criteria eligibility.Criteria) ([]posting.JobPosting, error)
	EligibleFor(ctx context.Context, usn string) ([]posting.JobPosting, error)
}

type Catalog struct {
	postings repository.PostingRepository
	students repository.StudentRepository
	cache    Cache
	logger   *log.Logger
	now      func() time.Time
}

func NewCatalogUsecase(postings repository.PostingRepository, students repository.StudentRepository, cache Cache, logger *log.Logger) *Catalog {
	return &Catalog{postings: postings, students: students, cache: cache, logger: logger, now: time.Now}
}

// Search runs the filter engine over the full catalog in search mode. Results for
// equivalent criteria are served from cache while the entry lives; on a miss a
// short NX lock keeps concurrent requests from all rebuilding the same entry.
func (u *Catalog) Search(ctx context.Context, criteria eligibility.Criteria) ([]posting.JobPosting, error) {
	key := CatalogSearchCacheKey(criteria)
	if u.cache != nil {
		var cached []posting.JobPosting
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}

		ok, err := u.cache.SetIfNotExists(ctx, CatalogSearchLockKey(key), "1", 30*time.Second)
		if err == nil && !ok {
			// Another request is rebuilding; give it a moment and re-check.
			time.Sleep(200 * time.Millisecond)
			if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
				return cached, nil
			}
		}
	}

	all, err := u.postings.List(ctx)
	if err != nil {
		return nil, err
	}

	out := eligibility.Filter(all, criteria, u.now())

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, catalogCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("catalog cache write failed | key=%s error=%v", key, err)
		}
	}
	return out, nil
}

// EligibleFor runs the engine in eligibility mode, bound to the caller's profile.
func (u *Catalog) EligibleFor(ctx context.Context, usn string) ([]posting.JobPosting, error) {
	prof, err := u.students.GetByUSN(ctx, usn)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	all, err := u.postings.List(ctx)
	if err != nil {
		return nil, err
	}

	return eligibility.EligibleFor(all, prof, u.now()), nil
}
