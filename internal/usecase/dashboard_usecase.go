package usecase

import (
	"context"
	"log"
	"time"

	"campus-placement/internal/domain/dashboard"
	"campus-placement/internal/domain/department"
	"campus-placement/internal/domain/student"
	"campus-placement/internal/repository"
)

const dashboardCacheTTL = time.Minute

type DashboardUsecase interface {
	DepartmentMetrics(ctx context.Context, departmentName string) (dashboard.Metrics, error)
	CompanyMetrics(ctx context.Context, companyName string) (dashboard.Metrics, error)
}

type Dashboards struct {
	students repository.StudentRepository
	postings repository.PostingRepository
	cache    Cache
	logger   *log.Logger
	now      func() time.Time
}

func NewDashboardUsecase(students repository.StudentRepository, postings repository.PostingRepository, cache Cache, logger *log.Logger) *Dashboards {
	return &Dashboards{students: students, postings: postings, cache: cache, logger: logger, now: time.Now}
}

// DepartmentMetrics aggregates over the department's student partition and the
// whole posting catalog. The counts are a snapshot; staleness is bounded by the
// cache TTL plus the invalidation done on approval.
func (u *Dashboards) DepartmentMetrics(ctx context.Context, departmentName string) (dashboard.Metrics, error) {
	code, err := department.ResolveCode(departmentName)
	if err != nil {
		return dashboard.Metrics{}, err
	}

	key := DepartmentDashboardCacheKey(code)
	if m, ok := u.cached(ctx, key); ok {
		return m, nil
	}

	all, err := u.students.List(ctx)
	if err != nil {
		return dashboard.Metrics{}, err
	}
	members := make([]student.Profile, 0)
	for _, s := range all {
		if department.Matches(s.USN, code) {
			members = append(members, s)
		}
	}

	postings, err := u.postings.List(ctx)
	if err != nil {
		return dashboard.Metrics{}, err
	}

	m := dashboard.Aggregate(members, postings, u.now())
	u.store(ctx, key, m)
	return m, nil
}

// CompanyMetrics aggregates over the company's own postings only; the student
// counts stay zero since a company has no student partition.
func (u *Dashboards) CompanyMetrics(ctx context.Context, companyName string) (dashboard.Metrics, error) {
	if companyName == "" {
		return dashboard.Metrics{}, ErrInvalidInput
	}

	key := CompanyDashboardCacheKey(companyName)
	if m, ok := u.cached(ctx, key); ok {
		return m, nil
	}

	postings, err := u.postings.ListByCompany(ctx, companyName)
	if err != nil {
		return dashboard.Metrics{}, err
	}

	m := dashboard.Aggregate(nil, postings, u.now())
	u.store(ctx, key, m)
	return m, nil
}

func (u *Dashboards) cached(ctx context.Context, key string) (dashboard.Metrics, bool) {
	if u.cache == nil {
		return dashboard.Metrics{}, false
	}
	var m dashboard.Metrics
	ok, err := u.cache.GetJSON(ctx, key, &m)
	if err != nil || !ok {
		return dashboard.Metrics{}, false
	}
	return m, true
}

func (u *Dashboards) store(ctx context.Context, key string, m dashboard.Metrics) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, m, dashboardCacheTTL); err != nil && u.logger != nil {
		u.logger.Printf("dashboard cache write failed | key=%s error=%v", key, err)
	}
}
