package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"campus-placement/internal/domain/eligibility"
)

type catalogCacheKeyInput struct {
	JobType        string   `json:"job_type"`
	WorkMode       string   `json:"work_mode"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	MinCGPA        *float64 `json:"min_cgpa"`
	GraduationYear *int     `json:"graduation_year"`
	Branches       []string `json:"branches"`
	Skills         []string `json:"skills"`
	IncludeExpired bool     `json:"include_expired"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func normalizeCacheList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = normalizeCacheValue(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// CatalogSearchCacheKey derives a stable key from the normalized criteria, so
// equivalent searches share one cache entry regardless of casing or ordering.
func CatalogSearchCacheKey(c eligibility.Criteria) string {
	in := catalogCacheKeyInput{
		JobType:        normalizeCacheValue(c.JobType),
		WorkMode:       normalizeCacheValue(c.WorkMode),
		City:           normalizeCacheValue(c.City),
		State:          normalizeCacheValue(c.State),
		MinCGPA:        c.MinCGPA,
		GraduationYear: c.GraduationYear,
		Branches:       normalizeCacheList(c.Branches),
		Skills:         normalizeCacheList(c.Skills),
		IncludeExpired: c.IncludeExpired,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "postings:search:" + hex.EncodeToString(sum[:])
}

// CatalogSearchLockKey names the short-lived rebuild lock for one search entry.
func CatalogSearchLockKey(cacheKey string) string {
	return cacheKey + ":lock"
}

func DepartmentDashboardCacheKey(deptCode string) string {
	return "dashboard:department:" + normalizeCacheValue(deptCode)
}

func CompanyDashboardCacheKey(companyName string) string {
	return "dashboard:company:" + normalizeCacheValue(companyName)
}
