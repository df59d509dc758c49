package eligibility

import (
	"strings"
	"time"

	"campus-placement/internal/domain/posting"
	"campus-placement/internal/domain/student"
)

// Predicate tests one criterion against a posting. Filtering is the logical AND
// of every predicate built from the supplied criteria.
type Predicate func(posting.JobPosting) bool

// Criteria is the flat search-mode query surface. Every field is optional; an
// empty string or empty slice means "no constraint on that field", never
// "match nothing".
type Criteria struct {
	JobType        string
	WorkMode       string
	City           string
	State          string
	MinCGPA        *float64
	GraduationYear *int
	Branches       []string
	Skills         []string

	// IncludeExpired keeps postings past their deadline in the result; the
	// default is the "open for application" view.
	IncludeExpired bool
}

// Filter evaluates postings against the criteria in search mode: MinCGPA is a
// floor on the posting's own requirement (posting.MinCGPA >= the supplied value),
// text fields are case-insensitive exact matches, and branch/skill lists match on
// non-empty intersection. Catalog order is preserved; nothing is re-sorted.
func Filter(postings []posting.JobPosting, c Criteria, now time.Time) []posting.JobPosting {
	preds := c.predicates()
	if !c.IncludeExpired {
		preds = append(preds, func(p posting.JobPosting) bool { return p.Open(now) })
	}
	return apply(postings, and(preds))
}

// EligibleFor evaluates postings in eligibility mode, bound to one student: the
// posting's CGPA floor must not exceed the student's CGPA, the graduation year
// must line up, the student's branch must be among the allowed branches, and when
// the posting names required skills the student must hold at least one of them.
// Closed postings are never eligible.
func EligibleFor(postings []posting.JobPosting, prof student.Profile, now time.Time) []posting.JobPosting {
	pred := and([]Predicate{
		func(p posting.JobPosting) bool { return p.Open(now) },
		func(p posting.JobPosting) bool { return p.MinCGPA <= prof.CGPA },
		func(p posting.JobPosting) bool {
			return p.GraduationYear == 0 || prof.GraduationYear == 0 || p.GraduationYear == prof.GraduationYear
		},
		func(p posting.JobPosting) bool {
			return len(p.AllowedBranches) == 0 || containsFold(p.AllowedBranches, prof.Branch)
		},
		func(p posting.JobPosting) bool {
			return len(p.RequiredSkills) == 0 || intersectsFold(p.RequiredSkills, prof.Skills)
		},
	})
	return apply(postings, pred)
}

func (c Criteria) predicates() []Predicate {
	var preds []Predicate

	if v := strings.TrimSpace(c.JobType); v != "" {
		preds = append(preds, func(p posting.JobPosting) bool { return string(p.JobType) == v })
	}
	if v := strings.TrimSpace(c.WorkMode); v != "" {
		preds = append(preds, func(p posting.JobPosting) bool { return string(p.WorkMode) == v })
	}
	if v := strings.TrimSpace(c.City); v != "" {
		preds = append(preds, func(p posting.JobPosting) bool { return strings.EqualFold(strings.TrimSpace(p.City), v) })
	}
	if v := strings.TrimSpace(c.State); v != "" {
		preds = append(preds, func(p posting.JobPosting) bool { return strings.EqualFold(strings.TrimSpace(p.State), v) })
	}
	if c.MinCGPA != nil {
		floor := *c.MinCGPA
		preds = append(preds, func(p posting.JobPosting) bool { return p.MinCGPA >= floor })
	}
	if c.GraduationYear != nil {
		year := *c.GraduationYear
		preds = append(preds, func(p posting.JobPosting) bool { return p.GraduationYear == year })
	}
	if branches := normalize(c.Branches); len(branches) > 0 {
		preds = append(preds, func(p posting.JobPosting) bool { return intersectsFold(p.AllowedBranches, branches) })
	}
	if skills := normalize(c.Skills); len(skills) > 0 {
		preds = append(preds, func(p posting.JobPosting) bool { return intersectsFold(p.RequiredSkills, skills) })
	}

	return preds
}

func and(preds []Predicate) Predicate {
	return func(p posting.JobPosting) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

func apply(postings []posting.JobPosting, pred Predicate) []posting.JobPosting {
	out := make([]posting.JobPosting, 0, len(postings))
	for _, p := range postings {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func normalize(values []string) []string {
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

func containsFold(list []string, s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}

func intersectsFold(a, b []string) bool {
	for _, v := range b {
		if containsFold(a, v) {
			return true
		}
	}
	return false
}
