package dashboard

import (
	"strings"
	"time"

	"campus-placement/internal/domain/posting"
	"campus-placement/internal/domain/student"
)

type Metrics struct {
	TotalStudents     int `json:"total_students"`
	ApprovedCount     int `json:"approved_count"`
	PendingCount      int `json:"pending_count"`
	ActivePostings    int `json:"active_postings"`
	DistinctCompanies int `json:"distinct_companies"`
	TotalPositions    int `json:"total_positions"`
}

// Aggregate reduces one snapshot of the two collections into dashboard counts.
// It never fetches anything itself, so the numbers are only as fresh as the
// snapshot the caller supplies.
func Aggregate(students []student.Profile, postings []posting.JobPosting, now time.Time) Metrics {
	m := Metrics{TotalStudents: len(students)}

	for _, s := range students {
		if s.Approved() {
			m.ApprovedCount++
		}
	}
	m.PendingCount = m.TotalStudents - m.ApprovedCount

	companies := make(map[string]struct{}, len(postings))
	for _, p := range postings {
		if p.Open(now) {
			m.ActivePostings++
		}
		companies[strings.ToLower(strings.TrimSpace(p.CompanyName))] = struct{}{}
		m.TotalPositions += p.NumberOfPositions
	}
	m.DistinctCompanies = len(companies)

	return m
}
