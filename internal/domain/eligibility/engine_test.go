package eligibility

import (
	"testing"
	"time"

	"campus-placement/internal/domain/posting"
	"campus-placement/internal/domain/student"

	"github.com/google/uuid"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func openDeadline() time.Time   { return testNow.Add(30 * 24 * time.Hour) }
func closedDeadline() time.Time { return testNow.Add(-24 * time.Hour) }

func newPosting(mut func(*posting.JobPosting)) posting.JobPosting {
	p := posting.JobPosting{
		ID:                  uuid.New(),
		CompanyName:         "Acme",
		JobTitle:            "SDE I",
		JobType:             posting.JobTypePermanent,
		WorkMode:            posting.WorkModeOnsite,
		City:                "Bengaluru",
		State:               "Karnataka",
		NumberOfPositions:   2,
		ApplicationDeadline: openDeadline(),
	}
	if mut != nil {
		mut(&p)
	}
	return p
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestFilter_EmptyCriteriaReturnsOpenCatalog(t *testing.T) {
	postings := []posting.JobPosting{
		newPosting(nil),
		newPosting(func(p *posting.JobPosting) { p.ApplicationDeadline = closedDeadline() }),
		newPosting(nil),
	}

	got := Filter(postings, Criteria{}, testNow)
	if len(got) != 2 {
		t.Fatalf("expected 2 open postings, got %d", len(got))
	}
	if got[0].ID != postings[0].ID || got[1].ID != postings[2].ID {
		t.Fatalf("catalog order not preserved")
	}
}

func TestFilter_IncludeExpiredKeepsHistory(t *testing.T) {
	postings := []posting.JobPosting{
		newPosting(func(p *posting.JobPosting) { p.ApplicationDeadline = closedDeadline() }),
	}

	got := Filter(postings, Criteria{IncludeExpired: true}, testNow)
	if len(got) != 1 {
		t.Fatalf("expired posting must remain visible in history view")
	}
}

func TestFilter_MinCGPAFloor(t *testing.T) {
	postings := []posting.JobPosting{
		newPosting(func(p *posting.JobPosting) { p.MinCGPA = 6.0 }),
		newPosting(func(p *posting.JobPosting) { p.MinCGPA = 7.5 }),
		newPosting(func(p *posting.JobPosting) { p.MinCGPA = 9.0 }),
	}

	got := Filter(postings, Criteria{MinCGPA: floatPtr(7.0)}, testNow)
	if len(got) != 2 {
		t.Fatalf("expected the 7.5 and 9.0 postings, got %d results", len(got))
	}
	if got[0].MinCGPA != 7.5 || got[1].MinCGPA != 9.0 {
		t.Fatalf("wrong postings kept: %v, %v", got[0].MinCGPA, got[1].MinCGPA)
	}
}

func TestFilter_Soundness(t *testing.T) {
	postings := []posting.JobPosting{
		newPosting(func(p *posting.JobPosting) { p.JobType = posting.JobTypeInternship }),
		newPosting(func(p *posting.JobPosting) { p.JobType = posting.JobTypePermanent }),
		newPosting(func(p *posting.JobPosting) {
			p.JobType = posting.JobTypeInternship
			p.WorkMode = posting.WorkModeRemote
		}),
	}

	got := Filter(postings, Criteria{JobType: "Internship"}, testNow)
	if len(got) == 0 {
		t.Fatalf("expected results")
	}
	for _, p := range got {
		if p.JobType != posting.JobTypeInternship {
			t.Fatalf("criterion does not hold for result %s", p.ID)
		}
	}
}

func TestFilter_Completeness(t *testing.T) {
	match := newPosting(func(p *posting.JobPosting) {
		p.JobType = posting.JobTypeInternship
		p.City = "bengaluru"
	})
	postings := []posting.JobPosting{
		match,
		newPosting(func(p *posting.JobPosting) { p.JobType = posting.JobTypeContract }),
	}

	got := Filter(postings, Criteria{JobType: "Internship", City: "Bengaluru"}, testNow)
	if len(got) != 1 || got[0].ID != match.ID {
		t.Fatalf("satisfying posting missing from output")
	}
}

func TestFilter_CaseInsensitiveCityAndBranches(t *testing.T) {
	postings := []posting.JobPosting{
		newPosting(func(p *posting.JobPosting) {
			p.City = "Bengaluru"
			p.AllowedBranches = []string{"Computer Science", "IT"}
		}),
	}

	got := Filter(postings, Criteria{City: "BENGALURU", Branches: []string{"computer science"}}, testNow)
	if len(got) != 1 {
		t.Fatalf("case-insensitive match failed")
	}
}

func TestFilter_EmptyCriterionValuesAreAbsent(t *testing.T) {
	postings := []posting.JobPosting{newPosting(nil), newPosting(nil)}

	got := Filter(postings, Criteria{JobType: "  ", Branches: []string{"", " "}, Skills: []string{}}, testNow)
	if len(got) != 2 {
		t.Fatalf("blank criterion values must not constrain: got %d", len(got))
	}
}

func TestFilter_GraduationYearExact(t *testing.T) {
	postings := []posting.JobPosting{
		newPosting(func(p *posting.JobPosting) { p.GraduationYear = 2025 }),
		newPosting(func(p *posting.JobPosting) { p.GraduationYear = 2026 }),
	}

	got := Filter(postings, Criteria{GraduationYear: intPtr(2026)}, testNow)
	if len(got) != 1 || got[0].GraduationYear != 2026 {
		t.Fatalf("graduation year filter failed: %d results", len(got))
	}
}

func TestEligibleFor_BindsToStudent(t *testing.T) {
	prof := student.Profile{
		USN:            "4HG23CS045",
		Branch:         "Computer Science",
		CGPA:           8.0,
		GraduationYear: 2026,
		Skills:         []string{"Go", "SQL"},
	}

	eligible := newPosting(func(p *posting.JobPosting) {
		p.MinCGPA = 7.5
		p.GraduationYear = 2026
		p.AllowedBranches = []string{"Computer Science"}
		p.RequiredSkills = []string{"go"}
	})
	tooStrict := newPosting(func(p *posting.JobPosting) { p.MinCGPA = 9.0 })
	wrongBranch := newPosting(func(p *posting.JobPosting) { p.AllowedBranches = []string{"Mechanical"} })
	closed := newPosting(func(p *posting.JobPosting) { p.ApplicationDeadline = closedDeadline() })

	got := EligibleFor([]posting.JobPosting{eligible, tooStrict, wrongBranch, closed}, prof, testNow)
	if len(got) != 1 || got[0].ID != eligible.ID {
		t.Fatalf("eligibility mode kept %d postings", len(got))
	}
}

func TestEligibleFor_UnrestrictedPostingMatchesAnyStudent(t *testing.T) {
	prof := student.Profile{USN: "4HG23CS045", CGPA: 5.0}
	open := newPosting(nil)

	got := EligibleFor([]posting.JobPosting{open}, prof, testNow)
	if len(got) != 1 {
		t.Fatalf("posting without constraints should be eligible")
	}
}
