package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"campus-placement/internal/domain/application"
	"campus-placement/internal/domain/posting"
	"campus-placement/internal/domain/student"
	"campus-placement/internal/repository"

	"github.com/google/uuid"
)

type fakeStudentRepo struct {
	profiles map[string]student.Profile
}

func newFakeStudentRepo(profs ...student.Profile) *fakeStudentRepo {
	r := &fakeStudentRepo{profiles: map[string]student.Profile{}}
	for _, p := range profs {
		r.profiles[p.USN] = p
	}
	return r
}

func (r *fakeStudentRepo) Upsert(_ context.Context, p student.Profile) error {
	if existing, ok := r.profiles[p.USN]; ok {
		p.State = existing.State
		p.ApprovedBy = existing.ApprovedBy
		p.ApprovedAt = existing.ApprovedAt
	} else {
		p.State = student.StatePending
	}
	r.profiles[p.USN] = p
	return nil
}

func (r *fakeStudentRepo) GetByUSN(_ context.Context, usn string) (student.Profile, error) {
	p, ok := r.profiles[usn]
	if !ok {
		return student.Profile{}, repository.ErrStudentNotFound
	}
	return p, nil
}

func (r *fakeStudentRepo) List(context.Context) ([]student.Profile, error) {
	out := make([]student.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].USN < out[j].USN })
	return out, nil
}

func (r *fakeStudentRepo) ApproveIfPending(_ context.Context, usn, reviewer string, at time.Time) (bool, error) {
	p, ok := r.profiles[usn]
	if !ok || p.State == student.StateApproved {
		return false, nil
	}
	at = at.UTC()
	p.State = student.StateApproved
	p.ApprovedBy = reviewer
	p.ApprovedAt = &at
	r.profiles[usn] = p
	return true, nil
}

type fakePostingRepo struct {
	items []posting.JobPosting
}

func (r *fakePostingRepo) Create(_ context.Context, p posting.JobPosting) error {
	r.items = append(r.items, p)
	return nil
}

func (r *fakePostingRepo) Update(_ context.Context, p posting.JobPosting) error {
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = p
			return nil
		}
	}
	return repository.ErrPostingNotFound
}

func (r *fakePostingRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrPostingNotFound
}

func (r *fakePostingRepo) GetByID(_ context.Context, id uuid.UUID) (posting.JobPosting, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return posting.JobPosting{}, repository.ErrPostingNotFound
}

func (r *fakePostingRepo) List(context.Context) ([]posting.JobPosting, error) {
	return append([]posting.JobPosting(nil), r.items...), nil
}

func (r *fakePostingRepo) ListByCompany(_ context.Context, companyName string) ([]posting.JobPosting, error) {
	out := make([]posting.JobPosting, 0)
	for _, p := range r.items {
		if strings.EqualFold(p.CompanyName, companyName) {
			out = append(out, p)
		}
	}
	return out, nil
}

type appKey struct {
	usn   string
	jobID uuid.UUID
}

type fakeApplicationRepo struct {
	byKey map[appKey]application.Application
	order []appKey
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byKey: map[appKey]application.Application{}}
}

func (r *fakeApplicationRepo) Insert(_ context.Context, a application.Application) (bool, error) {
	k := appKey{usn: a.StudentUSN, jobID: a.JobID}
	if _, ok := r.byKey[k]; ok {
		return false, nil
	}
	r.byKey[k] = a
	r.order = append(r.order, k)
	return true, nil
}

func (r *fakeApplicationRepo) ListByStudent(_ context.Context, usn string) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, k := range r.order {
		if k.usn == usn {
			out = append(out, r.byKey[k])
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByCompany(_ context.Context, companyName string) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, k := range r.order {
		if strings.EqualFold(r.byKey[k].CompanyName, companyName) {
			out = append(out, r.byKey[k])
		}
	}
	return out, nil
}

type fakeAccountRepo struct {
	byEmail map[string]repository.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: map[string]repository.Account{}}
}

func (r *fakeAccountRepo) Create(_ context.Context, a repository.Account) error {
	r.byEmail[a.Email] = a
	return nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (repository.Account, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return repository.Account{}, repository.ErrAccountNotFound
	}
	return a, nil
}

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = b
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *fakeCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	if _, ok := c.entries[key]; ok {
		return false, nil
	}
	c.entries[key] = []byte(value)
	return true, nil
}

type notifyEvent struct {
	scope string
	key   string
}

type fakeNotifier struct {
	events []notifyEvent
}

func (n *fakeNotifier) NotifyDashboardUpdated(scope, key string) {
	n.events = append(n.events, notifyEvent{scope: scope, key: key})
}
