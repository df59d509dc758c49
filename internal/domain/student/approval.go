package student

import "time"

// Approve moves a profile from Pending to Approved, recording who approved it and
// when. Approving an already-approved profile is a no-op: the first reviewer's
// identity and timestamp are kept, and the returned bool reports whether anything
// changed. There is no transition back to Pending; later profile edits do not
// clear an approval.
func Approve(p Profile, reviewer string, now time.Time) (Profile, bool) {
	if p.State == StateApproved {
		return p, false
	}

	at := now.UTC()
	p.State = StateApproved
	p.ApprovedBy = reviewer
	p.ApprovedAt = &at
	return p, true
}
