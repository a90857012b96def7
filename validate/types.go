package validate

import "fmt"

// Severity tiers for validation issues. Blockers always invalidate a
// plan; criticals invalidate under RejectOnCritical; warnings never do.
type Severity string

const (
	SeverityBlocker  Severity = "blocker"
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Issue is one validation finding.
type Issue struct {
	Check     string   `json:"check"`
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
	ElementID string   `json:"elementId,omitempty"`
}

// Result is the gate's full output for one plan.
type Result struct {
	Valid    bool    `json:"valid"`
	Issues   []Issue `json:"issues"`
	Blockers int     `json:"blockers"`
	Critical int     `json:"critical"`
	Warnings int     `json:"warnings"`
	Summary  string  `json:"summary"`
}

// tally fills the per-severity counts.
func (r *Result) tally() {
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityBlocker:
			r.Blockers++
		case SeverityCritical:
			r.Critical++
		case SeverityWarning:
			r.Warnings++
		}
	}
}

// summarize renders the human-readable digest; call after Valid is set.
func (r *Result) summarize() {
	verdict := "invalid"
	if r.Valid {
		verdict = "valid"
	}
	r.Summary = fmt.Sprintf("%s: %d blockers, %d critical, %d warnings",
		verdict, r.Blockers, r.Critical, r.Warnings)
}
