package compliance

import "fmt"

// Severity ranks an issue's weight inside its category.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// Category is the issue bucket. Violations alone decide pass/fail;
// warnings ask for attention; checks record informational outcomes,
// including confirmations that a rule passed.
type Category string

const (
	CategoryViolation Category = "violation"
	CategoryWarning   Category = "warning"
	CategoryCheck     Category = "check"
)

// Issue is one rule finding.
type Issue struct {
	Rule      string   `json:"rule"`
	Category  Category `json:"category"`
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
	ElementID string   `json:"elementId,omitempty"`
}

// EgressAnalysis summarizes the emergency-exit distance computation.
type EgressAnalysis struct {
	Passed            bool     `json:"passed"`
	MaxDistanceToExit float64  `json:"maxDistanceToExit"`
	CriticalRooms     []string `json:"criticalRooms,omitempty"`
}

// Summary carries the per-bucket counts.
type Summary struct {
	Violations int `json:"violations"`
	Warnings   int `json:"warnings"`
	Checks     int `json:"checks"`
}

// Report is the engine's full output for one plan.
type Report struct {
	Passing    bool            `json:"passing"`
	Violations []Issue         `json:"violations"`
	Warnings   []Issue         `json:"warnings"`
	Checks     []Issue         `json:"checks"`
	Summary    Summary         `json:"summary"`
	Egress     *EgressAnalysis `json:"egress,omitempty"`
}

// String renders a one-line digest for logs.
func (r *Report) String() string {
	verdict := "FAIL"
	if r.Passing {
		verdict = "PASS"
	}
	return fmt.Sprintf("%s: %d violations, %d warnings, %d checks",
		verdict, r.Summary.Violations, r.Summary.Warnings, r.Summary.Checks)
}
