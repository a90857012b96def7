package validate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPlanRejected is the sentinel every rejection matches via errors.Is.
var ErrPlanRejected = errors.New("validate: plan rejected")

// maxRejectionMessages bounds the explanation a RejectionError carries.
// Rejections feed an automated regeneration loop, not end-user display,
// so the list stays short and stably ordered.
const maxRejectionMessages = 10

// RejectionError is the gate's hard failure: the policy demanded
// rejection and the plan was invalid. Messages hold at most ten issue
// texts, blockers ordered before criticals.
type RejectionError struct {
	Blockers int
	Critical int
	Messages []string
}

// Error renders the bounded explanation.
func (e *RejectionError) Error() string {
	return fmt.Sprintf("validate: plan rejected (%d blockers, %d critical): %s",
		e.Blockers, e.Critical, strings.Join(e.Messages, "; "))
}

// Unwrap lets errors.Is(err, ErrPlanRejected) match.
func (e *RejectionError) Unwrap() error { return ErrPlanRejected }

// newRejectionError builds the bounded, stably-ordered explanation from
// a result: blockers first, then criticals, capped at ten messages.
func newRejectionError(res Result) *RejectionError {
	rej := &RejectionError{Blockers: res.Blockers, Critical: res.Critical}
	for _, sev := range []Severity{SeverityBlocker, SeverityCritical} {
		for _, issue := range res.Issues {
			if issue.Severity != sev {
				continue
			}
			if len(rej.Messages) == maxRejectionMessages {
				return rej
			}
			rej.Messages = append(rej.Messages, issue.Message)
		}
	}
	return rej
}
