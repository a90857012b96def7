package validate

import (
	"github.com/planforge/planforge/plan"
)

// Report runs the enabled checks and returns the full result without
// ever failing. This is the diagnostic entry point for UIs; Validate
// wraps it with the enforcement contract.
func Report(p *plan.Plan, pol Policy) Result {
	var res Result
	if pol.Checks.Grid {
		res.Issues = append(res.Issues, checkGrid(p, pol)...)
	}
	if pol.Checks.ExteriorLoop {
		res.Issues = append(res.Issues, checkExteriorLoop(p, pol)...)
	}
	if pol.Checks.Dangling {
		res.Issues = append(res.Issues, checkDangling(p, pol)...)
	}
	if pol.Checks.Openings {
		res.Issues = append(res.Issues, checkOpenings(p, pol)...)
	}
	if pol.Checks.WallLengths {
		res.Issues = append(res.Issues, checkWallLengths(p, pol)...)
	}
	if pol.Checks.Areas {
		res.Issues = append(res.Issues, checkAreas(p, pol)...)
	}
	res.tally()
	res.Valid = res.Blockers == 0 && (!pol.RejectOnCritical || res.Critical == 0)
	res.summarize()
	return res
}

// Validate runs Report and enforces the policy: when the policy demands
// rejection and the result is invalid, it returns a *RejectionError
// carrying at most ten messages, blockers before criticals, intended for
// an automated regeneration loop. The result is returned either way.
func Validate(p *plan.Plan, pol Policy) (Result, error) {
	res := Report(p, pol)
	if res.Valid {
		return res, nil
	}
	reject := (pol.RejectOnBlocker && res.Blockers > 0) ||
		(pol.RejectOnCritical && res.Critical > 0)
	if !reject {
		return res, nil
	}
	return res, newRejectionError(res)
}
