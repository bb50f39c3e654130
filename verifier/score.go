// verifier/score.go
package verifier

// Canonical score weights. Each rule is an independent addition or
// subtraction; the trusted-provider bonus is applied last, and catch-all
// and free-provider penalties are suppressed entirely for trusted domains.
const (
	weightValidFormat  = 30
	weightMXRecords    = 35
	weightSMTPAccepts  = 35
	penaltyDisposable  = 60
	penaltyCatchAll    = 15
	penaltyFreeDomain  = 10
	penaltyRoleAccount = 10
	bonusTrusted       = 10
)

// computeScore folds all signals into a single integer clamped to [0,100].
// Unknown tri-state signals contribute nothing in either direction.
func computeScore(d Details) int {
	score := 0

	if d.HasValidFormat {
		score += weightValidFormat
	}
	if d.HasMXRecords {
		score += weightMXRecords
	}
	if d.SMTPAccepts != nil && *d.SMTPAccepts {
		score += weightSMTPAccepts
	}

	if d.IsDisposable {
		score -= penaltyDisposable
	}
	if d.IsRoleAccount {
		score -= penaltyRoleAccount
	}
	if !d.IsTrustedProvider {
		if d.IsCatchAll != nil && *d.IsCatchAll {
			score -= penaltyCatchAll
		}
		if d.IsFreeProvider {
			score -= penaltyFreeDomain
		}
	}

	if d.IsTrustedProvider {
		score += bonusTrusted
	}

	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
