// verifier/status.go
package verifier

// statusRule is one entry in the ordered decision list. The first rule
// whose match function returns true wins; the ordering below is the
// contract and must not be rearranged.
type statusRule struct {
	match  func(d Details) bool
	status Status
	reason Reason
}

var statusRules = []statusRule{
	{
		match:  func(d Details) bool { return !d.HasValidFormat },
		status: StatusUndeliverable,
		reason: ReasonInvalidFormat,
	},
	{
		match:  func(d Details) bool { return !d.HasMXRecords },
		status: StatusUndeliverable,
		reason: ReasonInvalidDomain,
	},
	{
		match:  func(d Details) bool { return d.SMTPAccepts != nil && !*d.SMTPAccepts },
		status: StatusBounced,
		reason: ReasonMailboxNotFound,
	},
	{
		match:  func(d Details) bool { return d.IsDisposable },
		status: StatusRisky,
		reason: ReasonDisposableEmail,
	},
	{
		match: func(d Details) bool {
			return d.IsCatchAll != nil && *d.IsCatchAll && !d.IsTrustedProvider
		},
		status: StatusRisky,
		reason: ReasonCatchAllDomain,
	},
	{
		// Trusted providers bypass the score thresholds once the mailbox
		// is confirmed over SMTP, even on a catch-all domain.
		match: func(d Details) bool {
			return d.IsTrustedProvider && d.SMTPAccepts != nil && *d.SMTPAccepts
		},
		status: StatusDeliverable,
		reason: ReasonAcceptedEmail,
	},
	{
		match:  func(d Details) bool { return d.Score >= 80 },
		status: StatusDeliverable,
		reason: ReasonAcceptedEmail,
	},
	{
		match:  func(d Details) bool { return d.Score >= 50 },
		status: StatusRisky,
		reason: ReasonUncertainDeliverability,
	},
}

// resolveStatus walks the ordered rule list and returns the first match.
// The final fallthrough is Undeliverable/LOW_QUALITY_SCORE.
func resolveStatus(d Details) (Status, Reason) {
	for _, r := range statusRules {
		if r.match(d) {
			return r.status, r.reason
		}
	}
	return StatusUndeliverable, ReasonLowQualityScore
}
