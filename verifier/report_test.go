package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderReport_Deterministic(t *testing.T) {
	v := &Verdict{
		Email:  "user@example.com",
		Domain: "example.com",
		Status: StatusDeliverable,
		Details: Details{
			HasValidFormat: true,
			HasMXRecords:   true,
			SMTPAccepts:    boolPtr(true),
			IsCatchAll:     boolPtr(false),
			Score:          100,
			Reason:         ReasonAcceptedEmail,
			MXRecords: []MXRecord{
				{Priority: 5, Exchange: "mx1.example.com"},
				{Priority: 10, Exchange: "mx2.example.com"},
			},
		},
	}

	first := renderReport(v)
	assert.Equal(t, first, renderReport(v), "rendering must be a pure function of the verdict")

	assert.Contains(t, first, "Verification report for user@example.com")
	assert.Contains(t, first, "Score      : 100 / 100")
	assert.Contains(t, first, "State      : Deliverable")
	assert.Contains(t, first, "Reason     : ACCEPTED_EMAIL")
	assert.Contains(t, first, "Accept-All : no")
	assert.Contains(t, first, "mx1.example.com")
	assert.Contains(t, first, "mx2.example.com")
	assert.NotContains(t, first, "Limitations")
	assert.NotContains(t, first, "Did you mean")
}

func TestRenderReport_UnknownSignals(t *testing.T) {
	v := &Verdict{
		Email:  "user@example.com",
		Domain: "example.com",
		Status: StatusRisky,
		Details: Details{
			HasValidFormat: true,
			HasMXRecords:   true,
			Score:          65,
			Reason:         ReasonUncertainDeliverability,
			MXRecords:      []MXRecord{{Priority: 10, Exchange: "mx.example.com"}},
			SMTPDiagnostics: SMTPDiagnostics{
				TimedOut: true,
			},
		},
	}

	report := renderReport(v)
	assert.Contains(t, report, "Accept-All : unknown")
	assert.Contains(t, report, "Limitations:")
	assert.Contains(t, report, "SMTP probe timed out before a definitive answer")
}

func TestRenderReport_Suggestion(t *testing.T) {
	v := &Verdict{
		Email:  "user@gmial.com",
		Domain: "gmial.com",
		Status: StatusUndeliverable,
		Details: Details{
			HasValidFormat: true,
			Reason:         ReasonInvalidDomain,
			Suggestion:     "user@gmail.com",
			MXRecords:      []MXRecord{},
		},
	}

	report := renderReport(v)
	assert.Contains(t, report, "Did you mean user@gmail.com?")
	assert.Contains(t, report, "domain has no MX records")
}

func TestRenderReport_ErrorVerdict(t *testing.T) {
	v := errorVerdict("user@example.com", "resolver exploded")
	assert.Contains(t, v.Report, "State      : Error")
	assert.Contains(t, v.Report, "Verification error: resolver exploded")
}

func TestLimitationLines_Order(t *testing.T) {
	d := Details{
		HasValidFormat: true,
		HasMXRecords:   true,
		IsCatchAll:     boolPtr(true),
		SMTPDiagnostics: SMTPDiagnostics{
			TimedOut:      true,
			SpamBlocked:   true,
			QuotaExceeded: true,
		},
	}

	lines := limitationLines(d)
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "catch-all")
	assert.Contains(t, lines[1], "timed out")
	assert.Contains(t, lines[2], "spam")
	assert.Contains(t, lines[3], "quota")
}

func TestLimitationLines_TrustedCatchAllSuppressed(t *testing.T) {
	d := Details{
		HasValidFormat:    true,
		HasMXRecords:      true,
		IsCatchAll:        boolPtr(true),
		IsTrustedProvider: true,
	}
	assert.Empty(t, limitationLines(d))
}
