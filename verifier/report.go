// verifier/report.go
package verifier

import (
	"fmt"
	"strings"
)

// renderReport formats a verdict as a multi-line, human-readable report.
// It is pure presentation: nothing in here may alter status, reason or
// score, and the line ordering is fixed so repeated calls are identical.
func renderReport(v *Verdict) string {
	d := v.Details

	var b strings.Builder
	fmt.Fprintf(&b, "Verification report for %s\n\n", v.Email)
	fmt.Fprintf(&b, "  Score      : %d / 100\n", d.Score)
	fmt.Fprintf(&b, "  State      : %s\n", v.Status)
	fmt.Fprintf(&b, "  Reason     : %s\n", d.Reason)
	fmt.Fprintf(&b, "  Domain     : %s\n", v.Domain)
	fmt.Fprintf(&b, "  Free       : %s\n", yesNo(d.IsFreeProvider))
	fmt.Fprintf(&b, "  Role       : %s\n", yesNo(d.IsRoleAccount))
	fmt.Fprintf(&b, "  Disposable : %s\n", yesNo(d.IsDisposable))
	fmt.Fprintf(&b, "  Accept-All : %s\n", yesNoUnknown(d.IsCatchAll))
	fmt.Fprintf(&b, "  Tag        : %s\n", yesNo(d.HasTag))

	if len(d.MXRecords) > 0 {
		b.WriteString("\n  MX records:\n")
		for _, mx := range d.MXRecords {
			fmt.Fprintf(&b, "    %5d %s\n", mx.Priority, mx.Exchange)
		}
	}

	if limitations := limitationLines(d); len(limitations) > 0 {
		b.WriteString("\n  Limitations:\n")
		for _, l := range limitations {
			fmt.Fprintf(&b, "    - %s\n", l)
		}
	}

	if d.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Did you mean %s?\n", d.Suggestion)
	}

	if d.Error != "" {
		fmt.Fprintf(&b, "\n  Verification error: %s\n", d.Error)
	}

	return b.String()
}

// limitationLines derives the itemized caveats from a fixed set of
// condition checks. Order is fixed.
func limitationLines(d Details) []string {
	var lines []string
	if d.HasValidFormat && !d.HasMXRecords {
		lines = append(lines, "domain has no MX records")
	}
	if d.IsCatchAll != nil && *d.IsCatchAll && !d.IsTrustedProvider {
		lines = append(lines, "domain accepts any mailbox (catch-all); individual verification is unreliable")
	}
	if d.SMTPDiagnostics.TimedOut {
		lines = append(lines, "SMTP probe timed out before a definitive answer")
	}
	if d.SMTPDiagnostics.SpamBlocked {
		lines = append(lines, "recipient server blocked the probe as spam")
	}
	if d.SMTPDiagnostics.QuotaExceeded {
		lines = append(lines, "recipient mailbox is over quota")
	}
	return lines
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func yesNoUnknown(b *bool) string {
	if b == nil {
		return "unknown"
	}
	return yesNo(*b)
}
