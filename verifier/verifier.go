// verifier/verifier.go
//
// Package verifier is the email deliverability engine: format and static
// classification, live MX/SMTP probing, typo suggestion, scoring, status
// resolution and report rendering. Each call is independent and stateless.
package verifier

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	defaultHeloDomain   = "verify.verimail.app"
	defaultMailFrom     = "noreply@verimail.app"
	defaultProbeTimeout = 12 * time.Second
)

// Config tunes the network probe. Zero values fall back to defaults.
type Config struct {
	HeloDomain   string
	MailFrom     string
	ProbeTimeout time.Duration
}

// Verifier classifies email addresses. Safe for concurrent use; it holds
// no per-call state.
type Verifier struct {
	prober *prober
}

func New(cfg Config) *Verifier {
	if cfg.HeloDomain == "" {
		cfg.HeloDomain = defaultHeloDomain
	}
	if cfg.MailFrom == "" {
		cfg.MailFrom = defaultMailFrom
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = defaultProbeTimeout
	}
	return &Verifier{prober: newProber(cfg)}
}

// Verify classifies a single email address. It never returns an error:
// every failure path, including an unexpected panic, terminates in a
// well-formed Verdict (status Error at worst).
func (v *Verifier) Verify(ctx context.Context, email string) (verdict *Verdict) {
	email = strings.ToLower(strings.TrimSpace(email))

	defer func() {
		if r := recover(); r != nil {
			verdict = errorVerdict(email, fmt.Sprintf("%v", r))
		}
	}()

	addr := parseAddress(email)
	verdict = &Verdict{Email: email, Domain: addr.domain}

	if !addr.valid {
		verdict.Status = StatusUndeliverable
		verdict.Details.Reason = ReasonInvalidFormat
		verdict.Details.MXRecords = []MXRecord{}
		verdict.Report = renderReport(verdict)
		return verdict
	}

	// The probe has no dependency on the static classifiers, so it runs
	// while they are computed. A panic inside the probe goroutine is
	// converted into a terminal Error verdict rather than crashing.
	type probeOutcome struct {
		res      probeResult
		panicErr error
	}
	probeCh := make(chan probeOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				probeCh <- probeOutcome{panicErr: fmt.Errorf("%v", r)}
			}
		}()
		probeCh <- probeOutcome{res: v.prober.run(ctx, addr.local, addr.domain)}
	}()

	d := Details{
		HasValidFormat:    true,
		IsDisposable:      isDisposableDomain(addr.domain),
		IsFreeProvider:    isFreeProvider(addr.domain),
		IsTrustedProvider: isTrustedProvider(addr.domain),
		IsRoleAccount:     isRoleAccount(addr.local),
		HasTag:            addr.hasTag,
		Suggestion:        suggestFor(addr.local, addr.domain),
	}

	out := <-probeCh
	if out.panicErr != nil {
		return errorVerdict(email, out.panicErr.Error())
	}

	pr := out.res
	d.HasMXRecords = pr.hasMX
	d.MXRecords = pr.mxRecords
	d.SMTPAccepts = pr.smtpAccepts
	d.IsCatchAll = pr.isCatchAll
	d.SMTPDiagnostics = pr.diagnostics
	if pr.mxErr != nil {
		d.MXError = pr.mxErr.Error()
	}

	d.Score = computeScore(d)
	verdict.Status, d.Reason = resolveStatus(d)
	verdict.Details = d
	verdict.Report = renderReport(verdict)
	return verdict
}

func errorVerdict(email, msg string) *Verdict {
	v := &Verdict{
		Email:  email,
		Status: StatusError,
		Details: Details{
			Reason:    ReasonVerificationError,
			MXRecords: []MXRecord{},
			Error:     msg,
		},
	}
	v.Report = renderReport(v)
	return v
}
