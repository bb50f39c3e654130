// verifier/probe.go
package verifier

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"net"
	"net/smtp"
	"net/textproto"
	"sort"
	"strings"
	"time"
)

// maxMXAttempts bounds how many mail exchangers are tried when a dial
// fails. Once a session is established there is exactly one probe; no
// retries on later hosts.
const maxMXAttempts = 2

// probeResult is the network half of a verification: MX resolution plus
// the SMTP mailbox and catch-all checks.
type probeResult struct {
	hasMX       bool
	mxErr       error
	mxRecords   []MXRecord
	smtpAccepts *bool
	isCatchAll  *bool
	diagnostics SMTPDiagnostics
}

// prober performs the DNS and SMTP legs of a verification. The lookup and
// dial functions are injectable for tests.
type prober struct {
	heloDomain string
	mailFrom   string
	timeout    time.Duration
	lookupMX   func(ctx context.Context, domain string) ([]*net.MX, error)
	dial       func(ctx context.Context, network, address string) (net.Conn, error)
}

func newProber(cfg Config) *prober {
	dialer := &net.Dialer{}
	return &prober{
		heloDomain: cfg.HeloDomain,
		mailFrom:   cfg.MailFrom,
		timeout:    cfg.ProbeTimeout,
		lookupMX: func(ctx context.Context, domain string) ([]*net.MX, error) {
			var resolver net.Resolver
			return resolver.LookupMX(ctx, domain)
		},
		dial: dialer.DialContext,
	}
}

// run resolves MX records for the domain and, when any exist, performs a
// single SMTP RCPT probe plus a catch-all probe on the same session.
// Everything is bounded by the prober timeout; every failure degrades the
// affected signal to unknown instead of surfacing an error.
func (p *prober) run(ctx context.Context, local, domain string) probeResult {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	res := probeResult{mxRecords: []MXRecord{}}

	mxs, err := p.lookupMX(ctx, domain)
	if err != nil {
		res.mxErr = err
		if isTimeout(err) {
			res.diagnostics.TimedOut = true
		}
		return res
	}

	sort.Slice(mxs, func(i, j int) bool { return mxs[i].Pref < mxs[j].Pref })
	for _, mx := range mxs {
		res.mxRecords = append(res.mxRecords, MXRecord{
			Priority: mx.Pref,
			Exchange: strings.TrimSuffix(mx.Host, "."),
		})
	}

	res.hasMX = len(res.mxRecords) > 0
	if !res.hasMX {
		return res
	}

	p.smtpProbe(ctx, domain, local+"@"+domain, randomLocalPart()+"@"+domain, &res)
	return res
}

func (p *prober) smtpProbe(ctx context.Context, domain, target, bogus string, res *probeResult) {
	hosts := res.mxRecords
	if len(hosts) > maxMXAttempts {
		hosts = hosts[:maxMXAttempts]
	}

	var lastErr error
	for _, mx := range hosts {
		conn, err := p.dial(ctx, "tcp", net.JoinHostPort(mx.Exchange, "25"))
		if err != nil {
			lastErr = err
			continue
		}
		p.session(ctx, conn, domain, target, bogus, res)
		return
	}

	if lastErr != nil && isTimeout(lastErr) {
		res.diagnostics.TimedOut = true
	}
}

// session runs banner, HELO, MAIL FROM and both RCPT checks over one
// connection. A failure at any step leaves the remaining signals unknown.
func (p *prober) session(ctx context.Context, conn net.Conn, domain, target, bogus string, res *probeResult) {
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, domain)
	if err != nil {
		p.noteSessionFailure(err, res)
		return
	}
	defer client.Close()

	if err := client.Hello(p.heloDomain); err != nil {
		p.noteSessionFailure(err, res)
		return
	}
	if err := client.Mail(p.mailFrom); err != nil {
		p.noteSessionFailure(err, res)
		return
	}

	accepts, diag := classifyRcpt(client.Rcpt(target))
	res.smtpAccepts = accepts
	mergeDiagnostics(&res.diagnostics, diag)

	// Catch-all: a deliberately invalid mailbox on the same domain. If the
	// server takes that one too, per-address verification is unreliable.
	bogusAccepts, bogusDiag := classifyRcpt(client.Rcpt(bogus))
	res.isCatchAll = bogusAccepts
	if bogusDiag.TimedOut {
		res.diagnostics.TimedOut = true
	}
}

func (p *prober) noteSessionFailure(err error, res *probeResult) {
	if isTimeout(err) {
		res.diagnostics.TimedOut = true
		return
	}
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) && (tpErr.Code == 450 || tpErr.Code == 451) {
		res.diagnostics.Greylisted = true
	}
}

// classifyRcpt maps an RCPT TO outcome onto the tri-state mailbox signal.
// Only a clean 2xx yields true and only a hard mailbox rejection yields
// false; everything else stays unknown with a diagnostic flag.
func classifyRcpt(err error) (*bool, SMTPDiagnostics) {
	var diag SMTPDiagnostics
	if err == nil {
		return boolPtr(true), diag
	}
	if isTimeout(err) {
		diag.TimedOut = true
		return nil, diag
	}

	var tpErr *textproto.Error
	if !errors.As(err, &tpErr) {
		return nil, diag
	}

	msg := strings.ToLower(tpErr.Msg)
	switch {
	case tpErr.Code == 450 || tpErr.Code == 451:
		diag.Greylisted = true
		return nil, diag
	case tpErr.Code == 452 || tpErr.Code == 552 ||
		strings.Contains(msg, "quota") || strings.Contains(msg, "mailbox full"):
		diag.QuotaExceeded = true
		return nil, diag
	case containsAny(msg, "spam", "blocked", "blacklist", "denied", "banned"):
		diag.SpamBlocked = true
		return nil, diag
	case tpErr.Code >= 500:
		return boolPtr(false), diag
	default:
		return nil, diag
	}
}

func mergeDiagnostics(dst *SMTPDiagnostics, src SMTPDiagnostics) {
	dst.TimedOut = dst.TimedOut || src.TimedOut
	dst.Greylisted = dst.Greylisted || src.Greylisted
	dst.QuotaExceeded = dst.QuotaExceeded || src.QuotaExceeded
	dst.SpamBlocked = dst.SpamBlocked || src.SpamBlocked
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// randomLocalPart builds an address that should not exist on any sane
// domain, used for the catch-all probe.
func randomLocalPart() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		binary.BigEndian.PutUint64(buf, uint64(time.Now().UnixNano()))
	}
	return "verify-probe-" + hex.EncodeToString(buf)
}

func boolPtr(b bool) *bool { return &b }
