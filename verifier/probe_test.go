package verifier

import (
	"context"
	"errors"
	"net"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedDial returns a dial function backed by an in-memory SMTP server
// that sends a banner and then answers each client command with the next
// response from the script, in order.
func scriptedDial(responses ...string) func(ctx context.Context, network, address string) (net.Conn, error) {
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		client, server := net.Pipe()
		go serveScript(server, responses)
		return client, nil
	}
}

func serveScript(conn net.Conn, responses []string) {
	defer conn.Close()
	tc := textproto.NewConn(conn)
	if err := tc.PrintfLine("220 mx.test ESMTP ready"); err != nil {
		return
	}
	for _, resp := range responses {
		if _, err := tc.ReadLine(); err != nil {
			return
		}
		if err := tc.PrintfLine(resp); err != nil {
			return
		}
	}
	for {
		if _, err := tc.ReadLine(); err != nil {
			return
		}
	}
}

func testProber(mxs []*net.MX, mxErr error, dial func(ctx context.Context, network, address string) (net.Conn, error)) *prober {
	return &prober{
		heloDomain: "verify.test",
		mailFrom:   "noreply@verify.test",
		timeout:    2 * time.Second,
		lookupMX: func(ctx context.Context, domain string) ([]*net.MX, error) {
			return mxs, mxErr
		},
		dial: dial,
	}
}

func singleMX() []*net.MX {
	return []*net.MX{{Host: "mx.test.", Pref: 10}}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestProbe_AcceptedNotCatchAll(t *testing.T) {
	p := testProber(singleMX(), nil, scriptedDial(
		"250 mx.test",
		"250 sender ok",
		"250 recipient ok",
		"550 5.1.1 no such user",
	))

	res := p.run(context.Background(), "user", "test")
	assert.True(t, res.hasMX)
	require.NotNil(t, res.smtpAccepts)
	assert.True(t, *res.smtpAccepts)
	require.NotNil(t, res.isCatchAll)
	assert.False(t, *res.isCatchAll)
	assert.Equal(t, SMTPDiagnostics{}, res.diagnostics)
}

func TestProbe_CatchAllDomain(t *testing.T) {
	p := testProber(singleMX(), nil, scriptedDial(
		"250 mx.test",
		"250 sender ok",
		"250 recipient ok",
		"250 recipient ok",
	))

	res := p.run(context.Background(), "user", "test")
	require.NotNil(t, res.smtpAccepts)
	assert.True(t, *res.smtpAccepts)
	require.NotNil(t, res.isCatchAll)
	assert.True(t, *res.isCatchAll)
}

func TestProbe_HardBounce(t *testing.T) {
	p := testProber(singleMX(), nil, scriptedDial(
		"250 mx.test",
		"250 sender ok",
		"550 5.1.1 user unknown",
		"550 5.1.1 no such user",
	))

	res := p.run(context.Background(), "user", "test")
	require.NotNil(t, res.smtpAccepts)
	assert.False(t, *res.smtpAccepts)
	require.NotNil(t, res.isCatchAll)
	assert.False(t, *res.isCatchAll)
}

func TestProbe_GreylistingLeavesSignalUnknown(t *testing.T) {
	p := testProber(singleMX(), nil, scriptedDial(
		"250 mx.test",
		"250 sender ok",
		"451 4.7.1 please try again later",
		"451 4.7.1 please try again later",
	))

	res := p.run(context.Background(), "user", "test")
	assert.Nil(t, res.smtpAccepts)
	assert.Nil(t, res.isCatchAll)
	assert.True(t, res.diagnostics.Greylisted)
}

func TestProbe_SpamBlockLeavesSignalUnknown(t *testing.T) {
	p := testProber(singleMX(), nil, scriptedDial(
		"250 mx.test",
		"250 sender ok",
		"554 5.7.1 rejected due to spam content",
		"554 5.7.1 rejected due to spam content",
	))

	res := p.run(context.Background(), "user", "test")
	assert.Nil(t, res.smtpAccepts, "a policy refusal is not a mailbox answer")
	assert.True(t, res.diagnostics.SpamBlocked)
}

func TestProbe_QuotaExceeded(t *testing.T) {
	p := testProber(singleMX(), nil, scriptedDial(
		"250 mx.test",
		"250 sender ok",
		"452 4.2.2 mailbox full",
		"550 5.1.1 no such user",
	))

	res := p.run(context.Background(), "user", "test")
	assert.Nil(t, res.smtpAccepts)
	assert.True(t, res.diagnostics.QuotaExceeded)
}

func TestProbe_DialFailure(t *testing.T) {
	p := testProber(singleMX(), nil, func(ctx context.Context, network, address string) (net.Conn, error) {
		return nil, errors.New("connection refused")
	})

	res := p.run(context.Background(), "user", "test")
	assert.True(t, res.hasMX)
	assert.Nil(t, res.smtpAccepts)
	assert.Nil(t, res.isCatchAll)
	assert.False(t, res.diagnostics.TimedOut)
}

func TestProbe_DialTimeoutFlagged(t *testing.T) {
	p := testProber(singleMX(), nil, func(ctx context.Context, network, address string) (net.Conn, error) {
		return nil, timeoutError{}
	})

	res := p.run(context.Background(), "user", "test")
	assert.Nil(t, res.smtpAccepts)
	assert.True(t, res.diagnostics.TimedOut)
}

func TestProbe_FallsBackToSecondExchanger(t *testing.T) {
	mxs := []*net.MX{
		{Host: "mx1.test.", Pref: 5},
		{Host: "mx2.test.", Pref: 10},
	}
	dial := scriptedDial(
		"250 mx2.test",
		"250 sender ok",
		"250 recipient ok",
		"550 5.1.1 no such user",
	)
	var dialed []string
	p := testProber(mxs, nil, func(ctx context.Context, network, address string) (net.Conn, error) {
		dialed = append(dialed, address)
		if address == "mx1.test:25" {
			return nil, errors.New("connection refused")
		}
		return dial(ctx, network, address)
	})

	res := p.run(context.Background(), "user", "test")
	assert.Equal(t, []string{"mx1.test:25", "mx2.test:25"}, dialed)
	require.NotNil(t, res.smtpAccepts)
	assert.True(t, *res.smtpAccepts)
}

func TestProbe_SortsExchangersAndStripsDots(t *testing.T) {
	mxs := []*net.MX{
		{Host: "backup.test.", Pref: 20},
		{Host: "primary.test.", Pref: 5},
	}
	p := testProber(mxs, nil, func(ctx context.Context, network, address string) (net.Conn, error) {
		return nil, errors.New("connection refused")
	})

	res := p.run(context.Background(), "user", "test")
	assert.Equal(t, []MXRecord{
		{Priority: 5, Exchange: "primary.test"},
		{Priority: 20, Exchange: "backup.test"},
	}, res.mxRecords)
}

func TestProbe_DNSFailureSkipsSMTP(t *testing.T) {
	dialCalled := false
	p := testProber(nil, errors.New("no such host"), func(ctx context.Context, network, address string) (net.Conn, error) {
		dialCalled = true
		return nil, errors.New("unreachable")
	})

	res := p.run(context.Background(), "user", "test")
	assert.False(t, res.hasMX)
	assert.EqualError(t, res.mxErr, "no such host")
	assert.Empty(t, res.mxRecords)
	assert.Nil(t, res.smtpAccepts)
	assert.False(t, dialCalled)
}

func TestClassifyRcpt(t *testing.T) {
	accepts, diag := classifyRcpt(nil)
	require.NotNil(t, accepts)
	assert.True(t, *accepts)
	assert.Equal(t, SMTPDiagnostics{}, diag)

	accepts, _ = classifyRcpt(&textproto.Error{Code: 550, Msg: "user unknown"})
	require.NotNil(t, accepts)
	assert.False(t, *accepts)

	accepts, diag = classifyRcpt(&textproto.Error{Code: 450, Msg: "try later"})
	assert.Nil(t, accepts)
	assert.True(t, diag.Greylisted)

	accepts, diag = classifyRcpt(&textproto.Error{Code: 552, Msg: "over quota"})
	assert.Nil(t, accepts)
	assert.True(t, diag.QuotaExceeded)

	accepts, diag = classifyRcpt(&textproto.Error{Code: 550, Msg: "sender blacklisted"})
	assert.Nil(t, accepts, "spam policy wording overrides the 5xx code")
	assert.True(t, diag.SpamBlocked)

	accepts, diag = classifyRcpt(errors.New("connection reset"))
	assert.Nil(t, accepts)
	assert.Equal(t, SMTPDiagnostics{}, diag)
}

func TestRandomLocalPart(t *testing.T) {
	a := randomLocalPart()
	b := randomLocalPart()
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "verify-probe-")
}
