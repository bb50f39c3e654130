// verifier/types.go
package verifier

// Status is the final deliverability classification of an address.
type Status string

const (
	StatusDeliverable   Status = "Deliverable"
	StatusUndeliverable Status = "Undeliverable"
	StatusBounced       Status = "Bounced"
	StatusRisky         Status = "Risky"
	StatusError         Status = "Error"
)

// Reason explains why a given Status was assigned.
type Reason string

const (
	ReasonInvalidFormat           Reason = "INVALID_FORMAT"
	ReasonInvalidDomain           Reason = "INVALID_DOMAIN"
	ReasonMailboxNotFound         Reason = "MAILBOX_NOT_FOUND"
	ReasonDisposableEmail         Reason = "DISPOSABLE_EMAIL"
	ReasonCatchAllDomain          Reason = "CATCH_ALL_DOMAIN"
	ReasonAcceptedEmail           Reason = "ACCEPTED_EMAIL"
	ReasonUncertainDeliverability Reason = "UNCERTAIN_DELIVERABILITY"
	ReasonLowQualityScore         Reason = "LOW_QUALITY_SCORE"
	ReasonVerificationError       Reason = "VERIFICATION_ERROR"
)

// MXRecord is one resolved mail exchanger, kept in ascending priority order.
type MXRecord struct {
	Priority uint16 `json:"priority"`
	Exchange string `json:"exchange"`
}

// SMTPDiagnostics carries non-fatal probe conditions. A set flag never
// changes SMTPAccepts on its own; it only explains why the probe could
// not reach a definitive answer.
type SMTPDiagnostics struct {
	TimedOut      bool `json:"timedOut,omitempty"`
	Greylisted    bool `json:"greylisted,omitempty"`
	QuotaExceeded bool `json:"quotaExceeded,omitempty"`
	SpamBlocked   bool `json:"spamBlocked,omitempty"`
}

// Details holds every signal the engine derived for one address.
//
// SMTPAccepts and IsCatchAll are tri-state: nil means the probe could not
// produce a definitive answer (timeout, greylisting, policy refusal) and
// must never be read as false.
type Details struct {
	HasValidFormat    bool            `json:"hasValidFormat"`
	HasMXRecords      bool            `json:"hasMxRecords"`
	SMTPAccepts       *bool           `json:"smtpAccepts"`
	IsCatchAll        *bool           `json:"isCatchAll"`
	IsDisposable      bool            `json:"isDisposable"`
	IsFreeProvider    bool            `json:"isFreeProvider"`
	IsRoleAccount     bool            `json:"isRoleAccount"`
	IsTrustedProvider bool            `json:"isTrustedProvider"`
	HasTag            bool            `json:"hasTag"`
	Score             int             `json:"score"`
	Reason            Reason          `json:"reason"`
	Suggestion        string          `json:"suggestion,omitempty"`
	MXRecords         []MXRecord      `json:"mxRecords"`
	MXError           string          `json:"mxError,omitempty"`
	SMTPDiagnostics   SMTPDiagnostics `json:"smtpDiagnostics"`
	Error             string          `json:"error,omitempty"`
}

// Verdict is the complete outcome of one verification call. It is owned by
// the calling request and is never persisted.
type Verdict struct {
	Email   string  `json:"email"`
	Domain  string  `json:"-"`
	Status  Status  `json:"status"`
	Details Details `json:"details"`
	Report  string  `json:"formattedResult"`
}
