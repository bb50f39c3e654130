// verifier/syntax.go
package verifier

import (
	"regexp"
	"strings"

	"github.com/badoux/checkmail"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// address is the parsed form of a candidate email. When valid is false the
// engine short-circuits to Undeliverable/INVALID_FORMAT without touching
// the network.
type address struct {
	local  string
	domain string
	hasTag bool
	valid  bool
}

// parseAddress validates syntax and splits the address. The domain is the
// substring after the last '@', lower-cased; the local part is lower-cased
// for the static classifiers.
func parseAddress(email string) address {
	if err := checkmail.ValidateFormat(email); err != nil {
		return address{}
	}
	if !emailRegex.MatchString(email) {
		return address{}
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at >= len(email)-1 {
		return address{}
	}

	local := strings.ToLower(email[:at])
	return address{
		local:  local,
		domain: strings.ToLower(email[at+1:]),
		hasTag: strings.Contains(local, "+"),
		valid:  true,
	}
}
