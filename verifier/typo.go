// verifier/typo.go
package verifier

// commonTypos maps known domain misspellings to their canonical form.
// Lookup is exact-match only; no edit-distance matching is attempted, so
// an unlisted misspelling yields no suggestion.
var commonTypos = map[string]string{
	"gmai.com":      "gmail.com",
	"gmal.com":      "gmail.com",
	"gmial.com":     "gmail.com",
	"gmaill.com":    "gmail.com",
	"gamil.com":     "gmail.com",
	"gmail.co":      "gmail.com",
	"gmail.cm":      "gmail.com",
	"gmail.con":     "gmail.com",
	"yaho.com":      "yahoo.com",
	"yahooo.com":    "yahoo.com",
	"yhaoo.com":     "yahoo.com",
	"yahoo.con":     "yahoo.com",
	"hotmai.com":    "hotmail.com",
	"hotmal.com":    "hotmail.com",
	"hotmial.com":   "hotmail.com",
	"hotmail.co":    "hotmail.com",
	"outlok.com":    "outlook.com",
	"outloook.com":  "outlook.com",
	"outlook.co":    "outlook.com",
	"iclod.com":     "icloud.com",
	"icloud.co":     "icloud.com",
	"protonmai.com": "protonmail.com",
}

// suggestFor returns the corrected address when the domain is a known
// misspelling, or "" when there is nothing to suggest.
func suggestFor(local, domain string) string {
	canonical, ok := commonTypos[domain]
	if !ok {
		return ""
	}
	return local + "@" + canonical
}
