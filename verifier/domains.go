// verifier/domains.go
package verifier

import "strings"

// Static lookup tables. All sets are built once at process start and are
// read-only afterwards, so concurrent verifications can share them freely.
var (
	disposableDomains = loadDomainSet(disposableDomainList)
	freeProviders     = loadDomainSet(freeProviderList)
	trustedProviders  = loadDomainSet(trustedProviderList)
	roleNames         = loadDomainSet(roleNameList)
)

func isDisposableDomain(domain string) bool {
	return disposableDomains[domain]
}

func isFreeProvider(domain string) bool {
	return freeProviders[domain]
}

// isTrustedProvider reports membership in the major-provider set. Trusted
// domains overlap with the free set but suppress the catch-all and
// free-provider score penalties.
func isTrustedProvider(domain string) bool {
	return trustedProviders[domain]
}

// isRoleAccount matches the lower-cased local part against the role-name
// set: an exact match ("admin") or a role prefix followed by a dot
// ("admin.europe").
func isRoleAccount(local string) bool {
	if roleNames[local] {
		return true
	}
	if dot := strings.Index(local, "."); dot > 0 {
		return roleNames[local[:dot]]
	}
	return false
}

func loadDomainSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, d := range strings.Split(list, "\n") {
		d = strings.TrimSpace(d)
		if d != "" {
			set[d] = true
		}
	}
	return set
}

const freeProviderList = `
gmail.com
googlemail.com
yahoo.com
yahoo.co.uk
outlook.com
hotmail.com
hotmail.co.uk
live.com
msn.com
aol.com
protonmail.com
proton.me
icloud.com
me.com
mail.com
yandex.com
yandex.ru
zoho.com
gmx.com
gmx.net
gmx.de
fastmail.com
tutanota.com
`

const trustedProviderList = `
gmail.com
googlemail.com
yahoo.com
outlook.com
hotmail.com
live.com
aol.com
protonmail.com
proton.me
icloud.com
me.com
zoho.com
gmx.com
fastmail.com
`

const roleNameList = `
abuse
admin
administrator
billing
contact
enquiries
help
hostmaster
hr
info
jobs
mail
mailer-daemon
marketing
no-reply
noc
noreply
office
postmaster
root
sales
security
support
team
webmaster
`

const disposableDomainList = `
mailinator.com
mailinator.net
mailinator.org
mailinator2.com
notmailinator.com
tempmail.org
temp-mail.org
temp-mail.io
tempmail.net
10minutemail.com
10minutemail.co.za
20minutemail.com
30minutemail.com
60minutemail.com
guerrillamail.com
guerrillamail.biz
guerrillamail.de
guerrillamail.info
guerrillamail.net
guerrillamail.org
guerrillamailblock.com
guerillamail.com
guerillamail.net
guerillamail.org
trashmail.com
trashmail.at
trashmail.de
trashmail.me
trashmail.net
trashmail.org
trashmail.ws
trash-mail.at
trash-mail.com
trash-mail.de
trashymail.com
yopmail.com
yopmail.fr
yopmail.net
maildrop.cc
dispostable.com
fakeinbox.com
throwawaymail.com
throwawayemailaddress.com
mailnesia.com
getairmail.com
mytemp.email
mailcatch.com
tempemail.net
tempinbox.com
tempmailaddress.com
mailmetrash.com
discard.email
discardmail.com
discardmail.de
mintemail.com
spamgourmet.com
spamhole.com
spam.la
spam4.me
spambox.us
spamfree24.org
spamfree.eu
sharklasers.com
sneakemail.com
snkmail.com
suremail.info
temporaryinbox.com
temporaryemail.net
tempomail.fr
tempail.com
tempmail2.com
tempmaildemo.com
tempmailer.com
tempmailer.de
mailexpire.com
mailforspam.com
mailnull.com
mailsac.com
mailslite.com
maildu.de
mail-temp.com
fake-mail.com
dodgeit.com
dodgit.com
deadaddress.com
deadspam.com
despammed.com
devnullmail.com
disposableaddress.com
disposableinbox.com
dispose.it
emailondeck.com
getnada.com
harakirimail.com
incognitomail.com
incognitomail.net
jetable.org
killmail.com
killmail.net
kurzepost.de
meltmail.com
mohmal.com
mytrashmail.com
neverbox.com
no-spam.ws
nospammail.net
objectmail.com
oneoffemail.com
onewaymail.com
pookmail.com
proxymail.eu
rcpt.at
rejectmail.com
selfdestructingmail.com
shitmail.me
sofort-mail.de
spamavert.com
spambog.com
spambog.de
spambog.ru
spamcannon.com
spamcannon.net
spamex.com
spamify.com
spaml.com
spammotel.com
spamobox.com
spamspot.com
spamthis.co.uk
tempalias.com
tempe-mail.com
tempemail.biz
tempemail.com
tempinbox.co.uk
thankyou2010.com
trashdevil.com
trashdevil.de
trashemail.de
trashmailer.com
wegwerfadresse.de
wegwerfemail.de
wegwerfmail.de
wegwerfmail.net
wegwerfmail.org
wh4f.org
whyspam.me
willselfdestruct.com
wuzup.net
yep.it
zehnminutenmail.de
zippymail.info
zoemail.net
zoemail.org
`
