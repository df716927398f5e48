package delivery

import (
	"fmt"
	"regexp"
	"strings"
)

// disposableDomains lists temporary-email providers blocked at intake
var disposableDomains = map[string]bool{
	"tempmail.com":      true,
	"guerrillamail.com": true,
	"mailinator.com":    true,
	"10minutemail.com":  true,
	"throwaway.email":   true,
	"maildrop.cc":       true,
	"yopmail.com":       true,
	"fakeinbox.com":     true,
	"trashmail.com":     true,
	"getnada.com":       true,
	"temp-mail.org":     true,
	"discard.email":     true,
}

// commonTypos maps frequent misspellings of popular domains to corrections
var commonTypos = map[string]string{
	"gmial.com":   "gmail.com",
	"gmai.com":    "gmail.com",
	"gmil.com":    "gmail.com",
	"yahooo.com":  "yahoo.com",
	"yaho.com":    "yahoo.com",
	"hotmial.com": "hotmail.com",
	"hotmal.com":  "hotmail.com",
	"outlok.com":  "outlook.com",
	"outloo.com":  "outlook.com",
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// CheckEmail validates an intake email address. It returns a non-empty
// suggestion when the address is valid but the domain looks like a common
// typo; an error means the address is rejected outright.
func CheckEmail(email string) (suggestion string, err error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !emailPattern.MatchString(email) {
		return "", fmt.Errorf("please enter a valid email address")
	}

	at := strings.LastIndex(email, "@")
	local, domain := email[:at], email[at+1:]

	if disposableDomains[domain] {
		return "", fmt.Errorf("temporary email addresses are not allowed")
	}

	if corrected, ok := commonTypos[domain]; ok {
		return local + "@" + corrected, nil
	}

	if !validDomain(domain) {
		return "", fmt.Errorf("email domain appears to be invalid")
	}

	return "", nil
}

// validDomain checks the domain has dotted structure with a real TLD.
func validDomain(domain string) bool {
	if !strings.Contains(domain, ".") {
		return false
	}
	parts := strings.Split(domain, ".")
	for _, part := range parts {
		if part == "" {
			return false
		}
	}
	return len(parts[len(parts)-1]) >= 2
}
