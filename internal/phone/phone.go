// Package phone formats E164 phone numbers for display.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DisplayInternational formats an E164 number in international notation,
// for example "+1 555-123-4567". Numbers that cannot be parsed are returned unchanged.
func DisplayInternational(e164 string) string {
	e164 = strings.TrimSpace(e164)
	if e164 == "" {
		return ""
	}

	num, err := phonenumbers.Parse(e164, "")
	if err != nil {
		return e164
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}

// IsE164 reports whether s parses as a valid number in E164 notation.
func IsE164(s string) bool {
	if !strings.HasPrefix(s, "+") {
		return false
	}
	num, err := phonenumbers.Parse(s, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}
