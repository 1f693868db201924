package helpers

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
)

// PortalDateLayout is the date-only format the portal sends.
const PortalDateLayout = "2006-01-02"

// IsEmailValid checks the basic shape of an email address.
func IsEmailValid(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizePhone strips spaces, hyphens and parentheses from a phone
// number so lookups compare like for like.
func NormalizePhone(phone string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return replacer.Replace(phone)
}

// IsPhoneValid checks the normalized shape of a phone number.
func IsPhoneValid(phone string) bool {
	return phoneRegex.MatchString(NormalizePhone(phone))
}

// IsLikelyBase64 reports whether a string looks like a Base64 payload
// rather than plain text. Used to detect double-encoded fields coming
// from the portal.
func IsLikelyBase64(value string) bool {
	if len(value) == 0 || len(value)%4 != 0 {
		return false
	}
	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return false
	}
	// Plain words like "Male" decode "successfully" to garbage; require
	// the decoded bytes to be printable ASCII before trusting it.
	for _, b := range decoded {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// DecodeIfBase64 returns the decoded value when it looks Base64-encoded,
// otherwise the value unchanged.
func DecodeIfBase64(value string) string {
	if !IsLikelyBase64(value) {
		return value
	}
	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return value
	}
	return string(decoded)
}

// ParsePortalDate parses a portal date field, accepting the date-only
// layout and full RFC 3339 timestamps.
func ParsePortalDate(value string) (time.Time, error) {
	if t, err := time.Parse(PortalDateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}

// ValidateDateRange checks that both dates parse and end is not before
// start.
func ValidateDateRange(startDate, endDate string) error {
	start, err := ParsePortalDate(startDate)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	end, err := ParsePortalDate(endDate)
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}
	return nil
}
