package util

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// phonePattern mirrors what the SMS endpoints accept before handing a number to the provider.
var phonePattern = regexp.MustCompile(`^\+?1?[\d\s\-()]+$`)

// NormalizePhoneNumber converts North American numbers to E.164.
// Ten digits get a +1 prefix, eleven digits starting with 1 get a + prefix,
// and anything else is returned trimmed but otherwise untouched.
func NormalizePhoneNumber(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "+") {
		return trimmed
	}

	digits := DigitsOnly(trimmed)
	switch {
	case len(digits) == 10:
		return "+1" + digits
	case len(digits) == 11 && digits[0] == '1':
		return "+" + digits
	default:
		return trimmed
	}
}

// IsPlausiblePhoneNumber reports whether s looks like a phone number at all.
func IsPlausiblePhoneNumber(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

// DigitsOnly strips every non-digit rune.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// MaskPhoneNumber hides all but the last four digits for logs.
func MaskPhoneNumber(phone string) string {
	if len(phone) <= 4 {
		return phone
	}

	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}

// FormatLongDate renders "Monday, January 6, 2025".
func FormatLongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatShortDate renders "Mon, Jan 6".
func FormatShortDate(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// FormatLongDateTime renders "Monday, January 6, 2025 at 03:04 PM".
func FormatLongDateTime(t time.Time) string {
	return fmt.Sprintf("%s at %s", FormatLongDate(t), t.Format("03:04 PM"))
}
