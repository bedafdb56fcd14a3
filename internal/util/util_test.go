package util

import (
	"testing"
	"time"
)

func TestNormalizePhoneNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "ten digits", raw: "4161234567", expected: "+14161234567"},
		{name: "eleven digits with country code", raw: "14161234567", expected: "+14161234567"},
		{name: "already e164", raw: "+14161234567", expected: "+14161234567"},
		{name: "too short passes through", raw: "123", expected: "123"},
		{name: "formatted ten digits", raw: "(416) 123-4567", expected: "+14161234567"},
		{name: "formatted eleven digits", raw: "1-416-123-4567", expected: "+14161234567"},
		{name: "surrounding whitespace", raw: "  4161234567  ", expected: "+14161234567"},
		{name: "eleven digits not starting with one", raw: "24161234567", expected: "24161234567"},
		{name: "plus with spaces kept", raw: " +44 20 7946 0958 ", expected: "+44 20 7946 0958"},
		{name: "empty", raw: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizePhoneNumber(tt.raw); got != tt.expected {
				t.Fatalf("NormalizePhoneNumber(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestIsPlausiblePhoneNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected bool
	}{
		{raw: "4161234567", expected: true},
		{raw: "+1 (416) 123-4567", expected: true},
		{raw: "not-a-number", expected: false},
		{raw: "416.123.4567", expected: false},
		{raw: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			if got := IsPlausiblePhoneNumber(tt.raw); got != tt.expected {
				t.Fatalf("IsPlausiblePhoneNumber(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestMaskPhoneNumber(t *testing.T) {
	t.Parallel()

	if got := MaskPhoneNumber("+14161234567"); got != "********4567" {
		t.Fatalf("MaskPhoneNumber = %q", got)
	}
	if got := MaskPhoneNumber("123"); got != "123" {
		t.Fatalf("MaskPhoneNumber short = %q", got)
	}
}

func TestDateFormatting(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, time.January, 6, 15, 4, 0, 0, time.UTC)

	if got := FormatLongDate(ts); got != "Monday, January 6, 2025" {
		t.Fatalf("FormatLongDate = %q", got)
	}
	if got := FormatShortDate(ts); got != "Mon, Jan 6" {
		t.Fatalf("FormatShortDate = %q", got)
	}
	if got := FormatLongDateTime(ts); got != "Monday, January 6, 2025 at 03:04 PM" {
		t.Fatalf("FormatLongDateTime = %q", got)
	}
}
