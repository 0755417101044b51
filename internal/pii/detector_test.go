package pii

import (
	"reflect"
	"strings"
	"testing"
)

func TestScanEmail(t *testing.T) {
	d := NewDetector()
	res := d.Scan("contact me at jane.doe@example.com please", false)

	if !res.HasPII {
		t.Fatal("expected PII")
	}
	if !reflect.DeepEqual(res.Types, []string{TypeEmail}) {
		t.Errorf("expected types [email], got %v", res.Types)
	}
	if res.Redacted != "" {
		t.Errorf("redacted copy should be empty without redact, got %q", res.Redacted)
	}
}

func TestScanPhone(t *testing.T) {
	d := NewDetector()
	res := d.Scan("call 555-123-4567 now", false)
	if !reflect.DeepEqual(res.Types, []string{TypePhone}) {
		t.Errorf("expected types [phone], got %v", res.Types)
	}
}

func TestScanSSNAndCard(t *testing.T) {
	d := NewDetector()
	res := d.Scan("SSN 123-45-6789 and card 4111 1111 1111 1111", false)
	if !reflect.DeepEqual(res.Types, []string{TypeSSN, TypeCreditCard}) {
		t.Errorf("expected types [ssn credit_card], got %v", res.Types)
	}
}

func TestScanTypesKeepFixedOrder(t *testing.T) {
	d := NewDetector()
	// Phone appears before the email in the text; reporting order is fixed
	res := d.Scan("call 555-123-4567 or write a@b.com", false)
	if !reflect.DeepEqual(res.Types, []string{TypeEmail, TypePhone}) {
		t.Errorf("expected types [email phone], got %v", res.Types)
	}
}

func TestScanClean(t *testing.T) {
	d := NewDetector()
	res := d.Scan("no sensitive content in this sentence", true)
	if res.HasPII || len(res.Types) != 0 || res.Redacted != "" {
		t.Errorf("clean text should report nothing, got %+v", res)
	}
}

func TestRedact(t *testing.T) {
	d := NewDetector()
	res := d.Scan("Email a@b.com or call 555-123-4567", true)

	if !strings.Contains(res.Redacted, "[EMAIL_REDACTED]") {
		t.Errorf("email not redacted: %q", res.Redacted)
	}
	if !strings.Contains(res.Redacted, "[PHONE_REDACTED]") {
		t.Errorf("phone not redacted: %q", res.Redacted)
	}
	if strings.Contains(res.Redacted, "a@b.com") || strings.Contains(res.Redacted, "555-123-4567") {
		t.Errorf("original values leaked: %q", res.Redacted)
	}
}

func TestRedactIsIdempotent(t *testing.T) {
	d := NewDetector()
	first := d.Scan("reach 555-123-4567 or a@b.com, SSN 123-45-6789", true)

	second := d.Scan(first.Redacted, true)
	if second.HasPII {
		t.Errorf("redacted text should scan clean, found %v in %q", second.Types, first.Redacted)
	}
}

func TestRedactAllCategories(t *testing.T) {
	d := NewDetector()
	res := d.Scan("a@b.com 123-45-6789 4111 1111 1111 1111 555-123-4567", true)

	for _, ph := range []string{"[EMAIL_REDACTED]", "[SSN_REDACTED]", "[CARD_REDACTED]", "[PHONE_REDACTED]"} {
		if !strings.Contains(res.Redacted, ph) {
			t.Errorf("missing placeholder %s in %q", ph, res.Redacted)
		}
	}
}
