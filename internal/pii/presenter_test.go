package pii

import "testing"

func TestPresentKeepsDetectorOrder(t *testing.T) {
	got := Present([]string{"SSN", "EMAIL", "PHONE"})
	if got != "SSN, EMAIL, PHONE" {
		t.Fatalf("unexpected presentation: %q", got)
	}
}

func TestPresentEmpty(t *testing.T) {
	if got := Present(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestNotice(t *testing.T) {
	if got := Notice(nil); got != "" {
		t.Fatalf("expected no notice, got %q", got)
	}
	got := Notice([]string{"SALARY"})
	if got != "We detected and redacted: SALARY" {
		t.Fatalf("unexpected notice: %q", got)
	}
}
