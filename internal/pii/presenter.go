// Package pii formats detected PII categories for display. Detection and
// redaction are delegated entirely to the classification engine; nothing
// here inspects ticket text.
package pii

import "strings"

// Present joins detected PII labels for user display, e.g. "SSN, EMAIL".
// Order is kept stable relative to detector output; no deduplication beyond
// what the detector already guarantees.
func Present(labels []string) string {
	return strings.Join(labels, ", ")
}

// Notice renders the banner text shown when PII was redacted from a
// submission. Empty when nothing was detected.
func Notice(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	return "We detected and redacted: " + Present(labels)
}
