package utils

import "strings"

// NormalizePlate brings a plate to its stored form: trimmed and
// upper-cased. Plates are free text, so dashes and inner spacing are kept
// as the client wrote them.
func NormalizePlate(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
