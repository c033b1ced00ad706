package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MaxDocumentIDLength = 100
	MaxContentBytes     = 1 << 20 // 1 MiB of plain text
)

var documentIDPattern = regexp.MustCompile(`^[A-Za-z0-9\-_]+$`)

// ValidateDocument rejects malformed triage input before it reaches the
// pipeline. Content may be empty; absence of signal is a valid input.
func ValidateDocument(doc Document) error {
	if doc.ID == "" {
		return WrapError(ErrInvalidInput, "validate document", fmt.Errorf("document_id is required"))
	}
	if len(doc.ID) > MaxDocumentIDLength {
		return WrapError(ErrInvalidInput, "validate document", fmt.Errorf("document_id exceeds %d characters", MaxDocumentIDLength))
	}
	if !documentIDPattern.MatchString(doc.ID) {
		return WrapError(ErrInvalidInput, "validate document", fmt.Errorf("document_id %q has invalid characters", doc.ID))
	}
	if len(doc.Content) > MaxContentBytes {
		return WrapError(ErrInvalidInput, "validate document", fmt.Errorf("content exceeds %d bytes", MaxContentBytes))
	}
	return nil
}

// SanitizeContent strips null bytes and control characters (newlines and
// tabs survive) and collapses runs of spaces within each line.
func SanitizeContent(content string) string {
	var b strings.Builder
	b.Grow(len(content))
	for _, r := range content {
		switch {
		case r == '\n' || r == '\t' || r == ' ':
			b.WriteRune(r)
		case r >= 32 && r != 127:
			b.WriteRune(r)
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
