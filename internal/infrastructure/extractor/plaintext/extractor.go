// Package plaintext turns stored documents into sanitized plain text for
// the triage pipeline. Binary formats are out of scope: anything that is
// not valid UTF-8 is rejected.
package plaintext

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/estateops/triage/internal/core/domain"
	"github.com/estateops/triage/internal/core/ports"
)

type Extractor struct {
	storage ports.ObjectStorage
}

func NewExtractor(storage ports.ObjectStorage) *Extractor {
	return &Extractor{storage: storage}
}

func (e *Extractor) Extract(ctx context.Context, rec *domain.DocumentRecord) (string, error) {
	reader, err := e.storage.Open(ctx, rec.StoragePath)
	if err != nil {
		return "", fmt.Errorf("open source document: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read source document: %w", err)
	}

	if !utf8.Valid(raw) {
		return "", domain.WrapError(domain.ErrInvalidInput, "extract text",
			fmt.Errorf("binary content in %s is not supported", rec.Filename))
	}

	// Empty text is a valid extraction; the classifier handles it.
	return domain.SanitizeContent(string(raw)), nil
}
