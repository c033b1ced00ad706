package ports

import (
	"context"
	"io"

	"github.com/estateops/triage/internal/core/domain"
)

// DocumentTriager is the inbound contract for synchronous triage. It never
// returns an error: every failure is folded into the result's status.
type DocumentTriager interface {
	Process(ctx context.Context, doc domain.Document) domain.ProcessingResult
}

// DocumentIngestor is the inbound contract for the asynchronous upload flow.
type DocumentIngestor interface {
	Upload(ctx context.Context, filename, mimeType string, body io.Reader, metadata map[string]string) (*domain.DocumentRecord, error)
}

// DocumentReader is the inbound read model for stored document state.
type DocumentReader interface {
	GetByID(ctx context.Context, id string) (*domain.DocumentRecord, error)
}

// DocumentProcessor is the inbound contract for worker-side processing of a
// stored document.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}
