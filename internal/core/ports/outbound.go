package ports

import (
	"context"
	"io"

	"github.com/estateops/triage/internal/core/domain"
)

// DocumentClassifier assigns a taxonomy category to document content.
type DocumentClassifier interface {
	Classify(ctx context.Context, content string) (domain.Classification, error)
}

// ComplianceValidator checks document content against the rule set
// registered for a category.
type ComplianceValidator interface {
	Validate(ctx context.Context, category domain.Category, content string) (domain.Compliance, error)
}

// DocumentRepository persists and reads document records.
type DocumentRepository interface {
	Create(ctx context.Context, rec *domain.DocumentRecord) error
	GetByID(ctx context.Context, id string) (*domain.DocumentRecord, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveResult(ctx context.Context, id string, result domain.ProcessingResult) error
}

// ObjectStorage stores raw source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes document-received events.
type MessageQueue interface {
	PublishDocumentReceived(ctx context.Context, documentID string) error
	SubscribeDocumentReceived(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor extracts plain text from a stored document.
type TextExtractor interface {
	Extract(ctx context.Context, rec *domain.DocumentRecord) (string, error)
}
