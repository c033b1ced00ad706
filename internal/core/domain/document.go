package domain

import "time"

// Document is the immutable triage input: caller-supplied id, plain-text
// content (may be empty) and optional metadata.
type Document struct {
	ID       string            `json:"document_id"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ProcessingStatus is the aggregate outcome of one triage call.
type ProcessingStatus string

const (
	StatusSuccess        ProcessingStatus = "success"
	StatusPartialFailure ProcessingStatus = "partial_failure"
	StatusFailure        ProcessingStatus = "failure"
)

// Classification is the output of the classification stage.
type Classification struct {
	Category        Category `json:"category"`
	CategoryCode    string   `json:"category_code"`
	CategoryName    string   `json:"category_name"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords"`
	Reasoning       string   `json:"reasoning"`
}

// Compliance is the output of the compliance stage. Compliant is true
// exactly when Violations is empty.
type Compliance struct {
	Compliant    bool     `json:"compliant"`
	Category     Category `json:"category"`
	Violations   []string `json:"violations"`
	CheckedRules int      `json:"checked_rules"`
}

// ProcessingResult is the final artifact returned to the caller. A nil
// Classification or Compliance means the corresponding stage did not
// produce a result; Status and Errors explain why.
type ProcessingResult struct {
	DocumentID       string           `json:"document_id"`
	Classification   *Classification  `json:"classification,omitempty"`
	Compliance       *Compliance      `json:"compliance,omitempty"`
	Status           ProcessingStatus `json:"status"`
	Errors           []string         `json:"errors,omitempty"`
	ProcessingTimeMS float64          `json:"processing_time_ms"`
	ProcessedAt      time.Time        `json:"processed_at"`
}

// DocumentStatus is the lifecycle of a stored document record in the
// asynchronous ingestion flow.
type DocumentStatus string

const (
	StatusUploaded DocumentStatus = "uploaded"
	StatusTriaging DocumentStatus = "triaging"
	StatusTriaged  DocumentStatus = "triaged"
	StatusFailed   DocumentStatus = "failed"
)

// DocumentRecord is the persisted view of an uploaded document together
// with its triage outcome once the worker has processed it.
type DocumentRecord struct {
	ID          string            `json:"id"`
	Filename    string            `json:"filename"`
	MimeType    string            `json:"mime_type"`
	StoragePath string            `json:"storage_path"`
	Metadata    map[string]string `json:"metadata,omitempty"`

	Category     Category         `json:"category,omitempty"`
	Confidence   float64          `json:"confidence,omitempty"`
	Compliant    bool             `json:"compliant"`
	Violations   []string         `json:"violations,omitempty"`
	TriageStatus ProcessingStatus `json:"triage_status,omitempty"`

	Status    DocumentStatus `json:"status"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
