package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/estateops/triage/internal/core/domain"
)

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *DocumentRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026083001)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	storage_path TEXT NOT NULL,
	metadata JSONB NOT NULL DEFAULT '{}'::jsonb,
	category TEXT,
	confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
	compliant BOOLEAN NOT NULL DEFAULT FALSE,
	violations JSONB NOT NULL DEFAULT '[]'::jsonb,
	triage_status TEXT,
	status TEXT NOT NULL,
	error_message TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status);
CREATE INDEX IF NOT EXISTS idx_documents_category ON documents(category);
CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at DESC);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Create(ctx context.Context, rec *domain.DocumentRecord) error {
	metadata := rec.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO documents (
	id, filename, mime_type, storage_path, metadata, violations, status, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,'[]'::jsonb,$6,$7,$8)
`,
		rec.ID, rec.Filename, rec.MimeType, rec.StoragePath, metadataJSON,
		string(rec.Status), rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.DocumentRecord, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, filename, mime_type, storage_path, metadata, category, confidence, compliant, violations, triage_status, status, error_message, created_at, updated_at
FROM documents
WHERE id = $1
`, id)

	var (
		rec           domain.DocumentRecord
		metadataRaw   []byte
		violationsRaw []byte
		category      sql.NullString
		triageStatus  sql.NullString
		errMessage    sql.NullString
		status        string
	)

	err := row.Scan(
		&rec.ID, &rec.Filename, &rec.MimeType, &rec.StoragePath, &metadataRaw,
		&category, &rec.Confidence, &rec.Compliant, &violationsRaw, &triageStatus,
		&status, &errMessage, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document", fmt.Errorf("id %s", id))
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}

	if err := json.Unmarshal(metadataRaw, &rec.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	if err := json.Unmarshal(violationsRaw, &rec.Violations); err != nil {
		return nil, fmt.Errorf("unmarshal violations: %w", err)
	}
	rec.Category = domain.Category(category.String)
	rec.TriageStatus = domain.ProcessingStatus(triageStatus.String)
	rec.Status = domain.DocumentStatus(status)
	rec.Error = errMessage.String
	return &rec, nil
}

func (r *DocumentRepository) UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE documents
SET status = $2, error_message = $3, updated_at = $4
WHERE id = $1
`, id, string(status), errMessage, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrDocumentNotFound, "update status", fmt.Errorf("id %s", id))
	}
	return nil
}

func (r *DocumentRepository) SaveResult(ctx context.Context, id string, result domain.ProcessingResult) error {
	var (
		category   string
		confidence float64
		compliant  bool
		violations = []string{}
	)
	if result.Classification != nil {
		category = string(result.Classification.Category)
		confidence = result.Classification.Confidence
	}
	if result.Compliance != nil {
		compliant = result.Compliance.Compliant
		violations = result.Compliance.Violations
	}

	violationsJSON, err := json.Marshal(violations)
	if err != nil {
		return fmt.Errorf("marshal violations: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE documents
SET category = $2, confidence = $3, compliant = $4, violations = $5, triage_status = $6, updated_at = $7
WHERE id = $1
`, id, category, confidence, compliant, violationsJSON, string(result.Status), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save triage result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("result rows affected: %w", err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrDocumentNotFound, "save result", fmt.Errorf("id %s", id))
	}
	return nil
}
