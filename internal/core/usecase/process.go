package usecase

import (
	"context"
	"fmt"

	"github.com/estateops/triage/internal/core/domain"
	"github.com/estateops/triage/internal/core/ports"
)

// ProcessUseCase is the worker-side flow: load a stored document, extract
// its text, run the triage pipeline and persist the outcome on the record.
type ProcessUseCase struct {
	repo      ports.DocumentRepository
	extractor ports.TextExtractor
	triager   ports.DocumentTriager
}

func NewProcessUseCase(
	repo ports.DocumentRepository,
	extractor ports.TextExtractor,
	triager ports.DocumentTriager,
) *ProcessUseCase {
	return &ProcessUseCase{
		repo:      repo,
		extractor: extractor,
		triager:   triager,
	}
}

func (uc *ProcessUseCase) ProcessByID(ctx context.Context, documentID string) error {
	if err := uc.repo.UpdateStatus(ctx, documentID, domain.StatusTriaging, ""); err != nil {
		return fmt.Errorf("set status=triaging: %w", err)
	}

	result, err := uc.runPipeline(ctx, documentID)
	if err != nil {
		if failErr := uc.markFailed(ctx, documentID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.SaveResult(ctx, documentID, result); err != nil {
		if failErr := uc.markFailed(ctx, documentID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.UpdateStatus(ctx, documentID, domain.StatusTriaged, ""); err != nil {
		return fmt.Errorf("set status=triaged: %w", err)
	}
	return nil
}

func (uc *ProcessUseCase) runPipeline(ctx context.Context, documentID string) (domain.ProcessingResult, error) {
	rec, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return domain.ProcessingResult{}, fmt.Errorf("fetch document by id: %w", err)
	}

	text, err := uc.extractor.Extract(ctx, rec)
	if err != nil {
		return domain.ProcessingResult{}, fmt.Errorf("extract text: %w", err)
	}

	result := uc.triager.Process(ctx, domain.Document{
		ID:       rec.ID,
		Content:  text,
		Metadata: rec.Metadata,
	})
	return result, nil
}

func (uc *ProcessUseCase) markFailed(ctx context.Context, documentID string, processErr error) error {
	if processErr == nil {
		return nil
	}
	return uc.repo.UpdateStatus(ctx, documentID, domain.StatusFailed, processErr.Error())
}
