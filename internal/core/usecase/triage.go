package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/estateops/triage/internal/core/domain"
	"github.com/estateops/triage/internal/core/ports"
	"github.com/estateops/triage/internal/observability/metrics"
)

// TriageUseCase routes a document through classification and compliance
// checking and assembles the aggregate result. It holds no per-call state;
// the only shared mutable state is the stage recorders, which are safe for
// concurrent callers.
type TriageUseCase struct {
	classifier ports.DocumentClassifier
	compliance ports.ComplianceValidator

	pipelineStats *metrics.StageRecorder
	classifyStats *metrics.StageRecorder
	validateStats *metrics.StageRecorder
}

func NewTriageUseCase(classifier ports.DocumentClassifier, compliance ports.ComplianceValidator) *TriageUseCase {
	return &TriageUseCase{
		classifier:    classifier,
		compliance:    compliance,
		pipelineStats: metrics.NewStageRecorder(),
		classifyStats: metrics.NewStageRecorder(),
		validateStats: metrics.NewStageRecorder(),
	}
}

// Process runs the two stages in sequence. It never returns an error or
// lets a panic escape: a classification failure yields status=failure with
// no sub-results, a compliance failure after successful classification
// yields status=partial_failure with the classification kept.
func (uc *TriageUseCase) Process(ctx context.Context, doc domain.Document) domain.ProcessingResult {
	start := time.Now()
	result := domain.ProcessingResult{
		DocumentID: doc.ID,
		Status:     domain.StatusSuccess,
	}

	classification, err := uc.classifyStage(ctx, doc.Content)
	if err != nil {
		slog.Error("classification_stage_failed", "document_id", doc.ID, "error", err)
		result.Status = domain.StatusFailure
		result.Errors = append(result.Errors, fmt.Sprintf("classification: %v", err))
		return uc.finish(result, start)
	}
	result.Classification = &classification

	compliance, err := uc.validateStage(ctx, classification.Category, doc.Content)
	if err != nil {
		slog.Error("compliance_stage_failed",
			"document_id", doc.ID, "category", classification.Category, "error", err)
		result.Status = domain.StatusPartialFailure
		result.Errors = append(result.Errors, fmt.Sprintf("compliance: %v", err))
		return uc.finish(result, start)
	}
	result.Compliance = &compliance

	slog.Info("document_triaged",
		"document_id", doc.ID,
		"category", classification.Category,
		"confidence", classification.Confidence,
		"compliant", compliance.Compliant,
	)
	return uc.finish(result, start)
}

func (uc *TriageUseCase) finish(result domain.ProcessingResult, start time.Time) domain.ProcessingResult {
	now := time.Now()
	result.ProcessedAt = now.UTC()
	result.ProcessingTimeMS = float64(now.Sub(start).Microseconds()) / 1000.0
	uc.pipelineStats.Record(metrics.StageOutcome{
		Success:  result.Status == domain.StatusSuccess,
		Duration: now.Sub(start),
		At:       now,
	})
	return result
}

func (uc *TriageUseCase) classifyStage(ctx context.Context, content string) (classification domain.Classification, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classifier panic: %v", r)
		}
		uc.classifyStats.Record(metrics.StageOutcome{
			Success:  err == nil,
			Duration: time.Since(start),
			At:       time.Now(),
		})
	}()

	classification, err = uc.classifier.Classify(ctx, content)
	return classification, err
}

func (uc *TriageUseCase) validateStage(ctx context.Context, category domain.Category, content string) (compliance domain.Compliance, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("compliance panic: %v", r)
		}
		uc.validateStats.Record(metrics.StageOutcome{
			Success:  err == nil,
			Duration: time.Since(start),
			At:       time.Now(),
		})
	}()

	compliance, err = uc.compliance.Validate(ctx, category, content)
	return compliance, err
}

// Stats returns snapshots of the pipeline and per-stage recorders.
func (uc *TriageUseCase) Stats() map[string]metrics.StageSnapshot {
	return map[string]metrics.StageSnapshot{
		"pipeline":       uc.pipelineStats.Snapshot(),
		"classification": uc.classifyStats.Snapshot(),
		"compliance":     uc.validateStats.Snapshot(),
	}
}
