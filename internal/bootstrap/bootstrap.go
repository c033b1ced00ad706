package bootstrap

import (
	"context"
	"fmt"

	"github.com/estateops/triage/internal/config"
	"github.com/estateops/triage/internal/core/ports"
	"github.com/estateops/triage/internal/core/usecase"
	"github.com/estateops/triage/internal/infrastructure/classifier/keyword"
	"github.com/estateops/triage/internal/infrastructure/compliance/rules"
	"github.com/estateops/triage/internal/infrastructure/extractor/plaintext"
	"github.com/estateops/triage/internal/infrastructure/queue/nats"
	"github.com/estateops/triage/internal/infrastructure/repository/postgres"
	"github.com/estateops/triage/internal/infrastructure/storage/localfs"
)

// App wires the full service: triage core plus the async ingestion flow.
type App struct {
	Config config.Config

	Queue     ports.MessageQueue
	Repo      ports.DocumentRepository
	TriageUC  *usecase.TriageUseCase
	IngestUC  ports.DocumentIngestor
	ProcessUC ports.DocumentProcessor

	closeFn func()
}

// NewTriageCore builds only the in-process pipeline: classifier, compliance
// validator and orchestrator. Used by the CLI and by App.
func NewTriageCore(cfg config.Config) (*usecase.TriageUseCase, error) {
	catalog := keyword.DefaultCatalog()
	if cfg.CatalogPath != "" {
		loaded, err := keyword.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load keyword catalog: %w", err)
		}
		catalog = loaded
	}
	if cfg.StrongSignalFloor > 0 {
		catalog.StrongSignalFloor = cfg.StrongSignalFloor
	}

	engine, err := keyword.NewEngine(catalog)
	if err != nil {
		return nil, fmt.Errorf("build classifier: %w", err)
	}

	return usecase.NewTriageUseCase(engine, rules.NewValidator()), nil
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	triageUC, err := NewTriageCore(cfg)
	if err != nil {
		return nil, err
	}

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	queue, err := nats.New(cfg.NATSURL, cfg.NATSSubject)
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	extractor := plaintext.NewExtractor(storage)
	ingestUC := usecase.NewIngestUseCase(repo, storage, queue)
	processUC := usecase.NewProcessUseCase(repo, extractor, triageUC)

	return &App{
		Config: cfg,
		Queue:  queue,
		Repo:   repo,

		TriageUC:  triageUC,
		IngestUC:  ingestUC,
		ProcessUC: processUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
