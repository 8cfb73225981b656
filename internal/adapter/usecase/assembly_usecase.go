package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sentivora/mlr-automation/internal/archive"
	"github.com/sentivora/mlr-automation/internal/core/domain"
	"github.com/sentivora/mlr-automation/internal/core/port"
)

// AssemblyUseCase turns uploaded creative archives into layout-plan decks.
// Concurrent uploads are admitted up to a fixed window; beyond that,
// callers queue on the semaphore until a slot frees or their context ends.
type AssemblyUseCase struct {
	runs    port.RunRepository
	writer  port.DeckWriter
	storage port.BlobStorage
	probe   DimensionProber
	logger  *slog.Logger

	sem chan struct{}
}

// NewAssemblyUseCase wires the pipeline. maxConcurrent bounds the number
// of uploads processed at once; values below 1 are coerced to 1.
func NewAssemblyUseCase(runs port.RunRepository, writer port.DeckWriter, storage port.BlobStorage, probe DimensionProber, maxConcurrent int, logger *slog.Logger) *AssemblyUseCase {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &AssemblyUseCase{
		runs:    runs,
		writer:  writer,
		storage: storage,
		probe:   probe,
		logger:  logger,
		sem:     make(chan struct{}, maxConcurrent),
	}
}

// AssembleDeck classifies the folder map and runs the sequencer plus the
// repair pass, returning the finished plan without writing it anywhere.
func (u *AssemblyUseCase) AssembleDeck(ctx context.Context, folders port.FolderMap, cfg port.AssemblyConfig) (*domain.Deck, error) {
	group, err := BuildFolderGroup(ctx, folders, u.probe, u.logger)
	if err != nil {
		return nil, fmt.Errorf("classify folders: %w", err)
	}
	if group.Empty() {
		u.logger.Warn("no readable images survived classification; deck will hold only the blank FULL ISI slide")
	}
	name := cfg.OutputBaseName
	if name == "" {
		name = fallbackOutputName(time.Now())
	}
	deck, err := BuildDeck(group, cfg, name+".pptx", u.logger)
	if err != nil {
		return nil, fmt.Errorf("build deck: %w", err)
	}
	return deck, nil
}

// ProcessUpload runs the full pipeline for an archive or single image
// already saved to disk: extract, assemble, write the plan, store the
// result and record the run. Either everything succeeds or nothing is
// published.
func (u *AssemblyUseCase) ProcessUpload(ctx context.Context, uploadPath, originalName string, cfg port.AssemblyConfig) (*port.AssembleResult, error) {
	select {
	case u.sem <- struct{}{}:
		defer func() { <-u.sem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	folders, err := archive.Extract(uploadPath)
	if err != nil {
		return nil, fmt.Errorf("extract upload: %w", err)
	}

	if cfg.OutputBaseName == "" {
		cfg.OutputBaseName = outputBase(originalName)
	}
	deck, err := u.AssembleDeck(ctx, folders, cfg)
	if err != nil {
		return nil, err
	}

	videoFound := false
	for folder := range folders {
		if strings.Contains(strings.ToLower(folder), "video") {
			videoFound = true
			break
		}
	}

	written, err := u.writer.Write(ctx, deck)
	if err != nil {
		return nil, fmt.Errorf("write deck: %w", err)
	}
	if err = u.storage.Save(ctx, written.Name, written.Data, written.ContentType); err != nil {
		return nil, fmt.Errorf("store deck: %w", err)
	}

	run := domain.Run{
		ID:               uuid.NewString(),
		SourceFile:       originalName,
		OutputName:       written.Name,
		SlideCount:       written.SlideCount,
		FolderCount:      len(folders),
		VideoFolderFound: videoFound,
		CreatedAt:        time.Now().UTC(),
	}
	if err = u.runs.InsertRun(ctx, run); err != nil {
		return nil, fmt.Errorf("record run: %w", err)
	}

	u.logger.Info("upload processed",
		slog.String("run_id", run.ID),
		slog.String("output", run.OutputName),
		slog.Int("slides", run.SlideCount),
		slog.Int("folders", run.FolderCount))

	return &port.AssembleResult{
		RunID:            run.ID,
		OutputName:       run.OutputName,
		SlideCount:       run.SlideCount,
		FolderCount:      run.FolderCount,
		VideoFolderFound: run.VideoFolderFound,
	}, nil
}

// ListRuns returns recent runs, newest first.
func (u *AssemblyUseCase) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return u.runs.ListRuns(ctx, limit)
}

// outputBase strips the extension from the uploaded filename so the deck
// inherits its name.
func outputBase(originalName string) string {
	base := filepath.Base(originalName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		return fallbackOutputName(time.Now())
	}
	return base
}

// fallbackOutputName mirrors the date-based naming used when no original
// filename is available, e.g. "30-August-2026-042".
func fallbackOutputName(now time.Time) string {
	return fmt.Sprintf("%s-%03d", now.Format("02-January-2006"), now.Second())
}
