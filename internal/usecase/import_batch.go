package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/woso-api/internal/platform/logging"
	"github.com/riskibarqy/woso-api/internal/platform/tabular"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"
)

var ErrBatchStageFailed = errors.New("batch stage failed")

const defaultBatchWorkers = 4

// BatchManifest is a YAML list of import stages. Stages run in order; imports inside a stage
// run concurrently.
//
//	workers: 4
//	stages:
//	  - name: reference
//	    imports:
//	      - {kind: clubs, file: wsl_teams.csv}
//	  - name: stats
//	    imports:
//	      - {kind: player-stats, file: wsl_players.csv, season_id: 2, league_id: 1}
type BatchManifest struct {
	Workers int          `yaml:"workers"`
	Stages  []BatchStage `yaml:"stages"`
}

type BatchStage struct {
	Name    string        `yaml:"name"`
	Imports []BatchImport `yaml:"imports"`
}

type BatchImport struct {
	Kind     string `yaml:"kind"`
	File     string `yaml:"file"`
	SeasonID int64  `yaml:"season_id"`
	LeagueID int64  `yaml:"league_id"`
	Club     string `yaml:"club"`
}

func ParseBatchManifest(data []byte) (BatchManifest, error) {
	var manifest BatchManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return BatchManifest{}, fmt.Errorf("%w: decode batch manifest: %v", ErrInvalidInput, err)
	}
	if len(manifest.Stages) == 0 {
		return BatchManifest{}, fmt.Errorf("%w: batch manifest has no stages", ErrInvalidInput)
	}
	for i, stage := range manifest.Stages {
		if strings.TrimSpace(stage.Name) == "" {
			manifest.Stages[i].Name = fmt.Sprintf("stage-%d", i+1)
		}
		if len(stage.Imports) == 0 {
			return BatchManifest{}, fmt.Errorf("%w: stage %s has no imports", ErrInvalidInput, manifest.Stages[i].Name)
		}
		for _, item := range stage.Imports {
			if _, ok := ParseImportKind(item.Kind); !ok {
				return BatchManifest{}, fmt.Errorf("%w: stage %s: unknown import kind %q", ErrInvalidInput, manifest.Stages[i].Name, item.Kind)
			}
			if strings.TrimSpace(item.File) == "" {
				return BatchManifest{}, fmt.Errorf("%w: stage %s: %s import needs a file", ErrInvalidInput, manifest.Stages[i].Name, item.Kind)
			}
		}
	}
	if manifest.Workers <= 0 {
		manifest.Workers = defaultBatchWorkers
	}
	return manifest, nil
}

// SourceOpener opens the tabular file referenced by a manifest entry.
type SourceOpener func(path string) (tabular.Source, error)

type importRunner interface {
	Run(ctx context.Context, req ImportRequest) (ImportSummary, error)
}

type BatchImportResult struct {
	Kind     ImportKind     `json:"kind"`
	File     string         `json:"file"`
	Summary  *ImportSummary `json:"summary,omitempty"`
	Error    string         `json:"error,omitempty"`
	Duration time.Duration  `json:"duration"`
}

type BatchStageResult struct {
	Name    string              `json:"name"`
	Imports []BatchImportResult `json:"imports"`
	Failed  int                 `json:"failed"`
}

type BatchResult struct {
	Stages []BatchStageResult `json:"stages"`
}

type BatchService struct {
	importer importRunner
	open     SourceOpener
	logger   *logging.Logger
}

func NewBatchService(importer importRunner, open SourceOpener, logger *logging.Logger) *BatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BatchService{importer: importer, open: open, logger: logger.Named("batch")}
}

// Run executes manifest stage by stage. Relative file paths resolve against baseDir.
// A stage with any failed import stops the run after that stage finishes.
func (s *BatchService) Run(ctx context.Context, manifest BatchManifest, baseDir string) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BatchService.Run", attribute.Int("batch.stages", len(manifest.Stages)))
	defer span.End()

	workers := manifest.Workers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return BatchResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var result BatchResult
	for _, stage := range manifest.Stages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		stageResult, err := s.runStage(ctx, pool, stage, baseDir)
		result.Stages = append(result.Stages, stageResult)
		if err != nil {
			return result, err
		}
		if stageResult.Failed > 0 {
			return result, fmt.Errorf("%w: %s had %d failed imports", ErrBatchStageFailed, stage.Name, stageResult.Failed)
		}
	}

	return result, nil
}

func (s *BatchService) runStage(ctx context.Context, pool *ants.Pool, stage BatchStage, baseDir string) (BatchStageResult, error) {
	out := BatchStageResult{Name: stage.Name, Imports: make([]BatchImportResult, len(stage.Imports))}
	s.logger.InfoContext(ctx, "batch stage started", "stage", stage.Name, "imports", len(stage.Imports))

	var (
		workers sync.WaitGroup
		mu      sync.Mutex
	)
	for idx, item := range stage.Imports {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			row := s.runImport(ctx, item, baseDir)
			mu.Lock()
			out.Imports[idx] = row
			if row.Error != "" {
				out.Failed++
			}
			mu.Unlock()
		}); err != nil {
			workers.Done()
			workers.Wait()
			return out, fmt.Errorf("submit import to worker pool: %w", err)
		}
	}
	workers.Wait()

	s.logger.InfoContext(ctx, "batch stage finished", "stage", stage.Name, "failed", out.Failed)
	return out, nil
}

func (s *BatchService) runImport(ctx context.Context, item BatchImport, baseDir string) BatchImportResult {
	start := time.Now()
	path := item.File
	if baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	kind, ok := ParseImportKind(item.Kind)
	row := BatchImportResult{Kind: kind, File: path}
	if !ok {
		row.Kind = ImportKind(item.Kind)
		row.Error = fmt.Sprintf("%v: unknown import kind %q", ErrInvalidInput, item.Kind)
		row.Duration = time.Since(start)
		s.logger.WarnContext(ctx, "batch import skipped", "file", path, "kind", item.Kind)
		return row
	}

	src, err := s.open(path)
	if err != nil {
		row.Error = err.Error()
		row.Duration = time.Since(start)
		s.logger.WarnContext(ctx, "batch import source unreadable", "file", path, "error", err)
		return row
	}

	summary, err := s.importer.Run(ctx, ImportRequest{
		Kind:   kind,
		Source: src,
		Scope:  ImportScope{SeasonID: item.SeasonID, LeagueID: item.LeagueID, ClubFbrefID: item.Club},
	})
	row.Duration = time.Since(start)
	if err != nil {
		row.Error = err.Error()
		s.logger.WarnContext(ctx, "batch import failed", "file", path, "kind", kind, "error", err)
		return row
	}
	row.Summary = &summary
	return row
}
