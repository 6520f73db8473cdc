package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/player"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"github.com/riskibarqy/woso-api/internal/domain/season"
	"github.com/riskibarqy/woso-api/internal/platform/id"
	"github.com/riskibarqy/woso-api/internal/platform/logging"
	"github.com/riskibarqy/woso-api/internal/platform/tabular"
	"go.opentelemetry.io/otel/attribute"
)

// ImporterService loads CSV exports into the store. Each row is its own write; a failing
// row is recorded in the summary and never aborts the run.
type ImporterService struct {
	leagueRepo         league.Repository
	seasonRepo         season.Repository
	clubRepo           club.Repository
	playerRepo         player.Repository
	clubStatRepo       clubstats.Repository
	playerStatRepo     playerstats.Repository
	goalkeeperStatRepo goalkeeperstats.Repository
	ids                id.Generator
	logger             *logging.Logger
	now                func() time.Time
}

func NewImporterService(
	leagueRepo league.Repository,
	seasonRepo season.Repository,
	clubRepo club.Repository,
	playerRepo player.Repository,
	clubStatRepo clubstats.Repository,
	playerStatRepo playerstats.Repository,
	goalkeeperStatRepo goalkeeperstats.Repository,
	ids id.Generator,
	logger *logging.Logger,
) *ImporterService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ImporterService{
		leagueRepo:         leagueRepo,
		seasonRepo:         seasonRepo,
		clubRepo:           clubRepo,
		playerRepo:         playerRepo,
		clubStatRepo:       clubStatRepo,
		playerStatRepo:     playerStatRepo,
		goalkeeperStatRepo: goalkeeperStatRepo,
		ids:                ids,
		logger:             logger.Named("importer"),
		now:                time.Now,
	}
}

// importScope is the resolved form of ImportScope.
type importScope struct {
	season season.Season
	league league.League
	club   club.Club
}

// rowOutcome is what a row handler reports back to the run loop.
type rowOutcome int

const (
	rowCreated rowOutcome = iota + 1
	rowUpdated
	rowSkipped
)

type rowHandler func(ctx context.Context, r *rowReader, scope importScope) (rowOutcome, *RowDiagnostic)

func (s *ImporterService) ImportClubs(ctx context.Context, src tabular.Source) (ImportSummary, error) {
	return s.Run(ctx, ImportRequest{Kind: ImportClubs, Source: src})
}

func (s *ImporterService) ImportPlayers(ctx context.Context, src tabular.Source) (ImportSummary, error) {
	return s.Run(ctx, ImportRequest{Kind: ImportPlayers, Source: src})
}

func (s *ImporterService) ImportClubSeasonStats(ctx context.Context, src tabular.Source, seasonID, leagueID int64) (ImportSummary, error) {
	return s.Run(ctx, ImportRequest{Kind: ImportClubSeasonStats, Source: src, Scope: ImportScope{SeasonID: seasonID, LeagueID: leagueID}})
}

func (s *ImporterService) ImportClubStats(ctx context.Context, src tabular.Source, seasonID int64, clubFbrefID string) (ImportSummary, error) {
	return s.Run(ctx, ImportRequest{Kind: ImportClubStats, Source: src, Scope: ImportScope{SeasonID: seasonID, ClubFbrefID: clubFbrefID}})
}

func (s *ImporterService) ImportPlayerStats(ctx context.Context, src tabular.Source, seasonID, leagueID int64) (ImportSummary, error) {
	return s.Run(ctx, ImportRequest{Kind: ImportPlayerStats, Source: src, Scope: ImportScope{SeasonID: seasonID, LeagueID: leagueID}})
}

func (s *ImporterService) ImportGoalkeeperStats(ctx context.Context, src tabular.Source, seasonID, leagueID int64) (ImportSummary, error) {
	return s.Run(ctx, ImportRequest{Kind: ImportGoalkeeperStats, Source: src, Scope: ImportScope{SeasonID: seasonID, LeagueID: leagueID}})
}

// Run executes one import. Scope and column checks fail fast before any row is touched;
// on context cancellation the summary so far is returned along with the context error.
func (s *ImporterService) Run(ctx context.Context, req ImportRequest) (ImportSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImporterService.Run", attribute.String("import.kind", string(req.Kind)))
	defer span.End()

	if req.Source == nil {
		return ImportSummary{}, fmt.Errorf("%w: import source is required", ErrInvalidInput)
	}
	handler, err := s.handlerFor(req.Kind)
	if err != nil {
		return ImportSummary{}, err
	}

	runID, err := s.ids.NewID()
	if err != nil {
		return ImportSummary{}, fmt.Errorf("generate import run id: %w", err)
	}
	summary := ImportSummary{
		RunID:       runID,
		Kind:        req.Kind,
		Source:      req.Source.Name(),
		Diagnostics: []RowDiagnostic{},
		StartedAt:   s.now().UTC(),
	}
	span.SetAttributes(
		attribute.String("import.kind", string(req.Kind)),
		attribute.String("import.run_id", runID),
		attribute.String("import.source", summary.Source),
	)
	logger := s.logger.With("run_id", runID, "kind", req.Kind, "source", summary.Source)

	scope, err := s.resolveScope(ctx, req.Kind, req.Scope)
	if err != nil {
		logger.WarnContext(ctx, "import scope check failed", "error", err)
		return ImportSummary{}, err
	}
	if missing := tabular.MissingColumns(req.Source.Columns(), requiredColumns[req.Kind]); len(missing) > 0 {
		err := schemaMismatch(req.Kind, summary.Source, missing)
		logger.WarnContext(ctx, "import column check failed", "missing", strings.Join(missing, ","))
		return ImportSummary{}, err
	}

	total := req.Source.Len()
	logger.InfoContext(ctx, "import started", "rows", total)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			summary.FinishedAt = s.now().UTC()
			logger.WarnContext(ctx, "import interrupted", "processed", summary.Rows, "error", err)
			return summary, err
		}

		reader := newRowReader(req.Source, i)
		outcome, diag := handler(ctx, reader, scope)
		summary.Rows++
		switch outcome {
		case rowCreated:
			summary.Created++
		case rowUpdated:
			summary.Updated++
		default:
			summary.Skipped++
		}
		for _, note := range reader.notes {
			summary.note(note)
		}
		if diag != nil {
			diag.Row = i + 1
			if diag.Key == "" {
				diag.Key = reader.key
			}
			summary.note(*diag)
			logger.DebugContext(ctx, "import row diagnostic", "row", diag.Row, "diagnostic", diag.Kind, "key", diag.Key, "message", diag.Message)
		}
		if req.Observer != nil {
			req.Observer(i+1, total)
		}
	}

	if req.Kind == ImportClubStats && summary.Created+summary.Updated == 0 && !summary.mentions(scope.club.FbrefID) {
		summary.note(RowDiagnostic{
			Kind:    DiagnosticReferenceNotFound,
			Key:     scope.club.FbrefID,
			Message: fmt.Sprintf("no row with team_id %s in %s", scope.club.FbrefID, summary.Source),
		})
	}

	summary.FinishedAt = s.now().UTC()
	span.SetAttributes(
		attribute.Int("import.created", summary.Created),
		attribute.Int("import.updated", summary.Updated),
		attribute.Int("import.skipped", summary.Skipped),
	)
	logger.InfoContext(ctx, "import finished",
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
		"diagnostics", len(summary.Diagnostics),
		"duration", summary.Duration(),
	)
	return summary, nil
}

func (s *ImporterService) handlerFor(kind ImportKind) (rowHandler, error) {
	switch kind {
	case ImportClubs:
		return s.importClubRow, nil
	case ImportPlayers:
		return s.importPlayerRow, nil
	case ImportClubSeasonStats:
		return s.importClubSeasonStatRow, nil
	case ImportClubStats:
		return s.singleClubHandler(), nil
	case ImportPlayerStats:
		return s.importPlayerStatRow, nil
	case ImportGoalkeeperStats:
		return s.importGoalkeeperStatRow, nil
	default:
		return nil, fmt.Errorf("%w: unknown import kind %q", ErrInvalidInput, kind)
	}
}

func (s *ImporterService) resolveScope(ctx context.Context, kind ImportKind, in ImportScope) (importScope, error) {
	var out importScope
	switch kind {
	case ImportClubs, ImportPlayers:
		return out, nil
	}

	if in.SeasonID <= 0 {
		return out, fmt.Errorf("%w: season id is required for %s imports", ErrInvalidInput, kind)
	}
	item, exists, err := s.seasonRepo.GetByID(ctx, in.SeasonID)
	if err != nil {
		return out, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return out, scopeNotFound("season=%d", in.SeasonID)
	}
	out.season = item

	leagueID := in.LeagueID
	if kind == ImportClubStats {
		leagueID = item.LeagueID
		fbrefID := strings.TrimSpace(in.ClubFbrefID)
		if fbrefID == "" {
			return out, fmt.Errorf("%w: club fbref id is required for %s imports", ErrInvalidInput, kind)
		}
		found, exists, err := s.clubRepo.GetByFbrefID(ctx, fbrefID)
		if err != nil {
			return out, fmt.Errorf("get club: %w", err)
		}
		if !exists {
			return out, scopeNotFound("club fbref_id=%s", fbrefID)
		}
		out.club = found
	}

	if leagueID <= 0 {
		return out, fmt.Errorf("%w: league id is required for %s imports", ErrInvalidInput, kind)
	}
	found, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return out, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return out, scopeNotFound("league=%d", leagueID)
	}
	if item.LeagueID != found.ID {
		return out, scopeNotFound("season=%d does not belong to league=%d", item.ID, found.ID)
	}
	out.league = found

	return out, nil
}

func (s *ImporterService) importClubRow(ctx context.Context, r *rowReader, _ importScope) (rowOutcome, *RowDiagnostic) {
	fbrefID, ok := r.text("team_id")
	if !ok {
		return rowSkipped, invalidRow("team_id is empty")
	}
	r.key = fbrefID
	name, ok := r.text("team_name")
	if !ok {
		return rowSkipped, invalidRow("team_name is empty")
	}

	item := club.Club{Name: name, FbrefID: fbrefID}
	if err := item.Validate(); err != nil {
		return rowSkipped, invalidRow(err.Error())
	}
	_, created, err := s.clubRepo.Upsert(ctx, item)
	return upsertOutcome(created, err, club.ErrConflict)
}

func (s *ImporterService) importPlayerRow(ctx context.Context, r *rowReader, _ importScope) (rowOutcome, *RowDiagnostic) {
	fbrefID, ok := r.text("player_id")
	if !ok {
		return rowSkipped, invalidRow("player_id is empty")
	}
	r.key = fbrefID
	name, ok := r.text("player_name")
	if !ok {
		return rowSkipped, invalidRow("player_name is empty")
	}

	item := player.Player{
		FullName:    name,
		FbrefID:     fbrefID,
		Nationality: r.optionalText("nationality"),
		Age:         r.age("age"),
	}
	if err := item.Validate(); err != nil {
		return rowSkipped, invalidRow(err.Error())
	}
	_, created, err := s.playerRepo.Upsert(ctx, item)
	return upsertOutcome(created, err, player.ErrConflict)
}

func (s *ImporterService) importClubSeasonStatRow(ctx context.Context, r *rowReader, scope importScope) (rowOutcome, *RowDiagnostic) {
	fbrefID, ok := r.text("team_id")
	if !ok {
		return rowSkipped, invalidRow("team_id is empty")
	}
	r.key = fbrefID

	found, exists, err := s.clubRepo.GetByFbrefID(ctx, fbrefID)
	if err != nil {
		return rowSkipped, rowFailed(err)
	}
	if !exists {
		return rowSkipped, referenceNotFound("club %s does not exist", fbrefID)
	}
	return s.writeClubSeasonStat(ctx, r, scope, found)
}

// singleClubHandler imports the first row whose team_id is the scoped club; other clubs' rows
// are skipped quietly and repeated rows for the scoped club are reported.
func (s *ImporterService) singleClubHandler() rowHandler {
	imported := false
	return func(ctx context.Context, r *rowReader, scope importScope) (rowOutcome, *RowDiagnostic) {
		fbrefID, _ := r.text("team_id")
		if fbrefID != scope.club.FbrefID {
			return rowSkipped, nil
		}
		r.key = fbrefID
		if imported {
			return rowSkipped, &RowDiagnostic{
				Kind:    DiagnosticUniquenessConflict,
				Message: fmt.Sprintf("club %s appears more than once, only the first row is imported", fbrefID),
			}
		}
		imported = true
		return s.writeClubSeasonStat(ctx, r, scope, scope.club)
	}
}

func (s *ImporterService) writeClubSeasonStat(ctx context.Context, r *rowReader, scope importScope, owner club.Club) (rowOutcome, *RowDiagnostic) {
	item := clubstats.SeasonStat{
		ClubID:         owner.ID,
		SeasonID:       scope.season.ID,
		LeagueID:       scope.league.ID,
		PointsWon:      *r.zeroInt("points"),
		LeaguePosition: *r.zeroInt("rank"),
	}
	for _, col := range clubStatIntColumns {
		*col.field(&item) = r.nullableInt(col.column)
	}
	for _, col := range clubStatFloatColumns {
		*col.field(&item) = r.nullableFloat(col.column)
	}

	if err := item.Validate(); err != nil {
		return rowSkipped, invalidRow(err.Error())
	}
	_, created, err := s.clubStatRepo.Upsert(ctx, item)
	return upsertOutcome(created, err, clubstats.ErrConflict)
}

func (s *ImporterService) importPlayerStatRow(ctx context.Context, r *rowReader, scope importScope) (rowOutcome, *RowDiagnostic) {
	owner, clubID, diag, ok := s.statRowReferences(ctx, r)
	if !ok {
		return rowSkipped, diag
	}
	position := r.optionalText("position")
	if position != nil && playerstats.IsGoalkeeper(*position) {
		return rowSkipped, positionFiltered("goalkeeper rows belong to the goalkeeper import")
	}

	item := playerstats.SeasonStat{
		PlayerID: owner.ID,
		SeasonID: scope.season.ID,
		ClubID:   clubID,
		LeagueID: scope.league.ID,
		Position: position,
		Age:      r.age("age"),
	}
	for _, col := range playerStatIntColumns {
		*col.field(&item) = r.zeroInt(col.column)
	}
	for _, col := range playerStatFloatColumns {
		*col.field(&item) = r.zeroFloat(col.column)
	}
	item.XGPerformance = r.performance("goals", "xg")
	item.NPXGPerformance = r.performance("goals", "npxg")

	if err := item.Validate(); err != nil {
		return rowSkipped, invalidRow(err.Error())
	}
	_, created, err := s.playerStatRepo.Upsert(ctx, item)
	return upsertOutcome(created, err, playerstats.ErrConflict)
}

func (s *ImporterService) importGoalkeeperStatRow(ctx context.Context, r *rowReader, scope importScope) (rowOutcome, *RowDiagnostic) {
	owner, clubID, diag, ok := s.statRowReferences(ctx, r)
	if !ok {
		return rowSkipped, diag
	}
	position, _ := r.text("position")
	if !playerstats.IsGoalkeeper(position) {
		return rowSkipped, positionFiltered(fmt.Sprintf("position %q is not a goalkeeper", position))
	}

	item := goalkeeperstats.SeasonStat{
		PlayerID: owner.ID,
		SeasonID: scope.season.ID,
		ClubID:   clubID,
		LeagueID: scope.league.ID,
		Position: goalkeeperstats.Position,
		Age:      r.age("age"),
	}
	for _, col := range goalkeeperStatIntColumns {
		*col.field(&item) = r.zeroInt(col.column)
	}
	for _, col := range goalkeeperStatFloatColumns {
		*col.field(&item) = r.zeroFloat(col.column)
	}

	if err := item.Validate(); err != nil {
		return rowSkipped, invalidRow(err.Error())
	}
	_, created, err := s.goalkeeperStatRepo.Upsert(ctx, item)
	return upsertOutcome(created, err, goalkeeperstats.ErrConflict)
}

// statRowReferences resolves the player and club a stat row points at.
func (s *ImporterService) statRowReferences(ctx context.Context, r *rowReader) (player.Player, int64, *RowDiagnostic, bool) {
	playerFbref, ok := r.text("player_id")
	if !ok {
		return player.Player{}, 0, invalidRow("player_id is empty"), false
	}
	r.key = playerFbref
	clubFbref, ok := r.text("team_id")
	if !ok {
		return player.Player{}, 0, invalidRow("team_id is empty"), false
	}

	owner, exists, err := s.playerRepo.GetByFbrefID(ctx, playerFbref)
	if err != nil {
		return player.Player{}, 0, rowFailed(err), false
	}
	if !exists {
		return player.Player{}, 0, referenceNotFound("player %s does not exist", playerFbref), false
	}
	found, exists, err := s.clubRepo.GetByFbrefID(ctx, clubFbref)
	if err != nil {
		return player.Player{}, 0, rowFailed(err), false
	}
	if !exists {
		return player.Player{}, 0, referenceNotFound("club %s does not exist", clubFbref), false
	}
	return owner, found.ID, nil, true
}

func upsertOutcome(created bool, err error, conflict error) (rowOutcome, *RowDiagnostic) {
	switch {
	case err == nil && created:
		return rowCreated, nil
	case err == nil:
		return rowUpdated, nil
	case errors.Is(err, conflict):
		return rowSkipped, &RowDiagnostic{Kind: DiagnosticUniquenessConflict, Message: err.Error()}
	default:
		return rowSkipped, rowFailed(err)
	}
}

func invalidRow(message string) *RowDiagnostic {
	return &RowDiagnostic{Kind: DiagnosticInvalidRow, Message: message}
}

func referenceNotFound(format string, args ...any) *RowDiagnostic {
	return &RowDiagnostic{Kind: DiagnosticReferenceNotFound, Message: fmt.Sprintf(format, args...)}
}

func positionFiltered(message string) *RowDiagnostic {
	return &RowDiagnostic{Kind: DiagnosticPositionFiltered, Message: message}
}

func rowFailed(err error) *RowDiagnostic {
	return &RowDiagnostic{Kind: DiagnosticRowFailed, Message: err.Error()}
}
