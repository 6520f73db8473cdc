package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/woso-api/internal/platform/logging"
	"github.com/riskibarqy/woso-api/internal/usecase"
)

const defaultMaxUploadBytes = 20 << 20

type Handler struct {
	countryService     *usecase.CountryService
	leagueService      *usecase.LeagueService
	seasonService      *usecase.SeasonService
	clubService        *usecase.ClubService
	playerService      *usecase.PlayerService
	statsService       *usecase.StatsService
	pageService        *usecase.PageService
	leaderboardService *usecase.LeaderboardService
	importerService    *usecase.ImporterService
	maxUploadBytes     int64
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	countryService *usecase.CountryService,
	leagueService *usecase.LeagueService,
	seasonService *usecase.SeasonService,
	clubService *usecase.ClubService,
	playerService *usecase.PlayerService,
	statsService *usecase.StatsService,
	pageService *usecase.PageService,
	leaderboardService *usecase.LeaderboardService,
	importerService *usecase.ImporterService,
	maxUploadBytes int64,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	return &Handler{
		countryService:     countryService,
		leagueService:      leagueService,
		seasonService:      seasonService,
		clubService:        clubService,
		playerService:      playerService,
		statsService:       statsService,
		pageService:        pageService,
		leaderboardService: leaderboardService,
		importerService:    importerService,
		maxUploadBytes:     maxUploadBytes,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON reads a strict JSON body and validates it.
func (h *Handler) decodeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// queryID reads an optional positive id; blank means unset.
func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func queryBool(r *http.Request, name string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, name)
	}
	return &v, nil
}

func queryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

type pageParams struct {
	Limit  int
	Offset int
}

func queryPage(r *http.Request) (pageParams, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return pageParams{}, err
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		return pageParams{}, err
	}
	return pageParams{Limit: limit, Offset: offset}, nil
}

// scopeParams are the league/season/club query filters shared by stat lists.
type scopeParams struct {
	LeagueID int64
	SeasonID int64
	ClubID   int64
	PlayerID int64
}

func queryScope(r *http.Request) (scopeParams, error) {
	var out scopeParams
	var err error
	if out.LeagueID, err = queryID(r, "league_id"); err != nil {
		return scopeParams{}, err
	}
	if out.SeasonID, err = queryID(r, "season_id"); err != nil {
		return scopeParams{}, err
	}
	if out.ClubID, err = queryID(r, "club_id"); err != nil {
		return scopeParams{}, err
	}
	if out.PlayerID, err = queryID(r, "player_id"); err != nil {
		return scopeParams{}, err
	}
	return out, nil
}
