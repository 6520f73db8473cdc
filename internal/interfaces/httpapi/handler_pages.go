package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/woso-api/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) LeaguePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeaguePage")
	defer span.End()

	code := strings.TrimSpace(r.PathValue("code"))
	page, err := h.pageService.LeaguePage(ctx, code)
	if err != nil {
		h.logger.WarnContext(ctx, "build league page failed", "code", code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaguePageToDTO(page))
}

func (h *Handler) ClubPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClubPage")
	defer span.End()

	token := strings.TrimSpace(r.PathValue("token"))
	page, err := h.pageService.ClubPage(ctx, token)
	if err != nil {
		h.logger.WarnContext(ctx, "build club page failed", "token", token, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubPageToDTO(page))
}

func (h *Handler) PlayerPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerPage")
	defer span.End()

	token := strings.TrimSpace(r.PathValue("token"))
	page, err := h.pageService.PlayerPage(ctx, token)
	if err != nil {
		h.logger.WarnContext(ctx, "build player page failed", "token", token, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerPageToDTO(page))
}

// Leaderboard ranks one stat kind by a named category or an explicit field/direction pair.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Leaderboard", attribute.String("leaderboard.kind", r.PathValue("kind")))
	defer span.End()

	query, err := leaderboardQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.leaderboardService.Rank(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "rank leaderboard failed", "kind", query.Kind, "field", query.Field, "category", query.Category, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(result))
}

func (h *Handler) LeaderboardFields(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeaderboardFields")
	defer span.End()

	fields, err := h.leaderboardService.Fields(strings.TrimSpace(r.PathValue("kind")))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fields)
}

func leaderboardQuery(r *http.Request) (usecase.LeaderboardQuery, error) {
	scope, err := queryScope(r)
	if err != nil {
		return usecase.LeaderboardQuery{}, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return usecase.LeaderboardQuery{}, err
	}
	u23, err := queryBool(r, "u23")
	if err != nil {
		return usecase.LeaderboardQuery{}, err
	}
	excludeNonPositive, err := queryBool(r, "exclude_non_positive")
	if err != nil {
		return usecase.LeaderboardQuery{}, err
	}

	return usecase.LeaderboardQuery{
		Kind:               strings.TrimSpace(r.PathValue("kind")),
		Category:           queryString(r, "category"),
		Field:              queryString(r, "field"),
		Direction:          queryString(r, "direction"),
		Limit:              limit,
		LeagueID:           scope.LeagueID,
		SeasonID:           scope.SeasonID,
		ClubID:             scope.ClubID,
		U23:                u23 != nil && *u23,
		ExcludeNonPositive: excludeNonPositive,
	}, nil
}
