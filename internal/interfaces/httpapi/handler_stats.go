package httpapi

import (
	"net/http"

	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
)

func (h *Handler) ListClubsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubsByLeague")
	defer span.End()

	leagueID, seasonID, err := leagueSeasonParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statsService.ListClubsByLeague(ctx, leagueID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league clubs failed", "league_id", leagueID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, clubToDTO))
}

func (h *Handler) ListPlayersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByLeague")
	defer span.End()

	leagueID, seasonID, err := leagueSeasonParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statsService.ListPlayersByLeague(ctx, leagueID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league players failed", "league_id", leagueID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerStatToDTO))
}

func (h *Handler) ListGoalkeepersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoalkeepersByLeague")
	defer span.End()

	leagueID, seasonID, err := leagueSeasonParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statsService.ListGoalkeepersByLeague(ctx, leagueID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league goalkeepers failed", "league_id", leagueID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, goalkeeperStatToDTO))
}

func (h *Handler) ListClubPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubPlayers")
	defer span.End()

	clubID, seasonID, err := clubSeasonParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.clubService.ListPlayers(ctx, clubID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list club players failed", "club_id", clubID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerStatToDTO))
}

func (h *Handler) ListClubGoalkeepers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubGoalkeepers")
	defer span.End()

	clubID, seasonID, err := clubSeasonParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.clubService.ListGoalkeepers(ctx, clubID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list club goalkeepers failed", "club_id", clubID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, goalkeeperStatToDTO))
}

func (h *Handler) ListClubStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubStats")
	defer span.End()

	scope, page, err := scopeAndPage(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statsService.ListClubStats(ctx, clubstats.Filter{
		LeagueID: scope.LeagueID,
		SeasonID: scope.SeasonID,
		ClubID:   scope.ClubID,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list club stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, clubStatToDTO))
}

func (h *Handler) ListPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerStats")
	defer span.End()

	scope, page, err := scopeAndPage(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statsService.ListPlayerStats(ctx, playerstats.Filter{
		LeagueID: scope.LeagueID,
		SeasonID: scope.SeasonID,
		ClubID:   scope.ClubID,
		PlayerID: scope.PlayerID,
		Position: queryString(r, "position"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list player stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerStatToDTO))
}

func (h *Handler) ListGoalkeeperStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoalkeeperStats")
	defer span.End()

	scope, page, err := scopeAndPage(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statsService.ListGoalkeeperStats(ctx, goalkeeperstats.Filter{
		LeagueID: scope.LeagueID,
		SeasonID: scope.SeasonID,
		ClubID:   scope.ClubID,
		PlayerID: scope.PlayerID,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list goalkeeper stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, goalkeeperStatToDTO))
}

func leagueSeasonParams(r *http.Request) (int64, int64, error) {
	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		return 0, 0, err
	}
	seasonID, err := queryID(r, "season_id")
	if err != nil {
		return 0, 0, err
	}
	return leagueID, seasonID, nil
}

func clubSeasonParams(r *http.Request) (int64, int64, error) {
	clubID, err := pathID(r, "clubID")
	if err != nil {
		return 0, 0, err
	}
	seasonID, err := queryID(r, "season_id")
	if err != nil {
		return 0, 0, err
	}
	return clubID, seasonID, nil
}

func scopeAndPage(r *http.Request) (scopeParams, pageParams, error) {
	scope, err := queryScope(r)
	if err != nil {
		return scopeParams{}, pageParams{}, err
	}
	page, err := queryPage(r)
	if err != nil {
		return scopeParams{}, pageParams{}, err
	}
	return scope, page, nil
}
