package httpapi

import (
	"net/http"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/country"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/player"
	"github.com/riskibarqy/woso-api/internal/domain/season"
)

func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCountries")
	defer span.End()

	page, err := queryPage(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.countryService.List(ctx, country.Filter{
		Name:   queryString(r, "name"),
		Code:   queryString(r, "code"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list countries failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, countryToDTO))
}

func (h *Handler) GetCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCountry")
	defer span.End()

	id, err := pathID(r, "countryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.countryService.Get(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get country failed", "country_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, countryToDTO(item))
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	page, err := queryPage(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	countryID, err := queryID(r, "country_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.leagueService.ListLeagues(ctx, league.Filter{
		CountryID: countryID,
		Name:      queryString(r, "name"),
		Code:      queryString(r, "code"),
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, leagueToDTO))
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	id, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.GetLeague(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) ListSeasonsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonsByLeague")
	defer span.End()

	id, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.leagueService.ListSeasonsByLeague(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "list league seasons failed", "league_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, seasonToDTO))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	page, err := queryPage(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID, err := queryID(r, "league_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.seasonService.List(ctx, season.Filter{
		LeagueID: leagueID,
		Label:    queryString(r, "label"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, seasonToDTO))
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	id, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.Get(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get season failed", "season_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	page, err := queryPage(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.clubService.List(ctx, club.Filter{
		Name:    queryString(r, "name"),
		FbrefID: queryString(r, "fbref_id"),
		Stadium: queryString(r, "stadium"),
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, clubToDTO))
}

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClub")
	defer span.End()

	id, err := pathID(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubService.Get(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get club failed", "club_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(item))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	page, err := queryPage(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.List(ctx, player.Filter{
		Name:        queryString(r, "name"),
		FbrefID:     queryString(r, "fbref_id"),
		Nationality: queryString(r, "nationality"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerToDTO))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Get(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}
