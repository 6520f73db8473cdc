package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/country"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/season"
	"github.com/riskibarqy/woso-api/internal/infrastructure/csvsource"
	"github.com/riskibarqy/woso-api/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

type createCountryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Code string `json:"code" validate:"required,max=10"`
}

type createLeagueRequest struct {
	CountryID  int64   `json:"country_id" validate:"required,gt=0"`
	Name       string  `json:"name" validate:"required,max=150"`
	TotalClubs *int    `json:"total_clubs" validate:"omitempty,gte=0"`
	Code       *string `json:"code" validate:"omitempty,max=30"`
}

type createSeasonRequest struct {
	LeagueID int64  `json:"league_id" validate:"required,gt=0"`
	Label    string `json:"label" validate:"required,max=20"`
}

type updateStadiumRequest struct {
	Stadium string `json:"stadium" validate:"max=200"`
}

func (h *Handler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCountry")
	defer span.End()

	var req createCountryRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.countryService.Create(ctx, country.Country{Name: req.Name, Code: req.Code})
	if err != nil {
		h.logger.WarnContext(ctx, "create country failed", "code", req.Code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, countryToDTO(item))
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	var req createLeagueRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.CreateLeague(ctx, league.League{
		CountryID:  req.CountryID,
		Name:       req.Name,
		TotalClubs: req.TotalClubs,
		Code:       req.Code,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "country_id", req.CountryID, "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(item))
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var req createSeasonRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.Create(ctx, season.Season{LeagueID: req.LeagueID, Label: req.Label})
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "league_id", req.LeagueID, "label", req.Label, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(item))
}

func (h *Handler) UpdateClubStadium(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClubStadium")
	defer span.End()

	clubID, err := pathID(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updateStadiumRequest
	if err := h.decodeJSON(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubService.UpdateStadium(ctx, clubID, req.Stadium)
	if err != nil {
		h.logger.WarnContext(ctx, "update club stadium failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(item))
}

// RunImport loads one uploaded CSV (multipart field "file") as the given import kind.
// Scope comes from the season_id, league_id and club query parameters.
func (h *Handler) RunImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunImport", attribute.String("import.kind", r.PathValue("kind")))
	defer span.End()

	rawKind := strings.TrimSpace(r.PathValue("kind"))
	kind, ok := usecase.ParseImportKind(rawKind)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown import kind %q", usecase.ErrInvalidInput, rawKind))
		return
	}
	scope, err := importScope(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(ctx, w, fmt.Errorf("%w: upload exceeds %d bytes", usecase.ErrInvalidInput, tooLarge.Limit))
			return
		}
		writeError(ctx, w, fmt.Errorf("%w: invalid multipart form: %v", usecase.ErrInvalidInput, err))
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: multipart field \"file\" is required", usecase.ErrInvalidInput))
		return
	}
	defer file.Close()

	src, err := csvsource.NewReader(header.Filename, file)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	summary, err := h.importerService.Run(ctx, usecase.ImportRequest{Kind: kind, Source: src, Scope: scope})
	if err != nil {
		h.logger.WarnContext(ctx, "import failed", "kind", kind, "source", header.Filename, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "import finished",
		"kind", kind,
		"source", header.Filename,
		"rows", summary.Rows,
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
	)
	writeSuccess(ctx, w, http.StatusOK, importSummaryToDTO(summary))
}

func importScope(r *http.Request) (usecase.ImportScope, error) {
	seasonID, err := queryID(r, "season_id")
	if err != nil {
		return usecase.ImportScope{}, err
	}
	leagueID, err := queryID(r, "league_id")
	if err != nil {
		return usecase.ImportScope{}, err
	}
	return usecase.ImportScope{
		SeasonID:    seasonID,
		LeagueID:    leagueID,
		ClubFbrefID: queryString(r, "club"),
	}, nil
}
