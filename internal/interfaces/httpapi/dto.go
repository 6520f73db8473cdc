package httpapi

import (
	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/clubstats"
	"github.com/riskibarqy/woso-api/internal/domain/country"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/leaderboard"
	"github.com/riskibarqy/woso-api/internal/domain/league"
	"github.com/riskibarqy/woso-api/internal/domain/player"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
	"github.com/riskibarqy/woso-api/internal/domain/season"
	"github.com/riskibarqy/woso-api/internal/usecase"
)

type countryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type leagueDTO struct {
	ID          int64   `json:"id"`
	CountryID   int64   `json:"country_id"`
	CountryName string  `json:"country_name,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
	Name        string  `json:"name"`
	TotalClubs  *int    `json:"total_clubs"`
	Code        *string `json:"code"`
}

type seasonDTO struct {
	ID         int64  `json:"id"`
	LeagueID   int64  `json:"league_id"`
	LeagueName string `json:"league_name,omitempty"`
	Label      string `json:"label"`
}

type clubDTO struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	FbrefID string  `json:"fbref_id"`
	Stadium *string `json:"stadium"`
}

type playerDTO struct {
	ID          int64   `json:"id"`
	FullName    string  `json:"full_name"`
	FbrefID     string  `json:"fbref_id"`
	Nationality *string `json:"nationality"`
	Age         *int    `json:"age"`
}

type entryDTO[D any] struct {
	Rank  int      `json:"rank"`
	Value *float64 `json:"value"`
	Row   D        `json:"row"`
}

type seasonBoardDTO[D any] struct {
	Season  string        `json:"season"`
	Entries []entryDTO[D] `json:"entries"`
}

type boardDTO[D any] struct {
	Key     string              `json:"key"`
	Title   string              `json:"title"`
	Field   string              `json:"field"`
	Seasons []seasonBoardDTO[D] `json:"seasons"`
}

type seasonGroupDTO[D any] struct {
	Season string `json:"season"`
	Rows   []D    `json:"rows"`
}

type leaguePageDTO struct {
	League           leagueDTO                     `json:"league"`
	Seasons          []seasonDTO                   `json:"seasons"`
	Clubs            []clubDTO                     `json:"clubs"`
	ClubBoards       []boardDTO[clubStatDTO]       `json:"club_boards"`
	PlayerBoards     []boardDTO[playerStatDTO]     `json:"player_boards"`
	U23Boards        []boardDTO[playerStatDTO]     `json:"u23_boards"`
	GoalkeeperBoards []boardDTO[goalkeeperStatDTO] `json:"goalkeeper_boards"`
}

type clubPageDTO struct {
	Club             clubDTO                             `json:"club"`
	Seasons          []clubStatDTO                       `json:"seasons"`
	Roster           []seasonGroupDTO[playerStatDTO]     `json:"roster"`
	Goalkeepers      []seasonGroupDTO[goalkeeperStatDTO] `json:"goalkeepers"`
	PlayerBoards     []boardDTO[playerStatDTO]           `json:"player_boards"`
	GoalkeeperBoards []boardDTO[goalkeeperStatDTO]       `json:"goalkeeper_boards"`
}

type playerPageDTO struct {
	Player                 playerDTO           `json:"player"`
	Role                   string              `json:"role"`
	Nationality            string              `json:"nationality"`
	Seasons                []playerStatDTO     `json:"seasons"`
	GoalkeeperSeasons      []goalkeeperStatDTO `json:"goalkeeper_seasons"`
	LatestGoalContribution *int                `json:"latest_goal_contribution"`
	CareerGoalContribution *int                `json:"career_goal_contribution"`
}

type leaderboardEntryDTO struct {
	Rank  int      `json:"rank"`
	Value *float64 `json:"value"`
	Row   any      `json:"row"`
}

type leaderboardSeasonDTO struct {
	Season  string                `json:"season"`
	Entries []leaderboardEntryDTO `json:"entries"`
}

type leaderboardDTO struct {
	Kind      string                 `json:"kind"`
	Field     string                 `json:"field"`
	Direction string                 `json:"direction"`
	Seasons   []leaderboardSeasonDTO `json:"seasons"`
}

type importSummaryDTO struct {
	usecase.ImportSummary
	DurationMS int64 `json:"duration_ms"`
}

func countryToDTO(v country.Country) countryDTO {
	return countryDTO(v)
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO(v)
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO(v)
}

func clubToDTO(v club.Club) clubDTO {
	return clubDTO(v)
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO(v)
}

func clubStatToDTO(v clubstats.SeasonStat) clubStatDTO {
	return clubStatDTO(v)
}

func playerStatToDTO(v playerstats.SeasonStat) playerStatDTO {
	return playerStatDTO(v)
}

func goalkeeperStatToDTO(v goalkeeperstats.SeasonStat) goalkeeperStatDTO {
	return goalkeeperStatDTO(v)
}

func mapSlice[T, D any](items []T, conv func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, conv(item))
	}
	return out
}

func boardsToDTO[T, D any](boards []usecase.Board[T], conv func(T) D) []boardDTO[D] {
	out := make([]boardDTO[D], 0, len(boards))
	for _, board := range boards {
		seasons := make([]seasonBoardDTO[D], 0, len(board.Seasons))
		for _, sb := range board.Seasons {
			seasons = append(seasons, seasonBoardDTO[D]{
				Season:  sb.Season,
				Entries: entriesToDTO(sb.Entries, conv),
			})
		}
		out = append(out, boardDTO[D]{Key: board.Key, Title: board.Title, Field: board.Field, Seasons: seasons})
	}
	return out
}

func entriesToDTO[T, D any](entries []leaderboard.Entry[T], conv func(T) D) []entryDTO[D] {
	out := make([]entryDTO[D], 0, len(entries))
	for _, e := range entries {
		item := entryDTO[D]{Rank: e.Rank, Row: conv(e.Record)}
		if e.HasValue {
			value := e.Value
			item.Value = &value
		}
		out = append(out, item)
	}
	return out
}

func groupsToDTO[T, D any](groups []usecase.SeasonGroup[T], conv func(T) D) []seasonGroupDTO[D] {
	out := make([]seasonGroupDTO[D], 0, len(groups))
	for _, g := range groups {
		out = append(out, seasonGroupDTO[D]{Season: g.Season, Rows: mapSlice(g.Rows, conv)})
	}
	return out
}

func leaguePageToDTO(page usecase.LeaguePage) leaguePageDTO {
	return leaguePageDTO{
		League:           leagueToDTO(page.League),
		Seasons:          mapSlice(page.Seasons, seasonToDTO),
		Clubs:            mapSlice(page.Clubs, clubToDTO),
		ClubBoards:       boardsToDTO(page.ClubBoards, clubStatToDTO),
		PlayerBoards:     boardsToDTO(page.PlayerBoards, playerStatToDTO),
		U23Boards:        boardsToDTO(page.U23Boards, playerStatToDTO),
		GoalkeeperBoards: boardsToDTO(page.GoalkeeperBoards, goalkeeperStatToDTO),
	}
}

func clubPageToDTO(page usecase.ClubPage) clubPageDTO {
	return clubPageDTO{
		Club:             clubToDTO(page.Club),
		Seasons:          mapSlice(page.Seasons, clubStatToDTO),
		Roster:           groupsToDTO(page.Roster, playerStatToDTO),
		Goalkeepers:      groupsToDTO(page.Goalkeepers, goalkeeperStatToDTO),
		PlayerBoards:     boardsToDTO(page.PlayerBoards, playerStatToDTO),
		GoalkeeperBoards: boardsToDTO(page.GoalkeeperBoards, goalkeeperStatToDTO),
	}
}

func playerPageToDTO(page usecase.PlayerPage) playerPageDTO {
	return playerPageDTO{
		Player:                 playerToDTO(page.Player),
		Role:                   string(page.Role),
		Nationality:            page.Nationality,
		Seasons:                mapSlice(page.Seasons, playerStatToDTO),
		GoalkeeperSeasons:      mapSlice(page.GoalkeeperSeasons, goalkeeperStatToDTO),
		LatestGoalContribution: page.LatestGoalContribution,
		CareerGoalContribution: page.CareerGoalContribution,
	}
}

func leaderboardToDTO(result usecase.LeaderboardResult) leaderboardDTO {
	seasons := make([]leaderboardSeasonDTO, 0, len(result.Seasons))
	for _, s := range result.Seasons {
		entries := make([]leaderboardEntryDTO, 0, len(s.Entries))
		for _, e := range s.Entries {
			item := leaderboardEntryDTO{Rank: e.Rank, Value: e.Value}
			switch {
			case e.ClubStat != nil:
				item.Row = clubStatToDTO(*e.ClubStat)
			case e.PlayerStat != nil:
				item.Row = playerStatToDTO(*e.PlayerStat)
			case e.GoalkeeperStat != nil:
				item.Row = goalkeeperStatToDTO(*e.GoalkeeperStat)
			}
			entries = append(entries, item)
		}
		seasons = append(seasons, leaderboardSeasonDTO{Season: s.Season, Entries: entries})
	}
	return leaderboardDTO{
		Kind:      result.Kind,
		Field:     result.Field,
		Direction: string(result.Direction),
		Seasons:   seasons,
	}
}

func importSummaryToDTO(summary usecase.ImportSummary) importSummaryDTO {
	if summary.Diagnostics == nil {
		summary.Diagnostics = []usecase.RowDiagnostic{}
	}
	return importSummaryDTO{ImportSummary: summary, DurationMS: summary.Duration().Milliseconds()}
}
