package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/woso-api/internal/domain/club"
	"github.com/riskibarqy/woso-api/internal/domain/goalkeeperstats"
	"github.com/riskibarqy/woso-api/internal/domain/naming"
	"github.com/riskibarqy/woso-api/internal/domain/player"
	"github.com/riskibarqy/woso-api/internal/domain/playerstats"
)

type ResolutionKind string

const (
	ResolutionNotFound  ResolutionKind = "not_found"
	ResolutionAmbiguous ResolutionKind = "ambiguous"
)

// ResolutionError is returned when a URL token does not identify exactly one entity.
// It unwraps to ErrNotFound or ErrConflict.
type ResolutionError struct {
	Kind       ResolutionKind
	Entity     string
	Token      string
	Candidates []string
}

func (e *ResolutionError) Error() string {
	if e.Kind == ResolutionAmbiguous {
		return fmt.Sprintf("%s %q is ambiguous: %s", e.Entity, e.Token, strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("%s %q not found", e.Entity, e.Token)
}

func (e *ResolutionError) Unwrap() error {
	if e.Kind == ResolutionAmbiguous {
		return ErrConflict
	}
	return ErrNotFound
}

type PlayerRole string

const (
	RoleOutfield   PlayerRole = "outfield"
	RoleGoalkeeper PlayerRole = "goalkeeper"
)

type ResolvedPlayer struct {
	Player player.Player
	Role   PlayerRole
}

// statCollection is the slice of the store a player token is matched against.
type statCollection struct {
	role    PlayerRole
	members func(ctx context.Context, ids []int64) (map[int64]struct{}, error)
}

type ResolverService struct {
	clubRepo           club.Repository
	playerRepo         player.Repository
	playerStatRepo     playerstats.Repository
	goalkeeperStatRepo goalkeeperstats.Repository
}

func NewResolverService(
	clubRepo club.Repository,
	playerRepo player.Repository,
	playerStatRepo playerstats.Repository,
	goalkeeperStatRepo goalkeeperstats.Repository,
) *ResolverService {
	return &ResolverService{
		clubRepo:           clubRepo,
		playerRepo:         playerRepo,
		playerStatRepo:     playerStatRepo,
		goalkeeperStatRepo: goalkeeperStatRepo,
	}
}

// ResolveClub maps a URL token to a club: numeric id, then exact name ignoring case, then
// normalized-name substring or fbref id.
func (s *ResolverService) ResolveClub(ctx context.Context, token string) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResolverService.ResolveClub")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return club.Club{}, fmt.Errorf("%w: club token is required", ErrInvalidInput)
	}

	if clubID, err := strconv.ParseInt(token, 10, 64); err == nil && clubID > 0 {
		found, exists, err := s.clubRepo.GetByID(ctx, clubID)
		if err != nil {
			return club.Club{}, fmt.Errorf("get club by id: %w", err)
		}
		if exists {
			return found, nil
		}
	}

	exact, err := s.clubRepo.FindByName(ctx, token)
	if err != nil {
		return club.Club{}, fmt.Errorf("find club by name: %w", err)
	}
	if len(exact) == 1 {
		return exact[0], nil
	}

	candidates, err := s.clubRepo.SearchByNormalizedName(ctx, token)
	if err != nil {
		return club.Club{}, fmt.Errorf("search clubs: %w", err)
	}
	switch len(candidates) {
	case 0:
		return club.Club{}, &ResolutionError{Kind: ResolutionNotFound, Entity: "club", Token: token}
	case 1:
		return candidates[0], nil
	}

	for _, candidate := range candidates {
		if strings.EqualFold(candidate.FbrefID, token) {
			return candidate, nil
		}
	}
	normalized := naming.Normalize(token)
	var exactNormalized []club.Club
	for _, candidate := range candidates {
		if naming.Normalize(candidate.Name) == normalized {
			exactNormalized = append(exactNormalized, candidate)
		}
	}
	if len(exactNormalized) == 1 {
		return exactNormalized[0], nil
	}

	names := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		names = append(names, candidate.Name)
	}
	sort.Strings(names)
	return club.Club{}, &ResolutionError{Kind: ResolutionAmbiguous, Entity: "club", Token: token, Candidates: names}
}

// ResolvePlayer maps a URL token to a player with season rows, outfield rows first.
func (s *ResolverService) ResolvePlayer(ctx context.Context, token string) (ResolvedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResolverService.ResolvePlayer")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return ResolvedPlayer{}, fmt.Errorf("%w: player token is required", ErrInvalidInput)
	}
	collections := []statCollection{
		{role: RoleOutfield, members: s.playerStatRepo.PlayerIDsWithStats},
		{role: RoleGoalkeeper, members: s.goalkeeperStatRepo.PlayerIDsWithStats},
	}

	if playerID, err := strconv.ParseInt(token, 10, 64); err == nil && playerID > 0 {
		found, exists, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return ResolvedPlayer{}, fmt.Errorf("get player by id: %w", err)
		}
		if exists {
			for _, collection := range collections {
				members, err := collection.filter(ctx, []player.Player{found})
				if err != nil {
					return ResolvedPlayer{}, err
				}
				if len(members) == 1 {
					return ResolvedPlayer{Player: found, Role: collection.role}, nil
				}
			}
		}
	}

	exact, err := s.playerRepo.FindByNameOrFbrefID(ctx, token)
	if err != nil {
		return ResolvedPlayer{}, fmt.Errorf("find player: %w", err)
	}
	fuzzy, err := s.playerRepo.SearchByNormalizedName(ctx, token)
	if err != nil {
		return ResolvedPlayer{}, fmt.Errorf("search players: %w", err)
	}

	var ambiguous []player.Player
	for _, collection := range collections {
		members, err := collection.filter(ctx, exact)
		if err != nil {
			return ResolvedPlayer{}, err
		}
		if len(members) == 1 {
			return ResolvedPlayer{Player: members[0], Role: collection.role}, nil
		}
		if len(members) == 0 {
			continue
		}

		narrowed, err := collection.filter(ctx, fuzzy)
		if err != nil {
			return ResolvedPlayer{}, err
		}
		if len(narrowed) == 1 {
			return ResolvedPlayer{Player: narrowed[0], Role: collection.role}, nil
		}
		ambiguous = append(ambiguous, members...)
	}

	for _, collection := range collections {
		members, err := collection.filter(ctx, fuzzy)
		if err != nil {
			return ResolvedPlayer{}, err
		}
		if len(members) == 1 && len(ambiguous) == 0 {
			return ResolvedPlayer{Player: members[0], Role: collection.role}, nil
		}
		if len(members) > 1 {
			ambiguous = append(ambiguous, members...)
		}
	}

	if len(ambiguous) > 0 {
		return ResolvedPlayer{}, &ResolutionError{
			Kind:       ResolutionAmbiguous,
			Entity:     "player",
			Token:      token,
			Candidates: distinctPlayerNames(ambiguous),
		}
	}
	return ResolvedPlayer{}, &ResolutionError{Kind: ResolutionNotFound, Entity: "player", Token: token}
}

// filter keeps the distinct players that own rows in the collection, preserving order.
func (c statCollection) filter(ctx context.Context, players []player.Player) ([]player.Player, error) {
	if len(players) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	members, err := c.members(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list %s players with stats: %w", c.role, err)
	}

	seen := make(map[int64]struct{}, len(players))
	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if _, ok := members[p.ID]; !ok {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

func distinctPlayerNames(players []player.Player) []string {
	seen := make(map[int64]struct{}, len(players))
	names := make([]string, 0, len(players))
	for _, p := range players {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		names = append(names, fmt.Sprintf("%s (%s)", p.FullName, p.FbrefID))
	}
	sort.Strings(names)
	return names
}
