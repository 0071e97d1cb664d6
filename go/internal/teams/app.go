package teams

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/courtside/teams/go/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest, createdAt time.Time) (*models.Team, error)
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	GetTeamByName(ctx context.Context, name string) (*models.Team, error)
	ListActiveTeams(ctx context.Context) ([]models.Team, error)
	ListTeamsByCity(ctx context.Context, city string) ([]models.Team, error)
	ListTeamsByActive(ctx context.Context, active bool, page PaginationParams) ([]models.Team, int64, error)
	ListTeamsWithFilter(ctx context.Context, filter TeamFilter, page PaginationParams) ([]models.Team, int64, error)
	SearchTeams(ctx context.Context, term string, page PaginationParams) ([]models.Team, int64, error)
	ListRecentTeams(ctx context.Context, limit int) ([]models.Team, error)
	ListTeamsFoundedBetween(ctx context.Context, from, to int) ([]models.Team, error)
	ExistsTeamByNameExcludingID(ctx context.Context, name string, id int64) (bool, error)
	ExistsActiveTeamByName(ctx context.Context, name string) (bool, error)
	CountTeams(ctx context.Context) (int64, error)
	CountTeamsByActive(ctx context.Context, active bool) (int64, error)
	CountTeamsByCity(ctx context.Context, city string) (int64, error)
	UpdateTeam(ctx context.Context, id int64, patch TeamPatch, updatedAt time.Time) (*models.Team, error)
	SetTeamActive(ctx context.Context, id int64, active bool, updatedAt time.Time) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// App handles teams business logic
type App struct {
	repo  TeamsRepository
	clock clockwork.Clock
}

// NewApp creates a new teams App. A nil clock uses the wall clock.
func NewApp(repo TeamsRepository, clock clockwork.Clock) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// now is truncated to the store's microsecond precision so returned
// timestamps equal what a later read sees.
func (a *App) now() time.Time {
	return a.clock.Now().UTC().Truncate(time.Microsecond)
}

// CreateTeam creates a new active team, filling default colors
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, newValidationError("name", "must not be blank")
	}
	if req.FoundedYear != nil {
		if err := checkFoundedYear("foundedYear", *req.FoundedYear); err != nil {
			return nil, err
		}
	}

	exists, err := a.repo.ExistsActiveTeamByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("an active team named %q already exists: %w", req.Name, ErrDuplicateTeamName)
	}

	if req.PrimaryColor == nil {
		req.PrimaryColor = lo.ToPtr(models.DefaultPrimaryColor)
	}
	if req.SecondaryColor == nil {
		req.SecondaryColor = lo.ToPtr(models.DefaultSecondaryColor)
	}

	team, err := a.repo.CreateTeam(ctx, req, a.now())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("team_id", team.ID).Str("name", team.Name).Msg("created team")
	return team, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	log.Debug().Int64("team_id", id).Msg("get team")
	return a.repo.GetTeam(ctx, id)
}

// GetTeamByName retrieves a team by case-insensitive exact name
func (a *App) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	log.Debug().Str("name", name).Msg("get team by name")
	return a.repo.GetTeamByName(ctx, name)
}

// ListActiveTeams retrieves every active team without pagination
func (a *App) ListActiveTeams(ctx context.Context) ([]models.Team, error) {
	return a.repo.ListActiveTeams(ctx)
}

// ListTeamsByCity retrieves teams whose city contains city
func (a *App) ListTeamsByCity(ctx context.Context, city string) ([]models.Team, error) {
	return a.repo.ListTeamsByCity(ctx, city)
}

// GetTeamsWithFilter retrieves a page of teams matching every supplied filter
func (a *App) GetTeamsWithFilter(ctx context.Context, filter TeamFilter, pagination PaginationParams) (*TeamListResponse, error) {
	pagination = pagination.normalized()
	log.Debug().
		Interface("filter", filter).
		Int("page", pagination.Page).
		Int("size", pagination.Size).
		Msg("list teams")

	var (
		teams []models.Team
		total int64
		err   error
	)
	if filter.onlyActive() && pagination.defaultOrder() {
		teams, total, err = a.repo.ListTeamsByActive(ctx, *filter.Active, pagination)
	} else {
		teams, total, err = a.repo.ListTeamsWithFilter(ctx, filter, pagination)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	return newTeamListResponse(teams, total, pagination), nil
}

// SearchTeams retrieves a page of teams whose name or city contains term
func (a *App) SearchTeams(ctx context.Context, term string, pagination PaginationParams) (*TeamListResponse, error) {
	pagination = pagination.normalized()
	log.Debug().Str("term", term).Int("page", pagination.Page).Msg("search teams")

	teams, total, err := a.repo.SearchTeams(ctx, term, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to search teams: %w", err)
	}

	return newTeamListResponse(teams, total, pagination), nil
}

// UpdateTeam applies a partial update. A new name must not belong to any
// other team, active or not.
func (a *App) UpdateTeam(ctx context.Context, id int64, patch TeamPatch) (*models.Team, error) {
	if year, ok := patch.FoundedYear.Get(); ok {
		if err := checkFoundedYear("foundedYear", year); err != nil {
			return nil, err
		}
	}

	existing, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	if name, ok := patch.Name.Get(); ok {
		if strings.TrimSpace(name) == "" {
			return nil, newValidationError("name", "must not be blank")
		}
		if !strings.EqualFold(name, existing.Name) {
			taken, err := a.repo.ExistsTeamByNameExcludingID(ctx, name, id)
			if err != nil {
				return nil, fmt.Errorf("failed to update team: %w", err)
			}
			if taken {
				return nil, fmt.Errorf("another team named %q already exists: %w", name, ErrDuplicateTeamName)
			}
		}
	}

	team, err := a.repo.UpdateTeam(ctx, id, patch, a.now())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("team_id", team.ID).Str("name", team.Name).Msg("updated team")
	return team, nil
}

// DeleteTeam permanently deletes a team by ID
func (a *App) DeleteTeam(ctx context.Context, id int64) error {
	// Verify team exists
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return err
	}

	if err := a.repo.DeleteTeam(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("team_id", id).Str("name", team.Name).Msg("deleted team")
	return nil
}

// ActivateTeam sets active=true
func (a *App) ActivateTeam(ctx context.Context, id int64) (*models.Team, error) {
	return a.setActive(ctx, id, true)
}

// DeactivateTeam sets active=false
func (a *App) DeactivateTeam(ctx context.Context, id int64) (*models.Team, error) {
	return a.setActive(ctx, id, false)
}

func (a *App) setActive(ctx context.Context, id int64, active bool) (*models.Team, error) {
	team, err := a.repo.SetTeamActive(ctx, id, active, a.now())
	if err != nil {
		if errors.Is(err, ErrDuplicateTeamName) {
			return nil, fmt.Errorf("cannot activate team %d, its name is held by an active team: %w", id, err)
		}
		return nil, err
	}

	log.Info().Int64("team_id", id).Bool("active", active).Msg("changed team status")
	return team, nil
}

// GetStats counts total, active and inactive teams
func (a *App) GetStats(ctx context.Context) (*TeamStats, error) {
	total, err := a.repo.CountTeams(ctx)
	if err != nil {
		return nil, err
	}
	active, err := a.repo.CountTeamsByActive(ctx, true)
	if err != nil {
		return nil, err
	}

	return &TeamStats{
		TotalTeams:    total,
		ActiveTeams:   active,
		InactiveTeams: total - active,
	}, nil
}

// CountTeamsByCity counts teams whose city equals city, case-insensitively
func (a *App) CountTeamsByCity(ctx context.Context, city string) (int64, error) {
	return a.repo.CountTeamsByCity(ctx, city)
}

// ListRecentTeams retrieves up to limit of the most recently created teams
func (a *App) ListRecentTeams(ctx context.Context, limit int) ([]models.Team, error) {
	if limit <= 0 {
		limit = DefaultRecentSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return a.repo.ListRecentTeams(ctx, limit)
}

// ListTeamsFoundedBetween retrieves teams founded in the inclusive year range
func (a *App) ListTeamsFoundedBetween(ctx context.Context, from, to int) ([]models.Team, error) {
	if err := checkFoundedYear("from", from); err != nil {
		return nil, err
	}
	if err := checkFoundedYear("to", to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, newValidationError("from", "must not be after to")
	}
	return a.repo.ListTeamsFoundedBetween(ctx, from, to)
}

func checkFoundedYear(field string, year int) error {
	if year < MinFoundedYear || year > MaxFoundedYear {
		return newValidationError(field, fmt.Sprintf("must be between %d and %d", MinFoundedYear, MaxFoundedYear))
	}
	return nil
}
