package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/courtside/teams/go/internal/models"
	"github.com/courtside/teams/go/internal/sqlutil"
	"github.com/courtside/teams/go/internal/teams/db"
	"github.com/samber/lo"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
	GetTeam(ctx context.Context, id int64) (db.Team, error)
	GetTeamByName(ctx context.Context, name string) (db.Team, error)
	ListTeamsByCity(ctx context.Context, city string) ([]db.Team, error)
	ListTeamsByActive(ctx context.Context, active bool) ([]db.Team, error)
	ListTeamsByActivePaged(ctx context.Context, arg db.ListTeamsByActivePagedParams) ([]db.Team, error)
	ListFilteredTeams(ctx context.Context, arg db.FilteredTeamsParams) ([]db.Team, error)
	CountFilteredTeams(ctx context.Context, arg db.FilteredTeamsParams) (int64, error)
	ListRecentTeams(ctx context.Context, limit int32) ([]db.Team, error)
	ListTeamsFoundedBetween(ctx context.Context, arg db.ListTeamsFoundedBetweenParams) ([]db.Team, error)
	ExistsTeamByNameExcludingID(ctx context.Context, arg db.ExistsTeamByNameExcludingIDParams) (bool, error)
	ExistsActiveTeamByName(ctx context.Context, name string) (bool, error)
	CountTeams(ctx context.Context) (int64, error)
	CountTeamsByActive(ctx context.Context, active bool) (int64, error)
	CountTeamsByCity(ctx context.Context, city string) (int64, error)
	UpdateTeam(ctx context.Context, arg db.UpdateTeamParams) (db.Team, error)
	SetTeamActive(ctx context.Context, arg db.SetTeamActiveParams) (db.Team, error)
	DeleteTeam(ctx context.Context, id int64) (int64, error)
}

// Repository implements team data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new teams repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateTeam inserts a new team stamped with createdAt
func (r *Repository) CreateTeam(ctx context.Context, req CreateTeamRequest, createdAt time.Time) (*models.Team, error) {
	dbTeam, err := r.queries.CreateTeam(ctx, r.createTeamRequestToParams(req, createdAt))
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", classify(err))
	}

	return r.dbTeamToModel(dbTeam), nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team %d: %w", id, classify(err))
	}

	return r.dbTeamToModel(dbTeam), nil
}

// GetTeamByName retrieves a team by case-insensitive exact name, preferring an active one
func (r *Repository) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeamByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get team by name %q: %w", name, classify(err))
	}

	return r.dbTeamToModel(dbTeam), nil
}

// ListActiveTeams retrieves every active team, unpaged
func (r *Repository) ListActiveTeams(ctx context.Context) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeamsByActive(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list active teams: %w", err)
	}

	return r.dbTeamsToModels(dbTeams), nil
}

// ListTeamsByCity retrieves teams whose city contains city, case-insensitively
func (r *Repository) ListTeamsByCity(ctx context.Context, city string) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeamsByCity(ctx, sqlutil.EscapeLike(city))
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by city: %w", err)
	}

	return r.dbTeamsToModels(dbTeams), nil
}

// ListTeamsByActive retrieves one page of teams with the given active flag, ordered by id
func (r *Repository) ListTeamsByActive(ctx context.Context, active bool, page PaginationParams) ([]models.Team, int64, error) {
	dbTeams := []db.Team{}
	if offset, ok := page.storeOffset(); ok {
		var err error
		dbTeams, err = r.queries.ListTeamsByActivePaged(ctx, db.ListTeamsByActivePagedParams{
			Active: active,
			Limit:  int32(page.Size),
			Offset: offset,
		})
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list teams by active flag: %w", err)
		}
	}

	total, err := r.queries.CountTeamsByActive(ctx, active)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count teams by active flag: %w", err)
	}

	return r.dbTeamsToModels(dbTeams), total, nil
}

// ListTeamsWithFilter retrieves one page of teams matching every supplied filter
func (r *Repository) ListTeamsWithFilter(ctx context.Context, filter TeamFilter, page PaginationParams) ([]models.Team, int64, error) {
	params, err := r.filteredParams(page)
	if err != nil {
		return nil, 0, err
	}
	params.Name = filter.Name
	params.City = filter.City
	params.Active = filter.Active

	return r.listFiltered(ctx, params, page)
}

// SearchTeams retrieves one page of teams whose name or city contains term
func (r *Repository) SearchTeams(ctx context.Context, term string, page PaginationParams) ([]models.Team, int64, error) {
	params, err := r.filteredParams(page)
	if err != nil {
		return nil, 0, err
	}
	params.Term = &term

	return r.listFiltered(ctx, params, page)
}

// ListRecentTeams retrieves the newest teams by creation time
func (r *Repository) ListRecentTeams(ctx context.Context, limit int) ([]models.Team, error) {
	dbTeams, err := r.queries.ListRecentTeams(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list recent teams: %w", err)
	}

	return r.dbTeamsToModels(dbTeams), nil
}

// ListTeamsFoundedBetween retrieves teams founded within [from, to]
func (r *Repository) ListTeamsFoundedBetween(ctx context.Context, from, to int) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeamsFoundedBetween(ctx, db.ListTeamsFoundedBetweenParams{
		YearFrom: int32(from),
		YearTo:   int32(to),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by founded year: %w", err)
	}

	return r.dbTeamsToModels(dbTeams), nil
}

// ExistsTeamByNameExcludingID reports whether a team other than id holds name
func (r *Repository) ExistsTeamByNameExcludingID(ctx context.Context, name string, id int64) (bool, error) {
	exists, err := r.queries.ExistsTeamByNameExcludingID(ctx, db.ExistsTeamByNameExcludingIDParams{
		Name: name,
		ID:   id,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check team name: %w", err)
	}
	return exists, nil
}

// ExistsActiveTeamByName reports whether an active team holds name
func (r *Repository) ExistsActiveTeamByName(ctx context.Context, name string) (bool, error) {
	exists, err := r.queries.ExistsActiveTeamByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check active team name: %w", err)
	}
	return exists, nil
}

func (r *Repository) CountTeams(ctx context.Context) (int64, error) {
	count, err := r.queries.CountTeams(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return count, nil
}

func (r *Repository) CountTeamsByActive(ctx context.Context, active bool) (int64, error) {
	count, err := r.queries.CountTeamsByActive(ctx, active)
	if err != nil {
		return 0, fmt.Errorf("failed to count teams by active flag: %w", err)
	}
	return count, nil
}

func (r *Repository) CountTeamsByCity(ctx context.Context, city string) (int64, error) {
	count, err := r.queries.CountTeamsByCity(ctx, city)
	if err != nil {
		return 0, fmt.Errorf("failed to count teams by city: %w", err)
	}
	return count, nil
}

// UpdateTeam applies the present fields of patch and stamps updatedAt
func (r *Repository) UpdateTeam(ctx context.Context, id int64, patch TeamPatch, updatedAt time.Time) (*models.Team, error) {
	dbTeam, err := r.queries.UpdateTeam(ctx, r.teamPatchToParams(id, patch, updatedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to update team %d: %w", id, classify(err))
	}

	return r.dbTeamToModel(dbTeam), nil
}

// SetTeamActive sets the active flag and stamps updatedAt
func (r *Repository) SetTeamActive(ctx context.Context, id int64, active bool, updatedAt time.Time) (*models.Team, error) {
	dbTeam, err := r.queries.SetTeamActive(ctx, db.SetTeamActiveParams{
		ID:        id,
		Active:    active,
		UpdatedAt: updatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set team %d active=%t: %w", id, active, classify(err))
	}

	return r.dbTeamToModel(dbTeam), nil
}

// DeleteTeam permanently removes a team by ID
func (r *Repository) DeleteTeam(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("failed to delete team %d: %w", id, ErrTeamNotFound)
	}

	return nil
}

func (r *Repository) filteredParams(page PaginationParams) (db.FilteredTeamsParams, error) {
	column, ok := page.SortBy.column()
	if !ok {
		return db.FilteredTeamsParams{}, newValidationError("sort", fmt.Sprintf("unsupported sort field %q", page.SortBy))
	}
	return db.FilteredTeamsParams{
		SortColumn: column,
		SortDesc:   page.SortDesc,
		Limit:      uint64(page.Size),
	}, nil
}

func (r *Repository) listFiltered(ctx context.Context, params db.FilteredTeamsParams, page PaginationParams) ([]models.Team, int64, error) {
	dbTeams := []db.Team{}
	if offset, ok := page.storeOffset(); ok {
		params.Offset = uint64(offset)
		var err error
		dbTeams, err = r.queries.ListFilteredTeams(ctx, params)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list filtered teams: %w", err)
		}
	}

	total, err := r.queries.CountFilteredTeams(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered teams: %w", err)
	}

	return r.dbTeamsToModels(dbTeams), total, nil
}

// classify maps storage errors onto the package's sentinel errors
func classify(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrTeamNotFound
	case sqlutil.IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", ErrDuplicateTeamName, err)
	default:
		return err
	}
}

// createTeamRequestToParams converts CreateTeamRequest to sqlc params
func (r *Repository) createTeamRequestToParams(req CreateTeamRequest, createdAt time.Time) db.CreateTeamParams {
	return db.CreateTeamParams{
		Name:           req.Name,
		City:           sqlutil.ToSqlString(req.City),
		LogoUrl:        sqlutil.ToSqlString(req.LogoURL),
		PrimaryColor:   sqlutil.ToSqlString(req.PrimaryColor),
		SecondaryColor: sqlutil.ToSqlString(req.SecondaryColor),
		Active:         true,
		Description:    sqlutil.ToSqlString(req.Description),
		Coach:          sqlutil.ToSqlString(req.Coach),
		FoundedYear:    sqlutil.ToSqlInt32(req.FoundedYear),
		Stadium:        sqlutil.ToSqlString(req.Stadium),
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
}

// teamPatchToParams converts a TeamPatch to sqlc params; absent fields become NULL and COALESCE keeps the column
func (r *Repository) teamPatchToParams(id int64, patch TeamPatch, updatedAt time.Time) db.UpdateTeamParams {
	return db.UpdateTeamParams{
		ID:             id,
		Name:           sqlutil.OptString(patch.Name),
		City:           sqlutil.OptString(patch.City),
		LogoUrl:        sqlutil.OptString(patch.LogoURL),
		PrimaryColor:   sqlutil.OptString(patch.PrimaryColor),
		SecondaryColor: sqlutil.OptString(patch.SecondaryColor),
		Active:         sqlutil.OptBool(patch.Active),
		Description:    sqlutil.OptString(patch.Description),
		Coach:          sqlutil.OptString(patch.Coach),
		FoundedYear:    sqlutil.OptInt32(patch.FoundedYear),
		Stadium:        sqlutil.OptString(patch.Stadium),
		UpdatedAt:      updatedAt,
	}
}

func (r *Repository) dbTeamsToModels(dbTeams []db.Team) []models.Team {
	return lo.Map(dbTeams, func(t db.Team, _ int) models.Team {
		return *r.dbTeamToModel(t)
	})
}

// dbTeamToModel converts a database team to domain model
func (r *Repository) dbTeamToModel(dbTeam db.Team) *models.Team {
	return &models.Team{
		ID:             dbTeam.ID,
		Name:           dbTeam.Name,
		City:           sqlutil.FromSqlStringPtr(dbTeam.City),
		LogoURL:        sqlutil.FromSqlStringPtr(dbTeam.LogoUrl),
		PrimaryColor:   sqlutil.FromSqlStringPtr(dbTeam.PrimaryColor),
		SecondaryColor: sqlutil.FromSqlStringPtr(dbTeam.SecondaryColor),
		Active:         dbTeam.Active,
		Description:    sqlutil.FromSqlStringPtr(dbTeam.Description),
		Coach:          sqlutil.FromSqlStringPtr(dbTeam.Coach),
		FoundedYear:    sqlutil.FromSqlInt32(dbTeam.FoundedYear),
		Stadium:        sqlutil.FromSqlStringPtr(dbTeam.Stadium),
		CreatedAt:      dbTeam.CreatedAt,
		UpdatedAt:      dbTeam.UpdatedAt,
	}
}
