package teams

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/courtside/teams/go/internal/models"
)

// memoryRepository is an in-memory TeamsRepository with the same matching
// rules as the SQL queries.
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	teams  map[int64]models.Team
	// failWith, when set, is returned by every call
	failWith error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{nextID: 1, teams: map[int64]models.Team{}}
}

func contains(field *string, term string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), strings.ToLower(term))
}

func (m *memoryRepository) sorted(keep func(models.Team) bool) []models.Team {
	out := []models.Team{}
	for _, t := range m.teams {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func paginate(teams []models.Team, page PaginationParams) ([]models.Team, int64) {
	if page.SortBy == TeamSortByName {
		sort.SliceStable(teams, func(i, j int) bool {
			if page.SortDesc {
				return teams[i].Name > teams[j].Name
			}
			return teams[i].Name < teams[j].Name
		})
	} else if page.SortDesc {
		sort.SliceStable(teams, func(i, j int) bool { return teams[i].ID > teams[j].ID })
	}
	total := int64(len(teams))
	start := int(min(page.Offset(), int64(len(teams))))
	end := min(start+page.Size, len(teams))
	return teams[start:end], total
}

func (m *memoryRepository) CreateTeam(_ context.Context, req CreateTeamRequest, createdAt time.Time) (*models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, t := range m.teams {
		if t.Active && strings.EqualFold(t.Name, req.Name) {
			return nil, ErrDuplicateTeamName
		}
	}
	team := models.Team{
		ID:             m.nextID,
		Name:           req.Name,
		City:           req.City,
		LogoURL:        req.LogoURL,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		Active:         true,
		Description:    req.Description,
		Coach:          req.Coach,
		FoundedYear:    req.FoundedYear,
		Stadium:        req.Stadium,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
	m.teams[team.ID] = team
	m.nextID++
	return &team, nil
}

func (m *memoryRepository) GetTeam(_ context.Context, id int64) (*models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	t, ok := m.teams[id]
	if !ok {
		return nil, ErrTeamNotFound
	}
	return &t, nil
}

func (m *memoryRepository) GetTeamByName(_ context.Context, name string) (*models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matches := m.sorted(func(t models.Team) bool { return strings.EqualFold(t.Name, name) })
	if len(matches) == 0 {
		return nil, ErrTeamNotFound
	}
	for _, t := range matches {
		if t.Active {
			return &t, nil
		}
	}
	return &matches[0], nil
}

func (m *memoryRepository) ListActiveTeams(_ context.Context) ([]models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.sorted(func(t models.Team) bool { return t.Active }), nil
}

func (m *memoryRepository) ListTeamsByCity(_ context.Context, city string) ([]models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(t models.Team) bool { return contains(t.City, city) }), nil
}

func (m *memoryRepository) ListTeamsByActive(_ context.Context, active bool, page PaginationParams) ([]models.Team, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	teams, total := paginate(m.sorted(func(t models.Team) bool { return t.Active == active }), page)
	return teams, total, nil
}

func (m *memoryRepository) ListTeamsWithFilter(_ context.Context, filter TeamFilter, page PaginationParams) ([]models.Team, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	teams, total := paginate(m.sorted(func(t models.Team) bool {
		if filter.Name != nil && !contains(&t.Name, *filter.Name) {
			return false
		}
		if filter.City != nil && !contains(t.City, *filter.City) {
			return false
		}
		if filter.Active != nil && t.Active != *filter.Active {
			return false
		}
		return true
	}), page)
	return teams, total, nil
}

func (m *memoryRepository) SearchTeams(_ context.Context, term string, page PaginationParams) ([]models.Team, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	teams, total := paginate(m.sorted(func(t models.Team) bool {
		return contains(&t.Name, term) || contains(t.City, term)
	}), page)
	return teams, total, nil
}

func (m *memoryRepository) ListRecentTeams(_ context.Context, limit int) ([]models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	teams := m.sorted(func(models.Team) bool { return true })
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].CreatedAt.Equal(teams[j].CreatedAt) {
			return teams[i].ID > teams[j].ID
		}
		return teams[i].CreatedAt.After(teams[j].CreatedAt)
	})
	return teams[:min(limit, len(teams))], nil
}

func (m *memoryRepository) ListTeamsFoundedBetween(_ context.Context, from, to int) ([]models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(t models.Team) bool {
		return t.FoundedYear != nil && *t.FoundedYear >= from && *t.FoundedYear <= to
	}), nil
}

func (m *memoryRepository) ExistsTeamByNameExcludingID(_ context.Context, name string, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.teams {
		if t.ID != id && strings.EqualFold(t.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepository) ExistsActiveTeamByName(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return false, m.failWith
	}
	for _, t := range m.teams {
		if t.Active && strings.EqualFold(t.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepository) CountTeams(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return 0, m.failWith
	}
	return int64(len(m.teams)), nil
}

func (m *memoryRepository) CountTeamsByActive(_ context.Context, active bool) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.sorted(func(t models.Team) bool { return t.Active == active }))), nil
}

func (m *memoryRepository) CountTeamsByCity(_ context.Context, city string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.sorted(func(t models.Team) bool {
		return t.City != nil && strings.EqualFold(*t.City, city)
	}))), nil
}

// activeNameTaken mirrors the partial unique index on lower(name) WHERE active.
func (m *memoryRepository) activeNameTaken(name string, id int64) bool {
	for _, t := range m.teams {
		if t.ID != id && t.Active && strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

func (m *memoryRepository) UpdateTeam(_ context.Context, id int64, patch TeamPatch, updatedAt time.Time) (*models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.teams[id]
	if !ok {
		return nil, ErrTeamNotFound
	}
	t.Name = patch.Name.Or(t.Name)
	if v, ok := patch.City.Get(); ok {
		t.City = &v
	}
	if v, ok := patch.LogoURL.Get(); ok {
		t.LogoURL = &v
	}
	if v, ok := patch.PrimaryColor.Get(); ok {
		t.PrimaryColor = &v
	}
	if v, ok := patch.SecondaryColor.Get(); ok {
		t.SecondaryColor = &v
	}
	t.Active = patch.Active.Or(t.Active)
	if v, ok := patch.Description.Get(); ok {
		t.Description = &v
	}
	if v, ok := patch.Coach.Get(); ok {
		t.Coach = &v
	}
	if v, ok := patch.FoundedYear.Get(); ok {
		t.FoundedYear = &v
	}
	if v, ok := patch.Stadium.Get(); ok {
		t.Stadium = &v
	}
	if t.Active && m.activeNameTaken(t.Name, id) {
		return nil, ErrDuplicateTeamName
	}
	t.UpdatedAt = updatedAt
	m.teams[id] = t
	return &t, nil
}

func (m *memoryRepository) SetTeamActive(_ context.Context, id int64, active bool, updatedAt time.Time) (*models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.teams[id]
	if !ok {
		return nil, ErrTeamNotFound
	}
	if active && m.activeNameTaken(t.Name, id) {
		return nil, ErrDuplicateTeamName
	}
	t.Active = active
	t.UpdatedAt = updatedAt
	m.teams[id] = t
	return &t, nil
}

func (m *memoryRepository) DeleteTeam(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.teams[id]; !ok {
		return ErrTeamNotFound
	}
	delete(m.teams, id)
	return nil
}
