package teams

import (
	"math"

	"github.com/courtside/teams/go/internal/models"
)

const (
	DefaultPageSize   = 20
	MaxPageSize       = 100
	DefaultRecentSize = 10

	// Founded years are four-digit; the column is a 32-bit integer.
	MinFoundedYear = 1000
	MaxFoundedYear = 9999
)

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	Name           string
	City           *string
	LogoURL        *string
	PrimaryColor   *string
	SecondaryColor *string
	Description    *string
	Coach          *string
	FoundedYear    *int
	Stadium        *string
}

// TeamPatch carries the fields an update supplies. Absent fields are left
// unchanged; there is no way to clear a column through a patch.
type TeamPatch struct {
	Name           models.Optional[string]
	City           models.Optional[string]
	LogoURL        models.Optional[string]
	PrimaryColor   models.Optional[string]
	SecondaryColor models.Optional[string]
	Active         models.Optional[bool]
	Description    models.Optional[string]
	Coach          models.Optional[string]
	FoundedYear    models.Optional[int]
	Stadium        models.Optional[string]
}

// TeamFilter represents filtering options for team queries
type TeamFilter struct {
	Name   *string
	City   *string
	Active *bool
}

// onlyActive reports whether the filter constrains nothing but the active flag.
func (f TeamFilter) onlyActive() bool {
	return f.Active != nil && f.Name == nil && f.City == nil
}

// TeamSortBy represents sorting options for team queries
type TeamSortBy string

const (
	TeamSortByID          TeamSortBy = "id"
	TeamSortByName        TeamSortBy = "name"
	TeamSortByCity        TeamSortBy = "city"
	TeamSortByFoundedYear TeamSortBy = "foundedYear"
	TeamSortByCreatedAt   TeamSortBy = "createdAt"
	TeamSortByUpdatedAt   TeamSortBy = "updatedAt"
)

// column maps a sort key onto its teams column; ok is false for unknown keys.
func (s TeamSortBy) column() (string, bool) {
	switch s {
	case "", TeamSortByID:
		return "id", true
	case TeamSortByName:
		return "name", true
	case TeamSortByCity:
		return "city", true
	case TeamSortByFoundedYear:
		return "founded_year", true
	case TeamSortByCreatedAt:
		return "created_at", true
	case TeamSortByUpdatedAt:
		return "updated_at", true
	}
	return "", false
}

// PaginationParams represents a zero-based page request
type PaginationParams struct {
	Page     int
	Size     int
	SortBy   TeamSortBy
	SortDesc bool
}

func (p PaginationParams) normalized() PaginationParams {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset is Page*Size, saturating at math.MaxInt64.
func (p PaginationParams) Offset() int64 {
	if p.Size > 0 && int64(p.Page) > math.MaxInt64/int64(p.Size) {
		return math.MaxInt64
	}
	return int64(p.Page) * int64(p.Size)
}

// storeOffset is Offset narrowed to the 32-bit range the queries accept;
// ok is false when the page starts past it and must be empty.
func (p PaginationParams) storeOffset() (offset int32, ok bool) {
	o := p.Offset()
	if o > math.MaxInt32 {
		return 0, false
	}
	return int32(o), true
}

func (p PaginationParams) defaultOrder() bool {
	return (p.SortBy == "" || p.SortBy == TeamSortByID) && !p.SortDesc
}

// TeamListResponse represents one page of teams
type TeamListResponse struct {
	Teams      []models.Team
	Total      int64
	Page       int
	Size       int
	TotalPages int
	HasMore    bool
}

func newTeamListResponse(teams []models.Team, total int64, p PaginationParams) *TeamListResponse {
	totalPages := int((total + int64(p.Size) - 1) / int64(p.Size))
	return &TeamListResponse{
		Teams:      teams,
		Total:      total,
		Page:       p.Page,
		Size:       p.Size,
		TotalPages: totalPages,
		HasMore:    p.Offset() < total-int64(len(teams)),
	}
}

// TeamStats summarises team counts
type TeamStats struct {
	TotalTeams    int64
	ActiveTeams   int64
	InactiveTeams int64
}
