package teams

import (
	"time"

	"github.com/courtside/teams/go/internal/models"
	"github.com/samber/lo"
)

// CreateTeamPayload is the POST /api/teams body
type CreateTeamPayload struct {
	Name           string  `json:"name" validate:"required,notblank,min=2,max=100"`
	City           *string `json:"city" validate:"omitempty,max=100"`
	LogoURL        *string `json:"logoUrl"`
	PrimaryColor   *string `json:"primaryColor" validate:"omitempty,teamcolor"`
	SecondaryColor *string `json:"secondaryColor" validate:"omitempty,teamcolor"`
	Description    *string `json:"description" validate:"omitempty,max=500"`
	Coach          *string `json:"coach" validate:"omitempty,max=100"`
	FoundedYear    *int    `json:"foundedYear" validate:"omitempty,min=1000,max=9999"`
	Stadium        *string `json:"stadium" validate:"omitempty,max=200"`
}

// UpdateTeamPayload is the PUT /api/teams/{id} body. Omitted or null fields
// are left unchanged.
type UpdateTeamPayload struct {
	Name           *string `json:"name" validate:"omitempty,notblank,min=2,max=100"`
	City           *string `json:"city" validate:"omitempty,max=100"`
	LogoURL        *string `json:"logoUrl"`
	PrimaryColor   *string `json:"primaryColor" validate:"omitempty,teamcolor"`
	SecondaryColor *string `json:"secondaryColor" validate:"omitempty,teamcolor"`
	Active         *bool   `json:"active"`
	Description    *string `json:"description" validate:"omitempty,max=500"`
	Coach          *string `json:"coach" validate:"omitempty,max=100"`
	FoundedYear    *int    `json:"foundedYear" validate:"omitempty,min=1000,max=9999"`
	Stadium        *string `json:"stadium" validate:"omitempty,max=200"`
}

type TeamResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	City           *string   `json:"city"`
	LogoURL        *string   `json:"logoUrl"`
	PrimaryColor   *string   `json:"primaryColor"`
	SecondaryColor *string   `json:"secondaryColor"`
	Active         bool      `json:"active"`
	Description    *string   `json:"description"`
	Coach          *string   `json:"coach"`
	FoundedYear    *int      `json:"foundedYear"`
	Stadium        *string   `json:"stadium"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type TeamPageResponse struct {
	Teams      []TeamResponse `json:"teams"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"totalPages"`
	HasMore    bool           `json:"hasMore"`
}

type TeamStatsResponse struct {
	TotalTeams    int64 `json:"totalTeams"`
	ActiveTeams   int64 `json:"activeTeams"`
	InactiveTeams int64 `json:"inactiveTeams"`
}

type CityStatsResponse struct {
	City  string `json:"city"`
	Teams int64  `json:"teams"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp int64  `json:"timestamp"`
	Database  string `json:"database,omitempty"`
}

type ErrorResponse struct {
	Timestamp   time.Time    `json:"timestamp"`
	Status      int          `json:"status"`
	Error       string       `json:"error"`
	Message     string       `json:"message"`
	Path        string       `json:"path"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
}

func (p CreateTeamPayload) toRequest() CreateTeamRequest {
	return CreateTeamRequest{
		Name:           p.Name,
		City:           p.City,
		LogoURL:        p.LogoURL,
		PrimaryColor:   p.PrimaryColor,
		SecondaryColor: p.SecondaryColor,
		Description:    p.Description,
		Coach:          p.Coach,
		FoundedYear:    p.FoundedYear,
		Stadium:        p.Stadium,
	}
}

func (p UpdateTeamPayload) toPatch() TeamPatch {
	return TeamPatch{
		Name:           models.FromPtr(p.Name),
		City:           models.FromPtr(p.City),
		LogoURL:        models.FromPtr(p.LogoURL),
		PrimaryColor:   models.FromPtr(p.PrimaryColor),
		SecondaryColor: models.FromPtr(p.SecondaryColor),
		Active:         models.FromPtr(p.Active),
		Description:    models.FromPtr(p.Description),
		Coach:          models.FromPtr(p.Coach),
		FoundedYear:    models.FromPtr(p.FoundedYear),
		Stadium:        models.FromPtr(p.Stadium),
	}
}

func teamToResponse(team *models.Team) TeamResponse {
	return TeamResponse{
		ID:             team.ID,
		Name:           team.Name,
		City:           team.City,
		LogoURL:        team.LogoURL,
		PrimaryColor:   team.PrimaryColor,
		SecondaryColor: team.SecondaryColor,
		Active:         team.Active,
		Description:    team.Description,
		Coach:          team.Coach,
		FoundedYear:    team.FoundedYear,
		Stadium:        team.Stadium,
		CreatedAt:      team.CreatedAt,
		UpdatedAt:      team.UpdatedAt,
	}
}

func teamsToResponse(teams []models.Team) []TeamResponse {
	return lo.Map(teams, func(t models.Team, _ int) TeamResponse {
		return teamToResponse(&t)
	})
}

func pageToResponse(page *TeamListResponse) TeamPageResponse {
	return TeamPageResponse{
		Teams:      teamsToResponse(page.Teams),
		Page:       page.Page,
		Size:       page.Size,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		HasMore:    page.HasMore,
	}
}
