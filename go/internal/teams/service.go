package teams

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/courtside/teams/go/internal/models"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	GetTeamByName(ctx context.Context, name string) (*models.Team, error)
	ListActiveTeams(ctx context.Context) ([]models.Team, error)
	ListTeamsByCity(ctx context.Context, city string) ([]models.Team, error)
	GetTeamsWithFilter(ctx context.Context, filter TeamFilter, pagination PaginationParams) (*TeamListResponse, error)
	SearchTeams(ctx context.Context, term string, pagination PaginationParams) (*TeamListResponse, error)
	UpdateTeam(ctx context.Context, id int64, patch TeamPatch) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
	ActivateTeam(ctx context.Context, id int64) (*models.Team, error)
	DeactivateTeam(ctx context.Context, id int64) (*models.Team, error)
	GetStats(ctx context.Context) (*TeamStats, error)
	CountTeamsByCity(ctx context.Context, city string) (int64, error)
	ListRecentTeams(ctx context.Context, limit int) ([]models.Team, error)
	ListTeamsFoundedBetween(ctx context.Context, from, to int) ([]models.Team, error)
}

// ServiceConfig tunes the HTTP surface
type ServiceConfig struct {
	Name            string
	DefaultPageSize int
	MaxPageSize     int
}

// Service exposes the teams REST API
type Service struct {
	app       TeamsApp
	health    *HealthChecker
	validator *Validator
	cfg       ServiceConfig
}

// NewService creates a new teams HTTP service
func NewService(app TeamsApp, health *HealthChecker, cfg ServiceConfig) *Service {
	if cfg.Name == "" {
		cfg.Name = "teams-service"
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = DefaultPageSize
	}
	if cfg.MaxPageSize <= 0 || cfg.MaxPageSize > MaxPageSize {
		cfg.MaxPageSize = MaxPageSize
	}
	return &Service{
		app:       app,
		health:    health,
		validator: NewValidator(),
		cfg:       cfg,
	}
}

// RegisterRoutes registers the teams routes on mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/teams", s.ListTeams)
	mux.HandleFunc("POST /api/teams", s.CreateTeam)
	mux.HandleFunc("GET /api/teams/active", s.ListActiveTeams)
	mux.HandleFunc("GET /api/teams/search", s.SearchTeams)
	mux.HandleFunc("GET /api/teams/recent", s.ListRecentTeams)
	mux.HandleFunc("GET /api/teams/founded", s.ListTeamsFoundedBetween)
	mux.HandleFunc("GET /api/teams/stats", s.GetStats)
	mux.HandleFunc("GET /api/teams/stats/cities/{city}", s.GetCityStats)
	mux.HandleFunc("GET /api/teams/health", s.Health)
	mux.HandleFunc("GET /api/teams/name/{name}", s.GetTeamByName)
	mux.HandleFunc("GET /api/teams/city/{city}", s.ListTeamsByCity)
	mux.HandleFunc("GET /api/teams/{id}", s.GetTeam)
	mux.HandleFunc("PUT /api/teams/{id}", s.UpdateTeam)
	mux.HandleFunc("DELETE /api/teams/{id}", s.DeleteTeam)
	mux.HandleFunc("PATCH /api/teams/{id}/activate", s.ActivateTeam)
	mux.HandleFunc("PATCH /api/teams/{id}/deactivate", s.DeactivateTeam)
}

// ListTeams handles GET /api/teams?name=&city=&active=&page=&size=&sort=
func (s *Service) ListTeams(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter TeamFilter
	if v := query.Get("name"); v != "" {
		filter.Name = &v
	}
	if v := query.Get("city"); v != "" {
		filter.City = &v
	}
	if v := query.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, r, newValidationError("active", "must be true or false"))
			return
		}
		filter.Active = &active
	}

	pagination, err := s.parsePagination(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	page, err := s.app.GetTeamsWithFilter(r.Context(), filter, pagination)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToResponse(page))
}

// ListActiveTeams handles GET /api/teams/active
func (s *Service) ListActiveTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.app.ListActiveTeams(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, teamsToResponse(teams))
}

// GetTeam handles GET /api/teams/{id}
func (s *Service) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	team, err := s.app.GetTeam(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, teamToResponse(team))
}

// GetTeamByName handles GET /api/teams/name/{name}
func (s *Service) GetTeamByName(w http.ResponseWriter, r *http.Request) {
	team, err := s.app.GetTeamByName(r.Context(), r.PathValue("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, teamToResponse(team))
}

// ListTeamsByCity handles GET /api/teams/city/{city}
func (s *Service) ListTeamsByCity(w http.ResponseWriter, r *http.Request) {
	teams, err := s.app.ListTeamsByCity(r.Context(), r.PathValue("city"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, teamsToResponse(teams))
}

// CreateTeam handles POST /api/teams
func (s *Service) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var payload CreateTeamPayload
	if err := s.decodeBody(w, r, &payload); err != nil {
		s.writeError(w, r, err)
		return
	}

	team, err := s.app.CreateTeam(r.Context(), payload.toRequest())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/teams/%d", team.ID))
	writeJSON(w, http.StatusCreated, teamToResponse(team))
}

// UpdateTeam handles PUT /api/teams/{id}
func (s *Service) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var payload UpdateTeamPayload
	if err := s.decodeBody(w, r, &payload); err != nil {
		s.writeError(w, r, err)
		return
	}

	team, err := s.app.UpdateTeam(r.Context(), id, payload.toPatch())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, teamToResponse(team))
}

// DeleteTeam handles DELETE /api/teams/{id}
func (s *Service) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.app.DeleteTeam(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ActivateTeam handles PATCH /api/teams/{id}/activate
func (s *Service) ActivateTeam(w http.ResponseWriter, r *http.Request) {
	s.setActive(w, r, s.app.ActivateTeam)
}

// DeactivateTeam handles PATCH /api/teams/{id}/deactivate
func (s *Service) DeactivateTeam(w http.ResponseWriter, r *http.Request) {
	s.setActive(w, r, s.app.DeactivateTeam)
}

func (s *Service) setActive(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64) (*models.Team, error)) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	team, err := fn(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, teamToResponse(team))
}

// SearchTeams handles GET /api/teams/search?q=
func (s *Service) SearchTeams(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		s.writeError(w, r, newValidationError("q", "is required"))
		return
	}

	pagination, err := s.parsePagination(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	page, err := s.app.SearchTeams(r.Context(), term, pagination)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToResponse(page))
}

// ListRecentTeams handles GET /api/teams/recent?limit=
func (s *Service) ListRecentTeams(w http.ResponseWriter, r *http.Request) {
	limit := DefaultRecentSize
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.writeError(w, r, newValidationError("limit", "must be a positive integer"))
			return
		}
		limit = n
	}

	teams, err := s.app.ListRecentTeams(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, teamsToResponse(teams))
}

// ListTeamsFoundedBetween handles GET /api/teams/founded?from=&to=
func (s *Service) ListTeamsFoundedBetween(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from, err := strconv.Atoi(query.Get("from"))
	if err != nil {
		s.writeError(w, r, newValidationError("from", "must be a year"))
		return
	}
	to, err := strconv.Atoi(query.Get("to"))
	if err != nil {
		s.writeError(w, r, newValidationError("to", "must be a year"))
		return
	}

	teams, err := s.app.ListTeamsFoundedBetween(r.Context(), from, to)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, teamsToResponse(teams))
}

// GetStats handles GET /api/teams/stats
func (s *Service) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.app.GetStats(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamStatsResponse{
		TotalTeams:    stats.TotalTeams,
		ActiveTeams:   stats.ActiveTeams,
		InactiveTeams: stats.InactiveTeams,
	})
}

// GetCityStats handles GET /api/teams/stats/cities/{city}
func (s *Service) GetCityStats(w http.ResponseWriter, r *http.Request) {
	city := r.PathValue("city")
	count, err := s.app.CountTeamsByCity(r.Context(), city)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CityStatsResponse{City: city, Teams: count})
}

// Health handles GET /api/teams/health
func (s *Service) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    StatusUp,
		Service:   s.cfg.Name,
		Timestamp: time.Now().UnixMilli(),
	}
	if s.health != nil {
		status := s.health.Check(r.Context())
		resp.Status = status.Status
		resp.Timestamp = status.Timestamp.UnixMilli()
		resp.Database = status.Database
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) parsePagination(r *http.Request) (PaginationParams, error) {
	query := r.URL.Query()
	p := PaginationParams{Size: s.cfg.DefaultPageSize}

	if v := query.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 0 {
			return p, newValidationError("page", "must be a non-negative integer")
		}
		p.Page = page
	}
	if v := query.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 {
			return p, newValidationError("size", "must be a positive integer")
		}
		p.Size = min(size, s.cfg.MaxPageSize)
	}
	if v := query.Get("sort"); v != "" {
		field, dir, _ := strings.Cut(v, ",")
		p.SortBy = TeamSortBy(strings.TrimSpace(field))
		if _, ok := p.SortBy.column(); !ok {
			return p, newValidationError("sort", fmt.Sprintf("unsupported sort field %q", field))
		}
		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "", "asc":
		case "desc":
			p.SortDesc = true
		default:
			return p, newValidationError("sort", "direction must be asc or desc")
		}
	}
	return p, nil
}

func (s *Service) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return newValidationError("body", fmt.Sprintf("malformed JSON: %v", err))
	}
	return s.validator.Struct(dst)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, newValidationError("id", "must be a positive integer")
	}
	return id, nil
}

func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := ErrorResponse{
		Timestamp: time.Now().UTC(),
		Message:   err.Error(),
		Path:      r.URL.Path,
	}

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		resp.Status = http.StatusBadRequest
		resp.Message = "validation failed"
		resp.FieldErrors = verr.Fields
	case errors.Is(err, ErrTeamNotFound):
		resp.Status = http.StatusNotFound
	case errors.Is(err, ErrDuplicateTeamName):
		resp.Status = http.StatusConflict
	default:
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		resp.Status = http.StatusInternalServerError
		resp.Message = "internal server error"
	}
	resp.Error = http.StatusText(resp.Status)

	writeJSON(w, resp.Status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
