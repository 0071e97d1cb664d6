package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/courtside/teams/go/clients"
	"github.com/courtside/teams/go/clients/sports_api_client"
	"github.com/courtside/teams/go/internal/dbconfig"
	"github.com/courtside/teams/go/internal/models"
	"github.com/courtside/teams/go/internal/sqlutil"
	"github.com/courtside/teams/go/internal/teams"
	"github.com/courtside/teams/go/internal/teams/db"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// seedTeam mirrors one entry of the JSON snapshot
type seedTeam struct {
	Name           string  `json:"name"`
	City           *string `json:"city"`
	LogoURL        *string `json:"logoUrl"`
	PrimaryColor   *string `json:"primaryColor"`
	SecondaryColor *string `json:"secondaryColor"`
	Description    *string `json:"description"`
	Coach          *string `json:"coach"`
	FoundedYear    *int    `json:"foundedYear"`
	Stadium        *string `json:"stadium"`
}

type seedResult struct {
	inserted int
	skipped  int
}

func main() {
	sourceFlag := flag.String("source", string(clients.TeamSourceFile), "where to read teams from: file or sportsapi")
	path := flag.String("file", "go/internal/assets/teams.json", "JSON array of teams to insert")
	league := flag.String("league", sports_api_client.NFLLeagueID, "api-sports league id")
	season := flag.String("season", sports_api_client.DefaultSeason, "api-sports season")
	flag.Parse()

	_ = godotenv.Load()
	ctx := context.Background()

	source, err := clients.ParseTeamSource(*sourceFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	// 1) Load the teams
	var snapshot []seedTeam
	switch source {
	case clients.TeamSourceFile:
		snapshot, err = loadFile(*path)
	case clients.TeamSourceSportsAPI:
		client := sports_api_client.NewSportsApiClient(os.Getenv("SPORTS_API_KEY"))
		snapshot, err = loadSportsAPI(ctx, client, *league, *season)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load teams: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	database, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	// 3) Insert everything or nothing
	var result seedResult
	err = sqlutil.Run(ctx, database, nil, db.New(database).WithTx, func(q *db.Queries) error {
		var err error
		result, err = seed(ctx, q, snapshot, time.Now().UTC().Truncate(time.Microsecond))
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed, nothing inserted: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded teams from %s: total=%d inserted=%d skipped=%d\n", source, len(snapshot), result.inserted, result.skipped)
}

func loadFile(path string) ([]seedTeam, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read JSON: %w", err)
	}
	var snapshot []seedTeam
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return snapshot, nil
}

// teamFetcher is satisfied by *sports_api_client.SportsApiClient
type teamFetcher interface {
	GetTeams(ctx context.Context, leagueID, season string) ([]sports_api_client.Team, error)
}

func loadSportsAPI(ctx context.Context, client teamFetcher, league, season string) ([]seedTeam, error) {
	remote, err := client.GetTeams(ctx, league, season)
	if err != nil {
		return nil, err
	}
	// Conference and division placeholders come back without a city.
	remote = lo.Filter(remote, func(t sports_api_client.Team, _ int) bool {
		return t.Name != "" && t.City != ""
	})
	return lo.Map(remote, func(t sports_api_client.Team, _ int) seedTeam {
		return fromSportsAPI(t)
	}), nil
}

func fromSportsAPI(t sports_api_client.Team) seedTeam {
	st := seedTeam{
		Name:    t.Name,
		City:    lo.EmptyableToPtr(t.City),
		LogoURL: lo.EmptyableToPtr(t.Logo),
		Coach:   lo.EmptyableToPtr(t.Coach),
		Stadium: lo.EmptyableToPtr(t.Stadium),
	}
	if t.Established > 0 {
		st.FoundedYear = lo.ToPtr(t.Established)
	}
	return st
}

// seedQuerier is the slice of db.Queries the seeder uses
type seedQuerier interface {
	ExistsActiveTeamByName(ctx context.Context, name string) (bool, error)
	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
}

// seed inserts every team whose name is not already held by an active team.
// Entries are checked with the same rules as POST /api/teams; one bad entry
// fails the whole run.
func seed(ctx context.Context, q seedQuerier, snapshot []seedTeam, now time.Time) (seedResult, error) {
	var result seedResult
	validator := teams.NewValidator()
	for i, t := range snapshot {
		if err := validator.Struct(t.payload()); err != nil {
			return result, fmt.Errorf("team #%d %q: %w", i+1, t.Name, err)
		}
		exists, err := q.ExistsActiveTeamByName(ctx, t.Name)
		if err != nil {
			return result, fmt.Errorf("check %q: %w", t.Name, err)
		}
		if exists {
			result.skipped++
			continue
		}

		_, err = q.CreateTeam(ctx, db.CreateTeamParams{
			Name:           t.Name,
			City:           sqlutil.ToSqlString(t.City),
			LogoUrl:        sqlutil.ToSqlString(t.LogoURL),
			PrimaryColor:   sqlutil.ToSqlString(orDefault(t.PrimaryColor, models.DefaultPrimaryColor)),
			SecondaryColor: sqlutil.ToSqlString(orDefault(t.SecondaryColor, models.DefaultSecondaryColor)),
			Active:         true,
			Description:    sqlutil.ToSqlString(t.Description),
			Coach:          sqlutil.ToSqlString(t.Coach),
			FoundedYear:    sqlutil.ToSqlInt32(t.FoundedYear),
			Stadium:        sqlutil.ToSqlString(t.Stadium),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return result, fmt.Errorf("insert %q: %w", t.Name, err)
		}
		result.inserted++
	}
	return result, nil
}

func (t seedTeam) payload() teams.CreateTeamPayload {
	return teams.CreateTeamPayload{
		Name:           t.Name,
		City:           t.City,
		LogoURL:        t.LogoURL,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		Description:    t.Description,
		Coach:          t.Coach,
		FoundedYear:    t.FoundedYear,
		Stadium:        t.Stadium,
	}
}

func orDefault(s *string, fallback string) *string {
	if s == nil {
		return &fallback
	}
	return s
}
