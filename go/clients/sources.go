package clients

import "fmt"

// TeamSource names where the seed tool reads teams from
type TeamSource string

const (
	// TeamSourceFile reads a JSON snapshot from disk
	TeamSourceFile TeamSource = "file"

	// TeamSourceSportsAPI fetches a league's teams from api-sports.io
	TeamSourceSportsAPI TeamSource = "sportsapi"
)

// ParseTeamSource validates a -source flag value
func ParseTeamSource(s string) (TeamSource, error) {
	switch source := TeamSource(s); source {
	case TeamSourceFile, TeamSourceSportsAPI:
		return source, nil
	default:
		return "", fmt.Errorf("unknown team source %q, want %q or %q", s, TeamSourceFile, TeamSourceSportsAPI)
	}
}
