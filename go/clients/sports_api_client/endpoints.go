package sports_api_client

const (
	// Base URL
	BaseURL = "https://v1.american-football.api-sports.io"

	// API Endpoints
	TeamsEndpoint = "/teams"

	// League IDs
	NFLLeagueID = "1"

	DefaultSeason = "2025"

	// Headers
	RapidAPIKeyHeader  = "X-RapidAPI-Key"
	RapidAPIHostHeader = "X-RapidAPI-Host"
	RapidAPIHost       = "v1.american-football.api-sports.io"
)
