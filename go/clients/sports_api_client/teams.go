package sports_api_client

import (
	"context"
	"fmt"
	"net/url"
)

type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

type Team struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	City        string  `json:"city"`
	Coach       string  `json:"coach"`
	Owner       string  `json:"owner"`
	Stadium     string  `json:"stadium"`
	Established int     `json:"established"`
	Logo        string  `json:"logo"`
	Country     Country `json:"country"`
}

type TeamsResponse struct {
	Get        string                 `json:"get"`
	Parameters map[string]interface{} `json:"parameters"`
	Errors     interface{}            `json:"errors"`
	Results    int                    `json:"results"`
	Response   []Team                 `json:"response"`
}

// GetTeams lists the teams of a league in a season
func (c *SportsApiClient) GetTeams(ctx context.Context, leagueID, season string) ([]Team, error) {
	query := url.Values{"league": {leagueID}, "season": {season}}
	var response TeamsResponse
	if err := c.GetJSON(ctx, TeamsEndpoint+"?"+query.Encode(), &response); err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	// api-sports reports failures in the body with a 200: an empty list
	// when fine, an object keyed by parameter when not.
	if errMap, ok := response.Errors.(map[string]interface{}); ok && len(errMap) > 0 {
		return nil, fmt.Errorf("API returned errors: %v", response.Errors)
	}

	return response.Response, nil
}
