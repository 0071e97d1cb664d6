package sports_api_client

import (
	"github.com/courtside/teams/go/clients"
)

type SportsApiClient struct {
	*clients.BaseClient
}

func NewSportsApiClient(apiKey string) *SportsApiClient {
	return NewSportsApiClientWithBaseURL(BaseURL, apiKey)
}

// NewSportsApiClientWithBaseURL points the client at another host, e.g. a test server.
func NewSportsApiClientWithBaseURL(baseURL, apiKey string) *SportsApiClient {
	client := &SportsApiClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	client.SetHeader(RapidAPIKeyHeader, apiKey)
	client.SetHeader(RapidAPIHostHeader, RapidAPIHost)

	return client
}
