package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// playerSummariesResponse mirrors the ISteamUser GetPlayerSummaries envelope.
// The API returns steam ids as strings.
type playerSummariesResponse struct {
	Response struct {
		Players []struct {
			SteamID     string `json:"steamid"`
			PersonaName string `json:"personaname"`
		} `json:"players"`
	} `json:"response"`
}

// APIClient is a Steam Web API client implementing ProfileClient.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
	apiKey     string
}

var _ ProfileClient = (*APIClient)(nil)

// NewClient creates a new Steam Web API client.
func NewClient(apiKey string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    "https://api.steampowered.com",
		apiKey:     apiKey,
	}
}

// GetPlayerSummaries resolves persona names for up to 100 steam ids in one
// batched call. Ids the API does not know are simply absent from the result.
func (c *APIClient) GetPlayerSummaries(ctx context.Context, steamIDs []uint64) (map[uint64]string, error) {
	ids := make([]string, 0, len(steamIDs))
	for _, id := range steamIDs {
		ids = append(ids, strconv.FormatUint(id, 10))
	}

	url := fmt.Sprintf("%s/ISteamUser/GetPlayerSummaries/v0002/", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	q := req.URL.Query()
	q.Set("key", c.apiKey)
	q.Set("steamids", strings.Join(ids, ","))
	req.URL.RawQuery = q.Encode()

	log.Debug("Requesting player summaries from Steam API", "count", len(steamIDs))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch player summaries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d fetching player summaries", resp.StatusCode)
	}

	var summaries playerSummariesResponse
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, fmt.Errorf("failed to decode player summaries: %w", err)
	}

	names := make(map[uint64]string, len(summaries.Response.Players))
	for _, p := range summaries.Response.Players {
		id, err := strconv.ParseUint(p.SteamID, 10, 64)
		if err != nil {
			log.Warn("Skipping unparsable steam id in summaries response", "steamid", p.SteamID)
			continue
		}
		names[id] = p.PersonaName
	}
	log.Info("Resolved player summaries", "requested", len(steamIDs), "resolved", len(names))
	return names, nil
}
