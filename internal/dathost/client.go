package dathost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ErrStopServer is returned when the stop command does not report a 2xx
// status. Only 2xx counts as success for any upstream call.
var ErrStopServer = errors.New("failed to stop game server")

// APIClient is a DatHost API client implementing GameServerClient.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
	username   string
	password   string
}

var _ GameServerClient = (*APIClient)(nil)

// NewClient creates a new DatHost client. The timeout is generous because
// demo files for long matches run into the hundreds of megabytes.
func NewClient(username, password string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Minute},
		BaseURL:    "https://dathost.net/api/0.1",
		username:   username,
		password:   password,
	}
}

// GetFile downloads a file from a game server instance.
func (c *APIClient) GetFile(ctx context.Context, serverID, path string) ([]byte, error) {
	url := fmt.Sprintf("%s/game-servers/%s/files/%s", c.BaseURL, serverID, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	log.Debug("Fetching file from DatHost", "serverID", serverID, "path", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file %q: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d fetching file %q", resp.StatusCode, path)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file body: %w", err)
	}
	log.Info("Fetched file from DatHost", "serverID", serverID, "path", path, "bytes", len(data))
	return data, nil
}

// SendConsoleCommand runs one console line on a game server instance.
func (c *APIClient) SendConsoleCommand(ctx context.Context, serverID, line string) error {
	url := fmt.Sprintf("%s/game-servers/%s/console", c.BaseURL, serverID)

	form := neturl.Values{"line": {line}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send console command: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d sending console command", resp.StatusCode)
	}
	log.Debug("Sent console command", "serverID", serverID, "line", line)
	return nil
}

// StopServer stops a game server instance.
func (c *APIClient) StopServer(ctx context.Context, serverID string) error {
	url := fmt.Sprintf("%s/game-servers/%s/stop", c.BaseURL, serverID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStopServer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", ErrStopServer, resp.StatusCode)
	}
	log.Info("Stopped game server", "serverID", serverID)
	return nil
}
