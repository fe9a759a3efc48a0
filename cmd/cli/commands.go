package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(stopServerCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the persisted matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/matches")
	},
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the ADR leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/stats/top")
	},
}

var playerCmd = &cobra.Command{
	Use:   "player [steam-id]",
	Short: "Show one player's lifetime stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/stats/player?steam_id="+args[0])
	},
}

var stopServerCmd = &cobra.Command{
	Use:   "stop-server [server-id]",
	Short: "Stop a game server (the configured one if no id is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/api/servers/stop"
		if len(args) == 1 {
			endpoint += "?server_id=" + args[0]
		}
		return performRequest(http.MethodPost, endpoint)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics")
	},
}

func performRequest(method, endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "TOKEN "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
