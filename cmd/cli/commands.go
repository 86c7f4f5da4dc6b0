package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	userID   string
	username string
)

func init() {
	submitCmd.Flags().StringVar(&userID, "user-id", "", "Id of the user submitting the jump")
	submitCmd.Flags().StringVar(&username, "username", "", "Name of the user submitting the jump")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(jumpCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(tournamentCmd)
	rootCmd.AddCommand(activeCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit <replay code>",
	Short: "Submit a jump to the running tournaments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{"replayCode": args[0]}
		if userID != "" || username != "" {
			body["user"] = map[string]string{"id": userID, "username": username}
		}
		return performRequest(http.MethodPost, "/jump", body)
	},
}

var jumpCmd = &cobra.Command{
	Use:   "jump <replay code>",
	Short: "Show an accepted jump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/jump/"+url.PathEscape(args[0]), nil)
	},
}

var replayCmd = &cobra.Command{
	Use:   "replay <replay code>",
	Short: "Show what the replay service reports for a replay",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/replay/"+url.PathEscape(args[0]), nil)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <replay code>",
	Short: "Delete an accepted jump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodDelete, "/jump/"+url.PathEscape(args[0]), nil)
	},
}

var tournamentCmd = &cobra.Command{
	Use:   "tournament <code>",
	Short: "Show a tournament and its accepted jumps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/tournament/"+url.PathEscape(args[0]), nil)
	},
}

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "List the tournaments currently accepting jumps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/tournaments/active", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

func performRequest(method, endpoint string, payload any) error {
	url := host + endpoint
	fmt.Printf("Making %s request to %s\n", method, url)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
