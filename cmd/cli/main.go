package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	token   string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gobank-cli",
		Short: "GoBank CLI tool",
		Long:  `A command line interface for interacting with the GoBank API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoBank API")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated endpoints")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	}

	statementCmd := &cobra.Command{
		Use:   "statement",
		Short: "Statement operations",
	}

	var accountID, outPath string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Download the full transaction history as CSV",
		Run: func(cmd *cobra.Command, args []string) {
			exportStatement(accountID, outPath)
		},
	}
	exportCmd.Flags().StringVar(&accountID, "account", "", "Account ID to export")
	exportCmd.Flags().StringVar(&outPath, "out", "", "Output file (defaults to the server-provided name)")
	exportCmd.MarkFlagRequired("account")

	statementCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(statementCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func checkHealth() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/ready")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Health check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Health check PASSED\n")
	fmt.Printf("Status: %s\n", result["status"])
}

func exportStatement(accountID, outPath string) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/transactions/report/export?account_id="+accountID, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("Export FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	if outPath == "" {
		outPath = fileNameFromDisposition(resp.Header.Get("Content-Disposition"))
	}

	f, err := os.Create(outPath)
	if err != nil {
		fmt.Printf("Failed to create %s: %v\n", outPath, err)
		os.Exit(1)
	}
	defer f.Close()

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		fmt.Printf("Failed to write %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Saved %d bytes to %s\n", n, outPath)
}

func fileNameFromDisposition(disposition string) string {
	const marker = `filename="`
	if i := strings.Index(disposition, marker); i >= 0 {
		rest := disposition[i+len(marker):]
		if j := strings.IndexByte(rest, '"'); j >= 0 {
			return rest[:j]
		}
	}

	return "statement.csv"
}
