// Package main provides the entry point for the Resume Engine HTTP API
// server and offline scoring CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_engine",
	Short: "Resume Engine HTTP API Server",
	Long:  "Resume Engine scores job descriptions against a verified career ledger and generates validated, zero-fabrication LaTeX resumes via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
