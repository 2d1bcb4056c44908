// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/answer-engine/internal/httputil"
	"github.com/pdiddy/answer-engine/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Run only the retrieval stage and print the results",
	Long: `Search queries the public web (DuckDuckGo Instant Answers, with a
Wikipedia fallback) for a question and prints the top results without
invoking a generation backend. Useful for checking what grounding a
question would get.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("provide a query, e.g.: answer-engine search quantum computing")
	}

	cfg := loadConfig(cmd)
	client := httputil.NewClient(cfg.Search.HTTPConfig)
	primary := &search.DuckDuckGoBackend{Client: client}
	fallback := &search.WikipediaBackend{Client: client}

	results := search.Search(context.Background(), query, primary, fallback, cfg.Search, os.Stderr)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return search.FormatJSON(results, os.Stdout)
	}
	search.FormatTable(results, os.Stdout)
	return nil
}
