// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/answer-engine/pkg/types"
)

var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Answer a single question and exit",
	Long: `Ask answers one question: it searches the web, builds a grounded prompt
from the top results, generates an answer, and prints it with the source
list. A generation failure exits non-zero.`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().Bool("json", false, "output the answer as JSON")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("provide a question, e.g.: answer-engine ask what is quantum computing")
	}

	engine, err := buildEngine(cmd, os.Stderr)
	if err != nil {
		return err
	}

	ans, err := engine.Answer(context.Background(), question)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ans)
	}

	printAnswer(ans)
	return nil
}

// printAnswer writes the answer text and enumerated sources to stdout.
func printAnswer(ans types.Answer) {
	fmt.Println(ans.Text)

	if len(ans.Sources) == 0 {
		return
	}
	fmt.Printf("\nSources (%d):\n", len(ans.Sources))
	for i, src := range ans.Sources {
		fmt.Printf("  %d. %s\n", i+1, src.Title)
		if src.Link != "" {
			fmt.Printf("     %s\n", src.Link)
		}
	}
}
