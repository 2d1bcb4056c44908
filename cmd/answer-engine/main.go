// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the answer-engine CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/answer-engine/internal/secrets"
	"github.com/pdiddy/answer-engine/internal/shell"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the answer-engine CLI. Run with no
// subcommand it starts the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "answer-engine",
	Short: "Answer questions with live web search and an LLM",
	Long: `answer-engine answers a question by searching the public web, bundling the
top results into a grounded prompt, and dispatching it to a generation
backend (a local Ollama server or the OpenAI API). The answer is returned
together with the list of sources it was grounded on.

Run with no arguments for an interactive shell, or use the ask and search
subcommands for one-shot invocations.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd, os.Stderr)
		if err != nil {
			return err
		}
		return shell.New(engine, os.Stdin, os.Stdout).Run(context.Background())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./answer-engine.yaml or ~/.config/answer-engine/config.yaml)")
	rootCmd.PersistentFlags().String("backend", "", "generation backend: ollama or openai (default ollama)")
	rootCmd.PersistentFlags().Int("top-k", 0, "maximum number of sources to retrieve (default 5)")
	rootCmd.PersistentFlags().String("model", "", "model identifier for the selected backend")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("answer-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "answer-engine"))
		}
	}

	viper.SetEnvPrefix("ANSWER_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
