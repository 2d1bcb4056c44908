// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config resolves the configuration the engine would run with (defaults,
config file, environment, flags) and prints it as YAML. The OpenAI key is
redacted.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	if cfg.Generate.OpenAIKey != "" {
		cfg.Generate.OpenAIKey = "(redacted)"
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
