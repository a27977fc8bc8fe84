package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"repodepot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration repo-depot would run with, after the config file,
environment variables and flags are applied. The GitHub token is never printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, v)
		if err != nil {
			return err
		}
		cloneDir, err := config.ResolveCloneDir(cfg)
		if err != nil {
			return err
		}
		cfg.CloneDir = cloneDir

		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Print(string(data))
		if cfg.Search.Token != "" {
			fmt.Println("# GitHub token: set")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
