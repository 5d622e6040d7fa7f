package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/zodi-core/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration",
		Long:  "Writes a default config file to .zodi/config.yaml in the current directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}
}

func runInit() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if err := config.WriteDefault(cwd); err != nil {
		return err
	}

	fmt.Printf("Config written to %s\n", config.ConfigFilePath(cwd))
	fmt.Println("Place a content catalog at", config.ConfigDir(cwd)+"/"+config.DefaultCatalogFile, "to override the built-in predictions.")
	return nil
}
