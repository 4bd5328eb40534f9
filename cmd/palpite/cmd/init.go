package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/palpite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default settings file",
	Long: `Create settings.yaml with the default settings in your config directory.

You can then edit it to turn block letters off, fix the word seed
or change where logs are written.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing settings")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.SettingsFile)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("settings already exist: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
