// Package cmd contains all CLI commands for palpite.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/palpite/internal/config"
	"github.com/f3rmion/palpite/internal/logging"
	"github.com/f3rmion/palpite/internal/round"
	"github.com/f3rmion/palpite/internal/tui"
	"github.com/f3rmion/palpite/internal/words"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "palpite",
	Short: "Guess the hidden word one letter at a time",
	Long: `Palpite is a word guessing game for the terminal.

A hint is shown for a hidden word. Guess one letter at a time:
every occurrence of a correct letter is revealed, and you have
10 attempts to uncover the whole word.

Running 'palpite' without arguments starts the game.`,
	RunE: runGame,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/palpite)")
	rootCmd.PersistentFlags().Bool("verbose", false, "debug logging")
	rootCmd.PersistentFlags().Int64("seed", 0, "seed for word selection (0 = random)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
}

// initConfig resolves the config directory and enables PALPITE_* env vars.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("PALPITE")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings reads settings.yaml and applies flag and env overrides.
func loadSettings(configDir string) config.Settings {
	settings, err := config.LoadDir(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	if viper.IsSet("big_letters") {
		settings.BigLetters = viper.GetBool("big_letters")
	}
	if viper.IsSet("seed") {
		settings.Seed = viper.GetInt64("seed")
	}
	if viper.IsSet("log_level") {
		settings.LogLevel = viper.GetString("log_level")
	}
	if viper.IsSet("log_file") {
		settings.LogFile = viper.GetString("log_file")
	}
	if viper.GetBool("verbose") {
		settings.LogLevel = "debug"
	}

	return settings
}

// runGame starts the TUI with a fresh round.
func runGame(cmd *cobra.Command, args []string) error {
	configDir := getConfigDir()
	settings := loadSettings(configDir)

	log, closer, err := logging.Open(settings.LogPath(configDir), settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer closer.Close()

	ctrl, err := round.New(
		words.Default(),
		round.WithSeed(settings.Seed),
		round.WithSubscriber(logging.RoundEvents(log)),
	)
	if err != nil {
		return fmt.Errorf("starting round: %w", err)
	}

	log.Info().
		Str("config_dir", filepath.Clean(configDir)).
		Int64("seed", settings.Seed).
		Bool("big_letters", settings.BigLetters).
		Msg("starting game")

	p := tea.NewProgram(
		tui.NewApp(ctrl, settings),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("TUI exited")
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
