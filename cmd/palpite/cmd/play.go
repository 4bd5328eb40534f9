package cmd

import "github.com/spf13/cobra"

var playCmd = &cobra.Command{
	Use:     "play",
	Aliases: []string{"p", "jogar"},
	Short:   "Start the game",
	Long: `Start the word guessing game.

Controls:
  a-z      Type a letter
  Enter    Confirm the guess
  Ctrl+R   Restart the round (asks for confirmation)
  ?        Help
  Esc      Quit`,
	RunE: runGame,
}

func init() {
	rootCmd.AddCommand(playCmd)
}
