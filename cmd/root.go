package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/twentyone/internal/config"
	"github.com/arcanaland/twentyone/internal/game"
	"github.com/arcanaland/twentyone/internal/input"
	"github.com/arcanaland/twentyone/internal/render"
	"github.com/arcanaland/twentyone/internal/validator"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "twentyone",
	Short: "Play blackjack against a scripted dealer",
	Long: `Twentyone is a terminal blackjack game against a dealer who draws to 16
and stands on 17.

Each round deals two cards to you and to the dealer, one of the dealer's cards
face down. Enter a number to pick a move:

  1  Hit     draw another card
  2  Stand   end your turn
  3  Split   only offered for a pair, not playable yet
  4  Exit    quit the game

Rounds continue until you exit or the input ends.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		v := validator.NewValidator(config.GetConfigFilePath())
		v.ValidateConfig(cfg)
		if len(v.Results.Errors) > 0 {
			return fmt.Errorf("invalid configuration: %s", strings.Join(v.Results.Errors, "; "))
		}

		logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
		logger.Debug("config loaded", "decks", cfg.Decks, "round_pause", cfg.RoundPause.String())

		session := &game.Session{
			In: input.NewReader(cmd.InOrStdin()),
			Display: render.New(cmd.OutOrStdout(), render.Options{
				Color:         cfg.Color,
				CardBackColor: cfg.CardBackColor,
			}),
			Notices: cmd.ErrOrStderr(),
			Logger:  logger,
			Decks:   cfg.Decks,
			Pause:   cfg.RoundPause.Duration,
		}
		return session.Run()
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
