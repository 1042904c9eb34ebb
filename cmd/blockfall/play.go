package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game on the main menu.

Controls (default bindings, see 'blockfall config show'):
  A/Left         - Move left
  D/Right/Enter  - Move right, confirm in menus
  W/Up           - Rotate, cursor up in menus
  S/Down         - Soft drop, cursor down in menus
  Ctrl+S         - Save a text screenshot
  Q/Esc/Ctrl+C   - Quit

Finished games are appended to the history database.

Examples:
  blockfall play
  blockfall play --fps 20
  blockfall play --seed 1234`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, logFile, err := newFileLogger("blockfall", appConfig.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	rc := appConfig.Runtime()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	opts := tui.Options{
		Runtime: rc,
		Keys:    appConfig.Keys,
		Logger:  logger,
		Player:  playerName(),
	}

	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		// Continue without storage - the game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("history disabled", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	logger.Info("starting game", "tick_rate", rc.TickRate, "seed", rc.Seed)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playerName returns the local user name recorded with each game.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
