package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the game history",
	Long: `Display the best recorded games.

The in-game high-score table lasts only as long as the program runs; this
command reads the persistent history written by 'play' and 'serve'.

Examples:
  blockfall scores
  blockfall scores --limit 25
  blockfall scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the history in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of games to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearSessions(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil

	case flagScoresTUI:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, playerName(), width, height)
	}

	records, err := store.TopSessions(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving history: %w", err)
	}

	fmt.Println("Blockfall - High Scores")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %s\n", "Rank", "Score", "Level", "Rows", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")
	for i, r := range records {
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-12s  %s\n",
			i+1, r.Score, r.Level, r.Rows, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.0f  Rows cleared: %d\n",
			stats.Games, stats.HighScore, stats.AvgScore, stats.TotalRows)
	}
	return nil
}
