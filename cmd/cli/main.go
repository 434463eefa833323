package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host string
	game string
)

var rootCmd = &cobra.Command{
	Use:   "companion",
	Short: "A CLI for the esports companion service",
	Long: `A command-line interface for querying standings, leaderboards,
boxscores and schedules, and for stepping through story slides.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVarP(&game, "game", "g", "valorant", "Game to query (valorant, smash, rocketleague)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
