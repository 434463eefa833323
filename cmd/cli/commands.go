package main

import (
	"context"
	"encoding/json"
	"esports-companion/internal/api"
	"esports-companion/internal/constants"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(mvpCmd)
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(boxscoreCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(bracketCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(storyCmd)

	storyCmd.AddCommand(storyOpenCmd)
	storyCmd.AddCommand(storyNextCmd)
	storyCmd.AddCommand(storyPrevCmd)
	storyCmd.AddCommand(storyCloseCmd)
	storyCmd.AddCommand(storyShowCmd)

	storyOpenCmd.Flags().StringVar(&sessionID, "session", "", "Reopen an existing session with new content")
	scheduleCmd.Flags().StringVar(&scheduleDate, "date", "", "Day to list (YYYY-MM-DD); defaults to the live day")
	scheduleCmd.Flags().BoolVar(&allGames, "all", false, "List every game instead of --game")
	replaysCmd.Flags().BoolVar(&allGames, "all", false, "List every game instead of --game")
	homeCmd.Flags().IntVar(&homeLimit, "limit", constants.HomeUpcomingLimit, "Number of upcoming matches to show")
}

var (
	sessionID    string
	scheduleDate string
	allGames     bool
	homeLimit    int
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the games of the event",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.ListGames(ctx)
		})
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the teams of a game with their records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.ListTeams(ctx, game)
		})
	},
}

var teamCmd = &cobra.Command{
	Use:   "team <team-id>",
	Short: "Show a team with record and roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.GetTeam(ctx, args[0])
		})
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the ranked standings of a game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.GetStandings(ctx, game)
		})
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard <stat-key> [limit]",
	Short: "Rank the players of a game by a stat",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := 0
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}
			limit = n
		}
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.GetLeaderboard(ctx, game, args[0], limit)
		})
	},
}

var mvpCmd = &cobra.Command{
	Use:   "mvp",
	Short: "Show the MVP of a game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.GetMVP(ctx, game)
		})
	},
}

var leadersCmd = &cobra.Command{
	Use:   "leaders",
	Short: "Show the stat leader cards of a game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.GetStatLeaders(ctx, game)
		})
	},
}

var boxscoreCmd = &cobra.Command{
	Use:   "boxscore <match-id> <team-id>",
	Short: "Show the player rows of one team in one match",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.GetBoxscore(ctx, args[0], args[1])
		})
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "List a day's matches, live first",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := game
		if allGames {
			g = "all"
		}
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.GetSchedule(ctx, scheduleDate, g)
		})
	},
}

var bracketCmd = &cobra.Command{
	Use:   "bracket",
	Short: "Show a game's matches grouped by round",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.GetBracket(ctx, game)
		})
	},
}

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List completed matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := game
		if allGames {
			g = "all"
		}
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.GetReplays(ctx, g)
		})
	},
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show a game's live matches and what is coming up",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.GetHome(ctx, game, homeLimit)
		})
	},
}

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Open and step through story slides",
}

var storyOpenCmd = &cobra.Command{
	Use:   "open <live|highlights|standings|stats|teams>",
	Short: "Open a story for the selected game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.OpenStory(ctx, sessionID, args[0], game)
		})
	},
}

var storyNextCmd = &cobra.Command{
	Use:   "next <session-id>",
	Short: "Skip to the next slide",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.NextSlide(ctx, args[0])
		})
	},
}

var storyPrevCmd = &cobra.Command{
	Use:   "prev <session-id>",
	Short: "Go back one slide",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.PreviousSlide(ctx, args[0])
		})
	},
}

var storyCloseCmd = &cobra.Command{
	Use:   "close <session-id>",
	Short: "Close a story",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.CloseStory(ctx, args[0])
		})
	},
}

var storyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the current slide of a story",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *api.Client) (any, error) {
			return c.GetStory(ctx, args[0])
		})
	},
}

func call(fn func(ctx context.Context, c *api.Client) (any, error)) error {
	ctx, cancel := context.WithTimeout(context.Background(), constants.ClientTimeout)
	defer cancel()

	resp, err := fn(ctx, api.NewClient(host))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
