package story

import (
	"esports-companion/internal/constants"
	"esports-companion/internal/domain"
	"fmt"
)

type ContentType string

const (
	ContentLive       ContentType = "live"
	ContentHighlights ContentType = "highlights"
	ContentStandings  ContentType = "standings"
	ContentStats      ContentType = "stats"
	ContentTeams      ContentType = "teams"
)

type Slide struct {
	ID          string             `json:"id"`
	Type        ContentType        `json:"type"`
	Live        *LiveSlide         `json:"live,omitempty"`
	Standings   []domain.Standing  `json:"standings,omitempty"`
	Stat        *StatSlide         `json:"stat,omitempty"`
	Team        *domain.TeamDetail `json:"team,omitempty"`
	Placeholder string             `json:"placeholder,omitempty"`
}

// LiveSlide shows a match with both sides. Rosters are cut to a preview.
type LiveSlide struct {
	Match domain.Match      `json:"match"`
	Home  domain.TeamDetail `json:"home"`
	Away  domain.TeamDetail `json:"away"`
}

type StatSlide struct {
	StatKey string                    `json:"statKey"`
	Label   string                    `json:"label"`
	Entries []domain.LeaderboardEntry `json:"entries"`
}

type LiveMatches interface {
	Live(game domain.Game) []domain.Match
}

type Standings interface {
	Rank(game domain.Game) []domain.Standing
	Teams(game domain.Game) []domain.TeamDetail
	TeamWithRecord(teamID string) (domain.TeamDetail, bool)
}

type Leaderboard interface {
	Top(game domain.Game, statKey string, limit int) []domain.LeaderboardEntry
}

// SlideBuilder assembles the slide sequence for a content type and game.
type SlideBuilder interface {
	Build(content ContentType, game domain.Game) []Slide
}

// statsSlides are read from valorant stats whatever game is selected.
var statsSlides = []struct {
	key   string
	label string
}{
	{key: "kills", label: "KILLS LEADERS"},
	{key: "acs", label: "ACS LEADERS"},
	{key: "assists", label: "ASSISTS LEADERS"},
}

type Builder struct {
	live        LiveMatches
	standings   Standings
	leaderboard Leaderboard
	statsLimit  int
}

func NewBuilder(live LiveMatches, standings Standings, leaderboard Leaderboard, statsLimit int) *Builder {
	if statsLimit <= 0 {
		statsLimit = constants.StoryStatsLimit
	}
	return &Builder{
		live:        live,
		standings:   standings,
		leaderboard: leaderboard,
		statsLimit:  statsLimit,
	}
}

func (b *Builder) Build(content ContentType, game domain.Game) []Slide {
	switch content {
	case ContentLive:
		return b.liveSlides(game)
	case ContentHighlights:
		return []Slide{{ID: "highlights-1", Type: ContentHighlights}}
	case ContentStandings:
		return []Slide{{ID: "standings-1", Type: ContentStandings, Standings: b.standings.Rank(game)}}
	case ContentStats:
		return b.statSlides()
	case ContentTeams:
		return b.teamSlides(game)
	}
	return []Slide{placeholder("empty", content, "No content available")}
}

func (b *Builder) liveSlides(game domain.Game) []Slide {
	matches := b.live.Live(game)
	if len(matches) == 0 {
		return []Slide{placeholder("no-live", ContentLive, "No live games right now")}
	}

	slides := make([]Slide, 0, len(matches))
	for _, m := range matches {
		id := fmt.Sprintf("live-%s", m.ID)
		home, okHome := b.standings.TeamWithRecord(m.HomeTeamID)
		away, okAway := b.standings.TeamWithRecord(m.AwayTeamID)
		if !okHome || !okAway {
			slides = append(slides, placeholder(id, ContentLive, "Team not found"))
			continue
		}
		home.Roster = preview(home.Roster)
		away.Roster = preview(away.Roster)
		slides = append(slides, Slide{
			ID:   id,
			Type: ContentLive,
			Live: &LiveSlide{Match: m, Home: home, Away: away},
		})
	}
	return slides
}

func (b *Builder) statSlides() []Slide {
	slides := make([]Slide, 0, len(statsSlides))
	for _, s := range statsSlides {
		slides = append(slides, Slide{
			ID:   fmt.Sprintf("stats-%s", s.key),
			Type: ContentStats,
			Stat: &StatSlide{
				StatKey: s.key,
				Label:   s.label,
				Entries: b.leaderboard.Top(domain.GameValorant, s.key, b.statsLimit),
			},
		})
	}
	return slides
}

func (b *Builder) teamSlides(game domain.Game) []Slide {
	teams := b.standings.Teams(game)
	if len(teams) == 0 {
		return []Slide{placeholder("no-teams", ContentTeams, "No teams found")}
	}

	slides := make([]Slide, 0, len(teams))
	for i := range teams {
		slides = append(slides, Slide{
			ID:   fmt.Sprintf("team-%s", teams[i].Team.ID),
			Type: ContentTeams,
			Team: &teams[i],
		})
	}
	return slides
}

func placeholder(id string, content ContentType, msg string) Slide {
	return Slide{ID: id, Type: content, Placeholder: msg}
}

func preview(roster []domain.Player) []domain.Player {
	if len(roster) > constants.LiveRosterPreview {
		return roster[:constants.LiveRosterPreview]
	}
	return roster
}
