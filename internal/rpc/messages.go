package rpc

import (
	"esports-companion/internal/domain"
	"esports-companion/internal/story"
)

type ListGamesRequest struct{}

type ListGamesResponse struct {
	Games []domain.GameInfo `json:"games"`
}

type ListTeamsRequest struct {
	Game string `json:"game"`
}

type ListTeamsResponse struct {
	Teams []domain.TeamDetail `json:"teams"`
}

type GetTeamRequest struct {
	TeamID string `json:"teamId"`
}

type GetTeamResponse struct {
	Team domain.TeamDetail `json:"team"`
}

type GetStandingsRequest struct {
	Game string `json:"game"`
}

type GetStandingsResponse struct {
	Game      domain.Game       `json:"game"`
	Standings []domain.Standing `json:"standings"`
}

type GetLeaderboardRequest struct {
	Game    string `json:"game"`
	StatKey string `json:"statKey"`
	Limit   int    `json:"limit,omitempty"`
}

type GetLeaderboardResponse struct {
	Game    domain.Game               `json:"game"`
	StatKey string                    `json:"statKey"`
	Entries []domain.LeaderboardEntry `json:"entries"`
}

type GetMVPRequest struct {
	Game string `json:"game"`
}

// GetMVPResponse leaves MVP nil when the game has no players.
type GetMVPResponse struct {
	Game domain.Game              `json:"game"`
	MVP  *domain.LeaderboardEntry `json:"mvp,omitempty"`
}

type GetStatLeadersRequest struct {
	Game string `json:"game"`
}

type GetStatLeadersResponse struct {
	Game    domain.Game         `json:"game"`
	Leaders []domain.StatLeader `json:"leaders"`
}

type GetBoxscoreRequest struct {
	MatchID string `json:"matchId"`
	TeamID  string `json:"teamId"`
}

type GetBoxscoreResponse struct {
	MatchID string                   `json:"matchId"`
	TeamID  string                   `json:"teamId"`
	Won     bool                     `json:"won"`
	Players []domain.GamePlayerStats `json:"players"`
}

type GetScheduleRequest struct {
	Date string `json:"date,omitempty"`
	Game string `json:"game,omitempty"`
}

type GetScheduleResponse struct {
	Dates   []string       `json:"dates"`
	Date    string         `json:"date"`
	Matches []domain.Match `json:"matches"`
}

type GetBracketRequest struct {
	Game string `json:"game"`
}

type GetBracketResponse struct {
	Bracket domain.Bracket `json:"bracket"`
}

type GetReplaysRequest struct {
	// Game is empty or "all" for every game.
	Game string `json:"game,omitempty"`
}

type GetReplaysResponse struct {
	Matches []domain.Match `json:"matches"`
}

type GetHomeRequest struct {
	Game  string `json:"game"`
	Limit int    `json:"limit,omitempty"`
}

type GetHomeResponse struct {
	Game     domain.Game    `json:"game"`
	Live     []domain.Match `json:"live"`
	Upcoming []domain.Match `json:"upcoming"`
}

type OpenStoryRequest struct {
	// SessionID reopens an existing session with new content or game.
	SessionID string `json:"sessionId,omitempty"`
	Type      string `json:"type"`
	Game      string `json:"game,omitempty"`
}

type StoryRequest struct {
	SessionID string `json:"sessionId"`
}

type StoryResponse struct {
	SessionID string         `json:"sessionId"`
	Story     story.Snapshot `json:"story"`
}
