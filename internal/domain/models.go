package domain

type Game string

const (
	GameValorant     Game = "valorant"
	GameSmash        Game = "smash"
	GameRocketLeague Game = "rocketleague"
)

const DefaultGame = GameValorant

type GameInfo struct {
	ID        Game   `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Color     string `json:"color"`
}

// Games is the catalog in display order. The order also drives schedule sorting.
var Games = []GameInfo{
	{ID: GameValorant, Name: "Valorant", ShortName: "VAL", Color: "#FF4655"},
	{ID: GameSmash, Name: "Super Smash Bros", ShortName: "SSBU", Color: "#E4000F"},
	{ID: GameRocketLeague, Name: "Rocket League", ShortName: "RL", Color: "#0066FF"},
}

func ParseGame(s string) (Game, bool) {
	for _, g := range Games {
		if string(g.ID) == s {
			return g.ID, true
		}
	}
	return "", false
}

// Order returns the catalog position of g, or len(Games) when unknown.
func (g Game) Order() int {
	for i, info := range Games {
		if info.ID == g {
			return i
		}
	}
	return len(Games)
}

type MatchStatus string

const (
	MatchUpcoming  MatchStatus = "upcoming"
	MatchLive      MatchStatus = "live"
	MatchCompleted MatchStatus = "completed"
)

// Order ranks live matches first, then upcoming, then completed.
func (s MatchStatus) Order() int {
	switch s {
	case MatchLive:
		return 0
	case MatchUpcoming:
		return 1
	case MatchCompleted:
		return 2
	default:
		return 3
	}
}

type Match struct {
	ID         string      `json:"id"`
	Game       Game        `json:"game"`
	HomeTeamID string      `json:"homeTeamId"`
	AwayTeamID string      `json:"awayTeamId"`
	HomeScore  int         `json:"homeScore"`
	AwayScore  int         `json:"awayScore"`
	Status     MatchStatus `json:"status"`
	Round      string      `json:"round,omitempty"`
	Date       string      `json:"date"` // YYYY-MM-DD
	Time       string      `json:"time"`
	StreamURL  string      `json:"streamUrl,omitempty"`
}

// Team carries static identity only; the record is always derived from matches.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Game      Game   `json:"game"`
	Color     string `json:"color"`
	Region    string `json:"region"`
}

type TeamRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

func (r TeamRecord) Played() int {
	return r.Wins + r.Losses
}

func (r TeamRecord) WinPercentage() float64 {
	if r.Played() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Played())
}

type Standing struct {
	Position      int        `json:"position"`
	Team          Team       `json:"team"`
	Record        TeamRecord `json:"record"`
	WinPercentage float64    `json:"winPercentage"`
}

type TeamDetail struct {
	Team   Team       `json:"team"`
	Record TeamRecord `json:"record"`
	Roster []Player   `json:"roster"`
}

type Bracket struct {
	Game        Game    `json:"game"`
	RoundRobin  []Match `json:"roundRobin"`
	Eliminators []Match `json:"eliminators"`
	Semifinals  []Match `json:"semifinals"`
	Finals      []Match `json:"finals"`
}

// GamePlayerStats is one generated boxscore row. Stats keys depend on the game.
type GamePlayerStats struct {
	PlayerID string         `json:"playerId"`
	Name     string         `json:"name"`
	Username string         `json:"username"`
	Image    string         `json:"image"`
	Stats    map[string]int `json:"stats"`
}
