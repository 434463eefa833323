package domain

// Player holds exactly one populated stat block, the one matching Game.
type Player struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Username     string             `json:"username"`
	TeamID       string             `json:"teamId"`
	Game         Game               `json:"game"`
	Image        string             `json:"image"`
	Valorant     *ValorantStats     `json:"valorantStats,omitempty"`
	Smash        *SmashStats        `json:"smashStats,omitempty"`
	RocketLeague *RocketLeagueStats `json:"rocketLeagueStats,omitempty"`
}

type ValorantStats struct {
	KD               float64 `json:"kd"`
	ACS              int     `json:"acs"`
	HeadshotPercent  int     `json:"headshotPercent"`
	Kills            int     `json:"kills"`
	Deaths           int     `json:"deaths"`
	Assists          int     `json:"assists"`
	AgentUsage       string  `json:"agentUsage"`
	ClutchWinPercent int     `json:"clutchWinPercent"`
	MVPs             int     `json:"mvps"`
}

type SmashStats struct {
	Wins             int    `json:"wins"`
	Losses           int    `json:"losses"`
	MainCharacter    string `json:"mainCharacter"`
	DamagePerMatch   int    `json:"damagePerMatch"`
	StocksTaken      int    `json:"stocksTaken"`
	StocksLost       int    `json:"stocksLost"`
	AvgMatchDuration string `json:"avgMatchDuration"`
	// 0 means no recorded placement
	TournamentPlacements int `json:"tournamentPlacements,omitempty"`
	SetWinPercent        int `json:"setWinPercent"`
}

type RocketLeagueStats struct {
	Goals             int `json:"goals"`
	Assists           int `json:"assists"`
	Saves             int `json:"saves"`
	ShotAccuracy      int `json:"shotAccuracy"`
	BoostUsage        int `json:"boostUsage"`
	Demos             int `json:"demos"`
	Wins              int `json:"wins"`
	Losses            int `json:"losses"`
	MVPs              int `json:"mvps"`
	AvgPointsPerMatch int `json:"avgPointsPerMatch"`
}

// StatValue is a single field read out of a stat block. Text is set for
// string fields (agentUsage, mainCharacter, avgMatchDuration), which rank as 0.
type StatValue struct {
	Number  float64
	Text    string
	Present bool
}

func number(v int) StatValue {
	return StatValue{Number: float64(v), Present: true}
}

func text(s string) StatValue {
	return StatValue{Text: s, Present: true}
}

// Stat reads key from the player's own stat block. Keys that the block does
// not define come back with Present unset.
func (p Player) Stat(key string) StatValue {
	switch p.Game {
	case GameValorant:
		if p.Valorant != nil {
			return p.Valorant.stat(key)
		}
	case GameSmash:
		if p.Smash != nil {
			return p.Smash.stat(key)
		}
	case GameRocketLeague:
		if p.RocketLeague != nil {
			return p.RocketLeague.stat(key)
		}
	}
	return StatValue{}
}

func (s *ValorantStats) stat(key string) StatValue {
	switch key {
	case "kd":
		return StatValue{Number: s.KD, Present: true}
	case "acs":
		return number(s.ACS)
	case "headshotPercent":
		return number(s.HeadshotPercent)
	case "kills":
		return number(s.Kills)
	case "deaths":
		return number(s.Deaths)
	case "assists":
		return number(s.Assists)
	case "agentUsage":
		return text(s.AgentUsage)
	case "clutchWinPercent":
		return number(s.ClutchWinPercent)
	case "mvps":
		return number(s.MVPs)
	}
	return StatValue{}
}

func (s *SmashStats) stat(key string) StatValue {
	switch key {
	case "wins":
		return number(s.Wins)
	case "losses":
		return number(s.Losses)
	case "mainCharacter":
		return text(s.MainCharacter)
	case "damagePerMatch":
		return number(s.DamagePerMatch)
	case "stocksTaken":
		return number(s.StocksTaken)
	case "stocksLost":
		return number(s.StocksLost)
	case "avgMatchDuration":
		return text(s.AvgMatchDuration)
	case "tournamentPlacements":
		if s.TournamentPlacements == 0 {
			return StatValue{}
		}
		return number(s.TournamentPlacements)
	case "setWinPercent":
		return number(s.SetWinPercent)
	}
	return StatValue{}
}

func (s *RocketLeagueStats) stat(key string) StatValue {
	switch key {
	case "goals":
		return number(s.Goals)
	case "assists":
		return number(s.Assists)
	case "saves":
		return number(s.Saves)
	case "shotAccuracy":
		return number(s.ShotAccuracy)
	case "boostUsage":
		return number(s.BoostUsage)
	case "demos":
		return number(s.Demos)
	case "wins":
		return number(s.Wins)
	case "losses":
		return number(s.Losses)
	case "mvps":
		return number(s.MVPs)
	case "avgPointsPerMatch":
		return number(s.AvgPointsPerMatch)
	}
	return StatValue{}
}

type LeaderboardEntry struct {
	Rank    int     `json:"rank"`
	Player  Player  `json:"player"`
	StatKey string  `json:"statKey"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

type StatLeader struct {
	Title   string            `json:"title"`
	StatKey string            `json:"statKey"`
	Leader  *LeaderboardEntry `json:"leader,omitempty"`
}
