package server

import (
	"context"
	"errors"
	"esports-companion/internal/constants"
	"esports-companion/internal/domain"
	"esports-companion/internal/rpc"
	"esports-companion/internal/service"
	"esports-companion/internal/story"
	"fmt"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

var _ rpc.CompanionServiceHandler = (*CompanionServer)(nil)

type CompanionServer struct {
	standingsSvc   *service.StandingsService
	leaderboardSvc *service.LeaderboardService
	boxscoreSvc    *service.BoxscoreService
	scheduleSvc    *service.ScheduleService
	storySvc       *service.StoryService
}

func NewCompanionServer(
	standingsSvc *service.StandingsService,
	leaderboardSvc *service.LeaderboardService,
	boxscoreSvc *service.BoxscoreService,
	scheduleSvc *service.ScheduleService,
	storySvc *service.StoryService,
) *CompanionServer {
	return &CompanionServer{
		standingsSvc:   standingsSvc,
		leaderboardSvc: leaderboardSvc,
		boxscoreSvc:    boxscoreSvc,
		scheduleSvc:    scheduleSvc,
		storySvc:       storySvc,
	}
}

func (s *CompanionServer) ListGames(ctx context.Context, req *connect.Request[rpc.ListGamesRequest]) (*connect.Response[rpc.ListGamesResponse], error) {
	games := make([]domain.GameInfo, len(domain.Games))
	copy(games, domain.Games)
	return connect.NewResponse(&rpc.ListGamesResponse{Games: games}), nil
}

func (s *CompanionServer) ListTeams(ctx context.Context, req *connect.Request[rpc.ListTeamsRequest]) (*connect.Response[rpc.ListTeamsResponse], error) {
	game, err := parseGame(req.Msg.Game)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.ListTeamsResponse{Teams: s.standingsSvc.Teams(game)}), nil
}

func (s *CompanionServer) GetTeam(ctx context.Context, req *connect.Request[rpc.GetTeamRequest]) (*connect.Response[rpc.GetTeamResponse], error) {
	team, ok := s.standingsSvc.TeamWithRecord(req.Msg.TeamID)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("team %q not found", req.Msg.TeamID))
	}
	return connect.NewResponse(&rpc.GetTeamResponse{Team: team}), nil
}

func (s *CompanionServer) GetStandings(ctx context.Context, req *connect.Request[rpc.GetStandingsRequest]) (*connect.Response[rpc.GetStandingsResponse], error) {
	game, err := parseGame(req.Msg.Game)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.GetStandingsResponse{
		Game:      game,
		Standings: s.standingsSvc.Rank(game),
	}), nil
}

func (s *CompanionServer) GetLeaderboard(ctx context.Context, req *connect.Request[rpc.GetLeaderboardRequest]) (*connect.Response[rpc.GetLeaderboardResponse], error) {
	game, err := parseGame(req.Msg.Game)
	if err != nil {
		return nil, err
	}
	if req.Msg.StatKey == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("statKey is required"))
	}

	var entries []domain.LeaderboardEntry
	if req.Msg.Limit > 0 {
		entries = s.leaderboardSvc.Top(game, req.Msg.StatKey, req.Msg.Limit)
	} else {
		entries = s.leaderboardSvc.Build(game, req.Msg.StatKey)
	}

	return connect.NewResponse(&rpc.GetLeaderboardResponse{
		Game:    game,
		StatKey: req.Msg.StatKey,
		Entries: entries,
	}), nil
}

func (s *CompanionServer) GetMVP(ctx context.Context, req *connect.Request[rpc.GetMVPRequest]) (*connect.Response[rpc.GetMVPResponse], error) {
	game, err := parseGame(req.Msg.Game)
	if err != nil {
		return nil, err
	}

	resp := &rpc.GetMVPResponse{Game: game}
	if mvp, ok := s.leaderboardSvc.MVP(game); ok {
		resp.MVP = &mvp
	}
	return connect.NewResponse(resp), nil
}

func (s *CompanionServer) GetStatLeaders(ctx context.Context, req *connect.Request[rpc.GetStatLeadersRequest]) (*connect.Response[rpc.GetStatLeadersResponse], error) {
	game, err := parseGame(req.Msg.Game)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.GetStatLeadersResponse{
		Game:    game,
		Leaders: s.leaderboardSvc.StatLeaders(game),
	}), nil
}

func (s *CompanionServer) GetBoxscore(ctx context.Context, req *connect.Request[rpc.GetBoxscoreRequest]) (*connect.Response[rpc.GetBoxscoreResponse], error) {
	players, err := s.boxscoreSvc.PlayersByTeamAndMatch(req.Msg.MatchID, req.Msg.TeamID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("match_id", req.Msg.MatchID).
			Str("team_id", req.Msg.TeamID).
			Msg("failed to build boxscore")
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&rpc.GetBoxscoreResponse{
		MatchID: req.Msg.MatchID,
		TeamID:  req.Msg.TeamID,
		Won:     s.boxscoreSvc.IsWinner(req.Msg.MatchID, req.Msg.TeamID),
		Players: players,
	}), nil
}

func (s *CompanionServer) GetSchedule(ctx context.Context, req *connect.Request[rpc.GetScheduleRequest]) (*connect.Response[rpc.GetScheduleResponse], error) {
	game, err := parseGameFilter(req.Msg.Game)
	if err != nil {
		return nil, err
	}

	dates := s.scheduleSvc.Dates()
	date := req.Msg.Date
	if date == "" {
		date = s.defaultDate(dates)
	}

	return connect.NewResponse(&rpc.GetScheduleResponse{
		Dates:   dates,
		Date:    date,
		Matches: s.scheduleSvc.ByDate(date, game),
	}), nil
}

// defaultDate prefers the first day that has a live match.
func (s *CompanionServer) defaultDate(dates []string) string {
	for _, d := range dates {
		for _, m := range s.scheduleSvc.ByDate(d, "") {
			if m.Status == domain.MatchLive {
				return d
			}
		}
	}
	if len(dates) > 0 {
		return dates[0]
	}
	return ""
}

func (s *CompanionServer) GetBracket(ctx context.Context, req *connect.Request[rpc.GetBracketRequest]) (*connect.Response[rpc.GetBracketResponse], error) {
	game, err := parseGame(req.Msg.Game)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.GetBracketResponse{Bracket: s.scheduleSvc.Bracket(game)}), nil
}

func (s *CompanionServer) GetReplays(ctx context.Context, req *connect.Request[rpc.GetReplaysRequest]) (*connect.Response[rpc.GetReplaysResponse], error) {
	game, err := parseGameFilter(req.Msg.Game)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.GetReplaysResponse{Matches: s.scheduleSvc.Replays(game)}), nil
}

// GetHome returns what the landing screen shows for a game: its live
// matches and the next few upcoming ones.
func (s *CompanionServer) GetHome(ctx context.Context, req *connect.Request[rpc.GetHomeRequest]) (*connect.Response[rpc.GetHomeResponse], error) {
	game, err := parseGame(req.Msg.Game)
	if err != nil {
		return nil, err
	}

	limit := req.Msg.Limit
	switch {
	case limit < 0:
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("limit must not be negative, got %d", limit))
	case limit == 0:
		limit = constants.HomeUpcomingLimit
	}

	return connect.NewResponse(&rpc.GetHomeResponse{
		Game:     game,
		Live:     s.scheduleSvc.Live(game),
		Upcoming: s.scheduleSvc.Upcoming(game, limit),
	}), nil
}

func (s *CompanionServer) OpenStory(ctx context.Context, req *connect.Request[rpc.OpenStoryRequest]) (*connect.Response[rpc.StoryResponse], error) {
	game, err := parseGame(req.Msg.Game)
	if err != nil {
		return nil, err
	}

	id, snap, err := s.storySvc.Open(req.Msg.SessionID, story.ContentType(req.Msg.Type), game)
	if err != nil {
		return nil, storyError(err)
	}
	return connect.NewResponse(&rpc.StoryResponse{SessionID: id, Story: snap}), nil
}

func (s *CompanionServer) NextSlide(ctx context.Context, req *connect.Request[rpc.StoryRequest]) (*connect.Response[rpc.StoryResponse], error) {
	return s.storyCall(req.Msg.SessionID, s.storySvc.Next)
}

func (s *CompanionServer) PreviousSlide(ctx context.Context, req *connect.Request[rpc.StoryRequest]) (*connect.Response[rpc.StoryResponse], error) {
	return s.storyCall(req.Msg.SessionID, s.storySvc.Previous)
}

func (s *CompanionServer) CloseStory(ctx context.Context, req *connect.Request[rpc.StoryRequest]) (*connect.Response[rpc.StoryResponse], error) {
	return s.storyCall(req.Msg.SessionID, s.storySvc.Close)
}

func (s *CompanionServer) GetStory(ctx context.Context, req *connect.Request[rpc.StoryRequest]) (*connect.Response[rpc.StoryResponse], error) {
	return s.storyCall(req.Msg.SessionID, s.storySvc.Get)
}

func (s *CompanionServer) storyCall(sessionID string, fn func(string) (story.Snapshot, error)) (*connect.Response[rpc.StoryResponse], error) {
	snap, err := fn(sessionID)
	if err != nil {
		return nil, storyError(err)
	}
	return connect.NewResponse(&rpc.StoryResponse{SessionID: sessionID, Story: snap}), nil
}

func storyError(err error) error {
	if errors.Is(err, service.ErrStoryNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// parseGame maps an empty game to the default selection.
// parseGameFilter is parseGame for listings that can span every game. Empty
// and "all" both select every game.
func parseGameFilter(raw string) (domain.Game, error) {
	if raw == "" || raw == "all" {
		return "", nil
	}
	return parseGame(raw)
}

func parseGame(raw string) (domain.Game, error) {
	if raw == "" {
		return domain.DefaultGame, nil
	}
	game, ok := domain.ParseGame(raw)
	if !ok {
		return "", connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown game %q", raw))
	}
	return game, nil
}
