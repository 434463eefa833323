package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const ServiceName = "esports.v1.CompanionService"

const (
	ListGamesProcedure      = "/esports.v1.CompanionService/ListGames"
	ListTeamsProcedure      = "/esports.v1.CompanionService/ListTeams"
	GetTeamProcedure        = "/esports.v1.CompanionService/GetTeam"
	GetStandingsProcedure   = "/esports.v1.CompanionService/GetStandings"
	GetLeaderboardProcedure = "/esports.v1.CompanionService/GetLeaderboard"
	GetMVPProcedure         = "/esports.v1.CompanionService/GetMVP"
	GetStatLeadersProcedure = "/esports.v1.CompanionService/GetStatLeaders"
	GetBoxscoreProcedure    = "/esports.v1.CompanionService/GetBoxscore"
	GetScheduleProcedure    = "/esports.v1.CompanionService/GetSchedule"
	GetBracketProcedure     = "/esports.v1.CompanionService/GetBracket"
	GetReplaysProcedure     = "/esports.v1.CompanionService/GetReplays"
	GetHomeProcedure        = "/esports.v1.CompanionService/GetHome"
	OpenStoryProcedure      = "/esports.v1.CompanionService/OpenStory"
	NextSlideProcedure      = "/esports.v1.CompanionService/NextSlide"
	PreviousSlideProcedure  = "/esports.v1.CompanionService/PreviousSlide"
	CloseStoryProcedure     = "/esports.v1.CompanionService/CloseStory"
	GetStoryProcedure       = "/esports.v1.CompanionService/GetStory"
)

type CompanionServiceHandler interface {
	ListGames(context.Context, *connect.Request[ListGamesRequest]) (*connect.Response[ListGamesResponse], error)
	ListTeams(context.Context, *connect.Request[ListTeamsRequest]) (*connect.Response[ListTeamsResponse], error)
	GetTeam(context.Context, *connect.Request[GetTeamRequest]) (*connect.Response[GetTeamResponse], error)
	GetStandings(context.Context, *connect.Request[GetStandingsRequest]) (*connect.Response[GetStandingsResponse], error)
	GetLeaderboard(context.Context, *connect.Request[GetLeaderboardRequest]) (*connect.Response[GetLeaderboardResponse], error)
	GetMVP(context.Context, *connect.Request[GetMVPRequest]) (*connect.Response[GetMVPResponse], error)
	GetStatLeaders(context.Context, *connect.Request[GetStatLeadersRequest]) (*connect.Response[GetStatLeadersResponse], error)
	GetBoxscore(context.Context, *connect.Request[GetBoxscoreRequest]) (*connect.Response[GetBoxscoreResponse], error)
	GetSchedule(context.Context, *connect.Request[GetScheduleRequest]) (*connect.Response[GetScheduleResponse], error)
	GetBracket(context.Context, *connect.Request[GetBracketRequest]) (*connect.Response[GetBracketResponse], error)
	GetReplays(context.Context, *connect.Request[GetReplaysRequest]) (*connect.Response[GetReplaysResponse], error)
	GetHome(context.Context, *connect.Request[GetHomeRequest]) (*connect.Response[GetHomeResponse], error)
	OpenStory(context.Context, *connect.Request[OpenStoryRequest]) (*connect.Response[StoryResponse], error)
	NextSlide(context.Context, *connect.Request[StoryRequest]) (*connect.Response[StoryResponse], error)
	PreviousSlide(context.Context, *connect.Request[StoryRequest]) (*connect.Response[StoryResponse], error)
	CloseStory(context.Context, *connect.Request[StoryRequest]) (*connect.Response[StoryResponse], error)
	GetStory(context.Context, *connect.Request[StoryRequest]) (*connect.Response[StoryResponse], error)
}

// NewCompanionServiceHandler builds the connect handlers for svc and returns
// the path prefix to mount them on.
func NewCompanionServiceHandler(svc CompanionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	handlers := map[string]http.Handler{
		ListGamesProcedure:      connect.NewUnaryHandler(ListGamesProcedure, svc.ListGames, opts...),
		ListTeamsProcedure:      connect.NewUnaryHandler(ListTeamsProcedure, svc.ListTeams, opts...),
		GetTeamProcedure:        connect.NewUnaryHandler(GetTeamProcedure, svc.GetTeam, opts...),
		GetStandingsProcedure:   connect.NewUnaryHandler(GetStandingsProcedure, svc.GetStandings, opts...),
		GetLeaderboardProcedure: connect.NewUnaryHandler(GetLeaderboardProcedure, svc.GetLeaderboard, opts...),
		GetMVPProcedure:         connect.NewUnaryHandler(GetMVPProcedure, svc.GetMVP, opts...),
		GetStatLeadersProcedure: connect.NewUnaryHandler(GetStatLeadersProcedure, svc.GetStatLeaders, opts...),
		GetBoxscoreProcedure:    connect.NewUnaryHandler(GetBoxscoreProcedure, svc.GetBoxscore, opts...),
		GetScheduleProcedure:    connect.NewUnaryHandler(GetScheduleProcedure, svc.GetSchedule, opts...),
		GetBracketProcedure:     connect.NewUnaryHandler(GetBracketProcedure, svc.GetBracket, opts...),
		GetReplaysProcedure:     connect.NewUnaryHandler(GetReplaysProcedure, svc.GetReplays, opts...),
		GetHomeProcedure:        connect.NewUnaryHandler(GetHomeProcedure, svc.GetHome, opts...),
		OpenStoryProcedure:      connect.NewUnaryHandler(OpenStoryProcedure, svc.OpenStory, opts...),
		NextSlideProcedure:      connect.NewUnaryHandler(NextSlideProcedure, svc.NextSlide, opts...),
		PreviousSlideProcedure:  connect.NewUnaryHandler(PreviousSlideProcedure, svc.PreviousSlide, opts...),
		CloseStoryProcedure:     connect.NewUnaryHandler(CloseStoryProcedure, svc.CloseStory, opts...),
		GetStoryProcedure:       connect.NewUnaryHandler(GetStoryProcedure, svc.GetStory, opts...),
	}

	return "/" + ServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}
