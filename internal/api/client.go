package api

import (
	"context"
	"encoding/json"
	"esports-companion/internal/constants"
	"esports-companion/internal/rpc"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// Client calls the companion service over the connect protocol with JSON
// bodies.
type Client struct {
	baseURL string
	client  *fasthttp.Client
}

// Error is a connect error body returned with a non-200 status.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("API error: %d", e.Status)
	}
	return fmt.Sprintf("API error: %d %s: %s", e.Status, e.Code, e.Message)
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         constants.ClientTimeout,
			WriteTimeout:        constants.ClientTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *Client) ListGames(ctx context.Context) (*rpc.ListGamesResponse, error) {
	return doRequest[rpc.ListGamesRequest, rpc.ListGamesResponse](ctx, c, rpc.ListGamesProcedure, &rpc.ListGamesRequest{})
}

func (c *Client) ListTeams(ctx context.Context, game string) (*rpc.ListTeamsResponse, error) {
	return doRequest[rpc.ListTeamsRequest, rpc.ListTeamsResponse](ctx, c, rpc.ListTeamsProcedure, &rpc.ListTeamsRequest{Game: game})
}

func (c *Client) GetTeam(ctx context.Context, teamID string) (*rpc.GetTeamResponse, error) {
	return doRequest[rpc.GetTeamRequest, rpc.GetTeamResponse](ctx, c, rpc.GetTeamProcedure, &rpc.GetTeamRequest{TeamID: teamID})
}

func (c *Client) GetStandings(ctx context.Context, game string) (*rpc.GetStandingsResponse, error) {
	return doRequest[rpc.GetStandingsRequest, rpc.GetStandingsResponse](ctx, c, rpc.GetStandingsProcedure, &rpc.GetStandingsRequest{Game: game})
}

func (c *Client) GetLeaderboard(ctx context.Context, game, statKey string, limit int) (*rpc.GetLeaderboardResponse, error) {
	return doRequest[rpc.GetLeaderboardRequest, rpc.GetLeaderboardResponse](ctx, c, rpc.GetLeaderboardProcedure, &rpc.GetLeaderboardRequest{
		Game:    game,
		StatKey: statKey,
		Limit:   limit,
	})
}

func (c *Client) GetMVP(ctx context.Context, game string) (*rpc.GetMVPResponse, error) {
	return doRequest[rpc.GetMVPRequest, rpc.GetMVPResponse](ctx, c, rpc.GetMVPProcedure, &rpc.GetMVPRequest{Game: game})
}

func (c *Client) GetStatLeaders(ctx context.Context, game string) (*rpc.GetStatLeadersResponse, error) {
	return doRequest[rpc.GetStatLeadersRequest, rpc.GetStatLeadersResponse](ctx, c, rpc.GetStatLeadersProcedure, &rpc.GetStatLeadersRequest{Game: game})
}

func (c *Client) GetBoxscore(ctx context.Context, matchID, teamID string) (*rpc.GetBoxscoreResponse, error) {
	return doRequest[rpc.GetBoxscoreRequest, rpc.GetBoxscoreResponse](ctx, c, rpc.GetBoxscoreProcedure, &rpc.GetBoxscoreRequest{
		MatchID: matchID,
		TeamID:  teamID,
	})
}

func (c *Client) GetSchedule(ctx context.Context, date, game string) (*rpc.GetScheduleResponse, error) {
	return doRequest[rpc.GetScheduleRequest, rpc.GetScheduleResponse](ctx, c, rpc.GetScheduleProcedure, &rpc.GetScheduleRequest{
		Date: date,
		Game: game,
	})
}

func (c *Client) GetBracket(ctx context.Context, game string) (*rpc.GetBracketResponse, error) {
	return doRequest[rpc.GetBracketRequest, rpc.GetBracketResponse](ctx, c, rpc.GetBracketProcedure, &rpc.GetBracketRequest{Game: game})
}

func (c *Client) GetReplays(ctx context.Context, game string) (*rpc.GetReplaysResponse, error) {
	return doRequest[rpc.GetReplaysRequest, rpc.GetReplaysResponse](ctx, c, rpc.GetReplaysProcedure, &rpc.GetReplaysRequest{Game: game})
}

func (c *Client) GetHome(ctx context.Context, game string, limit int) (*rpc.GetHomeResponse, error) {
	return doRequest[rpc.GetHomeRequest, rpc.GetHomeResponse](ctx, c, rpc.GetHomeProcedure, &rpc.GetHomeRequest{
		Game:  game,
		Limit: limit,
	})
}

func (c *Client) OpenStory(ctx context.Context, sessionID, contentType, game string) (*rpc.StoryResponse, error) {
	return doRequest[rpc.OpenStoryRequest, rpc.StoryResponse](ctx, c, rpc.OpenStoryProcedure, &rpc.OpenStoryRequest{
		SessionID: sessionID,
		Type:      contentType,
		Game:      game,
	})
}

func (c *Client) NextSlide(ctx context.Context, sessionID string) (*rpc.StoryResponse, error) {
	return doRequest[rpc.StoryRequest, rpc.StoryResponse](ctx, c, rpc.NextSlideProcedure, &rpc.StoryRequest{SessionID: sessionID})
}

func (c *Client) PreviousSlide(ctx context.Context, sessionID string) (*rpc.StoryResponse, error) {
	return doRequest[rpc.StoryRequest, rpc.StoryResponse](ctx, c, rpc.PreviousSlideProcedure, &rpc.StoryRequest{SessionID: sessionID})
}

func (c *Client) CloseStory(ctx context.Context, sessionID string) (*rpc.StoryResponse, error) {
	return doRequest[rpc.StoryRequest, rpc.StoryResponse](ctx, c, rpc.CloseStoryProcedure, &rpc.StoryRequest{SessionID: sessionID})
}

func (c *Client) GetStory(ctx context.Context, sessionID string) (*rpc.StoryResponse, error) {
	return doRequest[rpc.StoryRequest, rpc.StoryResponse](ctx, c, rpc.GetStoryProcedure, &rpc.StoryRequest{SessionID: sessionID})
}

func doRequest[Req, Res any](ctx context.Context, client *Client, procedure string, msg *Req) (*Res, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(client.baseURL + procedure)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Connect-Protocol-Version", "1")
	req.SetBody(body)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.DoTimeout(req, resp, constants.ClientTimeout); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		apiErr := &Error{Status: resp.StatusCode()}
		_ = json.Unmarshal(resp.Body(), apiErr)
		return nil, apiErr
	}

	var result Res
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
