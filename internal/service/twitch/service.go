package twitch_service

import (
	"context"
	"strings"

	twitch_client "twitch_stream_watcher/internal/client/twitch-client"
	"twitch_stream_watcher/internal/models"

	"github.com/pkg/errors"
)

// TwitchService wraps single-channel lookups on top of the batch helix
// client and rejects responses that answer for a different user than the
// one asked for.
type TwitchService struct {
	twitchClient *twitch_client.TwitchClient
}

func NewService(twitchClient *twitch_client.TwitchClient) *TwitchService {
	return &TwitchService{
		twitchClient: twitchClient,
	}
}

func (tws *TwitchService) GetUser(ctx context.Context, id string) (*models.GetUserInfoResponse, error) {

	userInfo, err := tws.twitchClient.GetUserInfo(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	if userInfo == nil {
		return userInfo, errors.New("empty response struct")
	}

	if len(userInfo.Data) < 1 {
		return userInfo, errors.New("user not found")
	}

	user := userInfo.Data[0]

	lowered := strings.ToLower(id)
	if user.ID() != id && strings.ToLower(user.Login()) != lowered && strings.ToLower(user.DisplayName()) != lowered {
		return nil, errors.Errorf("invalid response data, give %s, got id %s, login %s, name %s",
			id, user.ID(), user.Login(), user.DisplayName())
	}

	return userInfo, nil
}

func (tws *TwitchService) GetActiveStreamInfoByUser(ctx context.Context, id string) (*models.Streams, error) {

	streamInfo, err := tws.twitchClient.GetActiveStreamInfoByUsers(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	if streamInfo == nil {
		return streamInfo, errors.New("empty response struct")
	}

	if len(streamInfo.StreamInfo) < 1 {
		return streamInfo, errors.New("stream not found")
	}

	stream := streamInfo.StreamInfo[0]

	lowered := strings.ToLower(id)
	if stream.UserId() != id && strings.ToLower(stream.UserLogin()) != lowered && strings.ToLower(stream.UserName()) != lowered {
		return nil, errors.Errorf("invalid response data, give %s, got id %s, login %s, name %s",
			id, stream.UserId(), stream.UserLogin(), stream.UserName())
	}

	return streamInfo, nil
}
