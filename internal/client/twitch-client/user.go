package twitch_client

import (
	"context"
	"net/url"

	"twitch_stream_watcher/internal/models"
)

// GetUserInfo resolves users by id or login. Twitch silently omits unknown
// users from the response instead of failing the request.
func (twc *TwitchClient) GetUserInfo(ctx context.Context, ids []string) (*models.GetUserInfoResponse, error) {

	query := url.Values{}
	for _, id := range ids {
		if digitCheck.MatchString(id) {
			query.Add("id", id)
			continue
		}
		query.Add("login", id)
	}

	var usersInfo models.GetUserInfoResponse
	err := twc.helixGet(ctx, "/helix/users", "twitch users", query, &usersInfo)
	if err != nil {
		return nil, err
	}

	return &usersInfo, nil
}
