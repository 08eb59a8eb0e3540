package twitch_client

import (
	"context"
	"net/url"

	"twitch_stream_watcher/internal/models"
)

// GetActiveStreamInfoByUsers returns stream payloads for the channels that
// are currently live. Offline channels are simply absent from the response.
func (twc *TwitchClient) GetActiveStreamInfoByUsers(ctx context.Context, ids []string) (*models.Streams, error) {

	query := url.Values{}
	for _, id := range ids {
		if digitCheck.MatchString(id) {
			query.Add("user_id", id)
			continue
		}
		query.Add("user_login", id)
	}

	var streamsInfo models.Streams
	err := twc.helixGet(ctx, "/helix/streams", "twitch streams", query, &streamsInfo)
	if err != nil {
		return nil, err
	}

	return &streamsInfo, nil
}
