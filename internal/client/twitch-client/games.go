package twitch_client

import (
	"context"
	"net/url"

	"twitch_stream_watcher/internal/models"
)

func (twc *TwitchClient) GetGamesInfo(ctx context.Context, ids []string) (*models.GetGamesInfoResponse, error) {

	query := url.Values{}
	for _, id := range ids {
		if digitCheck.MatchString(id) {
			query.Add("id", id)
			continue
		}
		query.Add("name", id)
	}

	var gamesInfo models.GetGamesInfoResponse
	err := twc.helixGet(ctx, "/helix/games", "twitch games", query, &gamesInfo)
	if err != nil {
		return nil, err
	}

	return &gamesInfo, nil
}
