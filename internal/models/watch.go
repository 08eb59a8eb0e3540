package models

import "time"

type WatchedChannels struct {
	Channels        []string  `json:"channels"`
	LastUserRefresh time.Time `json:"last_user_refresh"`
}

type ActiveStreamStatus struct {
	Channel     string    `json:"channel"`
	Title       string    `json:"title,omitempty"`
	GameName    string    `json:"game_name,omitempty"`
	ViewerCount uint64    `json:"viewer_count"`
	StartedAt   time.Time `json:"started_at"`
}
