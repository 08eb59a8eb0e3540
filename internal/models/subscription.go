package models

// ChannelSubscription is a telegram chat subscribed to online/offline
// transitions of a single twitch channel.
type ChannelSubscription struct {
	ID      uint64 `db:"id"`
	ChatID  int64  `db:"chat_id"`
	Channel string `db:"channel"`
}
