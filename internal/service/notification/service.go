package notification

import (
	dbRepository "twitch_stream_watcher/db/repository"
)

// TelegramNotificationService forwards channel transitions to the telegram
// chats subscribed to them. It is registered on the stream watcher as both a
// live update handler and an offline handler.
type TelegramNotificationService struct {
	dbRepo *dbRepository.DBRepository
}

func NewTelegramNotificationService(dbRepo *dbRepository.DBRepository) *TelegramNotificationService {
	return &TelegramNotificationService{
		dbRepo: dbRepo,
	}
}
