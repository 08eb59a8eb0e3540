package telegram_service

import (
	"context"
	"fmt"

	telegreamClient "twitch_stream_watcher/internal/client/telegram-client"
	"twitch_stream_watcher/internal/models"
)

type TelegramService struct {
	telegramClient *telegreamClient.TelegramClient
}

func NewService(telegramClient *telegreamClient.TelegramClient) *TelegramService {
	return &TelegramService{
		telegramClient: telegramClient,
	}
}

// GetBotCommands returns the registered bot commands with the leading slash
// restored, the way users type them.
func (s *TelegramService) GetBotCommands(ctx context.Context) (*models.TeleBotCommands, error) {

	data, err := s.telegramClient.GetBotCommands(ctx)
	if err != nil {
		return nil, err
	}

	res := &models.TeleBotCommands{
		Commands: make([]models.TeleBotCommand, 0, len(data)),
	}

	for _, commandInfo := range data {
		res.Commands = append(res.Commands, models.TeleBotCommand{
			Command:     fmt.Sprintf("/%s", commandInfo.Command),
			Description: commandInfo.Description,
		})
	}

	return res, nil
}
