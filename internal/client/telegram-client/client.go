package telegram_client

import (
	"context"
	"os"

	tgBotApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramClient struct {
}

func NewTelegramClient() *TelegramClient {
	return &TelegramClient{}
}

// GetBotCommands loads the command list registered for the bot.
func (tc *TelegramClient) GetBotCommands(ctx context.Context) ([]tgBotApi.BotCommand, error) {
	bot, err := tgBotApi.NewBotAPI(os.Getenv("TELEGRAM_API_TOKEN"))
	if err != nil {
		return nil, err
	}

	bot.Debug = os.Getenv("TELEGRAM_BOT_DEBUG") == "true"

	commands, err := bot.GetMyCommands()
	if err != nil {
		return nil, err
	}

	return commands, nil
}
