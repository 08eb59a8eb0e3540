package telegram_updates_check

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const (
	greetingMessage   = "Greetings! The bot watches Twitch channels and notifies this chat when their streams go online or offline"
	commandListHeader = "Bot's command list:"
	commandFormat     = "%s - %s"

	invalidReq     = "Invalid request format. "
	somethingWrong = "Oops, something went wrong, please try again later or contact my author"
)

// validateText extracts a single argument from the command tail.
func validateText(text string) (cleanText string, isValid bool) {
	cleanText = strings.TrimSpace(text)
	if cleanText == "" {
		return "", false
	}

	if strings.Contains(cleanText, " ") {
		return "", false
	}

	return cleanText, true
}

// start handles the /start command
func (tmcs *TelegramUpdatesCheckService) start(
	ctx context.Context,
	updateInfo tgbotapi.Update,
) (tgbotapi.MessageConfig, error) {
	msg := tgbotapi.MessageConfig{}
	msg.ChatID = updateInfo.Message.Chat.ID
	msg.ReplyToMessageID = updateInfo.Message.MessageID

	msg.Text = tmcs.buildCommandListResponse(ctx, greetingMessage)

	return msg, nil
}

// commands handles the /commands command
func (tmcs *TelegramUpdatesCheckService) commands(
	ctx context.Context,
	updateInfo tgbotapi.Update,
) (tgbotapi.MessageConfig, error) {
	msg := tgbotapi.MessageConfig{}
	msg.ChatID = updateInfo.Message.Chat.ID
	msg.ReplyToMessageID = updateInfo.Message.MessageID

	msg.Text = tmcs.buildCommandListResponse(ctx, "")

	return msg, nil
}

// buildCommandListResponse renders the command list, preceded by a greeting
// line when one is given.
func (tmcs *TelegramUpdatesCheckService) buildCommandListResponse(ctx context.Context, prefix string) string {
	var builder strings.Builder

	if prefix != "" {
		builder.WriteString(prefix)
		builder.WriteString("\n")
	}

	teleCommands, err := tmcs.telegramService.GetBotCommands(ctx)
	if err != nil {
		logrus.Errorf("Failed to get bot commands: %v", err)
		return somethingWrong
	}

	if len(teleCommands.Commands) == 0 {
		return builder.String() + "No commands available at the moment."
	}

	builder.WriteString(commandListHeader)

	for _, teleCommand := range teleCommands.Commands {
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf(commandFormat, teleCommand.Command, teleCommand.Description))
	}

	return builder.String()
}
