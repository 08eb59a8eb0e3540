package telegram_updates_check

import (
	"context"
	"fmt"
	"strings"

	formater "twitch_stream_watcher/internal/utils/formater"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

func (tmcs *TelegramUpdatesCheckService) watchChannel(
	ctx context.Context,
	updateInfo tgbotapi.Update,
) (msg tgbotapi.MessageConfig, err error) {

	msg.ChatID = updateInfo.Message.Chat.ID
	msg.ReplyToMessageID = updateInfo.Message.MessageID

	commandText := updateInfo.Message.Text[len(fmt.Sprint(watchCommand)):]

	userLogin, isValid := validateText(commandText)
	if !isValid {
		msg.Text = invalidReq + fmt.Sprintf(userCustomExampleText, watchCommand, watchCommand)

		return
	}

	userLoginLowercase := formater.ToLower(userLogin)

	err = tmcs.dbRepo.AddChannelSubscription(ctx, updateInfo.Message.Chat.ID, userLoginLowercase)
	if err != nil {
		msg.Text = somethingWrong

		return msg, errors.Wrap(err, "AddChannelSubscription")
	}

	msg.Text = fmt.Sprintf("Request successfully accepted! This chat will now receive stream notifications from %s Twitch channel", userLogin)

	return
}

func (tmcs *TelegramUpdatesCheckService) unwatchChannel(
	ctx context.Context,
	updateInfo tgbotapi.Update,
) (msg tgbotapi.MessageConfig, err error) {

	msg.ChatID = updateInfo.Message.Chat.ID
	msg.ReplyToMessageID = updateInfo.Message.MessageID

	commandText := updateInfo.Message.Text[len(fmt.Sprint(unwatchCommand)):]

	userLogin, isValid := validateText(commandText)
	if !isValid {
		msg.Text = invalidReq + fmt.Sprintf(userCustomExampleText, unwatchCommand, unwatchCommand)

		subs, subErr := tmcs.dbRepo.GetSubscriptionsByChat(ctx, updateInfo.Message.Chat.ID)
		if subErr == nil && len(subs) > 0 {
			channels := make([]string, 0, len(subs))
			for _, sub := range subs {
				channels = append(channels, sub.Channel)
			}

			msg.Text += fmt.Sprintf("\n\nThis chat is watching: %s", strings.Join(channels, ", "))
		}

		return
	}

	userLogin = formater.ToLower(userLogin)

	err = tmcs.dbRepo.RemoveChannelSubscription(ctx, updateInfo.Message.Chat.ID, userLogin)
	if err != nil {

		if err.Error() == "subscription not found" {
			msg.Text = "No watch requests were found for this channel. Perhaps the name is incorrectly indicated or such request was not created"

			return msg, errors.Errorf("subscription by chatId %d channel %s not found", updateInfo.Message.Chat.ID, userLogin)
		}

		msg.Text = somethingWrong

		return msg, errors.Wrap(err, "RemoveChannelSubscription")
	}

	msg.Text = "Notifications were disabled successfully"

	return
}
