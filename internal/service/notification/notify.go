package notification

import (
	"context"
	"fmt"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"twitch_stream_watcher/internal/models"
	formater "twitch_stream_watcher/internal/utils/formater"
)

// HandleLiveUpdate delivers rising edge messages to every subscribed chat.
// A failed delivery returns an error so the watcher keeps the edge pending
// and redelivers on a later cycle. Falling edges are acknowledged here and
// messaged from HandleOffline.
func (tns *TelegramNotificationService) HandleLiveUpdate(ctx context.Context, state *models.StreamState, isOnline bool, channels []string) error {
	if !isOnline {
		return nil
	}

	channel := stateChannel(state)
	if channel == "" {
		return nil
	}

	subs, err := tns.dbRepo.GetSubscriptionsByChannels(ctx, []string{channel})
	if err != nil {
		return errors.Wrap(err, "GetSubscriptionsByChannels")
	}
	if len(subs) == 0 {
		return nil
	}

	failed := false
	for _, sub := range subs {
		err := tns.throwLiveNotification(ctx, state, sub.ChatID)
		if err != nil {
			logrus.Infof("could not notify chat %d about %s: %v", sub.ChatID, channel, err)
			failed = true
		}
	}

	if failed {
		return errors.Errorf("live notification for %s incomplete", channel)
	}
	return nil
}

// HandleOffline messages subscribers that a channel went offline. This is
// the terminal notification for the transition, failures are only logged.
func (tns *TelegramNotificationService) HandleOffline(ctx context.Context, state *models.StreamState) error {
	channel := stateChannel(state)
	if channel == "" {
		return nil
	}

	subs, err := tns.dbRepo.GetSubscriptionsByChannels(ctx, []string{channel})
	if err != nil {
		return errors.Wrap(err, "GetSubscriptionsByChannels")
	}

	for _, sub := range subs {
		msg := tgbotapi.NewMessage(sub.ChatID, prepareOfflineText(stateDisplayName(state)))

		bot, err := tgbotapi.NewBotAPI(os.Getenv("TELEGRAM_API_TOKEN"))
		if err != nil {
			return errors.Wrap(err, "NewBotAPI")
		}

		_, err = bot.Send(msg)
		if err != nil {
			logrus.Infof("HandleOffline: telegram send message error: %v", err)
		}
	}

	return nil
}

func (tns *TelegramNotificationService) throwLiveNotification(ctx context.Context, state *models.StreamState, chatID int64) error {
	bot, err := tgbotapi.NewBotAPI(os.Getenv("TELEGRAM_API_TOKEN"))
	if err != nil {
		return err
	}

	title := formater.TwitchTagToTelegram(state.Fields.Title())
	msg := tgbotapi.NewMessage(chatID, prepareCaption(stateDisplayName(state), title, gameName(state), state.Fields.ViewerCount()))

	twitchLink := fmt.Sprintf("%s/%s", models.TwitchWWWSchemeHost, stateChannel(state))
	msg = formater.CreateTelegramSingleButtonLink(msg, twitchLink, "Open the channel", 0)

	// using Markdown for hyperlinks
	msg.ParseMode = "Markdown"

	// trying to send message once
	_, err = bot.Send(msg)
	if err != nil {
		logrus.Infof("throwLiveNotification: first try: telegram send message error: %v", err)

		title = formater.ClearTags(state.Fields.Title())
		msg.Text = prepareCaption(stateDisplayName(state), title, gameName(state), state.Fields.ViewerCount())

		// not using any parse mods
		msg.ParseMode = ""

		// trying to send message again but without tags
		_, err = bot.Send(msg)
		if err != nil {
			return err
		}
	}

	return nil
}

func prepareCaption(userName, title, game string, viewerCount uint64) string {
	caption := fmt.Sprintf(`
	▶️ %s stream is online!
	Title: %s,
	Count of viewers: %d
	`,
		userName,
		title,
		viewerCount,
	)
	if game != "" {
		caption += fmt.Sprintf("Game: %s\n", game)
	}

	return caption
}

func prepareOfflineText(userName string) string {
	return fmt.Sprintf("⏹ %s stream is offline", userName)
}

func gameName(state *models.StreamState) string {
	if state == nil {
		return ""
	}
	if name := state.Fields.GameName(); name != "" {
		return name
	}
	return state.Game.Name()
}

func stateChannel(state *models.StreamState) string {
	if state == nil {
		return ""
	}
	if login := state.Fields.UserLogin(); login != "" {
		return strings.ToLower(login)
	}
	return strings.ToLower(state.User.Login())
}

func stateDisplayName(state *models.StreamState) string {
	if name := state.Fields.UserName(); name != "" {
		return name
	}
	if name := state.User.DisplayName(); name != "" {
		return name
	}
	return stateChannel(state)
}
