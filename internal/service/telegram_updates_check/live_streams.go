package telegram_updates_check

import (
	"context"
	"fmt"
	"strings"

	formater "twitch_stream_watcher/internal/utils/formater"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// liveStreams reports the channels the watcher currently sees online.
func (tmcs *TelegramUpdatesCheckService) liveStreams(
	ctx context.Context,
	updateInfo tgbotapi.Update,
) (msg tgbotapi.MessageConfig) {

	msg.ChatID = updateInfo.Message.Chat.ID
	msg.ReplyToMessageID = updateInfo.Message.MessageID

	channels := tmcs.streamWatchService.ActiveStreams()
	if len(channels) == 0 {
		msg.Text = "None of the watched channels are live right now"
		return
	}

	states := tmcs.streamWatchService.StreamStates()

	var builder strings.Builder
	builder.WriteString("Live now:")
	for _, channel := range channels {
		state, ok := states[channel]
		if !ok {
			builder.WriteString(fmt.Sprintf("\n%s", channel))
			continue
		}

		line := fmt.Sprintf("\n%s, %d viewers, online for %s",
			channel,
			state.Fields.ViewerCount(),
			formater.CreateStreamDuration(state.Fields.StartedAt()),
		)
		if game := state.Fields.GameName(); game != "" {
			line += fmt.Sprintf(", playing %s", game)
		}

		builder.WriteString(line)
	}

	msg.Text = builder.String()

	return
}
