package telegram_updates_check

import (
	"context"
	"os"
	"strings"
	"time"

	dbRepository "twitch_stream_watcher/db/repository"
	twitch_client "twitch_stream_watcher/internal/client/twitch-client"
	stream_watch "twitch_stream_watcher/internal/service/stream_watch"
	telegram_service "twitch_stream_watcher/internal/service/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const (
	telegramUpdatesCheckBGSync = "telegramUpdatesCheck_BGSync"
	startCommand               = "/start"
	commandsCommand            = "/commands"
	pingCommand                = "/ping"
	twitchUserCommand          = "/twitch_user"
	watchCommand               = "/watch"
	unwatchCommand             = "/unwatch"
	liveCommand                = "/live"
)

type TelegramUpdatesCheckService struct {
	twitchClient       *twitch_client.TwitchClient
	telegramService    *telegram_service.TelegramService
	streamWatchService *stream_watch.StreamWatchService
	dbRepo             *dbRepository.DBRepository
}

func NewTelegramUpdatesCheckService(
	twitchClient *twitch_client.TwitchClient,
	telegramService *telegram_service.TelegramService,
	streamWatchService *stream_watch.StreamWatchService,
	dbRepo *dbRepository.DBRepository,
) (*TelegramUpdatesCheckService, error) {
	return &TelegramUpdatesCheckService{
		twitchClient:       twitchClient,
		telegramService:    telegramService,
		streamWatchService: streamWatchService,
		dbRepo:             dbRepo,
	}, nil
}

func (tmcs *TelegramUpdatesCheckService) Sync(ctx context.Context) error {

	bot, err := tgbotapi.NewBotAPI(os.Getenv("TELEGRAM_API_TOKEN"))
	if err != nil {
		return err
	}

	// verbose logs
	bot.Debug = os.Getenv("TELEGRAM_BOT_DEBUG") == "true"

	logrus.Printf("Authorized on account %s", bot.Self.UserName)

	reader := tgbotapi.NewUpdate(0)
	reader.Timeout = 60

	updates := bot.GetUpdatesChan(reader)

	for updateInfo := range updates {
		if updateInfo.Message != nil {
			logrus.Printf("[%s] %s", updateInfo.Message.From.UserName, updateInfo.Message.Text)

			timeAndZone := time.Unix(int64(updateInfo.Message.Date), 0)

			msg := tgbotapi.NewMessage(updateInfo.Message.Chat.ID, "")

			timeNow := time.Now()
			// TODO: think about how to avoid duplicate responses
			if timeAndZone.Add(time.Second * 12).Before(timeNow) {

				msg.Text = "Sorry, I took a little nap ☺️ . Now I'm awake and ready to work! 😎 "
				msg.ReplyToMessageID = updateInfo.Message.MessageID

				bot.Send(msg)

				logrus.Printf("skip reason: old time. User %s, message time %s, time now %s", updateInfo.Message.From.UserName, timeAndZone, timeNow)
				continue
			}

			switch {
			case strings.HasPrefix(updateInfo.Message.Text, startCommand):
				msg, err = tmcs.start(ctx, updateInfo)
				if err != nil {
					logrus.Errorf("start command: %v", err)
				}

			case strings.HasPrefix(updateInfo.Message.Text, commandsCommand):
				msg, err = tmcs.commands(ctx, updateInfo)
				if err != nil {
					logrus.Errorf("commands command: %v", err)
				}

			case strings.HasPrefix(updateInfo.Message.Text, pingCommand):
				msg.Text = "pong"
				msg.ReplyToMessageID = updateInfo.Message.MessageID

			case strings.HasPrefix(updateInfo.Message.Text, twitchUserCommand):
				photo, isFound := tmcs.twitchUserCase(ctx, updateInfo)
				if isFound {
					bot.Send(photo)
					continue
				}

				msg.Text = photo.Caption
				msg.ReplyToMessageID = updateInfo.Message.MessageID

			case strings.HasPrefix(updateInfo.Message.Text, unwatchCommand):
				msg, err = tmcs.unwatchChannel(ctx, updateInfo)
				if err != nil {
					logrus.Errorf("unwatch command: %v", err)
				}

			case strings.HasPrefix(updateInfo.Message.Text, watchCommand):
				msg, err = tmcs.watchChannel(ctx, updateInfo)
				if err != nil {
					logrus.Errorf("watch command: %v", err)
				}

			case strings.HasPrefix(updateInfo.Message.Text, liveCommand):
				msg = tmcs.liveStreams(ctx, updateInfo)
			}

			if msg.Text == "" {
				continue
			}

			_, err = bot.Send(msg)
			if err != nil {
				logrus.Errorf("telegram send message error: %v", err)
			}
		}
	}

	return nil
}

func (tmcs *TelegramUpdatesCheckService) SyncBg(ctx context.Context, syncInterval time.Duration) {
	ticker := time.NewTicker(syncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("stoping bg %s process", telegramUpdatesCheckBGSync)
			return
		case <-ticker.C:
			logrus.Infof("started bg %s process", telegramUpdatesCheckBGSync)
			err := tmcs.Sync(ctx)
			if err != nil {
				logrus.Info("could not check telegram updates")
				continue
			}
			logrus.Info("telegram updates check was complited")
		}
	}

}
