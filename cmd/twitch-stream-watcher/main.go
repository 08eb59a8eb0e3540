package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	recordCache "twitch_stream_watcher/internal/client/record-cache"
	sheetClient "twitch_stream_watcher/internal/client/sheet-client"
	telegramClient "twitch_stream_watcher/internal/client/telegram-client"
	twitchClient "twitch_stream_watcher/internal/client/twitch-client"
	twitchOauthClient "twitch_stream_watcher/internal/client/twitch-oauth-client"

	telegramHandler "twitch_stream_watcher/internal/handlers/telegram"
	twitchHandler "twitch_stream_watcher/internal/handlers/twitch"
	watchHandler "twitch_stream_watcher/internal/handlers/watch"

	channelSourceService "twitch_stream_watcher/internal/service/channel_source"
	notificationService "twitch_stream_watcher/internal/service/notification"
	streamWatchService "twitch_stream_watcher/internal/service/stream_watch"
	telegramService "twitch_stream_watcher/internal/service/telegram"
	teleUpdatesCheckService "twitch_stream_watcher/internal/service/telegram_updates_check"
	twitchService "twitch_stream_watcher/internal/service/twitch"
	twitchTokenService "twitch_stream_watcher/internal/service/twitch_token"

	dbRepository "twitch_stream_watcher/db/repository"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
)

const defaultPollIntervalMs = 60000

func main() {
	ctx := context.Background()

	err := godotenv.Load()
	if err != nil {
		logrus.Fatal("Error loading .env file")
	}

	debugAddr := os.Getenv("DEBUG_ADDR")

	db, err := sqlx.Connect("postgres", os.Getenv("DB_CONN"))
	if err != nil {
		logrus.Fatalf("cannot connect to db: %v", err)
	}

	var (
		telegaClient = telegramClient.NewTelegramClient()
		twitchOauth  = twitchOauthClient.NewTwitchOauthClient()
		shClient     = sheetClient.NewSheetClient()
	)

	cache := recordCache.NewRecordCache(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"))
	if err = cache.Ping(ctx); err != nil {
		logrus.Warnf("record cache unavailable, starting cold: %v", err)
	}

	dbRepo := dbRepository.NewDBRepository(db)
	if err = dbRepo.Ping(ctx); err != nil {
		logrus.Fatalf("cannot ping db: %v", err)
	}

	tts, err := twitchTokenService.NewTwitchTokenService(dbRepo, twitchOauth)
	if err != nil {
		logrus.Fatalf("cannot init twitchTokenService: %v", err)
	}
	go tts.SyncBg(ctx, time.Minute*5)

	twClient := twitchClient.NewTwitchClient(tts)

	telegaService := telegramService.NewService(telegaClient)
	twService := twitchService.NewService(twClient)

	channelSource := channelSourceService.NewChannelSourceService(
		shClient,
		splitList(os.Getenv("CHANNEL_LIST")),
		os.Getenv("CHANNEL_SHEET_URL"),
		splitList(os.Getenv("CHANNEL_SHEET_HEADERS")),
	)

	sws := streamWatchService.NewStreamWatchService(ctx, twClient, cache, channelSource)

	tns := notificationService.NewTelegramNotificationService(dbRepo)
	sws.OnChannelLiveUpdate(tns.HandleLiveUpdate)
	sws.OnChannelOffline(tns.HandleOffline)

	go sws.SyncBg(ctx, pollInterval())

	tucs, err := teleUpdatesCheckService.NewTelegramUpdatesCheckService(twClient, telegaService, sws, dbRepo)
	if err != nil {
		logrus.Fatalf("cannot init teleUpdatesCheckService: %v", err)
	}
	go tucs.SyncBg(ctx, time.Second*1)

	telegaHandler := telegramHandler.NewTelegramHandler(telegaService)
	twHandler := twitchHandler.NewTwitchHandler(twService)
	wHandler := watchHandler.NewWatchHandler(sws)

	debugRouter := mux.NewRouter()

	debugRouter.HandleFunc("/commands", telegaHandler.GetBotCommands).Methods("GET").Schemes("HTTP")
	debugRouter.HandleFunc("/twitch/user", twHandler.GetUser).Methods("POST").Schemes("HTTP")
	debugRouter.HandleFunc("/twitch/stream", twHandler.GetActiveStreamInfoByUser).Methods("POST").Schemes("HTTP")
	debugRouter.HandleFunc("/streams/active", wHandler.GetActiveStreams).Methods("GET").Schemes("HTTP")
	debugRouter.HandleFunc("/channels", wHandler.GetChannels).Methods("GET").Schemes("HTTP")
	debugRouter.HandleFunc("/refresh", wHandler.Refresh).Methods("POST").Schemes("HTTP")

	logrus.Info("server start...")

	wg := new(sync.WaitGroup)

	wg.Add(1)
	go func() {
		srv := &http.Server{
			Handler:      debugRouter,
			Addr:         debugAddr,
			WriteTimeout: 5 * time.Second,
			ReadTimeout:  5 * time.Second,
		}

		logrus.Fatal(srv.ListenAndServe())
		wg.Done()
	}()

	wg.Wait()
}

func pollInterval() time.Duration {
	raw := os.Getenv("POLL_INTERVAL_MS")
	if raw == "" {
		return time.Duration(defaultPollIntervalMs) * time.Millisecond
	}

	ms, err := strconv.Atoi(raw)
	if err != nil {
		logrus.Warnf("invalid POLL_INTERVAL_MS %q, using default: %v", raw, err)
		return time.Duration(defaultPollIntervalMs) * time.Millisecond
	}

	return time.Duration(ms) * time.Millisecond
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			list = append(list, part)
		}
	}

	return list
}
