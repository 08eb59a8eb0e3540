package watch_handler

import (
	stream_watch "twitch_stream_watcher/internal/service/stream_watch"
)

type WatchHandler struct {
	streamWatchService *stream_watch.StreamWatchService
}

func NewWatchHandler(streamWatchService *stream_watch.StreamWatchService) *WatchHandler {
	return &WatchHandler{
		streamWatchService: streamWatchService,
	}
}
