package watch_handler

import (
	"net/http"

	"twitch_stream_watcher/internal/middleware"
	"twitch_stream_watcher/internal/models"
)

func (wh *WatchHandler) GetChannels(w http.ResponseWriter, r *http.Request) {

	res := models.WatchedChannels{
		Channels:        wh.streamWatchService.ChannelNames(),
		LastUserRefresh: wh.streamWatchService.LastUserRefresh(),
	}

	middleware.WriteSuccessData(w, r, res)
}
