package watch_handler

import (
	"net/http"

	"twitch_stream_watcher/internal/middleware"
	"twitch_stream_watcher/internal/models"
)

func (wh *WatchHandler) GetActiveStreams(w http.ResponseWriter, r *http.Request) {

	channels := wh.streamWatchService.ActiveStreams()
	states := wh.streamWatchService.StreamStates()

	res := make([]models.ActiveStreamStatus, 0, len(channels))
	for _, channel := range channels {
		status := models.ActiveStreamStatus{
			Channel: channel,
		}

		if state, ok := states[channel]; ok {
			status.Title = state.Fields.Title()
			status.GameName = state.Fields.GameName()
			status.ViewerCount = state.Fields.ViewerCount()
			status.StartedAt = state.Fields.StartedAt()
		}

		res = append(res, status)
	}

	middleware.WriteSuccessData(w, r, res)
}
