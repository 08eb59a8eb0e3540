package watch_handler

import (
	"net/http"

	"twitch_stream_watcher/internal/middleware"

	"github.com/sirupsen/logrus"
)

func (wh *WatchHandler) Refresh(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	reason := r.URL.Query().Get("reason")
	if reason == "" {
		reason = "manual"
	}

	err := wh.streamWatchService.Refresh(ctx, reason)
	if err != nil {
		logrus.Error(err)
		middleware.WriteErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.WriteSuccessMessage(w, r, "refresh completed")
}
