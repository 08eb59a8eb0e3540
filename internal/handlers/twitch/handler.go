package twitch_handler

import (
	"net/http"

	"twitch_stream_watcher/internal/middleware"
	"twitch_stream_watcher/internal/models"
	twitch_service "twitch_stream_watcher/internal/service/twitch"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// TwitchHandler exposes direct twitch lookups, mostly useful for
// poking the api while debugging watched channels.
type TwitchHandler struct {
	twitchService *twitch_service.TwitchService
}

func NewTwitchHandler(twitchService *twitch_service.TwitchService) *TwitchHandler {
	return &TwitchHandler{
		twitchService: twitchService,
	}
}

func (twh *TwitchHandler) GetUser(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	reqDTO := models.GetUserInfoReq{}
	if err := jsoniter.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logrus.Errorf("failed decode request, error: %v", err)
		middleware.WriteErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := twh.twitchService.GetUser(ctx, reqDTO.ID)
	if err != nil {
		logrus.Error(err)
		middleware.WriteErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.WriteSuccessData(w, r, res)
}

func (twh *TwitchHandler) GetActiveStreamInfoByUser(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	reqDTO := models.GetActiveStreamInfoByUserReq{}
	if err := jsoniter.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logrus.Errorf("failed decode request, error: %v", err)
		middleware.WriteErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := twh.twitchService.GetActiveStreamInfoByUser(ctx, reqDTO.ID)
	if err != nil {
		logrus.Error(err)
		middleware.WriteErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.WriteSuccessData(w, r, res)
}
