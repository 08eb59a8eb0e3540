package telegram

import (
	"net/http"

	"twitch_stream_watcher/internal/middleware"
	teleService "twitch_stream_watcher/internal/service/telegram"

	"github.com/sirupsen/logrus"
)

type TelegramHandler struct {
	telegramService *teleService.TelegramService
}

func NewTelegramHandler(telegramService *teleService.TelegramService) *TelegramHandler {
	return &TelegramHandler{
		telegramService: telegramService,
	}
}

func (h *TelegramHandler) GetBotCommands(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	res, err := h.telegramService.GetBotCommands(ctx)
	if err != nil {
		logrus.Error(err)
		middleware.WriteErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.WriteSuccessData(w, r, res)
}
