package stream_watch

import (
	"context"
	"strings"

	"github.com/juju/collections/set"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"twitch_stream_watcher/internal/models"
)

// reconcileStreams folds freshly fetched stream payloads into per-channel
// state and walks the online/offline edges.
//
// The committed active list only advances when every live update handler
// accepted every edge this cycle. On any veto the previous list stays as is
// and the same edges surface again on a later refresh.
func (sws *StreamWatchService) reconcileStreams(ctx context.Context, fetched []models.Record) {
	nextOnline := []string{}
	nextOnlineSet := set.NewStrings()
	nextGameIDs := set.NewStrings()

	for _, payload := range fetched {
		channel := strings.ToLower(payload.UserLogin())
		if channel == "" {
			continue
		}

		state := sws.buildStreamState(channel, payload)
		sws.streams[channel] = state

		if payload.StreamType() == models.StreamLive {
			state.Timeout = 0
			nextOnline = append(nextOnline, channel)
			nextOnlineSet.Add(channel)
		}

		if gameID := payload.GameId(); gameID != "" {
			nextGameIDs.Add(gameID)
		}
	}

	notifyFailed := false
	activeSet := set.NewStrings(sws.activeStreams...)

	// rising edges
	for _, channel := range nextOnline {
		if activeSet.Contains(channel) {
			continue
		}
		logrus.Infof("channel %s went live", channel)
		err := sws.dispatchLiveUpdate(ctx, channel, sws.streams[channel], true)
		if err != nil {
			logrus.Infof("live update for %s rejected: %v", channel, err)
			notifyFailed = true
		}
	}

	// possible falling edges: previously active channels missing from the
	// live list ride out up to OfflineTimeout-1 misses before committing
	for _, channel := range sws.activeStreams {
		if nextOnlineSet.Contains(channel) {
			continue
		}

		state := sws.streams[channel]
		if state == nil {
			state = &models.StreamState{Fields: models.Record{"user_login": channel}}
			sws.streams[channel] = state
		}

		state.Timeout++
		if state.Timeout < OfflineTimeout {
			nextOnline = append(nextOnline, channel)
			nextOnlineSet.Add(channel)
			continue
		}

		state.Fields["type"] = string(models.StreamOffline)
		state.Timeout = 0

		logrus.Infof("channel %s went offline", channel)
		err := sws.dispatchLiveUpdate(ctx, channel, state, false)
		if err != nil {
			logrus.Infof("live update for %s rejected: %v", channel, err)
			notifyFailed = true
		}
		sws.dispatchOffline(ctx, channel, state)
	}

	if notifyFailed {
		logrus.Warn("keeping previous active streams, a live update was rejected")
	} else {
		sws.activeStreams = nextOnline
	}

	if !sameGameIDs(nextGameIDs, sws.watchedGameIDs) {
		sws.watchedGameIDs = nextGameIDs
		sws.pendingGameRefresh = true
	}
}

// buildStreamState merges, in increasing precedence, the channel's user
// record, the previous cycle's fields and the fresh payload, then attaches
// the user and whatever game record is already cached.
func (sws *StreamWatchService) buildStreamState(channel string, payload models.Record) *models.StreamState {
	user := sws.users[payload.UserId()]

	fields := models.MergeRecords(nil, user)
	if prev := sws.streams[channel]; prev != nil {
		fields = models.MergeRecords(fields, prev.Fields)
	}
	fields = models.MergeRecords(fields, payload)

	state := &models.StreamState{
		Fields: fields,
		User:   user,
	}
	if prev := sws.streams[channel]; prev != nil {
		state.Timeout = prev.Timeout
	}
	if gameID := payload.GameId(); gameID != "" {
		state.Game = sws.games[gameID]
	}

	return state
}

func (sws *StreamWatchService) dispatchLiveUpdate(ctx context.Context, channel string, state *models.StreamState, isOnline bool) error {
	failed := false
	for _, handler := range sws.liveHandlers {
		err := handler(ctx, state, isOnline, sws.channelNames)
		if err != nil {
			logrus.Infof("live update handler failed for %s: %v", channel, err)
			failed = true
		}
	}

	if failed {
		return errors.New("live update rejected")
	}
	return nil
}

func (sws *StreamWatchService) dispatchOffline(ctx context.Context, channel string, state *models.StreamState) {
	for _, handler := range sws.offlineHandlers {
		err := handler(ctx, state)
		if err != nil {
			logrus.Infof("offline handler failed for %s: %v", channel, err)
		}
	}
}

func sameGameIDs(a, b set.Strings) bool {
	return a.Size() == b.Size() && a.Difference(b).IsEmpty()
}
