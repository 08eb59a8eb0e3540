package stream_watch

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	record_cache "twitch_stream_watcher/internal/client/record-cache"
	"twitch_stream_watcher/internal/models"
)

// Refresh runs one reconciliation cycle. Stages are strictly ordered: user
// records first, then any pending game refresh, then stream interpretation.
// The loop re-checks the pending flags after every stage so work discovered
// mid-cycle, like game ids seen on freshly live streams, is picked up in the
// same cycle instead of recursing.
func (sws *StreamWatchService) Refresh(ctx context.Context, reason string) error {
	sws.mu.Lock()
	defer sws.mu.Unlock()

	logrus.Infof("stream refresh (%s)", reason)

	streamsInterpreted := false
	for pass := 0; pass < maxRefreshPasses; pass++ {
		switch {
		case sws.userRefreshDue():
			sws.pendingUserRefresh = true
			err := sws.refreshUsers(ctx)
			sws.pendingUserRefresh = false
			if err != nil {
				return errors.Wrap(err, "refreshUsers")
			}

		case sws.pendingGameRefresh:
			err := sws.refreshGames(ctx)
			sws.pendingGameRefresh = false
			if err != nil {
				return errors.Wrap(err, "refreshGames")
			}

		case !streamsInterpreted:
			if err := sws.refreshStreams(ctx); err != nil {
				return errors.Wrap(err, "refreshStreams")
			}
			streamsInterpreted = true
			// reconciliation may have set pendingGameRefresh, the next
			// pass handles it

		default:
			return nil
		}
	}

	return nil
}

func (sws *StreamWatchService) userRefreshDue() bool {
	if sws.pendingUserRefresh {
		return true
	}
	if sws.lastUserRefresh.IsZero() {
		return true
	}
	return sws.clock.Now().Sub(sws.lastUserRefresh) >= userRefreshStaleness
}

// refreshUsers re-resolves the channel list and merges fresh user records
// over the stored ones. Users the api no longer returns stay cached forever.
func (sws *StreamWatchService) refreshUsers(ctx context.Context) error {
	names := sws.channelSource.Resolve(ctx)
	if len(names) > 0 {
		sws.channelNames = names
	}
	if len(sws.channelNames) == 0 {
		logrus.Warn("channel list is empty, nothing to refresh")
		return nil
	}

	data, err := sws.twitchClient.GetUserInfo(ctx, sws.channelNames)
	if err != nil {
		return errors.Wrap(err, "GetUserInfo")
	}

	for _, payload := range data.Data {
		id := payload.ID()
		if id == "" {
			continue
		}
		sws.users[id] = models.MergeRecords(sws.users[id], payload)
	}

	now := sws.clock.Now()
	sws.lastUserRefresh = now

	err = sws.recordCache.Put(ctx, record_cache.UsersNamespace, sws.users, now)
	if err != nil {
		logrus.Warnf("could not persist user records: %v", err)
	}

	return nil
}

func (sws *StreamWatchService) refreshGames(ctx context.Context) error {
	ids := sws.watchedGameIDs.SortedValues()
	if len(ids) == 0 {
		return nil
	}

	data, err := sws.twitchClient.GetGamesInfo(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "GetGamesInfo")
	}

	for _, payload := range data.Data {
		id := payload.ID()
		if id == "" {
			continue
		}
		sws.games[id] = models.MergeRecords(sws.games[id], payload)
	}

	err = sws.recordCache.Put(ctx, record_cache.GamesNamespace, sws.games, sws.clock.Now())
	if err != nil {
		logrus.Warnf("could not persist game records: %v", err)
	}

	return nil
}

func (sws *StreamWatchService) refreshStreams(ctx context.Context) error {
	if len(sws.channelNames) == 0 {
		// warm restart: cached records were fresh enough to skip the user
		// stage, so the channel list was never resolved this process
		names := sws.channelSource.Resolve(ctx)
		if len(names) == 0 {
			logrus.Warn("channel list is empty, nothing to refresh")
			return nil
		}
		sws.channelNames = names
	}

	data, err := sws.twitchClient.GetActiveStreamInfoByUsers(ctx, sws.channelNames)
	if err != nil {
		return errors.Wrap(err, "GetActiveStreamInfoByUsers")
	}

	sws.reconcileStreams(ctx, data.StreamInfo)

	return nil
}
