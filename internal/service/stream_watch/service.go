package stream_watch

import (
	"context"
	"sync"
	"time"

	"github.com/juju/clock"
	"github.com/juju/collections/set"
	"github.com/sirupsen/logrus"

	record_cache "twitch_stream_watcher/internal/client/record-cache"
	"twitch_stream_watcher/internal/models"
)

const (
	streamWatchBGSync = "streamWatch_BGSync"

	// OfflineTimeout is how many consecutive refreshes a channel may be
	// polled without appearing live before it is committed offline.
	OfflineTimeout = 5

	userRefreshStaleness = time.Minute * 10
	minPollInterval      = time.Second * 15
	startupRefreshDelay  = time.Second * 5

	// A refresh settles in at most four stages: users, a leftover game
	// refresh, streams, then the game refresh cascaded by reconciliation.
	maxRefreshPasses = 4
)

type StreamFetcher interface {
	GetUserInfo(ctx context.Context, ids []string) (*models.GetUserInfoResponse, error)
	GetGamesInfo(ctx context.Context, ids []string) (*models.GetGamesInfoResponse, error)
	GetActiveStreamInfoByUsers(ctx context.Context, ids []string) (*models.Streams, error)
}

type RecordStore interface {
	Records(ctx context.Context, namespace string) (map[string]models.Record, error)
	Put(ctx context.Context, namespace string, records map[string]models.Record, updatedAt time.Time) error
	LastUpdate(ctx context.Context, namespace string) (time.Time, error)
}

type ChannelSource interface {
	Resolve(ctx context.Context) []string
}

// LiveUpdateHandler observes a channel going online or offline. Returning an
// error vetoes the transition: the engine keeps the previous committed
// active list and redelivers the transition on a later refresh.
type LiveUpdateHandler func(ctx context.Context, state *models.StreamState, isOnline bool, channels []string) error

// OfflineHandler observes a channel committed offline, after the live update
// handlers already ran for the falling edge. Errors are logged, never block.
type OfflineHandler func(ctx context.Context, state *models.StreamState) error

type StreamWatchService struct {
	twitchClient  StreamFetcher
	recordCache   RecordStore
	channelSource ChannelSource

	clock clock.Clock

	// mu serializes every refresh and guards all state below.
	mu              sync.Mutex
	users           map[string]models.Record
	games           map[string]models.Record
	streams         map[string]*models.StreamState
	activeStreams   []string
	channelNames    []string
	watchedGameIDs  set.Strings
	lastUserRefresh time.Time

	pendingUserRefresh bool
	pendingGameRefresh bool

	liveHandlers    []LiveUpdateHandler
	offlineHandlers []OfflineHandler
}

// NewStreamWatchService warms user and game records from the record cache.
// Cache failures leave the maps empty and the first refresh rebuilds them.
func NewStreamWatchService(
	ctx context.Context,
	twitchClient StreamFetcher,
	recordCache RecordStore,
	channelSource ChannelSource,
) *StreamWatchService {
	service := &StreamWatchService{
		twitchClient:   twitchClient,
		recordCache:    recordCache,
		channelSource:  channelSource,
		clock:          clock.WallClock,
		users:          map[string]models.Record{},
		games:          map[string]models.Record{},
		streams:        map[string]*models.StreamState{},
		watchedGameIDs: set.NewStrings(),
	}

	users, err := recordCache.Records(ctx, record_cache.UsersNamespace)
	if err != nil {
		logrus.Warnf("could not load cached user records: %v", err)
	} else {
		service.users = users
	}

	games, err := recordCache.Records(ctx, record_cache.GamesNamespace)
	if err != nil {
		logrus.Warnf("could not load cached game records: %v", err)
	} else {
		service.games = games
	}

	lastUpdate, err := recordCache.LastUpdate(ctx, record_cache.UsersNamespace)
	if err != nil {
		logrus.Warnf("could not load user refresh timestamp: %v", err)
	} else {
		service.lastUserRefresh = lastUpdate
	}

	return service
}

// OnChannelLiveUpdate registers a live update handler. Handlers run in
// registration order and cannot be removed.
func (sws *StreamWatchService) OnChannelLiveUpdate(handler LiveUpdateHandler) {
	sws.mu.Lock()
	defer sws.mu.Unlock()
	sws.liveHandlers = append(sws.liveHandlers, handler)
}

// OnChannelOffline registers an offline handler.
func (sws *StreamWatchService) OnChannelOffline(handler OfflineHandler) {
	sws.mu.Lock()
	defer sws.mu.Unlock()
	sws.offlineHandlers = append(sws.offlineHandlers, handler)
}

// ActiveStreams returns the committed list of online channels.
func (sws *StreamWatchService) ActiveStreams() []string {
	sws.mu.Lock()
	defer sws.mu.Unlock()
	return append([]string{}, sws.activeStreams...)
}

// ChannelNames returns the most recently resolved channel list.
func (sws *StreamWatchService) ChannelNames() []string {
	sws.mu.Lock()
	defer sws.mu.Unlock()
	return append([]string{}, sws.channelNames...)
}

func (sws *StreamWatchService) LastUserRefresh() time.Time {
	sws.mu.Lock()
	defer sws.mu.Unlock()
	return sws.lastUserRefresh
}

// StreamStates returns a deep copy of the per-channel stream states, safe to
// read while refreshes keep running.
func (sws *StreamWatchService) StreamStates() map[string]models.StreamState {
	sws.mu.Lock()
	defer sws.mu.Unlock()

	states := make(map[string]models.StreamState, len(sws.streams))
	for channel, state := range sws.streams {
		states[channel] = copyStreamState(state)
	}

	return states
}

// StreamState returns a copy of one channel's state, or false when the
// channel is not part of the watched set.
func (sws *StreamWatchService) StreamState(channel string) (*models.StreamState, bool) {
	sws.mu.Lock()
	defer sws.mu.Unlock()

	state, ok := sws.streams[channel]
	if !ok {
		return nil, false
	}

	copied := copyStreamState(state)

	return &copied, true
}

func copyStreamState(state *models.StreamState) models.StreamState {
	copied := models.StreamState{
		Fields:  models.MergeRecords(nil, state.Fields),
		User:    models.MergeRecords(nil, state.User),
		Timeout: state.Timeout,
	}
	if state.Game != nil {
		copied.Game = models.MergeRecords(nil, state.Game)
	}

	return copied
}

// SyncBg drives refreshes until ctx is cancelled: one delayed refresh at
// startup, then one per poll interval. Intervals below the floor are raised
// to respect upstream rate limits.
func (sws *StreamWatchService) SyncBg(ctx context.Context, pollInterval time.Duration) {
	if pollInterval < minPollInterval {
		logrus.Infof("poll interval %v below minimum, using %v", pollInterval, minPollInterval)
		pollInterval = minPollInterval
	}

	startup := sws.clock.NewTimer(startupRefreshDelay)
	defer startup.Stop()

	ticker := sws.clock.NewTimer(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("stoping bg %s process", streamWatchBGSync)
			return
		case <-startup.Chan():
			sws.runRefresh(ctx, "startup")
		case <-ticker.Chan():
			sws.runRefresh(ctx, "interval")
			ticker.Reset(pollInterval)
		}
	}
}

func (sws *StreamWatchService) runRefresh(ctx context.Context, reason string) {
	logrus.Infof("started bg %s process: %s", streamWatchBGSync, reason)
	err := sws.Refresh(ctx, reason)
	if err != nil {
		logrus.Infof("could not refresh streams: %v", err)
		return
	}
	logrus.Infof("stream refresh was completed: %s", reason)
}
