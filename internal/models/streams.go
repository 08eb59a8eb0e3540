package models

type StreamType string

var (
	StreamLive StreamType = "live"
	// StreamOffline never comes from twitch, the watcher commits it after a
	// channel stayed unseen for the full timeout window.
	StreamOffline StreamType = "offline"
)

const TwitchWWWSchemeHost = "https://www.twitch.tv"

type GetActiveStreamInfoByUserReq struct {
	ID string `json:"id"`
}

type Streams struct {
	StreamInfo []Record   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Cursor string `json:"cursor"`
}

// StreamState is the merged per-channel view rebuilt on every refresh:
// previous fields, the owning user record and the fresh stream payload
// folded together, later sources winning.
type StreamState struct {
	Fields Record
	User   Record
	// Game is the record for the stream's current game_id, nil until the
	// game cache has an entry for it.
	Game Record
	// Timeout counts consecutive refreshes the channel was polled but not
	// seen live. Once it reaches the offline threshold the offline sentinel
	// is committed.
	Timeout int
}

func (s *StreamState) Online() bool {
	return s != nil && s.Fields.StreamType() == StreamLive
}
