package models

import (
	"strconv"
	"time"
)

// Record is a single twitch entity (user, game or stream payload) kept as
// raw key-value fields. Twitch extends helix responses without notice, so
// records stay dynamic and survive merges with every attribute they ever
// carried instead of being narrowed to a fixed struct.
type Record map[string]interface{}

// MergeRecords returns the field-wise union of stored and fetched. Fetched
// values win for overlapping keys, stored-only fields are preserved. Neither
// argument is modified.
func MergeRecords(stored, fetched Record) Record {
	merged := make(Record, len(stored)+len(fetched))
	for key, value := range stored {
		merged[key] = value
	}
	for key, value := range fetched {
		merged[key] = value
	}

	return merged
}

func (r Record) StringField(key string) string {
	value, ok := r[key].(string)
	if !ok {
		return ""
	}

	return value
}

// UintField reads a numeric field. Decoded json numbers arrive as float64,
// re-loaded cache records may carry them as strings.
func (r Record) UintField(key string) uint64 {
	switch value := r[key].(type) {
	case float64:
		if value < 0 {
			return 0
		}
		return uint64(value)
	case int:
		if value < 0 {
			return 0
		}
		return uint64(value)
	case int64:
		if value < 0 {
			return 0
		}
		return uint64(value)
	case uint64:
		return value
	case string:
		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	}

	return 0
}

func (r Record) TimeField(key string) time.Time {
	raw := r.StringField(key)
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func (r Record) ID() string          { return r.StringField("id") }
func (r Record) Login() string       { return r.StringField("login") }
func (r Record) DisplayName() string { return r.StringField("display_name") }
func (r Record) Name() string        { return r.StringField("name") }

func (r Record) UserId() string    { return r.StringField("user_id") }
func (r Record) UserLogin() string { return r.StringField("user_login") }
func (r Record) UserName() string  { return r.StringField("user_name") }

func (r Record) GameId() string   { return r.StringField("game_id") }
func (r Record) GameName() string { return r.StringField("game_name") }

func (r Record) Title() string          { return r.StringField("title") }
func (r Record) ViewerCount() uint64    { return r.UintField("viewer_count") }
func (r Record) StartedAt() time.Time   { return r.TimeField("started_at") }
func (r Record) StreamType() StreamType { return StreamType(r.StringField("type")) }
