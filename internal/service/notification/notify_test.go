package notification

import (
	"strings"
	"testing"

	"twitch_stream_watcher/internal/models"
)

func TestPrepareCaption(t *testing.T) {
	caption := prepareCaption("StreamerOne", "Morning run", "Chess", 321)

	for _, want := range []string{"StreamerOne stream is online!", "Morning run", "321", "Game: Chess"} {
		if !strings.Contains(caption, want) {
			t.Fatalf("caption %q missing %q", caption, want)
		}
	}
}

func TestPrepareCaptionSkipsUnknownGame(t *testing.T) {
	caption := prepareCaption("StreamerOne", "Morning run", "", 1)

	if strings.Contains(caption, "Game:") {
		t.Fatalf("caption %q should not mention a game", caption)
	}
}

func TestPrepareOfflineText(t *testing.T) {
	text := prepareOfflineText("StreamerOne")

	if !strings.Contains(text, "StreamerOne stream is offline") {
		t.Fatalf("unexpected offline text %q", text)
	}
}

func TestStateChannel(t *testing.T) {
	state := &models.StreamState{Fields: models.Record{"user_login": "StreamerOne"}}
	if got := stateChannel(state); got != "streamerone" {
		t.Fatalf("stateChannel = %q, want streamerone", got)
	}

	state = &models.StreamState{
		Fields: models.Record{},
		User:   models.Record{"login": "Backup"},
	}
	if got := stateChannel(state); got != "backup" {
		t.Fatalf("stateChannel fallback = %q, want backup", got)
	}

	if got := stateChannel(nil); got != "" {
		t.Fatalf("stateChannel(nil) = %q, want empty", got)
	}
}

func TestStateDisplayName(t *testing.T) {
	state := &models.StreamState{Fields: models.Record{"user_name": "Streamer One", "user_login": "streamerone"}}
	if got := stateDisplayName(state); got != "Streamer One" {
		t.Fatalf("stateDisplayName = %q", got)
	}

	state = &models.StreamState{
		Fields: models.Record{"user_login": "streamerone"},
		User:   models.Record{"display_name": "From User Record"},
	}
	if got := stateDisplayName(state); got != "From User Record" {
		t.Fatalf("stateDisplayName user fallback = %q", got)
	}

	state = &models.StreamState{Fields: models.Record{"user_login": "streamerone"}}
	if got := stateDisplayName(state); got != "streamerone" {
		t.Fatalf("stateDisplayName login fallback = %q", got)
	}
}

func TestGameName(t *testing.T) {
	state := &models.StreamState{
		Fields: models.Record{"game_name": "Chess"},
		Game:   models.Record{"name": "Checkers"},
	}
	if got := gameName(state); got != "Chess" {
		t.Fatalf("gameName = %q, want Chess", got)
	}

	state = &models.StreamState{
		Fields: models.Record{},
		Game:   models.Record{"name": "Checkers"},
	}
	if got := gameName(state); got != "Checkers" {
		t.Fatalf("gameName fallback = %q, want Checkers", got)
	}
}
