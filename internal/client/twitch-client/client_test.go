package twitch_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticTokenService struct {
	token string
}

func (s *staticTokenService) GetCurrentToken(ctx context.Context) string {
	return s.token
}

func testClient(url string) *TwitchClient {
	return &TwitchClient{
		apiHost:            url,
		twitchTokenService: &staticTokenService{token: "test-token"},
	}
}

func TestGetUserInfoSplitsIdsAndLogins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/helix/users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}

		query := r.URL.Query()
		if got := query["id"]; len(got) != 1 || got[0] != "123" {
			t.Errorf("id params = %v", got)
		}
		if got := query["login"]; len(got) != 1 || got[0] != "alice" {
			t.Errorf("login params = %v", got)
		}

		w.Write([]byte(`{"data":[{"id":"123","login":"bob"},{"id":"77","login":"alice"}]}`))
	}))
	defer srv.Close()

	data, err := testClient(srv.URL).GetUserInfo(context.Background(), []string{"123", "alice"})
	if err != nil {
		t.Fatalf("GetUserInfo: %v", err)
	}
	if len(data.Data) != 2 {
		t.Fatalf("got %d users, want 2", len(data.Data))
	}
	if data.Data[1].Login() != "alice" {
		t.Fatalf("second user login = %q", data.Data[1].Login())
	}
}

func TestGetUserInfoUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized","status":401,"message":"Invalid OAuth token"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetUserInfo(context.Background(), []string{"alice"})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Invalid OAuth token" {
		t.Fatalf("err = %q", err.Error())
	}
}

func TestGetUserInfoServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetUserInfo(context.Background(), []string{"alice"})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "get twitch users failed with status code: 500" {
		t.Fatalf("err = %q", err.Error())
	}
}

func TestGetGamesInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/helix/games" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query()["id"]; len(got) != 2 {
			t.Errorf("id params = %v", got)
		}

		w.Write([]byte(`{"data":[{"id":"509658","name":"Just Chatting"},{"id":"32982","name":"Grand Theft Auto V"}]}`))
	}))
	defer srv.Close()

	data, err := testClient(srv.URL).GetGamesInfo(context.Background(), []string{"509658", "32982"})
	if err != nil {
		t.Fatalf("GetGamesInfo: %v", err)
	}
	if len(data.Data) != 2 {
		t.Fatalf("got %d games, want 2", len(data.Data))
	}
	if data.Data[0].Name() != "Just Chatting" {
		t.Fatalf("first game name = %q", data.Data[0].Name())
	}
}

func TestGetActiveStreamInfoByUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/helix/streams" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		query := r.URL.Query()
		if got := query["user_login"]; len(got) != 2 {
			t.Errorf("user_login params = %v", got)
		}
		if got := query["user_id"]; len(got) != 1 || got[0] != "555" {
			t.Errorf("user_id params = %v", got)
		}

		w.Write([]byte(`{"data":[{"id":"1","user_login":"alice","type":"live","viewer_count":42}],"pagination":{}}`))
	}))
	defer srv.Close()

	data, err := testClient(srv.URL).GetActiveStreamInfoByUsers(context.Background(), []string{"alice", "bob", "555"})
	if err != nil {
		t.Fatalf("GetActiveStreamInfoByUsers: %v", err)
	}
	if len(data.StreamInfo) != 1 {
		t.Fatalf("got %d streams, want 1", len(data.StreamInfo))
	}

	stream := data.StreamInfo[0]
	if stream.UserLogin() != "alice" {
		t.Fatalf("user_login = %q", stream.UserLogin())
	}
	if stream.StreamType() != "live" {
		t.Fatalf("type = %q", stream.StreamType())
	}
	if stream.ViewerCount() != 42 {
		t.Fatalf("viewer_count = %d", stream.ViewerCount())
	}
}
