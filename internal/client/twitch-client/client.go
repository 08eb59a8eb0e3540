package twitch_client

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"time"

	"twitch_stream_watcher/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const twitchApiSchemeHost = "https://api.twitch.tv"

var digitCheck = regexp.MustCompile(`^[0-9]+$`) // check if have only digits

type tokenService interface {
	GetCurrentToken(ctx context.Context) string
}

type TwitchClient struct {
	apiHost            string
	twitchTokenService tokenService
}

func NewTwitchClient(twitchTokenService tokenService) *TwitchClient {
	return &TwitchClient{
		apiHost:            twitchApiSchemeHost,
		twitchTokenService: twitchTokenService,
	}
}

// helixGet performs an authorized request against a helix endpoint and
// decodes the response envelope into out. A 401 carries the api's own
// message, which is surfaced as the error text.
func (twc *TwitchClient) helixGet(ctx context.Context, path, label string, query url.Values, out interface{}) error {

	client := http.Client{
		Timeout: time.Second * 5,
	}

	req, err := http.NewRequest("GET", twc.apiHost+path, nil)
	if err != nil {
		return err
	}

	req.URL.RawQuery = query.Encode()

	req.Header.Add("Client-Id", os.Getenv("TWITCH_CLIENT_ID"))
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", twc.twitchTokenService.GetCurrentToken(ctx)))

	resp, err := client.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	readedResp, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			var unauthorizedResp models.HelixUnauthorized
			err = jsoniter.Unmarshal(readedResp, &unauthorizedResp)
			if err != nil {
				return err
			}

			return errors.New(unauthorizedResp.Message)
		}

		return errors.Errorf("get %s failed with status code: %d", label, resp.StatusCode)
	}

	return jsoniter.Unmarshal(readedResp, out)
}
