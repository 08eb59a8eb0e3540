package twitch_token

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	dbRepository "twitch_stream_watcher/db/repository"
	twitch_oauth_client "twitch_stream_watcher/internal/client/twitch-oauth-client"
)

const (
	twitchTokeCheckBGSync = "twitchTokenCheck_BGSync"
	tokenInvalid          = "token invalid"
)

type TwitchTokenService struct {
	dbRepo            *dbRepository.DBRepository
	twitchOauthClient *twitch_oauth_client.TwitchOauthClient

	mu    sync.RWMutex
	token string
}

func NewTwitchTokenService(dbRepo *dbRepository.DBRepository, twitchOauthClient *twitch_oauth_client.TwitchOauthClient) (*TwitchTokenService, error) {
	service := &TwitchTokenService{
		dbRepo:            dbRepo,
		twitchOauthClient: twitchOauthClient,
	}

	ctx := context.Background()
	err := service.Sync(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Sync")
	}

	return service, nil
}

// GetCurrentToken returns the app access token loaded by the last Sync.
func (tts *TwitchTokenService) GetCurrentToken(ctx context.Context) string {
	tts.mu.RLock()
	defer tts.mu.RUnlock()

	return tts.token
}

func (tts *TwitchTokenService) setCurrentToken(token string) {
	tts.mu.Lock()
	defer tts.mu.Unlock()

	tts.token = token
}

// Sync makes sure a valid app access token is stored and cached in memory.
// An invalid stored token is replaced and marked expired in one transaction.
func (tts *TwitchTokenService) Sync(ctx context.Context) error {

	tx, err := tts.dbRepo.BeginTransaction(ctx)
	if err != nil {
		return errors.Wrap(err, "BeginTransaction")
	}

	defer tx.Rollback()

	token, found, err := tts.dbRepo.GetNotExpiredToken(ctx, tx)
	if err != nil {
		return errors.Wrap(err, "GetNotExpiredToken")
	}

	if !found {

		newToken, err := tts.requestToken(ctx)
		if err != nil {
			return errors.Wrap(err, "requestToken")
		}

		err = tts.dbRepo.AddToken(ctx, tx, newToken)
		if err != nil {
			return errors.Wrap(err, "AddToken")
		}

		if err = tx.Commit(); err != nil {
			return errors.Wrap(err, "Commit")
		}

		tts.setCurrentToken(newToken)

		return nil
	}

	_, err = tts.twitchOauthClient.TwitchOAuthValidateToken(ctx, token)
	if err != nil {
		if err.Error() == tokenInvalid {

			newToken, err := tts.requestToken(ctx)
			if err != nil {
				return errors.Wrap(err, "requestToken")
			}

			err = tts.dbRepo.AddToken(ctx, tx, newToken)
			if err != nil {
				return errors.Wrap(err, "AddToken")
			}

			err = tts.dbRepo.SetExpiredToken(ctx, tx, token)
			if err != nil {
				return errors.Wrap(err, "SetExpiredToken")
			}

			if err = tx.Commit(); err != nil {
				return errors.Wrap(err, "Commit")
			}

			tts.setCurrentToken(newToken)

			return nil
		}

		return errors.Wrap(err, "TwitchOAuthValidateToken")
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "Commit")
	}

	tts.setCurrentToken(token)

	return nil
}

func (tts *TwitchTokenService) requestToken(ctx context.Context) (string, error) {
	tokenInfo, err := tts.twitchOauthClient.TwitchOAuthGetToken(ctx)
	if err != nil {
		return "", errors.Wrap(err, "TwitchOAuthGetToken")
	}

	if tokenInfo == nil {
		return "", errors.Wrap(errors.New("empty client resp"), "TwitchOAuthGetToken")
	}

	return tokenInfo.AccessToken, nil
}

func (tts *TwitchTokenService) SyncBg(ctx context.Context, updateInterval time.Duration) {
	ticker := time.NewTicker(updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("stoping bg %s process", twitchTokeCheckBGSync)
			return
		case <-ticker.C:
			logrus.Infof("started bg %s process", twitchTokeCheckBGSync)
			err := tts.Sync(ctx)
			if err != nil {
				logrus.Infof("could not check twitch token: %v", err)
				continue
			}
			logrus.Info("twitch token check was complited")
		}
	}
}
