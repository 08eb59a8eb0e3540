package repository

import (
	"context"
	"errors"

	"twitch_stream_watcher/internal/models"

	"github.com/lib/pq"
)

func (dbr *DBRepository) GetSubscriptionsByChannels(ctx context.Context, channels []string) (subs []models.ChannelSubscription, err error) {

	query := `
				select
					cs.id,
					cs.chat_id,
					cs.channel
				from channel_subscriptions cs
				where cs.is_active = true
					and cs.channel = ANY($1)
				order by cs.id;
			`

	err = dbr.db.SelectContext(ctx, &subs, query, pq.StringArray(channels))
	if err != nil {
		return []models.ChannelSubscription{}, err
	}

	return
}

func (dbr *DBRepository) GetSubscriptionsByChat(ctx context.Context, chatID int64) (subs []models.ChannelSubscription, err error) {

	query := `
				select
					cs.id,
					cs.chat_id,
					cs.channel
				from channel_subscriptions cs
				where cs.is_active = true
					and cs.chat_id = $1
				order by cs.channel;
			`

	err = dbr.db.SelectContext(ctx, &subs, query, chatID)
	if err != nil {
		return []models.ChannelSubscription{}, err
	}

	return
}

func (dbr *DBRepository) AddChannelSubscription(ctx context.Context, chatID int64, channel string) (err error) {

	query := `
				insert into channel_subscriptions (chat_id, channel)
					values ($1, $2)
				on conflict (chat_id, channel)
					do update
					set (is_active, updated_at) = (true, now());
	`

	res, err := dbr.db.ExecContext(ctx, query, chatID, channel)
	if err != nil {
		return err
	}

	_, err = res.RowsAffected()
	if err != nil {
		return err
	}

	return
}

func (dbr *DBRepository) RemoveChannelSubscription(ctx context.Context, chatID int64, channel string) (err error) {

	query := `
				update channel_subscriptions
					set (is_active, updated_at) = (false, now())
					where chat_id = $1
						and channel = $2
						and is_active = true;
	`

	res, err := dbr.db.ExecContext(ctx, query, chatID, channel)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n < 1 {
		return errors.New("subscription not found")
	}

	return
}
