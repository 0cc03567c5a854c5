package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	db2 "github.com/vidshare/vidshare-be/db"
	"github.com/vidshare/vidshare-be/model"
)

// Database decorates a db.Database with a redis read-through cache for the
// script sets. Scripts are immutable between waves, so the only
// invalidation is the TTL. Redis being down just means every read falls
// through to mysql.
type Database struct {
	db2.Database
	client *redis.Client
	ttl    time.Duration
}

func Wrap(database db2.Database, client *redis.Client, ttl time.Duration) *Database {
	return &Database{
		Database: database,
		client:   client,
		ttl:      ttl,
	}
}

const scriptKeyPrefix = "vidshare:script:"

func (c *Database) GetScriptsForInterest(ctx context.Context, interest string) ([]*model.Video, error) {
	key := scriptKeyPrefix + interest

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var videos []*model.Video
		if unmarshalErr := json.Unmarshal([]byte(cached), &videos); unmarshalErr == nil {
			return videos, nil
		}
		logrus.WithField("interest", interest).Warn("cached script is malformed, refetching")
	} else if err != redis.Nil {
		logrus.WithError(err).Warn("script cache read failed")
	}

	videos, err := c.Database.GetScriptsForInterest(ctx, interest)
	if err != nil {
		return nil, err
	}

	if doc, marshalErr := json.Marshal(videos); marshalErr == nil {
		if setErr := c.client.Set(ctx, key, doc, c.ttl).Err(); setErr != nil {
			logrus.WithError(setErr).Warn("script cache write failed")
		}
	}
	return videos, nil
}
