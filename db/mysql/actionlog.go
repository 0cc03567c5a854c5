package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/upper/db/v4"

	db2 "github.com/vidshare/vidshare-be/db"
	"github.com/vidshare/vidshare-be/model"
)

// ActionLogDB stores one document per participant per post, merged on write.
// The feed engine only ever reads these documents.
type ActionLogDB struct {
	sess db.Session
}

func getActionLogDB(sess db.Session) *ActionLogDB {
	return &ActionLogDB{sess}
}

type feedActionRow struct {
	PostId int64  `db:"post_id"`
	Doc    string `db:"doc"`
}

func (adb *ActionLogDB) GetFeedActionLog(ctx context.Context, participantId string) (model.FeedActionLog, error) {
	var rows []feedActionRow
	if err := adb.sess.SQL().
		Select("post_id", "doc").
		From("feed_action").
		Where("participant_id = ?", participantId).
		OrderBy("post_id").
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, errors.Wrap(err, "loading feed action log")
	}

	actionLog := make(model.FeedActionLog, 0, len(rows))
	for _, row := range rows {
		var action model.FeedAction
		if err := json.Unmarshal([]byte(row.Doc), &action); err != nil {
			return nil, errors.Wrapf(err, "feed action for post %v has a malformed document", row.PostId)
		}
		action.PostId = row.PostId
		actionLog = append(actionLog, &action)
	}
	return actionLog, nil
}

func (adb *ActionLogDB) UpsertFeedAction(ctx context.Context, participantId string, action *model.FeedAction) error {
	return adb.sess.TxContext(ctx, func(sess db.Session) error {
		var existing feedActionRow
		err := sess.SQL().
			Select("post_id", "doc").
			From("feed_action").
			Where("participant_id = ? AND post_id = ?", participantId, action.PostId).
			IteratorContext(ctx).
			One(&existing)
		if err != nil && err != db.ErrNoMoreRows {
			return errors.Wrap(err, "reading feed action for merge")
		}

		merged := action
		if err == nil {
			var current model.FeedAction
			if unmarshalErr := json.Unmarshal([]byte(existing.Doc), &current); unmarshalErr != nil {
				return errors.Wrap(unmarshalErr, "stored feed action is malformed")
			}
			current.PostId = action.PostId
			current.Merge(action)
			merged = &current
		}

		doc, marshalErr := json.Marshal(merged)
		if marshalErr != nil {
			return errors.Wrap(marshalErr, "encoding feed action")
		}

		if err == db.ErrNoMoreRows {
			_, insertErr := sess.SQL().
				InsertInto("feed_action").
				Columns("participant_id", "post_id", "doc", "updated_at").
				Values(participantId, action.PostId, string(doc), time.Now().UTC()).
				ExecContext(ctx)
			return errors.Wrap(insertErr, "inserting feed action")
		}
		_, updateErr := sess.SQL().
			Update("feed_action").
			Set("doc = ?, updated_at = ?", string(doc), time.Now().UTC()).
			Where("participant_id = ? AND post_id = ?", participantId, action.PostId).
			ExecContext(ctx)
		return errors.Wrap(updateErr, "updating feed action")
	}, &sql.TxOptions{})
}

func (adb *ActionLogDB) CreatePageView(ctx context.Context, participantId string, req *db2.CreatePageView) error {
	_, err := adb.sess.SQL().
		InsertInto("page_view").
		Columns("participant_id", "page", "ms", "created_at").
		Values(participantId, req.Page, req.Ms, time.Now().UTC()).
		ExecContext(ctx)
	return errors.Wrap(err, "recording page view")
}

func (adb *ActionLogDB) GetPageViews(ctx context.Context, participantId string) ([]*model.PageView, error) {
	var views []*model.PageView
	if err := adb.sess.SQL().
		Select("*").
		From("page_view").
		Where("participant_id = ?", participantId).
		OrderBy("created_at").
		IteratorContext(ctx).
		All(&views); err != nil {
		return nil, errors.Wrap(err, "loading page views")
	}
	return views, nil
}
