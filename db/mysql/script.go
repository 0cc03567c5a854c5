package mysql

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/upper/db/v4"

	"github.com/vidshare/vidshare-be/model"
)

// ScriptDB reads the seeded content script. Each video is stored as one row
// with its whole nested document (actor, comments, subcomments) in a JSON
// column; the script is written once by the seeding tool and treated as
// immutable here.
type ScriptDB struct {
	sess db.Session
}

func getScriptDB(sess db.Session) *ScriptDB {
	return &ScriptDB{sess}
}

type scriptRow struct {
	Id       string `db:"id"`
	Interest string `db:"interest"`
	PostId   int64  `db:"post_id"`
	Doc      string `db:"doc"`
}

func (sdb *ScriptDB) GetScriptsForInterest(ctx context.Context, interest string) ([]*model.Video, error) {
	var rows []scriptRow
	if err := sdb.sess.SQL().
		Select("id", "interest", "post_id", "doc").
		From("script_post").
		Where("interest = ?", interest).
		OrderBy("post_id").
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, errors.Wrap(err, "loading script posts")
	}

	videos := make([]*model.Video, len(rows))
	for i, row := range rows {
		var video model.Video
		if err := json.Unmarshal([]byte(row.Doc), &video); err != nil {
			return nil, errors.Wrapf(err, "script post %v has a malformed document", row.Id)
		}
		video.Id = row.Id
		video.InterestClass = row.Interest
		video.PostId = row.PostId
		videos[i] = &video
	}
	return videos, nil
}

func (sdb *ScriptDB) GetInterests(ctx context.Context) ([]*model.Interest, error) {
	var interests []*model.Interest
	if err := sdb.sess.SQL().
		Select("*").
		From("interest").
		OrderBy("name").
		IteratorContext(ctx).
		All(&interests); err != nil {
		return nil, errors.Wrap(err, "loading interests")
	}
	return interests, nil
}
