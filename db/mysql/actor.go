package mysql

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/upper/db/v4"

	"github.com/vidshare/vidshare-be/model"
)

type ActorDB struct {
	sess db.Session
}

func getActorDB(sess db.Session) *ActorDB {
	return &ActorDB{sess}
}

type actorRow struct {
	Id       string `db:"id"`
	Username string `db:"username"`
	Role     string `db:"role"`
	Profile  string `db:"profile"`
}

func (adb *ActorDB) FindActorByUsername(ctx context.Context, username string) (*model.Actor, error) {
	var row actorRow
	if err := adb.sess.SQL().
		Select("id", "username", "role", "profile").
		From("actor").
		Where("username = ?", username).
		IteratorContext(ctx).
		One(&row); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "looking up actor %v", username)
	}
	return buildActorFromRow(&row)
}

func (adb *ActorDB) FindActorsByRoleExcluding(ctx context.Context, role string, excludedUsername string) ([]*model.Actor, error) {
	var rows []actorRow
	if err := adb.sess.SQL().
		Select("id", "username", "role", "profile").
		From("actor").
		Where("role = ? AND username <> ?", role, excludedUsername).
		OrderBy("id").
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, errors.Wrapf(err, "looking up actors with role %v", role)
	}
	actors := make([]*model.Actor, len(rows))
	for i, row := range rows {
		actor, err := buildActorFromRow(&row)
		if err != nil {
			return nil, err
		}
		actors[i] = actor
	}
	return actors, nil
}

func buildActorFromRow(row *actorRow) (*model.Actor, error) {
	var profile model.Profile
	if row.Profile != "" {
		if err := json.Unmarshal([]byte(row.Profile), &profile); err != nil {
			return nil, errors.Wrapf(err, "actor %v has a malformed profile", row.Id)
		}
	}
	return &model.Actor{
		Id:       row.Id,
		Username: row.Username,
		Role:     row.Role,
		Profile:  &profile,
	}, nil
}
