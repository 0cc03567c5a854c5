package mysql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/upper/db/v4"

	db2 "github.com/vidshare/vidshare-be/db"
	"github.com/vidshare/vidshare-be/model"
)

type ParticipantDB struct {
	sess db.Session
}

func getParticipantDB(sess db.Session) *ParticipantDB {
	return &ParticipantDB{sess}
}

func (pdb *ParticipantDB) CreateParticipant(ctx context.Context, req *db2.CreateParticipant) (string, error) {
	id := uuid.NewString()
	_, err := pdb.sess.SQL().
		InsertInto("participant").
		Columns("id", "token", "alias", "avatar", "interest", "cond", "created_at").
		Values(id, req.Token, req.Alias, req.Avatar, req.Interest, req.Condition, time.Now().UTC()).
		ExecContext(ctx)
	if err != nil {
		return "", errors.Wrap(err, "creating participant")
	}
	return id, nil
}

func (pdb *ParticipantDB) GetParticipantByToken(ctx context.Context, token string) (*model.Participant, error) {
	var participant model.Participant
	if err := pdb.sess.SQL().
		Select("*").
		From("participant").
		Where("token = ?", token).
		IteratorContext(ctx).
		One(&participant); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "looking up participant by token")
	}
	return &participant, nil
}

func (pdb *ParticipantDB) GetParticipants(ctx context.Context) ([]*model.Participant, error) {
	var participants []*model.Participant
	if err := pdb.sess.SQL().
		Select("*").
		From("participant").
		OrderBy("created_at").
		IteratorContext(ctx).
		All(&participants); err != nil {
		return nil, errors.Wrap(err, "listing participants")
	}
	return participants, nil
}

type conditionCount struct {
	Condition model.Condition `db:"cond"`
	Count     int             `db:"n"`
}

func (pdb *ParticipantDB) CountByCondition(ctx context.Context) (map[model.Condition]int, error) {
	var rows []conditionCount
	if err := pdb.sess.SQL().
		Select("cond", db.Raw("COUNT(*) as n")).
		From("participant").
		GroupBy("cond").
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, errors.Wrap(err, "counting participants per condition")
	}
	counts := make(map[model.Condition]int, len(rows))
	for _, row := range rows {
		counts[row.Condition] = row.Count
	}
	return counts, nil
}
