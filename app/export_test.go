package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidshare/vidshare-be/config"
	"github.com/vidshare/vidshare-be/model"
)

func TestWriteActionsCSV(t *testing.T) {
	msgs := config.DefaultMessages()
	database := scienceDatabase(msgs)
	database.participants = []*model.Participant{
		{
			Id:        "p1",
			Condition: model.ConditionObjCom,
			Interest:  "Science",
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	database.actionLogs["p1"] = model.FeedActionLog{
		{
			PostId:  1,
			Flagged: true,
			Comments: []*model.ActionedComment{
				{CommentId: 13, Flagged: true},
				{NewComment: true, NewCommentId: 96, Body: "scripted objection echo"},
				{NewComment: true, NewCommentId: 210, Body: "my reply", RelativeTime: 800, ReplyTo: 13, ParentComment: 13},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteActionsCSV(context.Background(), database, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	// header + post row + flag ref + reply; the sentinel-id entry is scripted
	// content and must not be exported as a participant action
	require.Len(t, rows, 4)
	assert.Equal(t, actionsHeader, rows[0])

	assert.Equal(t, "post", rows[1][5])
	assert.Equal(t, "1", rows[1][10]) // flagged

	assert.Equal(t, "comment_ref", rows[2][5])
	assert.Equal(t, "13", rows[2][6])

	assert.Equal(t, "reply", rows[3][5])
	assert.Equal(t, "210", rows[3][6])
	assert.Equal(t, "13", rows[3][12])

	for _, row := range rows[1:] {
		assert.Equal(t, "p1", row[0])
		assert.Equal(t, "Obj:Com:NoRef", row[1])
	}
}

func TestWritePageViewsCSV(t *testing.T) {
	msgs := config.DefaultMessages()
	database := scienceDatabase(msgs)
	database.participants = []*model.Participant{
		{Id: "p1", Condition: model.ConditionControl},
	}
	database.pageViews = map[string][]*model.PageView{
		"p1": {
			{ParticipantId: "p1", Page: "feed", Ms: 42000, CreatedAt: time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePageViewsCSV(context.Background(), database, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"p1", "Control", "feed", "42000", "2026-03-01T12:05:00Z"}, rows[1])
}
