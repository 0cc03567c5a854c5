package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidshare/vidshare-be/model"
)

func baseVideo() *model.Video {
	return &model.Video{
		Id:     "v2",
		PostId: 2,
		Engagement: model.Engagement{
			Likes: 10,
		},
		Actor: &model.Actor{Id: "a9", Username: "creator_jo"},
		Comments: []*model.Comment{
			{
				Engagement:        model.Engagement{Likes: 3},
				CommentId:         1,
				Body:              "first!",
				Time:              1000,
				AllowInteractions: true,
				Subcomments: []*model.Subcomment{
					{CommentId: 2, Body: "second!", Time: 2000},
				},
			},
			{
				CommentId:         5,
				Body:              "anyone else watching this twice?",
				Time:              5000,
				AllowInteractions: true,
			},
		},
	}
}

func selfActor() *model.Actor {
	return &model.Actor{Id: "p1", Username: "Viewer Frog7"}
}

func TestReplay_NilActionSortsBaseComments(t *testing.T) {
	result := Replay(baseVideo(), nil, selfActor())

	require.Len(t, result.Comments, 2)
	assert.Equal(t, int64(5), result.Comments[0].CommentId)
	assert.Equal(t, int64(1), result.Comments[1].CommentId)
	assert.Equal(t, 10, result.Likes)
	assert.False(t, result.Liked)
}

func TestReplay_PostLevelOverlay(t *testing.T) {
	action := &model.FeedAction{PostId: 2, Liked: true, Flagged: true}
	result := Replay(baseVideo(), action, selfActor())

	assert.True(t, result.Liked)
	assert.Equal(t, 11, result.Likes)
	assert.True(t, result.Flagged)
	assert.False(t, result.Unliked)
	assert.Equal(t, 0, result.Unlikes)
}

func TestReplay_IsIdempotentAcrossInvocations(t *testing.T) {
	video := baseVideo()
	action := &model.FeedAction{
		PostId: 2,
		Liked:  true,
		Comments: []*model.ActionedComment{
			{CommentId: 1, Liked: true},
		},
	}

	first := Replay(video, action, selfActor())
	second := Replay(video, action, selfActor())

	// Counts reflect the log, not how many times the feed was read.
	assert.Equal(t, 11, first.Likes)
	assert.Equal(t, 11, second.Likes)
	assert.Equal(t, 4, findComment(second, 1).Likes)

	// The base script itself is untouched.
	assert.Equal(t, 10, video.Likes)
	assert.Equal(t, 3, video.Comments[0].Likes)
}

func TestReplay_CommentReferenceDeltas(t *testing.T) {
	action := &model.FeedAction{
		PostId: 2,
		Comments: []*model.ActionedComment{
			{CommentId: 1, Liked: true, Flagged: true},
			{CommentId: 2, Unliked: true}, // subcomment target
			{CommentId: 404, Liked: true}, // unknown, silently dropped
		},
	}
	result := Replay(baseVideo(), action, selfActor())

	liked := findComment(result, 1)
	require.NotNil(t, liked)
	assert.Equal(t, 4, liked.Likes)
	assert.True(t, liked.Liked)
	assert.True(t, liked.Flagged)

	sub := liked.Subcomments[0]
	assert.True(t, sub.Unliked)
	assert.Equal(t, 1, sub.Unlikes)
}

func TestReplay_NewTopLevelComment(t *testing.T) {
	action := &model.FeedAction{
		PostId: 2,
		Comments: []*model.ActionedComment{
			{NewComment: true, NewCommentId: 301, Body: "adding my take", RelativeTime: 9000, Liked: true},
		},
	}
	result := Replay(baseVideo(), action, selfActor())

	require.Len(t, result.Comments, 3)
	// time 9000 is newest, so it sorts first
	added := result.Comments[0]
	assert.Equal(t, int64(301), added.CommentId)
	assert.Equal(t, "adding my take", added.Body)
	assert.Equal(t, int64(9000), added.Time)
	assert.Equal(t, "Viewer Frog7", added.Actor.Username)
	assert.True(t, added.Liked)
	assert.Equal(t, 1, added.Likes)
	assert.True(t, added.AllowInteractions)
}

func TestReplay_ReplyAttachesToParent(t *testing.T) {
	action := &model.FeedAction{
		PostId: 2,
		Comments: []*model.ActionedComment{
			{NewComment: true, NewCommentId: 302, Body: "replying to you", RelativeTime: 1500, ReplyTo: 1, ParentComment: 1},
		},
	}
	result := Replay(baseVideo(), action, selfActor())

	parent := findComment(result, 1)
	require.NotNil(t, parent)
	require.Len(t, parent.Subcomments, 2)

	bodies := []string{parent.Subcomments[0].Body, parent.Subcomments[1].Body}
	assert.Contains(t, bodies, "replying to you")
	// merged set is re-sorted ascending: 1500 before 2000
	assert.Equal(t, int64(302), parent.Subcomments[0].CommentId)
	assert.Equal(t, int64(1), parent.Subcomments[0].ReplyTo)
}

func TestReplay_ReplyToUnknownParentIsDropped(t *testing.T) {
	action := &model.FeedAction{
		PostId: 2,
		Comments: []*model.ActionedComment{
			{NewComment: true, NewCommentId: 303, Body: "orphan", RelativeTime: 1500, ReplyTo: 404, ParentComment: 404},
		},
	}
	result := Replay(baseVideo(), action, selfActor())

	for _, comment := range result.Comments {
		for _, sub := range comment.Subcomments {
			assert.NotEqual(t, int64(303), sub.CommentId)
		}
	}
}

// Pins the observed ordering asymmetry: top-level comments newest-first,
// merged subcomment threads oldest-first. Both directions are load-bearing
// for how the scripted content renders, so neither may be "fixed" casually.
func TestReplay_SortDirectionsDiffer(t *testing.T) {
	video := baseVideo()
	action := &model.FeedAction{
		PostId: 2,
		Comments: []*model.ActionedComment{
			{NewComment: true, NewCommentId: 310, Body: "late reply", RelativeTime: 9000, ReplyTo: 1, ParentComment: 1},
			{NewComment: true, NewCommentId: 311, Body: "early reply", RelativeTime: 100, ReplyTo: 1, ParentComment: 1},
			{NewComment: true, NewCommentId: 312, Body: "top level", RelativeTime: 400},
		},
	}
	result := Replay(video, action, selfActor())

	// Top-level: descending by time.
	times := make([]int64, len(result.Comments))
	for i, comment := range result.Comments {
		times[i] = comment.Time
	}
	for i := 1; i < len(times); i++ {
		assert.GreaterOrEqual(t, times[i-1], times[i])
	}

	// Subcomments under the merged parent: ascending by time.
	parent := findComment(result, 1)
	require.NotNil(t, parent)
	require.Len(t, parent.Subcomments, 3)
	assert.Equal(t, int64(311), parent.Subcomments[0].CommentId)
	assert.Equal(t, int64(2), parent.Subcomments[1].CommentId)
	assert.Equal(t, int64(310), parent.Subcomments[2].CommentId)
}
