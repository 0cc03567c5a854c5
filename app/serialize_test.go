package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidshare/vidshare-be/config"
	"github.com/vidshare/vidshare-be/model"
)

func TestNormalizeFeed_PreservesIdAndInteractionFlags(t *testing.T) {
	msgs := config.DefaultMessages()
	database := scienceDatabase(msgs)

	videos, err := AssembleFeed(context.Background(), database, scienceParticipant(model.ConditionRemAI), testStudy(), msgs)
	require.NoError(t, err)

	records := NormalizeFeed(videos)
	require.Len(t, records, 3)
	assert.Equal(t, "s1", records[0]["id"])
	assert.Equal(t, int64(1), records[0]["postID"])

	comments, ok := records[0]["comments"].([]map[string]interface{})
	require.True(t, ok)

	var removed map[string]interface{}
	for _, comment := range comments {
		if comment["commentID"] == int64(13) {
			removed = comment
		}
	}
	require.NotNil(t, removed)
	assert.Equal(t, "13", removed["id"])
	assert.Equal(t, false, removed["allowInteractions"])
	assert.Equal(t, true, removed["removed"])
}

func TestNormalizeFeed_FlattensActorProfiles(t *testing.T) {
	video := &model.Video{
		Id:     "v1",
		PostId: 1,
		Actor: &model.Actor{
			Id:       "a1",
			Username: "creator_jo",
			Profile:  &model.Profile{Name: "Jo", Location: "Oslo"},
		},
		Comments: []*model.Comment{},
	}
	records := NormalizeFeed([]*model.Video{video})
	require.Len(t, records, 1)

	actor, ok := records[0]["actor"].(map[string]interface{})
	require.True(t, ok)
	profile, ok := actor["profile"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Jo", profile["name"])
	assert.Equal(t, "Oslo", profile["location"])
}

func TestNormalizeFeed_KeepsOverlayEngagement(t *testing.T) {
	video := baseVideo()
	result := Replay(video, &model.FeedAction{PostId: 2, Liked: true}, selfActor())

	records := NormalizeFeed([]*model.Video{result})
	require.Len(t, records, 1)
	assert.Equal(t, true, records[0]["liked"])
	assert.Equal(t, 11, records[0]["likes"])
}
