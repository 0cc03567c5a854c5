package app

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vidshare/vidshare-be/config"
	"github.com/vidshare/vidshare-be/db"
	"github.com/vidshare/vidshare-be/model"
)

// ManipulationSetSize is the scripted video count per participant. The
// manipulation targets the first video of the set and is skipped outright if
// the script loads with any other shape.
const ManipulationSetSize = 3

// AssembleFeed builds a participant's personalized feed: load their scripted
// video set, apply their condition to the first video, replay their action
// log over every video, and order the result for presentation. It is
// re-executed from scratch on every page load.
func AssembleFeed(
	ctx context.Context,
	database db.Database,
	participant *model.Participant,
	study config.Study,
	msgs config.Messages,
) ([]*model.Video, error) {
	videos, err := database.GetScriptsForInterest(ctx, participant.Interest)
	if err != nil {
		return nil, err
	}

	if len(videos) == ManipulationSetSize {
		ApplyCondition(ctx, database, videos[0], participant.Condition, study, msgs)
	} else {
		logrus.WithFields(logrus.Fields{
			"interest": participant.Interest,
			"videos":   len(videos),
		}).Warn("script set has unexpected size, skipping manipulation")
	}

	// Re-pin across the whole set regardless of what the manipulation did,
	// covering removal-class variants as well as the base tag.
	pinHarassmentTimes(videos)

	actionLog, err := database.GetFeedActionLog(ctx, participant.Id)
	if err != nil {
		return nil, err
	}

	self := participant.DisplayActor()
	for i, video := range videos {
		videos[i] = Replay(video, actionLog.ForPost(video.PostId), self)
	}

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].PostId < videos[j].PostId
	})

	// Last-chance pin: any comment still tagged offense1 with the canonical
	// body keeps its scripted time no matter what earlier steps reset.
	for _, video := range videos {
		for _, comment := range video.Comments {
			if comment.Class == ClassOffense && strings.Contains(comment.Body, msgs.HarassmentBody) {
				comment.Time = HarassmentTimeOffset
			}
		}
	}

	return videos, nil
}

func pinHarassmentTimes(videos []*model.Video) {
	for _, video := range videos {
		for _, comment := range video.Comments {
			if IsHarassmentClass(comment.Class) {
				comment.Time = HarassmentTimeOffset
			}
		}
	}
}
