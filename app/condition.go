package app

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vidshare/vidshare-be/config"
	"github.com/vidshare/vidshare-be/db"
	"github.com/vidshare/vidshare-be/model"
)

// Display-time pins, in milliseconds relative to the participant's account
// creation. The harassment comment must always render older than the
// objection, and both older than anything the participant posts themselves.
const (
	HarassmentTimeOffset int64 = -6 * 60 * 60 * 1000
	ObjectionTimeOffset  int64 = -3 * 60 * 60 * 1000
)

const (
	// ObjectionCommentId is the reserved id of the injected objection
	// subcomment. The export job relies on it to tell injected content
	// apart from participant replies, so it must stay exact.
	ObjectionCommentId int64 = 96

	// SyntheticHarassmentCommentId marks a harassment comment the engine
	// had to fabricate because the script carried no comments at all.
	SyntheticHarassmentCommentId int64 = 999
)

const (
	ClassOffense = "offense1"

	ClassAIRemovalNoRef            = "ai_removal_no_ref"
	ClassAIRemovalCommunity        = "ai_removal_community"
	ClassCommunityRemovalNoRef     = "community_removal_no_ref"
	ClassCommunityRemovalCommunity = "community_removal_community"

	ClassAIObjectionNoRef        = "ai_objection_no_ref"
	ClassAIObjectionCommunity    = "ai_objection_community"
	ClassHumanObjectionNoRef     = "human_objection_no_ref"
	ClassHumanObjectionCommunity = "human_objection_community"

	ClassUserComment = "user_comment"
)

var removalClasses = map[string]bool{
	ClassAIRemovalNoRef:            true,
	ClassAIRemovalCommunity:        true,
	ClassCommunityRemovalNoRef:     true,
	ClassCommunityRemovalCommunity: true,
}

// IsHarassmentClass reports whether a class tag marks the harassment comment
// in any of its per-condition disguises.
func IsHarassmentClass(class string) bool {
	return class == ClassOffense || removalClasses[class]
}

// ApplyCondition mutates the first video of a participant's 3-video set
// according to their experimental arm and returns it. Videos 2 and 3 are
// never passed in here. Missing reference data degrades to a partial or
// skipped manipulation, never an error: a slightly incomplete feed beats a
// broken one for study continuity.
func ApplyCondition(
	ctx context.Context,
	actors db.ActorDatabase,
	video *model.Video,
	condition model.Condition,
	study config.Study,
	msgs config.Messages,
) *model.Video {
	harassment := findHarassmentComment(video, msgs.HarassmentBody)
	if harassment == nil {
		if len(video.Comments) > 0 {
			if condition != model.ConditionControl {
				logrus.WithField("postID", video.PostId).
					Warn("no harassment comment in script, skipping manipulation")
			}
			return video
		}
		harassment = synthesizeHarassmentComment(ctx, actors, study, msgs)
		video.Comments = append(video.Comments, harassment)
	}

	harassment.Time = HarassmentTimeOffset
	harassment.Likes = 0
	harassment.Unlikes = 0
	if !condition.IsObjection() {
		harassment.Subcomments = []*model.Subcomment{}
	}

	switch condition {
	case model.ConditionControl:
		harassment.Body = msgs.HarassmentBody
		harassment.Class = ClassOffense
		harassment.Removed = false
		harassment.AllowInteractions = true
	case model.ConditionRemAI:
		applyRemoval(harassment, ClassAIRemovalNoRef, msgs.RemovalAINoRef)
	case model.ConditionRemAIRef:
		applyRemoval(harassment, ClassAIRemovalCommunity, msgs.RemovalAIRef)
	case model.ConditionRemCom:
		applyRemoval(harassment, ClassCommunityRemovalNoRef, msgs.RemovalComNoRef)
	case model.ConditionRemComRef:
		applyRemoval(harassment, ClassCommunityRemovalCommunity, msgs.RemovalComRef)
	case model.ConditionObjAI:
		injectObjection(ctx, actors, harassment, condition, ClassAIObjectionNoRef, msgs.ObjectionAINoRef, study)
	case model.ConditionObjAIRef:
		injectObjection(ctx, actors, harassment, condition, ClassAIObjectionCommunity, msgs.ObjectionAIRef, study)
	case model.ConditionObjCom:
		injectObjection(ctx, actors, harassment, condition, ClassHumanObjectionNoRef, msgs.ObjectionComNoRef, study)
	case model.ConditionObjComRef:
		injectObjection(ctx, actors, harassment, condition, ClassHumanObjectionCommunity, msgs.ObjectionComRef, study)
	default:
		logrus.WithField("condition", condition).Warn("unknown condition, leaving video untouched")
	}
	return video
}

func applyRemoval(harassment *model.Comment, class string, notice string) {
	harassment.Body = notice
	harassment.Class = class
	harassment.Removed = true
	harassment.AllowInteractions = false
	harassment.Actor = model.DeletedActor()
}

func injectObjection(
	ctx context.Context,
	actors db.ActorDatabase,
	harassment *model.Comment,
	condition model.Condition,
	class string,
	body string,
	study config.Study,
) {
	// The harassment comment itself stays visible and interactive.
	harassment.Removed = false
	harassment.AllowInteractions = true

	actor := objectionActor(ctx, actors, condition, study)
	if actor == nil {
		logrus.WithField("condition", condition).
			Warn("no objection actor available, objection not injected")
		return
	}
	harassment.Subcomments = append(harassment.Subcomments, &model.Subcomment{
		CommentId:         ObjectionCommentId,
		Body:              body,
		Actor:             actor,
		Time:              ObjectionTimeOffset,
		Class:             class,
		AllowInteractions: true,
	})
}

func objectionActor(ctx context.Context, actors db.ActorDatabase, condition model.Condition, study config.Study) *model.Actor {
	switch condition {
	case model.ConditionObjAI, model.ConditionObjAIRef:
		actor, err := actors.FindActorByUsername(ctx, study.AIUsername)
		if err != nil {
			logrus.WithError(err).Warn("AI actor lookup failed")
			return nil
		}
		return actor
	default:
		pool, err := actors.FindActorsByRoleExcluding(ctx, study.ObjectionRole, study.AIUsername)
		if err != nil {
			logrus.WithError(err).Warn("objection actor lookup failed")
			return nil
		}
		if len(pool) == 0 {
			return nil
		}
		return pool[0]
	}
}

func findHarassmentComment(video *model.Video, canonicalBody string) *model.Comment {
	for _, comment := range video.Comments {
		if IsHarassmentClass(comment.Class) {
			return comment
		}
	}
	// Fallback for seed data that predates class tagging.
	for _, comment := range video.Comments {
		if comment.Body != "" && strings.Contains(comment.Body, canonicalBody) {
			return comment
		}
	}
	return nil
}

func synthesizeHarassmentComment(ctx context.Context, actors db.ActorDatabase, study config.Study, msgs config.Messages) *model.Comment {
	actor, err := actors.FindActorByUsername(ctx, study.HarasserUsername)
	if err != nil || actor == nil {
		logrus.WithField("username", study.HarasserUsername).
			Warn("harasser actor unavailable, using deleted sentinel")
		actor = model.DeletedActor()
	}
	return &model.Comment{
		CommentId:         SyntheticHarassmentCommentId,
		Body:              msgs.HarassmentBody,
		Actor:             actor,
		Time:              HarassmentTimeOffset,
		Class:             ClassOffense,
		AllowInteractions: true,
		Subcomments:       []*model.Subcomment{},
	}
}
