package app

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/vidshare/vidshare-be/model"
)

// Replay materializes one participant's view of a video by overlaying their
// action log onto the shared script. The base video is never mutated: the
// overlay is applied to a deep copy, so replaying the same log twice yields
// the same result — counts reflect the log, not how often the feed was read.
// self is the actor the participant's own comments are attributed to.
func Replay(video *model.Video, action *model.FeedAction, self *model.Actor) *model.Video {
	result := video.Clone()

	// Replies are buffered per parent and merged once at the end so a parent
	// with several new replies is only re-sorted a single time.
	pendingReplies := make(map[int64][]*model.Subcomment)

	if action != nil {
		if action.Liked {
			result.Liked = true
			result.Likes++
		}
		if action.Unliked {
			result.Unliked = true
			result.Unlikes++
		}
		if action.Flagged {
			result.Flagged = true
		}

		for _, entry := range action.Comments {
			if entry.NewComment {
				if entry.ReplyTo != 0 {
					parentId := entry.ParentComment
					if parentId == 0 {
						parentId = entry.ReplyTo
					}
					pendingReplies[parentId] = append(pendingReplies[parentId], newReplyFromLog(entry, self))
				} else {
					result.Comments = append(result.Comments, newCommentFromLog(entry, self))
				}
				continue
			}
			if !applyEntryToExisting(result, entry) {
				logrus.WithFields(logrus.Fields{
					"postID":    result.PostId,
					"commentID": entry.CommentId,
				}).Warn("action log references unknown comment, skipping")
			}
		}
	}

	// Most recent first. The pinned harassment/objection offsets are large
	// and negative, so scripted manipulation content always sorts to the
	// bottom of the thread.
	sort.SliceStable(result.Comments, func(i, j int) bool {
		return result.Comments[i].Time > result.Comments[j].Time
	})

	for parentId, replies := range pendingReplies {
		parent := findComment(result, parentId)
		if parent == nil {
			logrus.WithFields(logrus.Fields{
				"postID":   result.PostId,
				"parentID": parentId,
			}).Warn("reply parent not found, dropping replies")
			continue
		}
		parent.Subcomments = append(parent.Subcomments, replies...)
		// Note the direction: subcomment threads read oldest first, unlike
		// the top-level sort above.
		sort.SliceStable(parent.Subcomments, func(i, j int) bool {
			return parent.Subcomments[i].Time < parent.Subcomments[j].Time
		})
	}

	return result
}

func applyEntryToExisting(video *model.Video, entry *model.ActionedComment) bool {
	for _, comment := range video.Comments {
		if comment.CommentId == entry.CommentId {
			applyEngagementDelta(&comment.Engagement, entry)
			return true
		}
	}
	for _, comment := range video.Comments {
		for _, sub := range comment.Subcomments {
			if sub.CommentId == entry.CommentId {
				applyEngagementDelta(&sub.Engagement, entry)
				return true
			}
		}
	}
	return false
}

func applyEngagementDelta(engagement *model.Engagement, entry *model.ActionedComment) {
	if entry.Liked {
		engagement.Liked = true
		engagement.Likes++
	}
	if entry.Unliked {
		engagement.Unliked = true
		engagement.Unlikes++
	}
	if entry.Flagged {
		engagement.Flagged = true
	}
}

func findComment(video *model.Video, commentId int64) *model.Comment {
	for _, comment := range video.Comments {
		if comment.CommentId == commentId {
			return comment
		}
	}
	return nil
}

func newCommentFromLog(entry *model.ActionedComment, self *model.Actor) *model.Comment {
	return &model.Comment{
		Engagement:        engagementFromLog(entry),
		CommentId:         entry.NewCommentId,
		Body:              entry.Body,
		Actor:             self,
		Time:              entry.RelativeTime,
		Class:             ClassUserComment,
		AllowInteractions: true,
		Subcomments:       []*model.Subcomment{},
	}
}

func newReplyFromLog(entry *model.ActionedComment, self *model.Actor) *model.Subcomment {
	return &model.Subcomment{
		Engagement:        engagementFromLog(entry),
		CommentId:         entry.NewCommentId,
		Body:              entry.Body,
		Actor:             self,
		Time:              entry.RelativeTime,
		Class:             ClassUserComment,
		AllowInteractions: true,
		ReplyTo:           entry.ReplyTo,
	}
}

func engagementFromLog(entry *model.ActionedComment) model.Engagement {
	engagement := model.Engagement{
		Liked:   entry.Liked,
		Unliked: entry.Unliked,
	}
	if entry.Liked {
		engagement.Likes = 1
	}
	if entry.Unliked {
		engagement.Unlikes = 1
	}
	return engagement
}
