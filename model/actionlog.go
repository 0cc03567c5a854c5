package model

// ActionedComment is one comment-level entry in a participant's action log.
// It is either a reference to an existing comment or subcomment (CommentId
// set, NewComment false) carrying like/unlike/flag deltas, or a brand-new
// participant-authored comment (NewComment true). New comments with ReplyTo
// set are replies; ParentComment names the comment they attach under.
type ActionedComment struct {
	CommentId     int64  `json:"comment_id,omitempty"`
	Liked         bool   `json:"liked,omitempty"`
	Unliked       bool   `json:"unliked,omitempty"`
	Flagged       bool   `json:"flagged,omitempty"`
	NewComment    bool   `json:"new_comment,omitempty"`
	NewCommentId  int64  `json:"new_comment_id,omitempty"`
	Body          string `json:"body,omitempty"`
	RelativeTime  int64  `json:"relativeTime,omitempty"`
	ReplyTo       int64  `json:"reply_to,omitempty"`
	ParentComment int64  `json:"parent_comment,omitempty"`
}

// FeedAction is a participant's accumulated interactions with one post.
// At most one exists per participant per post; the logging endpoints merge
// into it, the feed engine only reads it.
type FeedAction struct {
	PostId   int64              `json:"postID"`
	Liked    bool               `json:"liked,omitempty"`
	Unliked  bool               `json:"unliked,omitempty"`
	Flagged  bool               `json:"flagged,omitempty"`
	Comments []*ActionedComment `json:"comments,omitempty"`
}

// FeedActionLog is everything a participant has done across their feed.
type FeedActionLog []*FeedAction

// ForPost returns the participant's action entry for the given post, or nil.
func (log FeedActionLog) ForPost(postId int64) *FeedAction {
	for _, action := range log {
		if action.PostId == postId {
			return action
		}
	}
	return nil
}

// Merge folds another action document for the same post into this one.
// Booleans are sticky and comment entries are appended; the log is
// append-only from the engine's point of view.
func (fa *FeedAction) Merge(other *FeedAction) {
	fa.Liked = fa.Liked || other.Liked
	fa.Unliked = fa.Unliked || other.Unliked
	fa.Flagged = fa.Flagged || other.Flagged
	fa.Comments = append(fa.Comments, other.Comments...)
}
