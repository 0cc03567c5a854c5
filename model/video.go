package model

import "strconv"

// Engagement holds the interaction counters and the per-viewer overlay flags
// shared by posts, comments, and subcomments. The flags (Liked/Unliked/
// Flagged) are never persisted onto the shared script; they are recomputed
// from the viewer's action log on every read.
type Engagement struct {
	Likes   int  `json:"likes"`
	Unlikes int  `json:"unlikes"`
	Liked   bool `json:"liked"`
	Unliked bool `json:"unliked"`
	Flagged bool `json:"flagged"`
}

// Comment is a top-level comment on a scripted video.
//
// Time is an offset in milliseconds relative to the viewing participant's
// account creation; negative values render as "before you joined", which is
// what keeps the scripted narrative visually consistent across participants.
type Comment struct {
	Engagement
	CommentId         int64         `json:"commentID"`
	Body              string        `json:"body"`
	Actor             *Actor        `json:"actor"`
	Time              int64         `json:"time"`
	Class             string        `json:"class"`
	Removed           bool          `json:"removed"`
	AllowInteractions bool          `json:"allowInteractions"`
	Subcomments       []*Subcomment `json:"subcomments"`
}

// Subcomment is a reply nested under a Comment. ReplyTo carries the parent
// commentID when the subcomment represents a participant's own reply.
type Subcomment struct {
	Engagement
	CommentId         int64  `json:"commentID"`
	Body              string `json:"body"`
	Actor             *Actor `json:"actor"`
	Time              int64  `json:"time"`
	Class             string `json:"class"`
	Removed           bool   `json:"removed"`
	AllowInteractions bool   `json:"allowInteractions"`
	ReplyTo           int64  `json:"reply_to,omitempty"`
}

// Video is one post of a participant's scripted 3-video set.
type Video struct {
	Engagement
	Id            string     `json:"id"`
	PostId        int64      `json:"postID"`
	InterestClass string     `json:"interestClass"`
	Actor         *Actor     `json:"actor"`
	Comments      []*Comment `json:"comments"`
}

func (sc *Subcomment) Clone() *Subcomment {
	if sc == nil {
		return nil
	}
	cloned := *sc
	cloned.Actor = sc.Actor.Clone()
	return &cloned
}

func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	cloned := *c
	cloned.Actor = c.Actor.Clone()
	cloned.Subcomments = make([]*Subcomment, len(c.Subcomments))
	for i, sc := range c.Subcomments {
		cloned.Subcomments[i] = sc.Clone()
	}
	return &cloned
}

// Clone deep-copies the video so the shared script stays structurally
// immutable; overlays and manipulations only ever touch the copy.
func (v *Video) Clone() *Video {
	if v == nil {
		return nil
	}
	cloned := *v
	cloned.Actor = v.Actor.Clone()
	cloned.Comments = make([]*Comment, len(v.Comments))
	for i, c := range v.Comments {
		cloned.Comments[i] = c.Clone()
	}
	return &cloned
}

func (e *Engagement) toRecord(record map[string]interface{}) {
	record["likes"] = e.Likes
	record["unlikes"] = e.Unlikes
	record["liked"] = e.Liked
	record["unliked"] = e.Unliked
	record["flagged"] = e.Flagged
}

func (sc *Subcomment) ToRecord() map[string]interface{} {
	record := map[string]interface{}{
		"id":                strconv.FormatInt(sc.CommentId, 10),
		"commentID":         sc.CommentId,
		"body":              sc.Body,
		"actor":             sc.Actor.ToRecord(),
		"time":              sc.Time,
		"class":             sc.Class,
		"removed":           sc.Removed,
		"allowInteractions": sc.AllowInteractions,
	}
	if sc.ReplyTo != 0 {
		record["reply_to"] = sc.ReplyTo
	}
	sc.Engagement.toRecord(record)
	return record
}

func (c *Comment) ToRecord() map[string]interface{} {
	subcomments := make([]map[string]interface{}, len(c.Subcomments))
	for i, sc := range c.Subcomments {
		subcomments[i] = sc.ToRecord()
	}
	record := map[string]interface{}{
		"id":                strconv.FormatInt(c.CommentId, 10),
		"commentID":         c.CommentId,
		"body":              c.Body,
		"actor":             c.Actor.ToRecord(),
		"time":              c.Time,
		"class":             c.Class,
		"removed":           c.Removed,
		"allowInteractions": c.AllowInteractions,
		"subcomments":       subcomments,
	}
	c.Engagement.toRecord(record)
	return record
}

// ToRecord converts the video into a plain record for the response layer.
// The mapping is total: every field the UI depends on is written explicitly,
// including the ones a naive structural conversion tends to drop (string id,
// allowInteractions, overlay flags).
func (v *Video) ToRecord() map[string]interface{} {
	comments := make([]map[string]interface{}, len(v.Comments))
	for i, c := range v.Comments {
		comments[i] = c.ToRecord()
	}
	record := map[string]interface{}{
		"id":            v.Id,
		"postID":        v.PostId,
		"interestClass": v.InterestClass,
		"actor":         v.Actor.ToRecord(),
		"comments":      comments,
	}
	v.Engagement.toRecord(record)
	return record
}
