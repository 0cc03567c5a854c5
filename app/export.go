package app

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/vidshare/vidshare-be/db"
	"github.com/vidshare/vidshare-be/model"
)

var actionsHeader = []string{
	"participant_id", "condition", "interest", "signed_up_at",
	"post_id", "action", "comment_id", "body",
	"liked", "unliked", "flagged", "relative_time_ms", "reply_to", "parent_comment",
}

// WriteActionsCSV streams every participant's logged feed interactions as
// CSV, one row per post-level entry and one per comment-level entry.
// Injected objection subcomments are scripted content, not participant
// actions, so new-comment entries carrying the reserved objection id are
// excluded; likes and flags *on* the objection are real actions and stay in.
func WriteActionsCSV(ctx context.Context, database db.Database, w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(actionsHeader); err != nil {
		return err
	}

	participants, err := database.GetParticipants(ctx)
	if err != nil {
		return err
	}
	for _, participant := range participants {
		actionLog, err := database.GetFeedActionLog(ctx, participant.Id)
		if err != nil {
			return err
		}
		for _, action := range actionLog {
			if err := writeActionRows(writer, participant, action); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeActionRows(writer *csv.Writer, participant *model.Participant, action *model.FeedAction) error {
	if action.Liked || action.Unliked || action.Flagged {
		if err := writer.Write(actionRow(participant, action, "post", nil)); err != nil {
			return err
		}
	}
	for _, entry := range action.Comments {
		if entry.NewComment && entry.NewCommentId == ObjectionCommentId {
			continue
		}
		kind := "comment_ref"
		if entry.NewComment {
			kind = "new_comment"
			if entry.ReplyTo != 0 {
				kind = "reply"
			}
		}
		if err := writer.Write(actionRow(participant, action, kind, entry)); err != nil {
			return err
		}
	}
	return nil
}

func actionRow(participant *model.Participant, action *model.FeedAction, kind string, entry *model.ActionedComment) []string {
	row := []string{
		participant.Id,
		string(participant.Condition),
		participant.Interest,
		participant.CreatedAt.UTC().Format(time.RFC3339),
		strconv.FormatInt(action.PostId, 10),
		kind,
	}
	if entry == nil {
		return append(row,
			"", "",
			formatBool(action.Liked), formatBool(action.Unliked), formatBool(action.Flagged),
			"", "", "")
	}
	commentId := entry.CommentId
	if entry.NewComment {
		commentId = entry.NewCommentId
	}
	return append(row,
		strconv.FormatInt(commentId, 10),
		entry.Body,
		formatBool(entry.Liked), formatBool(entry.Unliked), formatBool(entry.Flagged),
		strconv.FormatInt(entry.RelativeTime, 10),
		formatId(entry.ReplyTo),
		formatId(entry.ParentComment))
}

var pageViewsHeader = []string{"participant_id", "condition", "page", "ms", "viewed_at"}

// WritePageViewsCSV streams every participant's page-time rows as CSV.
func WritePageViewsCSV(ctx context.Context, database db.Database, w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(pageViewsHeader); err != nil {
		return err
	}
	participants, err := database.GetParticipants(ctx)
	if err != nil {
		return err
	}
	for _, participant := range participants {
		views, err := database.GetPageViews(ctx, participant.Id)
		if err != nil {
			return err
		}
		for _, view := range views {
			row := []string{
				participant.Id,
				string(participant.Condition),
				view.Page,
				strconv.FormatInt(view.Ms, 10),
				view.CreatedAt.UTC().Format(time.RFC3339),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatId(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
