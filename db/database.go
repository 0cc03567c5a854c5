package db

import (
	"context"
	"database/sql"

	"github.com/vidshare/vidshare-be/model"
)

type Database interface {
	ScriptDatabase
	ActorDatabase
	ParticipantDatabase
	ActionLogDatabase
	GetSQLDB() *sql.DB
	Close() error
}

// ScriptDatabase serves the shared, immutable content script. Callers own
// the returned values and may mutate them freely; implementations must hand
// out copies, never shared state.
type ScriptDatabase interface {
	// GetScriptsForInterest returns the scripted video set for an interest,
	// ordered by postID ascending.
	GetScriptsForInterest(ctx context.Context, interest string) ([]*model.Video, error)
	GetInterests(ctx context.Context) ([]*model.Interest, error)
}

type ActorDatabase interface {
	// FindActorByUsername returns nil, nil when no such actor exists.
	FindActorByUsername(ctx context.Context, username string) (*model.Actor, error)
	// FindActorsByRoleExcluding returns every actor tagged with role except
	// the one with the excluded username.
	FindActorsByRoleExcluding(ctx context.Context, role string, excludedUsername string) ([]*model.Actor, error)
}

type CreateParticipant struct {
	Token     string
	Alias     string
	Avatar    string
	Interest  string
	Condition model.Condition
}

type ParticipantDatabase interface {
	CreateParticipant(ctx context.Context, req *CreateParticipant) (participantId string, err error)
	// GetParticipantByToken returns nil, nil when the token is unknown.
	GetParticipantByToken(ctx context.Context, token string) (*model.Participant, error)
	GetParticipants(ctx context.Context) ([]*model.Participant, error)
	// CountByCondition returns how many participants sit in each arm, for
	// least-filled assignment at signup.
	CountByCondition(ctx context.Context) (map[model.Condition]int, error)
}

type CreatePageView struct {
	Page string
	Ms   int64
}

type ActionLogDatabase interface {
	// GetFeedActionLog returns the participant's full action log, one entry
	// per post they interacted with.
	GetFeedActionLog(ctx context.Context, participantId string) (model.FeedActionLog, error)
	// UpsertFeedAction merges the given action document into the
	// participant's entry for that post.
	UpsertFeedAction(ctx context.Context, participantId string, action *model.FeedAction) error
	CreatePageView(ctx context.Context, participantId string, req *CreatePageView) error
	GetPageViews(ctx context.Context, participantId string) ([]*model.PageView, error)
}
