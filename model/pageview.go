package model

import "time"

// PageView is one timed visit to a survey page, appended by the logging
// endpoint and only ever read back by the export job.
type PageView struct {
	ParticipantId string    `db:"participant_id" json:"participantId"`
	Page          string    `db:"page" json:"page"`
	Ms            int64     `db:"ms" json:"ms"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}
