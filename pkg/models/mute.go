package models

import "time"

// Mute is a single timeout applied to a user.
type Mute struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Reason      string    `bson:"reason" json:"reason"`
	ModeratorID string    `bson:"moderatorId" json:"moderatorId"`
	DurationSec int       `bson:"durationSec" json:"durationSec"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}
