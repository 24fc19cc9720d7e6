// Package models defines the persisted moderation record types.
package models

import "time"

// Warning is a single warning issued against a user.
type Warning struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Reason      string    `bson:"reason" json:"reason"`
	ModeratorID string    `bson:"moderatorId" json:"moderatorId"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}
