package moderation

import "time"

// Event describes one completed moderation action. Events fan out to the
// live websocket feed and the MQTT topic; delivery is fire-and-forget.
type Event struct {
	Action      string    `json:"action"`
	GuildID     string    `json:"guildId,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	ModeratorID string    `json:"moderatorId"`
	Reason      string    `json:"reason,omitempty"`
	DurationSec int       `json:"durationSec,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
