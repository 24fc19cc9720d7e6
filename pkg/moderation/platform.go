package moderation

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Platform abstracts every chat-platform side effect the handlers perform,
// so the moderation logic can run against a fake in tests.
type Platform interface {
	// Timeout applies a communication timeout until the given instant.
	// A nil until removes the timeout.
	Timeout(guildID, userID string, until *time.Time) error

	Kick(guildID, userID, reason string) error
	Ban(guildID, userID, reason string) error
	Unban(guildID, userID string) error

	// Purge deletes up to limit recent messages and returns how many went.
	Purge(channelID string, limit int) (int, error)

	// SendDM best-effort delivers a direct message; handlers ignore failures.
	SendDM(userID, content string) error

	SendMessage(channelID, content string) error
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error

	FetchMember(guildID, userID string) (*discordgo.Member, error)
	FetchUser(userID string) (*discordgo.User, error)
}
