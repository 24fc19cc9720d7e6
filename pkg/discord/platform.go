package discord

import (
	"time"

	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// sessionPlatform adapts a discordgo session to the moderation platform
// interface.
type sessionPlatform struct {
	session *discordgo.Session
}

// NewPlatform returns the moderation platform backed by the client session.
func (c *ExtendedClient) NewPlatform() moderation.Platform {
	return &sessionPlatform{session: c.Session}
}

func (p *sessionPlatform) Timeout(guildID, userID string, until *time.Time) error {
	return p.session.GuildMemberTimeout(guildID, userID, until)
}

func (p *sessionPlatform) Kick(guildID, userID, reason string) error {
	return p.session.GuildMemberDeleteWithReason(guildID, userID, reason)
}

func (p *sessionPlatform) Ban(guildID, userID, reason string) error {
	return p.session.GuildBanCreateWithReason(guildID, userID, reason, 0)
}

func (p *sessionPlatform) Unban(guildID, userID string) error {
	return p.session.GuildBanDelete(guildID, userID)
}

// Purge bulk-deletes up to limit recent messages. Discord caps one bulk
// delete at 100 messages.
func (p *sessionPlatform) Purge(channelID string, limit int) (int, error) {
	if limit > 100 {
		limit = 100
	}
	messages, err := p.session.ChannelMessages(channelID, limit, "", "", "")
	if err != nil {
		return 0, err
	}

	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := p.session.ChannelMessagesBulkDelete(channelID, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (p *sessionPlatform) SendDM(userID, content string) error {
	channel, err := p.session.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = p.session.ChannelMessageSend(channel.ID, content)
	return err
}

func (p *sessionPlatform) SendMessage(channelID, content string) error {
	_, err := p.session.ChannelMessageSend(channelID, content)
	return err
}

func (p *sessionPlatform) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	_, err := p.session.ChannelMessageSendEmbed(channelID, embed)
	return err
}

func (p *sessionPlatform) FetchMember(guildID, userID string) (*discordgo.Member, error) {
	if member, err := p.session.State.Member(guildID, userID); err == nil {
		return member, nil
	}
	return p.session.GuildMember(guildID, userID)
}

func (p *sessionPlatform) FetchUser(userID string) (*discordgo.User, error) {
	return p.session.User(userID)
}
