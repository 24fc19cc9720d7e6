package discord

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// interactionInvocation adapts a slash command interaction to the moderation
// invocation interface. The first reply answers the interaction; further
// replies become followups.
type interactionInvocation struct {
	ctx       *CommandContext
	responded bool
}

// NewInteractionInvocation wraps a command context for the moderation handlers.
func NewInteractionInvocation(ctx *CommandContext) moderation.Invocation {
	return &interactionInvocation{ctx: ctx}
}

func (i *interactionInvocation) AuthorID() string {
	return i.ctx.User().ID
}

func (i *interactionInvocation) Member() *discordgo.Member {
	return i.ctx.Member()
}

func (i *interactionInvocation) GuildID() string {
	return i.ctx.Interaction.GuildID
}

func (i *interactionInvocation) GuildName() string {
	if guild := i.ctx.Guild(); guild != nil {
		return guild.Name
	}
	return ""
}

func (i *interactionInvocation) ChannelID() string {
	return i.ctx.Interaction.ChannelID
}

func (i *interactionInvocation) IncludesTrigger() bool {
	return false
}

func (i *interactionInvocation) Reply(opts moderation.ReplyOptions) error {
	if i.responded {
		params := &discordgo.WebhookParams{
			Content:    opts.Content,
			Components: opts.Components,
		}
		if opts.Embed != nil {
			params.Embeds = []*discordgo.MessageEmbed{opts.Embed}
		}
		if opts.Ephemeral {
			params.Flags = discordgo.MessageFlagsEphemeral
		}
		_, err := i.ctx.Session.FollowupMessageCreate(i.ctx.Interaction.Interaction, true, params)
		return err
	}

	data := &discordgo.InteractionResponseData{
		Content:    opts.Content,
		Components: opts.Components,
	}
	if opts.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{opts.Embed}
	}
	if opts.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := i.ctx.Session.InteractionRespond(i.ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err == nil {
		i.responded = true
	}
	return err
}

// messageInvocation adapts a prefix or Jarvis trigger message. The trigger
// message stays visible in the channel, so IncludesTrigger is true.
type messageInvocation struct {
	session *discordgo.Session
	message *discordgo.MessageCreate
}

// NewMessageInvocation wraps a message event for the moderation handlers.
func NewMessageInvocation(session *discordgo.Session, message *discordgo.MessageCreate) moderation.Invocation {
	return &messageInvocation{session: session, message: message}
}

func (m *messageInvocation) AuthorID() string {
	return m.message.Author.ID
}

func (m *messageInvocation) Member() *discordgo.Member {
	if m.message.Member != nil && m.message.Member.User == nil {
		// Gateway message events omit the user inside the member payload.
		member := *m.message.Member
		member.User = m.message.Author
		return &member
	}
	return m.message.Member
}

func (m *messageInvocation) GuildID() string {
	return m.message.GuildID
}

func (m *messageInvocation) GuildName() string {
	if guild, err := m.session.State.Guild(m.message.GuildID); err == nil {
		return guild.Name
	}
	return ""
}

func (m *messageInvocation) ChannelID() string {
	return m.message.ChannelID
}

func (m *messageInvocation) IncludesTrigger() bool {
	return true
}

// Reply answers in-channel. Message replies have no ephemeral equivalent, so
// the flag is ignored here.
func (m *messageInvocation) Reply(opts moderation.ReplyOptions) error {
	send := &discordgo.MessageSend{
		Content:    opts.Content,
		Components: opts.Components,
		Reference:  m.message.Reference(),
	}
	if opts.Embed != nil {
		send.Embeds = []*discordgo.MessageEmbed{opts.Embed}
	}
	_, err := m.session.ChannelMessageSendComplex(m.message.ChannelID, send)
	return err
}
