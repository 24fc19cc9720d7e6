package moderation

import "github.com/bwmarrin/discordgo"

// ReplyOptions is the single reply shape every handler produces, regardless
// of which surface invoked it.
type ReplyOptions struct {
	Content    string
	Embed      *discordgo.MessageEmbed
	Components []discordgo.MessageComponent
	Ephemeral  bool
}

// Invocation abstracts where a command came from: a slash interaction, a
// prefix message or the natural-language trigger. Handlers never branch on
// the origin; the one behavioral difference (purging the triggering message
// itself) is exposed through IncludesTrigger.
type Invocation interface {
	AuthorID() string
	Member() *discordgo.Member
	GuildID() string
	GuildName() string
	ChannelID() string
	Reply(opts ReplyOptions) error

	// IncludesTrigger reports whether the invocation left a visible trigger
	// message in the channel, which clear must delete on top of the
	// requested amount.
	IncludesTrigger() bool
}
