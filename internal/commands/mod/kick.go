// Package mod - /kick command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createKickCommand creates the /kick command
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Kick a user",
		"mod",
		kickHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to kick",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the kick",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionKickMembers)
}

func kickHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}

	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}
	reason := reasonOrDefault(ctx.GetStringOption("reason"))

	return svc.Kick(discord.NewInteractionInvocation(ctx), memberOf(user), reason)
}
