// Package mod - /unmute command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createUnmuteCommand creates the /unmute command
func createUnmuteCommand() *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Unmute a user",
		"mod",
		unmuteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to unmute",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func unmuteHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}

	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	return svc.Unmute(discord.NewInteractionInvocation(ctx), memberOf(user))
}
