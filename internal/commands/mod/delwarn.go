// Package mod - /delwarn command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createDelWarnCommand creates the /delwarn command
func createDelWarnCommand() *discord.Command {
	return discord.NewCommand(
		"delwarn",
		"Remove specific warnings from a user",
		"mod",
		delWarnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user whose warnings to remove",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func delWarnHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}

	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	return svc.DeleteWarnings(discord.NewInteractionInvocation(ctx), memberOf(user))
}
