// Package mod - /unban command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createUnbanCommand creates the /unban command
func createUnbanCommand() *discord.Command {
	return discord.NewCommand(
		"unban",
		"Unban a user",
		"mod",
		unbanHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "user_id",
			Description: "ID of the user to unban",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers)
}

func unbanHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}

	userID := ctx.GetStringOption("user_id")
	if userID == "" {
		return ctx.ReplyEphemeral("❌ You must specify a user ID.")
	}

	return svc.Unban(discord.NewInteractionInvocation(ctx), userID)
}
