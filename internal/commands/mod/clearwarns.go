// Package mod - /clearwarns command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createClearWarnsCommand creates the /clearwarns command
func createClearWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"clearwarns",
		"Clear all warnings for a specific user",
		"mod",
		clearWarnsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user whose warnings to clear",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func clearWarnsHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}

	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	return svc.ClearUserWarnings(discord.NewInteractionInvocation(ctx), memberOf(user))
}
