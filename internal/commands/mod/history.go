// Package mod - /warnh command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createHistoryCommand creates the /warnh command
func createHistoryCommand() *discord.Command {
	return discord.NewCommand(
		"warnh",
		"Show a user's warning & mute history",
		"mod",
		historyHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to look up",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func historyHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}

	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	return svc.History(discord.NewInteractionInvocation(ctx), memberOf(user))
}
