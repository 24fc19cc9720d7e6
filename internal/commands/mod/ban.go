// Package mod - /ban command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createBanCommand creates the /ban command
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Ban a user",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to ban",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the ban",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers)
}

func banHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}

	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}
	reason := reasonOrDefault(ctx.GetStringOption("reason"))

	return svc.Ban(discord.NewInteractionInvocation(ctx), memberOf(user), reason)
}
