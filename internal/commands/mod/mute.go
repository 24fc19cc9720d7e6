// Package mod - /mute command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createMuteCommand creates the /mute command
func createMuteCommand() *discord.Command {
	return discord.NewCommand(
		"mute",
		"Mute a user",
		"mod",
		muteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to mute",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duration",
			Description: "Duration like 10s, 5m, 2h, 1d",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the mute",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func muteHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}

	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	duration := ctx.GetStringOption("duration")
	if duration == "" {
		duration = "10m"
	}
	reason := reasonOrDefault(ctx.GetStringOption("reason"))

	return svc.Mute(discord.NewInteractionInvocation(ctx), memberOf(user), duration, reason)
}
