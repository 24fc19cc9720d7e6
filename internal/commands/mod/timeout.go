// Package mod - /timeout and /untimeout commands, aliases for mute/unmute
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createTimeoutCommand creates the /timeout command
func createTimeoutCommand() *discord.Command {
	return discord.NewCommand(
		"timeout",
		"Timeout a user",
		"mod",
		muteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to timeout",
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
			Description: "Reason for the timeout",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// createUntimeoutCommand creates the /untimeout command
func createUntimeoutCommand() *discord.Command {
	return discord.NewCommand(
		"untimeout",
		"Untimeout a user",
		"mod",
		unmuteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to untimeout",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}
