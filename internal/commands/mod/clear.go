// Package mod - /clear command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createClearCommand creates the /clear command
func createClearCommand() *discord.Command {
	return discord.NewCommand(
		"clear",
		"Clear messages",
		"mod",
		clearHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "amount",
			Description: "How many messages to delete",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages)
}

func clearHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}

	amount := int(ctx.GetIntOption("amount"))
	if amount <= 0 {
		amount = 10
	}

	return svc.Clear(discord.NewInteractionInvocation(ctx), amount)
}
