// Package mod - /allwarn command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
)

// createAllWarnCommand creates the /allwarn command
func createAllWarnCommand() *discord.Command {
	return discord.NewCommand(
		"allwarn",
		"Show all warnings in the database",
		"mod",
		allWarnHandler,
	)
}

func allWarnHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}
	return svc.AllWarnings(discord.NewInteractionInvocation(ctx))
}
