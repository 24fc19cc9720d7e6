// Package mod - /shutdown command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
)

// createShutdownCommand creates the /shutdown command
func createShutdownCommand() *discord.Command {
	return discord.NewCommand(
		"shutdown",
		"Shutdown the bot",
		"mod",
		shutdownHandler,
	)
}

func shutdownHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}
	return svc.Shutdown(discord.NewInteractionInvocation(ctx))
}
