// Package mod - /reset command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
)

// createResetCommand creates the /reset command
func createResetCommand() *discord.Command {
	return discord.NewCommand(
		"reset",
		"Reset bot data (warnings and mutes)",
		"mod",
		resetHandler,
	)
}

func resetHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}
	return svc.ResetAll(discord.NewInteractionInvocation(ctx))
}
