// Package mod - /resetwarns command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
)

// createResetWarnsCommand creates the /resetwarns command
func createResetWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"resetwarns",
		"Reset all warnings with an undo option",
		"mod",
		resetWarnsHandler,
	)
}

func resetWarnsHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}
	return svc.ResetWarnings(discord.NewInteractionInvocation(ctx))
}
