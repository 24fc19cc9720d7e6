// Package mod - /lwarn command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
)

// createLeaderboardCommand creates the /lwarn command
func createLeaderboardCommand() *discord.Command {
	return discord.NewCommand(
		"lwarn",
		"Show warning leaderboard",
		"mod",
		leaderboardHandler,
	)
}

func leaderboardHandler(ctx *discord.CommandContext) error {
	if !requireModerator(ctx) {
		return nil
	}
	return svc.Leaderboard(discord.NewInteractionInvocation(ctx))
}
