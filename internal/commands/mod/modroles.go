// Package mod - /modroles command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
)

// createModRolesCommand creates the /modroles command
func createModRolesCommand() *discord.Command {
	return discord.NewCommand(
		"modroles",
		"List moderator roles",
		"mod",
		modRolesHandler,
	)
}

func modRolesHandler(ctx *discord.CommandContext) error {
	if !svc.Authorizer().IsModerator(ctx.Member()) {
		return nil
	}
	return svc.ListModRoles(discord.NewInteractionInvocation(ctx))
}
