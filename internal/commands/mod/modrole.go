// Package mod - /modrole command
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createModRoleCommand creates the /modrole command
func createModRoleCommand() *discord.Command {
	return discord.NewCommand(
		"modrole",
		"Set moderator role",
		"mod",
		modRoleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "The role to toggle",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// modRoleHandler toggles a role on the allowlist. Guild administrators only,
// moderator status is not enough here.
func modRoleHandler(ctx *discord.CommandContext) error {
	member := ctx.Member()
	if member == nil || member.Permissions&discordgo.PermissionAdministrator == 0 {
		return ctx.ReplyEphemeral("❌ Admins only.")
	}

	role := ctx.GetRoleOption("role")
	if role == nil {
		return ctx.ReplyEphemeral("⚠️ Mention a role.")
	}

	return svc.ToggleModRole(discord.NewInteractionInvocation(ctx), role)
}
