// Package mod provides the moderation slash commands.
// Each command is in its own file for better organization.
package mod

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

var svc *moderation.Service

// RegisterModCommands registers every moderation command with the client
func RegisterModCommands(client *discord.ExtendedClient, service *moderation.Service) {
	svc = service

	for _, cmd := range []*discord.Command{
		createWarnCommand(),
		createHistoryCommand(),
		createAllWarnCommand(),
		createLeaderboardCommand(),
		createDelWarnCommand(),
		createClearWarnsCommand(),
		createResetWarnsCommand(),
		createResetCommand(),
		createMuteCommand(),
		createUnmuteCommand(),
		createTimeoutCommand(),
		createUntimeoutCommand(),
		createKickCommand(),
		createBanCommand(),
		createUnbanCommand(),
		createClearCommand(),
		createModRoleCommand(),
		createModRolesCommand(),
		createShutdownCommand(),
	} {
		client.CommandHandler.RegisterCommand(cmd)
	}
}

// requireModerator gates a handler on the allowlist and answers the denial
func requireModerator(ctx *discord.CommandContext) bool {
	if svc.Authorizer().IsModerator(ctx.Member()) {
		return true
	}
	ctx.ReplyEphemeral("❌ You don't have permission.")
	return false
}

// memberOf wraps a resolved user as a member for the moderation handlers.
// Option resolution only guarantees the user part.
func memberOf(user *discordgo.User) *discordgo.Member {
	return &discordgo.Member{User: user}
}

// reasonOrDefault applies the shared default for omitted reasons
func reasonOrDefault(reason string) string {
	if reason == "" {
		return "No reason provided"
	}
	return reason
}
