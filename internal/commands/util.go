// Package commands provides utility commands for the bot.
package commands

import (
	"fmt"

	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
	"github.com/OrionStudios/JarvisBotGo/pkg/store"
)

// RegisterUtilCommands registers all utility commands
func RegisterUtilCommands(client *discord.ExtendedClient, svc *moderation.Service, records *store.Records) {
	// Ping command
	pingCmd := discord.NewCommand(
		"ping",
		"Check the bot latency",
		"util",
		func(ctx *discord.CommandContext) error {
			latency := ctx.Client.Session.HeartbeatLatency().Milliseconds()
			return ctx.Reply(fmt.Sprintf("🏓 Pong! Latency: %dms", latency))
		},
	)
	client.CommandHandler.RegisterCommand(pingCmd)

	// Status command
	statusCmd := discord.NewCommand(
		"status",
		"Show the bot status",
		"util",
		func(ctx *discord.CommandContext) error {
			warnings, mutes, _ := svc.Stats()

			return ctx.Reply(fmt.Sprintf(
				"📊 **Bot Status**\n"+
					"• Bot: 🟢 Online\n"+
					"• Storage: %s\n"+
					"• Guilds: %d\n"+
					"• Warnings on record: %d\n"+
					"• Mutes on record: %d",
				records.Status(),
				ctx.Client.GuildCount(),
				warnings,
				mutes,
			))
		},
	)
	client.CommandHandler.RegisterCommand(statusCmd)

	// Help command
	helpCmd := discord.NewCommand(
		"help",
		"Show all available commands",
		"util",
		func(ctx *discord.CommandContext) error {
			return svc.Help(discord.NewInteractionInvocation(ctx))
		},
	)
	client.CommandHandler.RegisterCommand(helpCmd)
}
