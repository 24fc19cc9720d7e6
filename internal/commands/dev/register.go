package dev

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
	"github.com/OrionStudios/JarvisBotGo/pkg/store"
	"github.com/bwmarrin/discordgo"
)

var (
	svc     *moderation.Service
	records *store.Records
)

// Register registers all dev commands as /dev subcommands (only in dev guild)
func Register(client *discord.ExtendedClient, service *moderation.Service, rec *store.Records) {
	svc = service
	records = rec

	evalCmd := CreateEvalCommand()

	devGroup := &discordgo.ApplicationCommand{
		Name:        "dev",
		Description: "Developer commands",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        evalCmd.Name,
				Description: evalCmd.Description,
				Options:     evalCmd.Options,
			},
		},
	}

	client.Commands.Set("dev.eval", evalCmd)

	client.CommandHandler.AddDevCommand(devGroup)
}
