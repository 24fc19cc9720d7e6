// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (util, mod, dev).
package commands

import (
	"github.com/OrionStudios/JarvisBotGo/internal/commands/dev"
	"github.com/OrionStudios/JarvisBotGo/internal/commands/mod"
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
	"github.com/OrionStudios/JarvisBotGo/pkg/store"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient, svc *moderation.Service, records *store.Records) {
	// Utility commands
	RegisterUtilCommands(client, svc, records)

	// Moderation commands (/warn, /mute, /kick, ...)
	mod.RegisterModCommands(client, svc)

	// Developer commands (/dev eval), registered only in the dev guild
	dev.Register(client, svc, records)
}
