// Package events provides a registry for organizing bot events.
package events

import (
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/OrionStudios/JarvisBotGo/pkg/jarvis"
	"github.com/OrionStudios/JarvisBotGo/pkg/logger"
	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
)

var (
	botClient *discord.ExtendedClient
	svc       *moderation.Service
	router    *jarvis.Router
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient, service *moderation.Service, jarvisRouter *jarvis.Router) {
	logger.System("📋 Registering bot events...", "Events")

	botClient = client
	svc = service
	router = jarvisRouter

	// Ready event (bot startup)
	RegisterReadyEvent(client)

	// Guild events (server join/leave)
	RegisterGuildEvents(client)

	// Message events (prefix commands, Jarvis trigger)
	RegisterMessageEvents(client)

	// Interaction events (confirmation buttons, warning select menus)
	RegisterInteractionEvents(client)

	logger.Success("✅ All events registered", "Events")
}
