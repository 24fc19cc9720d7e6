// Package main is the entry point for the Jarvis bot.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/OrionStudios/JarvisBotGo/internal/commands"
	"github.com/OrionStudios/JarvisBotGo/internal/events"
	"github.com/OrionStudios/JarvisBotGo/pkg/ai"
	"github.com/OrionStudios/JarvisBotGo/pkg/config"
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/OrionStudios/JarvisBotGo/pkg/errors"
	"github.com/OrionStudios/JarvisBotGo/pkg/jarvis"
	"github.com/OrionStudios/JarvisBotGo/pkg/logger"
	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
	"github.com/OrionStudios/JarvisBotGo/pkg/mqtt"
	"github.com/OrionStudios/JarvisBotGo/pkg/store"
	"github.com/OrionStudios/JarvisBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.BotToken == "" {
		fmt.Println("botToken is not set")
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting Jarvis...", "Main")
	logger.Info(fmt.Sprintf("Working directory: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				return
			}
		}
	})

	// Open the record stores. JSON files by default, MongoDB when configured.
	records, err := store.Open(cfg.DataDir, cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error opening record stores: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		if err := records.Close(); err != nil {
			logger.Error(fmt.Sprintf("Error closing record stores: %v", err), "Main")
		}
	}()
	logger.Info(fmt.Sprintf("Storage backend: %s", records.Status()), "Main")

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// The moderation service backs every command surface
	svc := moderation.NewService(records, discordClient.NewPlatform())

	// Natural language routing through Groq, when a key is configured
	var provider ai.Provider
	if cfg.JarvisEnabled() {
		provider = ai.NewGroqProvider(cfg.GroqAPIKey, cfg.GroqModel)
		logger.Info(fmt.Sprintf("Jarvis natural language enabled (model: %s)", cfg.GroqModel), "Main")
	} else {
		logger.Warn("groqApiKey not set, natural language commands disabled", "Main")
	}
	router := jarvis.NewRouter(provider, svc, discordClient.NewPlatform())

	// Initialize MQTT
	mqttClientID := "jarvisbot"
	if !cfg.IsProd() {
		mqttClientID = "jarvisbot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	mqttClient.On("stats", func(payload map[string]interface{}) (interface{}, error) {
		warnings, mutes, leaders := svc.Stats()
		return map[string]interface{}{
			"warnings":    warnings,
			"mutes":       mutes,
			"leaderboard": leaders,
		}, nil
	})

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer, svc, records)
	webServer.StartAsync(cfg.Port)

	// Fan moderation events out to the live feed and the broker
	svc.SetPublisher(func(ev moderation.Event) {
		webServer.Feed().Broadcast(ev)
		if mqttClient.IsConnected() {
			mqttClient.PublishModerationEvent(ev)
		}
	})

	// The shutdown action stops the process like a SIGTERM would
	sc := make(chan os.Signal, 1)
	svc.SetShutdown(func() {
		sc <- syscall.SIGTERM
	})

	// Register commands and events
	commands.RegisterAll(discordClient, svc, records)
	events.RegisterAll(discordClient, svc, router)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		if err := discordClient.Stop(); err != nil {
			logger.Error(fmt.Sprintf("Error stopping Discord client: %v", err), "Main")
		}
	}(discordClient)

	logger.Success("Jarvis started successfully!", "Main")

	// Wait for interrupt signal
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down Jarvis...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
