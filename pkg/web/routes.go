// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
	"github.com/OrionStudios/JarvisBotGo/pkg/store"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server, svc *moderation.Service, records *store.Records) {
	api := s.Group("/api")
	{
		api.GET("/health", healthHandler)
		api.GET("/status", statusHandler(records))
		api.GET("/bot", botInfoHandler)
		api.GET("/stats", statsHandler(svc))
		api.GET("/feed", s.feed.handler())
	}
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Jarvis is running",
	})
}

// statusHandler returns the bot and storage status
func statusHandler(records *store.Records) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := discord.Get()

		botOnline := false
		if client != nil {
			botOnline = client.IsReady()
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"storage": gin.H{
				"status": records.Status(),
			},
			"bot": gin.H{
				"isOnline": botOnline,
			},
		})
	}
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// statsHandler returns the moderation record totals and the warning leaderboard
func statsHandler(svc *moderation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		warnings, mutes, leaders := svc.Stats()

		c.JSON(http.StatusOK, gin.H{
			"warnings":    warnings,
			"mutes":       mutes,
			"leaderboard": leaders,
		})
	}
}
