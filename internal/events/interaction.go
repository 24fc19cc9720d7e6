// Package events provides event handlers for interaction events.
// Slash commands are dispatched by the client itself; this file handles the
// message components behind the confirmation and warning-deletion flows.
package events

import (
	"fmt"

	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/OrionStudios/JarvisBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterInteractionEvents registers all interaction-related event handlers
func RegisterInteractionEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnInteractionCreate(onInteractionCreate)
}

// onInteractionCreate handles buttons and select menus
func onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	data := i.MessageComponentData()
	logger.Debug(fmt.Sprintf("🔘 Component clicked: %s", data.CustomID), "Interaction")

	update := svc.HandleComponent(i.Member, data.CustomID, data.Values)
	if update == nil {
		return
	}

	if update.EphemeralReply != "" {
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: update.EphemeralReply,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if err != nil {
			logger.Error(fmt.Sprintf("Error answering component: %v", err), "Interaction")
		}
		return
	}

	responseData := &discordgo.InteractionResponseData{
		Content:    update.Content,
		Components: update.Components,
	}
	if update.Embed != nil {
		responseData.Embeds = []*discordgo.MessageEmbed{update.Embed}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: responseData,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error updating component message: %v", err), "Interaction")
	}
}
