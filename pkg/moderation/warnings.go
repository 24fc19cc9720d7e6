package moderation

import (
	"fmt"
	"strings"

	"github.com/OrionStudios/JarvisBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// ClearUserWarnings removes every warning for one user immediately.
func (s *Service) ClearUserWarnings(inv Invocation, member *discordgo.Member) error {
	removed, err := s.records.Warnings.DeleteWhere(func(w models.Warning) bool {
		return w.UserID == member.User.ID
	})
	if err != nil {
		return err
	}
	if removed == 0 {
		return inv.Reply(ReplyOptions{Content: fmt.Sprintf(
			"✅ **%s** has no warnings to clear.", member.User.Username)})
	}

	s.emit(Event{
		Action:      "clearwarns",
		GuildID:     inv.GuildID(),
		UserID:      member.User.ID,
		ModeratorID: inv.AuthorID(),
	})

	embed := &discordgo.MessageEmbed{
		Title:       "✅ Warnings Cleared",
		Description: fmt.Sprintf("All **%d** warning(s) for **%s** have been removed.", removed, member.User.Username),
		Color:       0x00ff00,
	}
	return inv.Reply(ReplyOptions{Embed: embed})
}

// DeleteWarnings offers a select menu of one user's warnings for removal.
// The menu is registered as a pending action so a stale or replayed
// component click cannot delete anything twice.
func (s *Service) DeleteWarnings(inv Invocation, member *discordgo.Member) error {
	warnings := s.records.Warnings.Filter(func(w models.Warning) bool {
		return w.UserID == member.User.ID
	})
	if len(warnings) == 0 {
		return inv.Reply(ReplyOptions{Content: fmt.Sprintf(
			"✅ **%s** has no warnings.", member.User.Username)})
	}

	options := make([]discordgo.SelectMenuOption, 0, len(warnings))
	for i, w := range warnings {
		label := fmt.Sprintf("Warning %d: %s", i+1, w.Reason)
		if len(label) > 100 {
			label = label[:100]
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       label,
			Description: "Issued by moderator",
			Value:       w.ID,
		})
	}

	token := s.confirms.Add(kindDelWarn, member.User.ID, member.User.Username)
	maxValues := len(options)
	menu := discordgo.SelectMenu{
		CustomID:    "del-warn:" + token,
		Placeholder: "Select warnings to remove...",
		MinValues:   intPtr(1),
		MaxValues:   maxValues,
		Options:     options,
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🚨 Remove Warnings for %s", member.User.Username),
		Description: "Select which warnings to delete.",
		Color:       0xffcc00,
	}
	return inv.Reply(ReplyOptions{
		Embed: embed,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{menu}},
		},
	})
}

// ResetWarnings proposes wiping every warning, behind a confirmation with a
// ten-minute undo.
func (s *Service) ResetWarnings(inv Invocation) error {
	token := s.confirms.Add(kindResetWarns, "", "")
	return inv.Reply(ReplyOptions{
		Content: "⚠️ Are you sure you want to reset **EVERYONE's warnings**? You can undo within 10 minutes.",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Yes", Style: discordgo.DangerButton, CustomID: "reset-warns:confirm:" + token},
				discordgo.Button{Label: "Cancel", Style: discordgo.SecondaryButton, CustomID: "reset-warns:cancel:" + token},
			}},
		},
	})
}

// ResetAll proposes wiping warnings and mutes together. No undo.
func (s *Service) ResetAll(inv Invocation) error {
	token := s.confirms.Add(kindResetAll, "", "")
	return inv.Reply(ReplyOptions{
		Content: "⚠️ **WARNING:** This will clear ALL warnings and mutes from the database. Are you sure?",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Reset Everything", Style: discordgo.DangerButton, CustomID: "reset-all:confirm:" + token},
				discordgo.Button{Label: "Cancel", Style: discordgo.SecondaryButton, CustomID: "reset-all:cancel:" + token},
			}},
		},
	})
}

// ComponentUpdate is what a resolved component click does to the message it
// lives on. When EphemeralReply is set, the message is left alone and the
// clicker gets a private notice instead.
type ComponentUpdate struct {
	Content        string
	Embed          *discordgo.MessageEmbed
	Components     []discordgo.MessageComponent
	EphemeralReply string
}

// HandleComponent resolves a button or select-menu click on one of the
// moderation messages. Returns nil when the custom ID belongs to someone
// else's component.
func (s *Service) HandleComponent(member *discordgo.Member, customID string, values []string) *ComponentUpdate {
	parts := strings.Split(customID, ":")
	if len(parts) < 2 {
		return nil
	}

	switch parts[0] {
	case kindResetWarns, kindResetAll, kindDelWarn:
	default:
		return nil
	}

	if !s.auth.IsModerator(member) {
		return &ComponentUpdate{EphemeralReply: "❌ You don't have permission."}
	}

	switch {
	case customID == "reset-warns:undo":
		return s.resolveUndo(member)
	case parts[0] == kindDelWarn:
		return s.resolveDelWarn(member, parts[1], values)
	case len(parts) == 3:
		return s.resolveConfirmation(member, parts[0], parts[1], parts[2])
	}
	return nil
}

func (s *Service) resolveConfirmation(member *discordgo.Member, kind, verb, token string) *ComponentUpdate {
	action, ok := s.confirms.Resolve(token)
	if !ok {
		return &ComponentUpdate{Content: "❌ This confirmation has expired.", Components: []discordgo.MessageComponent{}}
	}
	if action.kind != kind {
		return &ComponentUpdate{Content: "❌ This confirmation has expired.", Components: []discordgo.MessageComponent{}}
	}

	if verb == "cancel" {
		return &ComponentUpdate{Content: "❌ Reset cancelled.", Components: []discordgo.MessageComponent{}}
	}

	switch kind {
	case kindResetWarns:
		s.undo.Store(s.records.Warnings.All())
		if err := s.records.Warnings.ReplaceAll(nil); err != nil {
			return &ComponentUpdate{Content: "❌ Reset failed.", Components: []discordgo.MessageComponent{}}
		}
		s.emit(Event{Action: "resetwarns", ModeratorID: member.User.ID})
		return &ComponentUpdate{
			Content: "✅ All warnings reset! You can undo within 10 minutes.",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "Undo", Style: discordgo.PrimaryButton, CustomID: "reset-warns:undo"},
				}},
			},
		}
	case kindResetAll:
		if err := s.records.Warnings.ReplaceAll(nil); err != nil {
			return &ComponentUpdate{Content: "❌ Reset failed.", Components: []discordgo.MessageComponent{}}
		}
		if err := s.records.Mutes.ReplaceAll(nil); err != nil {
			return &ComponentUpdate{Content: "❌ Reset failed.", Components: []discordgo.MessageComponent{}}
		}
		s.emit(Event{Action: "reset", ModeratorID: member.User.ID})
		return &ComponentUpdate{
			Content:    "✅ All bot data (warnings and mutes) has been reset.",
			Components: []discordgo.MessageComponent{},
		}
	}
	return nil
}

func (s *Service) resolveUndo(member *discordgo.Member) *ComponentUpdate {
	snapshot, ok := s.undo.Take()
	if !ok {
		return &ComponentUpdate{Content: "❌ Undo period expired.", Components: []discordgo.MessageComponent{}}
	}
	if err := s.records.Warnings.ReplaceAll(snapshot); err != nil {
		return &ComponentUpdate{Content: "❌ Restore failed.", Components: []discordgo.MessageComponent{}}
	}
	s.emit(Event{Action: "undo-resetwarns", ModeratorID: member.User.ID})
	return &ComponentUpdate{Content: "✅ Warnings restored successfully!", Components: []discordgo.MessageComponent{}}
}

func (s *Service) resolveDelWarn(member *discordgo.Member, token string, values []string) *ComponentUpdate {
	if _, ok := s.confirms.Resolve(token); !ok {
		return &ComponentUpdate{Content: "❌ This selection has expired.", Components: []discordgo.MessageComponent{}}
	}

	selected := make(map[string]bool, len(values))
	for _, id := range values {
		selected[id] = true
	}
	if _, err := s.records.Warnings.DeleteWhere(func(w models.Warning) bool {
		return selected[w.ID]
	}); err != nil {
		return &ComponentUpdate{Content: "❌ Deletion failed.", Components: []discordgo.MessageComponent{}}
	}

	s.emit(Event{Action: "delwarn", ModeratorID: member.User.ID})
	return &ComponentUpdate{
		Embed:      &discordgo.MessageEmbed{Title: "✅ Selected Warnings Deleted", Color: 0x00ff00},
		Components: []discordgo.MessageComponent{},
	}
}

func intPtr(v int) *int {
	return &v
}
