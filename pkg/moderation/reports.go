package moderation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/OrionStudios/JarvisBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// embedPageLimit is the Discord embed description ceiling the report
// renderers paginate against.
const embedPageLimit = 4000

// reasonDisplayLimit bounds a single rendered reason. Slash string options
// accept far more than one embed page holds, so without a cap one reason
// could overflow the page it lands on.
const reasonDisplayLimit = 512

func displayReason(reason string) string {
	if len(reason) > reasonDisplayLimit {
		return reason[:reasonDisplayLimit] + "..."
	}
	return reason
}

// History shows one user's warnings and mutes side by side.
func (s *Service) History(inv Invocation, member *discordgo.Member) error {
	warnings := s.records.Warnings.Filter(func(w models.Warning) bool {
		return w.UserID == member.User.ID
	})
	mutes := s.records.Mutes.Filter(func(m models.Mute) bool {
		return m.UserID == member.User.ID
	})

	if len(warnings) == 0 && len(mutes) == 0 {
		return inv.Reply(ReplyOptions{Content: fmt.Sprintf(
			"✅ **%s** has a clean history!", member.User.Username)})
	}

	warningText := "No warnings found."
	if len(warnings) > 0 {
		lines := make([]string, 0, len(warnings))
		for i, w := range warnings {
			lines = append(lines, fmt.Sprintf("**%d.** %s (by <@%s> on <t:%d:d>)",
				i+1, displayReason(w.Reason), w.ModeratorID, w.Timestamp.Unix()))
		}
		warningText = strings.Join(lines, "\n")
	}

	muteText := "No mutes found."
	if len(mutes) > 0 {
		lines := make([]string, 0, len(mutes))
		for i, m := range mutes {
			lines = append(lines, fmt.Sprintf("**%d.** %s - %dm (by <@%s> on <t:%d:d>)",
				i+1, displayReason(m.Reason), m.DurationSec/60, m.ModeratorID, m.Timestamp.Unix()))
		}
		muteText = strings.Join(lines, "\n")
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📜 History for %s", member.User.Username),
		Color: 0xffaa00,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "⚠️ Warnings", Value: warningText},
			{Name: "🔇 Mutes", Value: muteText},
		},
	}
	return inv.Reply(ReplyOptions{Embed: embed})
}

// AllWarnings lists every warning in the store, newest first, paginated at
// the embed description limit. The first page answers the invocation; any
// further pages go straight to the channel.
func (s *Service) AllWarnings(inv Invocation) error {
	all := s.records.Warnings.All()
	if len(all) == 0 {
		return inv.Reply(ReplyOptions{Content: "✅ No warnings found in the entire database."})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.After(all[j].Timestamp)
	})

	var pages []string
	var current strings.Builder
	for _, w := range all {
		line := fmt.Sprintf("• <@%s> - %s (by <@%s> on <t:%d:f>)\n",
			w.UserID, displayReason(w.Reason), w.ModeratorID, w.Timestamp.Unix())
		if current.Len()+len(line) > embedPageLimit {
			pages = append(pages, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		pages = append(pages, current.String())
	}

	for i, page := range pages {
		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("📜 All Warnings (%d total) - Page %d/%d", len(all), i+1, len(pages)),
			Description: page,
			Color:       0xff4444,
		}
		if i == 0 {
			if err := inv.Reply(ReplyOptions{Embed: embed}); err != nil {
				return err
			}
			continue
		}
		if err := s.platform.SendEmbed(inv.ChannelID(), embed); err != nil {
			return err
		}
	}
	return nil
}

// Leaderboard shows the ten most-warned users.
func (s *Service) Leaderboard(inv Invocation) error {
	leaders := s.topWarned()
	if len(leaders) == 0 {
		return inv.Reply(ReplyOptions{Content: "✅ No warnings found."})
	}

	lines := make([]string, 0, len(leaders))
	for i, entry := range leaders {
		name := fmt.Sprintf("Unknown User (%s)", entry.UserID)
		if user, err := s.platform.FetchUser(entry.UserID); err == nil {
			name = user.Username
		}
		plural := ""
		if entry.Count > 1 {
			plural = "s"
		}
		lines = append(lines, fmt.Sprintf("**%d.** %s - %d warning%s", i+1, name, entry.Count, plural))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 Warning Leaderboard",
		Description: strings.Join(lines, "\n"),
		Color:       0xff9900,
	}
	return inv.Reply(ReplyOptions{Embed: embed})
}

// Help lists every command surface of the bot.
func (s *Service) Help(inv Invocation) error {
	embed := &discordgo.MessageEmbed{
		Title:       "🤖 Bot Commands",
		Description: "Here are all available commands:",
		Color:       0x7289DA,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🔹 !warn <@user> <reason>", Value: "Warns a user"},
			{Name: "🔹 !kick <@user> <reason>", Value: "Kicks a user"},
			{Name: "🔹 !ban <@user> <reason>", Value: "Bans a user"},
			{Name: "🔹 !unban <user_id>", Value: "Unbans a user"},
			{Name: "🔹 !mute <user>, <duration>, <reason>", Value: "Mutes a user (e.g. 10m, 2h)"},
			{Name: "🔹 !unmute <user>", Value: "Unmutes a user"},
			{Name: "🔹 !timeout <user>, <duration>, <reason>", Value: "Alias for mute"},
			{Name: "🔹 !clear <amount>", Value: "Delete messages"},
			{Name: "🔹 !hwarn <@user>", Value: "Shows history"},
			{Name: "🔹 !lwarn", Value: "Shows leaderboard"},
			{Name: "🔹 !allwarn", Value: "Shows all warnings"},
			{Name: "🔹 !delwarn <@user>", Value: "Remove specific warnings"},
			{Name: "🔹 !clearwarns <@user>", Value: "Clear all warnings for a user"},
			{Name: "🔹 !modrole <@role>", Value: "Add/remove moderator role"},
			{Name: "🔹 !modroles", Value: "List moderator roles"},
			{Name: "🔹 !reset", Value: "Reset bot data"},
			{Name: "🔹 !shutdown", Value: "Shutdown the bot"},
			{Name: "🔹 Jarvis warn @user for reason", Value: "Natural language commands"},
			{Name: "✨ Note", Value: "All commands are also available as slash commands (e.g. `/warn`)"},
		},
	}
	return inv.Reply(ReplyOptions{Embed: embed})
}
