// Package events provides event handlers for message events.
// Prefix commands and the Jarvis natural language trigger both live here;
// everything dispatches into the same moderation service the slash commands
// use.
package events

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OrionStudios/JarvisBotGo/pkg/config"
	"github.com/OrionStudios/JarvisBotGo/pkg/discord"
	"github.com/OrionStudios/JarvisBotGo/pkg/errors"
	"github.com/OrionStudios/JarvisBotGo/pkg/logger"
	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnMessageCreate(onMessageCreate)
}

// onMessageCreate is called when a new message is created
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer errors.RecoverMiddleware()()

	if m.Author.Bot || m.GuildID == "" {
		return
	}

	cfg := config.Get()
	content := strings.TrimSpace(m.Content)

	trigger := cfg.JarvisTrigger
	if len(content) >= len(trigger) && strings.EqualFold(content[:len(trigger)], trigger) {
		handleJarvisTrigger(s, m, strings.TrimSpace(content[len(trigger):]))
		return
	}

	if strings.HasPrefix(content, cfg.CommandPrefix) {
		handlePrefixCommand(s, m, strings.TrimPrefix(content, cfg.CommandPrefix))
	}
}

// handleJarvisTrigger answers "jarvis ..." messages. The permission check
// comes before anything else, including the empty-query greeting.
func handleJarvisTrigger(s *discordgo.Session, m *discordgo.MessageCreate, query string) {
	inv := discord.NewMessageInvocation(s, m)

	if !svc.Authorizer().IsModerator(inv.Member()) {
		replyError(inv, "❌ You don't have permission to command me, you pathetic peasant.")
		return
	}

	if query == "" {
		replyError(inv, "Yes, sir?")
		return
	}

	if err := router.Handle(inv, m.Mentions, query); err != nil {
		logger.Error(fmt.Sprintf("Jarvis handling failed: %v", err), "Message")
	}
}

// handlePrefixCommand parses and dispatches a "!command args" message
func handlePrefixCommand(s *discordgo.Session, m *discordgo.MessageCreate, input string) {
	fields := strings.SplitN(strings.TrimSpace(input), " ", 2)
	name := strings.ToLower(fields[0])
	rest := ""
	if len(fields) > 1 {
		rest = strings.TrimSpace(fields[1])
	}

	inv := discord.NewMessageInvocation(s, m)

	var err error
	switch name {
	case "help":
		err = svc.Help(inv)

	case "warn":
		if !requireModerator(inv) {
			return
		}
		tokens := strings.SplitN(rest, " ", 2)
		member := resolveMember(s, m, tokens[0])
		if rest == "" || member == nil || len(tokens) < 2 {
			replyError(inv, "⚠️ Usage: `!warn @user reason`")
			return
		}
		err = svc.Warn(inv, member, strings.TrimSpace(tokens[1]))

	case "hwarn":
		if !requireModerator(inv) {
			return
		}
		member := resolveMember(s, m, rest)
		if member == nil {
			replyError(inv, "⚠️ Please mention a user.")
			return
		}
		err = svc.History(inv, member)

	case "allwarn":
		if !requireModerator(inv) {
			return
		}
		err = svc.AllWarnings(inv)

	case "lwarn":
		err = svc.Leaderboard(inv)

	case "mute", "timeout":
		if !requireModerator(inv) {
			return
		}
		usage := "⚠️ Usage: `!mute <user>, <duration>, <reason>`\nExample: `!mute @User, 10m, spamming`"
		if rest == "" {
			replyError(inv, usage)
			return
		}
		parts := strings.SplitN(rest, ",", 3)
		if len(parts) < 3 {
			replyError(inv, usage)
			return
		}
		member := resolveMember(s, m, strings.TrimSpace(parts[0]))
		if member == nil {
			replyError(inv, fmt.Sprintf("❌ Could not find user: %s", strings.TrimSpace(parts[0])))
			return
		}
		err = svc.Mute(inv, member, strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]))

	case "unmute", "untimeout":
		if !requireModerator(inv) {
			return
		}
		member := resolveMember(s, m, rest)
		if member == nil {
			replyError(inv, "⚠️ Please mention a user.")
			return
		}
		err = svc.Unmute(inv, member)

	case "kick":
		if !requireModerator(inv) {
			return
		}
		tokens := strings.SplitN(rest, " ", 2)
		member := resolveMember(s, m, tokens[0])
		if member == nil {
			replyError(inv, "⚠️ Usage: `!kick @user <reason>`")
			return
		}
		reason := "No reason provided"
		if len(tokens) > 1 {
			reason = strings.TrimSpace(tokens[1])
		}
		err = svc.Kick(inv, member, reason)

	case "ban":
		if !requireModerator(inv) {
			return
		}
		tokens := strings.SplitN(rest, " ", 2)
		member := resolveMember(s, m, tokens[0])
		if member == nil {
			replyError(inv, "⚠️ Usage: `!ban @user <reason>`")
			return
		}
		reason := "No reason provided"
		if len(tokens) > 1 {
			reason = strings.TrimSpace(tokens[1])
		}
		err = svc.Ban(inv, member, reason)

	case "unban":
		if !requireModerator(inv) {
			return
		}
		if rest == "" {
			replyError(inv, "⚠️ Usage: `!unban <user_id>`")
			return
		}
		userID := extractUserID(m, rest)
		if userID == "" {
			replyError(inv, "❌ Invalid user ID.")
			return
		}
		err = svc.Unban(inv, userID)

	case "clear":
		if !svc.Authorizer().IsModerator(inv.Member()) {
			return
		}
		amount, convErr := strconv.Atoi(rest)
		if convErr != nil {
			replyError(inv, "⚠️ Usage: `!clear <amount>`")
			return
		}
		err = svc.Clear(inv, amount)

	case "delwarn":
		if !requireModerator(inv) {
			return
		}
		member := resolveMember(s, m, rest)
		if member == nil {
			replyError(inv, "⚠️ Please mention a user.")
			return
		}
		err = svc.DeleteWarnings(inv, member)

	case "clearwarns":
		if !requireModerator(inv) {
			return
		}
		member := resolveMember(s, m, rest)
		if member == nil {
			replyError(inv, "⚠️ Please mention a user.")
			return
		}
		err = svc.ClearUserWarnings(inv, member)

	case "resetwarns":
		if !requireModerator(inv) {
			return
		}
		err = svc.ResetWarnings(inv)

	case "reset":
		if !svc.Authorizer().IsModerator(inv.Member()) {
			return
		}
		err = svc.ResetAll(inv)

	case "modrole":
		if !isAdmin(s, m) {
			replyError(inv, "❌ Admins only.")
			return
		}
		role := resolveRole(s, m, rest)
		if role == nil {
			replyError(inv, "⚠️ Mention a role.")
			return
		}
		err = svc.ToggleModRole(inv, role)

	case "modroles":
		if !svc.Authorizer().IsModerator(inv.Member()) {
			return
		}
		err = svc.ListModRoles(inv)

	case "shutdown":
		if !requireModerator(inv) {
			return
		}
		err = svc.Shutdown(inv)

	case "sync":
		if !isAdmin(s, m) {
			replyError(inv, "❌ You need Administrator permission to use this.")
			return
		}
		if syncErr := botClient.CommandHandler.SyncCommands(); syncErr != nil {
			replyError(inv, fmt.Sprintf("❌ Failed to sync commands: %v", syncErr))
			return
		}
		replyError(inv, "✅ Slash commands synced.")
	}

	if err != nil {
		logger.Error(fmt.Sprintf("Prefix command %q failed: %v", name, err), "Message")
	}
}

// requireModerator gates a prefix handler and answers the denial
func requireModerator(inv moderation.Invocation) bool {
	if svc.Authorizer().IsModerator(inv.Member()) {
		return true
	}
	replyError(inv, "❌ You don't have permission.")
	return false
}

func replyError(inv moderation.Invocation, content string) {
	if err := inv.Reply(moderation.ReplyOptions{Content: content}); err != nil {
		logger.Error(fmt.Sprintf("Failed to reply: %v", err), "Message")
	}
}

// isAdmin checks the author's effective channel permissions
func isAdmin(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	perms, err := s.State.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		return false
	}
	return perms&discordgo.PermissionAdministrator != 0
}

// resolveMember finds a member by mention, ID or (display) name
func resolveMember(s *discordgo.Session, m *discordgo.MessageCreate, input string) *discordgo.Member {
	if len(m.Mentions) > 0 {
		user := m.Mentions[0]
		if member, err := s.State.Member(m.GuildID, user.ID); err == nil && member.User != nil {
			return member
		}
		return &discordgo.Member{User: user}
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	if _, err := strconv.ParseUint(input, 10, 64); err == nil {
		if member, err := s.GuildMember(m.GuildID, input); err == nil {
			return member
		}
	}

	lower := strings.ToLower(input)
	if guild, err := s.State.Guild(m.GuildID); err == nil {
		for _, member := range guild.Members {
			if member.User == nil {
				continue
			}
			if strings.ToLower(member.User.Username) == lower || strings.ToLower(member.Nick) == lower {
				return member
			}
		}
	}
	return nil
}

// extractUserID accepts a mention or a bare numeric ID
func extractUserID(m *discordgo.MessageCreate, input string) string {
	if len(m.Mentions) > 0 {
		return m.Mentions[0].ID
	}
	input = strings.TrimSpace(input)
	if _, err := strconv.ParseUint(input, 10, 64); err == nil {
		return input
	}
	return ""
}

// resolveRole finds a role by mention or ID
func resolveRole(s *discordgo.Session, m *discordgo.MessageCreate, input string) *discordgo.Role {
	input = strings.TrimSpace(input)
	if len(m.MentionRoles) > 0 {
		input = m.MentionRoles[0]
	}
	input = strings.TrimPrefix(strings.TrimSuffix(input, ">"), "<@&")
	if input == "" {
		return nil
	}

	guild, err := s.State.Guild(m.GuildID)
	if err != nil {
		return nil
	}
	for _, role := range guild.Roles {
		if role.ID == input {
			return role
		}
	}
	return nil
}
