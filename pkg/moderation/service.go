package moderation

import (
	"fmt"
	"sort"
	"time"

	"github.com/OrionStudios/JarvisBotGo/pkg/logger"
	"github.com/OrionStudios/JarvisBotGo/pkg/models"
	"github.com/OrionStudios/JarvisBotGo/pkg/store"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// Service holds the record stores and executes every moderation action.
// All command surfaces (slash, prefix, Jarvis) dispatch into the same
// methods, so behavior cannot drift between them.
type Service struct {
	records  *store.Records
	auth     *Authorizer
	platform Platform
	undo     *undoBuffer
	confirms *confirmRegistry
	publish  func(Event)
	shutdown func()
}

// NewService wires a Service over the given stores and platform.
func NewService(records *store.Records, platform Platform) *Service {
	return &Service{
		records:  records,
		auth:     NewAuthorizer(records.ModRoles),
		platform: platform,
		undo:     newUndoBuffer(undoWindow),
		confirms: newConfirmRegistry(confirmTTL),
	}
}

// Authorizer exposes the moderator allowlist.
func (s *Service) Authorizer() *Authorizer {
	return s.auth
}

// SetPublisher installs the moderation-event fanout hook.
func (s *Service) SetPublisher(fn func(Event)) {
	s.publish = fn
}

// SetShutdown installs the process shutdown callback used by the shutdown
// action.
func (s *Service) SetShutdown(fn func()) {
	s.shutdown = fn
}

func (s *Service) emit(ev Event) {
	if s.publish == nil {
		return
	}
	ev.Timestamp = time.Now().UTC()
	s.publish(ev)
}

// Warn records a warning, notifies the user and applies the escalation
// timeout when the count crosses a threshold. The record is stored before
// any platform call, so a failed timeout never loses the warning.
func (s *Service) Warn(inv Invocation, member *discordgo.Member, reason string) error {
	warning := models.Warning{
		ID:          uuid.New().String(),
		UserID:      member.User.ID,
		Reason:      reason,
		ModeratorID: inv.AuthorID(),
		Timestamp:   time.Now().UTC(),
	}
	if err := s.records.Warnings.Append(warning); err != nil {
		logger.Error(fmt.Sprintf("Failed to store warning: %v", err), "Moderation")
	}

	count := len(s.records.Warnings.Filter(func(w models.Warning) bool {
		return w.UserID == member.User.ID
	}))

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚠️ Warning Issued: %s", member.User.Username),
		Description: fmt.Sprintf("**Reason:** %s\n**Total Warnings:** %d", reason, count),
		Color:       0xff0000,
	}
	if err := inv.Reply(ReplyOptions{Embed: embed}); err != nil {
		return err
	}

	guildName := inv.GuildName()
	if guildName == "" {
		guildName = "the server"
	}
	// DM delivery is best effort; users can block the bot.
	_ = s.platform.SendDM(member.User.ID, fmt.Sprintf(
		"⚠️ You have been warned in **%s** for: %s\nYou now have **%d** warning(s).",
		guildName, reason, count,
	))

	s.emit(Event{
		Action:      "warn",
		GuildID:     inv.GuildID(),
		UserID:      member.User.ID,
		ModeratorID: inv.AuthorID(),
		Reason:      reason,
	})

	if timeout, ok := EscalationTimeout(count); ok {
		until := time.Now().Add(timeout)
		if err := s.platform.Timeout(inv.GuildID(), member.User.ID, &until); err != nil {
			logger.Warn(fmt.Sprintf("Failed to timeout user %s: %v", member.User.ID, err), "Moderation")
			_ = s.platform.SendMessage(inv.ChannelID(), fmt.Sprintf(
				"❌ Couldn't timeout <@%s>. Missing permissions?", member.User.ID))
		} else {
			_ = s.platform.SendMessage(inv.ChannelID(), fmt.Sprintf(
				"🔇 <@%s> has been timed out for %.1f hours.", member.User.ID, timeout.Hours()))
		}
	}
	return nil
}

// Mute times a user out for the given shorthand duration and records it.
func (s *Service) Mute(inv Invocation, member *discordgo.Member, durationStr, reason string) error {
	seconds, err := ParseDuration(durationStr)
	if err != nil {
		return inv.Reply(ReplyOptions{Content: "⚠️ Invalid duration. Use format: `10s`, `5m`, `2h`, `1d`"})
	}

	until := time.Now().Add(time.Duration(seconds) * time.Second)
	if err := s.platform.Timeout(inv.GuildID(), member.User.ID, &until); err != nil {
		logger.Warn(fmt.Sprintf("Mute failed for %s: %v", member.User.ID, err), "Moderation")
		return inv.Reply(ReplyOptions{Content: "❌ Failed to mute the user. Check bot permissions."})
	}

	mute := models.Mute{
		ID:          uuid.New().String(),
		UserID:      member.User.ID,
		Reason:      reason,
		ModeratorID: inv.AuthorID(),
		DurationSec: seconds,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.records.Mutes.Append(mute); err != nil {
		logger.Error(fmt.Sprintf("Failed to store mute: %v", err), "Moderation")
	}

	s.emit(Event{
		Action:      "mute",
		GuildID:     inv.GuildID(),
		UserID:      member.User.ID,
		ModeratorID: inv.AuthorID(),
		Reason:      reason,
		DurationSec: seconds,
	})

	return inv.Reply(ReplyOptions{Content: fmt.Sprintf(
		"🔇 **<@%s>** muted for **%s**. Reason: %s",
		member.User.ID, FormatDuration(seconds), reason)})
}

// Unmute lifts an active timeout. No record is written.
func (s *Service) Unmute(inv Invocation, member *discordgo.Member) error {
	if err := s.platform.Timeout(inv.GuildID(), member.User.ID, nil); err != nil {
		logger.Warn(fmt.Sprintf("Unmute failed for %s: %v", member.User.ID, err), "Moderation")
		return inv.Reply(ReplyOptions{Content: "❌ Failed to unmute the user."})
	}

	s.emit(Event{
		Action:      "unmute",
		GuildID:     inv.GuildID(),
		UserID:      member.User.ID,
		ModeratorID: inv.AuthorID(),
	})

	return inv.Reply(ReplyOptions{Content: fmt.Sprintf("✅ **<@%s>** has been unmuted.", member.User.ID)})
}

// Kick removes a member from the guild.
func (s *Service) Kick(inv Invocation, member *discordgo.Member, reason string) error {
	if err := s.platform.Kick(inv.GuildID(), member.User.ID, reason); err != nil {
		return inv.Reply(ReplyOptions{Content: fmt.Sprintf("❌ Failed to kick: %v", err)})
	}

	s.emit(Event{
		Action:      "kick",
		GuildID:     inv.GuildID(),
		UserID:      member.User.ID,
		ModeratorID: inv.AuthorID(),
		Reason:      reason,
	})

	return inv.Reply(ReplyOptions{Content: fmt.Sprintf(
		"👢 **%s** has been kicked. Reason: %s", member.User.Username, reason)})
}

// Ban bans a member from the guild.
func (s *Service) Ban(inv Invocation, member *discordgo.Member, reason string) error {
	if err := s.platform.Ban(inv.GuildID(), member.User.ID, reason); err != nil {
		return inv.Reply(ReplyOptions{Content: fmt.Sprintf("❌ Failed to ban: %v", err)})
	}

	s.emit(Event{
		Action:      "ban",
		GuildID:     inv.GuildID(),
		UserID:      member.User.ID,
		ModeratorID: inv.AuthorID(),
		Reason:      reason,
	})

	return inv.Reply(ReplyOptions{Content: fmt.Sprintf(
		"🔨 **%s** has been banned. Reason: %s", member.User.Username, reason)})
}

// Unban lifts a ban by user ID. The target is usually no longer a member,
// so only the bare ID is required.
func (s *Service) Unban(inv Invocation, userID string) error {
	if err := s.platform.Unban(inv.GuildID(), userID); err != nil {
		return inv.Reply(ReplyOptions{Content: fmt.Sprintf("❌ Failed to unban: %v", err)})
	}

	name := userID
	if user, err := s.platform.FetchUser(userID); err == nil {
		name = user.Username
	}

	s.emit(Event{
		Action:      "unban",
		GuildID:     inv.GuildID(),
		UserID:      userID,
		ModeratorID: inv.AuthorID(),
	})

	return inv.Reply(ReplyOptions{Content: fmt.Sprintf("✅ **%s** has been unbanned.", name)})
}

// Clear bulk-deletes recent messages in the invoking channel. When the
// invocation left a trigger message behind, one extra message is purged so
// the command itself disappears too.
func (s *Service) Clear(inv Invocation, amount int) error {
	limit := amount
	if inv.IncludesTrigger() {
		limit++
	}

	deleted, err := s.platform.Purge(inv.ChannelID(), limit)
	if err != nil {
		return inv.Reply(ReplyOptions{
			Content:   fmt.Sprintf("❌ Failed to clear messages: %v", err),
			Ephemeral: true,
		})
	}

	s.emit(Event{
		Action:      "clear",
		GuildID:     inv.GuildID(),
		ModeratorID: inv.AuthorID(),
	})

	return inv.Reply(ReplyOptions{
		Content:   fmt.Sprintf("🧹 Cleared **%d** messages.", deleted),
		Ephemeral: true,
	})
}

// Shutdown says goodbye and stops the process.
func (s *Service) Shutdown(inv Invocation) error {
	if err := inv.Reply(ReplyOptions{Content: "✅ Shutting down, sir. Until next time."}); err != nil {
		return err
	}
	logger.System(fmt.Sprintf("Bot shutdown requested by %s", inv.AuthorID()), "Moderation")

	s.emit(Event{Action: "shutdown", ModeratorID: inv.AuthorID()})

	if s.shutdown != nil {
		go s.shutdown()
	}
	return nil
}

// ToggleModRole flips a role on the moderator allowlist.
func (s *Service) ToggleModRole(inv Invocation, role *discordgo.Role) error {
	added, err := s.auth.ToggleRole(role.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to persist mod roles: %v", err), "Moderation")
	}
	if added {
		return inv.Reply(ReplyOptions{Content: fmt.Sprintf("✅ Added moderator permissions to role %s", role.Name)})
	}
	return inv.Reply(ReplyOptions{Content: fmt.Sprintf("🗑️ Removed moderator permissions from role %s", role.Name)})
}

// ListModRoles shows the current allowlist.
func (s *Service) ListModRoles(inv Invocation) error {
	roles := s.auth.Roles()
	if len(roles) == 0 {
		return inv.Reply(ReplyOptions{Content: "📜 No moderator roles configured.", Ephemeral: true})
	}
	text := ""
	for _, id := range roles {
		text += fmt.Sprintf("• <@&%s>\n", id)
	}
	return inv.Reply(ReplyOptions{Content: "🛡️ **Moderator Roles:**\n" + text})
}

// LeaderEntry is one row of the warning leaderboard.
type LeaderEntry struct {
	UserID string `json:"userId"`
	Count  int    `json:"count"`
}

// Stats returns the record totals and the current leaderboard, for the
// status API and the MQTT stats topic.
func (s *Service) Stats() (warnings int, mutes int, leaders []LeaderEntry) {
	return len(s.records.Warnings.All()), len(s.records.Mutes.All()), s.topWarned()
}

// topWarned counts warnings per user and returns the top ten. Users are
// ranked by count; equal counts keep the order in which the users first
// appear in the store.
func (s *Service) topWarned() []LeaderEntry {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, w := range s.records.Warnings.All() {
		if _, seen := counts[w.UserID]; !seen {
			order = append(order, w.UserID)
		}
		counts[w.UserID]++
	}

	leaders := make([]LeaderEntry, 0, len(order))
	for _, id := range order {
		leaders = append(leaders, LeaderEntry{UserID: id, Count: counts[id]})
	}
	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].Count > leaders[j].Count
	})

	if len(leaders) > 10 {
		leaders = leaders[:10]
	}
	return leaders
}
