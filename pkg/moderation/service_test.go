package moderation

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/OrionStudios/JarvisBotGo/pkg/models"
	"github.com/OrionStudios/JarvisBotGo/pkg/store"
	"github.com/bwmarrin/discordgo"
)

type timeoutCall struct {
	guildID string
	userID  string
	until   *time.Time
}

type fakePlatform struct {
	timeouts   []timeoutCall
	timeoutErr error
	kicked     []string
	banned     []string
	unbanned   []string
	purgeLimit int
	dms        []string
	messages   []string
	embeds     []*discordgo.MessageEmbed
	users      map[string]*discordgo.User
}

func (p *fakePlatform) Timeout(guildID, userID string, until *time.Time) error {
	if p.timeoutErr != nil {
		return p.timeoutErr
	}
	p.timeouts = append(p.timeouts, timeoutCall{guildID, userID, until})
	return nil
}

func (p *fakePlatform) Kick(guildID, userID, reason string) error {
	p.kicked = append(p.kicked, userID)
	return nil
}

func (p *fakePlatform) Ban(guildID, userID, reason string) error {
	p.banned = append(p.banned, userID)
	return nil
}

func (p *fakePlatform) Unban(guildID, userID string) error {
	p.unbanned = append(p.unbanned, userID)
	return nil
}

func (p *fakePlatform) Purge(channelID string, limit int) (int, error) {
	p.purgeLimit = limit
	return limit, nil
}

func (p *fakePlatform) SendDM(userID, content string) error {
	p.dms = append(p.dms, content)
	return nil
}

func (p *fakePlatform) SendMessage(channelID, content string) error {
	p.messages = append(p.messages, content)
	return nil
}

func (p *fakePlatform) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	p.embeds = append(p.embeds, embed)
	return nil
}

func (p *fakePlatform) FetchMember(guildID, userID string) (*discordgo.Member, error) {
	return &discordgo.Member{User: &discordgo.User{ID: userID}}, nil
}

func (p *fakePlatform) FetchUser(userID string) (*discordgo.User, error) {
	if u, ok := p.users[userID]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("unknown user %s", userID)
}

type fakeInvocation struct {
	authorID  string
	member    *discordgo.Member
	guildID   string
	guildName string
	channelID string
	trigger   bool
	replies   []ReplyOptions
}

func (i *fakeInvocation) AuthorID() string            { return i.authorID }
func (i *fakeInvocation) Member() *discordgo.Member   { return i.member }
func (i *fakeInvocation) GuildID() string             { return i.guildID }
func (i *fakeInvocation) GuildName() string           { return i.guildName }
func (i *fakeInvocation) ChannelID() string           { return i.channelID }
func (i *fakeInvocation) IncludesTrigger() bool       { return i.trigger }
func (i *fakeInvocation) Reply(opts ReplyOptions) error {
	i.replies = append(i.replies, opts)
	return nil
}

func (i *fakeInvocation) lastReply(t *testing.T) ReplyOptions {
	t.Helper()
	if len(i.replies) == 0 {
		t.Fatal("no reply was sent")
	}
	return i.replies[len(i.replies)-1]
}

func newTestService(t *testing.T) (*Service, *fakePlatform) {
	t.Helper()
	records, err := store.Open(t.TempDir(), "", "")
	if err != nil {
		t.Fatalf("failed to open records: %v", err)
	}
	platform := &fakePlatform{users: make(map[string]*discordgo.User)}
	return NewService(records, platform), platform
}

func testMember(id, name string, roles ...string) *discordgo.Member {
	return &discordgo.Member{
		User:  &discordgo.User{ID: id, Username: name},
		Roles: roles,
	}
}

func modInvocation(member *discordgo.Member) *fakeInvocation {
	return &fakeInvocation{
		authorID:  "mod-1",
		member:    member,
		guildID:   "guild-1",
		guildName: "Test Guild",
		channelID: "chan-1",
	}
}

func TestWarnCountsPerUser(t *testing.T) {
	svc, _ := newTestService(t)
	mod := testMember("mod-1", "mod")

	target := testMember("u1", "alice")
	other := testMember("u2", "bob")

	inv := modInvocation(mod)
	if err := svc.Warn(inv, target, "spamming"); err != nil {
		t.Fatalf("Warn failed: %v", err)
	}
	if err := svc.Warn(inv, target, "still spamming"); err != nil {
		t.Fatalf("Warn failed: %v", err)
	}
	if err := svc.Warn(inv, other, "being rude"); err != nil {
		t.Fatalf("Warn failed: %v", err)
	}

	warnings, mutes, leaders := svc.Stats()
	if warnings != 3 {
		t.Errorf("warnings = %d, want 3", warnings)
	}
	if mutes != 0 {
		t.Errorf("mutes = %d, want 0", mutes)
	}
	if len(leaders) != 2 {
		t.Fatalf("leaders = %d, want 2", len(leaders))
	}
	if leaders[0].UserID != "u1" || leaders[0].Count != 2 {
		t.Errorf("top leader = %+v, want u1 with 2", leaders[0])
	}

	last := inv.lastReply(t)
	if last.Embed == nil || !strings.Contains(last.Embed.Description, "**Total Warnings:** 1") {
		t.Errorf("expected bob's warning embed with count 1, got %+v", last.Embed)
	}
}

func TestWarnSendsDM(t *testing.T) {
	svc, platform := newTestService(t)
	inv := modInvocation(testMember("mod-1", "mod"))

	if err := svc.Warn(inv, testMember("u1", "alice"), "spamming"); err != nil {
		t.Fatalf("Warn failed: %v", err)
	}
	if len(platform.dms) != 1 {
		t.Fatalf("expected 1 DM, got %d", len(platform.dms))
	}
	if !strings.Contains(platform.dms[0], "Test Guild") {
		t.Errorf("DM should name the guild: %q", platform.dms[0])
	}
}

func TestWarnEscalation(t *testing.T) {
	svc, platform := newTestService(t)
	inv := modInvocation(testMember("mod-1", "mod"))
	target := testMember("u1", "alice")

	for i := 0; i < 2; i++ {
		if err := svc.Warn(inv, target, "spamming"); err != nil {
			t.Fatalf("Warn failed: %v", err)
		}
	}
	if len(platform.timeouts) != 0 {
		t.Fatalf("no timeout expected before third warning, got %d", len(platform.timeouts))
	}

	if err := svc.Warn(inv, target, "third strike"); err != nil {
		t.Fatalf("Warn failed: %v", err)
	}
	if len(platform.timeouts) != 1 {
		t.Fatalf("expected timeout on third warning, got %d", len(platform.timeouts))
	}
	until := platform.timeouts[0].until
	if until == nil {
		t.Fatal("escalation timeout should set an expiry")
	}
	remaining := time.Until(*until)
	if remaining < 5*time.Hour || remaining > 7*time.Hour {
		t.Errorf("third warning timeout = %v, want about 6h", remaining)
	}
	if len(platform.messages) == 0 || !strings.Contains(platform.messages[len(platform.messages)-1], "timed out for 6.0 hours") {
		t.Errorf("expected timeout notice, got %v", platform.messages)
	}

	if err := svc.Warn(inv, target, "fourth strike"); err != nil {
		t.Fatalf("Warn failed: %v", err)
	}
	until = platform.timeouts[1].until
	remaining = time.Until(*until)
	if remaining < 6*24*time.Hour || remaining > 8*24*time.Hour {
		t.Errorf("fourth warning timeout = %v, want about 7d", remaining)
	}
}

func TestWarnEscalationTimeoutFailure(t *testing.T) {
	svc, platform := newTestService(t)
	platform.timeoutErr = fmt.Errorf("missing permissions")
	inv := modInvocation(testMember("mod-1", "mod"))
	target := testMember("u1", "alice")

	for i := 0; i < 3; i++ {
		if err := svc.Warn(inv, target, "spamming"); err != nil {
			t.Fatalf("Warn failed: %v", err)
		}
	}

	if warnings, _, _ := svc.Stats(); warnings != 3 {
		t.Errorf("failed timeout must not lose warnings, have %d", warnings)
	}
	if len(platform.messages) == 0 || !strings.Contains(platform.messages[len(platform.messages)-1], "Couldn't timeout") {
		t.Errorf("expected timeout failure notice, got %v", platform.messages)
	}
}

func TestMuteInvalidDuration(t *testing.T) {
	svc, platform := newTestService(t)
	inv := modInvocation(testMember("mod-1", "mod"))

	if err := svc.Mute(inv, testMember("u1", "alice"), "10x", "spamming"); err != nil {
		t.Fatalf("Mute returned error: %v", err)
	}
	if len(platform.timeouts) != 0 {
		t.Error("invalid duration must not reach the platform")
	}
	if !strings.Contains(inv.lastReply(t).Content, "Invalid duration") {
		t.Errorf("expected invalid duration reply, got %q", inv.lastReply(t).Content)
	}
}

func TestMuteRecordsAndTimesOut(t *testing.T) {
	svc, platform := newTestService(t)
	inv := modInvocation(testMember("mod-1", "mod"))

	if err := svc.Mute(inv, testMember("u1", "alice"), "10m", "spamming"); err != nil {
		t.Fatalf("Mute failed: %v", err)
	}
	if len(platform.timeouts) != 1 {
		t.Fatalf("expected 1 timeout, got %d", len(platform.timeouts))
	}
	if _, mutes, _ := svc.Stats(); mutes != 1 {
		t.Errorf("mutes = %d, want 1", mutes)
	}
	reply := inv.lastReply(t)
	if !strings.Contains(reply.Content, "muted for **10m**") {
		t.Errorf("unexpected mute reply: %q", reply.Content)
	}
}

func TestMutePlatformFailureStoresNothing(t *testing.T) {
	svc, platform := newTestService(t)
	platform.timeoutErr = fmt.Errorf("missing permissions")
	inv := modInvocation(testMember("mod-1", "mod"))

	if err := svc.Mute(inv, testMember("u1", "alice"), "10m", "spamming"); err != nil {
		t.Fatalf("Mute returned error: %v", err)
	}
	if _, mutes, _ := svc.Stats(); mutes != 0 {
		t.Errorf("failed mute must not be recorded, have %d", mutes)
	}
	if !strings.Contains(inv.lastReply(t).Content, "Failed to mute") {
		t.Errorf("expected failure reply, got %q", inv.lastReply(t).Content)
	}
}

func TestUnmuteClearsTimeout(t *testing.T) {
	svc, platform := newTestService(t)
	inv := modInvocation(testMember("mod-1", "mod"))

	if err := svc.Unmute(inv, testMember("u1", "alice")); err != nil {
		t.Fatalf("Unmute failed: %v", err)
	}
	if len(platform.timeouts) != 1 || platform.timeouts[0].until != nil {
		t.Errorf("unmute should clear the timeout, got %+v", platform.timeouts)
	}
}

func TestClearPurgesTriggerMessage(t *testing.T) {
	svc, platform := newTestService(t)

	inv := modInvocation(testMember("mod-1", "mod"))
	inv.trigger = true
	if err := svc.Clear(inv, 10); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if platform.purgeLimit != 11 {
		t.Errorf("prefix clear should purge 11, purged %d", platform.purgeLimit)
	}

	slash := modInvocation(testMember("mod-1", "mod"))
	if err := svc.Clear(slash, 10); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if platform.purgeLimit != 10 {
		t.Errorf("slash clear should purge 10, purged %d", platform.purgeLimit)
	}
	if !slash.lastReply(t).Ephemeral {
		t.Error("clear confirmation should be ephemeral")
	}
}

func TestToggleModRole(t *testing.T) {
	svc, _ := newTestService(t)
	inv := modInvocation(testMember("mod-1", "mod"))
	role := &discordgo.Role{ID: "role-1", Name: "Mods"}

	if err := svc.ToggleModRole(inv, role); err != nil {
		t.Fatalf("ToggleModRole failed: %v", err)
	}
	if !svc.Authorizer().IsModerator(testMember("u1", "alice", "role-1")) {
		t.Error("member with allowlisted role should be a moderator")
	}

	if err := svc.ToggleModRole(inv, role); err != nil {
		t.Fatalf("ToggleModRole failed: %v", err)
	}
	if svc.Authorizer().IsModerator(testMember("u1", "alice", "role-1")) {
		t.Error("toggle should have removed the role")
	}
}

func TestLeaderboardTieOrder(t *testing.T) {
	svc, _ := newTestService(t)
	inv := modInvocation(testMember("mod-1", "mod"))

	svc.Warn(inv, testMember("u1", "alice"), "a")
	svc.Warn(inv, testMember("u2", "bob"), "b")
	svc.Warn(inv, testMember("u3", "carol"), "c")
	svc.Warn(inv, testMember("u3", "carol"), "d")

	_, _, leaders := svc.Stats()
	want := []string{"u3", "u1", "u2"}
	for i, id := range want {
		if leaders[i].UserID != id {
			t.Errorf("leaders[%d] = %s, want %s", i, leaders[i].UserID, id)
		}
	}
}

func buttonCustomID(t *testing.T, reply ReplyOptions, index int) string {
	t.Helper()
	if len(reply.Components) == 0 {
		t.Fatal("reply has no components")
	}
	row, ok := reply.Components[0].(discordgo.ActionsRow)
	if !ok {
		t.Fatalf("component is %T, want ActionsRow", reply.Components[0])
	}
	switch c := row.Components[index].(type) {
	case discordgo.Button:
		return c.CustomID
	case discordgo.SelectMenu:
		return c.CustomID
	default:
		t.Fatalf("unexpected component %T", c)
		return ""
	}
}

func TestResetWarningsConfirmAndUndo(t *testing.T) {
	svc, _ := newTestService(t)
	mod := testMember("mod-1", "mod", "role-1")
	inv := modInvocation(mod)
	svc.ToggleModRole(inv, &discordgo.Role{ID: "role-1", Name: "Mods"})

	svc.Warn(inv, testMember("u1", "alice"), "spamming")
	svc.Warn(inv, testMember("u2", "bob"), "trolling")

	if err := svc.ResetWarnings(inv); err != nil {
		t.Fatalf("ResetWarnings failed: %v", err)
	}
	confirmID := buttonCustomID(t, inv.lastReply(t), 0)
	if !strings.HasPrefix(confirmID, "reset-warns:confirm:") {
		t.Fatalf("unexpected confirm custom ID %q", confirmID)
	}

	update := svc.HandleComponent(mod, confirmID, nil)
	if update == nil {
		t.Fatal("confirm click was not handled")
	}
	if !strings.Contains(update.Content, "All warnings reset") {
		t.Errorf("unexpected confirm update: %q", update.Content)
	}
	if warnings, _, _ := svc.Stats(); warnings != 0 {
		t.Fatalf("warnings after reset = %d, want 0", warnings)
	}

	update = svc.HandleComponent(mod, "reset-warns:undo", nil)
	if update == nil || !strings.Contains(update.Content, "restored") {
		t.Fatalf("undo failed: %+v", update)
	}
	if warnings, _, _ := svc.Stats(); warnings != 2 {
		t.Errorf("warnings after undo = %d, want 2", warnings)
	}

	update = svc.HandleComponent(mod, "reset-warns:undo", nil)
	if update == nil || !strings.Contains(update.Content, "expired") {
		t.Errorf("second undo should report expiry, got %+v", update)
	}
}

func TestResetWarningsCancel(t *testing.T) {
	svc, _ := newTestService(t)
	mod := testMember("mod-1", "mod", "role-1")
	inv := modInvocation(mod)
	svc.ToggleModRole(inv, &discordgo.Role{ID: "role-1", Name: "Mods"})
	svc.Warn(inv, testMember("u1", "alice"), "spamming")

	svc.ResetWarnings(inv)
	cancelID := buttonCustomID(t, inv.lastReply(t), 1)

	update := svc.HandleComponent(mod, cancelID, nil)
	if update == nil || !strings.Contains(update.Content, "cancelled") {
		t.Fatalf("cancel failed: %+v", update)
	}
	if warnings, _, _ := svc.Stats(); warnings != 1 {
		t.Errorf("cancel must not touch warnings, have %d", warnings)
	}
}

func TestResetAllClearsEverything(t *testing.T) {
	svc, _ := newTestService(t)
	mod := testMember("mod-1", "mod", "role-1")
	inv := modInvocation(mod)
	svc.ToggleModRole(inv, &discordgo.Role{ID: "role-1", Name: "Mods"})

	svc.Warn(inv, testMember("u1", "alice"), "spamming")
	svc.Mute(inv, testMember("u2", "bob"), "10m", "trolling")

	svc.ResetAll(inv)
	confirmID := buttonCustomID(t, inv.lastReply(t), 0)

	update := svc.HandleComponent(mod, confirmID, nil)
	if update == nil || !strings.Contains(update.Content, "has been reset") {
		t.Fatalf("reset-all confirm failed: %+v", update)
	}
	warnings, mutes, _ := svc.Stats()
	if warnings != 0 || mutes != 0 {
		t.Errorf("after reset-all warnings=%d mutes=%d, want 0/0", warnings, mutes)
	}
}

func TestComponentRequiresModerator(t *testing.T) {
	svc, _ := newTestService(t)
	outsider := testMember("u9", "eve")

	update := svc.HandleComponent(outsider, "reset-warns:undo", nil)
	if update == nil {
		t.Fatal("component click should be answered")
	}
	if update.EphemeralReply != "❌ You don't have permission." {
		t.Errorf("unexpected permission reply: %q", update.EphemeralReply)
	}
}

func TestComponentIgnoresForeignIDs(t *testing.T) {
	svc, _ := newTestService(t)
	mod := testMember("mod-1", "mod")

	if update := svc.HandleComponent(mod, "music:skip", nil); update != nil {
		t.Errorf("foreign custom ID should be ignored, got %+v", update)
	}
	if update := svc.HandleComponent(mod, "plainid", nil); update != nil {
		t.Errorf("unscoped custom ID should be ignored, got %+v", update)
	}
}

func TestClearUserWarnings(t *testing.T) {
	svc, _ := newTestService(t)
	inv := modInvocation(testMember("mod-1", "mod"))
	target := testMember("u1", "alice")

	svc.Warn(inv, target, "a")
	svc.Warn(inv, target, "b")
	svc.Warn(inv, testMember("u2", "bob"), "c")

	if err := svc.ClearUserWarnings(inv, target); err != nil {
		t.Fatalf("ClearUserWarnings failed: %v", err)
	}
	if warnings, _, _ := svc.Stats(); warnings != 1 {
		t.Errorf("warnings = %d, want 1 (bob's kept)", warnings)
	}

	if err := svc.ClearUserWarnings(inv, target); err != nil {
		t.Fatalf("ClearUserWarnings failed: %v", err)
	}
	if !strings.Contains(inv.lastReply(t).Content, "no warnings to clear") {
		t.Errorf("expected empty notice, got %q", inv.lastReply(t).Content)
	}
}

func TestDeleteWarningsSelection(t *testing.T) {
	svc, _ := newTestService(t)
	mod := testMember("mod-1", "mod", "role-1")
	inv := modInvocation(mod)
	svc.ToggleModRole(inv, &discordgo.Role{ID: "role-1", Name: "Mods"})

	target := testMember("u1", "alice")
	svc.Warn(inv, target, "first")
	svc.Warn(inv, target, "second")

	if err := svc.DeleteWarnings(inv, target); err != nil {
		t.Fatalf("DeleteWarnings failed: %v", err)
	}
	reply := inv.lastReply(t)
	menuID := buttonCustomID(t, reply, 0)
	if !strings.HasPrefix(menuID, "del-warn:") {
		t.Fatalf("unexpected menu custom ID %q", menuID)
	}

	row := reply.Components[0].(discordgo.ActionsRow)
	menu := row.Components[0].(discordgo.SelectMenu)
	if len(menu.Options) != 2 {
		t.Fatalf("menu options = %d, want 2", len(menu.Options))
	}

	update := svc.HandleComponent(mod, menuID, []string{menu.Options[0].Value})
	if update == nil || update.Embed == nil {
		t.Fatalf("selection was not handled: %+v", update)
	}
	if warnings, _, _ := svc.Stats(); warnings != 1 {
		t.Errorf("warnings = %d, want 1", warnings)
	}

	update = svc.HandleComponent(mod, menuID, []string{menu.Options[1].Value})
	if update == nil || !strings.Contains(update.Content, "expired") {
		t.Errorf("replayed selection should report expiry, got %+v", update)
	}
}

func TestAllWarningsPaginatesLongReports(t *testing.T) {
	svc, platform := newTestService(t)

	hugeReason := strings.Repeat("x", 6000)
	if err := svc.records.Warnings.Append(models.Warning{
		ID: "w-huge", UserID: "u0", Reason: hugeReason,
		ModeratorID: "mod-1", Timestamp: time.Now(),
	}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	for i := 0; i < 30; i++ {
		w := models.Warning{
			ID:          fmt.Sprintf("w-%d", i),
			UserID:      fmt.Sprintf("u%d", i),
			Reason:      strings.Repeat("spam ", 40),
			ModeratorID: "mod-1",
			Timestamp:   time.Now(),
		}
		if err := svc.records.Warnings.Append(w); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	inv := modInvocation(testMember("mod-1", "mod"))
	if err := svc.AllWarnings(inv); err != nil {
		t.Fatalf("AllWarnings failed: %v", err)
	}

	first := inv.lastReply(t)
	if first.Embed == nil {
		t.Fatal("expected the first page as an embed reply")
	}
	if len(platform.embeds) == 0 {
		t.Fatal("expected later pages to be sent to the channel")
	}

	pages := append([]*discordgo.MessageEmbed{first.Embed}, platform.embeds...)
	all := ""
	for i, page := range pages {
		if len(page.Description) > 4000 {
			t.Errorf("page %d has %d chars, exceeds the embed limit", i+1, len(page.Description))
		}
		all += page.Description
	}

	if strings.Contains(all, hugeReason) {
		t.Error("oversized reason was rendered in full")
	}
	if !strings.Contains(all, strings.Repeat("x", 512)+"...") {
		t.Error("oversized reason was not truncated with an ellipsis")
	}
	if !strings.Contains(pages[0].Title, fmt.Sprintf("Page 1/%d", len(pages))) {
		t.Errorf("unexpected first page title: %s", pages[0].Title)
	}
}
