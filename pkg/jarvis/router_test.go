package jarvis

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/OrionStudios/JarvisBotGo/pkg/ai"
	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
	"github.com/OrionStudios/JarvisBotGo/pkg/store"
	"github.com/bwmarrin/discordgo"
)

type scriptedProvider struct {
	reply    string
	err      error
	messages []ai.Message
}

func (p *scriptedProvider) Complete(messages []ai.Message) (string, error) {
	p.messages = messages
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

type stubPlatform struct {
	kicked   []string
	timeouts []string
	members  map[string]*discordgo.Member
}

func (p *stubPlatform) Timeout(guildID, userID string, until *time.Time) error {
	p.timeouts = append(p.timeouts, userID)
	return nil
}
func (p *stubPlatform) Kick(guildID, userID, reason string) error {
	p.kicked = append(p.kicked, userID)
	return nil
}
func (p *stubPlatform) Ban(guildID, userID, reason string) error   { return nil }
func (p *stubPlatform) Unban(guildID, userID string) error         { return nil }
func (p *stubPlatform) Purge(channelID string, limit int) (int, error) {
	return limit, nil
}
func (p *stubPlatform) SendDM(userID, content string) error        { return nil }
func (p *stubPlatform) SendMessage(channelID, content string) error { return nil }
func (p *stubPlatform) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	return nil
}
func (p *stubPlatform) FetchMember(guildID, userID string) (*discordgo.Member, error) {
	if m, ok := p.members[userID]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("unknown member %s", userID)
}
func (p *stubPlatform) FetchUser(userID string) (*discordgo.User, error) {
	return nil, fmt.Errorf("unknown user %s", userID)
}

type stubInvocation struct {
	replies []moderation.ReplyOptions
}

func (i *stubInvocation) AuthorID() string          { return "mod-1" }
func (i *stubInvocation) Member() *discordgo.Member { return nil }
func (i *stubInvocation) GuildID() string           { return "guild-1" }
func (i *stubInvocation) GuildName() string         { return "Test Guild" }
func (i *stubInvocation) ChannelID() string         { return "chan-1" }
func (i *stubInvocation) IncludesTrigger() bool     { return true }
func (i *stubInvocation) Reply(opts moderation.ReplyOptions) error {
	i.replies = append(i.replies, opts)
	return nil
}

func newTestRouter(t *testing.T, provider ai.Provider) (*Router, *stubPlatform, *stubInvocation) {
	t.Helper()
	records, err := store.Open(t.TempDir(), "", "")
	if err != nil {
		t.Fatalf("failed to open records: %v", err)
	}
	platform := &stubPlatform{members: map[string]*discordgo.Member{
		"42": {User: &discordgo.User{ID: "42", Username: "alice"}},
	}}
	svc := moderation.NewService(records, platform)
	return NewRouter(provider, svc, platform), platform, &stubInvocation{}
}

func TestRouterDispatchesWarn(t *testing.T) {
	provider := &scriptedProvider{
		reply: `{"action":"warn","args":{"user_id":"42","reason":"Usage of prohibited language"}}`,
	}
	router, _, inv := newTestRouter(t, provider)

	if err := router.Handle(inv, []*discordgo.User{{ID: "42", Username: "alice"}}, "warn alice for bad words"); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if len(inv.replies) == 0 || inv.replies[0].Embed == nil {
		t.Fatalf("expected warning embed, got %+v", inv.replies)
	}
	if !strings.Contains(inv.replies[0].Embed.Title, "alice") {
		t.Errorf("embed should name the target: %q", inv.replies[0].Embed.Title)
	}

	if len(provider.messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(provider.messages))
	}
	if !strings.Contains(provider.messages[1].Content, "ID: 42") {
		t.Errorf("mention context missing from user message: %q", provider.messages[1].Content)
	}
	if !strings.Contains(provider.messages[0].Content, "Available actions") {
		t.Error("system prompt should enumerate actions")
	}
}

func TestRouterDefaultsMuteArgs(t *testing.T) {
	provider := &scriptedProvider{reply: `{"action":"mute","args":{"user_id":"42"}}`}
	router, platform, inv := newTestRouter(t, provider)

	if err := router.Handle(inv, nil, "mute alice"); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if len(platform.timeouts) != 1 {
		t.Fatalf("expected a timeout call, got %d", len(platform.timeouts))
	}
	reply := inv.replies[len(inv.replies)-1]
	if !strings.Contains(reply.Content, "**10m**") {
		t.Errorf("default duration should be 10m: %q", reply.Content)
	}
	if !strings.Contains(reply.Content, "No reason provided") {
		t.Errorf("default reason missing: %q", reply.Content)
	}
}

func TestRouterUnknownAction(t *testing.T) {
	provider := &scriptedProvider{reply: `{"action":"dance","args":{}}`}
	router, _, inv := newTestRouter(t, provider)

	if err := router.Handle(inv, nil, "dance for me"); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	want := "🤔 I understood the request, but 'dance' is not in my current protocols."
	if inv.replies[0].Content != want {
		t.Errorf("reply = %q, want %q", inv.replies[0].Content, want)
	}
}

func TestRouterProviderFailure(t *testing.T) {
	provider := &scriptedProvider{err: fmt.Errorf("rate limited")}
	router, _, inv := newTestRouter(t, provider)

	if err := router.Handle(inv, nil, "warn someone"); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !strings.Contains(inv.replies[0].Content, "error processing") {
		t.Errorf("expected apology, got %q", inv.replies[0].Content)
	}
}

func TestRouterBadJSON(t *testing.T) {
	provider := &scriptedProvider{reply: "certainly, sir"}
	router, _, inv := newTestRouter(t, provider)

	if err := router.Handle(inv, nil, "warn someone"); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !strings.Contains(inv.replies[0].Content, "error processing") {
		t.Errorf("expected apology, got %q", inv.replies[0].Content)
	}
}

func TestRouterMissingUserID(t *testing.T) {
	provider := &scriptedProvider{reply: `{"action":"warn","args":{"reason":"spam"}}`}
	router, _, inv := newTestRouter(t, provider)

	if err := router.Handle(inv, nil, "warn them"); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !strings.Contains(inv.replies[0].Content, "error processing") {
		t.Errorf("expected apology, got %q", inv.replies[0].Content)
	}
}

func TestRouterUnconfigured(t *testing.T) {
	router, _, inv := newTestRouter(t, nil)

	if err := router.Handle(inv, nil, "warn someone"); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if inv.replies[0].Content != "❌ Groq API key is not configured." {
		t.Errorf("unexpected reply: %q", inv.replies[0].Content)
	}
}
