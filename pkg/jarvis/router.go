// Package jarvis routes natural language moderation requests to the shared
// action handlers through an LLM.
package jarvis

import (
	"fmt"
	"strings"
	"time"

	"github.com/OrionStudios/JarvisBotGo/pkg/ai"
	"github.com/OrionStudios/JarvisBotGo/pkg/logger"
	"github.com/OrionStudios/JarvisBotGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
	"github.com/goccy/go-json"
)

const systemPromptFormat = `
You are Jarvis, a highly sophisticated, polite, and professional AI moderator assistant.
Your tone is sleek, premium, and efficient (like the MCU Jarvis).

Your task is to parse the user's natural language request and determine the appropriate moderation action.

REASON BEAUTIFICATION:
If the user's reason is informal or simple (e.g., "being annoying", "spamming"), rephrase it to be more formal and professional while preserving the original intent.
- "bad words" -> "Usage of prohibited language"
Provide the REPHRASED reason in the "reason" argument.

Available actions:
1. warn (args: user_id, reason)
2. mute (args: user_id, duration, reason)
3. unmute (args: user_id)
4. kick (args: user_id, reason)
5. ban (args: user_id, reason)
6. unban (args: user_id)
7. clear (args: amount)
8. hwarn (args: user_id) - views history
9. allwarn (no args)
10. lwarn (no args)
11. clearwarns (args: user_id) - clear all warnings for a specific user
12. resetwarns (no args) - reset ALL warnings for everyone
13. shutdown (no args)
14. help (no args)

Respond ONLY with a JSON object:
{"action": "action_name", "args": {"arg1": "val1", ...}}

Duration format for mute: '10s', '5m', '2h', '1d'.
Current Time: %s
`

// Router turns a free-form request into one call on the moderation service.
type Router struct {
	provider ai.Provider
	svc      *moderation.Service
	platform moderation.Platform
}

// NewRouter builds a router over the given provider. A nil provider means the
// feature is not configured; Handle then answers with a setup hint.
func NewRouter(provider ai.Provider, svc *moderation.Service, platform moderation.Platform) *Router {
	return &Router{provider: provider, svc: svc, platform: platform}
}

type routedAction struct {
	Action string                 `json:"action"`
	Args   map[string]interface{} `json:"args"`
}

// Handle routes one natural language query. Mentioned users are passed along
// so the model can resolve "him" or a display name to an ID.
func (r *Router) Handle(inv moderation.Invocation, mentions []*discordgo.User, query string) error {
	if r.provider == nil {
		return inv.Reply(moderation.ReplyOptions{Content: "❌ Groq API key is not configured."})
	}

	var mentionLines []string
	for _, user := range mentions {
		display := user.GlobalName
		if display == "" {
			display = user.Username
		}
		mentionLines = append(mentionLines, fmt.Sprintf(
			"Name: %s, ID: %s, Display Name: %s", user.Username, user.ID, display))
	}
	userContext := fmt.Sprintf("Mentioned Users:\n%s\n\nUser Message: %s",
		strings.Join(mentionLines, "\n"), query)

	reply, err := r.provider.Complete([]ai.Message{
		{Role: "system", Content: fmt.Sprintf(systemPromptFormat, time.Now().UTC().Format(time.RFC3339))},
		{Role: "user", Content: userContext},
	})
	if err != nil {
		logger.Warn(fmt.Sprintf("Jarvis completion failed: %v", err), "Jarvis")
		return inv.Reply(moderation.ReplyOptions{Content: "❌ I encountered an error processing that request."})
	}

	var routed routedAction
	if err := json.Unmarshal([]byte(reply), &routed); err != nil {
		logger.Warn(fmt.Sprintf("Jarvis returned unparseable JSON: %v", err), "Jarvis")
		return inv.Reply(moderation.ReplyOptions{Content: "❌ I encountered an error processing that request."})
	}

	logger.Info(fmt.Sprintf("Jarvis routing: %s with %v", routed.Action, routed.Args), "Jarvis")
	return r.dispatch(inv, routed)
}

func (r *Router) dispatch(inv moderation.Invocation, routed routedAction) error {
	switch routed.Action {
	case "warn":
		member, err := r.targetMember(inv, routed.Args)
		if err != nil {
			return r.routeError(inv, err)
		}
		return r.svc.Warn(inv, member, argString(routed.Args, "reason", "No reason provided"))

	case "mute":
		member, err := r.targetMember(inv, routed.Args)
		if err != nil {
			return r.routeError(inv, err)
		}
		duration := argString(routed.Args, "duration", "10m")
		reason := argString(routed.Args, "reason", "No reason provided")
		return r.svc.Mute(inv, member, duration, reason)

	case "unmute":
		member, err := r.targetMember(inv, routed.Args)
		if err != nil {
			return r.routeError(inv, err)
		}
		return r.svc.Unmute(inv, member)

	case "kick":
		member, err := r.targetMember(inv, routed.Args)
		if err != nil {
			return r.routeError(inv, err)
		}
		return r.svc.Kick(inv, member, argString(routed.Args, "reason", "No reason provided"))

	case "ban":
		member, err := r.targetMember(inv, routed.Args)
		if err != nil {
			return r.routeError(inv, err)
		}
		return r.svc.Ban(inv, member, argString(routed.Args, "reason", "No reason provided"))

	case "unban":
		userID := argString(routed.Args, "user_id", "")
		if userID == "" {
			return r.routeError(inv, fmt.Errorf("missing user_id"))
		}
		return r.svc.Unban(inv, userID)

	case "clear":
		return r.svc.Clear(inv, argInt(routed.Args, "amount", 10))

	case "hwarn":
		member, err := r.targetMember(inv, routed.Args)
		if err != nil {
			return r.routeError(inv, err)
		}
		return r.svc.History(inv, member)

	case "allwarn":
		return r.svc.AllWarnings(inv)

	case "lwarn":
		return r.svc.Leaderboard(inv)

	case "clearwarns":
		member, err := r.targetMember(inv, routed.Args)
		if err != nil {
			return r.routeError(inv, err)
		}
		return r.svc.ClearUserWarnings(inv, member)

	case "resetwarns":
		return r.svc.ResetWarnings(inv)

	case "shutdown":
		return r.svc.Shutdown(inv)

	case "help":
		return r.svc.Help(inv)
	}

	return inv.Reply(moderation.ReplyOptions{Content: fmt.Sprintf(
		"🤔 I understood the request, but '%s' is not in my current protocols.", routed.Action)})
}

func (r *Router) targetMember(inv moderation.Invocation, args map[string]interface{}) (*discordgo.Member, error) {
	userID := argString(args, "user_id", "")
	if userID == "" {
		return nil, fmt.Errorf("missing user_id")
	}
	member, err := r.platform.FetchMember(inv.GuildID(), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member %s: %w", userID, err)
	}
	return member, nil
}

func (r *Router) routeError(inv moderation.Invocation, err error) error {
	logger.Warn(fmt.Sprintf("Jarvis routing failed: %v", err), "Jarvis")
	return inv.Reply(moderation.ReplyOptions{Content: "❌ I encountered an error processing that request."})
}

func argString(args map[string]interface{}, key, fallback string) string {
	if v, ok := args[key]; ok {
		switch value := v.(type) {
		case string:
			if value != "" {
				return value
			}
		case float64:
			// Models occasionally emit numeric IDs without quotes.
			return fmt.Sprintf("%.0f", value)
		}
	}
	return fallback
}

func argInt(args map[string]interface{}, key string, fallback int) int {
	if v, ok := args[key]; ok {
		switch value := v.(type) {
		case float64:
			return int(value)
		case string:
			var n int
			if _, err := fmt.Sscanf(value, "%d", &n); err == nil {
				return n
			}
		}
	}
	return fallback
}
