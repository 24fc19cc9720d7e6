// Package ai provides the chat-completion client behind the natural
// language command router.
package ai

// Message is one turn of a chat-completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider produces one completion for a conversation. Implementations must
// request strict JSON output, since the router parses the reply as JSON.
type Provider interface {
	Complete(messages []Message) (string, error)
}
