package llm

import "strings"

// Prompt is one generation input: a standing instruction and the user turn.
// System may be empty.
type Prompt struct {
	System string
	User   string
}

// Roles sent on the chat endpoint.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatRequest describes a single LLM chat invocation against the default model.
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

// Message represents a chat message in the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Messages converts p into the chat turns, dropping an empty system part.
func (p Prompt) Messages() []Message {
	msgs := make([]Message, 0, 2)
	if system := strings.TrimSpace(p.System); system != "" {
		msgs = append(msgs, Message{Role: RoleSystem, Content: system})
	}
	return append(msgs, Message{Role: RoleUser, Content: p.User})
}

// ChatResponse captures a non-streaming completion result.
type ChatResponse struct {
	ID          string   `json:"id"`
	Model       string   `json:"model"`
	Choices     []Choice `json:"choices"`
	Usage       Usage    `json:"usage"`
	Created     int64    `json:"created"`
	Fingerprint string   `json:"fingerprint,omitempty"`
}

// Choice represents a single completion choice.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage summarises token accounting for a completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Text returns the trimmed content of the first choice.
func (r *ChatResponse) Text() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Choices[0].Message.Content)
}
