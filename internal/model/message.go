package model

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Part is one segment of a message: text or an inline image.
type Part struct {
	Text        string
	ImageBase64 string // base64-encoded PNG, empty for text parts
}

// Message is one entry in a session's conversation history.
type Message struct {
	Role  Role
	Parts []Part
}

// Text returns the concatenated text of all text parts.
func (m Message) Text() string {
	var out string
	for _, p := range m.Parts {
		out += p.Text
	}
	return out
}

// SystemMessage builds a system message with the given prompt.
func SystemMessage(prompt string) Message {
	return Message{Role: RoleSystem, Parts: []Part{{Text: prompt}}}
}

// UserMessage builds a plain-text user message.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Parts: []Part{{Text: text}}}
}

// UserMessageWithImage builds a multimodal user message: text plus one image.
func UserMessageWithImage(text, imageBase64 string) Message {
	return Message{Role: RoleUser, Parts: []Part{
		{Text: text},
		{ImageBase64: imageBase64},
	}}
}

// AssistantMessage builds a plain-text assistant message.
func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Parts: []Part{{Text: text}}}
}
