package models

// Role identifies who authored a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the conversation transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Speaker is the label used for the role when the transcript is rendered as text.
func (r Role) Speaker() string {
	if r == RoleUser {
		return "User"
	}
	return "Assistant"
}
