// Package chat defines the command surface between the message-bot
// host and the engine: request/response shapes and the slash-command
// parser.
package chat

import "fmt"

// CommandRequest is a slash-command delivered by the bot host.
type CommandRequest struct {
	UserID string `json:"user_id"`
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// CommandResponse is the tri-state result every command handler
// returns: whether the command succeeded, the user-facing summary,
// and whether the host should stop further processing of the message.
type CommandResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Intercept bool   `json:"intercept"`
	Error     string `json:"error,omitempty"`
}

// Validate checks the request for the fields every command needs.
func (r *CommandRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user_id cannot be empty")
	}
	if r.ChatID == "" {
		return fmt.Errorf("chat_id cannot be empty")
	}
	if r.Text == "" {
		return fmt.Errorf("text cannot be empty")
	}
	return nil
}
