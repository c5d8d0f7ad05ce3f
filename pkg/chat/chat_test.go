package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CommandRequest
		wantErr string
	}{
		{"valid", CommandRequest{UserID: "u1", ChatID: "c1", Text: "/status"}, ""},
		{"missing user", CommandRequest{ChatID: "c1", Text: "/status"}, "user_id"},
		{"missing chat", CommandRequest{UserID: "u1", Text: "/status"}, "chat_id"},
		{"missing text", CommandRequest{UserID: "u1", ChatID: "c1"}, "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Command
	}{
		{"empty", "", Command{Type: CmdNone}},
		{"bare slash", "/", Command{Type: CmdNone}},
		{"whitespace", "   ", Command{Type: CmdNone}},
		{"status", "/status", Command{Type: CmdStatus, Args: []string{}}},
		{"status alias", "/s", Command{Type: CmdStatus, Args: []string{}}},
		{"leading slash optional", "status", Command{Type: CmdStatus, Args: []string{}}},
		{"start with arg", "/start innocent", Command{Type: CmdStart, Args: []string{"innocent"}}},
		{"mixed case", "/Start Innocent", Command{Type: CmdStart, Args: []string{"innocent"}}},
		{"next-day alias", "/sleep", Command{Type: CmdNextDay, Args: []string{}}},
		{"nextday no hyphen", "/nextday", Command{Type: CmdNextDay, Args: []string{}}},
		{"choice with number", "/choice 2", Command{Type: CmdChoice, Args: []string{"2"}}},
		{"choose alias", "/choose 1", Command{Type: CmdChoice, Args: []string{"1"}}},
		{"explicit do", "/do kiss lips", Command{Type: CmdDo, Args: []string{"kiss", "lips"}}},
		{"implicit do", "/kiss lips", Command{Type: CmdDo, Args: []string{"kiss", "lips"}}},
		{"confirm lifted", "/confess confirm", Command{Type: CmdDo, Args: []string{"confess"}, Confirm: true}},
		{"confirm with param", "/do confess deeply confirm", Command{Type: CmdDo, Args: []string{"confess", "deeply"}, Confirm: true}},
		{"buy", "/buy ribbon", Command{Type: CmdBuy, Args: []string{"ribbon"}}},
		{"restart", "/restart", Command{Type: CmdRestart, Args: []string{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			assert.Equal(t, tt.expected.Type, got.Type)
			assert.Equal(t, tt.expected.Confirm, got.Confirm)
			if len(tt.expected.Args) == 0 {
				assert.Empty(t, got.Args)
			} else {
				assert.Equal(t, tt.expected.Args, got.Args)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Train Obedience", DisplayName("train-obedience"))
	assert.Equal(t, "Eternal Love", DisplayName("eternal-love"))
	assert.Equal(t, "Talk", DisplayName("talk"))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", Bar(0))
	assert.Equal(t, "█████░░░░░", Bar(50))
	assert.Equal(t, "█████░░░░░", Bar(59), "partial segments round down")
	assert.Equal(t, "██████████", Bar(100))
	assert.Equal(t, "██████████", Bar(130))
	assert.Equal(t, "░░░░░░░░░░", Bar(-5))
}
