package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/lunarbloom/courtship/pkg/character"
	"github.com/lunarbloom/courtship/pkg/chat"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// CharacterView mirrors the API's GET /v1/character response.
type CharacterView struct {
	Character *character.Character `json:"character"`
	Cosmetics []string             `json:"cosmetics,omitempty"`
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func sendCommand(client *http.Client, cfg *ConsoleConfig, text string) (*chat.CommandResponse, error) {
	req := chat.CommandRequest{
		UserID: cfg.UserID,
		ChatID: cfg.ChatID,
		Text:   text,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		cfg.APIBaseURL+"/v1/command",
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var cmdResp chat.CommandResponse
	if err := json.Unmarshal(body, &cmdResp); err != nil {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	if cmdResp.Error != "" && cmdResp.Message == "" {
		return nil, fmt.Errorf("command failed: %s", cmdResp.Error)
	}
	return &cmdResp, nil
}

func getCharacter(client *http.Client, cfg *ConsoleConfig) (*CharacterView, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/character?user_id=%s&chat_id=%s",
		cfg.APIBaseURL, cfg.UserID, cfg.ChatID))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to get character: %s", errorResp.Error)
	}

	var view CharacterView
	if err := json.Unmarshal(body, &view); err != nil {
		return nil, fmt.Errorf("failed to parse character response: %w", err)
	}
	return &view, nil
}
