// internal/telegram/client.go
// Package telegram is a minimal Bot API client: just enough surface for a
// long-polling text bot (getMe, getUpdates, sendMessage).
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const defaultAPIURL = "https://api.telegram.org"

// Update is one inbound event from getUpdates. Only message updates are
// of interest; everything else arrives with Message == nil and is skipped.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// apiResponse is the envelope every Bot API method answers with.
type apiResponse[T any] struct {
	OK          bool   `json:"ok"`
	Result      T      `json:"result"`
	Description string `json:"description"`
}

type Client struct {
	httpClient *http.Client
	base       string
	log        zerolog.Logger
}

func NewClient(token, apiURL string, logger zerolog.Logger) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		// No global timeout: getUpdates long-polls, so deadlines are
		// set per request instead.
		httpClient: &http.Client{},
		base:       apiURL + "/bot" + token,
		log:        logger,
	}
}

// GetMe validates the token. Called once at startup so a bad credential
// fails the process before any event is accepted.
func (c *Client) GetMe(ctx context.Context) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var me User
	if err := c.call(ctx, http.MethodGet, "/getMe", nil, &me); err != nil {
		return User{}, fmt.Errorf("getMe: %w", err)
	}
	return me, nil
}

// GetUpdates long-polls for up to timeoutSec seconds.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeoutSec int) ([]Update, error) {
	// The deadline leaves headroom over the server-side poll window.
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutSec+10)*time.Second)
	defer cancel()

	params := url.Values{}
	params.Set("offset", strconv.FormatInt(offset, 10))
	params.Set("timeout", strconv.Itoa(timeoutSec))
	params.Set("allowed_updates", `["message"]`)

	var updates []Update
	path := "/getUpdates?" + params.Encode()
	if err := c.call(ctx, http.MethodGet, path, nil, &updates); err != nil {
		return nil, fmt.Errorf("getUpdates: %w", err)
	}
	return updates, nil
}

// SendMessage sends plain text to a chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	body := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	var sent Message
	if err := c.call(ctx, http.MethodPost, "/sendMessage", body, &sent); err != nil {
		return fmt.Errorf("sendMessage: %w", err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, method, path string, body any, result any) error {
	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		payload = bytes.NewBuffer(data)
	} else {
		payload = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	envelope := apiResponse[*json.RawMessage]{Result: &raw}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if !envelope.OK {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, envelope.Description)
	}
	if result != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("failed to decode result: %w", err)
		}
	}
	return nil
}
