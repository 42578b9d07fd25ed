// internal/notify/telegram.go

// Package notify delivers plain-text alerts through the Telegram Bot API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const telegramAPI = "https://api.telegram.org"

// Telegram posts messages to a single chat via the bot sendMessage endpoint.
type Telegram struct {
	http    *http.Client
	baseURL string
	token   string
	chatID  string
}

// Option adjusts a Telegram client at construction.
type Option func(*Telegram)

// WithBaseURL overrides the API host, e.g. to point at a test server.
func WithBaseURL(u string) Option {
	return func(t *Telegram) { t.baseURL = u }
}

func NewTelegram(token, chatID string, opts ...Option) *Telegram {
	t := &Telegram{
		http:    &http.Client{Timeout: 20 * time.Second},
		baseURL: telegramAPI,
		token:   token,
		chatID:  chatID,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Notify sends one plain-text message to the configured chat.
func (t *Telegram) Notify(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id": t.chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := t.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("telegram status %d: %s", res.StatusCode, body)
	}
	return nil
}
