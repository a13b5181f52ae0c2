package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	sendTimeout    = 10 * time.Second
)

// sendMessageRequest is the Bot API sendMessage payload.
type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
	ParseMode             string `json:"parse_mode"`
}

// NotifierRepoImpl provides a concrete implementation for the
// NotifierRepository interface using the Telegram Bot API.
type NotifierRepoImpl struct {
	client   *resty.Client
	apiBase  string
	botToken string
	chatID   string
	logger   *zap.Logger
}

// NewNotifierRepo creates a new instance of NotifierRepoImpl. An empty
// bot token or chat ID leaves the notifier unconfigured; Send then
// becomes a logged no-op.
func NewNotifierRepo(botToken, chatID string, logger *zap.Logger) *NotifierRepoImpl {
	return &NotifierRepoImpl{
		client:   resty.New().SetTimeout(sendTimeout),
		apiBase:  defaultAPIBase,
		botToken: botToken,
		chatID:   chatID,
		logger:   logger,
	}
}

// Send posts one alert message to the configured chat. Link previews
// are disabled and the text is sent as HTML. Delivery failures are
// returned to the caller, which logs them and carries on; they never
// abort a run.
func (n *NotifierRepoImpl) Send(ctx context.Context, text string) error {
	if n.botToken == "" || n.chatID == "" {
		n.logger.Info("Telegram not configured, skipping notification")
		return nil
	}

	payload := sendMessageRequest{
		ChatID:                n.chatID,
		Text:                  text,
		DisableWebPagePreview: true,
		ParseMode:             "HTML",
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("telegram error %d: %s", resp.StatusCode(), snippet(resp.Body(), 200))
	}

	n.logger.Info("Telegram notified")
	return nil
}

func snippet(body []byte, limit int) string {
	if len(body) > limit {
		body = body[:limit]
	}
	return string(body)
}
