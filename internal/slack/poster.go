package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultPostMessageURL = "https://slack.com/api/chat.postMessage"

// Alert summarises a flagged analysis for moderators. Message content is
// never included.
type Alert struct {
	RequestID    string
	Level        string // French level label
	Source       string
	MessageCount int
	Flagged      int
}

type Poster struct {
	token   string
	channel string
	client  *http.Client
	logger  *slog.Logger
	apiURL  string
}

func NewPoster(token, channel string, logger *slog.Logger) *Poster {
	return &Poster{
		token:   token,
		channel: channel,
		client:  &http.Client{Timeout: 10 * time.Second},
		apiURL:  defaultPostMessageURL,
		logger:  logger,
	}
}

// PostAlert notifies the moderation channel. Returns the message timestamp.
func (p *Poster) PostAlert(ctx context.Context, a Alert) (string, error) {
	text := formatAlert(a)

	body, err := json.Marshal(map[string]any{
		"channel": p.channel,
		"text":    text,
		"blocks": []map[string]any{
			{
				"type": "section",
				"text": map[string]any{
					"type": "mrkdwn",
					"text": text,
				},
			},
			{
				"type": "context",
				"elements": []map[string]any{
					{
						"type": "mrkdwn",
						"text": "Le contenu de la conversation n'est pas conservé.",
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("slack post: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var slackResp struct {
		OK    bool   `json:"ok"`
		TS    string `json:"ts"`
		Error string `json:"error,omitempty"`
	}
	if err := json.Unmarshal(respBody, &slackResp); err != nil {
		return "", fmt.Errorf("parse slack response: %w", err)
	}
	if !slackResp.OK {
		return "", fmt.Errorf("slack error: %s", slackResp.Error)
	}

	p.logger.Info("posted alert to slack", "ts", slackResp.TS, "request_id", a.RequestID)
	return slackResp.TS, nil
}

func formatAlert(a Alert) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, ":rotating_light: *%s*\n", a.Level)
	fmt.Fprintf(&sb, "*Requête:* `%s` (analyse %s)\n", a.RequestID, a.Source)
	if a.MessageCount > 0 {
		fmt.Fprintf(&sb, "*Messages signalés:* %d sur %d\n", a.Flagged, a.MessageCount)
	}
	sb.WriteString("_Une vérification humaine est recommandée._")

	return sb.String()
}
