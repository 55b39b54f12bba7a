package concierge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	Fallback = "Market report: S&P 500 reaches new highs. Luxury watch prices stabilizing. Global gold reserves increasing."

	systemPrompt = `You are a polite butler for "The Residency", an old-money VIP casino. ` +
		`Address the guest formally. Offer luxury news, market updates or high-stakes tips. ` +
		`Keep answers elegant and concise.`

	maxResponseBytes = 1 << 20
)

var errNoAPIKey = errors.New("concierge api key not configured")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type annotation struct {
	Type        string `json:"type"`
	URLCitation struct {
		URL string `json:"url"`
	} `json:"url_citation"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			chatMessage
			Annotations []annotation `json:"annotations"`
		} `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type serv struct {
	cfg    config.ConciergeConfig
	client *http.Client
}

func NewConciergeService(cfg config.ConciergeConfig, client *http.Client) service.ConciergeService {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout()}
	}
	return &serv{
		cfg:    cfg,
		client: client,
	}
}

// Ask never fails: any transport or provider error yields the static
// market report.
func (s *serv) Ask(ctx context.Context, prompt string) model.ConciergeReply {
	reply, err := s.complete(ctx, prompt)
	if err != nil {
		if !errors.Is(err, errNoAPIKey) {
			log.WithError(err).Warn("concierge request failed")
		}
		return model.ConciergeReply{Text: Fallback, Fallback: true}
	}
	return reply
}

func (s *serv) complete(ctx context.Context, prompt string) (model.ConciergeReply, error) {
	var reply model.ConciergeReply
	if s.cfg.APIKey() == "" {
		return reply, errNoAPIKey
	}

	body, err := json.Marshal(chatRequest{
		Model: s.cfg.Model(),
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return reply, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL()+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return reply, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey())

	resp, err := s.client.Do(req)
	if err != nil {
		return reply, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return reply, err
	}
	if resp.StatusCode/100 != 2 {
		return reply, fmt.Errorf("concierge status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return reply, fmt.Errorf("decode concierge response: %w", err)
	}
	if out.Error != nil {
		return reply, errors.New(out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return reply, errors.New("concierge returned no choices")
	}

	msg := out.Choices[0].Message
	reply.Text = strings.TrimSpace(msg.Content)
	if reply.Text == "" {
		return reply, errors.New("concierge returned empty text")
	}
	reply.Sources = sources(out.Citations, msg.Annotations)
	return reply, nil
}

// sources merges provider citations and url_citation annotations, first
// occurrence wins.
func sources(citations []string, annotations []annotation) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(url string) {
		url = strings.TrimSpace(url)
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		out = append(out, url)
	}
	for _, c := range citations {
		add(c)
	}
	for _, a := range annotations {
		if a.Type == "url_citation" {
			add(a.URLCitation.URL)
		}
	}
	return out
}
