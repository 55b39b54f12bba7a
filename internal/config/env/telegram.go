package env

import (
	"fmt"
	"os"
	"royal_casino/internal/config"
	"strconv"
)

const (
	telegramTokenEnvName  = "TELEGRAM_TOKEN"
	telegramChatIDEnvName = "TELEGRAM_CHAT_ID"
)

type telegramConfig struct {
	token  string
	chatID int64
}

// NewTelegramConfig never fails on a missing token; the sink is simply
// disabled.
func NewTelegramConfig() (config.TelegramConfig, error) {
	token := os.Getenv(telegramTokenEnvName)
	if len(token) == 0 {
		return &telegramConfig{}, nil
	}

	rawChat := os.Getenv(telegramChatIDEnvName)
	chatID, err := strconv.ParseInt(rawChat, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid telegram chat id %q: %w", rawChat, err)
	}

	return &telegramConfig{
		token:  token,
		chatID: chatID,
	}, nil
}

func (cfg *telegramConfig) Enabled() bool {
	return len(cfg.token) > 0
}

func (cfg *telegramConfig) Token() string {
	return cfg.token
}

func (cfg *telegramConfig) ChatID() int64 {
	return cfg.chatID
}
