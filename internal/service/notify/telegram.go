package notify

import (
	"fmt"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

const defaultBuffer = 64

// Sender is the part of *tgbotapi.BotAPI the sink uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramSink struct {
	sender Sender
	chatID int64
	queue  chan model.Notification

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewTelegramSink posts wins to a chat from a single worker. Notifications
// are dropped while the queue is full.
func NewTelegramSink(sender Sender, chatID int64, buffer int) service.NotificationService {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	s := &telegramSink{
		sender: sender,
		chatID: chatID,
		queue:  make(chan model.Notification, buffer),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

// NewTelegramBot connects to the Bot API with token.
func NewTelegramBot(token string) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	log.WithField("bot", bot.Self.UserName).Info("telegram notifications enabled")
	return bot, nil
}

func (s *telegramSink) Notify(n model.Notification) {
	if n.Kind != model.NotifySuccess {
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}
	select {
	case s.queue <- n:
	default:
		log.WithField("player", n.PlayerID).Warn("telegram queue full, notification dropped")
	}
}

func (s *telegramSink) run() {
	defer close(s.done)
	for n := range s.queue {
		msg := tgbotapi.NewMessage(s.chatID, format(n))
		if _, err := s.sender.Send(msg); err != nil {
			log.WithFields(log.Fields{"chat": s.chatID, "error": err}).Warn("telegram send failed")
		}
	}
}

// Close stops accepting notifications and waits for queued ones to be sent.
func (s *telegramSink) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done
}

func format(n model.Notification) string {
	if n.Game == "" {
		return "🎩 " + n.Text
	}
	return fmt.Sprintf("🎩 %s · %s", n.Game, n.Text)
}
