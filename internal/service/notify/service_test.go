package notify

import (
	"errors"
	"royal_casino/internal/model"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu    sync.Mutex
	texts []string
	fail  bool
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return tgbotapi.Message{}, errors.New("network down")
	}
	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, errors.New("unexpected chattable")
	}
	f.texts = append(f.texts, msg.Text)
	return tgbotapi.Message{}, nil
}

type recorder struct {
	got    []model.Notification
	closed bool
}

func (r *recorder) Notify(n model.Notification) { r.got = append(r.got, n) }
func (r *recorder) Close()                      { r.closed = true }

func TestFanout(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	s := NewNotificationService(a, NewLogSink(), b)

	n := model.Notification{Kind: model.NotifyWarning, PlayerID: "p1", Game: model.Slots, Text: "lost 100"}
	s.Notify(n)
	s.Close()

	assert.Equal(t, []model.Notification{n}, a.got)
	assert.Equal(t, []model.Notification{n}, b.got)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestTelegramSink_SendsWinsOnly(t *testing.T) {
	sender := &fakeSender{}
	s := NewTelegramSink(sender, 42, 8)

	s.Notify(model.Notification{Kind: model.NotifySuccess, Game: model.Roulette, Text: "won 1400"})
	s.Notify(model.Notification{Kind: model.NotifyWarning, Game: model.Roulette, Text: "lost 100"})
	s.Notify(model.Notification{Kind: model.NotifySuccess, Text: "jackpot"})
	s.Close()

	require.Len(t, sender.texts, 2)
	assert.Equal(t, "🎩 ROULETTE · won 1400", sender.texts[0])
	assert.Equal(t, "🎩 jackpot", sender.texts[1])
}

func TestTelegramSink_SendErrorsAreSwallowed(t *testing.T) {
	sender := &fakeSender{fail: true}
	s := NewTelegramSink(sender, 42, 1)
	s.Notify(model.Notification{Kind: model.NotifySuccess, Text: "won"})
	s.Close()
	s.Close()
	assert.Empty(t, sender.texts)
}
