package notify

import (
	"royal_casino/internal/model"
	"royal_casino/internal/service"

	log "github.com/sirupsen/logrus"
)

type fanout struct {
	sinks []service.NotificationService
}

// NewNotificationService delivers every notification to each sink in turn.
func NewNotificationService(sinks ...service.NotificationService) service.NotificationService {
	return &fanout{sinks: sinks}
}

func (f *fanout) Notify(n model.Notification) {
	for _, s := range f.sinks {
		s.Notify(n)
	}
}

func (f *fanout) Close() {
	for _, s := range f.sinks {
		s.Close()
	}
}

type logSink struct{}

// NewLogSink writes notifications to the process log.
func NewLogSink() service.NotificationService {
	return logSink{}
}

func (logSink) Notify(n model.Notification) {
	entry := log.WithFields(log.Fields{
		"player": n.PlayerID,
		"game":   n.Game,
		"kind":   n.Kind,
	})
	switch n.Kind {
	case model.NotifyError:
		entry.Warn(n.Text)
	case model.NotifySelect:
		entry.Debug(n.Text)
	default:
		entry.Info(n.Text)
	}
}

func (logSink) Close() {}
