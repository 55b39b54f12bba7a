package main

import (
	"royal_casino/internal/app"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
