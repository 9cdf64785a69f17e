package wire

import (
	"stackbnb/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireNotify(r chi.Router, notifyHandler *adaptor.NotifyHandler) {
	// Public, called by frontends and cron jobs (reminders)
	r.Post("/api/notify", notifyHandler.Notify)
}
